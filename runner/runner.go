// Package runner is the entry point transports use to evaluate expressions.
// It adds logging and metrics around lispust.Run and nothing else.
package runner

import (
	"context"
	"errors"
	"time"

	"github.com/jcgregorio/logger"

	"github.com/xiam/lispust"
	"github.com/xiam/lispust/parser"
)

// Transport names used as metric labels.
const (
	TransportHTTP = "http"
	TransportGRPC = "grpc"
	TransportCLI  = "cli"
)

// Runner evaluates expressions on behalf of a transport.
type Runner struct {
	log     *logger.Logger
	metrics *Metrics
}

// New returns a Runner. metrics may be nil.
func New(log *logger.Logger, metrics *Metrics) *Runner {
	return &Runner{
		log:     log,
		metrics: metrics,
	}
}

// Run evaluates input. Language errors are returned unmodified; they are the
// caller's fault and must be reported as such.
func (r *Runner) Run(ctx context.Context, transport string, input string) (string, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		r.observe(transport, Classify(err), start)
		return "", err
	}

	r.log.Debugf("%s: run %q", transport, input)

	out, err := lispust.Run(input)
	result := Classify(err)
	r.observe(transport, result, start)

	if err != nil {
		r.log.Infof("%s: %s: %q: %s", transport, result, input, err)
		return "", err
	}

	r.log.Debugf("%s: %q => %s", transport, input, out)
	return out, nil
}

func (r *Runner) observe(transport string, result string, start time.Time) {
	if r.metrics == nil {
		return
	}
	r.metrics.observe(transport, result, time.Since(start))
}

// IsLanguageError returns true if err was caused by the input expression
// rather than by the infrastructure around it.
func IsLanguageError(err error) bool {
	switch Classify(err) {
	case ResultParseError, ResultEvalError:
		return true
	}
	return false
}

// Classify maps err to a result label.
func Classify(err error) string {
	if err == nil {
		return ResultOK
	}

	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		return ResultParseError
	}

	var evalErr lispust.EvalError
	if errors.As(err, &evalErr) {
		return ResultEvalError
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ResultCanceled
	}
	return ResultError
}
