package runner

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Result labels for lispust_runs_total.
const (
	ResultOK         = "ok"
	ResultParseError = "parse_error"
	ResultEvalError  = "eval_error"
	ResultCanceled   = "canceled"
	ResultError      = "error"
)

// Metrics counts evaluations per transport and outcome.
type Metrics struct {
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lispust_runs_total",
				Help: "Number of evaluated expressions, by transport and result.",
			},
			[]string{"transport", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lispust_run_duration_seconds",
				Help:    "Time spent tokenizing, parsing and evaluating one expression.",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{"transport"},
		),
	}
	for _, c := range []prometheus.Collector{m.runs, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "registering runner metrics")
		}
	}
	return m, nil
}

func (m *Metrics) observe(transport string, result string, elapsed time.Duration) {
	m.runs.WithLabelValues(transport, result).Inc()
	m.duration.WithLabelValues(transport).Observe(elapsed.Seconds())
}

// Runs returns the counter for the given labels.
func (m *Metrics) Runs(transport string, result string) prometheus.Counter {
	return m.runs.WithLabelValues(transport, result)
}
