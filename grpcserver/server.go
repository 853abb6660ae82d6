package grpcserver

import (
	"context"
	"net"
	"time"

	"github.com/jcgregorio/logger"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/xiam/lispust/config"
	"github.com/xiam/lispust/runner"
)

// Room for the protobuf framing around the expression.
const msgOverhead = 64

// Server implements LispustServer on top of a runner.Runner.
type Server struct {
	log    *logger.Logger
	runner *runner.Runner
	addr   string

	srv *grpc.Server
}

// New creates a Server with the service already registered.
func New(cfg *config.Config, log *logger.Logger, r *runner.Runner) *Server {
	s := &Server{
		log:    log,
		runner: r,
		addr:   cfg.GRPCAddr,
	}
	s.srv = grpc.NewServer(
		grpc.MaxRecvMsgSize(int(cfg.MaxBodyBytes)+msgOverhead),
		grpc.UnaryInterceptor(s.logCalls),
	)
	RegisterLispustServer(s.srv, s)
	return s
}

// Run evaluates the expression in req.
func (s *Server) Run(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	out, err := s.runner.Run(ctx, runner.TransportGRPC, req.GetValue())
	if err != nil {
		return nil, status.Error(codeFor(err), err.Error())
	}
	return wrapperspb.String(out), nil
}

// ListenAndServe listens on the configured address. It returns nil after a
// call to Shutdown.
func (s *Server) ListenAndServe() error {
	l, err := net.Listen("tcp", s.addr)
	if err != nil {
		return errors.Wrapf(err, "listening on %s", s.addr)
	}
	return s.Serve(l)
}

// Serve accepts connections on l.
func (s *Server) Serve(l net.Listener) error {
	s.log.Infof("grpc: listening on %s", l.Addr())
	if err := s.srv.Serve(l); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return errors.Wrap(err, "grpc server")
	}
	return nil
}

// Shutdown waits for pending calls to finish, or stops the server abruptly
// once ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Infof("grpc: shutting down")

	done := make(chan struct{})
	go func() {
		s.srv.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.srv.Stop()
		<-done
		return ctx.Err()
	}
}

func (s *Server) logCalls(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.log.Debugf("grpc: %s %s %s", info.FullMethod, status.Code(err), time.Since(start))
	return resp, err
}

func codeFor(err error) codes.Code {
	switch runner.Classify(err) {
	case runner.ResultParseError, runner.ResultEvalError:
		return codes.InvalidArgument
	case runner.ResultCanceled:
		if errors.Is(err, context.DeadlineExceeded) {
			return codes.DeadlineExceeded
		}
		return codes.Canceled
	}
	return codes.Internal
}
