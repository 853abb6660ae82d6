// Package httpserver exposes lispust over HTTP.
package httpserver

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jcgregorio/logger"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xiam/lispust/config"
	"github.com/xiam/lispust/runner"
)

const contentType = "text/plain; charset=utf-8"

// Server serves POST /lispust, GET /health and GET /metrics.
type Server struct {
	log          *logger.Logger
	runner       *runner.Runner
	maxBodyBytes int64

	srv *http.Server
}

// New creates a Server. gatherer provides the samples served on /metrics and
// may be nil, in which case /metrics is not routed.
func New(cfg *config.Config, log *logger.Logger, r *runner.Runner, gatherer prometheus.Gatherer) *Server {
	s := &Server{
		log:          log,
		runner:       r,
		maxBodyBytes: cfg.MaxBodyBytes,
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.logRequests)

	router.Get("/health", s.healthHandler)
	if gatherer != nil {
		router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	router.With(middleware.Timeout(cfg.RequestTimeout)).Post("/lispust", s.runHandler)

	s.srv = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: cfg.RequestTimeout,
	}
	return s
}

// Handler returns the root handler of the server.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// ListenAndServe listens on the configured address. It returns nil after a
// call to Shutdown.
func (s *Server) ListenAndServe() error {
	l, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return errors.Wrapf(err, "listening on %s", s.srv.Addr)
	}
	return s.Serve(l)
}

// Serve accepts connections on l. It returns nil after a call to Shutdown.
func (s *Server) Serve(l net.Listener) error {
	s.log.Infof("http: listening on %s", l.Addr())
	err := s.srv.Serve(l)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return errors.Wrap(err, "http server")
}

// Shutdown stops the server, waiting for active requests until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Infof("http: shutting down")
	return s.srv.Shutdown(ctx)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", contentType)
	_, _ = io.WriteString(w, "ok")
}

func (s *Server) runHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge, errors.Errorf("expression exceeds %d bytes", tooLarge.Limit))
			return
		}
		s.writeError(w, http.StatusBadRequest, errors.Wrap(err, "reading request body"))
		return
	}

	out, err := s.runner.Run(r.Context(), runner.TransportHTTP, strings.TrimSpace(string(body)))
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	_, _ = io.WriteString(w, out+"\n")
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.log.Errorf("http: %d: %s", status, err)
	}
	http.Error(w, err.Error(), status)
}

func statusFor(err error) int {
	switch runner.Classify(err) {
	case runner.ResultParseError, runner.ResultEvalError:
		return http.StatusBadRequest
	case runner.ResultCanceled:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			s.log.Debugf("http: %s %s %d %dB %s", r.Method, r.URL.Path, ww.Status(), ww.BytesWritten(), time.Since(start))
		}()
		next.ServeHTTP(ww, r)
	})
}
