package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	cli "github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/xiam/lispust/config"
	"github.com/xiam/lispust/grpcserver"
	"github.com/xiam/lispust/httpserver"
	"github.com/xiam/lispust/runner"
)

type server interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

func serveAction(flags *config.Config) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := resolveConfig(c, flags)
		if err != nil {
			return err
		}

		log := newLogger(c, true, cfg.Debug)

		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics, err := runner.NewMetrics(reg)
		if err != nil {
			return err
		}
		r := runner.New(log, metrics)

		var servers []server
		if cfg.HTTPAddr != "" {
			servers = append(servers, httpserver.New(cfg, log, r, reg))
		}
		if cfg.GRPCAddr != "" {
			servers = append(servers, grpcserver.New(cfg, log, r))
		}

		ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
		defer stop()

		g, ctx := errgroup.WithContext(ctx)
		for _, srv := range servers {
			srv := srv
			g.Go(srv.ListenAndServe)
			g.Go(func() error {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})
		}

		err = g.Wait()
		log.Infof("stopped")
		return err
	}
}

// resolveConfig loads the --config file, if any, and applies the flags the
// user set explicitly on top of it.
func resolveConfig(c *cli.Context, flags *config.Config) (*config.Config, error) {
	if flags.ConfigFilename == "" {
		if err := flags.Validate(); err != nil {
			return nil, errors.Wrap(err, "invalid flags")
		}
		return flags, nil
	}

	cfg, err := config.Load(flags.ConfigFilename)
	if err != nil {
		return nil, err
	}

	if c.IsSet("http_addr") {
		cfg.HTTPAddr = flags.HTTPAddr
	}
	if c.IsSet("grpc_addr") {
		cfg.GRPCAddr = flags.GRPCAddr
	}
	if c.IsSet("request_timeout") {
		cfg.RequestTimeout = flags.RequestTimeout
	}
	if c.IsSet("max_body_bytes") {
		cfg.MaxBodyBytes = flags.MaxBodyBytes
	}
	if c.IsSet("debug") {
		cfg.Debug = flags.Debug
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid flags")
	}
	return cfg, nil
}
