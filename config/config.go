// Package config holds the settings of the lispust servers.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	cli "github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const (
	defaultHTTPAddr        = "127.0.0.1:8080"
	defaultGRPCAddr        = "[::1]:50051"
	defaultRequestTimeout  = 5 * time.Second
	defaultShutdownTimeout = 5 * time.Second
	defaultMaxBodyBytes    = 64 * 1024
)

// Config provides the settings of the HTTP and gRPC servers.
type Config struct {
	ConfigFilename string `yaml:"-"`

	HTTPAddr        string        `yaml:"http_addr"`
	GRPCAddr        string        `yaml:"grpc_addr"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
	Debug           bool          `yaml:"debug"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		HTTPAddr:        defaultHTTPAddr,
		GRPCAddr:        defaultGRPCAddr,
		RequestTimeout:  defaultRequestTimeout,
		ShutdownTimeout: defaultShutdownTimeout,
		MaxBodyBytes:    defaultMaxBodyBytes,
	}
}

// AsCliFlags returns a slice of cli.Flag bound to the fields of config.
func (config *Config) AsCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Destination: &config.ConfigFilename,
			Name:        "config",
			Usage:       "YAML file to load settings from. Flags override its values.",
		},
		&cli.StringFlag{
			Destination: &config.HTTPAddr,
			Name:        "http_addr",
			Value:       config.HTTPAddr,
			Usage:       "Address of the HTTP server. Empty disables it.",
		},
		&cli.StringFlag{
			Destination: &config.GRPCAddr,
			Name:        "grpc_addr",
			Value:       config.GRPCAddr,
			Usage:       "Address of the gRPC server. Empty disables it.",
		},
		&cli.DurationFlag{
			Destination: &config.RequestTimeout,
			Name:        "request_timeout",
			Value:       config.RequestTimeout,
			Usage:       "Maximum time spent on one HTTP request.",
		},
		&cli.Int64Flag{
			Destination: &config.MaxBodyBytes,
			Name:        "max_body_bytes",
			Value:       config.MaxBodyBytes,
			Usage:       "Maximum size of an expression.",
		},
		&cli.BoolFlag{
			Destination: &config.Debug,
			Name:        "debug",
			Value:       config.Debug,
			Usage:       "Log every evaluated expression.",
		},
	}
}

// Load reads a YAML file on top of the defaults and validates the result.
func Load(filename string) (*Config, error) {
	config := Default()

	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %q", filename)
	}
	if err := yaml.Unmarshal(b, config); err != nil {
		return nil, errors.Wrapf(err, "decoding config %q", filename)
	}
	config.ConfigFilename = filename

	if err := config.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %q", filename)
	}
	return config, nil
}

// Validate reports every invalid setting at once.
func (config *Config) Validate() error {
	var result *multierror.Error

	if config.HTTPAddr == "" && config.GRPCAddr == "" {
		result = multierror.Append(result, errors.New("at least one of http_addr and grpc_addr must be set"))
	}
	for name, addr := range map[string]string{"http_addr": config.HTTPAddr, "grpc_addr": config.GRPCAddr} {
		if addr == "" {
			continue
		}
		if _, _, err := net.SplitHostPort(addr); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", name, err))
		}
	}
	if config.RequestTimeout <= 0 {
		result = multierror.Append(result, fmt.Errorf("request_timeout must be positive, got %v", config.RequestTimeout))
	}
	if config.ShutdownTimeout < 0 {
		result = multierror.Append(result, fmt.Errorf("shutdown_timeout must not be negative, got %v", config.ShutdownTimeout))
	}
	if config.MaxBodyBytes <= 0 {
		result = multierror.Append(result, fmt.Errorf("max_body_bytes must be positive, got %d", config.MaxBodyBytes))
	}

	return result.ErrorOrNil()
}
