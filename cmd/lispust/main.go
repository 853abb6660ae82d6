// Command lispust evaluates S-expressions from the command line and serves
// them over HTTP and gRPC.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jcgregorio/logger"
	cli "github.com/urfave/cli/v2"

	"github.com/xiam/lispust/config"
)

// Expressions evaluated by "run" when no argument is given.
var examples = []string{
	"(+ 2 3)",
	"(- 10 3)",
	"(if true 100 200)",
}

func main() {
	app := newApp(config.Default())
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(cfg *config.Config) *cli.App {
	return &cli.App{
		Name:  "lispust",
		Usage: "evaluate tiny S-expressions",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log evaluations to stderr.",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "Evaluate expressions and print one result per line.",
				ArgsUsage: "[EXPR...]",
				Description: "Each argument is one expression. \"-\" reads one expression from stdin.\n" +
					"Without arguments a few built-in examples are evaluated.",
				Action: runAction,
			},
			{
				Name:      "tokens",
				Usage:     "Print the tokens of an expression.",
				ArgsUsage: "EXPR",
				Action:    tokensAction,
			},
			{
				Name:      "parse",
				Usage:     "Parse an expression and print its tree.",
				ArgsUsage: "EXPR",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "dump",
						Usage: "Print the Go representation of the tree.",
					},
					&cli.BoolFlag{
						Name:  "tree",
						Usage: "Print the tree with one node per line.",
					},
				},
				Action: parseAction,
			},
			{
				Name:   "serve",
				Usage:  "Serve expressions over HTTP and gRPC.",
				Flags:  cfg.AsCliFlags(),
				Action: serveAction(cfg),
			},
			{
				Name:      "client",
				Usage:     "Evaluate an expression on a remote server.",
				ArgsUsage: "EXPR",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Value: cfg.GRPCAddr,
						Usage: "Address of the gRPC server.",
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Value: cfg.RequestTimeout,
						Usage: "Maximum time to wait for the reply.",
					},
				},
				Action: clientAction,
			},
		},
	}
}

type syncWriter struct {
	io.Writer
}

func (w syncWriter) Sync() error {
	if s, ok := w.Writer.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}

// newLogger writes to the app's stderr. Without enabled nothing is written.
func newLogger(c *cli.Context, enabled bool, debug bool) *logger.Logger {
	w := io.Discard
	if enabled {
		w = c.App.ErrWriter
	}
	return logger.NewFromOptions(&logger.Options{
		SyncWriter:   syncWriter{w},
		IncludeDebug: debug,
	})
}
