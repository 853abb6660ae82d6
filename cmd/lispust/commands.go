package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	cli "github.com/urfave/cli/v2"

	"github.com/xiam/lispust"
	"github.com/xiam/lispust/ast"
	"github.com/xiam/lispust/grpcserver"
	"github.com/xiam/lispust/lexer"
	"github.com/xiam/lispust/parser"
	"github.com/xiam/lispust/runner"
)

func runAction(c *cli.Context) error {
	verbose := c.Bool("verbose")
	r := runner.New(newLogger(c, verbose, verbose), nil)

	exprs := c.Args().Slice()
	if len(exprs) == 0 {
		exprs = examples
	}

	for _, expr := range exprs {
		var (
			out string
			err error
		)
		if expr == "-" {
			out, err = lispust.NewReader(c.App.Reader).Run()
		} else {
			out, err = r.Run(c.Context, runner.TransportCLI, expr)
		}
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		fmt.Fprintln(c.App.Writer, out)
	}
	return nil
}

func exactlyOneArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", cli.Exit(fmt.Sprintf("%s: expected one expression, got %d arguments", c.Command.Name, c.NArg()), 2)
	}
	return c.Args().First(), nil
}

func tokensAction(c *cli.Context) error {
	expr, err := exactlyOneArg(c)
	if err != nil {
		return err
	}
	for _, tok := range lexer.Tokenize(expr) {
		fmt.Fprintln(c.App.Writer, tok)
	}
	return nil
}

func parseAction(c *cli.Context) error {
	expr, err := exactlyOneArg(c)
	if err != nil {
		return err
	}

	root, err := parser.ParseString(expr)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	switch {
	case c.Bool("dump"):
		fmt.Fprintln(c.App.Writer, ast.Dump(root))
	case c.Bool("tree"):
		ast.Print(c.App.Writer, root)
	default:
		fmt.Fprintln(c.App.Writer, string(ast.Encode(root)))
	}
	return nil
}

func clientAction(c *cli.Context) error {
	expr, err := exactlyOneArg(c)
	if err != nil {
		return err
	}

	client, err := grpcserver.Dial(c.String("addr"))
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(c.Context, c.Duration("timeout"))
	defer cancel()

	out, err := client.Run(ctx, expr)
	if err != nil {
		return errors.Wrapf(err, "calling %s", c.String("addr"))
	}
	fmt.Fprintln(c.App.Writer, out)
	return nil
}
