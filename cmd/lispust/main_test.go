package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cli "github.com/urfave/cli/v2"

	"github.com/xiam/lispust/config"
)

type lockedBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (l *lockedBuffer) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

func (l *lockedBuffer) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.String()
}

type testApp struct {
	app    *cli.App
	stdout bytes.Buffer
	stderr lockedBuffer
}

func newTestApp(stdin string) *testApp {
	ta := &testApp{app: newApp(config.Default())}
	ta.app.Reader = strings.NewReader(stdin)
	ta.app.Writer = &ta.stdout
	ta.app.ErrWriter = &ta.stderr
	ta.app.ExitErrHandler = func(*cli.Context, error) {}
	return ta
}

func (ta *testApp) run(args ...string) error {
	return ta.app.Run(append([]string{"lispust"}, args...))
}

func TestRun(t *testing.T) {
	testCases := []struct {
		args  []string
		stdin string
		out   string
	}{
		{nil, "", "5\n7\n100\n"},
		{[]string{"(+ 2 3)"}, "", "5\n"},
		{[]string{"(+ (- 10 3) 2)", "(if false 1 2)"}, "", "9\n2\n"},
		{[]string{"-"}, "(if true\n  (+ 1 1)\n  0)\n", "2\n"},
		{[]string{"(- 1 2)", "-"}, "(+ 40 2)", "-1\n42\n"},
	}

	for _, tc := range testCases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			ta := newTestApp(tc.stdin)
			require.NoError(t, ta.run(append([]string{"run"}, tc.args...)...))
			assert.Equal(t, tc.out, ta.stdout.String())
			assert.Empty(t, ta.stderr.String())
		})
	}
}

func TestRunStopsAtFirstError(t *testing.T) {
	ta := newTestApp("")

	err := ta.run("run", "(+ 1 1)", "(if 100 100 200)", "(+ 2 2)")
	require.Error(t, err)

	exitErr, ok := err.(cli.ExitCoder)
	require.True(t, ok)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Equal(t, "invalid if condition type: Number(100)", err.Error())
	assert.Equal(t, "2\n", ta.stdout.String())
}

func TestRunVerbose(t *testing.T) {
	ta := newTestApp("")

	require.NoError(t, ta.run("--verbose", "run", "(+ 2 3)"))
	assert.Equal(t, "5\n", ta.stdout.String())
	assert.Contains(t, ta.stderr.String(), `cli: "(+ 2 3)" => 5`)
}

func TestTokens(t *testing.T) {
	ta := newTestApp("")

	require.NoError(t, ta.run("tokens", "(+ 2 3)"))
	assert.Equal(t, strings.Join([]string{
		`(:open_expression "(")`,
		`(:word "+")`,
		`(:word "2")`,
		`(:word "3")`,
		`(:close_expression ")")`,
	}, "\n")+"\n", ta.stdout.String())

	ta = newTestApp("")
	err := ta.run("tokens", "(+ 2 3)", "extra")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected one expression, got 2 arguments")
}

func TestParse(t *testing.T) {
	ta := newTestApp("")
	require.NoError(t, ta.run("parse", "(if   true (+ 1 2) 0)"))
	assert.Equal(t, "(if true (+ 1 2) 0)\n", ta.stdout.String())

	ta = newTestApp("")
	require.NoError(t, ta.run("parse", "--dump", "(+ 1 2)"))
	assert.Contains(t, ta.stdout.String(), "ast.BinaryOp")

	ta = newTestApp("")
	require.NoError(t, ta.run("parse", "--tree", "(+ 1 2)"))
	assert.Contains(t, ta.stdout.String(), "(number): 1")

	ta = newTestApp("")
	err := ta.run("parse", "(+ 1 2")
	require.Error(t, err)
	assert.Equal(t, "invalid expression: no parenthesis in tokens", err.Error())
}

func TestServeStopsWithContext(t *testing.T) {
	ta := newTestApp("")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() {
		done <- ta.app.RunContext(ctx, []string{"lispust", "serve", "--http_addr=127.0.0.1:0", "--grpc_addr=127.0.0.1:0"})
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not stop")
	}
	assert.Contains(t, ta.stderr.String(), "stopped")
}

func TestServeInvalidConfig(t *testing.T) {
	ta := newTestApp("")
	err := ta.run("serve", "--http_addr=", "--grpc_addr=")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one of http_addr and grpc_addr")
}

func TestServeConfigFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "lispust.yaml")
	require.NoError(t, os.WriteFile(filename, []byte("http_addr: \"127.0.0.1:9999\"\ndebug: true\n"), 0o644))

	flags := config.Default()
	app := &cli.App{
		Name:  "testapp",
		Flags: flags.AsCliFlags(),
		Action: func(c *cli.Context) error {
			cfg, err := resolveConfig(c, flags)
			require.NoError(t, err)

			assert.Equal(t, "127.0.0.1:0", cfg.HTTPAddr)
			assert.Equal(t, "[::1]:50051", cfg.GRPCAddr)
			assert.True(t, cfg.Debug)
			return nil
		},
	}
	require.NoError(t, app.Run([]string{"testapp", "--config", filename, "--http_addr=127.0.0.1:0"}))
}
