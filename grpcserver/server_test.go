package grpcserver

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/jcgregorio/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/xiam/lispust/config"
	"github.com/xiam/lispust/runner"
)

const bufSize = 1024 * 1024

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func (discard) Sync() error { return nil }

func newTestClient(t *testing.T, cfg *config.Config) (*Client, *runner.Metrics) {
	t.Helper()

	log := logger.NewFromOptions(&logger.Options{SyncWriter: discard{}})

	metrics, err := runner.NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	s := New(cfg, log, runner.New(log, metrics))

	lis := bufconn.Listen(bufSize)
	go func() {
		_ = s.Serve(lis)
	}()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = s.Shutdown(ctx)
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		conn.Close()
	})

	return NewClient(conn), metrics
}

func TestRun(t *testing.T) {
	client, metrics := newTestClient(t, config.Default())
	ctx := context.Background()

	testCases := []struct {
		in  string
		out string
	}{
		{"(+ 2 3)", "5"},
		{"(- 10 3)", "7"},
		{"(if true 100 200)", "100"},
		{"(+ (- 10 3) 2)", "9"},
		{"(if false true false)", "false"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			out, err := client.Run(ctx, tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.out, out)
		})
	}

	assert.Equal(t, float64(len(testCases)), testutil.ToFloat64(metrics.Runs(runner.TransportGRPC, runner.ResultOK)))
}

func TestRunErrors(t *testing.T) {
	client, metrics := newTestClient(t, config.Default())
	ctx := context.Background()

	testCases := []struct {
		in      string
		message string
	}{
		{"(if 100 100 200)", "invalid if condition type: Number(100)"},
		{"(+ 2 true)", "invalid operand types for plus: Number(2), Boolean(true)"},
		{"(+ 2 3", "invalid expression: no parenthesis in tokens"},
		{")", "invalid expression: too many close parentheses"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			_, err := client.Run(ctx, tc.in)
			require.Error(t, err)

			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, codes.InvalidArgument, st.Code())
			assert.Equal(t, tc.message, st.Message())
		})
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.Runs(runner.TransportGRPC, runner.ResultEvalError)))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.Runs(runner.TransportGRPC, runner.ResultParseError)))
}

func TestRunMessageTooLarge(t *testing.T) {
	cfg := config.Default()
	cfg.MaxBodyBytes = 16

	client, _ := newTestClient(t, cfg)

	_, err := client.Run(context.Background(), "(+ 1 "+strings.Repeat("1", 200)+")")
	require.Error(t, err)
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
}

func TestCodeFor(t *testing.T) {
	assert.Equal(t, codes.Canceled, codeFor(context.Canceled))
	assert.Equal(t, codes.DeadlineExceeded, codeFor(context.DeadlineExceeded))
	assert.Equal(t, codes.Internal, codeFor(net.ErrClosed))
}

func TestClientCloseWithoutDial(t *testing.T) {
	assert.NoError(t, NewClient(nil).Close())
}
