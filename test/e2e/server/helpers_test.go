//go:build e2e
// +build e2e

package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	serverCmd "github.com/atlanticdynamic/statusd/cmd/statusd/server"
	"github.com/atlanticdynamic/statusd/internal/config"
	"github.com/atlanticdynamic/statusd/internal/server/accesslog"
	"github.com/atlanticdynamic/statusd/internal/testutil"
	"github.com/stretchr/testify/require"
)

// runningServer is a statusd instance started from an environment map
type runningServer struct {
	cfg       config.Config
	accessLog *testutil.ThreadSafeBuffer
	cancel    context.CancelFunc
	errCh     chan error
	stopOnce  sync.Once
}

// startServer resolves the configuration from env the same way the CLI does and serves it
// until the test ends.
func startServer(t *testing.T, env map[string]string) *runningServer {
	t.Helper()

	cfg, err := config.FromEnv(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	buf := &testutil.ThreadSafeBuffer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx, cancel := context.WithCancel(t.Context())
	s := &runningServer{
		cfg:       cfg,
		accessLog: buf,
		cancel:    cancel,
		errCh:     make(chan error, 1),
	}
	go func() {
		s.errCh <- serverCmd.Run(ctx, logger, cfg, accesslog.NewStreamSink(buf))
	}()
	t.Cleanup(func() { s.stop(t) })

	waitForServer(t, s.url("/"))
	return s
}

func (s *runningServer) url(path string) string {
	return "http://" + s.cfg.Address() + path
}

func (s *runningServer) stop(t *testing.T) {
	t.Helper()
	s.stopOnce.Do(func() {
		s.cancel()
		select {
		case err := <-s.errCh:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not shut down")
		}
	})
}

func waitForServer(t *testing.T, url string) {
	t.Helper()
	client := &http.Client{Timeout: 500 * time.Millisecond}
	require.Eventually(t, func() bool {
		resp, err := client.Head(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 10*time.Second, 50*time.Millisecond, "server never became ready at %s", url)
}
