package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atlanticdynamic/statusd/internal/config"
	"github.com/atlanticdynamic/statusd/internal/server/accesslog"
	"github.com/atlanticdynamic/statusd/internal/server/apps/status"
	"github.com/atlanticdynamic/statusd/internal/server/runnables/listeners/http"
	httplogger "github.com/atlanticdynamic/statusd/internal/server/runnables/listeners/http/middleware/logger"
	"github.com/robbyt/go-supervisor/supervisor"
)

// Run serves the status endpoint for cfg until ctx is canceled or the supervisor receives a
// termination signal. The socket is bound before the supervisor starts, so a bind failure is
// returned directly.
func Run(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.Config,
	sink accesslog.Sink,
) error {
	runner, err := newRunner(logger, cfg, sink)
	if err != nil {
		return err
	}

	addr, err := runner.Listen()
	if err != nil {
		return err
	}
	logger.Info("Listener bound",
		"address", addr.String(),
		"message", cfg.Message,
		"release", cfg.Release)

	return runSupervised(ctx, logger, runner)
}

func newRunner(logger *slog.Logger, cfg config.Config, sink accesslog.Sink) (*http.Runner, error) {
	logHandler := logger.Handler()

	app, err := status.New(cfg, sink, status.WithLogger(logger.WithGroup("status")))
	if err != nil {
		return nil, fmt.Errorf("failed to create status app: %w", err)
	}

	routes, err := app.Routes(httplogger.NewConsoleLogger(logHandler).Middleware())
	if err != nil {
		return nil, fmt.Errorf("failed to create routes: %w", err)
	}

	runner, err := http.NewRunner(cfg.Address(), routes, http.WithLogHandler(logHandler))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP listener runner: %w", err)
	}
	return runner, nil
}

func runSupervised(ctx context.Context, logger *slog.Logger, runnables ...supervisor.Runnable) error {
	super, err := supervisor.New(
		supervisor.WithContext(ctx),
		supervisor.WithLogHandler(logger.Handler()),
		supervisor.WithRunnables(runnables...),
	)
	if err != nil {
		return fmt.Errorf("failed to create supervisor: %w", err)
	}
	if err := super.Run(); err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}

	logger.Info("Server shutdown complete")
	return nil
}
