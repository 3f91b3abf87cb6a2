package main

import (
	"context"
	"fmt"
	"os"

	"github.com/atlanticdynamic/statusd/cmd/statusd/server"
	"github.com/atlanticdynamic/statusd/internal/config"
	"github.com/atlanticdynamic/statusd/internal/logging/writers"
	"github.com/atlanticdynamic/statusd/internal/server/accesslog"
	"github.com/urfave/cli/v3"
)

// serveAction resolves the configuration and runs the service. Configuration and bind
// errors exit with status 1 before any request is served.
func serveAction(ctx context.Context, cmd *cli.Command) error {
	logger, err := SetupLogger(cmd.String(flagLogFormat), cmd.String(flagLogLevel))
	if err != nil {
		return cli.Exit(err, 1)
	}

	cfg, err := loadConfig(cmd.String(flagEnvFile))
	if err != nil {
		return cli.Exit(err, 1)
	}

	out, err := writers.CreateWriter(cmd.String(flagAccessLog))
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to open access log: %w", err), 1)
	}
	defer func() {
		if err := writers.Close(out); err != nil {
			logger.Warn("Failed to close access log", "error", err)
		}
	}()

	if err := server.Run(ctx, logger, cfg, accesslog.NewStreamSink(out)); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

// loadConfig applies the optional dotenv file, then resolves and validates the
// configuration from the process environment.
func loadConfig(envFile string) (config.Config, error) {
	if err := config.LoadEnvFile(envFile); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.FromEnv(os.LookupEnv)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}
