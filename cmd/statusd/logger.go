package main

import (
	"fmt"
	"log/slog"

	"github.com/atlanticdynamic/statusd/internal/config/logs"
	"github.com/atlanticdynamic/statusd/internal/logging"
)

// SetupLogger parses the log options and configures the default logger
func SetupLogger(format, level string) (*slog.Logger, error) {
	cfg, err := logs.FromStrings(format, level)
	if err != nil {
		return nil, fmt.Errorf("invalid logging options: %w", err)
	}
	return setupLoggerFromConfig(cfg)
}

func setupLoggerFromConfig(cfg logs.Config) (*slog.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logging options: %w", err)
	}
	return logging.SetupLogger(cfg.Format.String(), cfg.Level.String()), nil
}
