package main

import (
	"log/slog"
	"testing"

	"github.com/atlanticdynamic/statusd/internal/config/logs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	originalLogger := slog.Default()
	defer slog.SetDefault(originalLogger)

	tests := []struct {
		name         string
		format       string
		logLevel     string
		debugEnabled bool
		infoEnabled  bool
		wantErr      bool
	}{
		{name: "debug text", format: "text", logLevel: "debug", debugEnabled: true, infoEnabled: true},
		{name: "trace maps to debug", format: "text", logLevel: "trace", debugEnabled: true, infoEnabled: true},
		{name: "info json", format: "json", logLevel: "info", infoEnabled: true},
		{name: "warn", format: "text", logLevel: "warn"},
		{name: "empty defaults to info", format: "", logLevel: "", infoEnabled: true},
		{name: "invalid level", format: "text", logLevel: "loud", wantErr: true},
		{name: "invalid format", format: "xml", logLevel: "info", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := SetupLogger(tt.format, tt.logLevel)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			ctx := t.Context()
			assert.Equal(t, tt.debugEnabled, logger.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.infoEnabled, logger.Enabled(ctx, slog.LevelInfo))
			assert.Same(t, logger, slog.Default())
		})
	}
}

func TestSetupLoggerFromConfig(t *testing.T) {
	originalLogger := slog.Default()
	defer slog.SetDefault(originalLogger)

	t.Run("valid config", func(t *testing.T) {
		logger, err := setupLoggerFromConfig(logs.Config{Format: logs.FormatJSON, Level: logs.LevelWarn})
		require.NoError(t, err)
		assert.False(t, logger.Enabled(t.Context(), slog.LevelInfo))
		assert.True(t, logger.Enabled(t.Context(), slog.LevelWarn))
	})

	t.Run("invalid config is rejected before setup", func(t *testing.T) {
		before := slog.Default()
		_, err := setupLoggerFromConfig(logs.Config{Format: logs.Format("yaml"), Level: logs.Level("loud")})
		require.Error(t, err)
		assert.ErrorIs(t, err, logs.ErrInvalidLogFormat)
		assert.ErrorIs(t, err, logs.ErrInvalidLogLevel)
		assert.Same(t, before, slog.Default())
	})
}
