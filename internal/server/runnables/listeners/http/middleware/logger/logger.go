// Package logger provides request logging middleware for operational (slog) logs.
//
// This is separate from the access log: lines produced here are diagnostic, go to the
// configured slog handler, and are emitted at debug level for successful requests.
package logger

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

// lgr is implemented by slog.Logger
type lgr interface {
	LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
}

// ConsoleLogger logs method, path, status and duration of each request
type ConsoleLogger struct {
	logger lgr
}

// NewConsoleLogger creates the middleware using the provided slog handler. A nil handler
// falls back to the default logger's handler.
func NewConsoleLogger(handler slog.Handler) *ConsoleLogger {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &ConsoleLogger{
		logger: slog.New(handler).WithGroup("http"),
	}
}

// Middleware returns the middleware function
func (cl *ConsoleLogger) Middleware() httpserver.HandlerFunc {
	return func(rp *httpserver.RequestProcessor) {
		r := rp.Request()
		start := time.Now()

		rp.Next()

		status := rp.Writer().Status()
		if status == 0 {
			status = http.StatusOK
		}

		cl.logger.LogAttrs(r.Context(), levelForStatus(status), "HTTP request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", clientIP(r)),
		)
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelDebug
	}
}

// clientIP strips the port from RemoteAddr. Forwarding headers are ignored since the
// listener is loopback only.
func clientIP(r *http.Request) string {
	if idx := strings.LastIndex(r.RemoteAddr, ":"); idx != -1 {
		return r.RemoteAddr[:idx]
	}
	return r.RemoteAddr
}
