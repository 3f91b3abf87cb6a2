// Package status implements the status endpoint: GET / returns the resolved configuration
// and a constant status marker as JSON, and emits one access log line per request.
package status

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/atlanticdynamic/statusd/internal/config"
	"github.com/atlanticdynamic/statusd/internal/server/accesslog"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

const (
	// RootPath is the only path the app answers
	RootPath = "/"

	// RouteName identifies the route and is the route field of every access log line
	RouteName = "GET /"

	// StatusOK is the constant value of the status field
	StatusOK = "ok"

	contentTypeJSON = "application/json"
	allowedMethods  = "GET, HEAD"
)

// Response is the JSON body returned by GET /.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Release string `json:"release"`
	Port    int    `json:"port"`
}

// App serves the status endpoint for one immutable Config.
type App struct {
	cfg    config.Config
	sink   accesslog.Sink
	logger *slog.Logger
	body   []byte
}

// Option configures an App
type Option func(*App)

// WithLogger sets the logger used when the access log sink fails
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New creates an App for cfg. The JSON body is rendered once here since cfg never changes.
func New(cfg config.Config, sink accesslog.Sink, opts ...Option) (*App, error) {
	if sink == nil {
		return nil, ErrNilSink
	}

	a := &App{
		cfg:    cfg,
		sink:   sink,
		logger: slog.Default().WithGroup("status"),
	}
	for _, opt := range opts {
		opt(a)
	}

	body, err := json.Marshal(a.Response())
	if err != nil {
		return nil, fmt.Errorf("failed to encode status response: %w", err)
	}
	a.body = append(body, '\n')

	return a, nil
}

// String returns the route name
func (a *App) String() string {
	return RouteName
}

// Response returns the payload served for the configuration.
func (a *App) Response() Response {
	return Response{
		Status:  StatusOK,
		Message: a.cfg.Message,
		Release: a.cfg.Release,
		Port:    a.cfg.Port,
	}
}

// ServeHTTP answers GET and HEAD on the root path. Other paths get a 404 and other
// methods a 405; neither produces an access log line.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != RootPath {
		http.NotFound(w, r)
		return
	}

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", allowedMethods)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	entry := accesslog.Entry{
		Route:   RouteName,
		Message: a.cfg.Message,
		Release: a.cfg.Release,
	}
	if err := a.sink.Emit(entry); err != nil {
		a.logger.Warn("Failed to write access log", "error", err)
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(a.body); err != nil {
		a.logger.Debug("Failed to write response", "error", err)
	}
}

// Routes wraps the app in a go-supervisor route mounted on the root path, running the
// given middlewares before the handler.
func (a *App) Routes(middlewares ...httpserver.HandlerFunc) ([]httpserver.Route, error) {
	route, err := httpserver.NewRouteFromHandlerFunc(RouteName, RootPath, a.ServeHTTP, middlewares...)
	if err != nil {
		return nil, fmt.Errorf("failed to create route %s: %w", RouteName, err)
	}
	return []httpserver.Route{*route}, nil
}
