// Package http provides the loopback HTTP listener runnable.
//
// The Runner binds its socket explicitly (Listen) so callers can fail fast on a bind error
// before handing the runner to the supervisor, then serves until its context is canceled
// or Stop is called.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/atlanticdynamic/statusd/internal/server/finitestate"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/robbyt/go-supervisor/supervisor"
)

var _ supervisor.Runnable = (*Runner)(nil)

// Runner owns one listening socket and the http.Server serving it
type Runner struct {
	address  string
	handler  http.Handler
	logger   *slog.Logger
	timeouts TimeoutOptions

	mutex    sync.Mutex
	listener net.Listener
	server   *http.Server
	stopped  bool

	fsm finitestate.Machine
}

// NewRunner creates a runner for address serving the given routes.
func NewRunner(address string, routes []httpserver.Route, options ...Option) (*Runner, error) {
	if address == "" {
		return nil, ErrEmptyAddress
	}
	if len(routes) == 0 {
		return nil, ErrNoRoutes
	}

	r := &Runner{
		address:  address,
		handler:  NewMux(routes),
		logger:   slog.Default().WithGroup("http.Runner"),
		timeouts: DefaultTimeouts(),
	}
	for _, option := range options {
		option(r)
	}

	machine, err := finitestate.New(r.logger.WithGroup("fsm").Handler())
	if err != nil {
		return nil, fmt.Errorf("unable to create fsm: %w", err)
	}
	r.fsm = machine
	return r, nil
}

// NewMux registers each route on its path
func NewMux(routes []httpserver.Route) *http.ServeMux {
	mux := http.NewServeMux()
	for i := range routes {
		mux.Handle(routes[i].Path, &routes[i])
	}
	return mux
}

// String returns a unique identifier for this runner
func (r *Runner) String() string {
	return fmt.Sprintf("HTTPRunner[%s]", r.address)
}

// Listen binds the socket if it is not bound yet. A bind failure is returned as is,
// wrapped in ErrBind; there is no retry.
func (r *Runner) Listen() (net.Addr, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.listener != nil {
		return r.listener.Addr(), nil
	}

	lis, err := net.Listen("tcp", r.address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBind, r.address, err)
	}
	r.listener = lis
	r.logger.Debug("Listener bound", "address", lis.Addr().String())
	return lis.Addr(), nil
}

// Addr returns the bound address, or nil before Listen succeeds
func (r *Runner) Addr() net.Addr {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if r.listener == nil {
		return nil
	}
	return r.listener.Addr()
}

// Run binds (when needed) and serves until ctx is canceled or Stop is called.
func (r *Runner) Run(ctx context.Context) error {
	if _, err := r.Listen(); err != nil {
		finitestate.SetError(r.fsm, r.logger)
		return err
	}

	r.mutex.Lock()
	if r.stopped {
		r.mutex.Unlock()
		return nil
	}
	srv := r.newServer()
	r.server = srv
	lis := r.listener
	r.mutex.Unlock()

	if err := r.fsm.Transition(finitestate.StatusServing); err != nil {
		finitestate.SetError(r.fsm, r.logger)
		r.Stop()
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(lis)
	}()
	r.logger.Info("Serving HTTP", "address", lis.Addr().String())

	select {
	case <-ctx.Done():
		r.Stop()
		<-serveErr
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			finitestate.SetError(r.fsm, r.logger)
			return fmt.Errorf("%w: %w", ErrServe, err)
		}
	}
	return r.shutdown()
}

// shutdown records the stop in the state machine once the server has closed.
func (r *Runner) shutdown() error {
	if err := r.fsm.Transition(finitestate.StatusStopping); err != nil {
		r.logger.Error("Failed to transition to stopping state", "error", err)
	}
	if err := r.fsm.Transition(finitestate.StatusStopped); err != nil {
		finitestate.SetError(r.fsm, r.logger)
		return err
	}
	r.logger.Debug("HTTP runner stopped")
	return nil
}

// Stop closes the server and listener immediately; in-flight connections are not drained.
func (r *Runner) Stop() {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.stopped {
		return
	}
	r.stopped = true
	r.logger.Debug("Stopping HTTP runner", "address", r.address)

	if r.server != nil {
		if err := r.server.Close(); err != nil {
			r.logger.Debug("Error closing server", "error", err)
		}
		return
	}
	if r.listener != nil {
		if err := r.listener.Close(); err != nil {
			r.logger.Debug("Error closing listener", "error", err)
		}
	}
}

func (r *Runner) newServer() *http.Server {
	return &http.Server{
		Handler:           r.handler,
		ReadHeaderTimeout: r.timeouts.ReadHeaderTimeout,
		ReadTimeout:       r.timeouts.ReadTimeout,
		WriteTimeout:      r.timeouts.WriteTimeout,
		IdleTimeout:       r.timeouts.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(r.logger.Handler(), slog.LevelWarn),
	}
}

// TimeoutOptions contains timeout configuration for the HTTP server. Zero disables a timeout.
type TimeoutOptions struct {
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
}

// DefaultTimeouts only bounds header reads
func DefaultTimeouts() TimeoutOptions {
	return TimeoutOptions{
		ReadHeaderTimeout: 10 * time.Second,
	}
}
