package http

import "github.com/atlanticdynamic/statusd/internal/server/finitestate"

// Lifecycle states. Starting covers configuration and binding; the runner moves to
// Serving once, when it starts accepting requests.
const (
	StatusStarting = finitestate.StatusStarting
	StatusServing  = finitestate.StatusServing
	StatusStopped  = finitestate.StatusStopped
	StatusError    = finitestate.StatusError
)

// GetState returns the current state of the runner
func (r *Runner) GetState() string {
	return r.fsm.GetState()
}

// IsRunning returns whether the runner is serving requests
func (r *Runner) IsRunning() bool {
	return r.fsm.GetState() == StatusServing
}
