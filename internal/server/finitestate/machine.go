// Package finitestate wraps go-fsm for the listener lifecycle.
//
// The listener uses the typical go-fsm transition table. Starting is the Booting state
// (configuration resolved, socket possibly bound) and Serving is the Running state.
package finitestate

import (
	"log/slog"

	"github.com/robbyt/go-fsm/v2"
	"github.com/robbyt/go-fsm/v2/transitions"
)

const (
	StatusNew      = transitions.StatusNew
	StatusStarting = transitions.StatusBooting
	StatusServing  = transitions.StatusRunning
	StatusStopping = transitions.StatusStopping
	StatusStopped  = transitions.StatusStopped
	StatusError    = transitions.StatusError
	StatusUnknown  = transitions.StatusUnknown
)

// Machine is the subset of the go-fsm machine the listener uses.
type Machine interface {
	// Transition moves to state, failing when the transition table does not allow it.
	Transition(state string) error

	// TransitionBool is Transition reporting success as a bool.
	TransitionBool(state string) bool

	// SetState forces the state without consulting the transition table.
	SetState(state string) error

	// GetState returns the current state.
	GetState() string
}

// New creates a machine in the Starting state.
func New(handler slog.Handler) (Machine, error) {
	machine, err := fsm.New(StatusNew, transitions.Typical, fsm.WithLogHandler(handler))
	if err != nil {
		return nil, err
	}
	if err := machine.Transition(StatusStarting); err != nil {
		return nil, err
	}
	return machine, nil
}

// SetError moves the machine to Error, forcing it when the transition is not allowed.
func SetError(m Machine, logger *slog.Logger) {
	if m.TransitionBool(StatusError) {
		return
	}
	if err := m.SetState(StatusError); err != nil {
		logger.Error("Failed to set Error state", "error", err)
	}
}
