package finitestate

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMachine(t *testing.T) Machine {
	t.Helper()
	m, err := New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, err)
	return m
}

func TestNew(t *testing.T) {
	t.Parallel()

	m := newTestMachine(t)
	assert.Equal(t, StatusStarting, m.GetState())
}

func TestMachine_Lifecycle(t *testing.T) {
	t.Parallel()

	m := newTestMachine(t)
	require.NoError(t, m.Transition(StatusServing))
	assert.Equal(t, StatusServing, m.GetState())

	require.NoError(t, m.Transition(StatusStopping))
	require.NoError(t, m.Transition(StatusStopped))
	assert.Equal(t, StatusStopped, m.GetState())
}

func TestMachine_ServingOnlyFromStarting(t *testing.T) {
	t.Parallel()

	m := newTestMachine(t)
	require.NoError(t, m.Transition(StatusServing))
	require.NoError(t, m.Transition(StatusStopping))

	assert.Error(t, m.Transition(StatusServing))
	assert.Equal(t, StatusStopping, m.GetState())
}

func TestSetError(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("from starting", func(t *testing.T) {
		t.Parallel()
		m := newTestMachine(t)
		SetError(m, logger)
		assert.Equal(t, StatusError, m.GetState())
	})

	t.Run("from stopped", func(t *testing.T) {
		t.Parallel()
		m := newTestMachine(t)
		require.NoError(t, m.Transition(StatusServing))
		require.NoError(t, m.Transition(StatusStopping))
		require.NoError(t, m.Transition(StatusStopped))
		SetError(m, logger)
		assert.Equal(t, StatusError, m.GetState())
	})
}
