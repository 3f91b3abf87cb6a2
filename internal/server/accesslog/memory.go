package accesslog

import "sync"

var _ Sink = (*MemorySink)(nil)

// MemorySink keeps emitted lines in memory.
type MemorySink struct {
	mu    sync.Mutex
	lines []string
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Emit records the formatted entry
func (m *MemorySink) Emit(e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, e.String())
	return nil
}

// Lines returns a copy of the recorded lines in emission order
func (m *MemorySink) Lines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.lines))
	copy(out, m.lines)
	return out
}
