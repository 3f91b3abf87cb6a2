package accesslog

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var _ Sink = (*StreamSink)(nil)

// flusher is implemented by buffered writers such as bufio.Writer
type flusher interface {
	Flush() error
}

// StreamSink writes each entry as a line to an io.Writer and flushes it before returning.
type StreamSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewStreamSink creates a sink writing to w, or to stdout when w is nil.
func NewStreamSink(w io.Writer) *StreamSink {
	if w == nil {
		w = os.Stdout
	}
	return &StreamSink{w: w}
}

// Emit writes the entry followed by a newline. Writes to an *os.File are unbuffered;
// buffered writers are flushed so the line is visible to stream collectors immediately.
func (s *StreamSink) Emit(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := io.WriteString(s.w, e.String()+"\n"); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	if f, ok := s.w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}
	return nil
}
