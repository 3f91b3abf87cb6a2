package testutil

import (
	"bytes"
	"strings"
	"sync"
)

// ThreadSafeBuffer is a thread-safe wrapper around bytes.Buffer
type ThreadSafeBuffer struct {
	buffer bytes.Buffer
	mutex  sync.Mutex
}

// Write implements io.Writer
func (b *ThreadSafeBuffer) Write(p []byte) (n int, err error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buffer.Write(p)
}

// String returns the accumulated buffer as a string
func (b *ThreadSafeBuffer) String() string {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buffer.String()
}

// Lines returns the buffered content split on newlines, without a trailing empty line
func (b *ThreadSafeBuffer) Lines() []string {
	out := strings.TrimSuffix(b.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
