package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreadSafeBuffer(t *testing.T) {
	var buf ThreadSafeBuffer
	assert.Nil(t, buf.Lines())

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := buf.Write([]byte("line\n"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	lines := buf.Lines()
	require.Len(t, lines, 10)
	for _, l := range lines {
		assert.Equal(t, "line", l)
	}
}
