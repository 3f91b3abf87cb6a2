package testutil

import (
	"net"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRandomPort(t *testing.T) {
	port := GetRandomPort(t)
	assert.Greater(t, port, 0)
	assert.Less(t, port, 65536)
}

func TestGetRandomPortUnique(t *testing.T) {
	ports := make(map[int]bool)
	for range 10 {
		port := GetRandomPort(t)
		assert.False(t, ports[port], "Port %d was already used", port)
		ports[port] = true
	}
}

func TestGetRandomPortConcurrency(t *testing.T) {
	var wg sync.WaitGroup
	portChan := make(chan int, 20)

	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			portChan <- GetRandomPort(t)
		}()
	}

	wg.Wait()
	close(portChan)

	seen := make(map[int]bool)
	for port := range portChan {
		assert.False(t, seen[port], "Port %d was handed out twice", port)
		seen[port] = true
	}
}

func TestOccupyPort(t *testing.T) {
	port := OccupyPort(t)
	_, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
	assert.Error(t, err, "port should still be bound")
}
