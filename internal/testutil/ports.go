package testutil

import (
	"net"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	portMutex = &sync.Mutex{}
	usedPorts = make(map[int]struct{})
)

// GetRandomPort returns a free TCP port that no other caller in this test binary has been handed
func GetRandomPort(t *testing.T) int {
	t.Helper()
	portMutex.Lock()
	defer portMutex.Unlock()

	for {
		listener, err := net.Listen("tcp", ":0")
		require.NoError(t, err, "Failed to get random port")

		p := listener.Addr().(*net.TCPAddr).Port
		require.NoError(t, listener.Close(), "Failed to close listener")

		if _, ok := usedPorts[p]; ok {
			continue
		}
		usedPorts[p] = struct{}{}
		return p
	}
}

// HoldPort binds a random port and keeps it bound until the test finishes
func HoldPort(t *testing.T) (net.Listener, int) {
	t.Helper()
	portMutex.Lock()
	defer portMutex.Unlock()

	listener, err := net.Listen("tcp", ":0")
	require.NoError(t, err, "Failed to bind random port")
	t.Cleanup(func() {
		_ = listener.Close()
	})

	p := listener.Addr().(*net.TCPAddr).Port
	usedPorts[p] = struct{}{}
	return listener, p
}
