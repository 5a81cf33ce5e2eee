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

// Contains reports whether substr has been written
func (b *ThreadSafeBuffer) Contains(substr string) bool {
	return strings.Contains(b.String(), substr)
}

// Count returns the number of non-overlapping occurrences of substr
func (b *ThreadSafeBuffer) Count(substr string) int {
	return strings.Count(b.String(), substr)
}
