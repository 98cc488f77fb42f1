package logger

import (
	"strings"
	"sync"
)

// boundedBuffer keeps only the newest logBufferCap bytes written to it, so a
// long session cannot grow the in-memory log without limit.
type boundedBuffer struct {
	data []byte
	size int
	lock sync.Mutex
}

func newBoundedBuffer(capacity int) *boundedBuffer {
	return &boundedBuffer{
		data: make([]byte, 0, capacity),
		size: capacity,
	}
}

func (b *boundedBuffer) Write(p []byte) (int, error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	if len(p) >= b.size {
		// input is too big, only the last portion survives
		b.data = append(b.data[:0], p[len(p)-b.size:]...)
		return len(p), nil
	}
	if overflow := len(b.data) + len(p) - b.size; overflow > 0 {
		b.data = b.data[overflow:]
	}
	b.data = append(b.data, p...)
	return len(p), nil
}

// String returns the buffered logs without consuming them, trimmed to whole
// lines when the oldest entry was cut mid-line.
func (b *boundedBuffer) String() string {
	b.lock.Lock()
	defer b.lock.Unlock()

	s := string(b.data)
	if len(b.data) == b.size {
		if i := strings.IndexByte(s, '\n'); i >= 0 && i < len(s)-1 {
			s = s[i+1:]
		}
	}
	return s
}
