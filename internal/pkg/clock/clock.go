package clock

import (
	"sync"
	"time"
)

// Resolution is the smallest step the database columns can store
// (datetime(6) in MySQL).
const Resolution = time.Microsecond

// Clock is a source of timestamps.
type Clock interface {
	Now() time.Time
}

// Monotonic hands out strictly increasing UTC timestamps truncated to
// Resolution. Two calls in the same microsecond get distinct values.
type Monotonic struct {
	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

func NewMonotonic() *Monotonic {
	return &Monotonic{now: time.Now}
}

// NewMonotonicFrom uses now as the underlying wall clock. Handy in tests.
func NewMonotonicFrom(now func() time.Time) *Monotonic {
	return &Monotonic{now: now}
}

func (m *Monotonic) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.now().UTC().Truncate(Resolution)
	if !t.After(m.last) {
		t = m.last.Add(Resolution)
	}
	m.last = t
	return t
}
