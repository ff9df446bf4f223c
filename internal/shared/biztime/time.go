// Package biztime is the single source of "now" for domain and application
// code. All timestamps are stored and compared in UTC.
package biztime

import (
	"sync"
	"time"
)

var (
	clockMu sync.RWMutex
	clock   = time.Now
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	clockMu.RLock()
	defer clockMu.RUnlock()
	return clock().UTC()
}

// SetClock replaces the time source and returns a func restoring the
// previous one. Intended for tests.
func SetClock(fn func() time.Time) (restore func()) {
	clockMu.Lock()
	prev := clock
	clock = fn
	clockMu.Unlock()

	return func() {
		clockMu.Lock()
		clock = prev
		clockMu.Unlock()
	}
}

// Freeze pins the clock to t. Shorthand for SetClock with a constant.
func Freeze(t time.Time) (restore func()) {
	return SetClock(func() time.Time { return t })
}
