// Package goroutine launches background work that must not take the process
// down when it panics.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// SafeGo runs fn in a new goroutine. A panic is logged with its stack and
// swallowed. The returned channel is closed once fn has finished.
func SafeGo(log logger.Interface, name string, fn func()) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer recoverPanic(log, name)
		fn()
	}()
	return done
}

func recoverPanic(log logger.Interface, name string) {
	if r := recover(); r != nil {
		log.Errorw("goroutine panicked",
			"goroutine", name,
			"panic", fmt.Sprint(r),
			"stack", string(debug.Stack()),
		)
	}
}
