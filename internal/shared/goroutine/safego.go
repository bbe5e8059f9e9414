// Package goroutine launches goroutines that log panics instead of crashing
// the process.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/chennai-a11y/prefsync/internal/shared/logger"
)

// SafeGo runs fn on a new goroutine with panic recovery.
func SafeGo(log logger.Interface, name string, fn func()) {
	go run(log, name, fn, nil)
}

// SafeGoDone is SafeGo with a channel closed once fn returns or panics.
func SafeGoDone(log logger.Interface, name string, fn func()) <-chan struct{} {
	done := make(chan struct{})
	go run(log, name, fn, done)
	return done
}

func run(log logger.Interface, name string, fn func(), done chan struct{}) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorw("goroutine panicked",
				"goroutine", name,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
		}
		if done != nil {
			close(done)
		}
	}()
	fn()
}
