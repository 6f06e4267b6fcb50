// internal/application/usecase/fatal_state.go
package usecase

import (
	"log"
	"sync"
)

// FatalState is the application-wide terminal error latch.
//
// Exactly two severities exist in this service: fatal failures (plants
// feed broken, identity gate broken at boot) trip this latch and every
// subsequent request renders the terminal error view with no retry;
// non-fatal failures are logged at their source and never reach here.
//
// The latch is write-once: the first failure wins, later ones are
// logged and dropped.
type FatalState struct {
	mu     sync.RWMutex
	failed bool
	reason string
}

func NewFatalState() *FatalState {
	return &FatalState{}
}

// Fail trips the latch with a user-visible reason.
func (f *FatalState) Fail(reason string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failed {
		log.Printf("[fatal] already failed (%s); dropping: %s: %v", f.reason, reason, err)
		return
	}
	f.failed = true
	f.reason = reason
	log.Printf("[fatal] %s: %v", reason, err)
}

// Failed reports whether the latch is tripped, with the reason.
func (f *FatalState) Failed() (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.reason, f.failed
}
