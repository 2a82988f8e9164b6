package pqsig

import (
	"sync"
	"sync/atomic"

	"cosmossdk.io/log"
)

// degradeState is the one-way availability switch shared by every
// Algorithm a Suite hands out. It starts Available and transitions to
// Unavailable at most once; there is no way back. The first cause wins
// and is kept for diagnostics.
type degradeState struct {
	available atomic.Bool
	once      sync.Once
	cause     error
	logger    log.Logger
}

func newDegradeState(logger log.Logger) *degradeState {
	d := &degradeState{logger: logger}
	d.available.Store(true)
	return d
}

// Available reports whether the real backend path may still be used.
func (d *degradeState) Available() bool {
	return d.available.Load()
}

// MarkUnavailable flips the state to Unavailable. Only the first call
// records its cause; later calls are no-ops. The cause is written before
// the flag flips, so any reader that observes Unavailable also observes
// the cause.
func (d *degradeState) MarkUnavailable(cause error) {
	d.once.Do(func() {
		d.cause = cause
		d.available.Store(false)
		d.logger.Warn("post-quantum backend unavailable, using deterministic mock signatures", "cause", cause)
	})
}

// Cause returns the recorded degrade reason, or nil while Available.
func (d *degradeState) Cause() error {
	if d.available.Load() {
		return nil
	}
	return d.cause
}
