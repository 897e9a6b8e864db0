// internal/status/tracker.go
package status

import (
	"errors"
	"time"
)

// Tracker owns the worker snapshot and applies cycle outcomes to it.
// It is not safe for concurrent use; the orchestrator goroutine owns it.
type Tracker struct {
	snap Snapshot
}

// NewTracker starts in HealthUnknown.
func NewTracker() *Tracker {
	return &Tracker{snap: Snapshot{Health: HealthUnknown}}
}

// Snapshot returns the current state.
func (t *Tracker) Snapshot() Snapshot { return t.snap }

// Apply records the outcome of one publish cycle and reports whether the
// snapshot changed. A nil err is a successful publish at time at.
func (t *Tracker) Apply(err error, at time.Time) bool {
	changed := false

	if err == nil {
		// Recovery / OK
		if t.snap.Health != HealthOK {
			t.snap.Health = HealthOK
			changed = true
		}
		if t.snap.LastErrorCode != 0 {
			t.snap.LastErrorCode = 0
			changed = true
		}
		if t.snap.SecondsInError != 0 {
			t.snap.SecondsInError = 0
			changed = true
		}
		if !at.Equal(t.snap.LastPublish) {
			t.snap.LastPublish = at
			changed = true
		}
		return changed
	}

	// Error
	if t.snap.Health != HealthError {
		t.snap.Health = HealthError
		changed = true
	}

	code := ErrorCode(err)
	if t.snap.LastErrorCode != code {
		t.snap.LastErrorCode = code
		changed = true
	}

	// NOTE: seconds_in_error increments on Tick only.
	return changed
}

// Tick advances the 1 Hz error counter while not OK.
// The counter saturates instead of wrapping.
func (t *Tracker) Tick() bool {
	if t.snap.Health == HealthOK {
		return false
	}
	if t.snap.SecondsInError >= MaxSecondsInError {
		return false
	}
	t.snap.SecondsInError++
	return true
}

// ErrorCode extracts a best-effort uint16 code from an error without
// assuming concrete types. If the error does not expose a code, returns 1.
func ErrorCode(err error) uint16 {
	if err == nil {
		return 0
	}

	var c interface{ Code() uint16 }
	if errors.As(err, &c) {
		return c.Code()
	}

	return 1
}
