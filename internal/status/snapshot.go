// internal/status/snapshot.go
package status

import "time"

// Snapshot represents exactly what status sinks are allowed to deliver.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Health         uint16
	LastErrorCode  uint16
	SecondsInError uint16
	LastPublish    time.Time // zero until the first successful publish
}
