package core

import "sync/atomic"

// nextInstanceID is an atomic counter for unique element instance IDs.
var nextInstanceID uint64

// NextInstanceID returns a process-unique identifier. The runtime assigns
// one per element at mount; components may draw additional IDs for their
// own stable tokens.
func NextInstanceID() uint64 {
	return atomic.AddUint64(&nextInstanceID, 1)
}
