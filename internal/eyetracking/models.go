// Package eyetracking provides storage and ingestion for eye-tracking
// samples. Samples only arrive in batches.
package eyetracking

import "time"

// Sample represents one eye-tracking sample. Direction tokens are stored
// verbatim; the accepted set mixes English and German values and existing
// clients depend on both.
type Sample struct {
	ID            string
	RecordedAt    time.Time
	IsUserLooking bool
	Direction     *string
	EyePosition   map[string]float64
	DeviceID      *string
}
