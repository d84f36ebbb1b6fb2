// Package touch provides storage and ingestion for touch gesture events.
// Touch events only arrive in batches; there is no single-event endpoint.
package touch

import "time"

// Event represents one touch gesture event. Clients report the timestamp
// as a raw epoch number; it is normalized to a point in time before it
// reaches this type.
type Event struct {
	ID         string
	RecordedAt time.Time
	X          float64
	Y          float64
	Type       string
	Direction  *string
	EndX       *float64
	EndY       *float64
	DurationMs *float64
	DeviceID   *string
}
