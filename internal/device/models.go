// Package device provides storage and ingestion for device metadata
// observations. Each POST records a new observation row; deviceId is a
// loose correlation key, not a unique one.
package device

import (
	"time"

	"github.com/adaptiveui/tracker/internal/record"
)

// ErrDeviceNotFound indicates a single-device lookup missed.
var ErrDeviceNotFound error = &record.NotFoundError{Resource: "device"}

// Device represents one device metadata observation.
type Device struct {
	ID                string
	DeviceID          string
	Model             *string
	Manufacturer      *string
	OSVersion         *string
	ScreenBrightness  *float64
	ScreenOrientation *string
	OneHandMode       *bool
	DominantHand      *string
	RecordedAt        time.Time
}
