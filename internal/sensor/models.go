// Package sensor provides storage and ingestion for raw sensor readings
// (gyroscope, magnetometer, light, proximity).
package sensor

import "time"

// Reading represents one sensor reading.
type Reading struct {
	ID              string
	DeviceID        string
	RecordedAt      time.Time
	GyroX           *float64
	GyroY           *float64
	GyroZ           *float64
	MagX            *float64
	MagY            *float64
	MagZ            *float64
	LightSensor     *float64
	ProximitySensor *bool
}

// TimeRange bounds a query by recorded time. Both bounds are inclusive;
// a nil bound imposes no constraint on that side.
type TimeRange struct {
	Start *time.Time
	End   *time.Time
}

// Contains reports whether t falls inside the range.
func (tr TimeRange) Contains(t time.Time) bool {
	if tr.Start != nil && t.Before(*tr.Start) {
		return false
	}
	if tr.End != nil && t.After(*tr.End) {
		return false
	}
	return true
}
