// Package appusage provides storage and ingestion for app-usage records.
package appusage

import "time"

// Event represents one app-usage record.
type Event struct {
	ID            string
	DeviceID      string
	PackageName   *string
	AppName       *string
	UsageDuration *float64
	OpenCount     *int
	RecordedAt    time.Time
}
