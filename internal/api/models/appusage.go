package models

// AppUsageCreateRequest is the body for POST /api/appusage, and the
// element type of the bare-array body for POST /api/appusage/bulk.
type AppUsageCreateRequest struct {
	DeviceID      string   `json:"deviceId"`
	PackageName   *string  `json:"packageName,omitempty"`
	AppName       *string  `json:"appName,omitempty"`
	UsageDuration *float64 `json:"usageDuration,omitempty"`
	OpenCount     *int     `json:"openCount,omitempty"`
	Timestamp     FlexTime `json:"timestamp"`
}

// AppUsageEvent is a stored app-usage record.
type AppUsageEvent struct {
	ID            string    `json:"id"`
	DeviceID      string    `json:"deviceId"`
	PackageName   *string   `json:"packageName,omitempty"`
	AppName       *string   `json:"appName,omitempty"`
	UsageDuration *float64  `json:"usageDuration,omitempty"`
	OpenCount     *int      `json:"openCount,omitempty"`
	Timestamp     Timestamp `json:"timestamp"`
}
