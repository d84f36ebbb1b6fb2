package models

// DeviceCreateRequest is the body for POST /api/device. Every post records
// a new observation; there is no singleton row per device.
type DeviceCreateRequest struct {
	DeviceID          string   `json:"deviceId"`
	Model             *string  `json:"model,omitempty"`
	Manufacturer      *string  `json:"manufacturer,omitempty"`
	OSVersion         *string  `json:"osVersion,omitempty"`
	ScreenBrightness  *float64 `json:"screenBrightness,omitempty"`
	ScreenOrientation *string  `json:"screenOrientation,omitempty"`
	OneHandMode       *bool    `json:"oneHandMode,omitempty"`
	DominantHand      *string  `json:"dominantHand,omitempty"`
	Timestamp         FlexTime `json:"timestamp"`
}

// Device is a stored device observation.
type Device struct {
	ID                string    `json:"id"`
	DeviceID          string    `json:"deviceId"`
	Model             *string   `json:"model,omitempty"`
	Manufacturer      *string   `json:"manufacturer,omitempty"`
	OSVersion         *string   `json:"osVersion,omitempty"`
	ScreenBrightness  *float64  `json:"screenBrightness,omitempty"`
	ScreenOrientation *string   `json:"screenOrientation,omitempty"`
	OneHandMode       *bool     `json:"oneHandMode,omitempty"`
	DominantHand      *string   `json:"dominantHand,omitempty"`
	Timestamp         Timestamp `json:"timestamp"`
}
