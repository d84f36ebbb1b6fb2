package models

// EyeTrackingBatchRequest is the body for POST /api/eyetracking. The
// payload must carry its samples under the eyeTrackingData key.
type EyeTrackingBatchRequest struct {
	EyeTrackingData []EyeTrackingSampleCreateRequest `json:"eyeTrackingData"`
}

// EyeTrackingSampleCreateRequest is one eye-tracking sample in a batch.
// Textual timestamps are parsed per element; an unparseable value falls
// back to the record-creation time instead of failing the batch.
type EyeTrackingSampleCreateRequest struct {
	Timestamp     FlexTime           `json:"timestamp"`
	IsUserLooking *bool              `json:"isUserLooking,omitempty"`
	Direction     *GazeDirection     `json:"direction,omitempty"`
	EyePosition   map[string]float64 `json:"eyePosition,omitempty"`
	DeviceID      *string            `json:"deviceId,omitempty"`
}

// EyeTrackingSample is a stored eye-tracking sample.
type EyeTrackingSample struct {
	ID            string             `json:"id"`
	Timestamp     Timestamp          `json:"timestamp"`
	IsUserLooking bool               `json:"isUserLooking"`
	Direction     *GazeDirection     `json:"direction,omitempty"`
	EyePosition   map[string]float64 `json:"eyePosition,omitempty"`
	DeviceID      *string            `json:"deviceId,omitempty"`
}
