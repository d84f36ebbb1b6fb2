package models

// TouchBatchRequest is the body for POST /api/touch. The payload must
// carry its events under the touchData key; a missing or mis-typed field
// is a malformed payload, not an empty batch.
type TouchBatchRequest struct {
	TouchData []TouchEventCreateRequest `json:"touchData"`
}

// TouchEventCreateRequest is one touch event in a batch. Clients send the
// timestamp as a raw epoch number; it is normalized to a point in time at
// this boundary.
type TouchEventCreateRequest struct {
	Timestamp  FlexTime        `json:"timestamp"`
	X          *float64        `json:"x"`
	Y          *float64        `json:"y"`
	Type       TouchType       `json:"type"`
	Direction  *TouchDirection `json:"direction,omitempty"`
	EndX       *float64        `json:"endX,omitempty"`
	EndY       *float64        `json:"endY,omitempty"`
	DurationMs *float64        `json:"durationMs,omitempty"`
	DeviceID   *string         `json:"deviceId,omitempty"`
}

// TouchEvent is a stored touch event.
type TouchEvent struct {
	ID         string          `json:"id"`
	Timestamp  Timestamp       `json:"timestamp"`
	X          float64         `json:"x"`
	Y          float64         `json:"y"`
	Type       TouchType       `json:"type"`
	Direction  *TouchDirection `json:"direction,omitempty"`
	EndX       *float64        `json:"endX,omitempty"`
	EndY       *float64        `json:"endY,omitempty"`
	DurationMs *float64        `json:"durationMs,omitempty"`
	DeviceID   *string         `json:"deviceId,omitempty"`
}
