package models

// SensorReadingCreateRequest is the body for POST /api/sensor, and the
// element type of the bare-array body for POST /api/sensor/bulk.
type SensorReadingCreateRequest struct {
	DeviceID        string   `json:"deviceId"`
	Timestamp       FlexTime `json:"timestamp"`
	Gyroscope       *Vector3 `json:"gyroscope,omitempty"`
	Magnetometer    *Vector3 `json:"magnetometer,omitempty"`
	LightSensor     *float64 `json:"lightSensor,omitempty"`
	ProximitySensor *bool    `json:"proximitySensor,omitempty"`
}

// SensorReading is a stored sensor reading.
type SensorReading struct {
	ID              string    `json:"id"`
	DeviceID        string    `json:"deviceId"`
	Timestamp       Timestamp `json:"timestamp"`
	Gyroscope       *Vector3  `json:"gyroscope,omitempty"`
	Magnetometer    *Vector3  `json:"magnetometer,omitempty"`
	LightSensor     *float64  `json:"lightSensor,omitempty"`
	ProximitySensor *bool     `json:"proximitySensor,omitempty"`
}
