package models

// The API wraps every response in a uniform envelope: `success` plus
// `data` (or `count`/`message` where the endpoint reports one) on success,
// `success:false` plus `error` on failure.

// ItemResponse wraps a single created or fetched record.
type ItemResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// ListResponse wraps a result set with its length.
type ListResponse struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Data    interface{} `json:"data"`
}

// BulkResponse reports the outcome of a bulk insert.
type BulkResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// DeleteResponse reports the outcome of a delete-all. Count is int64 to
// carry the store's row count unchanged.
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

// ErrorResponse is the failure envelope for every endpoint.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Ping is the response for GET /api/ping.
type Ping struct {
	Message   string    `json:"message"`
	Database  string    `json:"database"`
	Timestamp Timestamp `json:"timestamp"`
}

// HealthStatus represents overall service health.
type HealthStatus string

const (
	HealthStatusOK       HealthStatus = "ok"
	HealthStatusDegraded HealthStatus = "degraded"
)

// DatabaseState reports store connectivity for the liveness probe.
type DatabaseState string

const (
	DatabaseConnected    DatabaseState = "connected"
	DatabaseDisconnected DatabaseState = "disconnected"
)

// Health is the response for GET /health.
type Health struct {
	Status        HealthStatus  `json:"status"`
	Database      DatabaseState `json:"database"`
	UptimeSeconds float64       `json:"uptime"`
}
