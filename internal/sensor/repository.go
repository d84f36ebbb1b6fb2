package sensor

import "context"

// Repository defines the interface for sensor reading persistence.
type Repository interface {
	// Insert stores one reading.
	Insert(ctx context.Context, rd *Reading) error

	// InsertMany stores a batch of readings. The batch is all-or-nothing:
	// any failure leaves none of the readings persisted.
	InsertMany(ctx context.Context, rds []*Reading) error

	// List retrieves the latest readings, newest first, capped at limit.
	List(ctx context.Context, limit int) ([]*Reading, error)

	// ListByDevice retrieves readings for a device id inside the given
	// time range, newest first, capped at limit.
	ListByDevice(ctx context.Context, deviceID string, tr TimeRange, limit int) ([]*Reading, error)
}
