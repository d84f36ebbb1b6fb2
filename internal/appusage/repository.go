package appusage

import "context"

// Repository defines the interface for app-usage persistence.
type Repository interface {
	// Insert stores one record.
	Insert(ctx context.Context, ev *Event) error

	// InsertMany stores a batch of records. The batch is all-or-nothing:
	// any failure leaves none of the records persisted.
	InsertMany(ctx context.Context, evs []*Event) error

	// List retrieves the latest records, newest first, capped at limit.
	List(ctx context.Context, limit int) ([]*Event, error)

	// ListByDevice retrieves all records for a device id, newest first.
	ListByDevice(ctx context.Context, deviceID string) ([]*Event, error)
}
