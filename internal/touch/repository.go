package touch

import "context"

// Repository defines the interface for touch event persistence.
type Repository interface {
	// InsertMany stores a batch of events. The batch is all-or-nothing:
	// any failure leaves none of the events persisted.
	InsertMany(ctx context.Context, evs []*Event) error

	// List retrieves all events, newest first.
	List(ctx context.Context) ([]*Event, error)

	// ListByType retrieves events with an exactly matching gesture type,
	// newest first.
	ListByType(ctx context.Context, gestureType string) ([]*Event, error)

	// DeleteAll removes every event and returns the number removed.
	DeleteAll(ctx context.Context) (int64, error)
}
