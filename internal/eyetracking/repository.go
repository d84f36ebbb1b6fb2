package eyetracking

import "context"

// Repository defines the interface for eye-tracking sample persistence.
type Repository interface {
	// InsertMany stores a batch of samples. The batch is all-or-nothing:
	// any failure leaves none of the samples persisted.
	InsertMany(ctx context.Context, samples []*Sample) error

	// List retrieves all samples, newest first.
	List(ctx context.Context) ([]*Sample, error)

	// ListByDirection retrieves samples with an exactly matching gaze
	// direction token, newest first.
	ListByDirection(ctx context.Context, direction string) ([]*Sample, error)

	// DeleteAll removes every sample and returns the number removed.
	DeleteAll(ctx context.Context) (int64, error)
}
