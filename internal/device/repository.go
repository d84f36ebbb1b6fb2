package device

import "context"

// Repository defines the interface for device observation persistence.
type Repository interface {
	// Insert stores a new observation.
	Insert(ctx context.Context, d *Device) error

	// List retrieves all observations.
	List(ctx context.Context) ([]*Device, error)

	// GetByDeviceID retrieves the most recent observation for a device id.
	// Returns ErrDeviceNotFound when no observation exists.
	GetByDeviceID(ctx context.Context, deviceID string) (*Device, error)
}
