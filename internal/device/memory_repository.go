package device

import (
	"context"
	"sort"
	"sync"
)

// InMemoryRepository is an in-memory implementation of Repository.
// This is intended for testing. Production should use PostgresRepository.
type InMemoryRepository struct {
	mu      sync.RWMutex
	devices []*Device
}

// NewInMemoryRepository creates a new in-memory device repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// Insert stores a new observation.
func (r *InMemoryRepository) Insert(_ context.Context, d *Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cpy := *d
	r.devices = append(r.devices, &cpy)
	return nil
}

// List retrieves all observations, newest first.
func (r *InMemoryRepository) List(_ context.Context) ([]*Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Device, 0, len(r.devices))
	for _, d := range r.devices {
		cpy := *d
		out = append(out, &cpy)
	}
	sortNewestFirst(out)
	return out, nil
}

// GetByDeviceID retrieves the most recent observation for a device id.
func (r *InMemoryRepository) GetByDeviceID(_ context.Context, deviceID string) (*Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []*Device
	for _, d := range r.devices {
		if d.DeviceID == deviceID {
			cpy := *d
			matches = append(matches, &cpy)
		}
	}
	if len(matches) == 0 {
		return nil, ErrDeviceNotFound
	}
	sortNewestFirst(matches)
	return matches[0], nil
}

// sortNewestFirst orders by recorded time descending with id as the
// deterministic tie-break, matching the Postgres queries.
func sortNewestFirst(devices []*Device) {
	sort.SliceStable(devices, func(i, j int) bool {
		if devices[i].RecordedAt.Equal(devices[j].RecordedAt) {
			return devices[i].ID < devices[j].ID
		}
		return devices[i].RecordedAt.After(devices[j].RecordedAt)
	})
}

// Ensure InMemoryRepository implements Repository interface.
var _ Repository = (*InMemoryRepository)(nil)
