package sensor

import (
	"context"
	"sort"
	"sync"
)

// InMemoryRepository is an in-memory implementation of Repository.
// This is intended for testing. Production should use PostgresRepository.
type InMemoryRepository struct {
	mu       sync.RWMutex
	readings []*Reading
}

// NewInMemoryRepository creates a new in-memory sensor repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// Insert stores one reading.
func (r *InMemoryRepository) Insert(_ context.Context, rd *Reading) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cpy := *rd
	r.readings = append(r.readings, &cpy)
	return nil
}

// InsertMany stores a batch of readings.
func (r *InMemoryRepository) InsertMany(_ context.Context, rds []*Reading) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rd := range rds {
		cpy := *rd
		r.readings = append(r.readings, &cpy)
	}
	return nil
}

// List retrieves the latest readings, newest first, capped at limit.
func (r *InMemoryRepository) List(_ context.Context, limit int) ([]*Reading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.copyAll()
	sortReadings(out)
	return capReadings(out, limit), nil
}

// ListByDevice retrieves readings for a device id inside the time range.
func (r *InMemoryRepository) ListByDevice(_ context.Context, deviceID string, tr TimeRange, limit int) ([]*Reading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Reading
	for _, rd := range r.readings {
		if rd.DeviceID == deviceID && tr.Contains(rd.RecordedAt) {
			cpy := *rd
			out = append(out, &cpy)
		}
	}
	sortReadings(out)
	return capReadings(out, limit), nil
}

func (r *InMemoryRepository) copyAll() []*Reading {
	out := make([]*Reading, 0, len(r.readings))
	for _, rd := range r.readings {
		cpy := *rd
		out = append(out, &cpy)
	}
	return out
}

func sortReadings(readings []*Reading) {
	sort.SliceStable(readings, func(i, j int) bool {
		if readings[i].RecordedAt.Equal(readings[j].RecordedAt) {
			return readings[i].ID < readings[j].ID
		}
		return readings[i].RecordedAt.After(readings[j].RecordedAt)
	})
}

func capReadings(readings []*Reading, limit int) []*Reading {
	if limit > 0 && len(readings) > limit {
		return readings[:limit]
	}
	return readings
}

// Ensure InMemoryRepository implements Repository interface.
var _ Repository = (*InMemoryRepository)(nil)
