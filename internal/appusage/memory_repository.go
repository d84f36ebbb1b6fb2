package appusage

import (
	"context"
	"sort"
	"sync"
)

// InMemoryRepository is an in-memory implementation of Repository.
// This is intended for testing. Production should use PostgresRepository.
type InMemoryRepository struct {
	mu     sync.RWMutex
	events []*Event
}

// NewInMemoryRepository creates a new in-memory app-usage repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// Insert stores one record.
func (r *InMemoryRepository) Insert(_ context.Context, ev *Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cpy := *ev
	r.events = append(r.events, &cpy)
	return nil
}

// InsertMany stores a batch of records.
func (r *InMemoryRepository) InsertMany(_ context.Context, evs []*Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ev := range evs {
		cpy := *ev
		r.events = append(r.events, &cpy)
	}
	return nil
}

// List retrieves the latest records, newest first, capped at limit.
func (r *InMemoryRepository) List(_ context.Context, limit int) ([]*Event, error) {
	out := r.filter(func(*Event) bool { return true })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ListByDevice retrieves all records for a device id, newest first.
func (r *InMemoryRepository) ListByDevice(_ context.Context, deviceID string) ([]*Event, error) {
	return r.filter(func(ev *Event) bool { return ev.DeviceID == deviceID }), nil
}

func (r *InMemoryRepository) filter(keep func(*Event) bool) []*Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Event
	for _, ev := range r.events {
		if keep(ev) {
			cpy := *ev
			out = append(out, &cpy)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].RecordedAt.Equal(out[j].RecordedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})
	return out
}

// Ensure InMemoryRepository implements Repository interface.
var _ Repository = (*InMemoryRepository)(nil)
