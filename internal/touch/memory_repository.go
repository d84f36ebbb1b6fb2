package touch

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

// NewInMemoryRepository creates a new in-memory touch repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// InsertMany stores a batch of events.
func (r *InMemoryRepository) InsertMany(_ context.Context, evs []*Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ev := range evs {
		cpy := *ev
		r.events = append(r.events, &cpy)
	}
	return nil
}

// List retrieves all events, newest first.
func (r *InMemoryRepository) List(_ context.Context) ([]*Event, error) {
	return r.filter(func(*Event) bool { return true }), nil
}

// ListByType retrieves events with an exactly matching gesture type.
func (r *InMemoryRepository) ListByType(_ context.Context, gestureType string) ([]*Event, error) {
	return r.filter(func(ev *Event) bool { return ev.Type == gestureType }), nil
}

// DeleteAll removes every event.
func (r *InMemoryRepository) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := int64(len(r.events))
	r.events = nil
	return n, nil
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
