package eyetracking

import (
	"context"
	"sort"
	"sync"
)

// InMemoryRepository is an in-memory implementation of Repository.
// This is intended for testing. Production should use PostgresRepository.
type InMemoryRepository struct {
	mu      sync.RWMutex
	samples []*Sample
}

// NewInMemoryRepository creates a new in-memory eye-tracking repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// InsertMany stores a batch of samples.
func (r *InMemoryRepository) InsertMany(_ context.Context, samples []*Sample) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range samples {
		r.samples = append(r.samples, copySample(s))
	}
	return nil
}

// List retrieves all samples, newest first.
func (r *InMemoryRepository) List(_ context.Context) ([]*Sample, error) {
	return r.filter(func(*Sample) bool { return true }), nil
}

// ListByDirection retrieves samples with an exactly matching direction.
func (r *InMemoryRepository) ListByDirection(_ context.Context, direction string) ([]*Sample, error) {
	return r.filter(func(s *Sample) bool {
		return s.Direction != nil && *s.Direction == direction
	}), nil
}

// DeleteAll removes every sample.
func (r *InMemoryRepository) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := int64(len(r.samples))
	r.samples = nil
	return n, nil
}

func (r *InMemoryRepository) filter(keep func(*Sample) bool) []*Sample {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Sample
	for _, s := range r.samples {
		if keep(s) {
			out = append(out, copySample(s))
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

func copySample(s *Sample) *Sample {
	cpy := *s
	if s.EyePosition != nil {
		cpy.EyePosition = make(map[string]float64, len(s.EyePosition))
		for k, v := range s.EyePosition {
			cpy.EyePosition[k] = v
		}
	}
	return &cpy
}

// Ensure InMemoryRepository implements Repository interface.
var _ Repository = (*InMemoryRepository)(nil)
