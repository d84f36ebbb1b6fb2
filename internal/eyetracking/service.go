package eyetracking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adaptiveui/tracker/internal/api/models"
	"github.com/adaptiveui/tracker/internal/record"
)

// Service provides eye-tracking sample operations.
type Service struct {
	repo Repository
}

// NewService creates a new eye-tracking service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateBatch validates, normalizes and stores a batch of samples.
// Timestamps are normalized per element: a missing or unparseable value
// defaults to the record-creation time and never fails the batch.
// isUserLooking defaults to true. The batch is all-or-nothing once
// validation passes.
func (s *Service) CreateBatch(ctx context.Context, inputs []models.EyeTrackingSampleCreateRequest) (int, error) {
	now := time.Now().UTC()

	var fieldErrs []record.FieldError
	samples := make([]*Sample, 0, len(inputs))
	for i := range inputs {
		input := &inputs[i]

		if input.Direction != nil && !input.Direction.Valid() {
			fieldErrs = append(fieldErrs, record.FieldError{
				Field:   fmt.Sprintf("eyeTrackingData[%d].direction", i),
				Message: "is not a known gaze direction",
			})
			continue
		}

		looking := true
		if input.IsUserLooking != nil {
			looking = *input.IsUserLooking
		}

		sample := &Sample{
			ID:            uuid.New().String(),
			RecordedAt:    input.Timestamp.Or(now),
			IsUserLooking: looking,
			EyePosition:   input.EyePosition,
			DeviceID:      input.DeviceID,
		}
		if input.Direction != nil {
			dir := string(*input.Direction)
			sample.Direction = &dir
		}
		samples = append(samples, sample)
	}
	if len(fieldErrs) > 0 {
		return 0, &record.ValidationError{Errors: fieldErrs}
	}

	if err := s.repo.InsertMany(ctx, samples); err != nil {
		return 0, err
	}
	return len(samples), nil
}

// List retrieves all samples.
func (s *Service) List(ctx context.Context) ([]models.EyeTrackingSample, error) {
	samples, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toAPISamples(samples), nil
}

// ListByDirection retrieves samples with an exactly matching gaze
// direction token.
func (s *Service) ListByDirection(ctx context.Context, direction string) ([]models.EyeTrackingSample, error) {
	samples, err := s.repo.ListByDirection(ctx, direction)
	if err != nil {
		return nil, err
	}
	return toAPISamples(samples), nil
}

// DeleteAll removes every sample and returns the number removed.
func (s *Service) DeleteAll(ctx context.Context) (int64, error) {
	return s.repo.DeleteAll(ctx)
}

func toAPISamples(samples []*Sample) []models.EyeTrackingSample {
	items := make([]models.EyeTrackingSample, 0, len(samples))
	for _, s := range samples {
		items = append(items, toAPISample(s))
	}
	return items
}

func toAPISample(s *Sample) models.EyeTrackingSample {
	out := models.EyeTrackingSample{
		ID:            s.ID,
		Timestamp:     models.Timestamp(s.RecordedAt),
		IsUserLooking: s.IsUserLooking,
		EyePosition:   s.EyePosition,
		DeviceID:      s.DeviceID,
	}
	if s.Direction != nil {
		dir := models.GazeDirection(*s.Direction)
		out.Direction = &dir
	}
	return out
}
