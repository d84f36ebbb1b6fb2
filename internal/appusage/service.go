package appusage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/adaptiveui/tracker/internal/api/models"
	"github.com/adaptiveui/tracker/internal/record"
)

// DefaultListLimit caps list queries when no explicit limit is configured.
const DefaultListLimit = 100

// Service provides app-usage operations.
type Service struct {
	repo      Repository
	listLimit int
}

// NewService creates a new app-usage service. listLimit caps list queries;
// zero or negative falls back to DefaultListLimit.
func NewService(repo Repository, listLimit int) *Service {
	if listLimit <= 0 {
		listLimit = DefaultListLimit
	}
	return &Service{repo: repo, listLimit: listLimit}
}

// Create validates and stores one record.
func (s *Service) Create(ctx context.Context, input *models.AppUsageCreateRequest) (*models.AppUsageEvent, error) {
	ev, err := fromAPIEvent(input, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, ev); err != nil {
		return nil, err
	}

	result := toAPIEvent(ev)
	return &result, nil
}

// CreateBatch validates and stores a batch of records. The batch is
// all-or-nothing: a validation failure on any element rejects the whole
// call before anything is persisted.
func (s *Service) CreateBatch(ctx context.Context, inputs []models.AppUsageCreateRequest) (int, error) {
	now := time.Now().UTC()
	evs := make([]*Event, 0, len(inputs))
	for i := range inputs {
		ev, err := fromAPIEvent(&inputs[i], now)
		if err != nil {
			return 0, err
		}
		evs = append(evs, ev)
	}

	if err := s.repo.InsertMany(ctx, evs); err != nil {
		return 0, err
	}
	return len(evs), nil
}

// List retrieves the latest records, capped at the configured limit.
func (s *Service) List(ctx context.Context) ([]models.AppUsageEvent, error) {
	evs, err := s.repo.List(ctx, s.listLimit)
	if err != nil {
		return nil, err
	}
	return toAPIEvents(evs), nil
}

// ListByDevice retrieves all records for a device id.
func (s *Service) ListByDevice(ctx context.Context, deviceID string) ([]models.AppUsageEvent, error) {
	evs, err := s.repo.ListByDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	return toAPIEvents(evs), nil
}

func fromAPIEvent(input *models.AppUsageCreateRequest, now time.Time) (*Event, error) {
	if input.DeviceID == "" {
		return nil, &record.ValidationError{Errors: []record.FieldError{
			{Field: "deviceId", Message: "is required"},
		}}
	}

	return &Event{
		ID:            uuid.New().String(),
		DeviceID:      input.DeviceID,
		PackageName:   input.PackageName,
		AppName:       input.AppName,
		UsageDuration: input.UsageDuration,
		OpenCount:     input.OpenCount,
		RecordedAt:    input.Timestamp.Or(now),
	}, nil
}

func toAPIEvent(ev *Event) models.AppUsageEvent {
	return models.AppUsageEvent{
		ID:            ev.ID,
		DeviceID:      ev.DeviceID,
		PackageName:   ev.PackageName,
		AppName:       ev.AppName,
		UsageDuration: ev.UsageDuration,
		OpenCount:     ev.OpenCount,
		Timestamp:     models.Timestamp(ev.RecordedAt),
	}
}

func toAPIEvents(evs []*Event) []models.AppUsageEvent {
	items := make([]models.AppUsageEvent, 0, len(evs))
	for _, ev := range evs {
		items = append(items, toAPIEvent(ev))
	}
	return items
}
