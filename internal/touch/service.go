package touch

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/adaptiveui/tracker/internal/api/models"
	"github.com/adaptiveui/tracker/internal/record"
)

// Service provides touch event operations.
type Service struct {
	repo Repository
}

// NewService creates a new touch service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateBatch validates and stores a batch of events. The batch is
// all-or-nothing: a validation failure on any element rejects the whole
// call before anything is persisted.
func (s *Service) CreateBatch(ctx context.Context, inputs []models.TouchEventCreateRequest) (int, error) {
	var fieldErrs []record.FieldError
	evs := make([]*Event, 0, len(inputs))

	for i := range inputs {
		ev, errs := validateEvent(&inputs[i], i)
		if len(errs) > 0 {
			fieldErrs = append(fieldErrs, errs...)
			continue
		}
		evs = append(evs, ev)
	}
	if len(fieldErrs) > 0 {
		return 0, &record.ValidationError{Errors: fieldErrs}
	}

	if err := s.repo.InsertMany(ctx, evs); err != nil {
		return 0, err
	}
	return len(evs), nil
}

// List retrieves all events.
func (s *Service) List(ctx context.Context) ([]models.TouchEvent, error) {
	evs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toAPIEvents(evs), nil
}

// ListByType retrieves events with an exactly matching gesture type.
func (s *Service) ListByType(ctx context.Context, gestureType string) ([]models.TouchEvent, error) {
	evs, err := s.repo.ListByType(ctx, gestureType)
	if err != nil {
		return nil, err
	}
	return toAPIEvents(evs), nil
}

// DeleteAll removes every event and returns the number removed.
func (s *Service) DeleteAll(ctx context.Context) (int64, error) {
	return s.repo.DeleteAll(ctx)
}

func validateEvent(input *models.TouchEventCreateRequest, index int) (*Event, []record.FieldError) {
	field := func(name string) string {
		return fmt.Sprintf("touchData[%d].%s", index, name)
	}

	var errs []record.FieldError
	if !input.Timestamp.IsSet() {
		errs = append(errs, record.FieldError{Field: field("timestamp"), Message: "is required"})
	}
	if input.X == nil {
		errs = append(errs, record.FieldError{Field: field("x"), Message: "is required"})
	}
	if input.Y == nil {
		errs = append(errs, record.FieldError{Field: field("y"), Message: "is required"})
	}
	if input.Type == "" {
		errs = append(errs, record.FieldError{Field: field("type"), Message: "is required"})
	} else if !input.Type.Valid() {
		errs = append(errs, record.FieldError{Field: field("type"), Message: "must be one of tap, swipe, longpress"})
	}
	if input.Direction != nil && !input.Direction.Valid() {
		errs = append(errs, record.FieldError{Field: field("direction"), Message: "must be one of up, down, left, right"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	ev := &Event{
		ID:         uuid.New().String(),
		RecordedAt: input.Timestamp.Time(),
		X:          *input.X,
		Y:          *input.Y,
		Type:       string(input.Type),
		EndX:       input.EndX,
		EndY:       input.EndY,
		DurationMs: input.DurationMs,
		DeviceID:   input.DeviceID,
	}
	if input.Direction != nil {
		dir := string(*input.Direction)
		ev.Direction = &dir
	}
	return ev, nil
}

func toAPIEvents(evs []*Event) []models.TouchEvent {
	items := make([]models.TouchEvent, 0, len(evs))
	for _, ev := range evs {
		items = append(items, toAPIEvent(ev))
	}
	return items
}

func toAPIEvent(ev *Event) models.TouchEvent {
	out := models.TouchEvent{
		ID:         ev.ID,
		Timestamp:  models.Timestamp(ev.RecordedAt),
		X:          ev.X,
		Y:          ev.Y,
		Type:       models.TouchType(ev.Type),
		EndX:       ev.EndX,
		EndY:       ev.EndY,
		DurationMs: ev.DurationMs,
		DeviceID:   ev.DeviceID,
	}
	if ev.Direction != nil {
		dir := models.TouchDirection(*ev.Direction)
		out.Direction = &dir
	}
	return out
}
