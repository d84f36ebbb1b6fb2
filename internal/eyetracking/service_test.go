package eyetracking_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/adaptiveui/tracker/internal/api/models"
	"github.com/adaptiveui/tracker/internal/eyetracking"
	"github.com/adaptiveui/tracker/internal/record"
)

func boolPtr(b bool) *bool { return &b }

func gazePtr(d models.GazeDirection) *models.GazeDirection { return &d }

func TestService_CreateBatch(t *testing.T) {
	repo := eyetracking.NewInMemoryRepository()
	service := eyetracking.NewService(repo)
	ctx := context.Background()

	ts := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	count, err := service.CreateBatch(ctx, []models.EyeTrackingSampleCreateRequest{
		{
			Timestamp:     models.FlexTimeOf(ts),
			Direction:     gazePtr(models.GazeCenter),
			IsUserLooking: boolPtr(true),
			EyePosition:   map[string]float64{"x": 0.4, "y": 0.6},
		},
	})
	if err != nil {
		t.Fatalf("failed to create batch: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 stored sample, got %d", count)
	}

	samples, err := service.List(ctx)
	if err != nil {
		t.Fatalf("failed to list samples: %v", err)
	}
	if len(samples) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(samples))
	}
	if samples[0].EyePosition["x"] != 0.4 {
		t.Errorf("expected eye position x 0.4, got %v", samples[0].EyePosition)
	}
}

func TestService_CreateBatch_GermanDirectionPreserved(t *testing.T) {
	repo := eyetracking.NewInMemoryRepository()
	service := eyetracking.NewService(repo)
	ctx := context.Background()

	// German gaze tokens are first-class; stored values round-trip verbatim
	if _, err := service.CreateBatch(ctx, []models.EyeTrackingSampleCreateRequest{
		{
			Timestamp:     models.FlexTimeOf(time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)),
			Direction:     gazePtr(models.GazeLinks),
			IsUserLooking: boolPtr(false),
		},
	}); err != nil {
		t.Fatalf("failed to create batch: %v", err)
	}

	samples, err := service.ListByDirection(ctx, "links")
	if err != nil {
		t.Fatalf("failed to list by direction: %v", err)
	}
	if len(samples) != 1 {
		t.Fatalf("expected 1 sample for direction links, got %d", len(samples))
	}
	if samples[0].Direction == nil || *samples[0].Direction != models.GazeLinks {
		t.Errorf("expected direction links, got %v", samples[0].Direction)
	}
	if samples[0].IsUserLooking {
		t.Error("expected isUserLooking false to be preserved")
	}

	// The English equivalent does not match the German token
	none, err := service.ListByDirection(ctx, "left")
	if err != nil {
		t.Fatalf("failed to list by direction: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no samples for direction left, got %d", len(none))
	}
}

func TestService_CreateBatch_UnknownDirection(t *testing.T) {
	repo := eyetracking.NewInMemoryRepository()
	service := eyetracking.NewService(repo)

	_, err := service.CreateBatch(context.Background(), []models.EyeTrackingSampleCreateRequest{
		{
			Timestamp: models.FlexTimeOf(time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)),
			Direction: gazePtr("sideways"),
		},
	})
	if err == nil {
		t.Fatal("expected an error for an unknown gaze direction")
	}

	var verr *record.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a validation error, got %T", err)
	}
	if len(verr.Errors) != 1 || verr.Errors[0].Field != "eyeTrackingData[0].direction" {
		t.Errorf("expected a direction field error, got %v", verr.Errors)
	}
}

func TestService_CreateBatch_Defaults(t *testing.T) {
	repo := eyetracking.NewInMemoryRepository()
	service := eyetracking.NewService(repo)
	ctx := context.Background()

	before := time.Now().UTC()
	count, err := service.CreateBatch(ctx, []models.EyeTrackingSampleCreateRequest{{}})
	if err != nil {
		t.Fatalf("failed to create batch: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 stored sample, got %d", count)
	}

	samples, err := service.List(ctx)
	if err != nil {
		t.Fatalf("failed to list samples: %v", err)
	}
	if len(samples) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(samples))
	}
	if !samples[0].IsUserLooking {
		t.Error("expected isUserLooking to default to true")
	}
	if samples[0].Timestamp.Time().Before(before) {
		t.Errorf("expected timestamp to default to the record-creation time, got %v", samples[0].Timestamp.Time())
	}
}

func TestService_CreateBatch_UnparseableTimestampFallsBack(t *testing.T) {
	repo := eyetracking.NewInMemoryRepository()
	service := eyetracking.NewService(repo)
	ctx := context.Background()

	// Decode the way the handler does: an unparseable timestamp leaves
	// the field unset instead of failing the batch.
	var input models.EyeTrackingSampleCreateRequest
	if err := json.Unmarshal([]byte(`{"timestamp":"not a time","direction":"up"}`), &input); err != nil {
		t.Fatalf("failed to decode sample: %v", err)
	}
	if input.Timestamp.IsSet() {
		t.Fatal("expected the timestamp to be unset after a failed parse")
	}

	before := time.Now().UTC()
	if _, err := service.CreateBatch(ctx, []models.EyeTrackingSampleCreateRequest{input}); err != nil {
		t.Fatalf("failed to create batch: %v", err)
	}

	samples, err := service.List(ctx)
	if err != nil {
		t.Fatalf("failed to list samples: %v", err)
	}
	if len(samples) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(samples))
	}
	if samples[0].Timestamp.Time().Before(before) {
		t.Errorf("expected a fallback timestamp, got %v", samples[0].Timestamp.Time())
	}
}

func TestService_DeleteAll(t *testing.T) {
	repo := eyetracking.NewInMemoryRepository()
	service := eyetracking.NewService(repo)
	ctx := context.Background()

	if _, err := service.CreateBatch(ctx, []models.EyeTrackingSampleCreateRequest{
		{Timestamp: models.FlexTimeOf(time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC))},
		{Timestamp: models.FlexTimeOf(time.Date(2024, 4, 1, 12, 0, 1, 0, time.UTC))},
	}); err != nil {
		t.Fatalf("failed to create batch: %v", err)
	}

	deleted, err := service.DeleteAll(ctx)
	if err != nil {
		t.Fatalf("failed to delete samples: %v", err)
	}
	if deleted != 2 {
		t.Errorf("expected 2 deleted samples, got %d", deleted)
	}

	samples, err := service.List(ctx)
	if err != nil {
		t.Fatalf("failed to list samples: %v", err)
	}
	if len(samples) != 0 {
		t.Errorf("expected no samples after delete-all, got %d", len(samples))
	}
}
