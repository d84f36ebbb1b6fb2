package appusage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adaptiveui/tracker/internal/api/models"
	"github.com/adaptiveui/tracker/internal/appusage"
	"github.com/adaptiveui/tracker/internal/record"
)

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func TestService_Create(t *testing.T) {
	repo := appusage.NewInMemoryRepository()
	service := appusage.NewService(repo, 0)
	ctx := context.Background()

	result, err := service.Create(ctx, &models.AppUsageCreateRequest{
		DeviceID:    "dev-1",
		PackageName: strPtr("com.example.mail"),
		AppName:     strPtr("Mail"),
		OpenCount:   intPtr(4),
	})
	if err != nil {
		t.Fatalf("failed to create record: %v", err)
	}

	if result.ID == "" {
		t.Error("expected record ID to be set")
	}
	if result.OpenCount == nil || *result.OpenCount != 4 {
		t.Errorf("expected openCount 4, got %v", result.OpenCount)
	}
	if result.Timestamp.Time().IsZero() {
		t.Error("expected timestamp to default to the record-creation time")
	}
}

func TestService_Create_MissingDeviceID(t *testing.T) {
	repo := appusage.NewInMemoryRepository()
	service := appusage.NewService(repo, 0)

	_, err := service.Create(context.Background(), &models.AppUsageCreateRequest{AppName: strPtr("Mail")})
	if err == nil {
		t.Fatal("expected an error for missing deviceId")
	}

	var verr *record.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a validation error, got %T", err)
	}
}

func TestService_CreateBatch_RejectsWholeBatch(t *testing.T) {
	repo := appusage.NewInMemoryRepository()
	service := appusage.NewService(repo, 0)
	ctx := context.Background()

	count, err := service.CreateBatch(ctx, []models.AppUsageCreateRequest{
		{DeviceID: "dev-1", AppName: strPtr("Maps")},
		{AppName: strPtr("Camera")}, // missing deviceId
	})
	if err == nil {
		t.Fatal("expected the batch to be rejected")
	}
	if count != 0 {
		t.Errorf("expected zero stored records, got %d", count)
	}

	records, err := service.List(ctx)
	if err != nil {
		t.Fatalf("failed to list records: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records after a rejected batch, got %d", len(records))
	}
}

func TestService_List_CappedAtLimit(t *testing.T) {
	repo := appusage.NewInMemoryRepository()
	service := appusage.NewService(repo, 4)
	ctx := context.Background()

	base := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	inputs := make([]models.AppUsageCreateRequest, 7)
	for i := range inputs {
		inputs[i] = models.AppUsageCreateRequest{
			DeviceID:  "dev-1",
			Timestamp: models.FlexTimeOf(base.Add(time.Duration(i) * time.Minute)),
		}
	}
	if _, err := service.CreateBatch(ctx, inputs); err != nil {
		t.Fatalf("failed to create batch: %v", err)
	}

	records, err := service.List(ctx)
	if err != nil {
		t.Fatalf("failed to list records: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected the list to be capped at 4, got %d", len(records))
	}
	newest := base.Add(6 * time.Minute)
	if !records[0].Timestamp.Time().Equal(newest) {
		t.Errorf("expected the newest record first, got %v", records[0].Timestamp.Time())
	}
}

func TestService_ListByDevice(t *testing.T) {
	repo := appusage.NewInMemoryRepository()
	service := appusage.NewService(repo, 0)
	ctx := context.Background()

	if _, err := service.CreateBatch(ctx, []models.AppUsageCreateRequest{
		{DeviceID: "dev-1", AppName: strPtr("Maps")},
		{DeviceID: "dev-2", AppName: strPtr("Camera")},
		{DeviceID: "dev-1", AppName: strPtr("Mail")},
	}); err != nil {
		t.Fatalf("failed to create batch: %v", err)
	}

	records, err := service.ListByDevice(ctx, "dev-1")
	if err != nil {
		t.Fatalf("failed to list by device: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records for dev-1, got %d", len(records))
	}
	for _, rec := range records {
		if rec.DeviceID != "dev-1" {
			t.Errorf("expected only dev-1 records, got %s", rec.DeviceID)
		}
	}

	none, err := service.ListByDevice(ctx, "dev-3")
	if err != nil {
		t.Fatalf("failed to list by device: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no records for dev-3, got %d", len(none))
	}
}
