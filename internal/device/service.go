package device

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/adaptiveui/tracker/internal/api/models"
	"github.com/adaptiveui/tracker/internal/record"
)

// Service provides device observation operations.
type Service struct {
	repo Repository
}

// NewService creates a new device service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and stores one device observation.
func (s *Service) Create(ctx context.Context, input *models.DeviceCreateRequest) (*models.Device, error) {
	if input.DeviceID == "" {
		return nil, &record.ValidationError{Errors: []record.FieldError{
			{Field: "deviceId", Message: "is required"},
		}}
	}

	d := &Device{
		ID:                uuid.New().String(),
		DeviceID:          input.DeviceID,
		Model:             input.Model,
		Manufacturer:      input.Manufacturer,
		OSVersion:         input.OSVersion,
		ScreenBrightness:  input.ScreenBrightness,
		ScreenOrientation: input.ScreenOrientation,
		OneHandMode:       input.OneHandMode,
		DominantHand:      input.DominantHand,
		RecordedAt:        input.Timestamp.Or(time.Now().UTC()),
	}

	if err := s.repo.Insert(ctx, d); err != nil {
		return nil, err
	}

	result := toAPIDevice(d)
	return &result, nil
}

// List retrieves all device observations.
func (s *Service) List(ctx context.Context) ([]models.Device, error) {
	devices, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]models.Device, 0, len(devices))
	for _, d := range devices {
		items = append(items, toAPIDevice(d))
	}
	return items, nil
}

// GetByDeviceID retrieves the most recent observation for a device id.
// Returns ErrDeviceNotFound when the device has never reported.
func (s *Service) GetByDeviceID(ctx context.Context, deviceID string) (*models.Device, error) {
	d, err := s.repo.GetByDeviceID(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	result := toAPIDevice(d)
	return &result, nil
}

func toAPIDevice(d *Device) models.Device {
	return models.Device{
		ID:                d.ID,
		DeviceID:          d.DeviceID,
		Model:             d.Model,
		Manufacturer:      d.Manufacturer,
		OSVersion:         d.OSVersion,
		ScreenBrightness:  d.ScreenBrightness,
		ScreenOrientation: d.ScreenOrientation,
		OneHandMode:       d.OneHandMode,
		DominantHand:      d.DominantHand,
		Timestamp:         models.Timestamp(d.RecordedAt),
	}
}
