package sensor

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/adaptiveui/tracker/internal/api/models"
	"github.com/adaptiveui/tracker/internal/record"
)

// DefaultListLimit caps list queries when no explicit limit is configured.
const DefaultListLimit = 100

// Service provides sensor reading operations.
type Service struct {
	repo      Repository
	listLimit int
}

// NewService creates a new sensor service. listLimit caps list queries;
// zero or negative falls back to DefaultListLimit.
func NewService(repo Repository, listLimit int) *Service {
	if listLimit <= 0 {
		listLimit = DefaultListLimit
	}
	return &Service{repo: repo, listLimit: listLimit}
}

// Create validates and stores one reading.
func (s *Service) Create(ctx context.Context, input *models.SensorReadingCreateRequest) (*models.SensorReading, error) {
	rd, err := fromAPIReading(input, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, rd); err != nil {
		return nil, err
	}

	result := toAPIReading(rd)
	return &result, nil
}

// CreateBatch validates and stores a batch of readings. The batch is
// all-or-nothing: a validation failure on any element rejects the whole
// call before anything is persisted.
func (s *Service) CreateBatch(ctx context.Context, inputs []models.SensorReadingCreateRequest) (int, error) {
	now := time.Now().UTC()
	rds := make([]*Reading, 0, len(inputs))
	for i := range inputs {
		rd, err := fromAPIReading(&inputs[i], now)
		if err != nil {
			return 0, err
		}
		rds = append(rds, rd)
	}

	if err := s.repo.InsertMany(ctx, rds); err != nil {
		return 0, err
	}
	return len(rds), nil
}

// List retrieves the latest readings, capped at the configured limit.
func (s *Service) List(ctx context.Context) ([]models.SensorReading, error) {
	rds, err := s.repo.List(ctx, s.listLimit)
	if err != nil {
		return nil, err
	}
	return toAPIReadings(rds), nil
}

// ListByDevice retrieves readings for a device id inside the given time
// range, capped at the configured limit.
func (s *Service) ListByDevice(ctx context.Context, deviceID string, tr TimeRange) ([]models.SensorReading, error) {
	rds, err := s.repo.ListByDevice(ctx, deviceID, tr, s.listLimit)
	if err != nil {
		return nil, err
	}
	return toAPIReadings(rds), nil
}

func fromAPIReading(input *models.SensorReadingCreateRequest, now time.Time) (*Reading, error) {
	if input.DeviceID == "" {
		return nil, &record.ValidationError{Errors: []record.FieldError{
			{Field: "deviceId", Message: "is required"},
		}}
	}

	rd := &Reading{
		ID:              uuid.New().String(),
		DeviceID:        input.DeviceID,
		RecordedAt:      input.Timestamp.Or(now),
		LightSensor:     input.LightSensor,
		ProximitySensor: input.ProximitySensor,
	}
	if input.Gyroscope != nil {
		rd.GyroX, rd.GyroY, rd.GyroZ = input.Gyroscope.X, input.Gyroscope.Y, input.Gyroscope.Z
	}
	if input.Magnetometer != nil {
		rd.MagX, rd.MagY, rd.MagZ = input.Magnetometer.X, input.Magnetometer.Y, input.Magnetometer.Z
	}
	return rd, nil
}

func toAPIReading(rd *Reading) models.SensorReading {
	out := models.SensorReading{
		ID:              rd.ID,
		DeviceID:        rd.DeviceID,
		Timestamp:       models.Timestamp(rd.RecordedAt),
		LightSensor:     rd.LightSensor,
		ProximitySensor: rd.ProximitySensor,
	}
	if rd.GyroX != nil || rd.GyroY != nil || rd.GyroZ != nil {
		out.Gyroscope = &models.Vector3{X: rd.GyroX, Y: rd.GyroY, Z: rd.GyroZ}
	}
	if rd.MagX != nil || rd.MagY != nil || rd.MagZ != nil {
		out.Magnetometer = &models.Vector3{X: rd.MagX, Y: rd.MagY, Z: rd.MagZ}
	}
	return out
}

func toAPIReadings(rds []*Reading) []models.SensorReading {
	items := make([]models.SensorReading, 0, len(rds))
	for _, rd := range rds {
		items = append(items, toAPIReading(rd))
	}
	return items
}
