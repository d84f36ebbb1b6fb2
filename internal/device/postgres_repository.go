package device

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL device repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const deviceColumns = `id, device_id, model, manufacturer, os_version,
	screen_brightness, screen_orientation, one_hand_mode, dominant_hand, recorded_at`

// Insert stores a new observation.
func (r *PostgresRepository) Insert(ctx context.Context, d *Device) error {
	query := `
		INSERT INTO devices (` + deviceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		d.ID,
		d.DeviceID,
		d.Model,
		d.Manufacturer,
		d.OSVersion,
		d.ScreenBrightness,
		d.ScreenOrientation,
		d.OneHandMode,
		d.DominantHand,
		d.RecordedAt,
	)
	return err
}

// List retrieves all observations, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*Device, error) {
	query := `
		SELECT ` + deviceColumns + `
		FROM devices
		ORDER BY recorded_at DESC, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var devices []*Device
	for rows.Next() {
		d, err := scanDevice(rows)
		if err != nil {
			return nil, err
		}
		devices = append(devices, d)
	}
	return devices, rows.Err()
}

// GetByDeviceID retrieves the most recent observation for a device id.
func (r *PostgresRepository) GetByDeviceID(ctx context.Context, deviceID string) (*Device, error) {
	query := `
		SELECT ` + deviceColumns + `
		FROM devices
		WHERE device_id = $1
		ORDER BY recorded_at DESC, id
		LIMIT 1
	`

	rows, err := r.pool.Query(ctx, query, deviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrDeviceNotFound
	}
	return scanDevice(rows)
}

func scanDevice(row pgx.Row) (*Device, error) {
	var d Device
	err := row.Scan(
		&d.ID,
		&d.DeviceID,
		&d.Model,
		&d.Manufacturer,
		&d.OSVersion,
		&d.ScreenBrightness,
		&d.ScreenOrientation,
		&d.OneHandMode,
		&d.DominantHand,
		&d.RecordedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDeviceNotFound
		}
		return nil, err
	}
	return &d, nil
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)
