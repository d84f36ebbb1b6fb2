package sensor

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL sensor repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const readingColumns = `id, device_id, recorded_at, gyro_x, gyro_y, gyro_z,
	mag_x, mag_y, mag_z, light_sensor, proximity_sensor`

const insertReading = `
	INSERT INTO sensor_readings (` + readingColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`

// Insert stores one reading.
func (r *PostgresRepository) Insert(ctx context.Context, rd *Reading) error {
	_, err := r.pool.Exec(ctx, insertReading, readingArgs(rd)...)
	return err
}

// InsertMany stores a batch of readings in a single transaction.
func (r *PostgresRepository) InsertMany(ctx context.Context, rds []*Reading) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	for _, rd := range rds {
		if _, err := tx.Exec(ctx, insertReading, readingArgs(rd)...); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// List retrieves the latest readings, newest first, capped at limit.
func (r *PostgresRepository) List(ctx context.Context, limit int) ([]*Reading, error) {
	query := `
		SELECT ` + readingColumns + `
		FROM sensor_readings
		ORDER BY recorded_at DESC, id
		LIMIT $1
	`
	return r.queryReadings(ctx, query, limit)
}

// ListByDevice retrieves readings for a device id inside the time range,
// newest first, capped at limit.
func (r *PostgresRepository) ListByDevice(ctx context.Context, deviceID string, tr TimeRange, limit int) ([]*Reading, error) {
	query := `
		SELECT ` + readingColumns + `
		FROM sensor_readings
		WHERE device_id = $1
		  AND ($2::timestamptz IS NULL OR recorded_at >= $2)
		  AND ($3::timestamptz IS NULL OR recorded_at <= $3)
		ORDER BY recorded_at DESC, id
		LIMIT $4
	`
	return r.queryReadings(ctx, query, deviceID, tr.Start, tr.End, limit)
}

func (r *PostgresRepository) queryReadings(ctx context.Context, query string, args ...interface{}) ([]*Reading, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var readings []*Reading
	for rows.Next() {
		rd, err := scanReading(rows)
		if err != nil {
			return nil, err
		}
		readings = append(readings, rd)
	}
	return readings, rows.Err()
}

func readingArgs(rd *Reading) []interface{} {
	return []interface{}{
		rd.ID,
		rd.DeviceID,
		rd.RecordedAt,
		rd.GyroX,
		rd.GyroY,
		rd.GyroZ,
		rd.MagX,
		rd.MagY,
		rd.MagZ,
		rd.LightSensor,
		rd.ProximitySensor,
	}
}

func scanReading(row pgx.Row) (*Reading, error) {
	var rd Reading
	err := row.Scan(
		&rd.ID,
		&rd.DeviceID,
		&rd.RecordedAt,
		&rd.GyroX,
		&rd.GyroY,
		&rd.GyroZ,
		&rd.MagX,
		&rd.MagY,
		&rd.MagZ,
		&rd.LightSensor,
		&rd.ProximitySensor,
	)
	if err != nil {
		return nil, err
	}
	return &rd, nil
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)
