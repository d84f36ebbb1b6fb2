package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// One table per record kind. Records are immutable once inserted, so
// there are no updated_at columns; recorded_at is the event timestamp
// (defaulted to insertion time at the service layer when omitted).
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS devices (
		id                 UUID PRIMARY KEY,
		device_id          TEXT NOT NULL,
		model              TEXT,
		manufacturer       TEXT,
		os_version         TEXT,
		screen_brightness  DOUBLE PRECISION,
		screen_orientation TEXT,
		one_hand_mode      BOOLEAN,
		dominant_hand      TEXT,
		recorded_at        TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_devices_device_id ON devices (device_id, recorded_at DESC)`,

	`CREATE TABLE IF NOT EXISTS sensor_readings (
		id               UUID PRIMARY KEY,
		device_id        TEXT NOT NULL,
		recorded_at      TIMESTAMPTZ NOT NULL,
		gyro_x           DOUBLE PRECISION,
		gyro_y           DOUBLE PRECISION,
		gyro_z           DOUBLE PRECISION,
		mag_x            DOUBLE PRECISION,
		mag_y            DOUBLE PRECISION,
		mag_z            DOUBLE PRECISION,
		light_sensor     DOUBLE PRECISION,
		proximity_sensor BOOLEAN
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sensor_readings_device_id ON sensor_readings (device_id, recorded_at DESC)`,

	`CREATE TABLE IF NOT EXISTS touch_events (
		id          UUID PRIMARY KEY,
		recorded_at TIMESTAMPTZ NOT NULL,
		x           DOUBLE PRECISION NOT NULL,
		y           DOUBLE PRECISION NOT NULL,
		type        TEXT NOT NULL,
		direction   TEXT,
		end_x       DOUBLE PRECISION,
		end_y       DOUBLE PRECISION,
		duration_ms DOUBLE PRECISION,
		device_id   TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_touch_events_type ON touch_events (type, recorded_at DESC)`,

	`CREATE TABLE IF NOT EXISTS eye_tracking_samples (
		id              UUID PRIMARY KEY,
		recorded_at     TIMESTAMPTZ NOT NULL,
		is_user_looking BOOLEAN NOT NULL,
		direction       TEXT,
		eye_position    JSONB,
		device_id       TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_eye_tracking_samples_direction ON eye_tracking_samples (direction, recorded_at DESC)`,

	`CREATE TABLE IF NOT EXISTS app_usage_events (
		id             UUID PRIMARY KEY,
		device_id      TEXT NOT NULL,
		package_name   TEXT,
		app_name       TEXT,
		usage_duration DOUBLE PRECISION,
		open_count     INTEGER,
		recorded_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_app_usage_events_device_id ON app_usage_events (device_id, recorded_at DESC)`,
}

// EnsureSchema creates the telemetry tables and indexes if they do not
// exist. It runs at startup before the server accepts traffic.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
