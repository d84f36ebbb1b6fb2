package appusage

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL app-usage repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const usageColumns = `id, device_id, package_name, app_name, usage_duration,
	open_count, recorded_at`

const insertUsage = `
	INSERT INTO app_usage_events (` + usageColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
`

// Insert stores one record.
func (r *PostgresRepository) Insert(ctx context.Context, ev *Event) error {
	_, err := r.pool.Exec(ctx, insertUsage, usageArgs(ev)...)
	return err
}

// InsertMany stores a batch of records in a single transaction.
func (r *PostgresRepository) InsertMany(ctx context.Context, evs []*Event) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	for _, ev := range evs {
		if _, err := tx.Exec(ctx, insertUsage, usageArgs(ev)...); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// List retrieves the latest records, newest first, capped at limit.
func (r *PostgresRepository) List(ctx context.Context, limit int) ([]*Event, error) {
	query := `
		SELECT ` + usageColumns + `
		FROM app_usage_events
		ORDER BY recorded_at DESC, id
		LIMIT $1
	`
	return r.queryEvents(ctx, query, limit)
}

// ListByDevice retrieves all records for a device id, newest first.
func (r *PostgresRepository) ListByDevice(ctx context.Context, deviceID string) ([]*Event, error) {
	query := `
		SELECT ` + usageColumns + `
		FROM app_usage_events
		WHERE device_id = $1
		ORDER BY recorded_at DESC, id
	`
	return r.queryEvents(ctx, query, deviceID)
}

func (r *PostgresRepository) queryEvents(ctx context.Context, query string, args ...interface{}) ([]*Event, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func usageArgs(ev *Event) []interface{} {
	return []interface{}{
		ev.ID,
		ev.DeviceID,
		ev.PackageName,
		ev.AppName,
		ev.UsageDuration,
		ev.OpenCount,
		ev.RecordedAt,
	}
}

func scanEvent(row pgx.Row) (*Event, error) {
	var ev Event
	err := row.Scan(
		&ev.ID,
		&ev.DeviceID,
		&ev.PackageName,
		&ev.AppName,
		&ev.UsageDuration,
		&ev.OpenCount,
		&ev.RecordedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)
