package touch

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL touch repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const eventColumns = `id, recorded_at, x, y, type, direction, end_x, end_y,
	duration_ms, device_id`

// InsertMany stores a batch of events in a single transaction.
func (r *PostgresRepository) InsertMany(ctx context.Context, evs []*Event) error {
	query := `
		INSERT INTO touch_events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	for _, ev := range evs {
		_, err := tx.Exec(ctx, query,
			ev.ID,
			ev.RecordedAt,
			ev.X,
			ev.Y,
			ev.Type,
			ev.Direction,
			ev.EndX,
			ev.EndY,
			ev.DurationMs,
			ev.DeviceID,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// List retrieves all events, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM touch_events
		ORDER BY recorded_at DESC, id
	`
	return r.queryEvents(ctx, query)
}

// ListByType retrieves events with an exactly matching gesture type.
func (r *PostgresRepository) ListByType(ctx context.Context, gestureType string) ([]*Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM touch_events
		WHERE type = $1
		ORDER BY recorded_at DESC, id
	`
	return r.queryEvents(ctx, query, gestureType)
}

// DeleteAll removes every event.
func (r *PostgresRepository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM touch_events`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
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

func scanEvent(row pgx.Row) (*Event, error) {
	var ev Event
	err := row.Scan(
		&ev.ID,
		&ev.RecordedAt,
		&ev.X,
		&ev.Y,
		&ev.Type,
		&ev.Direction,
		&ev.EndX,
		&ev.EndY,
		&ev.DurationMs,
		&ev.DeviceID,
	)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)
