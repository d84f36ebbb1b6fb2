package eyetracking

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
// eye_position is stored as JSONB.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL eye-tracking repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const sampleColumns = `id, recorded_at, is_user_looking, direction, eye_position, device_id`

// InsertMany stores a batch of samples in a single transaction.
func (r *PostgresRepository) InsertMany(ctx context.Context, samples []*Sample) error {
	query := `
		INSERT INTO eye_tracking_samples (` + sampleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	for _, s := range samples {
		var eyePos []byte
		if s.EyePosition != nil {
			eyePos, err = json.Marshal(s.EyePosition)
			if err != nil {
				return err
			}
		}

		_, err := tx.Exec(ctx, query,
			s.ID,
			s.RecordedAt,
			s.IsUserLooking,
			s.Direction,
			eyePos,
			s.DeviceID,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// List retrieves all samples, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*Sample, error) {
	query := `
		SELECT ` + sampleColumns + `
		FROM eye_tracking_samples
		ORDER BY recorded_at DESC, id
	`
	return r.querySamples(ctx, query)
}

// ListByDirection retrieves samples with an exactly matching direction.
func (r *PostgresRepository) ListByDirection(ctx context.Context, direction string) ([]*Sample, error) {
	query := `
		SELECT ` + sampleColumns + `
		FROM eye_tracking_samples
		WHERE direction = $1
		ORDER BY recorded_at DESC, id
	`
	return r.querySamples(ctx, query, direction)
}

// DeleteAll removes every sample.
func (r *PostgresRepository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM eye_tracking_samples`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PostgresRepository) querySamples(ctx context.Context, query string, args ...interface{}) ([]*Sample, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []*Sample
	for rows.Next() {
		s, err := scanSample(rows)
		if err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}
	return samples, rows.Err()
}

func scanSample(row pgx.Row) (*Sample, error) {
	var (
		s      Sample
		eyePos []byte
	)
	err := row.Scan(
		&s.ID,
		&s.RecordedAt,
		&s.IsUserLooking,
		&s.Direction,
		&eyePos,
		&s.DeviceID,
	)
	if err != nil {
		return nil, err
	}
	if len(eyePos) > 0 {
		if err := json.Unmarshal(eyePos, &s.EyePosition); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)
