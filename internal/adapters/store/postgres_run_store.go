package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"storyrun-service/internal/domain"
	"storyrun-service/internal/platform/obs"
	"storyrun-service/internal/ports"
)

// Postgres-backed implementation of the RunStore port.
// The table holds at most one row (id = 1); Replace upserts it wholesale.
type PostgresRunStore struct {
	DB *sql.DB
}

func NewPostgresRunStore(db *sql.DB) *PostgresRunStore {
	return &PostgresRunStore{DB: db}
}

// Create the run_record table if it does not exist.
func (s *PostgresRunStore) InitSchema(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("init schema: db is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS run_record (
		id SMALLINT PRIMARY KEY CHECK (id = 1),
		run_type TEXT NOT NULL,
		universe TEXT NOT NULL,
		filename TEXT,
		file_data TEXT,
		submitted_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`
	if _, err := s.DB.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("init schema: create run_record table: %w", err)
	}

	return nil
}

// Remove the stored run so the store starts Empty.
func (s *PostgresRunStore) Reset(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("reset run store: db is nil")
	}

	if _, err := s.DB.ExecContext(ctx, `DELETE FROM run_record;`); err != nil {
		return fmt.Errorf("reset run store: %w", err)
	}
	return nil
}

func (s *PostgresRunStore) Get(ctx context.Context) (_ *domain.RunRecord, err error) {
	defer obs.Time(ctx, "run.store.Get")(&err)

	if s.DB == nil {
		return nil, errors.New("get run: db is nil")
	}

	q := `
	SELECT run_type, universe, filename, file_data
	FROM run_record
	WHERE id = 1;
	`

	var run domain.RunRecord
	var filename, fileData sql.NullString
	err = s.DB.QueryRowContext(ctx, q).Scan(&run.RunType, &run.Universe, &filename, &fileData)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get run: query run_record table: %w", err)
	}

	if filename.Valid {
		run.Filename = &filename.String
	}
	if fileData.Valid {
		run.FileData = &fileData.String
	}

	return &run, nil
}

func (s *PostgresRunStore) Replace(ctx context.Context, run domain.RunRecord) (err error) {
	defer obs.Time(ctx, "run.store.Replace")(&err)

	if s.DB == nil {
		return errors.New("replace run: db is nil")
	}

	q := `
	INSERT INTO run_record (id, run_type, universe, filename, file_data, submitted_at)
	VALUES (1, $1, $2, $3, $4, now())
	ON CONFLICT (id) DO UPDATE
	SET run_type = EXCLUDED.run_type,
		universe = EXCLUDED.universe,
		filename = EXCLUDED.filename,
		file_data = EXCLUDED.file_data,
		submitted_at = EXCLUDED.submitted_at;
	`

	if _, err := s.DB.ExecContext(ctx, q, run.RunType, run.Universe, nullString(run.Filename), nullString(run.FileData)); err != nil {
		return fmt.Errorf("replace run: upsert run_record: %w", err)
	}

	return nil
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}
