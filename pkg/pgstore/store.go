package pgstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

// Store is a PostgreSQL-backed session store operating on the sessions
// table created by the embedded migrations.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a PostgreSQL-backed session store
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Create stores a new record, assigning a fresh ID when none is set.
func (s *Store) Create(ctx context.Context, rec session.Record) (session.Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO sessions (id, user_id, data) VALUES ($1, $2, $3)`,
		rec.ID, rec.UserID, rec.Data,
	)
	if err != nil {
		return session.Record{}, err
	}

	return rec, nil
}

// Get retrieves a record by ID.
func (s *Store) Get(ctx context.Context, id string) (session.Record, error) {
	rec := session.Record{ID: id}

	err := s.pool.QueryRow(ctx,
		`SELECT user_id, data FROM sessions WHERE id = $1`,
		id,
	).Scan(&rec.UserID, &rec.Data)
	if errors.Is(err, pgx.ErrNoRows) {
		return session.Record{}, session.ErrSessionNotFound
	}
	if err != nil {
		return session.Record{}, err
	}

	return rec, nil
}

// Set replaces the encoded data of an existing record.
func (s *Store) Set(ctx context.Context, id string, data string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE sessions SET data = $2 WHERE id = $1`,
		id, data,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return session.ErrSessionNotFound
	}
	return nil
}

// Delete removes a record by ID. Deleting a missing record is a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}

// DeleteAllForUser removes every record owned by the given user.
func (s *Store) DeleteAllForUser(ctx context.Context, userID int64) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE user_id = $1`, userID)
	return err
}

// GetAll enumerates all stored records.
func (s *Store) GetAll(ctx context.Context) ([]session.Record, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, user_id, data FROM sessions`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []session.Record
	for rows.Next() {
		var rec session.Record
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Data); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

// Healthcheck returns a probe function validating database connectivity.
func Healthcheck(pool *pgxpool.Pool) func(context.Context) error {
	return func(ctx context.Context) error {
		return pool.Ping(ctx)
	}
}
