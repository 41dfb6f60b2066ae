// internal/storage/postgres/postgres.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"finance-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	uniqueViolation   = "23505"
	numericOutOfRange = "22003"
)

type Storage struct {
	db *pgxpool.Pool
}

func NewStorage(db *pgxpool.Pool) *Storage {
	return &Storage{db: db}
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// inTx runs fn in a transaction. Any error from fn rolls everything back.
func (s *Storage) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// conflictOr turns unique violations into a Conflict error, out-of-range
// numbers into a Validation error, and wraps the rest.
func conflictOr(err error, op, conflictMsg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return domain.Conflict(conflictMsg, err)
		case numericOutOfRange:
			return domain.Validation("Invalid input", "numeric value out of range")
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// lockOwned checks that row id of table exists and belongs to userID, and
// locks it for the rest of the transaction.
func lockOwned(ctx context.Context, tx pgx.Tx, table, resource string, userID, id int64) error {
	var found int64
	err := tx.QueryRow(ctx,
		"SELECT id FROM "+table+" WHERE id = $1 AND user_id = $2 FOR UPDATE",
		id, userID,
	).Scan(&found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NotFound(resource, id)
		}
		return fmt.Errorf("lock %s: %w", resource, err)
	}
	return nil
}

func deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
