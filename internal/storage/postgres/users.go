// internal/storage/postgres/users.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"finance-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
)

func (s *Storage) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := s.db.QueryRow(ctx, `
		SELECT id, username, name, email, phone, telegram_chat_id
		FROM users WHERE id = $1
	`, id).Scan(&u.ID, &u.Username, &u.Name, &u.Email, &u.Phone, &u.TelegramChatID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("User", id)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// UpdateUser applies the non-nil fields of upd. A username already taken by
// another user is a Conflict.
func (s *Storage) UpdateUser(ctx context.Context, id int64, upd domain.UserUpdate) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		if err := lockOwnedUser(ctx, tx, id); err != nil {
			return err
		}

		if upd.Username != nil {
			var taken bool
			err := tx.QueryRow(ctx,
				"SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 AND id <> $2)",
				*upd.Username, id,
			).Scan(&taken)
			if err != nil {
				return fmt.Errorf("check username: %w", err)
			}
			if taken {
				return domain.Conflict("Username already exists", nil)
			}
		}

		_, err := tx.Exec(ctx, `
			UPDATE users SET
				username         = COALESCE($1, username),
				name             = COALESCE($2, name),
				email            = COALESCE($3, email),
				phone            = COALESCE($4, phone),
				password_hash    = COALESCE($5, password_hash),
				telegram_chat_id = COALESCE($6, telegram_chat_id)
			WHERE id = $7
		`, upd.Username, upd.Name, upd.Email, upd.Phone, upd.PasswordHash, upd.TelegramChatID, id)
		if err != nil {
			return conflictOr(err, "update user", "Username already exists")
		}
		return nil
	})
}

// DeleteUser removes the user and everything they own.
func (s *Storage) DeleteUser(ctx context.Context, id int64) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		if err := lockOwnedUser(ctx, tx, id); err != nil {
			return err
		}
		for _, q := range []string{
			"DELETE FROM subscriptions WHERE user_id = $1",
			"DELETE FROM payees WHERE user_id = $1",
			"DELETE FROM services WHERE user_id = $1",
			"DELETE FROM entities WHERE user_id = $1",
			"DELETE FROM users WHERE id = $1",
		} {
			if _, err := tx.Exec(ctx, q, id); err != nil {
				return fmt.Errorf("delete user %d: %w", id, err)
			}
		}
		return nil
	})
}

func lockOwnedUser(ctx context.Context, tx pgx.Tx, id int64) error {
	var found int64
	err := tx.QueryRow(ctx, "SELECT id FROM users WHERE id = $1 FOR UPDATE", id).Scan(&found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NotFound("User", id)
		}
		return fmt.Errorf("lock user: %w", err)
	}
	return nil
}
