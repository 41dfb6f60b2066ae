// internal/storage/postgres/entities.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"finance-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
)

func (s *Storage) ListEntities(ctx context.Context, userID int64) ([]domain.Entity, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, name, description, short_description, category
		FROM entities
		WHERE user_id = $1
		ORDER BY name
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list entities: %w", err)
	}
	defer rows.Close()

	var entities []domain.Entity
	for rows.Next() {
		var e domain.Entity
		if err := rows.Scan(&e.ID, &e.UserID, &e.Name, &e.Description, &e.ShortDescription, &e.Category); err != nil {
			return nil, fmt.Errorf("scan entity: %w", err)
		}
		entities = append(entities, e)
	}
	return entities, rows.Err()
}

func (s *Storage) CreateEntity(ctx context.Context, e *domain.Entity) error {
	err := s.db.QueryRow(ctx, `
		INSERT INTO entities (user_id, name, description, short_description, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, e.UserID, e.Name, e.Description, e.ShortDescription, e.Category).Scan(&e.ID)
	if err != nil {
		return conflictOr(err, "insert entity", fmt.Sprintf("Entity %q already exists", e.Name))
	}
	return nil
}

func (s *Storage) UpdateEntity(ctx context.Context, userID, id int64, upd domain.EntityUpdate) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		var category string
		err := tx.QueryRow(ctx,
			"SELECT category FROM entities WHERE id = $1 AND user_id = $2 FOR UPDATE",
			id, userID,
		).Scan(&category)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.NotFound("Entity", id)
			}
			return fmt.Errorf("load entity: %w", err)
		}

		_, err = tx.Exec(ctx, `
			UPDATE entities
			SET name = $1, description = $2, short_description = $3, category = $4
			WHERE id = $5 AND user_id = $6
		`, upd.Name, upd.Description, upd.ShortDescription, deref(upd.Category, category), id, userID)
		if err != nil {
			return conflictOr(err, "update entity", fmt.Sprintf("Entity %q already exists", upd.Name))
		}
		return nil
	})
}

// DeleteEntity removes the entity with its subscriptions, payees and services.
func (s *Storage) DeleteEntity(ctx context.Context, userID, id int64) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		if err := lockOwned(ctx, tx, "entities", "Entity", userID, id); err != nil {
			return err
		}
		for _, q := range []string{
			"DELETE FROM subscriptions WHERE entity_id = $1 AND user_id = $2",
			"DELETE FROM payees WHERE entity_id = $1 AND user_id = $2",
			"DELETE FROM services WHERE entity_id = $1 AND user_id = $2",
			"DELETE FROM entities WHERE id = $1 AND user_id = $2",
		} {
			if _, err := tx.Exec(ctx, q, id, userID); err != nil {
				return fmt.Errorf("delete entity %d: %w", id, err)
			}
		}
		return nil
	})
}
