// internal/storage/postgres/services.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"finance-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
)

const selectServices = `
	SELECT s.id, s.user_id, s.entity_id, e.name, s.name, s.description,
	       s.min_duration, s.amount, s.category
	FROM services s
	JOIN entities e ON e.id = s.entity_id
`

func scanService(row pgx.Row, sv *domain.Service) error {
	return row.Scan(&sv.ID, &sv.UserID, &sv.EntityID, &sv.EntityName, &sv.Name,
		&sv.Description, &sv.MinDuration, &sv.Amount, &sv.Category)
}

func (s *Storage) ListServices(ctx context.Context, userID int64) ([]domain.Service, error) {
	rows, err := s.db.Query(ctx, selectServices+`
		WHERE s.user_id = $1
		ORDER BY e.name, s.name
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var services []domain.Service
	for rows.Next() {
		var sv domain.Service
		if err := scanService(rows, &sv); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		services = append(services, sv)
	}
	return services, rows.Err()
}

func (s *Storage) CreateService(ctx context.Context, sv *domain.Service) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		entityID, err := resolver{tx: tx, userID: sv.UserID}.entity(ctx, sv.EntityName)
		if err != nil {
			return err
		}
		sv.EntityID = entityID

		err = tx.QueryRow(ctx, `
			INSERT INTO services (user_id, entity_id, name, description, min_duration, amount, category)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`, sv.UserID, sv.EntityID, sv.Name, sv.Description, sv.MinDuration, sv.Amount, sv.Category).Scan(&sv.ID)
		if err != nil {
			return conflictOr(err, "insert service",
				fmt.Sprintf("Service %q already exists for entity %q", sv.Name, sv.EntityName))
		}
		return nil
	})
}

func (s *Storage) UpdateService(ctx context.Context, userID, id int64, upd domain.ServiceUpdate) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		var cur domain.Service
		err := scanService(tx.QueryRow(ctx, selectServices+`
			WHERE s.id = $1 AND s.user_id = $2
			FOR UPDATE OF s
		`, id, userID), &cur)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.NotFound("Service", id)
			}
			return fmt.Errorf("load service: %w", err)
		}

		entityID := cur.EntityID
		if upd.EntityName != nil && *upd.EntityName != cur.EntityName {
			if entityID, err = (resolver{tx: tx, userID: userID}).entity(ctx, *upd.EntityName); err != nil {
				return err
			}
		}

		_, err = tx.Exec(ctx, `
			UPDATE services
			SET entity_id = $1, name = $2, description = $3, min_duration = $4, amount = $5, category = $6
			WHERE id = $7 AND user_id = $8
		`, entityID, upd.Name,
			deref(upd.Description, cur.Description),
			deref(upd.MinDuration, cur.MinDuration),
			deref(upd.Amount, cur.Amount),
			deref(upd.Category, cur.Category),
			id, userID)
		if err != nil {
			return conflictOr(err, "update service", fmt.Sprintf("Service %q already exists", upd.Name))
		}

		// Dependents follow the service when it moves to another entity.
		if entityID != cur.EntityID {
			for _, q := range []string{
				"UPDATE payees SET entity_id = $1 WHERE service_id = $2 AND user_id = $3",
				"UPDATE subscriptions SET entity_id = $1 WHERE service_id = $2 AND user_id = $3",
			} {
				if _, err := tx.Exec(ctx, q, entityID, id, userID); err != nil {
					return fmt.Errorf("move service dependents: %w", err)
				}
			}
		}
		return nil
	})
}

// DeleteService removes the service with its subscriptions and payees.
func (s *Storage) DeleteService(ctx context.Context, userID, id int64) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		if err := lockOwned(ctx, tx, "services", "Service", userID, id); err != nil {
			return err
		}
		for _, q := range []string{
			"DELETE FROM subscriptions WHERE service_id = $1 AND user_id = $2",
			"DELETE FROM payees WHERE service_id = $1 AND user_id = $2",
			"DELETE FROM services WHERE id = $1 AND user_id = $2",
		} {
			if _, err := tx.Exec(ctx, q, id, userID); err != nil {
				return fmt.Errorf("delete service %d: %w", id, err)
			}
		}
		return nil
	})
}
