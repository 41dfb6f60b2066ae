// internal/storage/postgres/payees.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"finance-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
)

const selectPayees = `
	SELECT p.id, p.user_id, p.entity_id, e.name, p.service_id, s.name,
	       p.name, p.phone, p.email, p.amount, p.category
	FROM payees p
	JOIN entities e ON e.id = p.entity_id
	JOIN services s ON s.id = p.service_id
`

func scanPayee(row pgx.Row, p *domain.Payee) error {
	return row.Scan(&p.ID, &p.UserID, &p.EntityID, &p.EntityName, &p.ServiceID, &p.ServiceName,
		&p.Name, &p.Phone, &p.Email, &p.Amount, &p.Category)
}

func (s *Storage) ListPayees(ctx context.Context, userID int64) ([]domain.Payee, error) {
	rows, err := s.db.Query(ctx, selectPayees+`
		WHERE p.user_id = $1
		ORDER BY e.name, s.name, p.name
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list payees: %w", err)
	}
	defer rows.Close()

	var payees []domain.Payee
	for rows.Next() {
		var p domain.Payee
		if err := scanPayee(rows, &p); err != nil {
			return nil, fmt.Errorf("scan payee: %w", err)
		}
		payees = append(payees, p)
	}
	return payees, rows.Err()
}

func (s *Storage) CreatePayee(ctx context.Context, p *domain.Payee) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		ids, err := resolver{tx: tx, userID: p.UserID}.chain(ctx, p.EntityName, p.ServiceName, "")
		if err != nil {
			return err
		}
		p.EntityID, p.ServiceID = ids.entity, ids.service

		err = tx.QueryRow(ctx, `
			INSERT INTO payees (user_id, entity_id, service_id, name, phone, email, amount, category)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id
		`, p.UserID, p.EntityID, p.ServiceID, p.Name, p.Phone, p.Email, p.Amount, p.Category).Scan(&p.ID)
		if err != nil {
			return conflictOr(err, "insert payee",
				fmt.Sprintf("Payee %q already exists for service %q", p.Name, p.ServiceName))
		}
		return nil
	})
}

func (s *Storage) UpdatePayee(ctx context.Context, userID, id int64, upd domain.PayeeUpdate) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		var cur domain.Payee
		err := scanPayee(tx.QueryRow(ctx, selectPayees+`
			WHERE p.id = $1 AND p.user_id = $2
			FOR UPDATE OF p
		`, id, userID), &cur)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.NotFound("Payee", id)
			}
			return fmt.Errorf("load payee: %w", err)
		}

		ids := chainIDs{entity: cur.EntityID, service: cur.ServiceID}
		if upd.EntityName != nil || upd.ServiceName != nil {
			ids, err = resolver{tx: tx, userID: userID}.chain(ctx,
				deref(upd.EntityName, cur.EntityName),
				deref(upd.ServiceName, cur.ServiceName),
				"")
			if err != nil {
				return err
			}
		}

		_, err = tx.Exec(ctx, `
			UPDATE payees
			SET entity_id = $1, service_id = $2, name = $3, phone = $4, email = $5, amount = $6, category = $7
			WHERE id = $8 AND user_id = $9
		`, ids.entity, ids.service, upd.Name,
			deref(upd.Phone, cur.Phone),
			deref(upd.Email, cur.Email),
			deref(upd.Amount, cur.Amount),
			deref(upd.Category, cur.Category),
			id, userID)
		if err != nil {
			return conflictOr(err, "update payee", fmt.Sprintf("Payee %q already exists", upd.Name))
		}

		if ids.service != cur.ServiceID {
			_, err = tx.Exec(ctx, `
				UPDATE subscriptions SET entity_id = $1, service_id = $2
				WHERE payee_id = $3 AND user_id = $4
			`, ids.entity, ids.service, id, userID)
			if err != nil {
				return fmt.Errorf("move payee subscriptions: %w", err)
			}
		}
		return nil
	})
}

// DeletePayee removes the payee with its subscriptions.
func (s *Storage) DeletePayee(ctx context.Context, userID, id int64) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		if err := lockOwned(ctx, tx, "payees", "Payee", userID, id); err != nil {
			return err
		}
		for _, q := range []string{
			"DELETE FROM subscriptions WHERE payee_id = $1 AND user_id = $2",
			"DELETE FROM payees WHERE id = $1 AND user_id = $2",
		} {
			if _, err := tx.Exec(ctx, q, id, userID); err != nil {
				return fmt.Errorf("delete payee %d: %w", id, err)
			}
		}
		return nil
	})
}
