// internal/storage/postgres/subscriptions.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"finance-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
)

const selectSubscriptions = `
	SELECT sub.id, sub.user_id,
	       sub.entity_id, e.name, sub.service_id, s.name, sub.payee_id, p.name,
	       to_char(sub.start_date, 'YYYY-MM-DD'),
	       to_char(sub.end_date, 'YYYY-MM-DD'),
	       to_char(sub.payment_date, 'YYYY-MM-DD'),
	       sub.amount, sub.category
	FROM subscriptions sub
	JOIN entities e ON e.id = sub.entity_id
	JOIN services s ON s.id = sub.service_id
	JOIN payees p ON p.id = sub.payee_id
`

func scanSubscription(row pgx.Row, sub *domain.Subscription) error {
	return row.Scan(&sub.ID, &sub.UserID,
		&sub.EntityID, &sub.EntityName, &sub.ServiceID, &sub.ServiceName, &sub.PayeeID, &sub.PayeeName,
		&sub.StartDate, &sub.EndDate, &sub.PaymentDate, &sub.Amount, &sub.Category)
}

func (s *Storage) ListSubscriptions(ctx context.Context, userID int64) ([]domain.Subscription, error) {
	rows, err := s.db.Query(ctx, selectSubscriptions+`
		WHERE sub.user_id = $1
		ORDER BY sub.payment_date, e.name
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []domain.Subscription
	for rows.Next() {
		var sub domain.Subscription
		if err := scanSubscription(rows, &sub); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func (s *Storage) CreateSubscription(ctx context.Context, sub *domain.Subscription) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		ids, err := resolver{tx: tx, userID: sub.UserID}.chain(ctx, sub.EntityName, sub.ServiceName, sub.PayeeName)
		if err != nil {
			return err
		}
		sub.EntityID, sub.ServiceID, sub.PayeeID = ids.entity, ids.service, ids.payee

		err = tx.QueryRow(ctx, `
			INSERT INTO subscriptions
				(user_id, entity_id, service_id, payee_id, start_date, end_date, payment_date, amount, category)
			VALUES ($1, $2, $3, $4, $5::date, $6::date, $7::date, $8, $9)
			RETURNING id
		`, sub.UserID, sub.EntityID, sub.ServiceID, sub.PayeeID,
			sub.StartDate, sub.EndDate, sub.PaymentDate, sub.Amount, sub.Category).Scan(&sub.ID)
		if err != nil {
			return conflictOr(err, "insert subscription", "Subscription already exists")
		}
		return nil
	})
}

func (s *Storage) UpdateSubscription(ctx context.Context, userID, id int64, upd domain.SubscriptionUpdate) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		var cur domain.Subscription
		err := scanSubscription(tx.QueryRow(ctx, selectSubscriptions+`
			WHERE sub.id = $1 AND sub.user_id = $2
			FOR UPDATE OF sub
		`, id, userID), &cur)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.NotFound("Subscription", id)
			}
			return fmt.Errorf("load subscription: %w", err)
		}

		ids := chainIDs{entity: cur.EntityID, service: cur.ServiceID, payee: cur.PayeeID}
		if upd.EntityName != nil || upd.ServiceName != nil || upd.PayeeName != nil {
			ids, err = resolver{tx: tx, userID: userID}.chain(ctx,
				deref(upd.EntityName, cur.EntityName),
				deref(upd.ServiceName, cur.ServiceName),
				deref(upd.PayeeName, cur.PayeeName))
			if err != nil {
				return err
			}
		}

		endDate := cur.EndDate
		if upd.EndDate != nil {
			endDate = upd.EndDate
		}
		startDate := deref(upd.StartDate, cur.StartDate)
		if endDate != nil && *endDate < startDate {
			return domain.Validation("Invalid input", "end_date must not precede start_date")
		}

		_, err = tx.Exec(ctx, `
			UPDATE subscriptions
			SET entity_id = $1, service_id = $2, payee_id = $3,
			    start_date = $4::date, end_date = $5::date, payment_date = $6::date,
			    amount = $7, category = $8
			WHERE id = $9 AND user_id = $10
		`, ids.entity, ids.service, ids.payee,
			startDate, endDate, deref(upd.PaymentDate, cur.PaymentDate),
			deref(upd.Amount, cur.Amount),
			deref(upd.Category, cur.Category),
			id, userID)
		if err != nil {
			return conflictOr(err, "update subscription", "Subscription already exists")
		}
		return nil
	})
}

func (s *Storage) DeleteSubscription(ctx context.Context, userID, id int64) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM subscriptions WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return fmt.Errorf("delete subscription %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("Subscription", id)
	}
	return nil
}
