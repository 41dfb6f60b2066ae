// internal/storage/postgres/reminders.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"finance-tracker/internal/domain"
)

// DuePayments lists subscription payments dated within [from, to] for users
// that linked a Telegram chat, ordered by user and date.
func (s *Storage) DuePayments(ctx context.Context, from, to time.Time) ([]domain.DuePayment, error) {
	rows, err := s.db.Query(ctx, `
		SELECT u.id, u.telegram_chat_id, e.name, sv.name, p.name,
		       to_char(sub.payment_date, 'YYYY-MM-DD'), sub.amount, sub.category
		FROM subscriptions sub
		JOIN users u ON u.id = sub.user_id
		JOIN entities e ON e.id = sub.entity_id
		JOIN services sv ON sv.id = sub.service_id
		JOIN payees p ON p.id = sub.payee_id
		WHERE u.telegram_chat_id IS NOT NULL
		  AND sub.payment_date BETWEEN $1::date AND $2::date
		  AND (sub.end_date IS NULL OR sub.end_date >= $1::date)
		ORDER BY u.id, sub.payment_date
	`, from.Format(time.DateOnly), to.Format(time.DateOnly))
	if err != nil {
		return nil, fmt.Errorf("query due payments: %w", err)
	}
	defer rows.Close()

	var due []domain.DuePayment
	for rows.Next() {
		var d domain.DuePayment
		if err := rows.Scan(&d.UserID, &d.TelegramChatID, &d.EntityName, &d.ServiceName, &d.PayeeName,
			&d.PaymentDate, &d.Amount, &d.Category); err != nil {
			return nil, fmt.Errorf("scan due payment: %w", err)
		}
		due = append(due, d)
	}
	return due, rows.Err()
}
