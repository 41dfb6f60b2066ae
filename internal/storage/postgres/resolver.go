// internal/storage/postgres/resolver.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"finance-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
)

// resolver maps human-readable names to ids inside a transaction. Lookups
// are exact matches scoped to the owner and, for services and payees, to
// the parent row.
type resolver struct {
	tx     pgx.Tx
	userID int64
}

func (r resolver) lookup(ctx context.Context, resource, name, query string, args ...any) (int64, error) {
	var id int64
	if err := r.tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.NotFound(resource, name)
		}
		return 0, fmt.Errorf("resolve %s %q: %w", resource, name, err)
	}
	return id, nil
}

func (r resolver) entity(ctx context.Context, name string) (int64, error) {
	return r.lookup(ctx, "Entity", name,
		"SELECT id FROM entities WHERE user_id = $1 AND name = $2",
		r.userID, name)
}

func (r resolver) service(ctx context.Context, entityID int64, name string) (int64, error) {
	return r.lookup(ctx, "Service", name,
		"SELECT id FROM services WHERE user_id = $1 AND entity_id = $2 AND name = $3",
		r.userID, entityID, name)
}

func (r resolver) payee(ctx context.Context, serviceID int64, name string) (int64, error) {
	return r.lookup(ctx, "Payee", name,
		"SELECT id FROM payees WHERE user_id = $1 AND service_id = $2 AND name = $3",
		r.userID, serviceID, name)
}

type chainIDs struct {
	entity, service, payee int64
}

// chain resolves entity → service → payee, stopping at the first empty name.
func (r resolver) chain(ctx context.Context, entityName, serviceName, payeeName string) (chainIDs, error) {
	var ids chainIDs
	var err error

	if ids.entity, err = r.entity(ctx, entityName); err != nil {
		return ids, err
	}
	if serviceName == "" {
		return ids, nil
	}
	if ids.service, err = r.service(ctx, ids.entity, serviceName); err != nil {
		return ids, err
	}
	if payeeName == "" {
		return ids, nil
	}
	if ids.payee, err = r.payee(ctx, ids.service, payeeName); err != nil {
		return ids, err
	}
	return ids, nil
}
