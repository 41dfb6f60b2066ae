// internal/storage/storage.go
package storage

import (
	"context"
	"time"

	"finance-tracker/internal/domain"
)

// Every method is scoped to userID: rows owned by another user behave as if
// they did not exist.

type EntityStorage interface {
	ListEntities(ctx context.Context, userID int64) ([]domain.Entity, error)
	CreateEntity(ctx context.Context, e *domain.Entity) error
	UpdateEntity(ctx context.Context, userID, id int64, upd domain.EntityUpdate) error
	DeleteEntity(ctx context.Context, userID, id int64) error
}

// ServiceStorage resolves Service.EntityName to an id on create.
type ServiceStorage interface {
	ListServices(ctx context.Context, userID int64) ([]domain.Service, error)
	CreateService(ctx context.Context, s *domain.Service) error
	UpdateService(ctx context.Context, userID, id int64, upd domain.ServiceUpdate) error
	DeleteService(ctx context.Context, userID, id int64) error
}

type PayeeStorage interface {
	ListPayees(ctx context.Context, userID int64) ([]domain.Payee, error)
	CreatePayee(ctx context.Context, p *domain.Payee) error
	UpdatePayee(ctx context.Context, userID, id int64, upd domain.PayeeUpdate) error
	DeletePayee(ctx context.Context, userID, id int64) error
}

type SubscriptionStorage interface {
	ListSubscriptions(ctx context.Context, userID int64) ([]domain.Subscription, error)
	CreateSubscription(ctx context.Context, s *domain.Subscription) error
	UpdateSubscription(ctx context.Context, userID, id int64, upd domain.SubscriptionUpdate) error
	DeleteSubscription(ctx context.Context, userID, id int64) error
}

type UserStorage interface {
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, upd domain.UserUpdate) error
	DeleteUser(ctx context.Context, id int64) error
}

type ReminderStorage interface {
	DuePayments(ctx context.Context, from, to time.Time) ([]domain.DuePayment, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}
