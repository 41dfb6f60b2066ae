// internal/handler/fake_store_test.go
package handler

import (
	"context"
	"errors"
	"sort"
	"sync"

	"finance-tracker/internal/domain"
)

// fakeStore is an in-memory Store with the same tenancy, resolution and
// cascade rules as the Postgres storage.
type fakeStore struct {
	mu     sync.Mutex
	nextID int64
	failOn string

	users    map[int64]*domain.User
	entities map[int64]*domain.Entity
	services map[int64]*domain.Service
	payees   map[int64]*domain.Payee
	subs     map[int64]*domain.Subscription
}

var errBoom = errors.New("connection refused")

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    map[int64]*domain.User{},
		entities: map[int64]*domain.Entity{},
		services: map[int64]*domain.Service{},
		payees:   map[int64]*domain.Payee{},
		subs:     map[int64]*domain.Subscription{},
	}
}

func (f *fakeStore) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) fail(op string) error {
	if f.failOn == op {
		return errBoom
	}
	return nil
}

func (f *fakeStore) Ping(context.Context) error { return f.fail("ping") }

func (f *fakeStore) entityID(userID int64, name string) (int64, error) {
	for _, e := range f.entities {
		if e.UserID == userID && e.Name == name {
			return e.ID, nil
		}
	}
	return 0, domain.NotFound("Entity", name)
}

func (f *fakeStore) serviceID(userID, entityID int64, name string) (int64, error) {
	for _, s := range f.services {
		if s.UserID == userID && s.EntityID == entityID && s.Name == name {
			return s.ID, nil
		}
	}
	return 0, domain.NotFound("Service", name)
}

func (f *fakeStore) payeeID(userID, serviceID int64, name string) (int64, error) {
	for _, p := range f.payees {
		if p.UserID == userID && p.ServiceID == serviceID && p.Name == name {
			return p.ID, nil
		}
	}
	return 0, domain.NotFound("Payee", name)
}

func sortedByID[T any](m map[int64]*T, keep func(*T) bool) []T {
	ids := make([]int64, 0, len(m))
	for id, v := range m {
		if keep(v) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, *m[id])
	}
	return out
}

// === entities ===

func (f *fakeStore) ListEntities(_ context.Context, userID int64) ([]domain.Entity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("list"); err != nil {
		return nil, err
	}
	return sortedByID(f.entities, func(e *domain.Entity) bool { return e.UserID == userID }), nil
}

func (f *fakeStore) CreateEntity(_ context.Context, e *domain.Entity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("create"); err != nil {
		return err
	}
	if _, err := f.entityID(e.UserID, e.Name); err == nil {
		return domain.Conflict("Entity already exists", nil)
	}
	e.ID = f.id()
	cp := *e
	f.entities[e.ID] = &cp
	return nil
}

func (f *fakeStore) UpdateEntity(_ context.Context, userID, id int64, upd domain.EntityUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entities[id]
	if !ok || e.UserID != userID {
		return domain.NotFound("Entity", id)
	}
	e.Name, e.Description, e.ShortDescription = upd.Name, upd.Description, upd.ShortDescription
	if upd.Category != nil {
		e.Category = *upd.Category
	}
	return nil
}

func (f *fakeStore) DeleteEntity(_ context.Context, userID, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entities[id]
	if !ok || e.UserID != userID {
		return domain.NotFound("Entity", id)
	}
	for k, s := range f.subs {
		if s.EntityID == id {
			delete(f.subs, k)
		}
	}
	for k, p := range f.payees {
		if p.EntityID == id {
			delete(f.payees, k)
		}
	}
	for k, s := range f.services {
		if s.EntityID == id {
			delete(f.services, k)
		}
	}
	delete(f.entities, id)
	return nil
}

// === services ===

func (f *fakeStore) ListServices(_ context.Context, userID int64) ([]domain.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return sortedByID(f.services, func(s *domain.Service) bool { return s.UserID == userID }), nil
}

func (f *fakeStore) CreateService(_ context.Context, sv *domain.Service) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	entityID, err := f.entityID(sv.UserID, sv.EntityName)
	if err != nil {
		return err
	}
	sv.EntityID = entityID
	sv.ID = f.id()
	cp := *sv
	f.services[sv.ID] = &cp
	return nil
}

func (f *fakeStore) UpdateService(_ context.Context, userID, id int64, upd domain.ServiceUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	sv, ok := f.services[id]
	if !ok || sv.UserID != userID {
		return domain.NotFound("Service", id)
	}
	if upd.EntityName != nil {
		entityID, err := f.entityID(userID, *upd.EntityName)
		if err != nil {
			return err
		}
		sv.EntityID, sv.EntityName = entityID, *upd.EntityName
	}
	sv.Name = upd.Name
	if upd.Description != nil {
		sv.Description = *upd.Description
	}
	if upd.MinDuration != nil {
		sv.MinDuration = *upd.MinDuration
	}
	if upd.Amount != nil {
		sv.Amount = *upd.Amount
	}
	if upd.Category != nil {
		sv.Category = *upd.Category
	}
	return nil
}

func (f *fakeStore) DeleteService(_ context.Context, userID, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	sv, ok := f.services[id]
	if !ok || sv.UserID != userID {
		return domain.NotFound("Service", id)
	}
	for k, s := range f.subs {
		if s.ServiceID == id {
			delete(f.subs, k)
		}
	}
	for k, p := range f.payees {
		if p.ServiceID == id {
			delete(f.payees, k)
		}
	}
	delete(f.services, id)
	return nil
}

// === payees ===

func (f *fakeStore) ListPayees(_ context.Context, userID int64) ([]domain.Payee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return sortedByID(f.payees, func(p *domain.Payee) bool { return p.UserID == userID }), nil
}

func (f *fakeStore) CreatePayee(_ context.Context, p *domain.Payee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	entityID, err := f.entityID(p.UserID, p.EntityName)
	if err != nil {
		return err
	}
	serviceID, err := f.serviceID(p.UserID, entityID, p.ServiceName)
	if err != nil {
		return err
	}
	p.EntityID, p.ServiceID = entityID, serviceID
	p.ID = f.id()
	cp := *p
	f.payees[p.ID] = &cp
	return nil
}

func (f *fakeStore) UpdatePayee(_ context.Context, userID, id int64, upd domain.PayeeUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.payees[id]
	if !ok || p.UserID != userID {
		return domain.NotFound("Payee", id)
	}
	p.Name = upd.Name
	if upd.Amount != nil {
		p.Amount = *upd.Amount
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	return nil
}

func (f *fakeStore) DeletePayee(_ context.Context, userID, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.payees[id]
	if !ok || p.UserID != userID {
		return domain.NotFound("Payee", id)
	}
	for k, s := range f.subs {
		if s.PayeeID == id {
			delete(f.subs, k)
		}
	}
	delete(f.payees, id)
	return nil
}

// === subscriptions ===

func (f *fakeStore) ListSubscriptions(_ context.Context, userID int64) ([]domain.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return sortedByID(f.subs, func(s *domain.Subscription) bool { return s.UserID == userID }), nil
}

func (f *fakeStore) CreateSubscription(_ context.Context, sub *domain.Subscription) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	entityID, err := f.entityID(sub.UserID, sub.EntityName)
	if err != nil {
		return err
	}
	serviceID, err := f.serviceID(sub.UserID, entityID, sub.ServiceName)
	if err != nil {
		return err
	}
	payeeID, err := f.payeeID(sub.UserID, serviceID, sub.PayeeName)
	if err != nil {
		return err
	}
	sub.EntityID, sub.ServiceID, sub.PayeeID = entityID, serviceID, payeeID
	sub.ID = f.id()
	cp := *sub
	f.subs[sub.ID] = &cp
	return nil
}

func (f *fakeStore) UpdateSubscription(_ context.Context, userID, id int64, upd domain.SubscriptionUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	sub, ok := f.subs[id]
	if !ok || sub.UserID != userID {
		return domain.NotFound("Subscription", id)
	}
	if upd.PaymentDate != nil {
		sub.PaymentDate = *upd.PaymentDate
	}
	if upd.Amount != nil {
		sub.Amount = *upd.Amount
	}
	if upd.Category != nil {
		sub.Category = *upd.Category
	}
	return nil
}

func (f *fakeStore) DeleteSubscription(_ context.Context, userID, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	sub, ok := f.subs[id]
	if !ok || sub.UserID != userID {
		return domain.NotFound("Subscription", id)
	}
	delete(f.subs, id)
	return nil
}

// === users ===

func (f *fakeStore) GetUser(_ context.Context, id int64) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, domain.NotFound("User", id)
	}
	cp := *u
	return &cp, nil
}

func (f *fakeStore) UpdateUser(_ context.Context, id int64, upd domain.UserUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return domain.NotFound("User", id)
	}
	if upd.Username != nil {
		for _, other := range f.users {
			if other.ID != id && other.Username == *upd.Username {
				return domain.Conflict("Username already exists", nil)
			}
		}
		u.Username = *upd.Username
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	if upd.TelegramChatID != nil {
		u.TelegramChatID = upd.TelegramChatID
	}
	return nil
}

func (f *fakeStore) DeleteUser(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return domain.NotFound("User", id)
	}
	for k, v := range f.subs {
		if v.UserID == id {
			delete(f.subs, k)
		}
	}
	for k, v := range f.payees {
		if v.UserID == id {
			delete(f.payees, k)
		}
	}
	for k, v := range f.services {
		if v.UserID == id {
			delete(f.services, k)
		}
	}
	for k, v := range f.entities {
		if v.UserID == id {
			delete(f.entities, k)
		}
	}
	delete(f.users, id)
	return nil
}
