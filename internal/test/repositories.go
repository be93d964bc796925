package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// OrderRepositoryStub keeps orders in memory, newest first, with per-method overrides.
type OrderRepositoryStub struct {
	InsertFn func(context.Context, model.Order) error
	ListFn   func(context.Context) ([]model.Order, error)
	UpdateFn func(context.Context, string, model.OrderPatch) error
	DeleteFn func(context.Context, string) error

	Orders      []model.Order
	UpdateCalls []OrderUpdateCall
	DeleteCalls []string
	ListCalls   int

	mu sync.Mutex
}

// OrderUpdateCall stores information about Update invocations.
type OrderUpdateCall struct {
	ID    string
	Patch model.OrderPatch
}

// Insert prepends order unless overridden.
func (s *OrderRepositoryStub) Insert(ctx context.Context, order model.Order) error {
	if s.InsertFn != nil {
		return s.InsertFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Orders = append([]model.Order{order}, s.Orders...)
	return nil
}

// ListByCreatedDesc returns a copy of stored orders.
func (s *OrderRepositoryStub) ListByCreatedDesc(ctx context.Context) ([]model.Order, error) {
	s.mu.Lock()
	s.ListCalls++
	s.mu.Unlock()
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, len(s.Orders))
	copy(out, s.Orders)
	return out, nil
}

// Update records the call and patches the stored order.
func (s *OrderRepositoryStub) Update(ctx context.Context, id string, patch model.OrderPatch) error {
	s.mu.Lock()
	s.UpdateCalls = append(s.UpdateCalls, OrderUpdateCall{ID: id, Patch: patch})
	s.mu.Unlock()
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, patch)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			s.Orders[i] = patch.Apply(s.Orders[i])
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// Delete records the call and removes the stored order.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	s.DeleteCalls = append(s.DeleteCalls, id)
	s.mu.Unlock()
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			s.Orders = append(s.Orders[:i], s.Orders[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// Stored returns a copy of the current contents.
func (s *OrderRepositoryStub) Stored() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, len(s.Orders))
	copy(out, s.Orders)
	return out
}

// CredentialRepositoryStub returns a fixed credential.
type CredentialRepositoryStub struct {
	Credential *model.Credential
	Err        error
}

// OperatorCredential returns the configured credential or error.
func (s CredentialRepositoryStub) OperatorCredential(ctx context.Context) (*model.Credential, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Credential == nil {
		return nil, domainErrors.ErrNotFound
	}
	c := *s.Credential
	return &c, nil
}
