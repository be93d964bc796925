package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

// AdminUseCase keeps the operator's in-memory order listing in step with the store.
// Mutations reach the store first; the listing is patched only after success.
type AdminUseCase struct {
	orders repository.OrderRepository
	logger *slog.Logger
	now    func() time.Time

	mu      sync.RWMutex
	listing []model.Order
	loaded  bool
	// generation counts mutations applied to listing.
	generation uint64
}

// maxListAttempts bounds refetches when mutations land during a load.
const maxListAttempts = 3

// NewAdminUseCase constructs AdminUseCase.
func NewAdminUseCase(orders repository.OrderRepository, logger *slog.Logger) *AdminUseCase {
	return &AdminUseCase{orders: orders, logger: logger, now: time.Now}
}

// List reloads every order, newest first. On failure the listing is emptied.
// A load that overlaps a successful mutation is fetched again, up to
// maxListAttempts times.
func (u *AdminUseCase) List(ctx context.Context) ([]model.Order, error) {
	for attempt := 1; ; attempt++ {
		u.mu.RLock()
		started := u.generation
		u.mu.RUnlock()

		orders, err := u.orders.ListByCreatedDesc(ctx)

		u.mu.Lock()
		if err == nil && u.generation != started && attempt < maxListAttempts {
			u.mu.Unlock()
			u.logger.DebugContext(ctx, "orders changed during load, reloading", slog.Int("attempt", attempt))
			continue
		}
		result, err := u.install(ctx, orders, err)
		u.mu.Unlock()
		return result, err
	}
}

// install replaces the listing with a load result. Callers hold mu.
func (u *AdminUseCase) install(ctx context.Context, orders []model.Order, err error) ([]model.Order, error) {
	if err != nil {
		u.listing = []model.Order{}
		u.loaded = false
		if !errors.Is(err, domainErrors.ErrPersistence) {
			err = domainErrors.NewPersistenceError("list orders", err)
		}
		u.logger.ErrorContext(ctx, "load orders failed", slog.String("error", err.Error()))
		return []model.Order{}, err
	}

	if orders == nil {
		orders = []model.Order{}
	}
	u.listing = orders
	u.loaded = true
	return cloneOrders(orders), nil
}

// Search refreshes the listing and returns the filtered view.
func (u *AdminUseCase) Search(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	all, err := u.List(ctx)
	if err != nil {
		return all, err
	}
	return FilterOrders(all, filter), nil
}

// Snapshot returns the current listing, loading it once if it never was.
func (u *AdminUseCase) Snapshot(ctx context.Context) ([]model.Order, error) {
	u.mu.RLock()
	if u.loaded {
		defer u.mu.RUnlock()
		return cloneOrders(u.listing), nil
	}
	u.mu.RUnlock()
	return u.List(ctx)
}

// Stats summarises the current listing.
func (u *AdminUseCase) Stats(ctx context.Context) (model.OrderStats, error) {
	orders, err := u.Snapshot(ctx)
	if err != nil {
		return model.OrderStats{}, err
	}
	return Summarize(orders), nil
}

// UpdateStatus moves an order to a new status.
func (u *AdminUseCase) UpdateStatus(ctx context.Context, id, rawStatus string) error {
	status, err := model.ParseOrderStatus(rawStatus)
	if err != nil {
		return domainErrors.NewValidationError("status", "must be one of new, in-progress, completed")
	}
	return u.apply(ctx, id, model.OrderPatch{Status: &status})
}

// UpdateNotes replaces the operator notes of an order.
func (u *AdminUseCase) UpdateNotes(ctx context.Context, id, notes string) error {
	return u.apply(ctx, id, model.OrderPatch{Notes: &notes})
}

// Delete removes an order. The caller must pass confirmed explicitly.
func (u *AdminUseCase) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return domainErrors.ErrConfirmationRequired
	}
	if err := u.orders.Delete(ctx, id); err != nil {
		u.logMutationError(ctx, "delete order failed", id, err)
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.generation++
	for i := range u.listing {
		if u.listing[i].ID == id {
			u.listing = append(u.listing[:i:i], u.listing[i+1:]...)
			break
		}
	}
	u.logger.InfoContext(ctx, "order deleted", slog.String("order", id))
	return nil
}

func (u *AdminUseCase) apply(ctx context.Context, id string, patch model.OrderPatch) error {
	if err := u.orders.Update(ctx, id, patch); err != nil {
		u.logMutationError(ctx, "update order failed", id, err)
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.generation++
	for i := range u.listing {
		if u.listing[i].ID == id {
			u.listing[i] = patch.Apply(u.listing[i])
			break
		}
	}
	return nil
}

func (u *AdminUseCase) logMutationError(ctx context.Context, msg, id string, err error) {
	level := slog.LevelError
	if errors.Is(err, domainErrors.ErrNotFound) {
		level = slog.LevelWarn
	}
	u.logger.Log(ctx, level, msg, slog.String("order", id), slog.String("error", err.Error()))
}

func cloneOrders(orders []model.Order) []model.Order {
	out := make([]model.Order, len(orders))
	copy(out, orders)
	return out
}
