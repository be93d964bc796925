package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

// OrderNotifier is told about every stored order. It must not block.
type OrderNotifier interface {
	OrderCreated(ctx context.Context, order model.Order) bool
}

// SubmissionUseCase turns a customer's order form into a stored order.
type SubmissionUseCase struct {
	orders      repository.OrderRepository
	catalog     *model.Catalog
	priceSource model.PriceSource
	notifier    OrderNotifier
	logger      *slog.Logger
	now         func() time.Time
}

// NewSubmissionUseCase constructs SubmissionUseCase.
func NewSubmissionUseCase(orders repository.OrderRepository, catalog *model.Catalog, priceSource model.PriceSource, notifier OrderNotifier, logger *slog.Logger) *SubmissionUseCase {
	if !priceSource.Valid() {
		priceSource = model.PriceSourceCatalog
	}
	return &SubmissionUseCase{
		orders:      orders,
		catalog:     catalog,
		priceSource: priceSource,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

// Catalog returns the offering used to price orders.
func (u *SubmissionUseCase) Catalog() *model.Catalog {
	return u.catalog
}

// PriceSource reports how prices are determined.
func (u *SubmissionUseCase) PriceSource() model.PriceSource {
	return u.priceSource
}

// Submit validates, prices and stores a new order, then notifies the operator.
// Nothing is stored when validation fails.
func (u *SubmissionUseCase) Submit(ctx context.Context, sub model.Submission) (*model.Order, error) {
	order, err := buildOrder(sub, u.catalog, u.priceSource)
	if err != nil {
		return nil, err
	}

	now := u.now().UTC().Truncate(time.Microsecond)
	order.ID = model.NewOrderID(now)
	order.CreatedAt = now
	order.Status = model.OrderStatusNew

	if err := u.orders.Insert(ctx, order); err != nil {
		if !errors.Is(err, domainErrors.ErrPersistence) {
			err = domainErrors.NewPersistenceError("insert order", err)
		}
		u.logger.ErrorContext(ctx, "store order failed", slog.String("order", order.ID), slog.String("error", err.Error()))
		return nil, err
	}

	u.logger.InfoContext(ctx, "order submitted",
		slog.String("order", order.ID),
		slog.String("service", string(order.Service)),
		slog.String("package", order.Package))

	if u.notifier != nil {
		u.notifier.OrderCreated(ctx, order)
	}
	return &order, nil
}
