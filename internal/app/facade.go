package app

import (
	"context"
	"io"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/usecase"
)

// HealthChecker reports whether the record store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// OrderDeskFacade exposes the use cases to the HTTP layer.
type OrderDeskFacade struct {
	submissions *usecase.SubmissionUseCase
	admin       *usecase.AdminUseCase
	auth        *usecase.AuthUseCase
	health      HealthChecker
}

func NewOrderDeskFacade(submissions *usecase.SubmissionUseCase, admin *usecase.AdminUseCase, auth *usecase.AuthUseCase, health HealthChecker) *OrderDeskFacade {
	return &OrderDeskFacade{submissions: submissions, admin: admin, auth: auth, health: health}
}

func (f *OrderDeskFacade) Catalog() *model.Catalog {
	return f.submissions.Catalog()
}

func (f *OrderDeskFacade) PriceSource() model.PriceSource {
	return f.submissions.PriceSource()
}

func (f *OrderDeskFacade) SubmitOrder(ctx context.Context, sub model.Submission) (*model.Order, error) {
	return f.submissions.Submit(ctx, sub)
}

func (f *OrderDeskFacade) Login(ctx context.Context, password string) (*model.Session, error) {
	return f.auth.Login(ctx, password)
}

func (f *OrderDeskFacade) ParseToken(token string) (*model.Session, error) {
	return f.auth.ParseToken(token)
}

func (f *OrderDeskFacade) AdminOrders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	return f.admin.Search(ctx, filter)
}

func (f *OrderDeskFacade) OrderStats(ctx context.Context) (model.OrderStats, error) {
	return f.admin.Stats(ctx)
}

func (f *OrderDeskFacade) UpdateOrderStatus(ctx context.Context, id, status string) error {
	return f.admin.UpdateStatus(ctx, id, status)
}

func (f *OrderDeskFacade) UpdateOrderNotes(ctx context.Context, id, notes string) error {
	return f.admin.UpdateNotes(ctx, id, notes)
}

func (f *OrderDeskFacade) DeleteOrder(ctx context.Context, id string, confirmed bool) error {
	return f.admin.Delete(ctx, id, confirmed)
}

func (f *OrderDeskFacade) ExportOrders(ctx context.Context, w io.Writer) (string, error) {
	return f.admin.Export(ctx, w)
}

func (f *OrderDeskFacade) HealthCheck(ctx context.Context) error {
	if f.health == nil {
		return nil
	}
	return f.health.HealthCheck(ctx)
}
