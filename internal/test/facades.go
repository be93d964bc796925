package test

import (
	"context"
	"io"
	"time"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// SubmissionFacadeStub implements the public order form operations.
type SubmissionFacadeStub struct {
	CatalogVal     *model.Catalog
	PriceSourceVal model.PriceSource
	SubmitFn       func(context.Context, model.Submission) (*model.Order, error)
}

// Catalog returns the configured catalog or the default one.
func (s SubmissionFacadeStub) Catalog() *model.Catalog {
	if s.CatalogVal != nil {
		return s.CatalogVal
	}
	return model.DefaultCatalog()
}

// PriceSource defaults to catalog pricing.
func (s SubmissionFacadeStub) PriceSource() model.PriceSource {
	if s.PriceSourceVal != "" {
		return s.PriceSourceVal
	}
	return model.PriceSourceCatalog
}

// SubmitOrder stores nothing and echoes a new order unless overridden.
func (s SubmissionFacadeStub) SubmitOrder(ctx context.Context, sub model.Submission) (*model.Order, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, sub)
	}
	return &model.Order{
		ID:            "ORD-1-ABCDEF123",
		Service:       model.ServiceCategory(sub.Service),
		Package:       sub.Package,
		Name:          sub.Contact.Name,
		Email:         sub.Contact.Email,
		PaymentMethod: model.PaymentMethod(sub.PaymentMethod),
		Status:        model.OrderStatusNew,
		CreatedAt:     time.Unix(0, 0).UTC(),
	}, nil
}

// AuthFacadeStub implements the operator authentication facade.
type AuthFacadeStub struct {
	LoginFn func(context.Context, string) (*model.Session, error)
	ParseFn func(string) (*model.Session, error)
}

// Login opens a one hour admin session unless overridden.
func (s AuthFacadeStub) Login(ctx context.Context, password string) (*model.Session, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, password)
	}
	return AdminSession("session-token"), nil
}

// ParseToken accepts every token as admin unless overridden.
func (s AuthFacadeStub) ParseToken(token string) (*model.Session, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return AdminSession(token), nil
}

// AdminFacadeStub implements operator order management.
type AdminFacadeStub struct {
	OrdersFn       func(context.Context, model.OrderFilter) ([]model.Order, error)
	StatsFn        func(context.Context) (model.OrderStats, error)
	UpdateStatusFn func(context.Context, string, string) error
	UpdateNotesFn  func(context.Context, string, string) error
	DeleteFn       func(context.Context, string, bool) error
	ExportFn       func(context.Context, io.Writer) (string, error)
}

func (s AdminFacadeStub) AdminOrders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, filter)
	}
	return []model.Order{}, nil
}

func (s AdminFacadeStub) OrderStats(ctx context.Context) (model.OrderStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return model.OrderStats{Services: []model.ServiceCategory{}}, nil
}

func (s AdminFacadeStub) UpdateOrderStatus(ctx context.Context, id, status string) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	return nil
}

func (s AdminFacadeStub) UpdateOrderNotes(ctx context.Context, id, notes string) error {
	if s.UpdateNotesFn != nil {
		return s.UpdateNotesFn(ctx, id, notes)
	}
	return nil
}

func (s AdminFacadeStub) DeleteOrder(ctx context.Context, id string, confirmed bool) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id, confirmed)
	}
	return nil
}

// ExportOrders writes an empty array unless overridden.
func (s AdminFacadeStub) ExportOrders(ctx context.Context, w io.Writer) (string, error) {
	if s.ExportFn != nil {
		return s.ExportFn(ctx, w)
	}
	if _, err := io.WriteString(w, "[]\n"); err != nil {
		return "", err
	}
	return "orders_1970-01-01.json", nil
}

// HealthFacadeStub reports the configured health result.
type HealthFacadeStub struct {
	Err error
}

func (s HealthFacadeStub) HealthCheck(context.Context) error {
	return s.Err
}

// OrderDeskFacadeStub composes all facade stubs.
type OrderDeskFacadeStub struct {
	SubmissionFacadeStub
	AuthFacadeStub
	AdminFacadeStub
	HealthFacadeStub
}
