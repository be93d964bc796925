package handlers

import (
	"context"
	"io"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// SubmissionFacade covers the public order form.
type SubmissionFacade interface {
	Catalog() *model.Catalog
	PriceSource() model.PriceSource
	SubmitOrder(ctx context.Context, sub model.Submission) (*model.Order, error)
}

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Login(ctx context.Context, password string) (*model.Session, error)
	ParseToken(token string) (*model.Session, error)
}

// AdminFacade encapsulates the operator's order management.
type AdminFacade interface {
	AdminOrders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)
	OrderStats(ctx context.Context) (model.OrderStats, error)
	UpdateOrderStatus(ctx context.Context, id, status string) error
	UpdateOrderNotes(ctx context.Context, id, notes string) error
	DeleteOrder(ctx context.Context, id string, confirmed bool) error
	ExportOrders(ctx context.Context, w io.Writer) (string, error)
}

// HealthFacade reports whether dependencies are reachable.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// OrderDeskFacade aggregates the full set of operations used across handlers.
type OrderDeskFacade interface {
	SubmissionFacade
	AuthFacade
	AdminFacade
	HealthFacade
}
