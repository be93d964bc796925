package repository

import (
	"context"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
// Update and Delete return ErrNotFound when no row matches the id.
type OrderRepository interface {
	Insert(ctx context.Context, order model.Order) error
	ListByCreatedDesc(ctx context.Context) ([]model.Order, error)
	Update(ctx context.Context, id string, patch model.OrderPatch) error
	Delete(ctx context.Context, id string) error
}
