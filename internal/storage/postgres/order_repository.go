package postgres

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
)

type orderRepository struct {
	storage *Storage
}

func (r *orderRepository) Insert(ctx context.Context, o model.Order) error {
	const query = `INSERT INTO orders (order_id, service, package, project_title, requirements, timeline,
                   name, email, phone, company, payment_method, price, status, notes, created_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.storage.pool.Exec(ctx, query,
		o.ID, string(o.Service), o.Package, o.ProjectTitle, o.Requirements, o.Timeline,
		o.Name, o.Email, o.Phone, o.Company, string(o.PaymentMethod), o.Price.String(),
		string(o.Status), o.Notes, o.CreatedAt,
	)
	return domainErrors.NewPersistenceError("insert order", err)
}

func (r *orderRepository) ListByCreatedDesc(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, domainErrors.NewPersistenceError("list orders", err)
	}
	defer rows.Close()

	result := make([]model.Order, 0)
	for rows.Next() {
		var row orderRow
		if err := rows.Scan(row.scanTargets()...); err != nil {
			return nil, domainErrors.NewPersistenceError("scan order", err)
		}
		order, err := row.decode()
		if err != nil {
			return nil, domainErrors.NewPersistenceError("decode order", err)
		}
		result = append(result, order)
	}
	if err := rows.Err(); err != nil {
		return nil, domainErrors.NewPersistenceError("list orders", err)
	}
	return result, nil
}

func (r *orderRepository) Update(ctx context.Context, id string, patch model.OrderPatch) error {
	if patch.Empty() {
		return domainErrors.NewValidationError("patch", "no fields to update")
	}

	var (
		sets []string
		args []any
	)
	if patch.Status != nil {
		args = append(args, string(*patch.Status))
		sets = append(sets, fmt.Sprintf("status=$%d", len(args)))
	}
	if patch.Notes != nil {
		args = append(args, *patch.Notes)
		sets = append(sets, fmt.Sprintf("notes=$%d", len(args)))
	}
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE orders SET %s WHERE order_id=$%d`, strings.Join(sets, ", "), len(args))

	tag, err := r.storage.pool.Exec(ctx, query, args...)
	if err != nil {
		return domainErrors.NewPersistenceError("update order", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM orders WHERE order_id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return domainErrors.NewPersistenceError("delete order", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
