package postgres

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

const orderColumns = `order_id, service, package, project_title, requirements, timeline,
name, email, phone, company, payment_method, price::text, status, notes, created_at`

// orderRow mirrors one orders row before it is checked against the domain model.
type orderRow struct {
	ID            string
	Service       string
	Package       string
	ProjectTitle  string
	Requirements  string
	Timeline      string
	Name          string
	Email         string
	Phone         string
	Company       string
	PaymentMethod string
	Price         string
	Status        string
	Notes         string
	CreatedAt     time.Time
}

func (r *orderRow) scanTargets() []any {
	return []any{
		&r.ID, &r.Service, &r.Package, &r.ProjectTitle, &r.Requirements, &r.Timeline,
		&r.Name, &r.Email, &r.Phone, &r.Company, &r.PaymentMethod, &r.Price, &r.Status, &r.Notes, &r.CreatedAt,
	}
}

// decode converts the row into an Order, rejecting anything outside the schema.
func (r *orderRow) decode() (model.Order, error) {
	if strings.TrimSpace(r.ID) == "" {
		return model.Order{}, fmt.Errorf("empty order id")
	}
	service, err := model.ParseServiceCategory(r.Service)
	if err != nil {
		return model.Order{}, fmt.Errorf("order %s: %w", r.ID, err)
	}
	status, err := model.ParseOrderStatus(r.Status)
	if err != nil {
		return model.Order{}, fmt.Errorf("order %s: %w", r.ID, err)
	}
	payment := model.PaymentMethod(r.PaymentMethod)
	if !payment.Valid() {
		return model.Order{}, fmt.Errorf("order %s: unknown payment method %q", r.ID, r.PaymentMethod)
	}
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return model.Order{}, fmt.Errorf("order %s: price %q: %w", r.ID, r.Price, err)
	}
	if price.IsNegative() {
		return model.Order{}, fmt.Errorf("order %s: negative price %s", r.ID, price)
	}
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Email) == "" {
		return model.Order{}, fmt.Errorf("order %s: missing contact name or email", r.ID)
	}
	if r.CreatedAt.IsZero() {
		return model.Order{}, fmt.Errorf("order %s: missing creation time", r.ID)
	}

	return model.Order{
		ID:            r.ID,
		Service:       service,
		Package:       r.Package,
		ProjectTitle:  r.ProjectTitle,
		Requirements:  r.Requirements,
		Timeline:      r.Timeline,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Company:       r.Company,
		PaymentMethod: payment,
		Price:         price,
		Status:        status,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt.UTC(),
	}, nil
}
