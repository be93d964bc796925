package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus describes the operator-driven lifecycle of an order.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusInProgress OrderStatus = "in-progress"
	OrderStatusCompleted  OrderStatus = "completed"
)

// OrderStatuses lists every valid status in display order.
var OrderStatuses = []OrderStatus{OrderStatusNew, OrderStatusInProgress, OrderStatusCompleted}

// Valid reports whether the status is one of the known values.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusInProgress, OrderStatusCompleted:
		return true
	}
	return false
}

// ParseOrderStatus converts raw input into a known status.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("unknown order status %q", raw)
	}
	return s, nil
}

// PaymentMethod is recorded with the order but never charged.
type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodPayPal PaymentMethod = "paypal"
	PaymentMethodBank   PaymentMethod = "bank"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentMethodCard, PaymentMethodPayPal, PaymentMethodBank:
		return true
	}
	return false
}

// Timeline buckets offered by the order form.
const (
	TimelineOneWeek    = "1-week"
	TimelineTwoWeeks   = "2-weeks"
	TimelineOneMonth   = "1-month"
	TimelineTwoMonths  = "2-months"
	TimelineFlexible   = "flexible"
	orderIDPrefix      = "ORD-"
	orderIDSuffixChars = 9
)

// Timelines lists the accepted timeline buckets.
var Timelines = []string{TimelineOneWeek, TimelineTwoWeeks, TimelineOneMonth, TimelineTwoMonths, TimelineFlexible}

// ValidTimeline reports whether value is a known bucket.
func ValidTimeline(value string) bool {
	for _, t := range Timelines {
		if t == value {
			return true
		}
	}
	return false
}

// Order is a customer's request for design work. The JSON shape is the
// canonical export format.
type Order struct {
	ID            string          `json:"id"`
	Service       ServiceCategory `json:"service"`
	Package       string          `json:"package"`
	ProjectTitle  string          `json:"projectTitle"`
	Requirements  string          `json:"requirements"`
	Timeline      string          `json:"timeline"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Company       string          `json:"company"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Price         decimal.Decimal `json:"price"`
	Status        OrderStatus     `json:"status"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// OrderPatch carries the operator-editable fields; nil means unchanged.
type OrderPatch struct {
	Status *OrderStatus
	Notes  *string
}

// Empty reports whether the patch changes nothing.
func (p OrderPatch) Empty() bool {
	return p.Status == nil && p.Notes == nil
}

// Apply returns a copy of o with the patch applied.
func (p OrderPatch) Apply(o Order) Order {
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.Notes != nil {
		o.Notes = *p.Notes
	}
	return o
}

// NewOrderID builds ORD-<unix millis>-<9 uppercase random chars>.
func NewOrderID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("%s%d-%s", orderIDPrefix, now.UnixMilli(), suffix[:orderIDSuffixChars])
}

// ContactDetails identifies the customer.
type ContactDetails struct {
	Name    string
	Email   string
	Phone   string
	Company string
}

// ProjectDetails describes the requested work.
type ProjectDetails struct {
	Title        string
	Requirements string
	Timeline     string
}

// Submission is the raw order form as entered by a customer.
type Submission struct {
	Service       string
	Package       string
	Contact       ContactDetails
	Project       ProjectDetails
	PaymentMethod string
	// Price is honoured only when prices are entered manually.
	Price *decimal.Decimal
}

// OrderFilter narrows the admin listing. Empty values and "all" match everything.
type OrderFilter struct {
	Search  string
	Status  string
	Service string
}

// FilterAll is the sentinel that disables a status or service filter.
const FilterAll = "all"
