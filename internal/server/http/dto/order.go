package dto

import (
	"github.com/shopspring/decimal"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// ContactRequest identifies the customer placing an order.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

// ProjectRequest describes the requested work.
type ProjectRequest struct {
	Title        string `json:"title"`
	Requirements string `json:"requirements"`
	Timeline     string `json:"timeline"`
}

// SubmitOrderRequest is the order form payload.
type SubmitOrderRequest struct {
	Service       string           `json:"service"`
	Package       string           `json:"package"`
	Contact       ContactRequest   `json:"contact"`
	Project       ProjectRequest   `json:"project"`
	PaymentMethod string           `json:"paymentMethod"`
	Price         *decimal.Decimal `json:"price,omitempty"`
}

// ToSubmission converts the payload into a domain submission.
func (r SubmitOrderRequest) ToSubmission() model.Submission {
	return model.Submission{
		Service: r.Service,
		Package: r.Package,
		Contact: model.ContactDetails{
			Name:    r.Contact.Name,
			Email:   r.Contact.Email,
			Phone:   r.Contact.Phone,
			Company: r.Contact.Company,
		},
		Project: model.ProjectDetails{
			Title:        r.Project.Title,
			Requirements: r.Project.Requirements,
			Timeline:     r.Project.Timeline,
		},
		PaymentMethod: r.PaymentMethod,
		Price:         r.Price,
	}
}

// UpdateStatusRequest moves an order to another status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateNotesRequest replaces operator notes. A missing field is rejected,
// an empty string clears the notes.
type UpdateNotesRequest struct {
	Notes *string `json:"notes"`
}

// CatalogResponse lists what the order form offers.
type CatalogResponse struct {
	PriceSource    model.PriceSource `json:"priceSource"`
	Services       []model.Service   `json:"services"`
	Timelines      []string          `json:"timelines"`
	PaymentMethods []string          `json:"paymentMethods"`
}
