package usecase

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
)

var validate = validator.New()

// Prices are stored as NUMERIC(12, 2).
const priceScale = 2

var maxPrice = decimal.RequireFromString("9999999999.99")

// ValidEmail checks address syntax.
func ValidEmail(address string) bool {
	return validate.Var(address, "required,email") == nil
}

// buildOrder validates a submission and resolves its price. Identity, status
// and timestamps are left for the caller.
func buildOrder(sub model.Submission, catalog *model.Catalog, source model.PriceSource) (model.Order, error) {
	verr := &domainErrors.ValidationError{}
	o := model.Order{
		Package:      strings.TrimSpace(sub.Package),
		ProjectTitle: strings.TrimSpace(sub.Project.Title),
		Requirements: strings.TrimSpace(sub.Project.Requirements),
		Timeline:     strings.TrimSpace(sub.Project.Timeline),
		Name:         strings.TrimSpace(sub.Contact.Name),
		Email:        strings.TrimSpace(sub.Contact.Email),
		Phone:        strings.TrimSpace(sub.Contact.Phone),
		Company:      strings.TrimSpace(sub.Contact.Company),
	}

	service, err := model.ParseServiceCategory(sub.Service)
	if err != nil {
		verr.Add("service", "must be one of graphic-design, social-media, custom")
	}
	o.Service = service

	if o.Name == "" {
		verr.Add("name", "is required")
	}
	switch {
	case o.Email == "":
		verr.Add("email", "is required")
	case !ValidEmail(o.Email):
		verr.Add("email", "must be a valid email address")
	}

	o.PaymentMethod = model.PaymentMethod(strings.ToLower(strings.TrimSpace(sub.PaymentMethod)))
	if !o.PaymentMethod.Valid() {
		verr.Add("paymentMethod", "must be one of card, paypal, bank")
	}

	if o.Package == "" {
		verr.Add("package", "is required")
	}

	switch source {
	case model.PriceSourceManual:
		switch {
		case sub.Price == nil:
			verr.Add("price", "is required")
		case sub.Price.IsNegative():
			verr.Add("price", "must not be negative")
		case !sub.Price.Equal(sub.Price.Truncate(priceScale)):
			verr.Add("price", "must have at most two decimal places")
		case sub.Price.GreaterThan(maxPrice):
			verr.Add("price", "must not exceed "+maxPrice.StringFixed(priceScale))
		default:
			o.Price = *sub.Price
		}
	default:
		o.Package = strings.ToLower(o.Package)
		if o.Package != "" && service != "" {
			pkg, ok := catalog.Lookup(service, o.Package)
			if !ok {
				verr.Add("package", "is not offered for this service")
			}
			o.Price = pkg.Price
		}
		if o.Timeline != "" && !model.ValidTimeline(o.Timeline) {
			verr.Add("timeline", "must be one of "+strings.Join(model.Timelines, ", "))
		}
	}

	if !verr.Empty() {
		return model.Order{}, verr
	}
	return o, nil
}
