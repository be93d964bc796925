package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ServiceCategory is the key of a service offered by the studio.
type ServiceCategory string

const (
	ServiceGraphicDesign ServiceCategory = "graphic-design"
	ServiceSocialMedia   ServiceCategory = "social-media"
	ServiceCustom        ServiceCategory = "custom"
)

// ParseServiceCategory matches raw input case-insensitively against known keys.
func ParseServiceCategory(raw string) (ServiceCategory, error) {
	s := ServiceCategory(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case ServiceGraphicDesign, ServiceSocialMedia, ServiceCustom:
		return s, nil
	}
	return "", fmt.Errorf("unknown service %q", raw)
}

// PriceSource selects where an order's price comes from.
type PriceSource string

const (
	PriceSourceCatalog PriceSource = "catalog"
	PriceSourceManual  PriceSource = "manual"
)

func (p PriceSource) Valid() bool {
	return p == PriceSourceCatalog || p == PriceSourceManual
}

// Package is a priced tier of a service.
type Package struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Features []string        `json:"features"`
}

// Service groups the packages of one category.
type Service struct {
	Category ServiceCategory `json:"id"`
	Title    string          `json:"title"`
	Packages []Package       `json:"packages"`
}

// Catalog is the fixed offering shown on the order form.
type Catalog struct {
	Services []Service
}

// Lookup resolves a package of the given service.
func (c *Catalog) Lookup(service ServiceCategory, packageID string) (Package, bool) {
	for _, s := range c.Services {
		if s.Category != service {
			continue
		}
		for _, p := range s.Packages {
			if p.ID == packageID {
				return p, true
			}
		}
	}
	return Package{}, false
}

// DefaultCatalog returns the studio's standard price list. The custom service
// is quoted after review and carries a single zero-priced package.
func DefaultCatalog() *Catalog {
	return &Catalog{Services: []Service{
		{
			Category: ServiceGraphicDesign,
			Title:    "Graphic Design",
			Packages: []Package{
				{ID: "basic", Name: "Basic Package", Price: decimal.NewFromInt(150), Features: []string{
					"Logo Design", "3 Concepts", "2 Revisions", "High-res Files",
				}},
				{ID: "standard", Name: "Standard Package", Price: decimal.NewFromInt(300), Features: []string{
					"Logo + Brand Identity", "5 Concepts", "4 Revisions", "Brand Guidelines", "Social Media Kit",
				}},
				{ID: "premium", Name: "Premium Package", Price: decimal.NewFromInt(500), Features: []string{
					"Complete Brand Package", "Unlimited Concepts", "Unlimited Revisions", "Print Materials", "Web Assets", "3 Months Support",
				}},
			},
		},
		{
			Category: ServiceSocialMedia,
			Title:    "Social Media Marketing",
			Packages: []Package{
				{ID: "basic", Name: "Basic Package", Price: decimal.NewFromInt(200), Features: []string{
					"5 Posts/Week", "Content Creation", "Basic Analytics", "1 Platform",
				}},
				{ID: "standard", Name: "Standard Package", Price: decimal.NewFromInt(400), Features: []string{
					"10 Posts/Week", "Content + Stories", "Advanced Analytics", "2 Platforms", "Community Management",
				}},
				{ID: "premium", Name: "Premium Package", Price: decimal.NewFromInt(700), Features: []string{
					"15 Posts/Week", "Full Content Suite", "Detailed Reports", "3 Platforms", "Ad Campaign Management", "Monthly Strategy Calls",
				}},
			},
		},
		{
			Category: ServiceCustom,
			Title:    "Custom / Other",
			Packages: []Package{
				{ID: "custom", Name: "Custom", Price: decimal.Zero, Features: []string{
					"Scope agreed after review", "Quote sent by email",
				}},
			},
		},
	}}
}
