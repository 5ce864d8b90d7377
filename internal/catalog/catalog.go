package catalog

import (
	"errors"
	"fmt"

	"voltpad-checkout/internal/config"
)

var ErrPlanNotFound = errors.New("plan not found in catalog")

// Plan is a purchasable product tier. The set is closed: request
// validation only admits these values.
type Plan string

const (
	PlanPremium    Plan = "premium"
	PlanPro        Plan = "pro"
	PlanEnterprise Plan = "enterprise"
)

// DefaultPlan is applied when a checkout request omits the plan field.
const DefaultPlan = PlanPremium

func AllPlans() []Plan {
	return []Plan{PlanPremium, PlanPro, PlanEnterprise}
}

// Product is the fixed record a plan resolves to. Price is in minor
// currency units.
type Product struct {
	Plan        Plan
	Name        string
	Description string
	PriceCents  int64
	Currency    string
}

type Catalog struct {
	products map[Plan]Product
}

var defaults = map[Plan]Product{
	PlanPremium: {
		Plan:        PlanPremium,
		Name:        "Voltpad Premium",
		Description: "Lifetime Voltpad Premium license for one device",
		PriceCents:  4900,
		Currency:    "USD",
	},
	PlanPro: {
		Plan:        PlanPro,
		Name:        "Voltpad Pro",
		Description: "Lifetime Voltpad Pro license for up to five devices",
		PriceCents:  9900,
		Currency:    "USD",
	},
	PlanEnterprise: {
		Plan:        PlanEnterprise,
		Name:        "Voltpad Enterprise",
		Description: "Voltpad Enterprise site license with priority support",
		PriceCents:  29900,
		Currency:    "USD",
	},
}

// Load builds the catalog from configuration, falling back to the
// built-in defaults per field. The result must be total over the plan
// set: every plan resolves to a product with a positive price, or Load
// fails and the process should not start.
func Load(cfg config.Catalog) (*Catalog, error) {
	entries := map[Plan]config.CatalogEntry{
		PlanPremium:    cfg.Premium,
		PlanPro:        cfg.Pro,
		PlanEnterprise: cfg.Enterprise,
	}

	products := make(map[Plan]Product, len(entries))
	for _, plan := range AllPlans() {
		product := defaults[plan]
		entry := entries[plan]

		if entry.Name != "" {
			product.Name = entry.Name
		}
		if entry.Description != "" {
			product.Description = entry.Description
		}
		if entry.PriceCents != 0 {
			product.PriceCents = entry.PriceCents
		}
		if entry.Currency != "" {
			product.Currency = entry.Currency
		}

		if product.PriceCents <= 0 {
			return nil, fmt.Errorf("catalog entry %q: price must be positive, got %d", plan, product.PriceCents)
		}
		if len(product.Currency) != 3 {
			return nil, fmt.Errorf("catalog entry %q: currency %q is not an ISO 4217 code", plan, product.Currency)
		}

		products[plan] = product
	}

	return &Catalog{products: products}, nil
}

// Resolve maps a plan to its product. Unknown plans report
// ErrPlanNotFound; validation upstream makes that unreachable for the
// enumerated set, but a retired or misconfigured plan must degrade to a
// client error, not a panic.
func (c *Catalog) Resolve(plan Plan) (Product, error) {
	product, ok := c.products[plan]
	if !ok {
		return Product{}, fmt.Errorf("resolve plan %q: %w", plan, ErrPlanNotFound)
	}
	return product, nil
}
