// Package entity contains the core business objects of the project.
package entity

import (
	"sort"
	"time"

	"glovia/internal/errors"

	"github.com/google/uuid"
)

// Validation errors for pricing tier administration.
var (
	// ErrTierMinQuantity is returned when a tier's minimum quantity is below one.
	ErrTierMinQuantity = errors.New("tier minimum quantity must be at least 1")
	// ErrTierRangeInverted is returned when a tier's maximum quantity is below its minimum.
	ErrTierRangeInverted = errors.New("tier maximum quantity must not be below its minimum")
	// ErrTierPriceNegative is returned when a tier's price per unit is negative.
	ErrTierPriceNegative = errors.New("tier price per unit must not be negative")
	// ErrTierOverlap is returned when two tiers cover overlapping quantity ranges.
	ErrTierOverlap = errors.New("tier quantity ranges must not overlap")
)

// Brand represents a glove manufacturer carried in the catalog.
type Brand struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// Category is a catalog grouping; a product can belong to several.
type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// PricingTier is a quantity price break for a single product.
// MaxQuantity is nil for an open-ended tier. All amounts are in
// minor currency units (IDR).
type PricingTier struct {
	ID           uuid.UUID `json:"id"`
	ProductID    uuid.UUID `json:"product_id"`
	MinQuantity  int       `json:"min_quantity"`
	MaxQuantity  *int      `json:"max_quantity,omitempty"`
	PricePerUnit int64     `json:"price_per_unit"`
}

// Matches reports whether the given quantity falls inside the tier's range.
func (t PricingTier) Matches(quantity int) bool {
	if quantity < t.MinQuantity {
		return false
	}

	return t.MaxQuantity == nil || quantity <= *t.MaxQuantity
}

// Product represents a sellable catalog item.
type Product struct {
	ID          uuid.UUID     `json:"id"`
	SKU         string        `json:"sku"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	BasePrice   int64         `json:"base_price"` // Minor currency units; tiers may undercut it.
	Stock       int           `json:"stock"`
	IsActive    bool          `json:"is_active"`
	IsFeatured  bool          `json:"is_featured"`
	BrandID     uuid.UUID     `json:"brand_id"`
	Brand       *Brand        `json:"brand,omitempty"`
	Categories  []Category    `json:"categories,omitempty"`
	Tiers       []PricingTier `json:"tiers,omitempty"` // Sorted by MinQuantity ascending.
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// UnitPriceFor resolves the unit price the product charges at the given quantity.
func (p *Product) UnitPriceFor(quantity int) int64 {
	return ResolveUnitPrice(p.Tiers, p.BasePrice, quantity)
}

// ResolveUnitPrice picks the unit price for a quantity from a list of price breaks.
// Every tier whose range contains the quantity is eligible; among eligible tiers
// the lowest price per unit wins. With no eligible tier the base price applies.
func ResolveUnitPrice(tiers []PricingTier, basePrice int64, quantity int) int64 {
	price := basePrice
	matched := false

	for _, tier := range tiers {
		if !tier.Matches(quantity) {
			continue
		}
		if !matched || tier.PricePerUnit < price {
			price = tier.PricePerUnit
			matched = true
		}
	}

	return price
}

// ValidateTiers checks a replacement tier list before it is persisted:
// minimums start at 1, ranges are not inverted, prices are not negative,
// and no two ranges overlap. The slice is expected sorted by MinQuantity
// ascending; SortTiers can be applied first.
func ValidateTiers(tiers []PricingTier) error {
	for i, tier := range tiers {
		if tier.MinQuantity < 1 {
			return ErrTierMinQuantity
		}
		if tier.MaxQuantity != nil && *tier.MaxQuantity < tier.MinQuantity {
			return ErrTierRangeInverted
		}
		if tier.PricePerUnit < 0 {
			return ErrTierPriceNegative
		}
		if i == 0 {
			continue
		}

		prev := tiers[i-1]
		// An open-ended earlier tier swallows everything after it.
		if prev.MaxQuantity == nil || tier.MinQuantity <= *prev.MaxQuantity {
			return ErrTierOverlap
		}
	}

	return nil
}

// SortTiers orders tiers by MinQuantity ascending, in place.
func SortTiers(tiers []PricingTier) {
	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].MinQuantity < tiers[j].MinQuantity
	})
}
