package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func gradeATiers() []PricingTier {
	return []PricingTier{
		{MinQuantity: 1, MaxQuantity: intPtr(9), PricePerUnit: 10000},
		{MinQuantity: 10, MaxQuantity: intPtr(49), PricePerUnit: 9500},
		{MinQuantity: 50, MaxQuantity: intPtr(99), PricePerUnit: 9000},
		{MinQuantity: 100, MaxQuantity: nil, PricePerUnit: 8500},
	}
}

func TestPricingTier_Matches(t *testing.T) {
	bounded := PricingTier{MinQuantity: 10, MaxQuantity: intPtr(49), PricePerUnit: 9500}
	assert.False(t, bounded.Matches(9))
	assert.True(t, bounded.Matches(10))
	assert.True(t, bounded.Matches(49))
	assert.False(t, bounded.Matches(50))

	open := PricingTier{MinQuantity: 100, MaxQuantity: nil, PricePerUnit: 8500}
	assert.False(t, open.Matches(99))
	assert.True(t, open.Matches(100))
	assert.True(t, open.Matches(100000))
}

func TestResolveUnitPrice_TierBoundaries(t *testing.T) {
	tiers := gradeATiers()

	tests := []struct {
		name     string
		quantity int
		want     int64
	}{
		{"first tier lower bound", 1, 10000},
		{"first tier upper bound", 9, 10000},
		{"second tier lower bound", 10, 9500},
		{"third tier lower bound", 50, 9000},
		{"third tier upper bound", 99, 9000},
		{"open tier lower bound", 100, 8500},
		{"open tier large quantity", 5000, 8500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveUnitPrice(tiers, 12000, tt.quantity))
		})
	}
}

func TestResolveUnitPrice_NoMatchFallsBackToBasePrice(t *testing.T) {
	tiers := []PricingTier{
		{MinQuantity: 10, MaxQuantity: intPtr(49), PricePerUnit: 9500},
	}

	assert.Equal(t, int64(12000), ResolveUnitPrice(tiers, 12000, 5))
	assert.Equal(t, int64(12000), ResolveUnitPrice(nil, 12000, 5))
}

func TestResolveUnitPrice_OverlappingTiersLowestWins(t *testing.T) {
	// Legacy data can still contain overlaps; reads must stay deterministic.
	tiers := []PricingTier{
		{MinQuantity: 1, MaxQuantity: intPtr(100), PricePerUnit: 9500},
		{MinQuantity: 50, MaxQuantity: intPtr(100), PricePerUnit: 9000},
	}

	assert.Equal(t, int64(9000), ResolveUnitPrice(tiers, 12000, 60))
	assert.Equal(t, int64(9500), ResolveUnitPrice(tiers, 12000, 10))
}

func TestProduct_UnitPriceFor(t *testing.T) {
	product := &Product{BasePrice: 12000, Tiers: gradeATiers()}

	assert.Equal(t, int64(9000), product.UnitPriceFor(50))
}

func TestValidateTiers_Valid(t *testing.T) {
	require.NoError(t, ValidateTiers(gradeATiers()))
	require.NoError(t, ValidateTiers(nil))
}

func TestValidateTiers_Errors(t *testing.T) {
	tests := []struct {
		name  string
		tiers []PricingTier
		want  error
	}{
		{
			"minimum below one",
			[]PricingTier{{MinQuantity: 0, PricePerUnit: 9000}},
			ErrTierMinQuantity,
		},
		{
			"inverted range",
			[]PricingTier{{MinQuantity: 10, MaxQuantity: intPtr(5), PricePerUnit: 9000}},
			ErrTierRangeInverted,
		},
		{
			"negative price",
			[]PricingTier{{MinQuantity: 1, PricePerUnit: -1}},
			ErrTierPriceNegative,
		},
		{
			"overlapping ranges",
			[]PricingTier{
				{MinQuantity: 1, MaxQuantity: intPtr(10), PricePerUnit: 10000},
				{MinQuantity: 10, MaxQuantity: intPtr(20), PricePerUnit: 9500},
			},
			ErrTierOverlap,
		},
		{
			"open tier followed by another",
			[]PricingTier{
				{MinQuantity: 1, MaxQuantity: nil, PricePerUnit: 10000},
				{MinQuantity: 100, MaxQuantity: nil, PricePerUnit: 8500},
			},
			ErrTierOverlap,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateTiers(tt.tiers), tt.want)
		})
	}
}

func TestSortTiers(t *testing.T) {
	tiers := []PricingTier{
		{MinQuantity: 100, PricePerUnit: 8500},
		{MinQuantity: 1, MaxQuantity: intPtr(9), PricePerUnit: 10000},
		{MinQuantity: 10, MaxQuantity: intPtr(99), PricePerUnit: 9500},
	}

	SortTiers(tiers)

	assert.Equal(t, 1, tiers[0].MinQuantity)
	assert.Equal(t, 10, tiers[1].MinQuantity)
	assert.Equal(t, 100, tiers[2].MinQuantity)
}
