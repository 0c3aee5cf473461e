package budget

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func approvedLines() LineItems {
	return LineItems{
		{Kind: CostKindMaterial, Description: "Shingles", Quantity: dec("10"), UnitPrice: dec("100"), UnitCost: decPtr("60")},
		{Kind: CostKindLabor, Description: "Install crew", Quantity: dec("5"), UnitPrice: dec("150"), UnitCost: decPtr("90")},
	}
}

func TestRollup_WorkedExample(t *testing.T) {
	s, err := Rollup(RollupInput{
		Lines:    approvedLines(),
		Overhead: dec("50"),
	})
	require.NoError(t, err)

	assert.Equal(t, "1750.00", s.SellPrice.StringFixed(2))
	assert.Equal(t, "600.00", s.Planned.Materials.StringFixed(2))
	assert.Equal(t, "450.00", s.Planned.Labor.StringFixed(2))
	assert.Equal(t, "50.00", s.Planned.Overhead.StringFixed(2))
	assert.Equal(t, "1100.00", s.Planned.Subtotal.StringFixed(2))
	assert.Equal(t, "650.00", s.Profit.StringFixed(2))

	require.NotNil(t, s.MarginPct)
	assert.Equal(t, "37.14", s.MarginPct.StringFixed(2))

	assert.True(t, s.Actual.Materials.IsZero())
	assert.True(t, s.Actual.Labor.IsZero())
	assert.True(t, s.Actual.Misc.IsZero())
}

func TestRollup_SellOverride(t *testing.T) {
	s, err := Rollup(RollupInput{
		Lines:        approvedLines(),
		Overhead:     dec("50"),
		SellOverride: decPtr("2000"),
	})
	require.NoError(t, err)

	assert.Equal(t, "2000.00", s.SellPrice.StringFixed(2))
	assert.Equal(t, "1100.00", s.Planned.Subtotal.StringFixed(2))
	assert.Equal(t, "900.00", s.Profit.StringFixed(2))
	require.NotNil(t, s.MarginPct)
	assert.Equal(t, "45.00", s.MarginPct.StringFixed(2))
}

func TestRollup_DerivedUnitCost(t *testing.T) {
	// (250 - 10) / (1 + 0.2) = 200 per unit
	s, err := Rollup(RollupInput{
		Lines: LineItems{
			{Kind: CostKindMaterial, Quantity: dec("2"), UnitPrice: dec("250"), MarkupPercent: decPtr("0.2"), MarkupFixed: decPtr("10")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "400.00", s.Planned.Materials.StringFixed(2))
	assert.Equal(t, "500.00", s.SellPrice.StringFixed(2))
}

func TestRollup_MarkupPercentOfNegativeOne(t *testing.T) {
	s, err := Rollup(RollupInput{
		Lines: LineItems{
			{Kind: CostKindMaterial, Quantity: dec("3"), UnitPrice: dec("100"), MarkupPercent: decPtr("-1")},
		},
	})
	require.NoError(t, err)
	assert.True(t, s.Planned.Materials.IsZero())
	assert.Equal(t, "300.00", s.SellPrice.StringFixed(2))
}

func TestRollup_OtherKindExcludedFromBuckets(t *testing.T) {
	s, err := Rollup(RollupInput{
		Lines: LineItems{
			{Kind: CostKindOther, Quantity: dec("1"), UnitPrice: dec("500"), UnitCost: decPtr("400")},
		},
	})
	require.NoError(t, err)
	// The line still sells, but its cost lands in no planned bucket
	assert.Equal(t, "500.00", s.SellPrice.StringFixed(2))
	assert.True(t, s.Planned.Materials.IsZero())
	assert.True(t, s.Planned.Labor.IsZero())
	assert.True(t, s.Planned.Subtotal.IsZero())
}

func TestRollup_KindIsCaseInsensitive(t *testing.T) {
	s, err := Rollup(RollupInput{
		Lines: LineItems{
			{Kind: CostKind("MATERIAL"), Quantity: dec("1"), UnitPrice: dec("100"), UnitCost: decPtr("60")},
			{Kind: CostKind("Labor"), Quantity: dec("1"), UnitPrice: dec("100"), UnitCost: decPtr("40")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "60.00", s.Planned.Materials.StringFixed(2))
	assert.Equal(t, "40.00", s.Planned.Labor.StringFixed(2))
}

func TestRollup_RoundsPerLineBeforeSumming(t *testing.T) {
	// Each line extends to 33.333...; rounded per line that is 33.33 x 3,
	// not round(99.999...) = 100.00.
	lines := LineItems{
		{Kind: CostKindMaterial, Quantity: dec("0.3333333"), UnitPrice: dec("100"), UnitCost: decPtr("100")},
		{Kind: CostKindMaterial, Quantity: dec("0.3333333"), UnitPrice: dec("100"), UnitCost: decPtr("100")},
		{Kind: CostKindMaterial, Quantity: dec("0.3333333"), UnitPrice: dec("100"), UnitCost: decPtr("100")},
	}
	s, err := Rollup(RollupInput{Lines: lines})
	require.NoError(t, err)
	assert.Equal(t, "99.99", s.SellPrice.StringFixed(2))
	assert.Equal(t, "99.99", s.Planned.Materials.StringFixed(2))
}

func TestRollup_EmptyLines(t *testing.T) {
	s, err := Rollup(RollupInput{})
	require.NoError(t, err)
	assert.True(t, s.SellPrice.IsZero())
	assert.True(t, s.Profit.IsZero())
	assert.Nil(t, s.MarginPct)
}

func TestRollup_NegativeProfitAllowed(t *testing.T) {
	s, err := Rollup(RollupInput{
		Lines: LineItems{
			{Kind: CostKindMaterial, Quantity: dec("1"), UnitPrice: dec("100"), UnitCost: decPtr("150")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "-50.00", s.Profit.StringFixed(2))
	require.NotNil(t, s.MarginPct)
	assert.Equal(t, "-50.00", s.MarginPct.StringFixed(2))
}

func TestRollup_InvalidLine(t *testing.T) {
	_, err := Rollup(RollupInput{
		Lines: LineItems{
			{Kind: CostKind("plumbing"), Quantity: dec("1"), UnitPrice: dec("100")},
		},
	})
	assert.Error(t, err)

	_, err = Rollup(RollupInput{
		Lines: LineItems{
			{Kind: CostKindMaterial, Quantity: dec("-1"), UnitPrice: dec("100")},
		},
	})
	assert.Error(t, err)
}
