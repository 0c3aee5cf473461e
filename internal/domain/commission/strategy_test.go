package commission

import (
	"testing"

	"github.com/google/uuid"
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

func netProfitPlan(t *testing.T, rate string) *Plan {
	t.Helper()
	p, err := NewPlan(uuid.New(), "Net profit split", PlanPercentOfNetProfit, dec(rate), nil, "", nil, nil)
	require.NoError(t, err)
	return p
}

func standardFinancials() Financials {
	return Financials{
		ContractValue: dec("20000"),
		TotalCosts:    dec("12000"),
		OverheadRate:  dec("5"),
	}
}

func TestFinancials_Derivations(t *testing.T) {
	fin := standardFinancials()
	assert.Equal(t, "1000.00", fin.RepOverhead().StringFixed(2))
	assert.Equal(t, "8000.00", fin.GrossProfit().StringFixed(2))
	assert.Equal(t, "7000.00", fin.NetProfit().StringFixed(2))
	require.NotNil(t, fin.MarginPct())
	assert.Equal(t, "35.00", fin.MarginPct().StringFixed(2))
}

func TestCalculate_PercentOfNetProfit(t *testing.T) {
	plan := netProfitPlan(t, "50")

	res, err := Calculate(uuid.New(), uuid.New(), plan, standardFinancials())
	require.NoError(t, err)

	assert.Equal(t, "20000.00", res.ContractValue.StringFixed(2))
	assert.Equal(t, "12000.00", res.TotalCosts.StringFixed(2))
	assert.Equal(t, "1000.00", res.RepOverhead.StringFixed(2))
	assert.Equal(t, "8000.00", res.GrossProfit.StringFixed(2))
	assert.Equal(t, "7000.00", res.NetProfit.StringFixed(2))
	assert.Equal(t, "3500.00", res.CommissionAmount.StringFixed(2))
	assert.Equal(t, "3500.00", res.CompanyProfit.StringFixed(2))
	assert.False(t, res.NoActivePlan)
	require.NotNil(t, res.PlanID)
	assert.Equal(t, plan.ID, *res.PlanID)
}

func TestCalculate_PercentOfSellPrice(t *testing.T) {
	plan, err := NewPlan(uuid.New(), "Top line", PlanPercentOfSellPrice, dec("10"), nil, "", nil, nil)
	require.NoError(t, err)

	res, err := Calculate(uuid.New(), uuid.New(), plan, standardFinancials())
	require.NoError(t, err)

	assert.Equal(t, "2000.00", res.CommissionAmount.StringFixed(2))
	assert.Equal(t, "5000.00", res.CompanyProfit.StringFixed(2))
}

func tieredPlan(t *testing.T, base TierBase) *Plan {
	t.Helper()
	tiers := Tiers{
		{MinMargin: dec("15"), MaxMargin: decPtr("20"), Rate: dec("2.0")},
		{MinMargin: dec("20"), MaxMargin: decPtr("25"), Rate: dec("3.0")},
		{MinMargin: dec("25"), Rate: dec("4.5")},
	}
	p, err := NewPlan(uuid.New(), "Margin ladder", PlanTieredMargin, decimal.Zero, tiers, base, nil, nil)
	require.NoError(t, err)
	return p
}

func TestCalculate_TieredMargin(t *testing.T) {
	// margin 22% selects the [20,25) band
	fin := Financials{
		ContractValue: dec("10000"),
		TotalCosts:    dec("7300"),
		OverheadRate:  dec("5"),
	}
	require.NotNil(t, fin.MarginPct())
	require.Equal(t, "22.00", fin.MarginPct().StringFixed(2))

	res, err := Calculate(uuid.New(), uuid.New(), tieredPlan(t, TierBaseNetProfit), fin)
	require.NoError(t, err)
	assert.Equal(t, "3.00", res.CommissionRate.StringFixed(2))
	// 2200 net x 3%
	assert.Equal(t, "66.00", res.CommissionAmount.StringFixed(2))

	res, err = Calculate(uuid.New(), uuid.New(), tieredPlan(t, TierBaseContractValue), fin)
	require.NoError(t, err)
	// 10000 contract x 3%
	assert.Equal(t, "300.00", res.CommissionAmount.StringFixed(2))
}

func TestCalculate_TieredMargin_BoundaryIsHalfOpen(t *testing.T) {
	// margin exactly 25 belongs to the unbounded top band, not [20,25)
	fin := Financials{
		ContractValue: dec("10000"),
		TotalCosts:    dec("7000"),
		OverheadRate:  dec("5"),
	}
	require.Equal(t, "25.00", fin.MarginPct().StringFixed(2))

	res, err := Calculate(uuid.New(), uuid.New(), tieredPlan(t, TierBaseContractValue), fin)
	require.NoError(t, err)
	assert.Equal(t, "4.50", res.CommissionRate.StringFixed(2))
}

func TestCalculate_TieredMargin_NoMatchingTier(t *testing.T) {
	// margin below every band degrades to a flagged zero payout
	fin := Financials{
		ContractValue: dec("10000"),
		TotalCosts:    dec("9500"),
		OverheadRate:  dec("0"),
	}
	plan := tieredPlan(t, TierBaseNetProfit)

	res, err := Calculate(uuid.New(), uuid.New(), plan, fin)
	require.NoError(t, err)

	assert.True(t, res.NoMatchingTier)
	assert.False(t, res.NoActivePlan)
	assert.True(t, res.CommissionAmount.IsZero())
	require.NotNil(t, res.PlanID)
	assert.Equal(t, plan.ID, *res.PlanID)
	assert.Equal(t, "500.00", res.NetProfit.StringFixed(2))
	assert.Equal(t, "500.00", res.CompanyProfit.StringFixed(2))
}

func TestCalculate_TieredMargin_UndefinedMargin(t *testing.T) {
	// zero contract value has no margin, so no tier can apply
	fin := Financials{TotalCosts: dec("500")}

	res, err := Calculate(uuid.New(), uuid.New(), tieredPlan(t, TierBaseNetProfit), fin)
	require.NoError(t, err)

	assert.Nil(t, res.MarginPct)
	assert.True(t, res.NoMatchingTier)
	assert.True(t, res.CommissionAmount.IsZero())
	assert.Equal(t, "-500.00", res.CompanyProfit.StringFixed(2))
}

func TestCalculate_NoActivePlan(t *testing.T) {
	res, err := Calculate(uuid.New(), uuid.New(), nil, standardFinancials())
	require.NoError(t, err)

	assert.True(t, res.NoActivePlan)
	assert.True(t, res.CommissionAmount.IsZero())
	assert.Nil(t, res.PlanID)
	assert.Equal(t, "7000.00", res.NetProfit.StringFixed(2))
	assert.Equal(t, "7000.00", res.CompanyProfit.StringFixed(2))
}

func TestCalculate_MinimumSaleZeroesPayout(t *testing.T) {
	plan, err := NewPlan(uuid.New(), "With floor", PlanPercentOfNetProfit, dec("50"), nil, "", decPtr("25000"), nil)
	require.NoError(t, err)

	res, err := Calculate(uuid.New(), uuid.New(), plan, standardFinancials())
	require.NoError(t, err)

	assert.True(t, res.CommissionAmount.IsZero())
	assert.True(t, res.MinimumSaleApplied)
	assert.Equal(t, "7000.00", res.CompanyProfit.StringFixed(2))
}

func TestCalculate_CapClampsPayout(t *testing.T) {
	plan, err := NewPlan(uuid.New(), "With cap", PlanPercentOfNetProfit, dec("50"), nil, "", nil, decPtr("2000"))
	require.NoError(t, err)

	res, err := Calculate(uuid.New(), uuid.New(), plan, standardFinancials())
	require.NoError(t, err)

	assert.Equal(t, "2000.00", res.CommissionAmount.StringFixed(2))
	assert.True(t, res.CapApplied)
	assert.Equal(t, "5000.00", res.CompanyProfit.StringFixed(2))
}

func TestCalculate_ZeroContractValue(t *testing.T) {
	plan := netProfitPlan(t, "50")
	fin := Financials{TotalCosts: dec("500")}

	res, err := Calculate(uuid.New(), uuid.New(), plan, fin)
	require.NoError(t, err)
	assert.Nil(t, res.MarginPct)
	assert.Equal(t, "-250.00", res.CommissionAmount.StringFixed(2))
}

func TestStrategyFor_UnknownType(t *testing.T) {
	_, err := StrategyFor(PlanType("FLAT_FEE"))
	assert.ErrorIs(t, err, ErrNoStrategy)
}
