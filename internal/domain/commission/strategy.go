package commission

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

var (
	// ErrRepNotFound is returned when the representative does not exist in the tenant
	ErrRepNotFound = shared.NewDomainError("REP_NOT_FOUND", "Representative not found")
	// ErrNoStrategy is returned when a plan carries an unknown type
	ErrNoStrategy = shared.NewDomainError("NO_STRATEGY", "No payout strategy for plan type")
	// ErrNoMatchingTier is returned when the margin falls outside every tier band
	ErrNoMatchingTier = shared.NewDomainError("NO_MATCHING_TIER", "No tier covers the computed margin")
)

var oneHundred = decimal.NewFromInt(100)

// Financials is the job-side input to a payout calculation. Contract value
// comes from the live budget (or the invoice mirror when one exists); total
// costs come from the cost ledger; the overhead rate is the representative's,
// as a whole percent.
type Financials struct {
	ContractValue decimal.Decimal
	TotalCosts    decimal.Decimal
	OverheadRate  decimal.Decimal
}

// RepOverhead returns contract value x overhead rate / 100, rounded to cents
func (f Financials) RepOverhead() decimal.Decimal {
	return f.ContractValue.Mul(f.OverheadRate).Div(oneHundred).Round(2)
}

// GrossProfit returns contract value minus total costs
func (f Financials) GrossProfit() decimal.Decimal {
	return f.ContractValue.Sub(f.TotalCosts).Round(2)
}

// NetProfit returns gross profit minus the representative's overhead share
func (f Financials) NetProfit() decimal.Decimal {
	return f.GrossProfit().Sub(f.RepOverhead()).Round(2)
}

// MarginPct returns net profit as a percent of contract value.
// Nil when contract value is not positive.
func (f Financials) MarginPct() *decimal.Decimal {
	if !f.ContractValue.IsPositive() {
		return nil
	}
	m := f.NetProfit().Div(f.ContractValue).Mul(oneHundred).Round(2)
	return &m
}

// PayoutStrategy computes the base amount and rate for one plan type.
// The returned rate is a whole percent; the caller derives the payout.
type PayoutStrategy interface {
	PlanType() PlanType
	Compute(plan *Plan, fin Financials) (base, rate decimal.Decimal, err error)
}

type percentOfSellPriceStrategy struct{}

func (percentOfSellPriceStrategy) PlanType() PlanType { return PlanPercentOfSellPrice }

func (percentOfSellPriceStrategy) Compute(plan *Plan, fin Financials) (decimal.Decimal, decimal.Decimal, error) {
	return fin.ContractValue, plan.Rate, nil
}

type percentOfNetProfitStrategy struct{}

func (percentOfNetProfitStrategy) PlanType() PlanType { return PlanPercentOfNetProfit }

func (percentOfNetProfitStrategy) Compute(plan *Plan, fin Financials) (decimal.Decimal, decimal.Decimal, error) {
	return fin.NetProfit(), plan.Rate, nil
}

type tieredMarginStrategy struct{}

func (tieredMarginStrategy) PlanType() PlanType { return PlanTieredMargin }

func (tieredMarginStrategy) Compute(plan *Plan, fin Financials) (decimal.Decimal, decimal.Decimal, error) {
	margin := fin.MarginPct()
	if margin == nil {
		return decimal.Zero, decimal.Zero, ErrNoMatchingTier
	}
	tier, ok := plan.Tiers.Select(*margin)
	if !ok {
		return decimal.Zero, decimal.Zero, ErrNoMatchingTier
	}

	base := fin.NetProfit()
	if plan.TierBase == TierBaseContractValue {
		base = fin.ContractValue
	}
	return base, tier.Rate, nil
}

var strategies = map[PlanType]PayoutStrategy{
	PlanPercentOfSellPrice: percentOfSellPriceStrategy{},
	PlanPercentOfNetProfit: percentOfNetProfitStrategy{},
	PlanTieredMargin:       tieredMarginStrategy{},
}

// StrategyFor returns the payout strategy registered for the plan type
func StrategyFor(t PlanType) (PayoutStrategy, error) {
	s, ok := strategies[t]
	if !ok {
		return nil, ErrNoStrategy
	}
	return s, nil
}

// Calculate produces the full payout breakdown for one job and
// representative. A nil plan is not an error: the result carries zero
// commission and the NoActivePlan flag so callers can tell "no plan" apart
// from "plan paid nothing".
//
// Minimum sale zeroes the payout when the contract is below the threshold;
// the cap clamps it from above. Both adjustments are flagged in the result.
// A tiered plan whose tier table does not cover the computed margin (or an
// undefined margin at zero contract value) likewise degrades to a flagged
// zero payout rather than failing the calculation.
func Calculate(jobID, repID uuid.UUID, plan *Plan, fin Financials) (Result, error) {
	res := Result{
		JobID:            jobID,
		RepresentativeID: repID,
		ContractValue:    fin.ContractValue.Round(2),
		TotalCosts:       fin.TotalCosts.Round(2),
		RepOverhead:      fin.RepOverhead(),
		GrossProfit:      fin.GrossProfit(),
		NetProfit:        fin.NetProfit(),
		MarginPct:        fin.MarginPct(),
		ComputedAt:       time.Now(),
	}

	if plan == nil {
		res.NoActivePlan = true
		res.CompanyProfit = res.NetProfit
		return res, nil
	}

	strategy, err := StrategyFor(plan.Type)
	if err != nil {
		return Result{}, err
	}

	planID := plan.ID
	res.PlanID = &planID
	res.PlanType = plan.Type

	base, rate, err := strategy.Compute(plan, fin)
	if err != nil {
		if errors.Is(err, ErrNoMatchingTier) {
			res.NoMatchingTier = true
			res.CompanyProfit = res.NetProfit
			return res, nil
		}
		return Result{}, err
	}
	res.CommissionRate = rate

	amount := base.Mul(rate).Div(oneHundred).Round(2)

	if plan.MinimumSale != nil && fin.ContractValue.LessThan(*plan.MinimumSale) {
		amount = decimal.Zero
		res.MinimumSaleApplied = true
	}
	if plan.Cap != nil && amount.GreaterThan(*plan.Cap) {
		amount = plan.Cap.Round(2)
		res.CapApplied = true
	}

	res.CommissionAmount = amount
	res.CompanyProfit = res.NetProfit.Sub(amount).Round(2)
	return res, nil
}
