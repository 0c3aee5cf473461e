package budget

import (
	"fmt"

	"github.com/roofline/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// RollupInput carries everything Rollup needs beyond the line items.
// Overhead, commission allowance and misc are fixed planned amounts captured
// at approval time. SellOverride, when set, replaces the line-derived sell
// price; the synced invoice total takes precedence over the estimate.
type RollupInput struct {
	Lines               LineItems
	Overhead            decimal.Decimal
	CommissionAllowance decimal.Decimal
	Misc                decimal.Decimal
	SellOverride        *decimal.Decimal
}

// Rollup computes a budget summary from approved estimate lines and fixed
// planned amounts. Each line's extended sell and cost are rounded to cents
// before summation, so the totals always match what a line-by-line report
// would show. Actuals are zero; the ledger has nothing at approval time.
func Rollup(in RollupInput) (Summary, error) {
	var sell, materials, labor decimal.Decimal

	for i, li := range in.Lines {
		if err := li.Validate(); err != nil {
			return Summary{}, shared.NewDomainError("INVALID_LINE_ITEM", fmt.Sprintf("Line %d: %s", i, err.Error()))
		}

		sell = sell.Add(li.ExtendedSell())
		switch li.Kind.Normalize() {
		case CostKindMaterial:
			materials = materials.Add(li.ExtendedCost())
		case CostKindLabor:
			labor = labor.Add(li.ExtendedCost())
		}
	}

	if in.SellOverride != nil {
		sell = *in.SellOverride
	}
	sell = sell.Round(2)

	planned := PlannedCosts{
		Materials:  materials.Round(2),
		Labor:      labor.Round(2),
		Overhead:   in.Overhead.Round(2),
		Commission: in.CommissionAllowance.Round(2),
		Misc:       in.Misc.Round(2),
	}
	planned.Subtotal = planned.Materials.
		Add(planned.Labor).
		Add(planned.Overhead).
		Add(planned.Commission).
		Add(planned.Misc).
		Round(2)

	profit := sell.Sub(planned.Subtotal).Round(2)

	return Summary{
		SellPrice: sell,
		Planned:   planned,
		Profit:    profit,
		MarginPct: marginPct(sell, profit),
	}, nil
}
