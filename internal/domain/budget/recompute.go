package budget

import "github.com/shopspring/decimal"

// RefreshSummary re-derives the live summary from the full cost ledger.
// It is a pure function of its inputs: running it twice, or with the ledger
// in any order, produces the same summary.
//
// The sell price comes from the live version unless an invoice mirror is
// present, in which case the synced invoice total wins. Live profit charges
// the job for actual spend plus the baseline's planned overhead and
// commission allowance, so margins do not look inflated before those
// obligations are paid out.
func RefreshSummary(capout, precap Summary, ledger []CostEvent, mirror *InvoiceMirror) Summary {
	materials := decimal.Zero
	labor := decimal.Zero
	misc := decimal.Zero

	for _, ev := range ledger {
		switch ev.Kind.Normalize() {
		case CostKindMaterial:
			materials = materials.Add(ev.Amount)
		case CostKindLabor:
			labor = labor.Add(ev.Amount)
		default:
			misc = misc.Add(ev.Amount)
		}
	}

	sell := capout.SellPrice
	if mirror != nil {
		sell = mirror.TotalAmount
	}
	sell = sell.Round(2)

	actual := ActualCosts{
		Materials: materials.Round(2),
		Labor:     labor.Round(2),
		Misc:      misc.Round(2),
	}

	spent := actual.Materials.
		Add(actual.Labor).
		Add(actual.Misc).
		Add(precap.Planned.Overhead).
		Add(precap.Planned.Commission)
	profit := sell.Sub(spent).Round(2)

	return Summary{
		SellPrice: sell,
		Planned:   capout.Planned,
		Actual:    actual,
		Profit:    profit,
		MarginPct: marginPct(sell, profit),
	}
}
