package budget

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// PlannedCosts is the budgeted cost block of a summary. Overhead, commission
// allowance and misc are fixed inputs captured at approval; materials and
// labor come from the line items.
type PlannedCosts struct {
	Materials  decimal.Decimal `json:"materials"`
	Labor      decimal.Decimal `json:"labor"`
	Overhead   decimal.Decimal `json:"overhead"`
	Commission decimal.Decimal `json:"commission"`
	Misc       decimal.Decimal `json:"misc"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// ActualCosts is the realized spend block, aggregated from the cost ledger
type ActualCosts struct {
	Materials decimal.Decimal `json:"materials"`
	Labor     decimal.Decimal `json:"labor"`
	Misc      decimal.Decimal `json:"misc"`
}

// Summary is the financial rollup of one budget version. Its serialized shape
// is the stable contract consumed by estimates, invoicing and commission
// reporting; field names must not change.
//
// MarginPct is nil when the sell price is not positive - an undefined margin,
// not a zero one.
type Summary struct {
	SellPrice decimal.Decimal  `json:"sell_price"`
	Planned   PlannedCosts     `json:"planned"`
	Actual    ActualCosts      `json:"actual"`
	Profit    decimal.Decimal  `json:"profit"`
	MarginPct *decimal.Decimal `json:"margin_pct,omitempty"`
}

// marginPct computes profit as a percentage of sell price, rounded to two
// decimals. Undefined (nil) when sell is not positive.
func marginPct(sell, profit decimal.Decimal) *decimal.Decimal {
	if !sell.IsPositive() {
		return nil
	}
	v := profit.Div(sell).Mul(decimal.NewFromInt(100)).Round(2)
	return &v
}

// TotalActual returns the sum of the actual spend buckets
func (s Summary) TotalActual() decimal.Decimal {
	return s.Actual.Materials.Add(s.Actual.Labor).Add(s.Actual.Misc)
}

// Value implements driver.Valuer for jsonb storage
func (s Summary) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner for jsonb retrieval
func (s *Summary) Scan(value any) error {
	if value == nil {
		*s = Summary{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Summary", value)
	}
	return json.Unmarshal(data, s)
}
