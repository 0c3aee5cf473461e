package budget

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/roofline/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// LineItem is one priced line from an approved estimate. It is not persisted
// as its own entity; budget versions carry a frozen snapshot of the lines
// they were computed from.
type LineItem struct {
	Kind          CostKind         `json:"kind"`
	Description   string           `json:"description,omitempty"`
	Quantity      decimal.Decimal  `json:"quantity"`
	UnitPrice     decimal.Decimal  `json:"unit_price"`
	UnitCost      *decimal.Decimal `json:"unit_cost,omitempty"`
	MarkupPercent *decimal.Decimal `json:"markup_percent,omitempty"`
	MarkupFixed   *decimal.Decimal `json:"markup_fixed,omitempty"`
}

// Validate checks that the line is well-formed
func (li LineItem) Validate() error {
	if !li.Kind.IsValid() {
		return shared.NewDomainError("INVALID_LINE_KIND", fmt.Sprintf("Unknown line item kind %q", li.Kind))
	}
	if li.Quantity.IsNegative() {
		return shared.NewDomainError("INVALID_QUANTITY", "Line item quantity cannot be negative")
	}
	if li.UnitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_UNIT_PRICE", "Line item unit price cannot be negative")
	}
	return nil
}

// ResolvedUnitCost returns the unit cost for the line. When no explicit cost
// is given it is derived from the sell price and markup:
//
//	unit_cost = (unit_price - markup_fixed) / (1 + markup_percent)
//
// A markup percent of exactly -1 makes the divisor zero; the derived cost is
// zero in that case rather than an error.
func (li LineItem) ResolvedUnitCost() decimal.Decimal {
	if li.UnitCost != nil {
		return *li.UnitCost
	}

	price := li.UnitPrice
	if li.MarkupFixed != nil {
		price = price.Sub(*li.MarkupFixed)
	}

	divisor := decimal.NewFromInt(1)
	if li.MarkupPercent != nil {
		divisor = divisor.Add(*li.MarkupPercent)
	}
	if divisor.IsZero() {
		return decimal.Zero
	}
	return price.Div(divisor)
}

// ExtendedSell returns quantity x unit price, rounded to cents
func (li LineItem) ExtendedSell() decimal.Decimal {
	return li.UnitPrice.Mul(li.Quantity).Round(2)
}

// ExtendedCost returns quantity x resolved unit cost, rounded to cents
func (li LineItem) ExtendedCost() decimal.Decimal {
	return li.ResolvedUnitCost().Mul(li.Quantity).Round(2)
}

// LineItems is a frozen snapshot of estimate lines, stored as jsonb
type LineItems []LineItem

// Validate checks every line in the snapshot
func (ls LineItems) Validate() error {
	for i, li := range ls {
		if err := li.Validate(); err != nil {
			return shared.NewDomainError("INVALID_LINE_ITEM", fmt.Sprintf("Line %d: %s", i, err.Error()))
		}
	}
	return nil
}

// Value implements driver.Valuer for jsonb storage
func (ls LineItems) Value() (driver.Value, error) {
	if ls == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(ls)
}

// Scan implements sql.Scanner for jsonb retrieval
func (ls *LineItems) Scan(value any) error {
	if value == nil {
		*ls = LineItems{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into LineItems", value)
	}
	return json.Unmarshal(data, ls)
}
