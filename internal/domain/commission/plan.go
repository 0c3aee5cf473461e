package commission

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PlanType selects the payout strategy for a commission plan
type PlanType string

const (
	PlanPercentOfSellPrice PlanType = "PERCENT_OF_SELL_PRICE"
	PlanPercentOfNetProfit PlanType = "PERCENT_OF_NET_PROFIT"
	PlanTieredMargin       PlanType = "TIERED_MARGIN"
)

// IsValid checks if the type is a known PlanType
func (t PlanType) IsValid() bool {
	switch t {
	case PlanPercentOfSellPrice, PlanPercentOfNetProfit, PlanTieredMargin:
		return true
	}
	return false
}

// TierBase names the amount a tiered rate applies to. Implementations in the
// field disagree on this, so it is an explicit per-plan configuration rather
// than a hardcoded choice.
type TierBase string

const (
	TierBaseContractValue TierBase = "CONTRACT_VALUE"
	TierBaseNetProfit     TierBase = "NET_PROFIT"
)

// ParseTierBase normalizes a tier base string; empty defaults to NET_PROFIT
func ParseTierBase(s string) (TierBase, error) {
	switch TierBase(strings.ToUpper(strings.TrimSpace(s))) {
	case "":
		return TierBaseNetProfit, nil
	case TierBaseContractValue:
		return TierBaseContractValue, nil
	case TierBaseNetProfit:
		return TierBaseNetProfit, nil
	}
	return "", shared.NewDomainError("INVALID_TIER_BASE", fmt.Sprintf("Unknown tier base %q", s))
}

// Tier is one margin band of a tiered plan. The band is half-open:
// [MinMargin, MaxMargin). A nil MaxMargin means the band is unbounded above.
// Rates are whole percents (3.5 means 3.5%).
type Tier struct {
	MinMargin decimal.Decimal  `json:"min_margin"`
	MaxMargin *decimal.Decimal `json:"max_margin,omitempty"`
	Rate      decimal.Decimal  `json:"rate"`
}

// Contains reports whether the margin falls inside this band
func (t Tier) Contains(margin decimal.Decimal) bool {
	if margin.LessThan(t.MinMargin) {
		return false
	}
	if t.MaxMargin != nil && margin.GreaterThanOrEqual(*t.MaxMargin) {
		return false
	}
	return true
}

// Tiers is a tier table, stored as jsonb
type Tiers []Tier

// Select returns the tier containing the given margin, or false when the
// margin falls outside every band.
func (ts Tiers) Select(margin decimal.Decimal) (Tier, bool) {
	for _, t := range ts {
		if t.Contains(margin) {
			return t, true
		}
	}
	return Tier{}, false
}

// Value implements driver.Valuer for jsonb storage
func (ts Tiers) Value() (driver.Value, error) {
	if ts == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(ts)
}

// Scan implements sql.Scanner for jsonb retrieval
func (ts *Tiers) Scan(value any) error {
	if value == nil {
		*ts = Tiers{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Tiers", value)
	}
	return json.Unmarshal(data, ts)
}

// Plan is a reusable payout configuration a representative can be assigned
// to. Rate is a whole percent for the percent plan types; tiered plans carry
// their rates in the tier table instead.
type Plan struct {
	shared.TenantAggregateRoot
	Name        string
	Type        PlanType
	Rate        decimal.Decimal
	Tiers       Tiers
	TierBase    TierBase
	MinimumSale *decimal.Decimal
	Cap         *decimal.Decimal
	Active      bool
}

// NewPlan creates a commission plan
func NewPlan(tenantID uuid.UUID, name string, planType PlanType, rate decimal.Decimal, tiers Tiers, tierBase TierBase, minimumSale, cap *decimal.Decimal) (*Plan, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PLAN_NAME", "Plan name is required")
	}
	if !planType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PLAN_TYPE", fmt.Sprintf("Unknown plan type %q", planType))
	}
	if planType == PlanTieredMargin {
		if len(tiers) == 0 {
			return nil, shared.NewDomainError("INVALID_TIERS", "Tiered plan requires at least one tier")
		}
		if tierBase == "" {
			tierBase = TierBaseNetProfit
		}
		if tierBase != TierBaseContractValue && tierBase != TierBaseNetProfit {
			return nil, shared.NewDomainError("INVALID_TIER_BASE", fmt.Sprintf("Unknown tier base %q", tierBase))
		}
	} else if rate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_RATE", "Plan rate cannot be negative")
	}
	if minimumSale != nil && minimumSale.IsNegative() {
		return nil, shared.NewDomainError("INVALID_MINIMUM_SALE", "Minimum sale cannot be negative")
	}
	if cap != nil && cap.IsNegative() {
		return nil, shared.NewDomainError("INVALID_CAP", "Commission cap cannot be negative")
	}

	p := &Plan{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		Type:                planType,
		Rate:                rate,
		Tiers:               tiers,
		TierBase:            tierBase,
		MinimumSale:         minimumSale,
		Cap:                 cap,
		Active:              true,
	}
	p.AddDomainEvent(NewPlanCreatedEvent(p))
	return p, nil
}

// Deactivate retires the plan; existing assignments stop resolving to it
func (p *Plan) Deactivate() {
	if !p.Active {
		return
	}
	p.Active = false
	p.AddDomainEvent(NewPlanDeactivatedEvent(p))
}
