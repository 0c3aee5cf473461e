package commission

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Result is the full payout breakdown for one job and representative.
// Computed on demand; callers may persist it but nothing here requires that.
type Result struct {
	JobID              uuid.UUID        `json:"job_id"`
	RepresentativeID   uuid.UUID        `json:"representative_id"`
	PlanID             *uuid.UUID       `json:"plan_id,omitempty"`
	PlanType           PlanType         `json:"plan_type,omitempty"`
	ContractValue      decimal.Decimal  `json:"contract_value"`
	TotalCosts         decimal.Decimal  `json:"total_costs"`
	RepOverhead        decimal.Decimal  `json:"rep_overhead"`
	GrossProfit        decimal.Decimal  `json:"gross_profit"`
	NetProfit          decimal.Decimal  `json:"net_profit"`
	MarginPct          *decimal.Decimal `json:"margin_pct,omitempty"`
	CommissionRate     decimal.Decimal  `json:"commission_rate"`
	CommissionAmount   decimal.Decimal  `json:"commission_amount"`
	CompanyProfit      decimal.Decimal  `json:"company_profit"`
	MinimumSaleApplied bool             `json:"minimum_sale_applied,omitempty"`
	CapApplied         bool             `json:"cap_applied,omitempty"`
	NoActivePlan       bool             `json:"no_active_plan,omitempty"`
	NoMatchingTier     bool             `json:"no_matching_tier,omitempty"`
	ComputedAt         time.Time        `json:"computed_at"`
}
