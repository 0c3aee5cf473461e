package commission

import (
	"time"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/commission"
	"github.com/shopspring/decimal"
)

// CreatePlanRequest creates a commission plan
type CreatePlanRequest struct {
	Name        string           `json:"name" binding:"required"`
	Type        string           `json:"type" binding:"required"`
	Rate        decimal.Decimal  `json:"rate"`
	Tiers       []TierRequest    `json:"tiers"`
	TierBase    string           `json:"tier_base"`
	MinimumSale *decimal.Decimal `json:"minimum_sale"`
	Cap         *decimal.Decimal `json:"cap"`
}

// TierRequest is one margin band in a plan request
type TierRequest struct {
	MinMargin decimal.Decimal  `json:"min_margin"`
	MaxMargin *decimal.Decimal `json:"max_margin"`
	Rate      decimal.Decimal  `json:"rate" binding:"required"`
}

// PlanResponse represents a plan in API responses
type PlanResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Type        commission.PlanType `json:"type"`
	Rate        decimal.Decimal     `json:"rate"`
	Tiers       commission.Tiers    `json:"tiers,omitempty"`
	TierBase    commission.TierBase `json:"tier_base,omitempty"`
	MinimumSale *decimal.Decimal    `json:"minimum_sale,omitempty"`
	Cap         *decimal.Decimal    `json:"cap,omitempty"`
	Active      bool                `json:"active"`
	CreatedAt   time.Time           `json:"created_at"`
}

// AssignPlanRequest assigns a plan to a representative
type AssignPlanRequest struct {
	RepresentativeID uuid.UUID  `json:"representative_id" binding:"required"`
	PlanID           uuid.UUID  `json:"plan_id" binding:"required"`
	EffectiveFrom    *time.Time `json:"effective_from"`
	EffectiveTo      *time.Time `json:"effective_to"`
}

// AssignmentResponse represents an assignment in API responses
type AssignmentResponse struct {
	ID               uuid.UUID  `json:"id"`
	RepresentativeID uuid.UUID  `json:"representative_id"`
	PlanID           uuid.UUID  `json:"plan_id"`
	EffectiveFrom    time.Time  `json:"effective_from"`
	EffectiveTo      *time.Time `json:"effective_to,omitempty"`
	Active           bool       `json:"active"`
}

// PlanListFilter represents filter options for the plan list
type PlanListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

func toPlanResponse(p *commission.Plan) PlanResponse {
	return PlanResponse{
		ID:          p.ID,
		Name:        p.Name,
		Type:        p.Type,
		Rate:        p.Rate,
		Tiers:       p.Tiers,
		TierBase:    p.TierBase,
		MinimumSale: p.MinimumSale,
		Cap:         p.Cap,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
	}
}

func toAssignmentResponse(a *commission.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:               a.ID,
		RepresentativeID: a.RepresentativeID,
		PlanID:           a.PlanID,
		EffectiveFrom:    a.EffectiveFrom,
		EffectiveTo:      a.EffectiveTo,
		Active:           a.Active,
	}
}
