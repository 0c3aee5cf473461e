package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/commission"
	"github.com/shopspring/decimal"
)

// CommissionPlanModel maps commission plans to the commission_plans table.
// Tiers are stored as a jsonb array.
type CommissionPlanModel struct {
	TenantAggregateModel
	Name        string           `gorm:"type:varchar(100);not null"`
	Type        string           `gorm:"type:varchar(30);not null"`
	Rate        decimal.Decimal  `gorm:"type:numeric(7,3);not null;default:0"`
	Tiers       commission.Tiers `gorm:"type:jsonb"`
	TierBase    string           `gorm:"type:varchar(20)"`
	MinimumSale *decimal.Decimal `gorm:"type:numeric(14,2)"`
	Cap         *decimal.Decimal `gorm:"type:numeric(14,2)"`
	Active      bool             `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (CommissionPlanModel) TableName() string {
	return "commission_plans"
}

// ToDomain converts the model to a domain Plan
func (m *CommissionPlanModel) ToDomain() *commission.Plan {
	p := &commission.Plan{
		Name:        m.Name,
		Type:        commission.PlanType(m.Type),
		Rate:        m.Rate,
		Tiers:       m.Tiers,
		TierBase:    commission.TierBase(m.TierBase),
		MinimumSale: m.MinimumSale,
		Cap:         m.Cap,
		Active:      m.Active,
	}
	m.PopulateTenantAggregateRoot(&p.TenantAggregateRoot)
	return p
}

// CommissionPlanModelFromDomain converts a domain Plan to the model
func CommissionPlanModelFromDomain(p *commission.Plan) *CommissionPlanModel {
	m := &CommissionPlanModel{
		Name:        p.Name,
		Type:        string(p.Type),
		Rate:        p.Rate,
		Tiers:       p.Tiers,
		TierBase:    string(p.TierBase),
		MinimumSale: p.MinimumSale,
		Cap:         p.Cap,
		Active:      p.Active,
	}
	m.FromDomainTenantAggregateRoot(p.TenantAggregateRoot)
	return m
}

// CommissionAssignmentModel maps plan assignments to the
// commission_assignments table
type CommissionAssignmentModel struct {
	TenantAggregateModel
	RepresentativeID uuid.UUID  `gorm:"type:uuid;not null;index:idx_commission_assignments_rep"`
	PlanID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	EffectiveFrom    time.Time  `gorm:"not null"`
	EffectiveTo      *time.Time
	Active           bool `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (CommissionAssignmentModel) TableName() string {
	return "commission_assignments"
}

// ToDomain converts the model to a domain Assignment
func (m *CommissionAssignmentModel) ToDomain() *commission.Assignment {
	a := &commission.Assignment{
		RepresentativeID: m.RepresentativeID,
		PlanID:           m.PlanID,
		EffectiveFrom:    m.EffectiveFrom,
		EffectiveTo:      m.EffectiveTo,
		Active:           m.Active,
	}
	m.PopulateTenantAggregateRoot(&a.TenantAggregateRoot)
	return a
}

// CommissionAssignmentModelFromDomain converts a domain Assignment to the model
func CommissionAssignmentModelFromDomain(a *commission.Assignment) *CommissionAssignmentModel {
	m := &CommissionAssignmentModel{
		RepresentativeID: a.RepresentativeID,
		PlanID:           a.PlanID,
		EffectiveFrom:    a.EffectiveFrom,
		EffectiveTo:      a.EffectiveTo,
		Active:           a.Active,
	}
	m.FromDomainTenantAggregateRoot(a.TenantAggregateRoot)
	return m
}
