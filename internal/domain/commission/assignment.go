package commission

import (
	"time"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/shared"
)

// Assignment links a representative to a plan for an effective window.
// A representative accumulates assignments over time; only the most recently
// created active one whose window covers the calculation instant applies.
type Assignment struct {
	shared.TenantAggregateRoot
	RepresentativeID uuid.UUID
	PlanID           uuid.UUID
	EffectiveFrom    time.Time
	EffectiveTo      *time.Time
	Active           bool
}

// NewAssignment creates an assignment effective from the given instant.
// A nil effectiveTo leaves the window open-ended.
func NewAssignment(tenantID, repID, planID uuid.UUID, effectiveFrom time.Time, effectiveTo *time.Time) (*Assignment, error) {
	if repID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REP_ID", "Representative ID is required")
	}
	if planID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PLAN_ID", "Plan ID is required")
	}
	if effectiveFrom.IsZero() {
		effectiveFrom = time.Now()
	}
	if effectiveTo != nil && !effectiveTo.After(effectiveFrom) {
		return nil, shared.NewDomainError("INVALID_EFFECTIVE_WINDOW", "Effective end must be after effective start")
	}

	a := &Assignment{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		RepresentativeID:    repID,
		PlanID:              planID,
		EffectiveFrom:       effectiveFrom,
		EffectiveTo:         effectiveTo,
		Active:              true,
	}
	a.AddDomainEvent(NewAssignmentCreatedEvent(a))
	return a, nil
}

// Covers reports whether the effective window contains the instant
func (a *Assignment) Covers(at time.Time) bool {
	if at.Before(a.EffectiveFrom) {
		return false
	}
	if a.EffectiveTo != nil && !at.Before(*a.EffectiveTo) {
		return false
	}
	return true
}

// Deactivate ends the assignment; it will no longer resolve
func (a *Assignment) Deactivate() {
	a.Active = false
}
