package commission

import (
	"github.com/roofline/backend/internal/domain/shared"
)

// Event type constants for the commission domain
const (
	EventPlanCreated       = "commission.plan.created"
	EventPlanDeactivated   = "commission.plan.deactivated"
	EventAssignmentCreated = "commission.assignment.created"
)

// PlanCreatedEvent is raised when a commission plan is created
type PlanCreatedEvent struct {
	shared.BaseDomainEvent
	Name string   `json:"name"`
	Type PlanType `json:"plan_type"`
}

// NewPlanCreatedEvent creates a PlanCreatedEvent
func NewPlanCreatedEvent(p *Plan) *PlanCreatedEvent {
	return &PlanCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventPlanCreated, "CommissionPlan", p.ID, p.TenantID),
		Name:            p.Name,
		Type:            p.Type,
	}
}

// PlanDeactivatedEvent is raised when a plan is retired
type PlanDeactivatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewPlanDeactivatedEvent creates a PlanDeactivatedEvent
func NewPlanDeactivatedEvent(p *Plan) *PlanDeactivatedEvent {
	return &PlanDeactivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventPlanDeactivated, "CommissionPlan", p.ID, p.TenantID),
		Name:            p.Name,
	}
}

// AssignmentCreatedEvent is raised when a representative is assigned a plan
type AssignmentCreatedEvent struct {
	shared.BaseDomainEvent
	RepresentativeID string `json:"representative_id"`
	PlanID           string `json:"plan_id"`
}

// NewAssignmentCreatedEvent creates an AssignmentCreatedEvent
func NewAssignmentCreatedEvent(a *Assignment) *AssignmentCreatedEvent {
	return &AssignmentCreatedEvent{
		BaseDomainEvent:  shared.NewBaseDomainEvent(EventAssignmentCreated, "CommissionAssignment", a.ID, a.TenantID),
		RepresentativeID: a.RepresentativeID.String(),
		PlanID:           a.PlanID.String(),
	}
}
