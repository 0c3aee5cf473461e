package commission

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/shared"
)

// PlanRepository persists commission plans
type PlanRepository interface {
	Save(ctx context.Context, plan *Plan) error
	Update(ctx context.Context, plan *Plan) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Plan, error)
	List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[*Plan], error)
}

// AssignmentRepository persists plan assignments.
// FindActiveByRep returns active assignments for the representative whose
// window covers the instant, most recently created first.
type AssignmentRepository interface {
	Save(ctx context.Context, assignment *Assignment) error
	Update(ctx context.Context, assignment *Assignment) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Assignment, error)
	FindActiveByRep(ctx context.Context, tenantID, repID uuid.UUID, at time.Time) ([]*Assignment, error)
	FindByRep(ctx context.Context, tenantID, repID uuid.UUID) ([]*Assignment, error)
}
