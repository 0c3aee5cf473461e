package job

import (
	"context"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/shared"
)

// JobRepository persists jobs
type JobRepository interface {
	Save(ctx context.Context, j *Job) error
	Update(ctx context.Context, j *Job) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Job, error)
	List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[*Job], error)
}

// EstimateRepository persists estimates
type EstimateRepository interface {
	Save(ctx context.Context, e *Estimate) error
	Update(ctx context.Context, e *Estimate) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Estimate, error)
	FindByJob(ctx context.Context, tenantID, jobID uuid.UUID) ([]*Estimate, error)
}
