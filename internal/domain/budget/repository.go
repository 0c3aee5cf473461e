package budget

import (
	"context"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// BudgetVersionRepository persists budget versions. All lookups are
// tenant-scoped; implementations must never return another tenant's rows.
type BudgetVersionRepository interface {
	Save(ctx context.Context, version *BudgetVersion) error
	Update(ctx context.Context, version *BudgetVersion) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*BudgetVersion, error)
	FindByJobAndKind(ctx context.Context, tenantID, jobID uuid.UUID, kind VersionKind) (*BudgetVersion, error)
	FindByJob(ctx context.Context, tenantID, jobID uuid.UUID) ([]*BudgetVersion, error)
	ExistsForJob(ctx context.Context, tenantID, jobID uuid.UUID) (bool, error)
}

// CostKindTotal is one bucket of a ledger aggregation
type CostKindTotal struct {
	Kind  CostKind
	Total decimal.Decimal
}

// CostEventRepository persists the cost ledger
type CostEventRepository interface {
	Save(ctx context.Context, event *CostEvent) error
	Update(ctx context.Context, event *CostEvent) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*CostEvent, error)
	FindByJob(ctx context.Context, tenantID, jobID uuid.UUID) ([]*CostEvent, error)
	List(ctx context.Context, tenantID, jobID uuid.UUID, filter shared.Filter) (shared.Paginated[*CostEvent], error)
	SumByJob(ctx context.Context, tenantID, jobID uuid.UUID) ([]CostKindTotal, error)
}

// InvoiceMirrorRepository persists invoice mirrors, one per job at most
type InvoiceMirrorRepository interface {
	Save(ctx context.Context, mirror *InvoiceMirror) error
	Update(ctx context.Context, mirror *InvoiceMirror) error
	FindByJob(ctx context.Context, tenantID, jobID uuid.UUID) (*InvoiceMirror, error)
}
