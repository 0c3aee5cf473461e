package commission

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/budget"
	"github.com/roofline/backend/internal/domain/commission"
	"github.com/roofline/backend/internal/domain/identity"
	"github.com/roofline/backend/internal/domain/job"
	"github.com/roofline/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockPlanRepository is a mock implementation of commission.PlanRepository
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) Save(ctx context.Context, plan *commission.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) Update(ctx context.Context, plan *commission.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*commission.Plan, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commission.Plan), args.Error(1)
}

func (m *MockPlanRepository) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[*commission.Plan], error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(shared.Paginated[*commission.Plan]), args.Error(1)
}

// MockAssignmentRepository is a mock implementation of commission.AssignmentRepository
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) Save(ctx context.Context, a *commission.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, a *commission.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*commission.Assignment, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commission.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) FindActiveByRep(ctx context.Context, tenantID, repID uuid.UUID, at time.Time) ([]*commission.Assignment, error) {
	args := m.Called(ctx, tenantID, repID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*commission.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) FindByRep(ctx context.Context, tenantID, repID uuid.UUID) ([]*commission.Assignment, error) {
	args := m.Called(ctx, tenantID, repID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*commission.Assignment), args.Error(1)
}

// MockJobRepository is a mock implementation of job.JobRepository
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) Save(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*job.Job, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[*job.Job], error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(shared.Paginated[*job.Job]), args.Error(1)
}

// MockEstimateRepository is a mock implementation of job.EstimateRepository
type MockEstimateRepository struct {
	mock.Mock
}

func (m *MockEstimateRepository) Save(ctx context.Context, e *job.Estimate) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEstimateRepository) Update(ctx context.Context, e *job.Estimate) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEstimateRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*job.Estimate, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Estimate), args.Error(1)
}

func (m *MockEstimateRepository) FindByJob(ctx context.Context, tenantID, jobID uuid.UUID) ([]*job.Estimate, error) {
	args := m.Called(ctx, tenantID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Estimate), args.Error(1)
}

// MockRepRepository is a mock implementation of identity.RepresentativeRepository
type MockRepRepository struct {
	mock.Mock
}

func (m *MockRepRepository) Save(ctx context.Context, rep *identity.Representative) error {
	args := m.Called(ctx, rep)
	return args.Error(0)
}

func (m *MockRepRepository) Update(ctx context.Context, rep *identity.Representative) error {
	args := m.Called(ctx, rep)
	return args.Error(0)
}

func (m *MockRepRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*identity.Representative, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Representative), args.Error(1)
}

func (m *MockRepRepository) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[*identity.Representative], error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(shared.Paginated[*identity.Representative]), args.Error(1)
}

// MockVersionRepository is a mock implementation of budget.BudgetVersionRepository
type MockVersionRepository struct {
	mock.Mock
}

func (m *MockVersionRepository) Save(ctx context.Context, v *budget.BudgetVersion) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVersionRepository) Update(ctx context.Context, v *budget.BudgetVersion) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVersionRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*budget.BudgetVersion, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budget.BudgetVersion), args.Error(1)
}

func (m *MockVersionRepository) FindByJobAndKind(ctx context.Context, tenantID, jobID uuid.UUID, kind budget.VersionKind) (*budget.BudgetVersion, error) {
	args := m.Called(ctx, tenantID, jobID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budget.BudgetVersion), args.Error(1)
}

func (m *MockVersionRepository) FindByJob(ctx context.Context, tenantID, jobID uuid.UUID) ([]*budget.BudgetVersion, error) {
	args := m.Called(ctx, tenantID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*budget.BudgetVersion), args.Error(1)
}

func (m *MockVersionRepository) ExistsForJob(ctx context.Context, tenantID, jobID uuid.UUID) (bool, error) {
	args := m.Called(ctx, tenantID, jobID)
	return args.Bool(0), args.Error(1)
}

// MockCostEventRepository is a mock implementation of budget.CostEventRepository
type MockCostEventRepository struct {
	mock.Mock
}

func (m *MockCostEventRepository) Save(ctx context.Context, e *budget.CostEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockCostEventRepository) Update(ctx context.Context, e *budget.CostEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockCostEventRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockCostEventRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*budget.CostEvent, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budget.CostEvent), args.Error(1)
}

func (m *MockCostEventRepository) FindByJob(ctx context.Context, tenantID, jobID uuid.UUID) ([]*budget.CostEvent, error) {
	args := m.Called(ctx, tenantID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*budget.CostEvent), args.Error(1)
}

func (m *MockCostEventRepository) List(ctx context.Context, tenantID, jobID uuid.UUID, filter shared.Filter) (shared.Paginated[*budget.CostEvent], error) {
	args := m.Called(ctx, tenantID, jobID, filter)
	return args.Get(0).(shared.Paginated[*budget.CostEvent]), args.Error(1)
}

func (m *MockCostEventRepository) SumByJob(ctx context.Context, tenantID, jobID uuid.UUID) ([]budget.CostKindTotal, error) {
	args := m.Called(ctx, tenantID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]budget.CostKindTotal), args.Error(1)
}

// MockMirrorRepository is a mock implementation of budget.InvoiceMirrorRepository
type MockMirrorRepository struct {
	mock.Mock
}

func (m *MockMirrorRepository) Save(ctx context.Context, mirror *budget.InvoiceMirror) error {
	args := m.Called(ctx, mirror)
	return args.Error(0)
}

func (m *MockMirrorRepository) Update(ctx context.Context, mirror *budget.InvoiceMirror) error {
	args := m.Called(ctx, mirror)
	return args.Error(0)
}

func (m *MockMirrorRepository) FindByJob(ctx context.Context, tenantID, jobID uuid.UUID) (*budget.InvoiceMirror, error) {
	args := m.Called(ctx, tenantID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budget.InvoiceMirror), args.Error(1)
}
