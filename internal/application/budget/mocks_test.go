package budget

import (
	"context"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/budget"
	"github.com/roofline/backend/internal/domain/job"
	"github.com/roofline/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

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

// MockBudgetVersionRepository is a mock implementation of budget.BudgetVersionRepository
type MockBudgetVersionRepository struct {
	mock.Mock
}

func (m *MockBudgetVersionRepository) Save(ctx context.Context, v *budget.BudgetVersion) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockBudgetVersionRepository) Update(ctx context.Context, v *budget.BudgetVersion) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockBudgetVersionRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*budget.BudgetVersion, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budget.BudgetVersion), args.Error(1)
}

func (m *MockBudgetVersionRepository) FindByJobAndKind(ctx context.Context, tenantID, jobID uuid.UUID, kind budget.VersionKind) (*budget.BudgetVersion, error) {
	args := m.Called(ctx, tenantID, jobID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budget.BudgetVersion), args.Error(1)
}

func (m *MockBudgetVersionRepository) FindByJob(ctx context.Context, tenantID, jobID uuid.UUID) ([]*budget.BudgetVersion, error) {
	args := m.Called(ctx, tenantID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*budget.BudgetVersion), args.Error(1)
}

func (m *MockBudgetVersionRepository) ExistsForJob(ctx context.Context, tenantID, jobID uuid.UUID) (bool, error) {
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

// MockInvoiceMirrorRepository is a mock implementation of budget.InvoiceMirrorRepository
type MockInvoiceMirrorRepository struct {
	mock.Mock
}

func (m *MockInvoiceMirrorRepository) Save(ctx context.Context, mirror *budget.InvoiceMirror) error {
	args := m.Called(ctx, mirror)
	return args.Error(0)
}

func (m *MockInvoiceMirrorRepository) Update(ctx context.Context, mirror *budget.InvoiceMirror) error {
	args := m.Called(ctx, mirror)
	return args.Error(0)
}

func (m *MockInvoiceMirrorRepository) FindByJob(ctx context.Context, tenantID, jobID uuid.UUID) (*budget.InvoiceMirror, error) {
	args := m.Called(ctx, tenantID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budget.InvoiceMirror), args.Error(1)
}
