package budget

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/budget"
	"github.com/roofline/backend/internal/domain/job"
	"github.com/roofline/backend/internal/domain/shared"
)

// BudgetService owns the budget version lifecycle: baseline capture at job
// approval and live recomputes afterwards.
type BudgetService struct {
	jobRepo        job.JobRepository
	estimateRepo   job.EstimateRepository
	versionRepo    budget.BudgetVersionRepository
	costEventRepo  budget.CostEventRepository
	mirrorRepo     budget.InvoiceMirrorRepository
	eventPublisher shared.EventPublisher
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(
	jobRepo job.JobRepository,
	estimateRepo job.EstimateRepository,
	versionRepo budget.BudgetVersionRepository,
	costEventRepo budget.CostEventRepository,
	mirrorRepo budget.InvoiceMirrorRepository,
) *BudgetService {
	return &BudgetService{
		jobRepo:       jobRepo,
		estimateRepo:  estimateRepo,
		versionRepo:   versionRepo,
		costEventRepo: costEventRepo,
		mirrorRepo:    mirrorRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *BudgetService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *BudgetService) publishDomainEvents(ctx context.Context, agg shared.AggregateRoot) {
	if s.eventPublisher == nil {
		return
	}
	events := agg.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	agg.ClearDomainEvents()
}

// findMirror returns the job's invoice mirror, or nil when none exists
func (s *BudgetService) findMirror(ctx context.Context, tenantID, jobID uuid.UUID) (*budget.InvoiceMirror, error) {
	mirror, err := s.mirrorRepo.FindByJob(ctx, tenantID, jobID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mirror, nil
}

// CreateInitialVersions approves the job and captures its financial
// baseline: the PRECAP/CAPOUT pair, computed from the approved estimate's
// lines and allowances. When an invoice mirror already exists its total
// overrides the line-derived sell price in both versions.
func (s *BudgetService) CreateInitialVersions(ctx context.Context, tenantID uuid.UUID, req CreateBaselineRequest) (*BaselineResponse, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}

	j, err := s.jobRepo.FindByID(ctx, tenantID, req.JobID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, budget.ErrJobNotFound
		}
		return nil, err
	}

	estimate, err := s.estimateRepo.FindByID(ctx, tenantID, req.EstimateID)
	if err != nil {
		return nil, err
	}
	if estimate.JobID != j.ID {
		return nil, shared.NewDomainError("ESTIMATE_JOB_MISMATCH", "Estimate does not belong to this job")
	}

	exists, err := s.versionRepo.ExistsForJob(ctx, tenantID, j.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("BASELINE_EXISTS", "Budget versions already exist for this job")
	}

	if err := j.Approve(); err != nil {
		return nil, err
	}
	if estimate.Status != job.EstimateApproved {
		if err := estimate.Approve(); err != nil {
			return nil, err
		}
	}

	mirror, err := s.findMirror(ctx, tenantID, j.ID)
	if err != nil {
		return nil, err
	}

	in := budget.RollupInput{
		Lines:               estimate.Lines,
		Overhead:            estimate.Overhead,
		CommissionAllowance: estimate.CommissionAllowance,
		Misc:                estimate.Misc,
	}
	if mirror != nil {
		total := mirror.TotalAmount
		in.SellOverride = &total
	}
	summary, err := budget.Rollup(in)
	if err != nil {
		return nil, err
	}

	precap, capout, err := budget.NewInitialVersions(tenantID, j.ID, estimate.ID, estimate.Lines, summary)
	if err != nil {
		return nil, err
	}

	if err := s.versionRepo.Save(ctx, precap); err != nil {
		return nil, err
	}
	if err := s.versionRepo.Save(ctx, capout); err != nil {
		return nil, err
	}
	if err := s.jobRepo.Update(ctx, j); err != nil {
		return nil, err
	}
	if err := s.estimateRepo.Update(ctx, estimate); err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, j)
	s.publishDomainEvents(ctx, precap)
	s.publishDomainEvents(ctx, capout)

	return &BaselineResponse{
		Precap: toVersionResponse(precap),
		Capout: toVersionResponse(capout),
	}, nil
}

// GetVersions returns both budget versions of a job
func (s *BudgetService) GetVersions(ctx context.Context, tenantID, jobID uuid.UUID) ([]BudgetVersionResponse, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}

	versions, err := s.versionRepo.FindByJob(ctx, tenantID, jobID)
	if err != nil {
		return nil, err
	}
	out := make([]BudgetVersionResponse, 0, len(versions))
	for _, v := range versions {
		out = append(out, toVersionResponse(v))
	}
	return out, nil
}

// RefreshCapout re-derives the live summary from the full cost ledger and
// the invoice mirror, and overwrites the CAPOUT's summary with the result.
// Safe to call any number of times.
func (s *BudgetService) RefreshCapout(ctx context.Context, tenantID, jobID uuid.UUID) (*BudgetVersionResponse, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}

	capout, err := s.versionRepo.FindByJobAndKind(ctx, tenantID, jobID, budget.VersionCapout)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, budget.ErrJobNotFound
		}
		return nil, err
	}
	precap, err := s.versionRepo.FindByJobAndKind(ctx, tenantID, jobID, budget.VersionPrecap)
	if err != nil {
		return nil, err
	}

	ledger, err := s.costEventRepo.FindByJob(ctx, tenantID, jobID)
	if err != nil {
		return nil, err
	}
	mirror, err := s.findMirror(ctx, tenantID, jobID)
	if err != nil {
		return nil, err
	}

	events := make([]budget.CostEvent, 0, len(ledger))
	for _, e := range ledger {
		events = append(events, *e)
	}

	summary := budget.RefreshSummary(capout.Summary, precap.Summary, events, mirror)
	if err := capout.ApplySummary(summary); err != nil {
		return nil, err
	}
	if err := s.versionRepo.Update(ctx, capout); err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, capout)

	resp := toVersionResponse(capout)
	return &resp, nil
}
