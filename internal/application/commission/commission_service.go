package commission

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/budget"
	"github.com/roofline/backend/internal/domain/commission"
	"github.com/roofline/backend/internal/domain/identity"
	"github.com/roofline/backend/internal/domain/job"
	"github.com/roofline/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CommissionService manages plans and assignments and produces payout
// breakdowns from job financials.
type CommissionService struct {
	planRepo       commission.PlanRepository
	assignmentRepo commission.AssignmentRepository
	jobRepo        job.JobRepository
	estimateRepo   job.EstimateRepository
	repRepo        identity.RepresentativeRepository
	versionRepo    budget.BudgetVersionRepository
	costEventRepo  budget.CostEventRepository
	mirrorRepo     budget.InvoiceMirrorRepository
	eventPublisher shared.EventPublisher
	now            func() time.Time
}

// NewCommissionService creates a new CommissionService
func NewCommissionService(
	planRepo commission.PlanRepository,
	assignmentRepo commission.AssignmentRepository,
	jobRepo job.JobRepository,
	estimateRepo job.EstimateRepository,
	repRepo identity.RepresentativeRepository,
	versionRepo budget.BudgetVersionRepository,
	costEventRepo budget.CostEventRepository,
	mirrorRepo budget.InvoiceMirrorRepository,
) *CommissionService {
	return &CommissionService{
		planRepo:       planRepo,
		assignmentRepo: assignmentRepo,
		jobRepo:        jobRepo,
		estimateRepo:   estimateRepo,
		repRepo:        repRepo,
		versionRepo:    versionRepo,
		costEventRepo:  costEventRepo,
		mirrorRepo:     mirrorRepo,
		now:            time.Now,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *CommissionService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *CommissionService) publishDomainEvents(ctx context.Context, agg shared.AggregateRoot) {
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

// CreatePlan creates a commission plan
func (s *CommissionService) CreatePlan(ctx context.Context, tenantID uuid.UUID, req CreatePlanRequest) (*PlanResponse, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}

	tierBase, err := commission.ParseTierBase(req.TierBase)
	if err != nil {
		return nil, err
	}
	tiers := make(commission.Tiers, 0, len(req.Tiers))
	for _, t := range req.Tiers {
		tiers = append(tiers, commission.Tier{MinMargin: t.MinMargin, MaxMargin: t.MaxMargin, Rate: t.Rate})
	}

	plan, err := commission.NewPlan(tenantID, req.Name, commission.PlanType(req.Type), req.Rate, tiers, tierBase, req.MinimumSale, req.Cap)
	if err != nil {
		return nil, err
	}
	if err := s.planRepo.Save(ctx, plan); err != nil {
		return nil, err
	}
	s.publishDomainEvents(ctx, plan)

	resp := toPlanResponse(plan)
	return &resp, nil
}

// DeactivatePlan retires a plan
func (s *CommissionService) DeactivatePlan(ctx context.Context, tenantID, planID uuid.UUID) error {
	if tenantID == uuid.Nil {
		return shared.ErrUnauthorized
	}

	plan, err := s.planRepo.FindByID(ctx, tenantID, planID)
	if err != nil {
		return err
	}
	plan.Deactivate()
	if err := s.planRepo.Update(ctx, plan); err != nil {
		return err
	}
	s.publishDomainEvents(ctx, plan)
	return nil
}

// ListPlans returns one page of the tenant's plans
func (s *CommissionService) ListPlans(ctx context.Context, tenantID uuid.UUID, filter PlanListFilter) ([]PlanResponse, int64, error) {
	if tenantID == uuid.Nil {
		return nil, 0, shared.ErrUnauthorized
	}

	f := shared.DefaultFilter()
	f.Search = filter.Search
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		f.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		f.OrderDir = filter.OrderDir
	}

	page, err := s.planRepo.List(ctx, tenantID, f)
	if err != nil {
		return nil, 0, err
	}
	out := make([]PlanResponse, 0, len(page.Items))
	for _, p := range page.Items {
		out = append(out, toPlanResponse(p))
	}
	return out, page.Total, nil
}

// AssignPlan links a representative to a plan
func (s *CommissionService) AssignPlan(ctx context.Context, tenantID uuid.UUID, req AssignPlanRequest) (*AssignmentResponse, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}

	if _, err := s.repRepo.FindByID(ctx, tenantID, req.RepresentativeID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, commission.ErrRepNotFound
		}
		return nil, err
	}
	if _, err := s.planRepo.FindByID(ctx, tenantID, req.PlanID); err != nil {
		return nil, err
	}

	from := time.Time{}
	if req.EffectiveFrom != nil {
		from = *req.EffectiveFrom
	}
	assignment, err := commission.NewAssignment(tenantID, req.RepresentativeID, req.PlanID, from, req.EffectiveTo)
	if err != nil {
		return nil, err
	}
	if err := s.assignmentRepo.Save(ctx, assignment); err != nil {
		return nil, err
	}
	s.publishDomainEvents(ctx, assignment)

	resp := toAssignmentResponse(assignment)
	return &resp, nil
}

// ResolveActivePlan finds the plan governing a representative right now:
// the most recently created active assignment whose window covers the
// instant and whose plan is still active. A nil return with no error means
// no plan applies.
func (s *CommissionService) ResolveActivePlan(ctx context.Context, tenantID, repID uuid.UUID) (*commission.Plan, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}

	assignments, err := s.assignmentRepo.FindActiveByRep(ctx, tenantID, repID, s.now())
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	for _, a := range assignments {
		plan, err := s.planRepo.FindByID(ctx, tenantID, a.PlanID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if plan.Active {
			return plan, nil
		}
	}
	return nil, nil
}

// CalculateCommission produces the payout breakdown for a job and its
// representative. Contract value comes from the live budget, with the
// invoice mirror taking precedence when one exists and the estimate's
// selling price standing in before a budget is captured; total costs come
// from the cost ledger. A representative without an active plan yields a
// zero payout, flagged, not an error.
func (s *CommissionService) CalculateCommission(ctx context.Context, tenantID, jobID uuid.UUID) (*commission.Result, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}

	j, err := s.jobRepo.FindByID(ctx, tenantID, jobID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, budget.ErrJobNotFound
		}
		return nil, err
	}

	rep, err := s.repRepo.FindByID(ctx, tenantID, j.RepresentativeID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, commission.ErrRepNotFound
		}
		return nil, err
	}

	contractValue, err := s.contractValue(ctx, tenantID, jobID)
	if err != nil {
		return nil, err
	}

	totals, err := s.costEventRepo.SumByJob(ctx, tenantID, jobID)
	if err != nil {
		return nil, err
	}
	totalCosts := decimal.Zero
	for _, t := range totals {
		totalCosts = totalCosts.Add(t.Total)
	}

	plan, err := s.ResolveActivePlan(ctx, tenantID, rep.ID)
	if err != nil {
		return nil, err
	}

	fin := commission.Financials{
		ContractValue: contractValue,
		TotalCosts:    totalCosts,
		OverheadRate:  rep.OverheadRate,
	}
	result, err := commission.Calculate(jobID, rep.ID, plan, fin)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// contractValue prefers the synced invoice total over the live budget's
// sell price. A job with no budget yet falls back to its estimate's
// selling price.
func (s *CommissionService) contractValue(ctx context.Context, tenantID, jobID uuid.UUID) (decimal.Decimal, error) {
	mirror, err := s.mirrorRepo.FindByJob(ctx, tenantID, jobID)
	if err == nil {
		return mirror.TotalAmount, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return decimal.Zero, err
	}

	capout, err := s.versionRepo.FindByJobAndKind(ctx, tenantID, jobID, budget.VersionCapout)
	if err == nil {
		return capout.Summary.SellPrice, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return decimal.Zero, err
	}
	return s.estimateSellPrice(ctx, tenantID, jobID)
}

// estimateSellPrice derives the contract value for a pre-approval job from
// its estimate lines, preferring an approved estimate over drafts. A job
// with neither a budget nor an estimate has no contract value.
func (s *CommissionService) estimateSellPrice(ctx context.Context, tenantID, jobID uuid.UUID) (decimal.Decimal, error) {
	estimates, err := s.estimateRepo.FindByJob(ctx, tenantID, jobID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return decimal.Zero, err
	}
	if len(estimates) == 0 {
		return decimal.Zero, budget.ErrJobNotFound
	}

	est := estimates[0]
	for _, e := range estimates {
		if e.Status == job.EstimateApproved {
			est = e
			break
		}
	}

	sell := decimal.Zero
	for _, li := range est.Lines {
		sell = sell.Add(li.ExtendedSell())
	}
	return sell, nil
}
