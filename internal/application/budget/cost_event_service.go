package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/budget"
	"github.com/roofline/backend/internal/domain/shared"
)

// CostEventService maintains the cost ledger. Every write triggers a
// synchronous CAPOUT refresh so the live summary never lags the ledger.
// The ledger write itself is never rolled back when the refresh fails; the
// ledger is the source of truth and a later refresh will catch up.
type CostEventService struct {
	costEventRepo  budget.CostEventRepository
	budgetService  *BudgetService
	eventPublisher shared.EventPublisher
}

// NewCostEventService creates a new CostEventService
func NewCostEventService(costEventRepo budget.CostEventRepository, budgetService *BudgetService) *CostEventService {
	return &CostEventService{
		costEventRepo: costEventRepo,
		budgetService: budgetService,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *CostEventService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *CostEventService) publishDomainEvents(ctx context.Context, agg shared.AggregateRoot) {
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

func (s *CostEventService) refresh(ctx context.Context, tenantID, jobID uuid.UUID) error {
	if _, err := s.budgetService.RefreshCapout(ctx, tenantID, jobID); err != nil {
		// Versions may not exist yet when costs land before approval
		if errors.Is(err, budget.ErrJobNotFound) {
			return nil
		}
		return fmt.Errorf("refresh live budget: %w", err)
	}
	return nil
}

// Record appends one outlay to the ledger and refreshes the live summary
func (s *CostEventService) Record(ctx context.Context, tenantID uuid.UUID, req RecordCostEventRequest) (*CostEventResponse, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}

	kind, ok := budget.ParseCostKind(req.Kind)
	if !ok {
		return nil, shared.NewDomainError("INVALID_COST_KIND", "Cost kind must be material, labor or other")
	}
	incurredAt := time.Time{}
	if req.IncurredAt != nil {
		incurredAt = *req.IncurredAt
	}

	details := budget.CostEventDetails{
		Description: req.Description,
		Vendor:      req.Vendor,
		ExternalRef: req.ExternalRef,
	}
	event, err := budget.NewCostEvent(tenantID, req.JobID, kind, req.Amount, details, incurredAt)
	if err != nil {
		return nil, err
	}
	if err := s.costEventRepo.Save(ctx, event); err != nil {
		return nil, err
	}
	s.publishDomainEvents(ctx, event)

	if err := s.refresh(ctx, tenantID, event.JobID); err != nil {
		return nil, err
	}

	resp := toCostEventResponse(event)
	return &resp, nil
}

// Update revises a ledger entry and refreshes the live summary
func (s *CostEventService) Update(ctx context.Context, tenantID, eventID uuid.UUID, req UpdateCostEventRequest) (*CostEventResponse, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}

	event, err := s.costEventRepo.FindByID(ctx, tenantID, eventID)
	if err != nil {
		return nil, err
	}

	kind, ok := budget.ParseCostKind(req.Kind)
	if !ok {
		return nil, shared.NewDomainError("INVALID_COST_KIND", "Cost kind must be material, labor or other")
	}
	incurredAt := time.Time{}
	if req.IncurredAt != nil {
		incurredAt = *req.IncurredAt
	}

	details := budget.CostEventDetails{
		Description: req.Description,
		Vendor:      req.Vendor,
		ExternalRef: req.ExternalRef,
	}
	if err := event.Update(kind, req.Amount, details, incurredAt); err != nil {
		return nil, err
	}
	if err := s.costEventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	s.publishDomainEvents(ctx, event)

	if err := s.refresh(ctx, tenantID, event.JobID); err != nil {
		return nil, err
	}

	resp := toCostEventResponse(event)
	return &resp, nil
}

// Delete removes a ledger entry and refreshes the live summary
func (s *CostEventService) Delete(ctx context.Context, tenantID, eventID uuid.UUID) error {
	if tenantID == uuid.Nil {
		return shared.ErrUnauthorized
	}

	event, err := s.costEventRepo.FindByID(ctx, tenantID, eventID)
	if err != nil {
		return err
	}
	if err := s.costEventRepo.Delete(ctx, tenantID, eventID); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, budget.NewCostEventDeletedEvent(event))
	}

	return s.refresh(ctx, tenantID, event.JobID)
}

// List returns one page of the job's ledger
func (s *CostEventService) List(ctx context.Context, tenantID, jobID uuid.UUID, filter CostEventListFilter) ([]CostEventResponse, int64, error) {
	if tenantID == uuid.Nil {
		return nil, 0, shared.ErrUnauthorized
	}

	f := shared.DefaultFilter()
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

	page, err := s.costEventRepo.List(ctx, tenantID, jobID, f)
	if err != nil {
		return nil, 0, err
	}
	out := make([]CostEventResponse, 0, len(page.Items))
	for _, e := range page.Items {
		out = append(out, toCostEventResponse(e))
	}
	return out, page.Total, nil
}
