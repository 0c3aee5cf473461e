package budget

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/budget"
	"github.com/roofline/backend/internal/domain/shared"
)

// InvoiceSyncService applies pulled invoice snapshots to the local mirror.
// The external invoicing system is authoritative: each pull overwrites the
// mirror wholesale and the live budget is refreshed against the new total.
type InvoiceSyncService struct {
	mirrorRepo     budget.InvoiceMirrorRepository
	budgetService  *BudgetService
	eventPublisher shared.EventPublisher
}

// NewInvoiceSyncService creates a new InvoiceSyncService
func NewInvoiceSyncService(mirrorRepo budget.InvoiceMirrorRepository, budgetService *BudgetService) *InvoiceSyncService {
	return &InvoiceSyncService{
		mirrorRepo:    mirrorRepo,
		budgetService: budgetService,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *InvoiceSyncService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *InvoiceSyncService) publishDomainEvents(ctx context.Context, agg shared.AggregateRoot) {
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

// Pull upserts the job's mirror from one pulled snapshot, last writer wins,
// then refreshes the live summary so the new total takes effect immediately.
func (s *InvoiceSyncService) Pull(ctx context.Context, tenantID uuid.UUID, req SyncInvoiceRequest) (*InvoiceMirrorResponse, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}

	mirror, err := s.mirrorRepo.FindByJob(ctx, tenantID, req.JobID)
	switch {
	case err == nil:
		if err := mirror.ApplyPull(req.ExternalInvoiceID, req.TotalAmount, req.Balance, req.Status); err != nil {
			return nil, err
		}
		if err := s.mirrorRepo.Update(ctx, mirror); err != nil {
			return nil, err
		}
	case errors.Is(err, shared.ErrNotFound):
		mirror, err = budget.NewInvoiceMirror(tenantID, req.JobID, req.ExternalInvoiceID, req.TotalAmount, req.Balance, req.Status)
		if err != nil {
			return nil, err
		}
		if err := s.mirrorRepo.Save(ctx, mirror); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	s.publishDomainEvents(ctx, mirror)

	if _, err := s.budgetService.RefreshCapout(ctx, tenantID, req.JobID); err != nil {
		// A mirror can arrive before the job is approved; nothing to refresh yet
		if !errors.Is(err, budget.ErrJobNotFound) {
			return nil, err
		}
	}

	resp := toMirrorResponse(mirror)
	return &resp, nil
}

// Get returns the job's mirror when one exists
func (s *InvoiceSyncService) Get(ctx context.Context, tenantID, jobID uuid.UUID) (*InvoiceMirrorResponse, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}

	mirror, err := s.mirrorRepo.FindByJob(ctx, tenantID, jobID)
	if err != nil {
		return nil, err
	}
	resp := toMirrorResponse(mirror)
	return &resp, nil
}
