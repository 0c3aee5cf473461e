package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/commission"
	"github.com/roofline/backend/internal/domain/identity"
	"github.com/roofline/backend/internal/domain/job"
	"github.com/roofline/backend/internal/domain/shared"
)

// JobService handles job and estimate management up to the point of
// approval; baseline capture itself lives with the budget service.
type JobService struct {
	jobRepo        job.JobRepository
	estimateRepo   job.EstimateRepository
	repRepo        identity.RepresentativeRepository
	eventPublisher shared.EventPublisher
}

// NewJobService creates a new JobService
func NewJobService(jobRepo job.JobRepository, estimateRepo job.EstimateRepository, repRepo identity.RepresentativeRepository) *JobService {
	return &JobService{
		jobRepo:      jobRepo,
		estimateRepo: estimateRepo,
		repRepo:      repRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *JobService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *JobService) publishDomainEvents(ctx context.Context, agg shared.AggregateRoot) {
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

// CreateJob creates a draft job for a representative
func (s *JobService) CreateJob(ctx context.Context, tenantID uuid.UUID, req CreateJobRequest) (*JobResponse, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}

	if _, err := s.repRepo.FindByID(ctx, tenantID, req.RepresentativeID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, commission.ErrRepNotFound
		}
		return nil, err
	}

	j, err := job.NewJob(tenantID, req.Name, req.CustomerName, req.Address, req.RepresentativeID)
	if err != nil {
		return nil, err
	}
	if err := s.jobRepo.Save(ctx, j); err != nil {
		return nil, err
	}
	s.publishDomainEvents(ctx, j)

	resp := toJobResponse(j)
	return &resp, nil
}

// GetJob returns one job
func (s *JobService) GetJob(ctx context.Context, tenantID, jobID uuid.UUID) (*JobResponse, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}

	j, err := s.jobRepo.FindByID(ctx, tenantID, jobID)
	if err != nil {
		return nil, err
	}
	resp := toJobResponse(j)
	return &resp, nil
}

// ListJobs returns one page of the tenant's jobs
func (s *JobService) ListJobs(ctx context.Context, tenantID uuid.UUID, filter JobListFilter) ([]JobResponse, int64, error) {
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

	page, err := s.jobRepo.List(ctx, tenantID, f)
	if err != nil {
		return nil, 0, err
	}
	out := make([]JobResponse, 0, len(page.Items))
	for _, j := range page.Items {
		out = append(out, toJobResponse(j))
	}
	return out, page.Total, nil
}

// CreateEstimate drafts an estimate for a job
func (s *JobService) CreateEstimate(ctx context.Context, tenantID uuid.UUID, req CreateEstimateRequest) (*EstimateResponse, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}

	j, err := s.jobRepo.FindByID(ctx, tenantID, req.JobID)
	if err != nil {
		return nil, err
	}

	estimate, err := job.NewEstimate(tenantID, j.ID, toLineItems(req.Lines), req.Overhead, req.CommissionAllowance, req.Misc)
	if err != nil {
		return nil, err
	}
	if err := s.estimateRepo.Save(ctx, estimate); err != nil {
		return nil, err
	}
	s.publishDomainEvents(ctx, estimate)

	resp := toEstimateResponse(estimate)
	return &resp, nil
}

// GetEstimate returns one estimate
func (s *JobService) GetEstimate(ctx context.Context, tenantID, estimateID uuid.UUID) (*EstimateResponse, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}

	estimate, err := s.estimateRepo.FindByID(ctx, tenantID, estimateID)
	if err != nil {
		return nil, err
	}
	resp := toEstimateResponse(estimate)
	return &resp, nil
}
