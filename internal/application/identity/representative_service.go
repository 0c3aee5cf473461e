package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/identity"
	"github.com/roofline/backend/internal/domain/shared"
)

// RepresentativeService manages sales representatives
type RepresentativeService struct {
	repRepo identity.RepresentativeRepository
}

// NewRepresentativeService creates a new RepresentativeService
func NewRepresentativeService(repRepo identity.RepresentativeRepository) *RepresentativeService {
	return &RepresentativeService{repRepo: repRepo}
}

// Create adds a representative
func (s *RepresentativeService) Create(ctx context.Context, tenantID uuid.UUID, req CreateRepresentativeRequest) (*RepresentativeResponse, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}

	rep, err := identity.NewRepresentative(tenantID, req.Name, req.Email, req.OverheadRate)
	if err != nil {
		return nil, err
	}
	if err := s.repRepo.Save(ctx, rep); err != nil {
		return nil, err
	}

	resp := toRepResponse(rep)
	return &resp, nil
}

// Get returns one representative
func (s *RepresentativeService) Get(ctx context.Context, tenantID, repID uuid.UUID) (*RepresentativeResponse, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}

	rep, err := s.repRepo.FindByID(ctx, tenantID, repID)
	if err != nil {
		return nil, err
	}
	resp := toRepResponse(rep)
	return &resp, nil
}

// List returns one page of the tenant's representatives
func (s *RepresentativeService) List(ctx context.Context, tenantID uuid.UUID, filter RepListFilter) ([]RepresentativeResponse, int64, error) {
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

	page, err := s.repRepo.List(ctx, tenantID, f)
	if err != nil {
		return nil, 0, err
	}
	out := make([]RepresentativeResponse, 0, len(page.Items))
	for _, r := range page.Items {
		out = append(out, toRepResponse(r))
	}
	return out, page.Total, nil
}

// UpdateOverheadRate changes a rep's overhead share going forward
func (s *RepresentativeService) UpdateOverheadRate(ctx context.Context, tenantID, repID uuid.UUID, req UpdateOverheadRateRequest) (*RepresentativeResponse, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}

	rep, err := s.repRepo.FindByID(ctx, tenantID, repID)
	if err != nil {
		return nil, err
	}
	if err := rep.SetOverheadRate(req.OverheadRate); err != nil {
		return nil, err
	}
	if err := s.repRepo.Update(ctx, rep); err != nil {
		return nil, err
	}

	resp := toRepResponse(rep)
	return &resp, nil
}
