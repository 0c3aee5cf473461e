package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/identity"
	"github.com/roofline/backend/internal/domain/shared"
	"github.com/roofline/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormRepresentativeRepository implements identity.RepresentativeRepository using GORM
type GormRepresentativeRepository struct {
	db *gorm.DB
}

// NewGormRepresentativeRepository creates a new GormRepresentativeRepository
func NewGormRepresentativeRepository(db *gorm.DB) *GormRepresentativeRepository {
	return &GormRepresentativeRepository{db: db}
}

// Save creates a representative
func (r *GormRepresentativeRepository) Save(ctx context.Context, rep *identity.Representative) error {
	model := models.RepresentativeModelFromDomain(rep)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing representative
func (r *GormRepresentativeRepository) Update(ctx context.Context, rep *identity.Representative) error {
	model := models.RepresentativeModelFromDomain(rep)
	result := r.db.WithContext(ctx).
		Model(&models.RepresentativeModel{}).
		Where("tenant_id = ? AND id = ?", rep.TenantID, rep.ID).
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a representative by ID within a tenant
func (r *GormRepresentativeRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*identity.Representative, error) {
	var model models.RepresentativeModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns a page of the tenant's representatives
func (r *GormRepresentativeRepository) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[*identity.Representative], error) {
	base := r.db.WithContext(ctx).
		Model(&models.RepresentativeModel{}).
		Where("tenant_id = ?", tenantID)
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		base = base.Where("name ILIKE ? OR email ILIKE ?", search, search)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return shared.Paginated[*identity.Representative]{}, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	orderBy := ValidateSortField(filter.OrderBy, RepresentativeSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)

	var repModels []models.RepresentativeModel
	if err := base.
		Order(orderBy + " " + orderDir).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&repModels).Error; err != nil {
		return shared.Paginated[*identity.Representative]{}, err
	}

	reps := make([]*identity.Representative, len(repModels))
	for i := range repModels {
		reps[i] = repModels[i].ToDomain()
	}
	return shared.NewPaginated(reps, total, page, pageSize), nil
}

var _ identity.RepresentativeRepository = (*GormRepresentativeRepository)(nil)
