package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/job"
	"github.com/roofline/backend/internal/domain/shared"
	"github.com/roofline/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormJobRepository implements job.JobRepository using GORM
type GormJobRepository struct {
	db *gorm.DB
}

// NewGormJobRepository creates a new GormJobRepository
func NewGormJobRepository(db *gorm.DB) *GormJobRepository {
	return &GormJobRepository{db: db}
}

// Save creates a job
func (r *GormJobRepository) Save(ctx context.Context, j *job.Job) error {
	model := models.JobModelFromDomain(j)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing job
func (r *GormJobRepository) Update(ctx context.Context, j *job.Job) error {
	model := models.JobModelFromDomain(j)
	result := r.db.WithContext(ctx).
		Model(&models.JobModel{}).
		Where("tenant_id = ? AND id = ?", j.TenantID, j.ID).
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a job by ID within a tenant
func (r *GormJobRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*job.Job, error) {
	var model models.JobModel
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

// List returns a page of the tenant's jobs
func (r *GormJobRepository) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[*job.Job], error) {
	base := r.db.WithContext(ctx).
		Model(&models.JobModel{}).
		Where("tenant_id = ?", tenantID)
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		base = base.Where("name ILIKE ? OR customer_name ILIKE ?", search, search)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return shared.Paginated[*job.Job]{}, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	orderBy := ValidateSortField(filter.OrderBy, JobSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)

	var jobModels []models.JobModel
	if err := base.
		Order(orderBy + " " + orderDir).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&jobModels).Error; err != nil {
		return shared.Paginated[*job.Job]{}, err
	}

	jobs := make([]*job.Job, len(jobModels))
	for i := range jobModels {
		jobs[i] = jobModels[i].ToDomain()
	}
	return shared.NewPaginated(jobs, total, page, pageSize), nil
}

var _ job.JobRepository = (*GormJobRepository)(nil)
