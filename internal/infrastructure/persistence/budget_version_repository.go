package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/budget"
	"github.com/roofline/backend/internal/domain/shared"
	"github.com/roofline/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormBudgetVersionRepository implements budget.BudgetVersionRepository using GORM
type GormBudgetVersionRepository struct {
	db *gorm.DB
}

// NewGormBudgetVersionRepository creates a new GormBudgetVersionRepository
func NewGormBudgetVersionRepository(db *gorm.DB) *GormBudgetVersionRepository {
	return &GormBudgetVersionRepository{db: db}
}

// Save creates a budget version
func (r *GormBudgetVersionRepository) Save(ctx context.Context, version *budget.BudgetVersion) error {
	model := models.BudgetVersionModelFromDomain(version)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing budget version
func (r *GormBudgetVersionRepository) Update(ctx context.Context, version *budget.BudgetVersion) error {
	model := models.BudgetVersionModelFromDomain(version)
	result := r.db.WithContext(ctx).
		Model(&models.BudgetVersionModel{}).
		Where("tenant_id = ? AND id = ?", version.TenantID, version.ID).
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a budget version by ID within a tenant
func (r *GormBudgetVersionRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*budget.BudgetVersion, error) {
	var model models.BudgetVersionModel
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

// FindByJobAndKind finds the job's version of the given kind
func (r *GormBudgetVersionRepository) FindByJobAndKind(ctx context.Context, tenantID, jobID uuid.UUID, kind budget.VersionKind) (*budget.BudgetVersion, error) {
	var model models.BudgetVersionModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND job_id = ? AND kind = ?", tenantID, jobID, string(kind)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByJob returns all versions for a job
func (r *GormBudgetVersionRepository) FindByJob(ctx context.Context, tenantID, jobID uuid.UUID) ([]*budget.BudgetVersion, error) {
	var versionModels []models.BudgetVersionModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND job_id = ?", tenantID, jobID).
		Order("kind ASC, created_at DESC").
		Find(&versionModels).Error; err != nil {
		return nil, err
	}

	versions := make([]*budget.BudgetVersion, len(versionModels))
	for i := range versionModels {
		versions[i] = versionModels[i].ToDomain()
	}
	return versions, nil
}

// ExistsForJob reports whether any version exists for the job
func (r *GormBudgetVersionRepository) ExistsForJob(ctx context.Context, tenantID, jobID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BudgetVersionModel{}).
		Where("tenant_id = ? AND job_id = ?", tenantID, jobID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

var _ budget.BudgetVersionRepository = (*GormBudgetVersionRepository)(nil)
