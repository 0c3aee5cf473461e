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

// GormEstimateRepository implements job.EstimateRepository using GORM
type GormEstimateRepository struct {
	db *gorm.DB
}

// NewGormEstimateRepository creates a new GormEstimateRepository
func NewGormEstimateRepository(db *gorm.DB) *GormEstimateRepository {
	return &GormEstimateRepository{db: db}
}

// Save creates an estimate
func (r *GormEstimateRepository) Save(ctx context.Context, estimate *job.Estimate) error {
	model := models.EstimateModelFromDomain(estimate)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing estimate
func (r *GormEstimateRepository) Update(ctx context.Context, estimate *job.Estimate) error {
	model := models.EstimateModelFromDomain(estimate)
	result := r.db.WithContext(ctx).
		Model(&models.EstimateModel{}).
		Where("tenant_id = ? AND id = ?", estimate.TenantID, estimate.ID).
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an estimate by ID within a tenant
func (r *GormEstimateRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*job.Estimate, error) {
	var model models.EstimateModel
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

// FindByJob finds the job's estimates
func (r *GormEstimateRepository) FindByJob(ctx context.Context, tenantID, jobID uuid.UUID) ([]*job.Estimate, error) {
	var estimateModels []models.EstimateModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND job_id = ?", tenantID, jobID).
		Find(&estimateModels).Error; err != nil {
		return nil, err
	}

	estimates := make([]*job.Estimate, len(estimateModels))
	for i := range estimateModels {
		estimates[i] = estimateModels[i].ToDomain()
	}
	return estimates, nil
}

var _ job.EstimateRepository = (*GormEstimateRepository)(nil)
