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

// GormInvoiceMirrorRepository implements budget.InvoiceMirrorRepository using GORM
type GormInvoiceMirrorRepository struct {
	db *gorm.DB
}

// NewGormInvoiceMirrorRepository creates a new GormInvoiceMirrorRepository
func NewGormInvoiceMirrorRepository(db *gorm.DB) *GormInvoiceMirrorRepository {
	return &GormInvoiceMirrorRepository{db: db}
}

// Save creates an invoice mirror
func (r *GormInvoiceMirrorRepository) Save(ctx context.Context, mirror *budget.InvoiceMirror) error {
	model := models.InvoiceMirrorModelFromDomain(mirror)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing invoice mirror
func (r *GormInvoiceMirrorRepository) Update(ctx context.Context, mirror *budget.InvoiceMirror) error {
	model := models.InvoiceMirrorModelFromDomain(mirror)
	result := r.db.WithContext(ctx).
		Model(&models.InvoiceMirrorModel{}).
		Where("tenant_id = ? AND id = ?", mirror.TenantID, mirror.ID).
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByJob finds the job's invoice mirror, at most one per job
func (r *GormInvoiceMirrorRepository) FindByJob(ctx context.Context, tenantID, jobID uuid.UUID) (*budget.InvoiceMirror, error) {
	var model models.InvoiceMirrorModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND job_id = ?", tenantID, jobID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

var _ budget.InvoiceMirrorRepository = (*GormInvoiceMirrorRepository)(nil)
