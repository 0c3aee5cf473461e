package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/commission"
	"github.com/roofline/backend/internal/domain/shared"
	"github.com/roofline/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAssignmentRepository implements commission.AssignmentRepository using GORM
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewGormAssignmentRepository creates a new GormAssignmentRepository
func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// Save creates a plan assignment
func (r *GormAssignmentRepository) Save(ctx context.Context, assignment *commission.Assignment) error {
	model := models.CommissionAssignmentModelFromDomain(assignment)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing plan assignment
func (r *GormAssignmentRepository) Update(ctx context.Context, assignment *commission.Assignment) error {
	model := models.CommissionAssignmentModelFromDomain(assignment)
	result := r.db.WithContext(ctx).
		Model(&models.CommissionAssignmentModel{}).
		Where("tenant_id = ? AND id = ?", assignment.TenantID, assignment.ID).
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an assignment by ID within a tenant
func (r *GormAssignmentRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*commission.Assignment, error) {
	var model models.CommissionAssignmentModel
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

// FindActiveByRep returns the rep's assignments whose effective window
// covers the given instant, most recently created first.
func (r *GormAssignmentRepository) FindActiveByRep(ctx context.Context, tenantID, repID uuid.UUID, at time.Time) ([]*commission.Assignment, error) {
	var assignmentModels []models.CommissionAssignmentModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND representative_id = ? AND active = ?", tenantID, repID, true).
		Where("effective_from <= ?", at).
		Where("effective_to IS NULL OR effective_to > ?", at).
		Order("created_at DESC").
		Find(&assignmentModels).Error; err != nil {
		return nil, err
	}

	assignments := make([]*commission.Assignment, len(assignmentModels))
	for i := range assignmentModels {
		assignments[i] = assignmentModels[i].ToDomain()
	}
	return assignments, nil
}

// FindByRep returns all assignments ever made for the rep
func (r *GormAssignmentRepository) FindByRep(ctx context.Context, tenantID, repID uuid.UUID) ([]*commission.Assignment, error) {
	var assignmentModels []models.CommissionAssignmentModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND representative_id = ?", tenantID, repID).
		Order("effective_from DESC").
		Find(&assignmentModels).Error; err != nil {
		return nil, err
	}

	assignments := make([]*commission.Assignment, len(assignmentModels))
	for i := range assignmentModels {
		assignments[i] = assignmentModels[i].ToDomain()
	}
	return assignments, nil
}

var _ commission.AssignmentRepository = (*GormAssignmentRepository)(nil)
