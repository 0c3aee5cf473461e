package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/commission"
	"github.com/roofline/backend/internal/domain/shared"
	"github.com/roofline/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPlanRepository implements commission.PlanRepository using GORM
type GormPlanRepository struct {
	db *gorm.DB
}

// NewGormPlanRepository creates a new GormPlanRepository
func NewGormPlanRepository(db *gorm.DB) *GormPlanRepository {
	return &GormPlanRepository{db: db}
}

// Save creates a commission plan
func (r *GormPlanRepository) Save(ctx context.Context, plan *commission.Plan) error {
	model := models.CommissionPlanModelFromDomain(plan)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing commission plan
func (r *GormPlanRepository) Update(ctx context.Context, plan *commission.Plan) error {
	model := models.CommissionPlanModelFromDomain(plan)
	result := r.db.WithContext(ctx).
		Model(&models.CommissionPlanModel{}).
		Where("tenant_id = ? AND id = ?", plan.TenantID, plan.ID).
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a commission plan by ID within a tenant
func (r *GormPlanRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*commission.Plan, error) {
	var model models.CommissionPlanModel
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

// List returns a page of commission plans for the tenant
func (r *GormPlanRepository) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[*commission.Plan], error) {
	base := r.db.WithContext(ctx).
		Model(&models.CommissionPlanModel{}).
		Where("tenant_id = ?", tenantID)
	if filter.Search != "" {
		base = base.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return shared.Paginated[*commission.Plan]{}, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	orderBy := ValidateSortField(filter.OrderBy, PlanSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)

	var planModels []models.CommissionPlanModel
	if err := base.
		Order(orderBy + " " + orderDir).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&planModels).Error; err != nil {
		return shared.Paginated[*commission.Plan]{}, err
	}

	plans := make([]*commission.Plan, len(planModels))
	for i := range planModels {
		plans[i] = planModels[i].ToDomain()
	}
	return shared.NewPaginated(plans, total, page, pageSize), nil
}

var _ commission.PlanRepository = (*GormPlanRepository)(nil)
