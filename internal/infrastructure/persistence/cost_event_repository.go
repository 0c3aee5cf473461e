package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/budget"
	"github.com/roofline/backend/internal/domain/shared"
	"github.com/roofline/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormCostEventRepository implements budget.CostEventRepository using GORM
type GormCostEventRepository struct {
	db *gorm.DB
}

// NewGormCostEventRepository creates a new GormCostEventRepository
func NewGormCostEventRepository(db *gorm.DB) *GormCostEventRepository {
	return &GormCostEventRepository{db: db}
}

// Save creates a cost event
func (r *GormCostEventRepository) Save(ctx context.Context, event *budget.CostEvent) error {
	model := models.CostEventModelFromDomain(event)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing cost event
func (r *GormCostEventRepository) Update(ctx context.Context, event *budget.CostEvent) error {
	model := models.CostEventModelFromDomain(event)
	result := r.db.WithContext(ctx).
		Model(&models.CostEventModel{}).
		Where("tenant_id = ? AND id = ?", event.TenantID, event.ID).
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a cost event
func (r *GormCostEventRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&models.CostEventModel{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a cost event by ID within a tenant
func (r *GormCostEventRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*budget.CostEvent, error) {
	var model models.CostEventModel
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

// FindByJob returns the full ledger for a job
func (r *GormCostEventRepository) FindByJob(ctx context.Context, tenantID, jobID uuid.UUID) ([]*budget.CostEvent, error) {
	var eventModels []models.CostEventModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND job_id = ?", tenantID, jobID).
		Order("incurred_at ASC").
		Find(&eventModels).Error; err != nil {
		return nil, err
	}

	events := make([]*budget.CostEvent, len(eventModels))
	for i := range eventModels {
		events[i] = eventModels[i].ToDomain()
	}
	return events, nil
}

// List returns a page of the job's ledger
func (r *GormCostEventRepository) List(ctx context.Context, tenantID, jobID uuid.UUID, filter shared.Filter) (shared.Paginated[*budget.CostEvent], error) {
	base := r.db.WithContext(ctx).
		Model(&models.CostEventModel{}).
		Where("tenant_id = ? AND job_id = ?", tenantID, jobID)
	if filter.Search != "" {
		base = base.Where("description ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return shared.Paginated[*budget.CostEvent]{}, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	orderBy := ValidateSortField(filter.OrderBy, CostEventSortFields, "incurred_at")
	orderDir := ValidateSortOrder(filter.OrderDir)

	var eventModels []models.CostEventModel
	if err := base.
		Order(orderBy + " " + orderDir).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&eventModels).Error; err != nil {
		return shared.Paginated[*budget.CostEvent]{}, err
	}

	events := make([]*budget.CostEvent, len(eventModels))
	for i := range eventModels {
		events[i] = eventModels[i].ToDomain()
	}
	return shared.NewPaginated(events, total, page, pageSize), nil
}

// SumByJob aggregates the job's ledger into per-kind totals
func (r *GormCostEventRepository) SumByJob(ctx context.Context, tenantID, jobID uuid.UUID) ([]budget.CostKindTotal, error) {
	var rows []struct {
		Kind  string
		Total decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&models.CostEventModel{}).
		Select("kind, COALESCE(SUM(amount), 0) AS total").
		Where("tenant_id = ? AND job_id = ?", tenantID, jobID).
		Group("kind").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	totals := make([]budget.CostKindTotal, len(rows))
	for i, row := range rows {
		totals[i] = budget.CostKindTotal{
			Kind:  budget.CostKind(row.Kind),
			Total: row.Total,
		}
	}
	return totals, nil
}

var _ budget.CostEventRepository = (*GormCostEventRepository)(nil)
