package job

import (
	"time"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/budget"
	"github.com/roofline/backend/internal/domain/job"
	"github.com/shopspring/decimal"
)

// CreateJobRequest creates a draft job
type CreateJobRequest struct {
	Name             string    `json:"name" binding:"required"`
	CustomerName     string    `json:"customer_name"`
	Address          string    `json:"address"`
	RepresentativeID uuid.UUID `json:"representative_id" binding:"required"`
}

// JobResponse represents a job in API responses
type JobResponse struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	CustomerName     string     `json:"customer_name,omitempty"`
	Address          string     `json:"address,omitempty"`
	RepresentativeID uuid.UUID  `json:"representative_id"`
	Status           job.Status `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// LineItemRequest is one priced line in an estimate request
type LineItemRequest struct {
	Kind          string           `json:"kind" binding:"required"`
	Description   string           `json:"description"`
	Quantity      decimal.Decimal  `json:"quantity" binding:"required"`
	UnitPrice     decimal.Decimal  `json:"unit_price" binding:"required"`
	UnitCost      *decimal.Decimal `json:"unit_cost"`
	MarkupPercent *decimal.Decimal `json:"markup_percent"`
	MarkupFixed   *decimal.Decimal `json:"markup_fixed"`
}

// CreateEstimateRequest drafts an estimate for a job
type CreateEstimateRequest struct {
	JobID               uuid.UUID         `json:"job_id" binding:"required"`
	Lines               []LineItemRequest `json:"lines" binding:"required,dive"`
	Overhead            decimal.Decimal   `json:"overhead"`
	CommissionAllowance decimal.Decimal   `json:"commission_allowance"`
	Misc                decimal.Decimal   `json:"misc"`
}

// EstimateResponse represents an estimate in API responses
type EstimateResponse struct {
	ID                  uuid.UUID          `json:"id"`
	JobID               uuid.UUID          `json:"job_id"`
	Lines               budget.LineItems   `json:"lines"`
	Overhead            decimal.Decimal    `json:"overhead"`
	CommissionAllowance decimal.Decimal    `json:"commission_allowance"`
	Misc                decimal.Decimal    `json:"misc"`
	Status              job.EstimateStatus `json:"status"`
	CreatedAt           time.Time          `json:"created_at"`
}

// JobListFilter represents filter options for the job list
type JobListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

func toJobResponse(j *job.Job) JobResponse {
	return JobResponse{
		ID:               j.ID,
		Name:             j.Name,
		CustomerName:     j.CustomerName,
		Address:          j.Address,
		RepresentativeID: j.RepresentativeID,
		Status:           j.Status,
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        j.UpdatedAt,
	}
}

func toEstimateResponse(e *job.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:                  e.ID,
		JobID:               e.JobID,
		Lines:               e.Lines,
		Overhead:            e.Overhead,
		CommissionAllowance: e.CommissionAllowance,
		Misc:                e.Misc,
		Status:              e.Status,
		CreatedAt:           e.CreatedAt,
	}
}

func toLineItems(reqs []LineItemRequest) budget.LineItems {
	lines := make(budget.LineItems, 0, len(reqs))
	for _, r := range reqs {
		lines = append(lines, budget.LineItem{
			Kind:          budget.CostKind(r.Kind),
			Description:   r.Description,
			Quantity:      r.Quantity,
			UnitPrice:     r.UnitPrice,
			UnitCost:      r.UnitCost,
			MarkupPercent: r.MarkupPercent,
			MarkupFixed:   r.MarkupFixed,
		})
	}
	return lines
}
