package budget

import (
	"time"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/budget"
	"github.com/shopspring/decimal"
)

// CreateBaselineRequest asks for the PRECAP/CAPOUT pair of a job to be
// created from its approved estimate
type CreateBaselineRequest struct {
	JobID      uuid.UUID `json:"job_id" binding:"required"`
	EstimateID uuid.UUID `json:"estimate_id" binding:"required"`
}

// BudgetVersionResponse represents one budget version in API responses
type BudgetVersionResponse struct {
	ID         uuid.UUID          `json:"id"`
	JobID      uuid.UUID          `json:"job_id"`
	EstimateID *uuid.UUID         `json:"estimate_id,omitempty"`
	Kind       budget.VersionKind `json:"kind"`
	Locked     bool               `json:"locked"`
	Summary    budget.Summary     `json:"summary"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// BaselineResponse carries the freshly created version pair
type BaselineResponse struct {
	Precap BudgetVersionResponse `json:"precap"`
	Capout BudgetVersionResponse `json:"capout"`
}

// RecordCostEventRequest records one outlay against a job
type RecordCostEventRequest struct {
	JobID       uuid.UUID       `json:"job_id" binding:"required"`
	Kind        string          `json:"kind" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	Vendor      string          `json:"vendor"`
	ExternalRef string          `json:"external_ref"`
	IncurredAt  *time.Time      `json:"incurred_at"`
}

// UpdateCostEventRequest revises a recorded outlay
type UpdateCostEventRequest struct {
	Kind        string          `json:"kind" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	Vendor      string          `json:"vendor"`
	ExternalRef string          `json:"external_ref"`
	IncurredAt  *time.Time      `json:"incurred_at"`
}

// CostEventResponse represents one ledger entry in API responses
type CostEventResponse struct {
	ID          uuid.UUID       `json:"id"`
	JobID       uuid.UUID       `json:"job_id"`
	Kind        budget.CostKind `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Vendor      string          `json:"vendor,omitempty"`
	ExternalRef string          `json:"external_ref,omitempty"`
	IncurredAt  time.Time       `json:"incurred_at"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CostEventListFilter represents filter options for the ledger list
type CostEventListFilter struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// SyncInvoiceRequest applies one pulled invoice snapshot to a job's mirror
type SyncInvoiceRequest struct {
	JobID             uuid.UUID       `json:"job_id" binding:"required"`
	ExternalInvoiceID string          `json:"external_invoice_id" binding:"required"`
	TotalAmount       decimal.Decimal `json:"total_amount" binding:"required"`
	Balance           decimal.Decimal `json:"balance"`
	Status            string          `json:"status"`
}

// InvoiceMirrorResponse represents the mirror in API responses
type InvoiceMirrorResponse struct {
	ID                uuid.UUID       `json:"id"`
	JobID             uuid.UUID       `json:"job_id"`
	ExternalInvoiceID string          `json:"external_invoice_id"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	Balance           decimal.Decimal `json:"balance"`
	Status            string          `json:"status,omitempty"`
	SyncedAt          time.Time       `json:"synced_at"`
}

func toVersionResponse(v *budget.BudgetVersion) BudgetVersionResponse {
	return BudgetVersionResponse{
		ID:         v.ID,
		JobID:      v.JobID,
		EstimateID: v.EstimateID,
		Kind:       v.Kind,
		Locked:     v.Locked,
		Summary:    v.Summary,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

func toCostEventResponse(e *budget.CostEvent) CostEventResponse {
	return CostEventResponse{
		ID:          e.ID,
		JobID:       e.JobID,
		Kind:        e.Kind,
		Amount:      e.Amount,
		Description: e.Description,
		Vendor:      e.Vendor,
		ExternalRef: e.ExternalRef,
		IncurredAt:  e.IncurredAt,
		CreatedAt:   e.CreatedAt,
	}
}

func toMirrorResponse(m *budget.InvoiceMirror) InvoiceMirrorResponse {
	return InvoiceMirrorResponse{
		ID:                m.ID,
		JobID:             m.JobID,
		ExternalInvoiceID: m.ExternalInvoiceID,
		TotalAmount:       m.TotalAmount,
		Balance:           m.Balance,
		Status:            m.Status,
		SyncedAt:          m.SyncedAt,
	}
}
