package budget

import (
	"github.com/roofline/backend/internal/domain/shared"
)

// Event type constants for the budget domain
const (
	EventBudgetVersionCreated = "budget.version.created"
	EventBudgetRefreshed      = "budget.refreshed"
	EventCostEventRecorded    = "budget.cost_event.recorded"
	EventCostEventUpdated     = "budget.cost_event.updated"
	EventCostEventDeleted     = "budget.cost_event.deleted"
	EventInvoiceMirrorSynced  = "budget.invoice_mirror.synced"
)

// BudgetVersionCreatedEvent is raised when a PRECAP or CAPOUT is created
type BudgetVersionCreatedEvent struct {
	shared.BaseDomainEvent
	JobID     string      `json:"job_id"`
	Kind      VersionKind `json:"kind"`
	SellPrice string      `json:"sell_price"`
}

// NewBudgetVersionCreatedEvent creates a BudgetVersionCreatedEvent
func NewBudgetVersionCreatedEvent(v *BudgetVersion) *BudgetVersionCreatedEvent {
	return &BudgetVersionCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventBudgetVersionCreated, "BudgetVersion", v.ID, v.TenantID),
		JobID:           v.JobID.String(),
		Kind:            v.Kind,
		SellPrice:       v.Summary.SellPrice.String(),
	}
}

// BudgetRefreshedEvent is raised when a CAPOUT summary is recomputed
type BudgetRefreshedEvent struct {
	shared.BaseDomainEvent
	JobID  string `json:"job_id"`
	Profit string `json:"profit"`
}

// NewBudgetRefreshedEvent creates a BudgetRefreshedEvent
func NewBudgetRefreshedEvent(v *BudgetVersion) *BudgetRefreshedEvent {
	return &BudgetRefreshedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventBudgetRefreshed, "BudgetVersion", v.ID, v.TenantID),
		JobID:           v.JobID.String(),
		Profit:          v.Summary.Profit.String(),
	}
}

// CostEventRecordedEvent is raised when an outlay enters the ledger
type CostEventRecordedEvent struct {
	shared.BaseDomainEvent
	JobID  string   `json:"job_id"`
	Kind   CostKind `json:"kind"`
	Amount string   `json:"amount"`
}

// NewCostEventRecordedEvent creates a CostEventRecordedEvent
func NewCostEventRecordedEvent(e *CostEvent) *CostEventRecordedEvent {
	return &CostEventRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventCostEventRecorded, "CostEvent", e.ID, e.TenantID),
		JobID:           e.JobID.String(),
		Kind:            e.Kind,
		Amount:          e.Amount.String(),
	}
}

// CostEventUpdatedEvent is raised when a ledger entry is revised
type CostEventUpdatedEvent struct {
	shared.BaseDomainEvent
	JobID  string   `json:"job_id"`
	Kind   CostKind `json:"kind"`
	Amount string   `json:"amount"`
}

// NewCostEventUpdatedEvent creates a CostEventUpdatedEvent
func NewCostEventUpdatedEvent(e *CostEvent) *CostEventUpdatedEvent {
	return &CostEventUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventCostEventUpdated, "CostEvent", e.ID, e.TenantID),
		JobID:           e.JobID.String(),
		Kind:            e.Kind,
		Amount:          e.Amount.String(),
	}
}

// CostEventDeletedEvent is raised when a ledger entry is removed
type CostEventDeletedEvent struct {
	shared.BaseDomainEvent
	JobID string `json:"job_id"`
}

// NewCostEventDeletedEvent creates a CostEventDeletedEvent
func NewCostEventDeletedEvent(e *CostEvent) *CostEventDeletedEvent {
	return &CostEventDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventCostEventDeleted, "CostEvent", e.ID, e.TenantID),
		JobID:           e.JobID.String(),
	}
}

// InvoiceMirrorSyncedEvent is raised after a pull from the invoicing system
type InvoiceMirrorSyncedEvent struct {
	shared.BaseDomainEvent
	JobID             string `json:"job_id"`
	ExternalInvoiceID string `json:"external_invoice_id"`
	TotalAmount       string `json:"total_amount"`
}

// NewInvoiceMirrorSyncedEvent creates an InvoiceMirrorSyncedEvent
func NewInvoiceMirrorSyncedEvent(m *InvoiceMirror) *InvoiceMirrorSyncedEvent {
	return &InvoiceMirrorSyncedEvent{
		BaseDomainEvent:   shared.NewBaseDomainEvent(EventInvoiceMirrorSynced, "InvoiceMirror", m.ID, m.TenantID),
		JobID:             m.JobID.String(),
		ExternalInvoiceID: m.ExternalInvoiceID,
		TotalAmount:       m.TotalAmount.String(),
	}
}
