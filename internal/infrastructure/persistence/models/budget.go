package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/budget"
	"github.com/shopspring/decimal"
)

// BudgetVersionModel maps budget versions to the budget_versions table.
// Lines and Summary are stored as jsonb documents.
type BudgetVersionModel struct {
	TenantAggregateModel
	JobID      uuid.UUID        `gorm:"type:uuid;not null;index:idx_budget_versions_job"`
	EstimateID *uuid.UUID       `gorm:"type:uuid"`
	Kind       string           `gorm:"type:varchar(10);not null"`
	Locked     bool             `gorm:"not null;default:false"`
	Lines      budget.LineItems `gorm:"type:jsonb"`
	Summary    budget.Summary   `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (BudgetVersionModel) TableName() string {
	return "budget_versions"
}

// ToDomain converts the model to a domain BudgetVersion
func (m *BudgetVersionModel) ToDomain() *budget.BudgetVersion {
	v := &budget.BudgetVersion{
		JobID:      m.JobID,
		EstimateID: m.EstimateID,
		Kind:       budget.VersionKind(m.Kind),
		Locked:     m.Locked,
		Lines:      m.Lines,
		Summary:    m.Summary,
	}
	m.PopulateTenantAggregateRoot(&v.TenantAggregateRoot)
	return v
}

// BudgetVersionModelFromDomain converts a domain BudgetVersion to the model
func BudgetVersionModelFromDomain(v *budget.BudgetVersion) *BudgetVersionModel {
	m := &BudgetVersionModel{
		JobID:      v.JobID,
		EstimateID: v.EstimateID,
		Kind:       string(v.Kind),
		Locked:     v.Locked,
		Lines:      v.Lines,
		Summary:    v.Summary,
	}
	m.FromDomainTenantAggregateRoot(v.TenantAggregateRoot)
	return m
}

// CostEventModel maps cost events to the cost_events table
type CostEventModel struct {
	TenantAggregateModel
	JobID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_cost_events_job"`
	Kind        string          `gorm:"type:varchar(10);not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Description string          `gorm:"type:text"`
	Vendor      string          `gorm:"type:varchar(200)"`
	ExternalRef string          `gorm:"type:varchar(100)"`
	IncurredAt  time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (CostEventModel) TableName() string {
	return "cost_events"
}

// ToDomain converts the model to a domain CostEvent
func (m *CostEventModel) ToDomain() *budget.CostEvent {
	e := &budget.CostEvent{
		JobID:       m.JobID,
		Kind:        budget.CostKind(m.Kind),
		Amount:      m.Amount,
		Description: m.Description,
		Vendor:      m.Vendor,
		ExternalRef: m.ExternalRef,
		IncurredAt:  m.IncurredAt,
	}
	m.PopulateTenantAggregateRoot(&e.TenantAggregateRoot)
	return e
}

// CostEventModelFromDomain converts a domain CostEvent to the model
func CostEventModelFromDomain(e *budget.CostEvent) *CostEventModel {
	m := &CostEventModel{
		JobID:       e.JobID,
		Kind:        string(e.Kind),
		Amount:      e.Amount,
		Description: e.Description,
		Vendor:      e.Vendor,
		ExternalRef: e.ExternalRef,
		IncurredAt:  e.IncurredAt,
	}
	m.FromDomainTenantAggregateRoot(e.TenantAggregateRoot)
	return m
}

// InvoiceMirrorModel maps invoice mirrors to the invoice_mirrors table.
// At most one mirror exists per job.
type InvoiceMirrorModel struct {
	TenantAggregateModel
	JobID             uuid.UUID       `gorm:"type:uuid;not null;index:idx_invoice_mirrors_job"`
	ExternalInvoiceID string          `gorm:"type:varchar(100);not null"`
	TotalAmount       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Balance           decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Status            string          `gorm:"type:varchar(20)"`
	SyncedAt          time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (InvoiceMirrorModel) TableName() string {
	return "invoice_mirrors"
}

// ToDomain converts the model to a domain InvoiceMirror
func (m *InvoiceMirrorModel) ToDomain() *budget.InvoiceMirror {
	mirror := &budget.InvoiceMirror{
		JobID:             m.JobID,
		ExternalInvoiceID: m.ExternalInvoiceID,
		TotalAmount:       m.TotalAmount,
		Balance:           m.Balance,
		Status:            m.Status,
		SyncedAt:          m.SyncedAt,
	}
	m.PopulateTenantAggregateRoot(&mirror.TenantAggregateRoot)
	return mirror
}

// InvoiceMirrorModelFromDomain converts a domain InvoiceMirror to the model
func InvoiceMirrorModelFromDomain(mirror *budget.InvoiceMirror) *InvoiceMirrorModel {
	m := &InvoiceMirrorModel{
		JobID:             mirror.JobID,
		ExternalInvoiceID: mirror.ExternalInvoiceID,
		TotalAmount:       mirror.TotalAmount,
		Balance:           mirror.Balance,
		Status:            mirror.Status,
		SyncedAt:          mirror.SyncedAt,
	}
	m.FromDomainTenantAggregateRoot(mirror.TenantAggregateRoot)
	return m
}
