package budget

import (
	"time"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// InvoiceMirror is a local read copy of a job's invoice as known by the
// external invoicing system. At most one mirror exists per job. When a
// mirror is present its total amount overrides the estimate-derived sell
// price in every summary computation. Balance is the amount still owed as
// reported by the external system; it is informational and never enters
// the rollup math.
type InvoiceMirror struct {
	shared.TenantAggregateRoot
	JobID             uuid.UUID
	ExternalInvoiceID string
	TotalAmount       decimal.Decimal
	Balance           decimal.Decimal
	Status            string
	SyncedAt          time.Time
}

// NewInvoiceMirror creates the mirror from a first sync
func NewInvoiceMirror(tenantID, jobID uuid.UUID, externalID string, total, balance decimal.Decimal, status string) (*InvoiceMirror, error) {
	if jobID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_JOB_ID", "Job ID is required")
	}
	if externalID == "" {
		return nil, shared.NewDomainError("INVALID_EXTERNAL_ID", "External invoice ID is required")
	}

	m := &InvoiceMirror{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		JobID:               jobID,
		ExternalInvoiceID:   externalID,
		TotalAmount:         total,
		Balance:             balance,
		Status:              status,
		SyncedAt:            time.Now(),
	}
	m.AddDomainEvent(NewInvoiceMirrorSyncedEvent(m))
	return m, nil
}

// ApplyPull overwrites the mirror with the latest pulled state.
// Last writer wins; the external system is authoritative.
func (m *InvoiceMirror) ApplyPull(externalID string, total, balance decimal.Decimal, status string) error {
	if externalID == "" {
		return shared.NewDomainError("INVALID_EXTERNAL_ID", "External invoice ID is required")
	}
	m.ExternalInvoiceID = externalID
	m.TotalAmount = total
	m.Balance = balance
	m.Status = status
	m.SyncedAt = time.Now()
	m.AddDomainEvent(NewInvoiceMirrorSyncedEvent(m))
	return nil
}
