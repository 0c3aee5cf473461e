package budget

import (
	"time"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CostEventDetails carries the descriptive metadata of a ledger entry:
// free-text description, the vendor paid, and the reference in the vendor's
// or accounting system. All optional.
type CostEventDetails struct {
	Description string
	Vendor      string
	ExternalRef string
}

// CostEvent is one realized outlay against a job: a material purchase, a
// labor payment, or anything else that spent money. The ledger is the
// source of truth for actuals; summaries are always re-derived from it,
// never incrementally patched.
type CostEvent struct {
	shared.TenantAggregateRoot
	JobID       uuid.UUID
	Kind        CostKind
	Amount      decimal.Decimal
	Description string
	Vendor      string
	ExternalRef string
	IncurredAt  time.Time
}

// NewCostEvent records an outlay. Amounts are non-negative; corrections are
// made by editing or deleting the original event, not by negative entries.
func NewCostEvent(tenantID, jobID uuid.UUID, kind CostKind, amount decimal.Decimal, details CostEventDetails, incurredAt time.Time) (*CostEvent, error) {
	if jobID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_JOB_ID", "Job ID is required")
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_COST_KIND", "Cost kind must be material, labor or other")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Cost amount cannot be negative")
	}
	if incurredAt.IsZero() {
		incurredAt = time.Now()
	}

	e := &CostEvent{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		JobID:               jobID,
		Kind:                kind.Normalize(),
		Amount:              amount,
		Description:         details.Description,
		Vendor:              details.Vendor,
		ExternalRef:         details.ExternalRef,
		IncurredAt:          incurredAt,
	}
	e.AddDomainEvent(NewCostEventRecordedEvent(e))
	return e, nil
}

// Update revises a recorded outlay in place
func (e *CostEvent) Update(kind CostKind, amount decimal.Decimal, details CostEventDetails, incurredAt time.Time) error {
	if !kind.IsValid() {
		return shared.NewDomainError("INVALID_COST_KIND", "Cost kind must be material, labor or other")
	}
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Cost amount cannot be negative")
	}

	e.Kind = kind.Normalize()
	e.Amount = amount
	e.Description = details.Description
	e.Vendor = details.Vendor
	e.ExternalRef = details.ExternalRef
	if !incurredAt.IsZero() {
		e.IncurredAt = incurredAt
	}
	e.AddDomainEvent(NewCostEventUpdatedEvent(e))
	return nil
}
