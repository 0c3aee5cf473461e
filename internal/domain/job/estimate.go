package job

import (
	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/budget"
	"github.com/roofline/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// EstimateStatus is the estimate lifecycle state
type EstimateStatus string

const (
	EstimateDraft    EstimateStatus = "DRAFT"
	EstimateApproved EstimateStatus = "APPROVED"
)

// Estimate is the priced scope of work for a job: the line items plus the
// fixed allowances. Its approved snapshot is what seeds the budget baseline.
type Estimate struct {
	shared.TenantAggregateRoot
	JobID               uuid.UUID
	Lines               budget.LineItems
	Overhead            decimal.Decimal
	CommissionAllowance decimal.Decimal
	Misc                decimal.Decimal
	Status              EstimateStatus
}

// NewEstimate creates a draft estimate for a job
func NewEstimate(tenantID, jobID uuid.UUID, lines budget.LineItems, overhead, commissionAllowance, misc decimal.Decimal) (*Estimate, error) {
	if jobID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_JOB_ID", "Job ID is required")
	}
	if err := lines.Validate(); err != nil {
		return nil, err
	}

	e := &Estimate{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		JobID:               jobID,
		Lines:               lines,
		Overhead:            overhead,
		CommissionAllowance: commissionAllowance,
		Misc:                misc,
		Status:              EstimateDraft,
	}
	e.AddDomainEvent(NewEstimateCreatedEvent(e))
	return e, nil
}

// UpdateLines replaces the draft's lines and allowances.
// Approved estimates are frozen.
func (e *Estimate) UpdateLines(lines budget.LineItems, overhead, commissionAllowance, misc decimal.Decimal) error {
	if e.Status == EstimateApproved {
		return shared.NewDomainError("ESTIMATE_FROZEN", "Approved estimates cannot be modified")
	}
	if err := lines.Validate(); err != nil {
		return err
	}
	e.Lines = lines
	e.Overhead = overhead
	e.CommissionAllowance = commissionAllowance
	e.Misc = misc
	return nil
}

// Approve freezes the estimate
func (e *Estimate) Approve() error {
	if e.Status == EstimateApproved {
		return shared.NewDomainError("ESTIMATE_ALREADY_APPROVED", "Estimate is already approved")
	}
	e.Status = EstimateApproved
	return nil
}
