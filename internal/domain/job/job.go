package job

import (
	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/shared"
)

// Status is the job lifecycle state
type Status string

const (
	StatusDraft      Status = "DRAFT"
	StatusApproved   Status = "APPROVED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// ErrJobNotApprovable is returned when approval is attempted outside DRAFT
var ErrJobNotApprovable = shared.NewDomainError("JOB_NOT_APPROVABLE", "Only draft jobs can be approved")

// Job is one roofing contract for one customer. Approval is the moment the
// job's financial baseline is captured; everything downstream keys off it.
type Job struct {
	shared.TenantAggregateRoot
	Name             string
	CustomerName     string
	Address          string
	RepresentativeID uuid.UUID
	Status           Status
}

// NewJob creates a draft job owned by the given representative
func NewJob(tenantID uuid.UUID, name, customerName, address string, repID uuid.UUID) (*Job, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_JOB_NAME", "Job name is required")
	}
	if repID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REP_ID", "Representative ID is required")
	}

	j := &Job{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		CustomerName:        customerName,
		Address:             address,
		RepresentativeID:    repID,
		Status:              StatusDraft,
	}
	j.AddDomainEvent(NewJobCreatedEvent(j))
	return j, nil
}

// Approve moves the job out of draft. Callers create the budget baseline in
// the same unit of work.
func (j *Job) Approve() error {
	if j.Status != StatusDraft {
		return ErrJobNotApprovable
	}
	j.Status = StatusApproved
	j.AddDomainEvent(NewJobApprovedEvent(j))
	return nil
}

// Start marks work as underway
func (j *Job) Start() error {
	if j.Status != StatusApproved {
		return shared.NewDomainError("JOB_NOT_STARTABLE", "Only approved jobs can be started")
	}
	j.Status = StatusInProgress
	return nil
}

// Complete closes out the job
func (j *Job) Complete() error {
	if j.Status != StatusInProgress {
		return shared.NewDomainError("JOB_NOT_COMPLETABLE", "Only in-progress jobs can be completed")
	}
	j.Status = StatusCompleted
	return nil
}

// Cancel abandons the job from any non-terminal state
func (j *Job) Cancel() error {
	if j.Status == StatusCompleted || j.Status == StatusCancelled {
		return shared.NewDomainError("JOB_NOT_CANCELLABLE", "Job is already closed")
	}
	j.Status = StatusCancelled
	return nil
}
