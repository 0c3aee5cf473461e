package job

import (
	"github.com/roofline/backend/internal/domain/shared"
)

// Event type constants for the job domain
const (
	EventJobCreated      = "job.created"
	EventJobApproved     = "job.approved"
	EventEstimateCreated = "job.estimate.created"
)

// JobCreatedEvent is raised when a job enters the system
type JobCreatedEvent struct {
	shared.BaseDomainEvent
	Name             string `json:"name"`
	RepresentativeID string `json:"representative_id"`
}

// NewJobCreatedEvent creates a JobCreatedEvent
func NewJobCreatedEvent(j *Job) *JobCreatedEvent {
	return &JobCreatedEvent{
		BaseDomainEvent:  shared.NewBaseDomainEvent(EventJobCreated, "Job", j.ID, j.TenantID),
		Name:             j.Name,
		RepresentativeID: j.RepresentativeID.String(),
	}
}

// JobApprovedEvent is raised at approval, the trigger for baseline capture
type JobApprovedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewJobApprovedEvent creates a JobApprovedEvent
func NewJobApprovedEvent(j *Job) *JobApprovedEvent {
	return &JobApprovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventJobApproved, "Job", j.ID, j.TenantID),
		Name:            j.Name,
	}
}

// EstimateCreatedEvent is raised when an estimate is drafted
type EstimateCreatedEvent struct {
	shared.BaseDomainEvent
	JobID string `json:"job_id"`
}

// NewEstimateCreatedEvent creates an EstimateCreatedEvent
func NewEstimateCreatedEvent(e *Estimate) *EstimateCreatedEvent {
	return &EstimateCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventEstimateCreated, "Estimate", e.ID, e.TenantID),
		JobID:           e.JobID.String(),
	}
}
