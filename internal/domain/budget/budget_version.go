package budget

import (
	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/shared"
)

// VersionKind distinguishes the two budget versions every job carries
type VersionKind string

const (
	// VersionPrecap is the locked pre-capture baseline, frozen at approval
	VersionPrecap VersionKind = "PRECAP"
	// VersionCapout is the live version, refreshed as costs are recorded
	VersionCapout VersionKind = "CAPOUT"
)

// IsValid checks if the kind is a valid VersionKind
func (k VersionKind) IsValid() bool {
	return k == VersionPrecap || k == VersionCapout
}

// BudgetVersion is the aggregate root for one financial snapshot of a job.
// A job has exactly one PRECAP and one CAPOUT. The PRECAP's summary never
// changes after creation; the CAPOUT's is replaced on every recompute.
type BudgetVersion struct {
	shared.TenantAggregateRoot
	JobID      uuid.UUID
	EstimateID *uuid.UUID
	Kind       VersionKind
	Locked     bool
	Lines      LineItems
	Summary    Summary
}

var (
	// ErrVersionLocked is returned on any attempt to mutate a PRECAP
	ErrVersionLocked = shared.NewDomainError("BUDGET_VERSION_LOCKED", "Locked budget version cannot be modified")
	// ErrJobNotFound is returned when a referenced job does not exist in the tenant
	ErrJobNotFound = shared.NewDomainError("JOB_NOT_FOUND", "Job not found")
)

// NewBudgetVersion creates one version with the given summary snapshot.
// PRECAP versions are created locked.
func NewBudgetVersion(tenantID, jobID uuid.UUID, kind VersionKind, lines LineItems, summary Summary) (*BudgetVersion, error) {
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_VERSION_KIND", "Budget version kind must be PRECAP or CAPOUT")
	}
	if jobID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_JOB_ID", "Job ID is required")
	}

	v := &BudgetVersion{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		JobID:               jobID,
		Kind:                kind,
		Locked:              kind == VersionPrecap,
		Lines:               lines,
		Summary:             summary,
	}
	v.AddDomainEvent(NewBudgetVersionCreatedEvent(v))
	return v, nil
}

// NewInitialVersions builds the PRECAP/CAPOUT pair for a freshly approved
// job. Both start from the same rollup and record the estimate they were
// captured from; they diverge as costs arrive. A nil estimateID is allowed
// for versions created outside the estimate flow.
func NewInitialVersions(tenantID, jobID, estimateID uuid.UUID, lines LineItems, summary Summary) (precap, capout *BudgetVersion, err error) {
	precap, err = NewBudgetVersion(tenantID, jobID, VersionPrecap, lines, summary)
	if err != nil {
		return nil, nil, err
	}
	capout, err = NewBudgetVersion(tenantID, jobID, VersionCapout, lines, summary)
	if err != nil {
		return nil, nil, err
	}
	if estimateID != uuid.Nil {
		ref := estimateID
		precap.EstimateID = &ref
		capout.EstimateID = &ref
	}
	return precap, capout, nil
}

// ApplySummary replaces the summary after a recompute.
// Refuses to touch a locked version.
func (v *BudgetVersion) ApplySummary(summary Summary) error {
	if v.Locked {
		return ErrVersionLocked
	}
	v.Summary = summary
	v.AddDomainEvent(NewBudgetRefreshedEvent(v))
	return nil
}
