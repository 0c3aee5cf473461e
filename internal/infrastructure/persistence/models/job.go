package models

import (
	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/budget"
	"github.com/roofline/backend/internal/domain/job"
	"github.com/shopspring/decimal"
)

// JobModel maps jobs to the jobs table
type JobModel struct {
	TenantAggregateModel
	Name             string    `gorm:"type:varchar(200);not null"`
	CustomerName     string    `gorm:"type:varchar(200)"`
	Address          string    `gorm:"type:text"`
	RepresentativeID uuid.UUID `gorm:"type:uuid;not null;index:idx_jobs_rep"`
	Status           string    `gorm:"type:varchar(20);not null;index"`
}

// TableName returns the table name for GORM
func (JobModel) TableName() string {
	return "jobs"
}

// ToDomain converts the model to a domain Job
func (m *JobModel) ToDomain() *job.Job {
	j := &job.Job{
		Name:             m.Name,
		CustomerName:     m.CustomerName,
		Address:          m.Address,
		RepresentativeID: m.RepresentativeID,
		Status:           job.Status(m.Status),
	}
	m.PopulateTenantAggregateRoot(&j.TenantAggregateRoot)
	return j
}

// JobModelFromDomain converts a domain Job to the model
func JobModelFromDomain(j *job.Job) *JobModel {
	m := &JobModel{
		Name:             j.Name,
		CustomerName:     j.CustomerName,
		Address:          j.Address,
		RepresentativeID: j.RepresentativeID,
		Status:           string(j.Status),
	}
	m.FromDomainTenantAggregateRoot(j.TenantAggregateRoot)
	return m
}

// EstimateModel maps estimates to the estimates table.
// Line items are stored as a jsonb array.
type EstimateModel struct {
	TenantAggregateModel
	JobID               uuid.UUID        `gorm:"type:uuid;not null;index:idx_estimates_job"`
	Lines               budget.LineItems `gorm:"type:jsonb"`
	Overhead            decimal.Decimal  `gorm:"type:numeric(14,2);not null;default:0"`
	CommissionAllowance decimal.Decimal  `gorm:"type:numeric(14,2);not null;default:0"`
	Misc                decimal.Decimal  `gorm:"type:numeric(14,2);not null;default:0"`
	Status              string           `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (EstimateModel) TableName() string {
	return "estimates"
}

// ToDomain converts the model to a domain Estimate
func (m *EstimateModel) ToDomain() *job.Estimate {
	e := &job.Estimate{
		JobID:               m.JobID,
		Lines:               m.Lines,
		Overhead:            m.Overhead,
		CommissionAllowance: m.CommissionAllowance,
		Misc:                m.Misc,
		Status:              job.EstimateStatus(m.Status),
	}
	m.PopulateTenantAggregateRoot(&e.TenantAggregateRoot)
	return e
}

// EstimateModelFromDomain converts a domain Estimate to the model
func EstimateModelFromDomain(e *job.Estimate) *EstimateModel {
	m := &EstimateModel{
		JobID:               e.JobID,
		Lines:               e.Lines,
		Overhead:            e.Overhead,
		CommissionAllowance: e.CommissionAllowance,
		Misc:                e.Misc,
		Status:              string(e.Status),
	}
	m.FromDomainTenantAggregateRoot(e.TenantAggregateRoot)
	return m
}
