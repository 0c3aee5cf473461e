package identity

import (
	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Representative is a sales rep who owns jobs and earns commission.
// OverheadRate is the rep's share of company overhead as a whole percent of
// contract value, charged against net profit before any payout.
type Representative struct {
	shared.TenantAggregateRoot
	Name         string
	Email        string
	OverheadRate decimal.Decimal
	Active       bool
}

// NewRepresentative creates a representative with the given overhead rate
func NewRepresentative(tenantID uuid.UUID, name, email string, overheadRate decimal.Decimal) (*Representative, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_REP_NAME", "Representative name is required")
	}
	if overheadRate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_OVERHEAD_RATE", "Overhead rate cannot be negative")
	}

	return &Representative{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		Email:               email,
		OverheadRate:        overheadRate,
		Active:              true,
	}, nil
}

// SetOverheadRate changes the rep's overhead share going forward.
// Already-computed results are not revised.
func (r *Representative) SetOverheadRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return shared.NewDomainError("INVALID_OVERHEAD_RATE", "Overhead rate cannot be negative")
	}
	r.OverheadRate = rate
	return nil
}

// Deactivate removes the rep from active duty
func (r *Representative) Deactivate() {
	r.Active = false
}
