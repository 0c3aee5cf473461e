package budget

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCostEvent(t *testing.T) {
	tenantID := uuid.New()
	jobID := uuid.New()
	incurred := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	details := CostEventDetails{Description: "Supplier run", Vendor: "ABC Supply", ExternalRef: "PO-2231"}
	e, err := NewCostEvent(tenantID, jobID, CostKind("Material"), dec("250.75"), details, incurred)
	require.NoError(t, err)

	assert.Equal(t, CostKindMaterial, e.Kind)
	assert.Equal(t, "250.75", e.Amount.StringFixed(2))
	assert.Equal(t, "ABC Supply", e.Vendor)
	assert.Equal(t, "PO-2231", e.ExternalRef)
	assert.Equal(t, incurred, e.IncurredAt)
	assert.NotEmpty(t, e.GetDomainEvents())
}

func TestNewCostEvent_ZeroAmountAllowed(t *testing.T) {
	_, err := NewCostEvent(uuid.New(), uuid.New(), CostKindOther, dec("0"), CostEventDetails{}, time.Now())
	assert.NoError(t, err)
}

func TestNewCostEvent_Validation(t *testing.T) {
	_, err := NewCostEvent(uuid.New(), uuid.Nil, CostKindLabor, dec("10"), CostEventDetails{}, time.Now())
	assert.Error(t, err)

	_, err = NewCostEvent(uuid.New(), uuid.New(), CostKind("travel"), dec("10"), CostEventDetails{}, time.Now())
	assert.Error(t, err)

	_, err = NewCostEvent(uuid.New(), uuid.New(), CostKindLabor, dec("-0.01"), CostEventDetails{}, time.Now())
	assert.Error(t, err)
}

func TestCostEvent_Update(t *testing.T) {
	e, err := NewCostEvent(uuid.New(), uuid.New(), CostKindMaterial, dec("100"), CostEventDetails{Description: "initial"}, time.Now())
	require.NoError(t, err)

	require.NoError(t, e.Update(CostKindLabor, dec("150"), CostEventDetails{Description: "corrected", Vendor: "Crew LLC"}, time.Time{}))
	assert.Equal(t, CostKindLabor, e.Kind)
	assert.Equal(t, "150.00", e.Amount.StringFixed(2))
	assert.Equal(t, "corrected", e.Description)
	assert.Equal(t, "Crew LLC", e.Vendor)

	assert.Error(t, e.Update(CostKindLabor, dec("-1"), CostEventDetails{}, time.Time{}))
}
