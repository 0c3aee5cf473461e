package budget

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInitialVersions(t *testing.T) {
	tenantID := uuid.New()
	jobID := uuid.New()
	estimateID := uuid.New()
	summary, err := Rollup(RollupInput{Lines: approvedLines(), Overhead: dec("50")})
	require.NoError(t, err)

	precap, capout, err := NewInitialVersions(tenantID, jobID, estimateID, approvedLines(), summary)
	require.NoError(t, err)

	assert.Equal(t, VersionPrecap, precap.Kind)
	assert.True(t, precap.Locked)
	assert.Equal(t, VersionCapout, capout.Kind)
	assert.False(t, capout.Locked)

	assert.Equal(t, jobID, precap.JobID)
	assert.Equal(t, tenantID, precap.TenantID)
	require.NotNil(t, precap.EstimateID)
	assert.Equal(t, estimateID, *precap.EstimateID)
	assert.Equal(t, summary.SellPrice.String(), precap.Summary.SellPrice.String())
	assert.Equal(t, summary.SellPrice.String(), capout.Summary.SellPrice.String())

	assert.NotEmpty(t, precap.GetDomainEvents())
	assert.NotEmpty(t, capout.GetDomainEvents())
}

func TestNewBudgetVersion_Validation(t *testing.T) {
	_, err := NewBudgetVersion(uuid.New(), uuid.Nil, VersionCapout, nil, Summary{})
	assert.Error(t, err)

	_, err = NewBudgetVersion(uuid.New(), uuid.New(), VersionKind("DRAFT"), nil, Summary{})
	assert.Error(t, err)
}

func TestBudgetVersion_ApplySummary(t *testing.T) {
	summary, err := Rollup(RollupInput{Lines: approvedLines(), Overhead: dec("50")})
	require.NoError(t, err)

	precap, capout, err := NewInitialVersions(uuid.New(), uuid.New(), uuid.Nil, approvedLines(), summary)
	require.NoError(t, err)

	refreshed := RefreshSummary(capout.Summary, precap.Summary, []CostEvent{
		ledgerEvent(t, CostKindMaterial, "500"),
	}, nil)

	require.NoError(t, capout.ApplySummary(refreshed))
	assert.Equal(t, "500.00", capout.Summary.Actual.Materials.StringFixed(2))

	err = precap.ApplySummary(refreshed)
	assert.ErrorIs(t, err, ErrVersionLocked)
	assert.True(t, precap.Summary.Actual.Materials.IsZero())
}
