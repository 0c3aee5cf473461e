package budget

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baselinePair(t *testing.T) (precap, capout Summary) {
	t.Helper()
	s, err := Rollup(RollupInput{
		Lines:    approvedLines(),
		Overhead: dec("50"),
	})
	require.NoError(t, err)
	return s, s
}

func ledgerEvent(t *testing.T, kind CostKind, amount string) CostEvent {
	t.Helper()
	e, err := NewCostEvent(uuid.New(), uuid.New(), kind, dec(amount), CostEventDetails{}, time.Now())
	require.NoError(t, err)
	return *e
}

func TestRefreshSummary_AggregatesLedger(t *testing.T) {
	precap, capout := baselinePair(t)
	ledger := []CostEvent{
		ledgerEvent(t, CostKindMaterial, "300"),
		ledgerEvent(t, CostKindMaterial, "120.50"),
		ledgerEvent(t, CostKindLabor, "200"),
		ledgerEvent(t, CostKindOther, "45"),
	}

	s := RefreshSummary(capout, precap, ledger, nil)

	assert.Equal(t, "420.50", s.Actual.Materials.StringFixed(2))
	assert.Equal(t, "200.00", s.Actual.Labor.StringFixed(2))
	assert.Equal(t, "45.00", s.Actual.Misc.StringFixed(2))

	// sell 1750 - (665.50 actual + 50 overhead + 0 commission)
	assert.Equal(t, "1750.00", s.SellPrice.StringFixed(2))
	assert.Equal(t, "1034.50", s.Profit.StringFixed(2))

	// planned block carries over untouched
	assert.Equal(t, "1100.00", s.Planned.Subtotal.StringFixed(2))
}

func TestRefreshSummary_MirrorOverridesSellPrice(t *testing.T) {
	precap, capout := baselinePair(t)
	mirror, err := NewInvoiceMirror(uuid.New(), uuid.New(), "INV-1001", dec("2000"), dec("500"), "sent")
	require.NoError(t, err)

	s := RefreshSummary(capout, precap, nil, mirror)

	assert.Equal(t, "2000.00", s.SellPrice.StringFixed(2))
	assert.Equal(t, "1950.00", s.Profit.StringFixed(2))
}

func TestRefreshSummary_Idempotent(t *testing.T) {
	precap, capout := baselinePair(t)
	ledger := []CostEvent{
		ledgerEvent(t, CostKindMaterial, "99.99"),
		ledgerEvent(t, CostKindLabor, "0.01"),
	}

	first := RefreshSummary(capout, precap, ledger, nil)
	second := RefreshSummary(first, precap, ledger, nil)

	assert.Equal(t, first.SellPrice.String(), second.SellPrice.String())
	assert.Equal(t, first.Profit.String(), second.Profit.String())
	assert.Equal(t, first.Actual, second.Actual)
}

func TestRefreshSummary_OrderIndependent(t *testing.T) {
	precap, capout := baselinePair(t)
	ledger := []CostEvent{
		ledgerEvent(t, CostKindMaterial, "10.10"),
		ledgerEvent(t, CostKindLabor, "20.20"),
		ledgerEvent(t, CostKindOther, "30.30"),
		ledgerEvent(t, CostKindMaterial, "40.40"),
	}
	reversed := []CostEvent{ledger[3], ledger[2], ledger[1], ledger[0]}

	a := RefreshSummary(capout, precap, ledger, nil)
	b := RefreshSummary(capout, precap, reversed, nil)

	assert.Equal(t, a.Actual, b.Actual)
	assert.Equal(t, a.Profit.String(), b.Profit.String())
}

func TestRefreshSummary_EmptyLedgerKeepsZeroActuals(t *testing.T) {
	precap, capout := baselinePair(t)

	s := RefreshSummary(capout, precap, nil, nil)

	assert.True(t, s.Actual.Materials.IsZero())
	assert.True(t, s.Actual.Labor.IsZero())
	assert.True(t, s.Actual.Misc.IsZero())
	// profit still charged for the planned overhead allowance
	assert.Equal(t, "1700.00", s.Profit.StringFixed(2))
}

func TestRefreshSummary_ZeroSellHasNoMargin(t *testing.T) {
	precap, capout := baselinePair(t)
	capout.SellPrice = dec("0")

	s := RefreshSummary(capout, precap, nil, nil)

	assert.Nil(t, s.MarginPct)
	assert.Equal(t, "-50.00", s.Profit.StringFixed(2))
}

func TestRefreshSummary_Conservation(t *testing.T) {
	precap, capout := baselinePair(t)
	ledger := []CostEvent{
		ledgerEvent(t, CostKindMaterial, "123.45"),
		ledgerEvent(t, CostKindLabor, "67.89"),
		ledgerEvent(t, CostKindOther, "11.11"),
	}

	s := RefreshSummary(capout, precap, ledger, nil)

	recomputed := s.SellPrice.
		Sub(s.TotalActual()).
		Sub(precap.Planned.Overhead).
		Sub(precap.Planned.Commission).
		Round(2)
	assert.True(t, s.Profit.Equal(recomputed))
}
