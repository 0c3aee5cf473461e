package budget

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary_JSONShape(t *testing.T) {
	s, err := Rollup(RollupInput{Lines: approvedLines(), Overhead: dec("50")})
	require.NoError(t, err)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "sell_price")
	assert.Contains(t, decoded, "planned")
	assert.Contains(t, decoded, "actual")
	assert.Contains(t, decoded, "profit")
	assert.Contains(t, decoded, "margin_pct")

	planned, ok := decoded["planned"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"materials", "labor", "overhead", "commission", "misc", "subtotal"} {
		assert.Contains(t, planned, key)
	}
}

func TestSummary_MarginOmittedWhenUndefined(t *testing.T) {
	s, err := Rollup(RollupInput{})
	require.NoError(t, err)
	require.Nil(t, s.MarginPct)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "margin_pct")
}

func TestSummary_ScanValueRoundTrip(t *testing.T) {
	s, err := Rollup(RollupInput{Lines: approvedLines(), Overhead: dec("50")})
	require.NoError(t, err)

	v, err := s.Value()
	require.NoError(t, err)

	var loaded Summary
	require.NoError(t, loaded.Scan(v))
	assert.Equal(t, s.SellPrice.String(), loaded.SellPrice.String())
	assert.Equal(t, s.Planned.Subtotal.String(), loaded.Planned.Subtotal.String())
	require.NotNil(t, loaded.MarginPct)
	assert.Equal(t, s.MarginPct.String(), loaded.MarginPct.String())
}

func TestLineItems_ScanNil(t *testing.T) {
	var ls LineItems
	require.NoError(t, ls.Scan(nil))
	assert.Empty(t, ls)
}
