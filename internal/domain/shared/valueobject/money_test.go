package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(decimal.NewFromInt(100), USD)
	require.NoError(t, err)
	assert.True(t, m.Amount().Equal(decimal.NewFromInt(100)))
	assert.Equal(t, USD, m.Currency())
}

func TestNewMoney_EmptyCurrency(t *testing.T) {
	_, err := NewMoney(decimal.NewFromInt(100), "")
	assert.Error(t, err)
}

func TestNewMoneyFromString(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr bool
	}{
		{"valid decimal", "123.45", false},
		{"valid integer", "100", false},
		{"negative", "-50.25", false},
		{"invalid", "abc", true},
		{"empty", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewMoneyFromString(tc.amount, USD)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMoney_Add(t *testing.T) {
	a := NewMoneyUSD(decimal.NewFromFloat(10.50))
	b := NewMoneyUSD(decimal.NewFromFloat(5.25))

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "15.75", sum.StringFixed(2))
}

func TestMoney_Add_CurrencyMismatch(t *testing.T) {
	a := NewMoneyUSD(decimal.NewFromInt(10))
	b, _ := NewMoney(decimal.NewFromInt(10), EUR)

	_, err := a.Add(b)
	assert.Error(t, err)
}

func TestMoney_Subtract(t *testing.T) {
	a := NewMoneyUSD(decimal.NewFromInt(100))
	b := NewMoneyUSD(decimal.NewFromInt(30))

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.Equal(t, "70.00", diff.StringFixed(2))
}

func TestMoney_Divide_ByZero(t *testing.T) {
	m := NewMoneyUSD(decimal.NewFromInt(100))
	_, err := m.Divide(decimal.Zero)
	assert.Error(t, err)
}

func TestMoney_CalculatePercentage(t *testing.T) {
	m := NewMoneyUSD(decimal.NewFromInt(20000))
	p := m.CalculatePercentage(decimal.NewFromInt(5))
	assert.Equal(t, "1000.00", p.StringFixed(2))
}

func TestMoney_Predicates(t *testing.T) {
	assert.True(t, ZeroUSD().IsZero())
	assert.True(t, NewMoneyUSD(decimal.NewFromInt(1)).IsPositive())
	assert.True(t, NewMoneyUSD(decimal.NewFromInt(-1)).IsNegative())
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	m := NewMoneyUSD(decimal.NewFromFloat(99.99))

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"99.99","currency":"USD"}`, string(data))

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, m.Equals(decoded))
}

func TestMoney_Scan(t *testing.T) {
	var m Money
	require.NoError(t, m.Scan("42.50"))
	assert.Equal(t, "42.50", m.StringFixed(2))
	assert.Equal(t, DefaultCurrency, m.Currency())

	require.NoError(t, m.Scan(nil))
	assert.True(t, m.IsZero())
}
