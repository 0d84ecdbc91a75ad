package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pereiraj52/TaX-Ray-Canada/internal/jurisdiction"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func federalBrackets(t *testing.T) []jurisdiction.TaxBracket {
	t.Helper()
	return jurisdiction.Default().Federal().Brackets
}

func ontarioBrackets(t *testing.T) []jurisdiction.TaxBracket {
	t.Helper()
	p, err := jurisdiction.Default().Profile("ON")
	require.NoError(t, err)
	return p.Brackets
}

func TestTaxOnBrackets_Federal2024(t *testing.T) {
	brackets := federalBrackets(t)

	tests := []struct {
		name     string
		income   string
		expected string
	}{
		{"zero income", "0", "0"},
		{"within first bracket", "40000", "6000"},
		{"exactly at first boundary", "55867", "8380.05"},
		{"spanning two brackets", "60000", "9227.315"},
		{"spanning three brackets", "150000", "29782.00"},
		{"top bracket", "300000", "74715.77"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := taxOnBrackets(dec(tc.income), brackets)
			assert.True(t, dec(tc.expected).Equal(got),
				"income %s: expected %s, got %s", tc.income, tc.expected, got)
		})
	}
}

func TestMarginalRate(t *testing.T) {
	brackets := federalBrackets(t)

	tests := []struct {
		name     string
		income   string
		expected string
	}{
		{"zero income", "0", "0.15"},
		{"first bracket", "50000", "0.15"},
		{"at boundary rate steps up", "55867", "0.205"},
		{"third bracket", "120000", "0.26"},
		{"beyond all bounded brackets", "1000000", "0.33"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := marginalRate(dec(tc.income), brackets)
			assert.True(t, dec(tc.expected).Equal(got),
				"income %s: expected rate %s, got %s", tc.income, tc.expected, got)
		})
	}
}

func TestMarginalRate_EmptyTable(t *testing.T) {
	got := marginalRate(dec("50000"), nil)
	assert.True(t, got.IsZero())
}

// Tax at a bracket boundary must be continuous: the values just below and
// just above the boundary differ by no more than epsilon times the higher
// rate.
func TestTaxOnBrackets_ContinuityAtBoundaries(t *testing.T) {
	epsilon := dec("0.01")
	for _, brackets := range [][]jurisdiction.TaxBracket{federalBrackets(t), ontarioBrackets(t)} {
		for _, b := range brackets {
			if b.Top {
				continue
			}
			below := taxOnBrackets(b.Max.Sub(epsilon), brackets)
			above := taxOnBrackets(b.Max.Add(epsilon), brackets)
			jump := above.Sub(below)
			assert.True(t, jump.LessThanOrEqual(dec("0.02")),
				"discontinuity at boundary %s: jump %s", b.Max, jump)
			assert.False(t, jump.IsNegative(),
				"tax decreased across boundary %s", b.Max)
		}
	}
}

func TestTaxOnBrackets_SingleFlatBracket(t *testing.T) {
	reg := jurisdiction.Default()
	ab, err := reg.Profile("AB")
	require.NoError(t, err)

	got := taxOnBrackets(dec("250000"), ab.Brackets)
	assert.True(t, dec("25000").Equal(got), "got %s", got)
}
