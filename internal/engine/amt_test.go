package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pereiraj52/TaX-Ray-Canada/internal/model"
)

func TestComputeAMT(t *testing.T) {
	tests := []struct {
		name         string
		total        string
		stockOption  string
		cca          string
		expectedBase string
		expectedTax  string
	}{
		{"below exemption", "30000", "0", "0", "30000", "0"},
		{"at exemption", "40000", "0", "0", "40000", "0"},
		// (100000 − 40000) × 0.15
		{"income only", "100000", "0", "0", "100000", "9000"},
		// base = 150000 + 100000×0.5 + 20000×0.5 = 210000, tax = 170000 × 0.15
		{"with preferences", "150000", "100000", "20000", "210000", "25500"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := &model.IncomeDetails{StockOptionBenefit: dec(tc.stockOption)}
			adv := &model.AdvancedDeductions{CapitalCostAllowance: dec(tc.cca)}

			got := computeAMT(fed2024(t), dec(tc.total), in, adv)

			assert.True(t, dec(tc.expectedBase).Equal(got.Income), "base: expected %s, got %s", tc.expectedBase, got.Income)
			assert.True(t, dec(tc.expectedTax).Equal(got.Tax), "tax: expected %s, got %s", tc.expectedTax, got.Tax)
			assert.True(t, got.Carryforward.IsZero())
		})
	}
}
