package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pereiraj52/TaX-Ray-Canada/internal/jurisdiction"
	"github.com/pereiraj52/TaX-Ray-Canada/internal/model"
)

func benefitRules(t *testing.T) *jurisdiction.BenefitRules {
	t.Helper()
	return jurisdiction.Default().Benefits()
}

func TestOASClawback(t *testing.T) {
	tests := []struct {
		name     string
		net      string
		oas      string
		expected string
	}{
		{"below threshold", "80000", "7362", "0"},
		// (100000 − 86912) × 0.15 = 1963.20
		{"partial clawback", "100000", "7362", "1963.2"},
		{"capped at benefit received", "200000", "7362", "7362"},
		{"no benefit received", "100000", "0", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := &model.IncomeDetails{OASBenefits: dec(tc.oas)}
			c := computeClawbacks(benefitRules(t), dec(tc.net), in)
			assert.True(t, dec(tc.expected).Equal(c.OAS), "expected %s, got %s", tc.expected, c.OAS)
		})
	}
}

func TestEIBenefitClawback(t *testing.T) {
	tests := []struct {
		name     string
		net      string
		ei       string
		expected string
	}{
		{"below threshold", "70000", "5000", "0"},
		{"no benefits means no clawback", "100000", "0", "0"},
		// min(5000 × 0.30, (80000 − 78750) × 0.30) = min(1500, 375)
		{"excess binds", "80000", "5000", "375"},
		{"benefit cap binds", "120000", "5000", "1500"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := &model.IncomeDetails{EIBenefits: dec(tc.ei)}
			c := computeClawbacks(benefitRules(t), dec(tc.net), in)
			assert.True(t, dec(tc.expected).Equal(c.EI), "expected %s, got %s", tc.expected, c.EI)
		})
	}
}

func TestClawbacks_Total(t *testing.T) {
	in := &model.IncomeDetails{OASBenefits: dec("7362"), EIBenefits: dec("5000")}
	c := computeClawbacks(benefitRules(t), dec("120000"), in)

	assert.True(t, c.SocialBenefit.IsZero())
	assert.True(t, c.Total().Equal(c.OAS.Add(c.EI)))
}
