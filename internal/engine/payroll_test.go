package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pereiraj52/TaX-Ray-Canada/internal/jurisdiction"
)

func payrollRules(t *testing.T) *jurisdiction.PayrollRules {
	t.Helper()
	return jurisdiction.Default().Payroll()
}

func TestPensionContribution_CPP(t *testing.T) {
	rules := payrollRules(t)

	tests := []struct {
		name       string
		employment string
		expected   string
	}{
		{"below basic exemption", "2000", "0"},
		{"mid range", "60000", "3361.75"},
		{"at pensionable ceiling", "71300", "4034.10"},
		{"above ceiling earns no more", "200000", "4034.10"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := pensionContribution(rules, dec(tc.employment), false)
			assert.True(t, dec(tc.expected).Equal(got), "expected %s, got %s", tc.expected, got)
		})
	}
}

func TestPensionContribution_MaxAnnualCap(t *testing.T) {
	rules := &jurisdiction.PayrollRules{
		CPP: jurisdiction.PensionPlan{
			MaxPensionable:  dec("80000"),
			BasicExemption:  dec("3500"),
			Rate:            dec("0.0595"),
			MaxContribution: dec("4055.25"),
		},
	}

	// (80000 − 3500) × 0.0595 = 4551.75, capped at the plan maximum.
	got := pensionContribution(rules, dec("90000"), false)
	assert.True(t, dec("4055.25").Equal(got), "got %s", got)
}

func TestPensionContribution_ParallelPlan(t *testing.T) {
	rules := payrollRules(t)

	// QPP rate, no annual cap set for the parallel plan.
	got := pensionContribution(rules, dec("100000"), true)
	assert.True(t, dec("4339.2").Equal(got), "got %s", got)
}

func TestInsuranceContribution(t *testing.T) {
	rules := payrollRules(t)

	tests := []struct {
		name         string
		employment   string
		parallelPlan bool
		expected     string
	}{
		{"regular rate", "60000", false, "978"},
		{"capped at insurable ceiling", "100000", false, "1039.125"},
		{"parallel plan reduced rate plus premium", "100000", true, "1124.5875"},
		{"zero employment income", "0", false, "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := insuranceContribution(rules, dec(tc.employment), tc.parallelPlan)
			assert.True(t, dec(tc.expected).Equal(got), "expected %s, got %s", tc.expected, got)
		})
	}
}
