package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pereiraj52/TaX-Ray-Canada/internal/jurisdiction"
	"github.com/pereiraj52/TaX-Ray-Canada/internal/model"
)

func fed2024(t *testing.T) *jurisdiction.FederalRules {
	t.Helper()
	return jurisdiction.Default().Federal()
}

func TestTotalIncome_DividendGrossUp(t *testing.T) {
	in := &model.IncomeDetails{
		CanadianDividendIncome: dec("1000"),
		ForeignDividendIncome:  dec("500"),
	}

	got := totalIncome(fed2024(t), in)

	// Eligible Canadian dividends grossed up by 1.38, foreign at face value.
	assert.True(t, dec("1880").Equal(got), "got %s", got)
}

func TestTotalIncome_CapitalGainsInclusion(t *testing.T) {
	tests := []struct {
		name     string
		gains    string
		losses   string
		priorNet string
		expected string
	}{
		{"half of net gain", "10000", "4000", "0", "3000"},
		{"losses exceed gains", "4000", "10000", "0", "0"},
		{"prior losses reduce inclusion", "10000", "0", "2000", "3000"},
		{"prior losses floor at zero", "10000", "0", "50000", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := &model.IncomeDetails{
				CapitalGains:            dec(tc.gains),
				CapitalLossesCurrent:    dec(tc.losses),
				NetCapitalLossesApplied: dec(tc.priorNet),
			}
			got := totalIncome(fed2024(t), in)
			assert.True(t, dec(tc.expected).Equal(got),
				"expected %s, got %s", tc.expected, got)
		})
	}
}

func TestAggregateIncome_StockOptionDeduction(t *testing.T) {
	in := &model.IncomeDetails{
		EmploymentIncome:             dec("80000"),
		StockOptionBenefit:           dec("20000"),
		StockOptionDeductionEligible: true,
	}

	inc := aggregateIncome(fed2024(t), in, &model.DeductionsCredits{}, &model.AdvancedDeductions{})

	assert.True(t, dec("100000").Equal(inc.Total), "total: got %s", inc.Total)
	// Half the benefit is deductible when the eligibility flag is set.
	assert.True(t, dec("90000").Equal(inc.Net), "net: got %s", inc.Net)

	in.StockOptionDeductionEligible = false
	inc = aggregateIncome(fed2024(t), in, &model.DeductionsCredits{}, &model.AdvancedDeductions{})
	assert.True(t, dec("100000").Equal(inc.Net), "net without eligibility: got %s", inc.Net)
}

func TestAggregateIncome_NetAndTaxableFloors(t *testing.T) {
	in := &model.IncomeDetails{EmploymentIncome: dec("10000")}
	ded := &model.DeductionsCredits{
		RRSPContribution: dec("50000"),
		MedicalExpenses:  dec("1000"),
	}

	inc := aggregateIncome(fed2024(t), in, ded, &model.AdvancedDeductions{})

	assert.True(t, inc.Net.IsZero(), "net floored at zero, got %s", inc.Net)
	assert.True(t, inc.Taxable.IsZero(), "taxable floored at zero, got %s", inc.Taxable)
}

func TestAggregateIncome_TaxableReducers(t *testing.T) {
	in := &model.IncomeDetails{EmploymentIncome: dec("100000")}
	ded := &model.DeductionsCredits{
		RRSPContribution:    dec("10000"),
		UnionDues:           dec("800"),
		MedicalExpenses:     dec("3000"),
		CharitableDonations: dec("1200"),
	}
	adv := &model.AdvancedDeductions{FarmLossesApplied: dec("500")}

	inc := aggregateIncome(fed2024(t), in, ded, adv)

	assert.True(t, dec("100000").Equal(inc.Total))
	assert.True(t, dec("89200").Equal(inc.Net), "net: got %s", inc.Net)
	assert.True(t, dec("84500").Equal(inc.Taxable), "taxable: got %s", inc.Taxable)
}
