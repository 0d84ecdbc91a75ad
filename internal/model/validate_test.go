package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_AcceptsZeroValueReturn(t *testing.T) {
	var ret TaxReturn
	assert.NoError(t, ret.Validate())
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(*TaxReturn)
		expectedCode string
		field        string
	}{
		{
			"negative age",
			func(r *TaxReturn) { r.PersonalInfo.Age = -1 },
			CodeInvalidAge, "personalInfo.age",
		},
		{
			"negative spouse age",
			func(r *TaxReturn) { r.PersonalInfo.SpouseAge = -1 },
			CodeInvalidAge, "personalInfo.spouseAge",
		},
		{
			"negative dependant age",
			func(r *TaxReturn) {
				r.PersonalInfo.NumDependants = 1
				r.PersonalInfo.DependantAges = []int{-3}
			},
			CodeInvalidAge, "personalInfo.dependantAges[0]",
		},
		{
			"dependant count mismatch",
			func(r *TaxReturn) {
				r.PersonalInfo.NumDependants = 2
				r.PersonalInfo.DependantAges = []int{5}
			},
			CodeDependantMismatch, "personalInfo.dependantAges",
		},
		{
			"negative income field",
			func(r *TaxReturn) { r.Income.RentalIncome = decimal.NewFromInt(-100) },
			CodeNegativeAmount, "income.rentalIncome",
		},
		{
			"negative deduction field",
			func(r *TaxReturn) { r.Deductions.RRSPContribution = decimal.NewFromInt(-1) },
			CodeNegativeAmount, "deductions.rrspContribution",
		},
		{
			"negative foreign tax field",
			func(r *TaxReturn) { r.ForeignTax.ForeignBusinessTax = decimal.NewFromInt(-1) },
			CodeNegativeAmount, "foreignTax.foreignBusinessTax",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var ret TaxReturn
			tc.mutate(&ret)

			err := ret.Validate()
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.expectedCode, vErr.Code)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}
