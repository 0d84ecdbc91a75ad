package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Stable validation codes, surfaced verbatim in error responses.
const (
	CodeNegativeAmount      = "NEGATIVE_AMOUNT"
	CodeInvalidAge          = "INVALID_AGE"
	CodeDependantMismatch   = "DEPENDANT_LIST_MISMATCH"
	CodeUnknownJurisdiction = "UNKNOWN_JURISDICTION"
)

// ValidationError reports a rejected input field. The engine's arithmetic
// assumes validated input, so every request passes through Validate first.
type ValidationError struct {
	Field   string
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func negative(field string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Code:    CodeNegativeAmount,
		Message: "must be non-negative",
	}
}

// Validate rejects negative monetary inputs and broken personal-info
// invariants before any arithmetic runs.
func (r *TaxReturn) Validate() error {
	if r.PersonalInfo.Age < 0 {
		return &ValidationError{Field: "personalInfo.age", Code: CodeInvalidAge, Message: "must be non-negative"}
	}
	if r.PersonalInfo.SpouseAge < 0 {
		return &ValidationError{Field: "personalInfo.spouseAge", Code: CodeInvalidAge, Message: "must be non-negative"}
	}
	if r.PersonalInfo.NumDependants < 0 {
		return &ValidationError{Field: "personalInfo.numDependants", Code: CodeInvalidAge, Message: "must be non-negative"}
	}
	if len(r.PersonalInfo.DependantAges) != r.PersonalInfo.NumDependants {
		return &ValidationError{
			Field:   "personalInfo.dependantAges",
			Code:    CodeDependantMismatch,
			Message: fmt.Sprintf("got %d ages for %d dependants", len(r.PersonalInfo.DependantAges), r.PersonalInfo.NumDependants),
		}
	}
	for i, age := range r.PersonalInfo.DependantAges {
		if age < 0 {
			return &ValidationError{
				Field:   fmt.Sprintf("personalInfo.dependantAges[%d]", i),
				Code:    CodeInvalidAge,
				Message: "must be non-negative",
			}
		}
	}

	for _, f := range r.monetaryFields() {
		if f.value.IsNegative() {
			return negative(f.name)
		}
	}
	return nil
}

type monetaryField struct {
	name  string
	value decimal.Decimal
}

func (r *TaxReturn) monetaryFields() []monetaryField {
	in := &r.Income
	d := &r.Deductions
	adv := &r.AdvancedDeductions
	return []monetaryField{
		{"personalInfo.spouseIncome", r.PersonalInfo.SpouseIncome},

		{"income.employmentIncome", in.EmploymentIncome},
		{"income.employmentBenefits", in.EmploymentBenefits},
		{"income.stockOptionBenefit", in.StockOptionBenefit},
		{"income.commissionIncome", in.CommissionIncome},
		{"income.tipsGratuities", in.TipsGratuities},
		{"income.businessIncome", in.BusinessIncome},
		{"income.professionalIncome", in.ProfessionalIncome},
		{"income.farmingIncome", in.FarmingIncome},
		{"income.fishingIncome", in.FishingIncome},
		{"income.partnershipIncome", in.PartnershipIncome},
		{"income.interestIncome", in.InterestIncome},
		{"income.canadianDividendIncome", in.CanadianDividendIncome},
		{"income.foreignDividendIncome", in.ForeignDividendIncome},
		{"income.foreignBusinessIncome", in.ForeignBusinessIncome},
		{"income.foreignNonBusinessIncome", in.ForeignNonBusinessIncome},
		{"income.rentalIncome", in.RentalIncome},
		{"income.royaltyIncome", in.RoyaltyIncome},
		{"income.capitalGains", in.CapitalGains},
		{"income.capitalLosses", in.CapitalLossesCurrent},
		{"income.netCapitalLossesApplied", in.NetCapitalLossesApplied},
		{"income.cppQppBenefits", in.CPPQPPBenefits},
		{"income.oasBenefits", in.OASBenefits},
		{"income.privatePension", in.PrivatePension},
		{"income.foreignPension", in.ForeignPension},
		{"income.rrifWithdrawals", in.RRIFWithdrawals},
		{"income.lifWithdrawals", in.LIFWithdrawals},
		{"income.annuityIncome", in.AnnuityIncome},
		{"income.eiBenefits", in.EIBenefits},
		{"income.alimonyReceived", in.AlimonyReceived},
		{"income.scholarshipIncome", in.ScholarshipIncome},
		{"income.deathBenefits", in.DeathBenefits},
		{"income.otherIncome", in.OtherIncome},
		{"income.splitIncomeAmount", in.SplitIncomeAmount},

		{"deductions.rrspContribution", d.RRSPContribution},
		{"deductions.pensionContribution", d.PensionContribution},
		{"deductions.unionDues", d.UnionDues},
		{"deductions.professionalDues", d.ProfessionalDues},
		{"deductions.childcareExpenses", d.ChildcareExpenses},
		{"deductions.alimonyPaid", d.AlimonyPaid},
		{"deductions.medicalExpenses", d.MedicalExpenses},
		{"deductions.tuitionFees", d.TuitionFees},
		{"deductions.studentLoanInterest", d.StudentLoanInterest},
		{"deductions.movingExpenses", d.MovingExpenses},
		{"deductions.charitableDonations", d.CharitableDonations},
		{"deductions.politicalContributions", d.PoliticalContributions},

		{"advancedDeductions.businessExpenses", adv.BusinessExpenses},
		{"advancedDeductions.capitalCostAllowance", adv.CapitalCostAllowance},
		{"advancedDeductions.nonCapitalLossesApplied", adv.NonCapitalLossesApplied},
		{"advancedDeductions.farmLossesApplied", adv.FarmLossesApplied},

		{"foreignTax.foreignBusinessTax", r.ForeignTax.ForeignBusinessTax},
		{"foreignTax.foreignNonBusinessTax", r.ForeignTax.ForeignNonBusinessTax},
		{"foreignTax.foreignTaxCarryover", r.ForeignTax.ForeignTaxCarryover},

		{"pensionSplitting.eligiblePensionIncome", r.PensionSplitting.EligiblePensionIncome},
		{"pensionSplitting.amountToSplit", r.PensionSplitting.AmountToSplit},
	}
}
