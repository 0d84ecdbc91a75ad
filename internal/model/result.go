package model

import "github.com/shopspring/decimal"

// TaxResult is the complete set of computed figures for one return. It is
// produced fresh per computation and never mutated after assembly. Monetary
// fields are rounded to cents; rates are percentages.
type TaxResult struct {
	// Income summary
	TotalIncome              decimal.Decimal `json:"totalIncome"`
	NetIncome                decimal.Decimal `json:"netIncome"`
	TaxableIncome            decimal.Decimal `json:"taxableIncome"`
	SplitIncomeSubjectToTOSI decimal.Decimal `json:"splitIncomeSubjectToTosi"`

	// Regular tax
	FederalTax            decimal.Decimal `json:"federalTax"`
	ProvincialTax         decimal.Decimal `json:"provincialTax"`
	ProvincialSurtax      decimal.Decimal `json:"provincialSurtax"`
	TotalTaxBeforeCredits decimal.Decimal `json:"totalTaxBeforeCredits"`

	// Alternative minimum tax
	AMTIncome       decimal.Decimal `json:"amtIncome"`
	AMTTax          decimal.Decimal `json:"amtTax"`
	AMTCarryforward decimal.Decimal `json:"amtCarryforward"`

	// Tax on split income
	TOSITax decimal.Decimal `json:"tosiTax"`

	// Non-refundable credits
	BasicPersonalCredit       decimal.Decimal `json:"basicPersonalCredit"`
	SpouseCredit              decimal.Decimal `json:"spouseCredit"`
	DependantCredit           decimal.Decimal `json:"dependantCredit"`
	AgeCredit                 decimal.Decimal `json:"ageCredit"`
	PensionCredit             decimal.Decimal `json:"pensionCredit"`
	DisabilityCredit          decimal.Decimal `json:"disabilityCredit"`
	TuitionCredit             decimal.Decimal `json:"tuitionCredit"`
	MedicalCredit             decimal.Decimal `json:"medicalCredit"`
	CharitableCredit          decimal.Decimal `json:"charitableCredit"`
	PoliticalCredit           decimal.Decimal `json:"politicalCredit"`
	VolunteerCredit           decimal.Decimal `json:"volunteerCredit"`
	ForeignTaxCredit          decimal.Decimal `json:"foreignTaxCredit"`
	TotalNonRefundableCredits decimal.Decimal `json:"totalNonRefundableCredits"`

	TotalTaxAfterCredits decimal.Decimal `json:"totalTaxAfterCredits"`

	// Payroll contributions
	CPPContribution decimal.Decimal `json:"cppContribution"`
	EIContribution  decimal.Decimal `json:"eiContribution"`

	// Refundable credits
	GSTHSTCredit            decimal.Decimal `json:"gstHstCredit"`
	CanadaWorkersBenefit    decimal.Decimal `json:"canadaWorkersBenefit"`
	CanadaChildBenefit      decimal.Decimal `json:"canadaChildBenefit"`
	ClimateActionIncentive  decimal.Decimal `json:"climateActionIncentive"`
	WorkingIncomeTaxBenefit decimal.Decimal `json:"workingIncomeTaxBenefit"`
	TotalRefundableCredits  decimal.Decimal `json:"totalRefundableCredits"`

	// Clawbacks
	OASClawback            decimal.Decimal `json:"oasClawback"`
	EIBenefitClawback      decimal.Decimal `json:"eiBenefitClawback"`
	SocialBenefitRepayment decimal.Decimal `json:"socialBenefitRepayment"`
	TotalClawbacks         decimal.Decimal `json:"totalClawbacks"`

	// Final results
	TotalPayable      decimal.Decimal `json:"totalPayable"`
	NetIncomeAfterTax decimal.Decimal `json:"netIncomeAfterTax"`
	AverageTaxRate    decimal.Decimal `json:"averageTaxRate"`
	MarginalTaxRate   decimal.Decimal `json:"marginalTaxRate"`
}
