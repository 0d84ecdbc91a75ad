package model

import (
	"github.com/shopspring/decimal"
)

// PersonalInfo is an immutable snapshot of the taxpayer's circumstances for
// one computation. Monetary fields are decimal to keep cent precision through
// the whole pipeline.
type PersonalInfo struct {
	Age                     int             `json:"age"`
	IsMarried               bool            `json:"isMarried"`
	SpouseIncome            decimal.Decimal `json:"spouseIncome"`
	SpouseAge               int             `json:"spouseAge"`
	HasDisability           bool            `json:"hasDisability"`
	SpouseHasDisability     bool            `json:"spouseHasDisability"`
	NumDependants           int             `json:"numDependants"`
	DependantAges           []int           `json:"dependantAges"`
	DependantDisabilities   []bool          `json:"dependantDisabilities"`
	IsStudent               bool            `json:"isStudent"`
	IsVolunteerFirefighter  bool            `json:"isVolunteerFirefighter"`
	IsSearchRescueVolunteer bool            `json:"isSearchRescueVolunteer"`
	IsFirstTimeBuyer        bool            `json:"isFirstTimeBuyer"`
}

// IncomeDetails carries one field per statutory income category. All fields
// are claimed amounts and must be non-negative; loss semantics go through the
// dedicated loss fields, never through a negative income field.
type IncomeDetails struct {
	// Employment
	EmploymentIncome             decimal.Decimal `json:"employmentIncome"`
	EmploymentBenefits           decimal.Decimal `json:"employmentBenefits"`
	StockOptionBenefit           decimal.Decimal `json:"stockOptionBenefit"`
	StockOptionDeductionEligible bool            `json:"stockOptionDeductionEligible"`
	CommissionIncome             decimal.Decimal `json:"commissionIncome"`
	TipsGratuities               decimal.Decimal `json:"tipsGratuities"`

	// Business
	BusinessIncome     decimal.Decimal `json:"businessIncome"`
	ProfessionalIncome decimal.Decimal `json:"professionalIncome"`
	FarmingIncome      decimal.Decimal `json:"farmingIncome"`
	FishingIncome      decimal.Decimal `json:"fishingIncome"`
	PartnershipIncome  decimal.Decimal `json:"partnershipIncome"`

	// Investment
	InterestIncome           decimal.Decimal `json:"interestIncome"`
	CanadianDividendIncome   decimal.Decimal `json:"canadianDividendIncome"`
	ForeignDividendIncome    decimal.Decimal `json:"foreignDividendIncome"`
	ForeignBusinessIncome    decimal.Decimal `json:"foreignBusinessIncome"`
	ForeignNonBusinessIncome decimal.Decimal `json:"foreignNonBusinessIncome"`
	RentalIncome             decimal.Decimal `json:"rentalIncome"`
	RoyaltyIncome            decimal.Decimal `json:"royaltyIncome"`

	// Capital gains and losses
	CapitalGains            decimal.Decimal `json:"capitalGains"`
	CapitalLossesCurrent    decimal.Decimal `json:"capitalLosses"`
	NetCapitalLossesApplied decimal.Decimal `json:"netCapitalLossesApplied"`

	// Pension
	CPPQPPBenefits  decimal.Decimal `json:"cppQppBenefits"`
	OASBenefits     decimal.Decimal `json:"oasBenefits"`
	PrivatePension  decimal.Decimal `json:"privatePension"`
	ForeignPension  decimal.Decimal `json:"foreignPension"`
	RRIFWithdrawals decimal.Decimal `json:"rrifWithdrawals"`
	LIFWithdrawals  decimal.Decimal `json:"lifWithdrawals"`
	AnnuityIncome   decimal.Decimal `json:"annuityIncome"`

	// Government benefits and other
	EIBenefits        decimal.Decimal `json:"eiBenefits"`
	AlimonyReceived   decimal.Decimal `json:"alimonyReceived"`
	ScholarshipIncome decimal.Decimal `json:"scholarshipIncome"`
	DeathBenefits     decimal.Decimal `json:"deathBenefits"`
	OtherIncome       decimal.Decimal `json:"otherIncome"`

	// Split income (TOSI)
	SplitIncomeAmount decimal.Decimal `json:"splitIncomeAmount"`
}

// DeductionsCredits holds the claimed deduction and credit-eligible amounts.
// Each is a claimed amount, independent of whether it is later capped.
type DeductionsCredits struct {
	RRSPContribution       decimal.Decimal `json:"rrspContribution"`
	PensionContribution    decimal.Decimal `json:"pensionContribution"`
	UnionDues              decimal.Decimal `json:"unionDues"`
	ProfessionalDues       decimal.Decimal `json:"professionalDues"`
	ChildcareExpenses      decimal.Decimal `json:"childcareExpenses"`
	AlimonyPaid            decimal.Decimal `json:"alimonyPaid"`
	MedicalExpenses        decimal.Decimal `json:"medicalExpenses"`
	TuitionFees            decimal.Decimal `json:"tuitionFees"`
	StudentLoanInterest    decimal.Decimal `json:"studentLoanInterest"`
	MovingExpenses         decimal.Decimal `json:"movingExpenses"`
	CharitableDonations    decimal.Decimal `json:"charitableDonations"`
	PoliticalContributions decimal.Decimal `json:"politicalContributions"`
}

// AdvancedDeductions are the business and loss-carryover items.
type AdvancedDeductions struct {
	BusinessExpenses        decimal.Decimal `json:"businessExpenses"`
	CapitalCostAllowance    decimal.Decimal `json:"capitalCostAllowance"`
	NonCapitalLossesApplied decimal.Decimal `json:"nonCapitalLossesApplied"`
	FarmLossesApplied       decimal.Decimal `json:"farmLossesApplied"`
}

// ForeignTaxPaid bounds the foreign tax credit. It is never itself taxed.
type ForeignTaxPaid struct {
	ForeignBusinessTax    decimal.Decimal `json:"foreignBusinessTax"`
	ForeignNonBusinessTax decimal.Decimal `json:"foreignNonBusinessTax"`
	ForeignTaxCarryover   decimal.Decimal `json:"foreignTaxCarryover"`
}

// PensionSplitting is the pension income splitting election. The engine
// carries it through validation but does not reassign income between spouses.
type PensionSplitting struct {
	EligiblePensionIncome decimal.Decimal `json:"eligiblePensionIncome"`
	AmountToSplit         decimal.Decimal `json:"amountToSplit"`
	SplitWithSpouse       bool            `json:"splitWithSpouse"`
}
