// Package jurisdiction holds the per-jurisdiction tax tables: brackets,
// credit amounts, surtax rules, payroll constants, and benefit thresholds.
// It is pure configuration; all computation lives in the engine.
package jurisdiction

import "github.com/shopspring/decimal"

// TaxBracket is one contiguous income range taxed at a single marginal rate.
// The final bracket of a table is marked Top and has no upper bound.
type TaxBracket struct {
	Min  decimal.Decimal `yaml:"min" json:"min"`
	Max  decimal.Decimal `yaml:"max" json:"max"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
	Top  bool            `yaml:"top,omitempty" json:"top,omitempty"`
}

// SurtaxTier adds Rate on the portion of provincial tax above Threshold.
type SurtaxTier struct {
	Threshold decimal.Decimal `yaml:"threshold" json:"threshold"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
}

// CreditAmounts are a province's named constant amounts and statutory rates.
type CreditAmounts struct {
	BasicPersonal             decimal.Decimal `yaml:"basic_personal" json:"basicPersonal"`
	SpouseEquivalent          decimal.Decimal `yaml:"spouse_equivalent" json:"spouseEquivalent"`
	AgeAmount                 decimal.Decimal `yaml:"age_amount" json:"ageAmount"`
	PensionAmount             decimal.Decimal `yaml:"pension_amount" json:"pensionAmount"`
	DisabilityAmount          decimal.Decimal `yaml:"disability_amount" json:"disabilityAmount"`
	MedicalRate               decimal.Decimal `yaml:"medical_rate" json:"medicalRate"`
	CharitableRate            decimal.Decimal `yaml:"charitable_rate" json:"charitableRate"`
	DividendTaxCredit         decimal.Decimal `yaml:"dividend_tax_credit" json:"dividendTaxCredit"`
	PoliticalContributionRate decimal.Decimal `yaml:"political_contribution_rate" json:"politicalContributionRate"`
}

// Profile is one provincial or territorial jurisdiction, keyed by its
// two-letter code.
type Profile struct {
	Code     string        `yaml:"-" json:"code"`
	Name     string        `yaml:"name" json:"name"`
	Brackets []TaxBracket  `yaml:"brackets" json:"brackets"`
	Amounts  CreditAmounts `yaml:"amounts" json:"amounts"`
	Surtax   []SurtaxTier  `yaml:"surtax,omitempty" json:"surtax,omitempty"`

	HealthPremium bool `yaml:"health_premium,omitempty" json:"healthPremium,omitempty"`
	// ParallelPensionPlan routes pensionable earnings through the provincial
	// plan (QPP) instead of CPP.
	ParallelPensionPlan bool `yaml:"parallel_pension_plan,omitempty" json:"parallelPensionPlan,omitempty"`
	// ParallelInsurancePlan applies the reduced EI rate plus the provincial
	// parental insurance premium (QPIP).
	ParallelInsurancePlan bool `yaml:"parallel_insurance_plan,omitempty" json:"parallelInsurancePlan,omitempty"`
}

// FederalAmounts are the federal constant amounts and statutory rates.
type FederalAmounts struct {
	BasicPersonal    decimal.Decimal `yaml:"basic_personal" json:"basicPersonal"`
	SpouseEquivalent decimal.Decimal `yaml:"spouse_equivalent" json:"spouseEquivalent"`
	Dependant        decimal.Decimal `yaml:"dependant" json:"dependant"`
	Caregiver        decimal.Decimal `yaml:"caregiver" json:"caregiver"`
	AgeAmount        decimal.Decimal `yaml:"age_amount" json:"ageAmount"`
	AgeThreshold     decimal.Decimal `yaml:"age_threshold" json:"ageThreshold"`
	AgeReductionRate decimal.Decimal `yaml:"age_reduction_rate" json:"ageReductionRate"`
	PensionAmount    decimal.Decimal `yaml:"pension_amount" json:"pensionAmount"`
	DisabilityAmount decimal.Decimal `yaml:"disability_amount" json:"disabilityAmount"`

	// CreditRate is the lowest federal bracket rate, applied to every credit
	// that has no statutory rate of its own.
	CreditRate         decimal.Decimal `yaml:"credit_rate" json:"creditRate"`
	MedicalRate        decimal.Decimal `yaml:"medical_rate" json:"medicalRate"`
	CharitableRateLow  decimal.Decimal `yaml:"charitable_rate_low" json:"charitableRateLow"`
	CharitableRateHigh decimal.Decimal `yaml:"charitable_rate_high" json:"charitableRateHigh"`
	// CharitableLowBand is the donation amount credited at the low rate.
	CharitableLowBand decimal.Decimal `yaml:"charitable_low_band" json:"charitableLowBand"`

	// Medical expense floor: min(MedicalExpenseFloor, net income × MedicalIncomeFraction).
	MedicalExpenseFloor   decimal.Decimal `yaml:"medical_expense_floor" json:"medicalExpenseFloor"`
	MedicalIncomeFraction decimal.Decimal `yaml:"medical_income_fraction" json:"medicalIncomeFraction"`

	DividendGrossUp   decimal.Decimal `yaml:"dividend_gross_up" json:"dividendGrossUp"`
	DividendTaxCredit decimal.Decimal `yaml:"dividend_tax_credit" json:"dividendTaxCredit"`

	PoliticalCreditRate decimal.Decimal `yaml:"political_credit_rate" json:"politicalCreditRate"`
	PoliticalCreditMax  decimal.Decimal `yaml:"political_credit_max" json:"politicalCreditMax"`

	VolunteerFirefighterAmount decimal.Decimal `yaml:"volunteer_firefighter_amount" json:"volunteerFirefighterAmount"`
	SearchRescueAmount         decimal.Decimal `yaml:"search_rescue_amount" json:"searchRescueAmount"`

	// ForeignTaxCreditLimit bounds the foreign tax credit at federal tax
	// times this fraction.
	ForeignTaxCreditLimit decimal.Decimal `yaml:"foreign_tax_credit_limit" json:"foreignTaxCreditLimit"`

	StockOptionDeductionRate decimal.Decimal `yaml:"stock_option_deduction_rate" json:"stockOptionDeductionRate"`
}

// AMTRules parameterize the alternative minimum tax.
type AMTRules struct {
	Exemption             decimal.Decimal `yaml:"exemption" json:"exemption"`
	Rate                  decimal.Decimal `yaml:"rate" json:"rate"`
	StockOptionPreference decimal.Decimal `yaml:"stock_option_preference" json:"stockOptionPreference"`
	CCAPreference         decimal.Decimal `yaml:"cca_preference" json:"ccaPreference"`
}

// FederalRules bundle the federal bracket table, amounts, and AMT rules.
type FederalRules struct {
	Brackets []TaxBracket   `yaml:"brackets" json:"brackets"`
	Amounts  FederalAmounts `yaml:"amounts" json:"amounts"`
	AMT      AMTRules       `yaml:"amt" json:"amt"`
}

// PensionPlan holds CPP or QPP constants. A zero MaxContribution means the
// plan contribution is uncapped.
type PensionPlan struct {
	MaxPensionable  decimal.Decimal `yaml:"max_pensionable" json:"maxPensionable"`
	BasicExemption  decimal.Decimal `yaml:"basic_exemption" json:"basicExemption"`
	Rate            decimal.Decimal `yaml:"rate" json:"rate"`
	MaxContribution decimal.Decimal `yaml:"max_contribution" json:"maxContribution"`
}

// PayrollRules hold the CPP/QPP and EI/QPIP constants for the year.
type PayrollRules struct {
	CPP PensionPlan `yaml:"cpp" json:"cpp"`
	QPP PensionPlan `yaml:"qpp" json:"qpp"`

	EIMaxInsurable decimal.Decimal `yaml:"ei_max_insurable" json:"eiMaxInsurable"`
	EIRate         decimal.Decimal `yaml:"ei_rate" json:"eiRate"`
	EIRateReduced  decimal.Decimal `yaml:"ei_rate_reduced" json:"eiRateReduced"`
	QPIPRate       decimal.Decimal `yaml:"qpip_rate" json:"qpipRate"`
}

// BenefitRules hold clawback and refundable-credit thresholds for the year.
type BenefitRules struct {
	OASClawbackThreshold decimal.Decimal `yaml:"oas_clawback_threshold" json:"oasClawbackThreshold"`
	OASClawbackRate      decimal.Decimal `yaml:"oas_clawback_rate" json:"oasClawbackRate"`

	EIClawbackThreshold   decimal.Decimal `yaml:"ei_clawback_threshold" json:"eiClawbackThreshold"`
	EIClawbackRate        decimal.Decimal `yaml:"ei_clawback_rate" json:"eiClawbackRate"`
	EIClawbackCapFraction decimal.Decimal `yaml:"ei_clawback_cap_fraction" json:"eiClawbackCapFraction"`

	GSTCreditSingle    decimal.Decimal `yaml:"gst_credit_single" json:"gstCreditSingle"`
	GSTCreditMarried   decimal.Decimal `yaml:"gst_credit_married" json:"gstCreditMarried"`
	GSTCreditPerChild  decimal.Decimal `yaml:"gst_credit_per_child" json:"gstCreditPerChild"`
	GSTCreditThreshold decimal.Decimal `yaml:"gst_credit_threshold" json:"gstCreditThreshold"`
	GSTReductionRate   decimal.Decimal `yaml:"gst_reduction_rate" json:"gstReductionRate"`

	CCBAgeCutoff       int             `yaml:"ccb_age_cutoff" json:"ccbAgeCutoff"`
	CCBMaxUnderCutoff  decimal.Decimal `yaml:"ccb_max_under_cutoff" json:"ccbMaxUnderCutoff"`
	CCBMaxOverCutoff   decimal.Decimal `yaml:"ccb_max_over_cutoff" json:"ccbMaxOverCutoff"`
	CCBThreshold       decimal.Decimal `yaml:"ccb_threshold" json:"ccbThreshold"`
	CCBReductionRate1  decimal.Decimal `yaml:"ccb_reduction_rate1" json:"ccbReductionRate1"`
	CCBSecondThreshold decimal.Decimal `yaml:"ccb_second_threshold" json:"ccbSecondThreshold"`
	CCBReductionRate2  decimal.Decimal `yaml:"ccb_reduction_rate2" json:"ccbReductionRate2"`
}
