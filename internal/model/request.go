package model

// TaxReturn is the full input record for one computation: jurisdiction code,
// tax year, and the nested sections mirroring the upstream extraction layer's
// schema. It is created fresh per request and never mutated by the engine.
type TaxReturn struct {
	Province string `json:"province"`
	TaxYear  int    `json:"taxYear"`

	PersonalInfo       PersonalInfo       `json:"personalInfo"`
	Income             IncomeDetails      `json:"income"`
	Deductions         DeductionsCredits  `json:"deductions"`
	AdvancedDeductions AdvancedDeductions `json:"advancedDeductions"`
	ForeignTax         ForeignTaxPaid     `json:"foreignTax"`
	PensionSplitting   PensionSplitting   `json:"pensionSplitting"`
}
