// Package engine is the tax computation pipeline: a single-pass,
// deterministic sequence from income aggregation through refundable credits,
// parameterized entirely by the jurisdiction registry.
package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pereiraj52/TaX-Ray-Canada/internal/jurisdiction"
	"github.com/pereiraj52/TaX-Ray-Canada/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Engine computes complete tax results against a read-only registry. It holds
// no per-request state and is safe for concurrent use.
type Engine struct {
	reg *jurisdiction.Registry
}

func New(reg *jurisdiction.Registry) *Engine {
	return &Engine{reg: reg}
}

// Calculate validates the return and runs the fixed pipeline: income →
// bracket taxes (federal, provincial, surtax, TOSI) → credits → AMT
// comparison → payroll → clawbacks → refundable credits → result assembly.
func (e *Engine) Calculate(ret *model.TaxReturn) (*model.TaxResult, error) {
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	profile, err := e.reg.Profile(ret.Province)
	if err != nil {
		return nil, err
	}

	fed := e.reg.Federal()

	inc := aggregateIncome(fed, &ret.Income, &ret.Deductions, &ret.AdvancedDeductions)

	federalTax := taxOnBrackets(inc.Taxable, fed.Brackets)
	provincialTax := taxOnBrackets(inc.Taxable, profile.Brackets)
	surtax := provincialSurtax(provincialTax, profile.Surtax)

	// TOSI: the federal table applied to the split-income amount alone, on
	// top of regular federal tax.
	splitIncome := ret.Income.SplitIncomeAmount
	tosiTax := decimal.Zero
	if splitIncome.IsPositive() {
		tosiTax = taxOnBrackets(splitIncome, fed.Brackets)
	}

	totalBeforeCredits := federalTax.Add(provincialTax).Add(surtax).Add(tosiTax)

	credits := computeCredits(fed, &ret.PersonalInfo, &ret.Income, &ret.Deductions, inc.Net)
	credits.ForeignTax = foreignTaxCredit(fed, &ret.ForeignTax, federalTax)
	creditTotal := credits.Total()

	taxAfterCredits := floorZero(totalBeforeCredits.Sub(creditTotal))

	amt := computeAMT(fed, inc.Total, &ret.Income, &ret.AdvancedDeductions)
	finalTax := decimal.Max(taxAfterCredits, amt.Tax)

	payroll := e.reg.Payroll()
	cpp := pensionContribution(payroll, ret.Income.EmploymentIncome, profile.ParallelPensionPlan)
	ei := insuranceContribution(payroll, ret.Income.EmploymentIncome, profile.ParallelInsurancePlan)

	claw := computeClawbacks(e.reg.Benefits(), inc.Net, &ret.Income)

	refundable := computeRefundableCredits(e.reg.Benefits(), &ret.PersonalInfo, inc.Net)

	totalPayable := finalTax.Add(cpp).Add(ei).Add(claw.Total())
	netAfterTax := inc.Net.Sub(totalPayable).Add(refundable.Total())

	averageRate := decimal.Zero
	if inc.Net.IsPositive() {
		averageRate = totalPayable.Div(inc.Net).Mul(hundred)
	}
	combinedMarginal := marginalRate(inc.Taxable, fed.Brackets).
		Add(marginalRate(inc.Taxable, profile.Brackets)).
		Mul(hundred)

	return &model.TaxResult{
		TotalIncome:              round2(inc.Total),
		NetIncome:                round2(inc.Net),
		TaxableIncome:            round2(inc.Taxable),
		SplitIncomeSubjectToTOSI: round2(splitIncome),

		FederalTax:            round2(federalTax),
		ProvincialTax:         round2(provincialTax),
		ProvincialSurtax:      round2(surtax),
		TotalTaxBeforeCredits: round2(totalBeforeCredits),

		AMTIncome:       round2(amt.Income),
		AMTTax:          round2(amt.Tax),
		AMTCarryforward: round2(amt.Carryforward),

		TOSITax: round2(tosiTax),

		BasicPersonalCredit:       round2(credits.BasicPersonal),
		SpouseCredit:              round2(credits.Spouse),
		DependantCredit:           round2(credits.Dependant),
		AgeCredit:                 round2(credits.Age),
		PensionCredit:             round2(credits.Pension),
		DisabilityCredit:          round2(credits.Disability),
		TuitionCredit:             round2(credits.Tuition),
		MedicalCredit:             round2(credits.Medical),
		CharitableCredit:          round2(credits.Charitable),
		PoliticalCredit:           round2(credits.Political),
		VolunteerCredit:           round2(credits.Volunteer),
		ForeignTaxCredit:          round2(credits.ForeignTax),
		TotalNonRefundableCredits: round2(creditTotal),

		TotalTaxAfterCredits: round2(taxAfterCredits),

		CPPContribution: round2(cpp),
		EIContribution:  round2(ei),

		GSTHSTCredit:            round2(refundable.GSTHST),
		CanadaWorkersBenefit:    round2(refundable.CanadaWorkersBenefit),
		CanadaChildBenefit:      round2(refundable.CanadaChildBenefit),
		ClimateActionIncentive:  round2(refundable.ClimateActionIncentive),
		WorkingIncomeTaxBenefit: round2(refundable.WorkingIncomeTaxBenefit),
		TotalRefundableCredits:  round2(refundable.Total()),

		OASClawback:            round2(claw.OAS),
		EIBenefitClawback:      round2(claw.EI),
		SocialBenefitRepayment: round2(claw.SocialBenefit),
		TotalClawbacks:         round2(claw.Total()),

		TotalPayable:      round2(totalPayable),
		NetIncomeAfterTax: round2(netAfterTax),
		AverageTaxRate:    round2(averageRate),
		MarginalTaxRate:   round2(combinedMarginal),
	}, nil
}

// Process wraps Calculate in the service envelope with calculation metadata.
func (e *Engine) Process(ret *model.TaxReturn) (*model.CalculationResponse, error) {
	start := time.Now()

	result, err := e.Calculate(ret)
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			Jurisdiction:           ret.Province,
			TaxYear:                ret.TaxYear,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     model.OutcomeSuccess,
		},
		Result: result,
	}, nil
}

// provincialSurtax adds each tier's rate on the portion of provincial tax
// above that tier's threshold.
func provincialSurtax(provincialTax decimal.Decimal, tiers []jurisdiction.SurtaxTier) decimal.Decimal {
	surtax := decimal.Zero
	for _, tier := range tiers {
		if provincialTax.GreaterThan(tier.Threshold) {
			surtax = surtax.Add(provincialTax.Sub(tier.Threshold).Mul(tier.Rate))
		}
	}
	return surtax
}

func round2(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}
