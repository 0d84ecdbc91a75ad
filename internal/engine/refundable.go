package engine

import (
	"github.com/shopspring/decimal"

	"github.com/pereiraj52/TaX-Ray-Canada/internal/jurisdiction"
	"github.com/pereiraj52/TaX-Ray-Canada/internal/model"
)

type refundableCredits struct {
	GSTHST                  decimal.Decimal
	CanadaWorkersBenefit    decimal.Decimal
	CanadaChildBenefit      decimal.Decimal
	ClimateActionIncentive  decimal.Decimal
	WorkingIncomeTaxBenefit decimal.Decimal
}

func (r refundableCredits) Total() decimal.Decimal {
	return r.GSTHST.
		Add(r.CanadaWorkersBenefit).
		Add(r.CanadaChildBenefit).
		Add(r.ClimateActionIncentive).
		Add(r.WorkingIncomeTaxBenefit)
}

// computeRefundableCredits phases each benefit out over its income threshold,
// floored at zero. The workers benefit, climate action incentive, and legacy
// WITB stay zero pending the detail they need.
func computeRefundableCredits(rules *jurisdiction.BenefitRules, personal *model.PersonalInfo, netIncome decimal.Decimal) refundableCredits {
	var r refundableCredits

	base := rules.GSTCreditSingle
	if personal.IsMarried {
		base = rules.GSTCreditMarried
	}
	base = base.Add(decimal.NewFromInt(int64(personal.NumDependants)).Mul(rules.GSTCreditPerChild))

	r.GSTHST = base
	if netIncome.GreaterThan(rules.GSTCreditThreshold) {
		reduction := netIncome.Sub(rules.GSTCreditThreshold).Mul(rules.GSTReductionRate)
		r.GSTHST = floorZero(base.Sub(reduction))
	}

	r.CanadaChildBenefit = childBenefit(rules, personal, netIncome)

	return r
}

// childBenefit sums the per-child amount banded by age, then applies the
// tiered phase-out: the first rate between the thresholds, the second rate on
// income above the second threshold.
func childBenefit(rules *jurisdiction.BenefitRules, personal *model.PersonalInfo, netIncome decimal.Decimal) decimal.Decimal {
	if personal.NumDependants == 0 {
		return decimal.Zero
	}

	amount := decimal.Zero
	for _, age := range personal.DependantAges {
		if age < rules.CCBAgeCutoff {
			amount = amount.Add(rules.CCBMaxUnderCutoff)
		} else {
			amount = amount.Add(rules.CCBMaxOverCutoff)
		}
	}

	if netIncome.LessThanOrEqual(rules.CCBThreshold) {
		return amount
	}

	tier1Income := decimal.Min(netIncome, rules.CCBSecondThreshold).Sub(rules.CCBThreshold)
	reduction := tier1Income.Mul(rules.CCBReductionRate1)
	if netIncome.GreaterThan(rules.CCBSecondThreshold) {
		tier2 := netIncome.Sub(rules.CCBSecondThreshold).Mul(rules.CCBReductionRate2)
		reduction = reduction.Add(tier2)
	}

	return floorZero(amount.Sub(reduction))
}
