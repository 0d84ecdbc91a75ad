package engine

import (
	"github.com/shopspring/decimal"

	"github.com/pereiraj52/TaX-Ray-Canada/internal/jurisdiction"
	"github.com/pereiraj52/TaX-Ray-Canada/internal/model"
)

type clawbacks struct {
	OAS           decimal.Decimal
	EI            decimal.Decimal
	SocialBenefit decimal.Decimal
}

func (c clawbacks) Total() decimal.Decimal {
	return c.OAS.Add(c.EI).Add(c.SocialBenefit)
}

// computeClawbacks reduces benefits by the excess of net income over each
// program's threshold, never recovering more than the benefit received.
func computeClawbacks(rules *jurisdiction.BenefitRules, netIncome decimal.Decimal, in *model.IncomeDetails) clawbacks {
	var c clawbacks

	if netIncome.GreaterThan(rules.OASClawbackThreshold) {
		excess := netIncome.Sub(rules.OASClawbackThreshold).Mul(rules.OASClawbackRate)
		c.OAS = decimal.Min(in.OASBenefits, excess)
	}

	if netIncome.GreaterThan(rules.EIClawbackThreshold) && in.EIBenefits.IsPositive() {
		excess := netIncome.Sub(rules.EIClawbackThreshold).Mul(rules.EIClawbackRate)
		c.EI = decimal.Min(in.EIBenefits.Mul(rules.EIClawbackCapFraction), excess)
	}

	// Social benefit repayment needs per-benefit detail not modeled here.
	c.SocialBenefit = decimal.Zero

	return c
}
