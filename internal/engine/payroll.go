package engine

import (
	"github.com/shopspring/decimal"

	"github.com/pereiraj52/TaX-Ray-Canada/internal/jurisdiction"
)

// pensionContribution computes the CPP or QPP contribution: pensionable
// earnings capped at the ceiling, less the basic exemption, at the plan rate,
// bounded by the plan's maximum annual contribution where one is set.
func pensionContribution(rules *jurisdiction.PayrollRules, employment decimal.Decimal, parallelPlan bool) decimal.Decimal {
	plan := &rules.CPP
	if parallelPlan {
		plan = &rules.QPP
	}

	pensionable := decimal.Min(employment, plan.MaxPensionable).Sub(plan.BasicExemption)
	contribution := floorZero(pensionable.Mul(plan.Rate))
	if plan.MaxContribution.IsPositive() {
		contribution = decimal.Min(contribution, plan.MaxContribution)
	}
	return contribution
}

// insuranceContribution computes the EI premium on insurable earnings. Where
// a parallel provincial insurance plan exists, the reduced EI rate applies
// and the parallel-plan premium is added on top.
func insuranceContribution(rules *jurisdiction.PayrollRules, employment decimal.Decimal, parallelPlan bool) decimal.Decimal {
	insurable := decimal.Min(employment, rules.EIMaxInsurable)
	if parallelPlan {
		return insurable.Mul(rules.EIRateReduced).Add(insurable.Mul(rules.QPIPRate))
	}
	return insurable.Mul(rules.EIRate)
}
