package engine

import (
	"github.com/shopspring/decimal"

	"github.com/pereiraj52/TaX-Ray-Canada/internal/jurisdiction"
	"github.com/pereiraj52/TaX-Ray-Canada/internal/model"
)

// nonRefundableCredits holds every non-refundable credit individually so the
// result can expose them line by line.
type nonRefundableCredits struct {
	BasicPersonal decimal.Decimal
	Spouse        decimal.Decimal
	Dependant     decimal.Decimal
	Age           decimal.Decimal
	Pension       decimal.Decimal
	Disability    decimal.Decimal
	Tuition       decimal.Decimal
	Medical       decimal.Decimal
	Charitable    decimal.Decimal
	Political     decimal.Decimal
	Volunteer     decimal.Decimal
	ForeignTax    decimal.Decimal
}

func (c nonRefundableCredits) Total() decimal.Decimal {
	return c.BasicPersonal.
		Add(c.Spouse).
		Add(c.Dependant).
		Add(c.Age).
		Add(c.Pension).
		Add(c.Disability).
		Add(c.Tuition).
		Add(c.Medical).
		Add(c.Charitable).
		Add(c.Political).
		Add(c.Volunteer).
		Add(c.ForeignTax)
}

// computeCredits evaluates each non-refundable credit under its own
// phase-out or tier rule. Every credit without a statutory rate of its own is
// scaled by the federal lowest-bracket rate.
func computeCredits(fed *jurisdiction.FederalRules, personal *model.PersonalInfo, in *model.IncomeDetails, ded *model.DeductionsCredits, netIncome decimal.Decimal) nonRefundableCredits {
	a := &fed.Amounts
	var c nonRefundableCredits

	c.BasicPersonal = a.BasicPersonal.Mul(a.CreditRate)

	if personal.IsMarried {
		base := floorZero(a.SpouseEquivalent.Sub(personal.SpouseIncome))
		c.Spouse = base.Mul(a.CreditRate)
	}

	c.Dependant = decimal.NewFromInt(int64(personal.NumDependants)).
		Mul(a.Dependant).
		Mul(a.CreditRate)

	if personal.Age >= 65 {
		reduction := floorZero(netIncome.Sub(a.AgeThreshold)).Mul(a.AgeReductionRate)
		c.Age = floorZero(a.AgeAmount.Sub(reduction)).Mul(a.CreditRate)
	}

	eligiblePension := decimal.Min(a.PensionAmount, in.PrivatePension.Add(in.RRIFWithdrawals))
	c.Pension = eligiblePension.Mul(a.CreditRate)

	if personal.HasDisability {
		c.Disability = a.DisabilityAmount.Mul(a.CreditRate)
	}

	// Tuition is uncapped here; real filings cap it by tax otherwise payable.
	c.Tuition = ded.TuitionFees.Mul(a.CreditRate)

	medicalFloor := decimal.Min(a.MedicalExpenseFloor, netIncome.Mul(a.MedicalIncomeFraction))
	c.Medical = floorZero(ded.MedicalExpenses.Sub(medicalFloor)).Mul(a.MedicalRate)

	c.Charitable = charitableCredit(a, ded.CharitableDonations)

	c.Political = decimal.Min(
		ded.PoliticalContributions.Mul(a.PoliticalCreditRate),
		a.PoliticalCreditMax,
	)

	// The firefighter and search-and-rescue amounts cannot both be claimed.
	if personal.IsVolunteerFirefighter {
		c.Volunteer = a.VolunteerFirefighterAmount.Mul(a.CreditRate)
	} else if personal.IsSearchRescueVolunteer {
		c.Volunteer = a.SearchRescueAmount.Mul(a.CreditRate)
	}

	return c
}

// charitableCredit applies the two-tier donation rates: the low band at the
// low rate, the remainder at the high rate.
func charitableCredit(a *jurisdiction.FederalAmounts, donations decimal.Decimal) decimal.Decimal {
	if donations.LessThanOrEqual(a.CharitableLowBand) {
		return donations.Mul(a.CharitableRateLow)
	}
	return a.CharitableLowBand.Mul(a.CharitableRateLow).
		Add(donations.Sub(a.CharitableLowBand).Mul(a.CharitableRateHigh))
}

// foreignTaxCredit bounds the credit by the foreign tax actually paid and by
// a limiting fraction of federal tax. A single pooled limit stands in for the
// separate business and non-business limitation pools.
func foreignTaxCredit(fed *jurisdiction.FederalRules, foreign *model.ForeignTaxPaid, federalTax decimal.Decimal) decimal.Decimal {
	paid := foreign.ForeignBusinessTax.Add(foreign.ForeignNonBusinessTax)
	if paid.IsZero() {
		return decimal.Zero
	}
	return decimal.Min(paid, federalTax.Mul(fed.Amounts.ForeignTaxCreditLimit))
}
