package engine

import (
	"github.com/shopspring/decimal"

	"github.com/pereiraj52/TaX-Ray-Canada/internal/jurisdiction"
	"github.com/pereiraj52/TaX-Ray-Canada/internal/model"
)

var half = decimal.RequireFromString("0.5")

// incomeSummary is the output of the aggregation stage, shared by every
// downstream stage.
type incomeSummary struct {
	Total   decimal.Decimal
	Net     decimal.Decimal
	Taxable decimal.Decimal
}

// totalIncome folds the raw income fields into total income: employment and
// business categories at face value, eligible Canadian dividends grossed up,
// capital gains at the 50% inclusion rate net of losses, pensions, and other
// income.
func totalIncome(fed *jurisdiction.FederalRules, in *model.IncomeDetails) decimal.Decimal {
	employment := in.EmploymentIncome.
		Add(in.EmploymentBenefits).
		Add(in.StockOptionBenefit).
		Add(in.CommissionIncome).
		Add(in.TipsGratuities)

	business := in.BusinessIncome.
		Add(in.ProfessionalIncome).
		Add(in.FarmingIncome).
		Add(in.FishingIncome).
		Add(in.PartnershipIncome)

	dividends := in.CanadianDividendIncome.Mul(fed.Amounts.DividendGrossUp).
		Add(in.ForeignDividendIncome)

	investment := in.InterestIncome.
		Add(dividends).
		Add(in.RentalIncome).
		Add(in.RoyaltyIncome).
		Add(in.ForeignBusinessIncome).
		Add(in.ForeignNonBusinessIncome)

	// Half of the net gain is taxable; prior-year net capital losses then
	// reduce it, floored at zero both times.
	capitalGains := floorZero(in.CapitalGains.Sub(in.CapitalLossesCurrent).Mul(half))
	capitalGains = floorZero(capitalGains.Sub(in.NetCapitalLossesApplied))

	pension := in.CPPQPPBenefits.
		Add(in.OASBenefits).
		Add(in.PrivatePension).
		Add(in.ForeignPension).
		Add(in.RRIFWithdrawals).
		Add(in.LIFWithdrawals).
		Add(in.AnnuityIncome)

	other := in.EIBenefits.
		Add(in.AlimonyReceived).
		Add(in.ScholarshipIncome).
		Add(in.DeathBenefits).
		Add(in.OtherIncome)

	return employment.Add(business).Add(investment).Add(capitalGains).Add(pension).Add(other)
}

// aggregateIncome runs the full income stage: total income, net income after
// deductions, and taxable income after the additional reducers.
func aggregateIncome(fed *jurisdiction.FederalRules, in *model.IncomeDetails, ded *model.DeductionsCredits, adv *model.AdvancedDeductions) incomeSummary {
	total := totalIncome(fed, in)

	deductions := ded.RRSPContribution.
		Add(ded.UnionDues).
		Add(ded.ChildcareExpenses).
		Add(ded.AlimonyPaid).
		Add(stockOptionDeduction(fed, in)).
		Add(adv.BusinessExpenses).
		Add(adv.NonCapitalLossesApplied)

	net := floorZero(total.Sub(deductions))

	// Medical and charitable amounts reduce taxable income here and also earn
	// non-refundable credits later; that mirrors the governing rule set and is
	// deliberately left unreconciled (see DESIGN.md).
	additional := ded.MedicalExpenses.
		Add(ded.CharitableDonations).
		Add(adv.FarmLossesApplied)

	taxable := floorZero(net.Sub(additional))

	return incomeSummary{Total: total, Net: net, Taxable: taxable}
}

func stockOptionDeduction(fed *jurisdiction.FederalRules, in *model.IncomeDetails) decimal.Decimal {
	if !in.StockOptionDeductionEligible {
		return decimal.Zero
	}
	return in.StockOptionBenefit.Mul(fed.Amounts.StockOptionDeductionRate)
}

func floorZero(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}
