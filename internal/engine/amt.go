package engine

import (
	"github.com/shopspring/decimal"

	"github.com/pereiraj52/TaX-Ray-Canada/internal/jurisdiction"
	"github.com/pereiraj52/TaX-Ray-Canada/internal/model"
)

type amtResult struct {
	Income       decimal.Decimal
	Tax          decimal.Decimal
	Carryforward decimal.Decimal
}

// computeAMT recomputes tax on a broadened base: total income plus the
// preference fractions of the stock-option benefit and claimed CCA, less the
// exemption, at the flat AMT rate. The caller pays the greater of this and
// the regular tax after credits. Carryforward stays zero until prior-year AMT
// data is modeled.
func computeAMT(fed *jurisdiction.FederalRules, total decimal.Decimal, in *model.IncomeDetails, adv *model.AdvancedDeductions) amtResult {
	base := total.
		Add(in.StockOptionBenefit.Mul(fed.AMT.StockOptionPreference)).
		Add(adv.CapitalCostAllowance.Mul(fed.AMT.CCAPreference))

	taxable := floorZero(base.Sub(fed.AMT.Exemption))

	return amtResult{
		Income:       base,
		Tax:          taxable.Mul(fed.AMT.Rate),
		Carryforward: decimal.Zero,
	}
}
