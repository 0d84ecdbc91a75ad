package engine

import (
	"github.com/shopspring/decimal"

	"github.com/pereiraj52/TaX-Ray-Canada/internal/jurisdiction"
)

// taxOnBrackets integrates progressive tax over an ascending bracket table.
// Reused for federal tax, provincial tax, and tax on split income.
func taxOnBrackets(income decimal.Decimal, brackets []jurisdiction.TaxBracket) decimal.Decimal {
	total := decimal.Zero
	for _, b := range brackets {
		if income.LessThanOrEqual(b.Min) {
			break
		}
		upper := income
		if !b.Top && b.Max.LessThan(income) {
			upper = b.Max
		}
		total = total.Add(upper.Sub(b.Min).Mul(b.Rate))
	}
	return total
}

// marginalRate returns the rate of the bracket containing income, or the top
// bracket's rate when income exceeds every bounded bracket.
func marginalRate(income decimal.Decimal, brackets []jurisdiction.TaxBracket) decimal.Decimal {
	if len(brackets) == 0 {
		return decimal.Zero
	}
	for _, b := range brackets {
		if income.GreaterThanOrEqual(b.Min) && (b.Top || income.LessThan(b.Max)) {
			return b.Rate
		}
	}
	return brackets[len(brackets)-1].Rate
}
