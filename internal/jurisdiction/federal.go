package jurisdiction

import "github.com/shopspring/decimal"

// 2024 federal rules.

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func bracket(min, max, rate string) TaxBracket {
	return TaxBracket{Min: d(min), Max: d(max), Rate: d(rate)}
}

func topBracket(min, rate string) TaxBracket {
	return TaxBracket{Min: d(min), Rate: d(rate), Top: true}
}

func federal2024() FederalRules {
	return FederalRules{
		Brackets: []TaxBracket{
			bracket("0", "55867", "0.15"),
			bracket("55867", "111733", "0.205"),
			bracket("111733", "173205", "0.26"),
			bracket("173205", "246752", "0.29"),
			topBracket("246752", "0.33"),
		},
		Amounts: FederalAmounts{
			BasicPersonal:    d("15705"),
			SpouseEquivalent: d("15705"),
			Dependant:        d("2616"),
			Caregiver:        d("2616"),
			AgeAmount:        d("8790"),
			AgeThreshold:     d("42335"),
			AgeReductionRate: d("0.15"),
			PensionAmount:    d("2000"),
			DisabilityAmount: d("9428"),

			CreditRate:         d("0.15"),
			MedicalRate:        d("0.15"),
			CharitableRateLow:  d("0.15"),
			CharitableRateHigh: d("0.29"),
			CharitableLowBand:  d("200"),

			MedicalExpenseFloor:   d("2759"),
			MedicalIncomeFraction: d("0.03"),

			DividendGrossUp:   d("1.38"),
			DividendTaxCredit: d("0.2505"),

			PoliticalCreditRate: d("0.75"),
			PoliticalCreditMax:  d("650"),

			VolunteerFirefighterAmount: d("3000"),
			SearchRescueAmount:         d("3000"),

			ForeignTaxCreditLimit: d("0.10"),

			StockOptionDeductionRate: d("0.50"),
		},
		AMT: AMTRules{
			Exemption:             d("40000"),
			Rate:                  d("0.15"),
			StockOptionPreference: d("0.50"),
			CCAPreference:         d("0.50"),
		},
	}
}

func payroll2024() PayrollRules {
	return PayrollRules{
		CPP: PensionPlan{
			MaxPensionable:  d("71300"),
			BasicExemption:  d("3500"),
			Rate:            d("0.0595"),
			MaxContribution: d("4055.25"),
		},
		QPP: PensionPlan{
			MaxPensionable: d("71300"),
			BasicExemption: d("3500"),
			Rate:           d("0.064"),
		},
		EIMaxInsurable: d("63750"),
		EIRate:         d("0.0163"),
		EIRateReduced:  d("0.0127"),
		QPIPRate:       d("0.00494"),
	}
}

func benefits2024() BenefitRules {
	return BenefitRules{
		OASClawbackThreshold: d("86912"),
		OASClawbackRate:      d("0.15"),

		EIClawbackThreshold:   d("78750"),
		EIClawbackRate:        d("0.30"),
		EIClawbackCapFraction: d("0.30"),

		GSTCreditSingle:    d("467"),
		GSTCreditMarried:   d("612"),
		GSTCreditPerChild:  d("161"),
		GSTCreditThreshold: d("42335"),
		GSTReductionRate:   d("0.05"),

		CCBAgeCutoff:       6,
		CCBMaxUnderCutoff:  d("7787"),
		CCBMaxOverCutoff:   d("6570"),
		CCBThreshold:       d("36502"),
		CCBReductionRate1:  d("0.07"),
		CCBSecondThreshold: d("78221"),
		CCBReductionRate2:  d("0.032"),
	}
}
