package jurisdiction

// 2024 provincial and territorial profiles.

func provinces2024() []*Profile {
	return []*Profile{
		{
			Code: "AB",
			Name: "Alberta",
			Brackets: []TaxBracket{
				topBracket("0", "0.10"),
			},
			Amounts: CreditAmounts{
				BasicPersonal:             d("21003"),
				SpouseEquivalent:          d("21003"),
				AgeAmount:                 d("27060"),
				PensionAmount:             d("1360"),
				DisabilityAmount:          d("17787"),
				MedicalRate:               d("0.10"),
				CharitableRate:            d("0.10"),
				DividendTaxCredit:         d("0.10"),
				PoliticalContributionRate: d("0.75"),
			},
		},
		{
			Code: "BC",
			Name: "British Columbia",
			Brackets: []TaxBracket{
				bracket("0", "47937", "0.0506"),
				bracket("47937", "95875", "0.077"),
				bracket("95875", "110076", "0.105"),
				bracket("110076", "133664", "0.1229"),
				bracket("133664", "181232", "0.147"),
				topBracket("181232", "0.2045"),
			},
			Amounts: CreditAmounts{
				BasicPersonal:             d("12580"),
				SpouseEquivalent:          d("12580"),
				AgeAmount:                 d("4908"),
				PensionAmount:             d("1000"),
				DisabilityAmount:          d("8405"),
				MedicalRate:               d("0.0506"),
				CharitableRate:            d("0.0506"),
				DividendTaxCredit:         d("0.10"),
				PoliticalContributionRate: d("0.75"),
			},
		},
		{
			Code: "MB",
			Name: "Manitoba",
			Brackets: []TaxBracket{
				bracket("0", "47000", "0.108"),
				bracket("47000", "100000", "0.1275"),
				topBracket("100000", "0.174"),
			},
			Amounts: CreditAmounts{
				BasicPersonal:             d("15780"),
				SpouseEquivalent:          d("15780"),
				AgeAmount:                 d("3728"),
				PensionAmount:             d("1000"),
				DisabilityAmount:          d("4530"),
				MedicalRate:               d("0.108"),
				CharitableRate:            d("0.108"),
				DividendTaxCredit:         d("0.08"),
				PoliticalContributionRate: d("0.75"),
			},
		},
		{
			Code: "NB",
			Name: "New Brunswick",
			Brackets: []TaxBracket{
				bracket("0", "49958", "0.094"),
				bracket("49958", "99916", "0.14"),
				bracket("99916", "185064", "0.16"),
				topBracket("185064", "0.195"),
			},
			Amounts: CreditAmounts{
				BasicPersonal:             d("12458"),
				SpouseEquivalent:          d("12458"),
				AgeAmount:                 d("5355"),
				PensionAmount:             d("1000"),
				DisabilityAmount:          d("8870"),
				MedicalRate:               d("0.094"),
				CharitableRate:            d("0.094"),
				DividendTaxCredit:         d("0.0275"),
				PoliticalContributionRate: d("0.75"),
			},
		},
		{
			Code: "NL",
			Name: "Newfoundland and Labrador",
			Brackets: []TaxBracket{
				bracket("0", "43198", "0.087"),
				bracket("43198", "86395", "0.145"),
				bracket("86395", "154244", "0.158"),
				bracket("154244", "215943", "0.178"),
				topBracket("215943", "0.198"),
			},
			Amounts: CreditAmounts{
				BasicPersonal:             d("10382"),
				SpouseEquivalent:          d("10382"),
				AgeAmount:                 d("7401"),
				PensionAmount:             d("1000"),
				DisabilityAmount:          d("4200"),
				MedicalRate:               d("0.087"),
				CharitableRate:            d("0.087"),
				DividendTaxCredit:         d("0.035"),
				PoliticalContributionRate: d("0.75"),
			},
		},
		{
			Code: "NS",
			Name: "Nova Scotia",
			Brackets: []TaxBracket{
				bracket("0", "29590", "0.0879"),
				bracket("29590", "59180", "0.1495"),
				bracket("59180", "93000", "0.1667"),
				bracket("93000", "150000", "0.175"),
				topBracket("150000", "0.21"),
			},
			Amounts: CreditAmounts{
				BasicPersonal:             d("8744"),
				SpouseEquivalent:          d("8744"),
				AgeAmount:                 d("6313"),
				PensionAmount:             d("1000"),
				DisabilityAmount:          d("7341"),
				MedicalRate:               d("0.0879"),
				CharitableRate:            d("0.0879"),
				DividendTaxCredit:         d("0.0885"),
				PoliticalContributionRate: d("0.75"),
			},
		},
		{
			Code: "NT",
			Name: "Northwest Territories",
			Brackets: []TaxBracket{
				bracket("0", "50597", "0.059"),
				bracket("50597", "101198", "0.086"),
				bracket("101198", "164525", "0.122"),
				topBracket("164525", "0.1405"),
			},
			Amounts: CreditAmounts{
				BasicPersonal:             d("16593"),
				SpouseEquivalent:          d("16593"),
				AgeAmount:                 d("7898"),
				PensionAmount:             d("1000"),
				DisabilityAmount:          d("4637"),
				MedicalRate:               d("0.059"),
				CharitableRate:            d("0.059"),
				DividendTaxCredit:         d("0.115"),
				PoliticalContributionRate: d("0.75"),
			},
		},
		{
			Code: "NU",
			Name: "Nunavut",
			Brackets: []TaxBracket{
				bracket("0", "53268", "0.04"),
				bracket("53268", "106537", "0.07"),
				bracket("106537", "173205", "0.09"),
				topBracket("173205", "0.115"),
			},
			Amounts: CreditAmounts{
				BasicPersonal:             d("19531"),
				SpouseEquivalent:          d("19531"),
				AgeAmount:                 d("7898"),
				PensionAmount:             d("1000"),
				DisabilityAmount:          d("4637"),
				MedicalRate:               d("0.04"),
				CharitableRate:            d("0.04"),
				DividendTaxCredit:         d("0.0551"),
				PoliticalContributionRate: d("0.75"),
			},
		},
		{
			Code: "ON",
			Name: "Ontario",
			Brackets: []TaxBracket{
				bracket("0", "51446", "0.0505"),
				bracket("51446", "102894", "0.0915"),
				bracket("102894", "150000", "0.1116"),
				bracket("150000", "220000", "0.1216"),
				topBracket("220000", "0.1316"),
			},
			Amounts: CreditAmounts{
				BasicPersonal:             d("12399"),
				SpouseEquivalent:          d("12399"),
				AgeAmount:                 d("5846"),
				PensionAmount:             d("1000"),
				DisabilityAmount:          d("9545"),
				MedicalRate:               d("0.0505"),
				CharitableRate:            d("0.0505"),
				DividendTaxCredit:         d("0.10"),
				PoliticalContributionRate: d("0.75"),
			},
			Surtax: []SurtaxTier{
				{Threshold: d("5554"), Rate: d("0.20")},
				{Threshold: d("7108"), Rate: d("0.36")},
			},
			HealthPremium: true,
		},
		{
			Code: "PE",
			Name: "Prince Edward Island",
			Brackets: []TaxBracket{
				bracket("0", "32656", "0.098"),
				bracket("32656", "65312", "0.138"),
				bracket("65312", "105000", "0.167"),
				topBracket("105000", "0.187"),
			},
			Amounts: CreditAmounts{
				BasicPersonal:             d("12500"),
				SpouseEquivalent:          d("12500"),
				AgeAmount:                 d("4207"),
				PensionAmount:             d("1000"),
				DisabilityAmount:          d("7341"),
				MedicalRate:               d("0.098"),
				CharitableRate:            d("0.098"),
				DividendTaxCredit:         d("0.105"),
				PoliticalContributionRate: d("0.75"),
			},
			Surtax: []SurtaxTier{
				{Threshold: d("12500"), Rate: d("0.10")},
			},
		},
		{
			Code: "QC",
			Name: "Quebec",
			Brackets: []TaxBracket{
				bracket("0", "51780", "0.14"),
				bracket("51780", "103545", "0.19"),
				bracket("103545", "126000", "0.24"),
				topBracket("126000", "0.2575"),
			},
			Amounts: CreditAmounts{
				BasicPersonal:             d("18056"),
				SpouseEquivalent:          d("18056"),
				AgeAmount:                 d("3208"),
				PensionAmount:             d("2815"),
				DisabilityAmount:          d("3708"),
				MedicalRate:               d("0.20"),
				CharitableRate:            d("0.20"),
				DividendTaxCredit:         d("0.0778"),
				PoliticalContributionRate: d("0.75"),
			},
			ParallelPensionPlan:   true,
			ParallelInsurancePlan: true,
		},
		{
			Code: "SK",
			Name: "Saskatchewan",
			Brackets: []TaxBracket{
				bracket("0", "52057", "0.105"),
				bracket("52057", "148734", "0.125"),
				topBracket("148734", "0.145"),
			},
			Amounts: CreditAmounts{
				BasicPersonal:             d("17661"),
				SpouseEquivalent:          d("17661"),
				AgeAmount:                 d("6065"),
				PensionAmount:             d("1000"),
				DisabilityAmount:          d("5659"),
				MedicalRate:               d("0.105"),
				CharitableRate:            d("0.105"),
				DividendTaxCredit:         d("0.11"),
				PoliticalContributionRate: d("0.75"),
			},
		},
		{
			Code: "YT",
			Name: "Yukon",
			Brackets: []TaxBracket{
				bracket("0", "55867", "0.064"),
				bracket("55867", "111733", "0.09"),
				bracket("111733", "173205", "0.109"),
				bracket("173205", "500000", "0.128"),
				topBracket("500000", "0.15"),
			},
			Amounts: CreditAmounts{
				BasicPersonal:             d("15705"),
				SpouseEquivalent:          d("15705"),
				AgeAmount:                 d("7898"),
				PensionAmount:             d("1000"),
				DisabilityAmount:          d("9428"),
				MedicalRate:               d("0.064"),
				CharitableRate:            d("0.064"),
				DividendTaxCredit:         d("0.124"),
				PoliticalContributionRate: d("0.75"),
			},
		},
	}
}
