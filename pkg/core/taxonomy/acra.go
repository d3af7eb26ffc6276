package taxonomy

// Default returns the built-in subset of the ACRA taxonomy (2022.2) used when
// no overlay file is supplied. Field order matters: it is the fuzzy-resolution
// tie-break order, so filing information comes first, then the statement of
// financial position top-down, then income statement and cash flows.
func Default() *Dependencies {
	fieldTags := []FieldEntry{
		// --- Filing information ---
		{Field: "NameOfCompany", Tags: []TagDefinition{
			{ElementName: "sg-dei:NameOfCompany", DataType: TypeString, BalanceType: BalanceNone, PeriodType: PeriodDuration,
				Description: "Registered name of the filing entity"},
		}},
		{Field: "UniqueEntityNumber", Tags: []TagDefinition{
			{ElementName: "sg-dei:UniqueEntityNumber", DataType: TypeString, BalanceType: BalanceNone, PeriodType: PeriodDuration,
				Description: "UEN issued by ACRA"},
		}},
		{Field: "CurrentPeriodStartDate", Tags: []TagDefinition{
			{ElementName: "sg-dei:CurrentPeriodStartDate", DataType: TypeDate, BalanceType: BalanceNone, PeriodType: PeriodDuration,
				Description: "Start of the current reporting period"},
		}},
		{Field: "CurrentPeriodEndDate", Tags: []TagDefinition{
			{ElementName: "sg-dei:CurrentPeriodEndDate", DataType: TypeDate, BalanceType: BalanceNone, PeriodType: PeriodDuration,
				Description: "End of the current reporting period"},
		}},
		{Field: "DescriptionOfPresentationCurrency", Tags: []TagDefinition{
			{ElementName: "sg-dei:DescriptionOfPresentationCurrency", DataType: TypeString, BalanceType: BalanceNone, PeriodType: PeriodDuration,
				Description: "Presentation currency of the statements"},
		}},
		{Field: "WhetherFinancialStatementsAreAudited", Tags: []TagDefinition{
			{ElementName: "sg-dei:WhetherFinancialStatementsAreAudited", DataType: TypeBoolean, BalanceType: BalanceNone, PeriodType: PeriodDuration,
				Description: "Whether the statements were subject to audit"},
		}},
		{Field: "TypeOfXBRLFiling", Tags: []TagDefinition{
			{ElementName: "sg-dei:TypeOfXBRLFiling", DataType: TypeString, BalanceType: BalanceNone, PeriodType: PeriodDuration,
				Description: "Full or partial XBRL filing"},
		}},
		{Field: "NatureOfFinancialStatements", Tags: []TagDefinition{
			{ElementName: "sg-dei:NatureOfFinancialStatementsCompanyLevelOrConsolidated", DataType: TypeString, BalanceType: BalanceNone, PeriodType: PeriodDuration,
				Description: "Company-level or consolidated statements"},
		}},

		// --- Statement of financial position: assets ---
		{Field: "CashAndBankBalances", Tags: []TagDefinition{
			{ElementName: "sg-as:CashAndBankBalances", DataType: TypeMonetary, BalanceType: BalanceDebit, PeriodType: PeriodInstant,
				Description: "Cash and bank balances, current"},
		}},
		{Field: "TradeAndOtherReceivables", Tags: []TagDefinition{
			{ElementName: "sg-as:TradeAndOtherReceivablesCurrent", DataType: TypeMonetary, BalanceType: BalanceDebit, PeriodType: PeriodInstant,
				Description: "Trade and other receivables, current"},
		}},
		{Field: "Inventories", Tags: []TagDefinition{
			{ElementName: "sg-as:Inventories", DataType: TypeMonetary, BalanceType: BalanceDebit, PeriodType: PeriodInstant,
				Description: "Inventories"},
		}},
		{Field: "TotalCurrentAssets", Tags: []TagDefinition{
			{ElementName: "sg-as:CurrentAssets", DataType: TypeMonetary, BalanceType: BalanceDebit, PeriodType: PeriodInstant,
				Description: "Total current assets"},
		}},
		{Field: "PropertyPlantAndEquipment", Tags: []TagDefinition{
			{ElementName: "sg-as:PropertyPlantAndEquipment", DataType: TypeMonetary, BalanceType: BalanceDebit, PeriodType: PeriodInstant,
				Description: "Property, plant and equipment"},
		}},
		{Field: "TotalNoncurrentAssets", Tags: []TagDefinition{
			{ElementName: "sg-as:NoncurrentAssets", DataType: TypeMonetary, BalanceType: BalanceDebit, PeriodType: PeriodInstant,
				Description: "Total non-current assets"},
		}},
		{Field: "TotalAssets", Tags: []TagDefinition{
			{ElementName: "sg-as:Assets", DataType: TypeMonetary, BalanceType: BalanceDebit, PeriodType: PeriodInstant,
				Description: "Total assets"},
		}},

		// --- Statement of financial position: liabilities and equity ---
		{Field: "TradeAndOtherPayables", Tags: []TagDefinition{
			{ElementName: "sg-as:TradeAndOtherPayablesCurrent", DataType: TypeMonetary, BalanceType: BalanceCredit, PeriodType: PeriodInstant,
				Description: "Trade and other payables, current"},
		}},
		{Field: "Borrowings", Tags: []TagDefinition{
			{ElementName: "sg-as:LoansAndBorrowingsCurrent", DataType: TypeMonetary, BalanceType: BalanceCredit, PeriodType: PeriodInstant,
				Description: "Loans and borrowings, current"},
			{ElementName: "sg-as:LoansAndBorrowingsNoncurrent", DataType: TypeMonetary, BalanceType: BalanceCredit, PeriodType: PeriodInstant,
				Description: "Loans and borrowings, non-current"},
		}},
		{Field: "TotalCurrentLiabilities", Tags: []TagDefinition{
			{ElementName: "sg-as:CurrentLiabilities", DataType: TypeMonetary, BalanceType: BalanceCredit, PeriodType: PeriodInstant,
				Description: "Total current liabilities"},
		}},
		{Field: "TotalLiabilities", Tags: []TagDefinition{
			{ElementName: "sg-as:Liabilities", DataType: TypeMonetary, BalanceType: BalanceCredit, PeriodType: PeriodInstant,
				Description: "Total liabilities"},
		}},
		{Field: "ShareCapital", Tags: []TagDefinition{
			{ElementName: "sg-as:ShareCapital", DataType: TypeMonetary, BalanceType: BalanceCredit, PeriodType: PeriodInstant,
				Description: "Issued share capital"},
		}},
		{Field: "RetainedEarnings", Tags: []TagDefinition{
			{ElementName: "sg-as:AccumulatedProfitsLosses", DataType: TypeMonetary, BalanceType: BalanceCredit, PeriodType: PeriodInstant,
				Description: "Accumulated profits or losses"},
		}},
		{Field: "TotalEquity", Tags: []TagDefinition{
			{ElementName: "sg-as:Equity", DataType: TypeMonetary, BalanceType: BalanceCredit, PeriodType: PeriodInstant,
				Description: "Total equity attributable to owners"},
		}},

		// --- Income statement ---
		{Field: "Revenue", Tags: []TagDefinition{
			{ElementName: "sg-as:Revenue", DataType: TypeMonetary, BalanceType: BalanceCredit, PeriodType: PeriodDuration,
				Description: "Revenue from contracts with customers"},
		}},
		{Field: "CostOfSales", Tags: []TagDefinition{
			{ElementName: "sg-as:CostOfSales", DataType: TypeMonetary, BalanceType: BalanceDebit, PeriodType: PeriodDuration,
				Description: "Cost of sales"},
		}},
		{Field: "GrossProfit", Tags: []TagDefinition{
			{ElementName: "sg-as:GrossProfitLoss", DataType: TypeMonetary, BalanceType: BalanceCredit, PeriodType: PeriodDuration,
				Description: "Gross profit or loss"},
		}},
		{Field: "OtherIncome", Tags: []TagDefinition{
			{ElementName: "sg-as:OtherIncome", DataType: TypeMonetary, BalanceType: BalanceCredit, PeriodType: PeriodDuration,
				Description: "Other operating income"},
		}},
		{Field: "EmployeeBenefitsExpense", Tags: []TagDefinition{
			{ElementName: "sg-as:EmployeeBenefitsExpense", DataType: TypeMonetary, BalanceType: BalanceDebit, PeriodType: PeriodDuration,
				Description: "Employee benefits expense"},
		}},
		{Field: "DepreciationExpense", Tags: []TagDefinition{
			{ElementName: "sg-as:DepreciationOfPropertyPlantAndEquipment", DataType: TypeMonetary, BalanceType: BalanceDebit, PeriodType: PeriodDuration,
				Description: "Depreciation of property, plant and equipment"},
		}},
		{Field: "FinanceCosts", Tags: []TagDefinition{
			{ElementName: "sg-as:FinanceCosts", DataType: TypeMonetary, BalanceType: BalanceDebit, PeriodType: PeriodDuration,
				Description: "Finance costs"},
		}},
		{Field: "ProfitBeforeTax", Tags: []TagDefinition{
			{ElementName: "sg-as:ProfitLossBeforeTaxation", DataType: TypeMonetary, BalanceType: BalanceCredit, PeriodType: PeriodDuration,
				Description: "Profit or loss before taxation"},
		}},
		{Field: "IncomeTaxExpense", Tags: []TagDefinition{
			{ElementName: "sg-as:TaxExpenseBenefitContinuingOperations", DataType: TypeMonetary, BalanceType: BalanceDebit, PeriodType: PeriodDuration,
				Description: "Income tax expense"},
		}},
		{Field: "ProfitForTheYear", Tags: []TagDefinition{
			{ElementName: "sg-as:ProfitLoss", DataType: TypeMonetary, BalanceType: BalanceCredit, PeriodType: PeriodDuration,
				Description: "Profit or loss for the period"},
		}},

		// --- Cash flows ---
		{Field: "NetCashFromOperatingActivities", Tags: []TagDefinition{
			{ElementName: "sg-as:CashFlowsFromUsedInOperatingActivities", DataType: TypeMonetary, BalanceType: BalanceNone, PeriodType: PeriodDuration,
				Description: "Net cash flows from operating activities"},
		}},
		{Field: "NetCashFromInvestingActivities", Tags: []TagDefinition{
			{ElementName: "sg-as:CashFlowsFromUsedInInvestingActivities", DataType: TypeMonetary, BalanceType: BalanceNone, PeriodType: PeriodDuration,
				Description: "Net cash flows from investing activities"},
		}},
		{Field: "NetCashFromFinancingActivities", Tags: []TagDefinition{
			{ElementName: "sg-as:CashFlowsFromUsedInFinancingActivities", DataType: TypeMonetary, BalanceType: BalanceNone, PeriodType: PeriodDuration,
				Description: "Net cash flows from financing activities"},
		}},
	}

	statementTags := []TagDefinition{
		{ElementName: "sg-dei:FilingInformationAbstract", DataType: TypeString, BalanceType: BalanceNone, PeriodType: PeriodDuration,
			Description: "Filing information section"},
		{ElementName: "sg-as:StatementOfFinancialPositionAbstract", DataType: TypeString, BalanceType: BalanceNone, PeriodType: PeriodInstant,
			Description: "Statement of financial position section"},
		{ElementName: "sg-as:IncomeStatementAbstract", DataType: TypeString, BalanceType: BalanceNone, PeriodType: PeriodDuration,
			Description: "Income statement section"},
		{ElementName: "sg-as:StatementOfCashFlowsAbstract", DataType: TypeString, BalanceType: BalanceNone, PeriodType: PeriodDuration,
			Description: "Statement of cash flows section"},
		{ElementName: "sg-as:DirectorsStatementAbstract", DataType: TypeString, BalanceType: BalanceNone, PeriodType: PeriodDuration,
			Description: "Directors' statement section"},
		{ElementName: "sg-as:IndependentAuditorsReportAbstract", DataType: TypeString, BalanceType: BalanceNone, PeriodType: PeriodDuration,
			Description: "Independent auditors' report section"},
		{ElementName: "sg-as:NotesToFinancialStatementsAbstract", DataType: TypeString, BalanceType: BalanceNone, PeriodType: PeriodDuration,
			Description: "Notes to the financial statements"},
	}

	mandatory := map[string]bool{
		"NameOfCompany":                        true,
		"UniqueEntityNumber":                   true,
		"CurrentPeriodStartDate":               true,
		"CurrentPeriodEndDate":                 true,
		"DescriptionOfPresentationCurrency":    true,
		"WhetherFinancialStatementsAreAudited": true,
		"TotalAssets":                          true,
		"TotalLiabilities":                     true,
		"TotalEquity":                          true,
		"Revenue":                              true,
		"ProfitForTheYear":                     true,
		// Present in the taxonomy but optional for partial filings.
		"Inventories":      false,
		"OtherIncome":      false,
		"GrossProfit":      false,
		"TypeOfXBRLFiling": false,
	}

	return NewDependencies(fieldTags, statementTags, mandatory)
}
