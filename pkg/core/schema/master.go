package schema

// MasterStructure returns the built-in taxonomy for body-corporate annual
// financial statements. Order here is the display order of the final
// report. Extend via config/taxonomy.yaml rather than editing in place.
func MasterStructure() []Category {
	return []Category{
		{
			Name: "Assets",
			Subcategories: []Subcategory{
				{Name: "Non-Current Assets", Descriptions: []string{
					"Property, plant and equipment", "Other financial assets",
				}},
				{Name: "Current Assets", Descriptions: []string{
					"Trade and other receivables", "Cash and Cash Equivalents",
					"Cash on hand", "Bank balances", "Short-term deposits",
				}},
				{Name: NoSubcategory, Descriptions: []string{"Total Assets"}},
			},
		},
		{
			Name: "Equity",
			Subcategories: []Subcategory{
				{Name: "Equity", Descriptions: []string{
					"Reserves", "Accumulated surplus", "Accumulated deficit", "Accumulated Funds",
				}},
				{Name: NoSubcategory, Descriptions: []string{"Total Equity"}},
			},
		},
		{
			Name: "Liabilities",
			Subcategories: []Subcategory{
				{Name: "Non-Current Liabilities", Descriptions: []string{
					"Deferred tax liability",
				}},
				{Name: "Current Liabilities", Descriptions: []string{
					"Trade and Other Payables", "Provisions", "Amounts received in advance",
					"Deposits received", "Bank overdraft", "Legal proceedings",
				}},
				{Name: NoSubcategory, Descriptions: []string{
					"Total Liabilities", "Total Equity and Liabilities",
				}},
			},
		},
		{
			Name: "Comprehensive Income",
			Subcategories: []Subcategory{
				{Name: "Revenue", Descriptions: []string{
					"Revenue", "Levies received", "Fines", "Water recovered", "Ombudsman levy",
					"Electricity recovered", "Garage levies", "Security levies", "Other income",
					"Tower rental", "Insurance claims received", "Special levy", "Interest received",
					"Fair value adjustments", "Investment revenue", "Rental Income",
					"Interest income", "CSOS levies", "Garbage levies",
				}},
				{Name: NoSubcategory, Descriptions: []string{"Total Income"}},
				{Name: "Operating Expenses", Descriptions: []string{
					"Operating expenses", "Accounting fees", "Auditor's remuneration",
					"Bank charges", "CSOS", "Cleaning",
					"Depreciation, amortisation and impairments", "Electricity",
					"Employee costs", "Garden services", "Insurance", "Management fees",
					"Other expenses", "Petrol and oil", "Printing and stationery",
					"Protective clothing", "Repairs and maintenance", "Security", "Bad debts",
					"Consulting and professional fees", "Compensation commissioner",
					"Employee costs - salaried staff", "Municipal charges",
					"Electricity - recovered from members", "Water - recovered from members",
					"Maintenance", "Elevator maintenance", "Basic (Employee Cost)",
					"UIF (Employee Cost)",
				}},
				{Name: NoSubcategory, Descriptions: []string{"Total Operating Expenses"}},
			},
		},
		{
			Name: "Profit/Loss",
			Subcategories: []Subcategory{
				{Name: NoSubcategory, Descriptions: []string{
					"Surplus (deficit) for the year",
					"Total comprehensive income (loss) for the year",
					"(Deficit) surplus for the year",
					"Surplus before taxation",
					"Taxation",
					"Non provision of tax",
				}},
			},
		},
		{
			Name: "Cash Flow",
			Subcategories: []Subcategory{
				{Name: "Adjustments", Descriptions: []string{
					"Adjustments for", "Movements in provisions",
					"Changes in working capital", "Net provisions",
				}},
				{Name: NoSubcategory, Descriptions: []string{
					"Cash generated from (used in) operations",
				}},
			},
		},
	}
}
