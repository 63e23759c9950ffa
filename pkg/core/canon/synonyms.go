package canon

// DefaultSynonyms returns the built-in synonym table for sectional-title
// and body-corporate financial statements. Keys are lower-case trimmed raw
// spellings; values preserve the canonical capitalization. Extend via
// config/taxonomy.yaml rather than editing this table in place.
func DefaultSynonyms() map[string]string {
	return map[string]string{
		"property, plant and equipment": "Property, plant and equipment",
		"pp&e":                          "Property, plant and equipment",
		"ppe":                           "Property, plant and equipment",
		"other financial assets":        "Other financial assets",
		"trade and other receivables":   "Trade and other receivables",
		"trade receivables":             "Trade and other receivables",
		"cash and cash equivalents":     "Cash and Cash Equivalents",
		"cash equivalents":              "Cash and Cash Equivalents",
		"cash at bank":                  "Cash and Cash Equivalents",
		"total assets":                  "Total Assets",
		"total asset":                   "Total Assets",
		"reserves":                      "Reserves",
		"accumulated surplus":           "Accumulated surplus",
		"accum surplus":                 "Accumulated surplus",
		"accumulated deficit":           "Accumulated deficit",
		"accumulated funds":             "Accumulated Funds",
		"total equity":                  "Total Equity",
		"total equ":                     "Total Equity",
		"deferred tax liability":        "Deferred tax liability",
		"tax liability":                 "Deferred tax liability",
		"trade and other payables":      "Trade and Other Payables",
		"trade payables":                "Trade and Other Payables",
		"provisions":                    "Provisions",
		"bank overdraft":                "Bank overdraft",
		"total liabilities":             "Total Liabilities",
		"total liability":               "Total Liabilities",
		"total equity and liabilities":  "Total Equity and Liabilities",
		"total equity & liabilities":    "Total Equity and Liabilities",
		"total equity and liab":         "Total Equity and Liabilities",
		"revenue":                       "Revenue",
		"levies received":               "Levies received",
		"fines":                         "Fines",
		"water recovered":               "Water recovered",
		"ombudsman levy":                "Ombudsman levy",
		"electricity recovered":         "Electricity recovered",
		"garage levies":                 "Garage levies",
		"security levies":               "Security levies",
		"other income":                  "Other income",
		"tower rental":                  "Tower rental",
		"insurance claims received":     "Insurance claims received",
		"special levy":                  "Special levy",
		"interest received":             "Interest received",
		"fair value adjustments":        "Fair value adjustments",
		"operating expenses":            "Operating expenses",
		"accounting fees":               "Accounting fees",
		"bank charges":                  "Bank charges",
		"csos":                          "CSOS",
		"cleaning":                      "Cleaning",
		"depreciation, amortisation and impairments": "Depreciation, amortisation and impairments",
		"depreciation and amortisation":              "Depreciation, amortisation and impairments",
		"electricity":                                "Electricity",
		"employee costs":                             "Employee costs",
		"garden services":                            "Garden services",
		"insurance":                                  "Insurance",
		"management fees":                            "Management fees",
		"other expenses":                             "Other expenses",
		"petrol and oil":                             "Petrol and oil",
		"printing and stationery":                    "Printing and stationery",
		"protective clothing":                        "Protective clothing",
		"repairs and maintenance":                    "Repairs and maintenance",
		"security":                                   "Security",
		"investment revenue":                         "Investment revenue",
		"surplus (deficit) for the year":             "Surplus (deficit) for the year",
		"total comprehensive income (loss) for the year": "Total comprehensive income (loss) for the year",
		"cash on hand":                  "Cash on hand",
		"bank balances":                 "Bank balances",
		"bank balance":                  "Bank balances",
		"short-term deposits":           "Short-term deposits",
		"short term deposits":           "Short-term deposits",
		"amounts received in advance":   "Amounts received in advance",
		"deposits received":             "Deposits received",
		"legal proceedings":             "Legal proceedings",
		"rental income":                 "Rental Income",
		"auditor's remuneration":        "Auditor's remuneration",
		"fees":                          "Auditor's remuneration",
		"bad debts":                     "Bad debts",
		"consulting and professional fees": "Consulting and professional fees",
		"interest income":                  "Interest income",
		"csos levies":                      "CSOS levies",
		"garbage levies":                   "Garbage levies",
		"compensation commissioner":        "Compensation commissioner",
		"employee costs - salaried staff":  "Employee costs - salaried staff",
		"municipal charges":                "Municipal charges",
		"electricity - recovered from members": "Electricity - recovered from members",
		"water-recovered from members":         "Water - recovered from members",
		"maintenance":                          "Maintenance",
		// "maintenace" below is a recurring OCR typo, kept deliberately.
		"elevator maintenace":          "Elevator maintenance",
		"total income":                 "Total Income",
		"total operating expenses":     "Total Operating Expenses",
		"(deficit) surplus for the year": "(Deficit) surplus for the year",
		"surplus before taxation":        "Surplus before taxation",
		"adjustments for":                "Adjustments for",
		"movements in provisions":        "Movements in provisions",
		"changes in working capital":     "Changes in working capital",
		"net provisions":                 "Net provisions",
		"taxation":                       "Taxation",
		"non provision of tax":           "Non provision of tax",
		"cash generated from (used in) operations": "Cash generated from (used in) operations",
		"basic": "Basic (Employee Cost)",
		"uif":   "UIF (Employee Cost)",
		// Statements frequently list the bank's name instead of the account line.
		"absa": "Bank balances",
	}
}
