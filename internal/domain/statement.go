package domain

import (
	"fmt"
	"strings"
	"unicode"
)

type StatementType string

const (
	StatementIncome   StatementType = "income"
	StatementBalance  StatementType = "balance"
	StatementCashflow StatementType = "cashflow"
)

func ParseStatementType(s string) (StatementType, error) {
	switch StatementType(s) {
	case StatementIncome, StatementBalance, StatementCashflow:
		return StatementType(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatement, s)
}

// Statement is a line-item by period table for one symbol. Periods are
// column headers ordered most recent first; every row carries one value
// per period, nil where the provider reported nothing.
type Statement struct {
	Symbol  string
	Type    StatementType
	Periods []string
	Rows    []StatementRow
}

type StatementRow struct {
	Key     string
	Label   string
	Values  []*float64
	Display []string
}

// Standard accounting order per statement type, keyed by provider line
// items. Rows not listed here keep their incoming order and go last.
var incomeOrder = []string{
	"totalRevenue",
	"costOfRevenue",
	"grossProfit",
	"researchDevelopment",
	"sellingGeneralAdministrative",
	"nonRecurring",
	"otherOperatingExpenses",
	"totalOperatingExpenses",
	"operatingIncome",
	"totalOtherIncomeExpenseNet",
	"ebit",
	"interestExpense",
	"incomeBeforeTax",
	"incomeTaxExpense",
	"minorityInterest",
	"netIncomeFromContinuingOps",
	"discontinuedOperations",
	"extraordinaryItems",
	"effectOfAccountingCharges",
	"otherItems",
	"netIncome",
	"netIncomeApplicableToCommonShares",
}

var balanceOrder = []string{
	// Assets
	"totalAssets",
	"totalCurrentAssets",
	"cash",
	"shortTermInvestments",
	"netReceivables",
	"inventory",
	"otherCurrentAssets",
	"longTermInvestments",
	"propertyPlantEquipment",
	"goodWill",
	"intangibleAssets",
	"otherAssets",
	"deferredLongTermAssetCharges",
	// Liabilities
	"totalLiab",
	"totalCurrentLiabilities",
	"accountsPayable",
	"shortLongTermDebt",
	"otherCurrentLiab",
	"longTermDebt",
	"otherLiab",
	"deferredLongTermLiab",
	// Equity
	"totalStockholderEquity",
	"commonStock",
	"retainedEarnings",
	"treasuryStock",
	"capitalSurplus",
	"otherStockholderEquity",
	"netTangibleAssets",
}

var cashflowOrder = []string{
	// Operating activities
	"netIncome",
	"depreciation",
	"changeToNetincome",
	"changeToAccountReceivables",
	"changeToLiabilities",
	"changeToInventory",
	"changeToOperatingActivities",
	"totalCashFromOperatingActivities",
	// Investing activities
	"capitalExpenditures",
	"investments",
	"otherCashflowsFromInvestingActivities",
	"totalCashflowsFromInvestingActivities",
	// Financing activities
	"dividendsPaid",
	"salePurchaseOfStock",
	"repurchaseOfStock",
	"issuanceOfStock",
	"netBorrowings",
	"otherCashflowsFromFinancingActivities",
	"totalCashFromFinancingActivities",
	// Summary
	"effectOfExchangeRate",
	"changeInCash",
}

// Labels the generic camel-case split gets wrong.
var lineItemLabels = map[string]string{
	"ebit":                       "EBIT",
	"goodWill":                   "Goodwill",
	"totalLiab":                  "Total Liabilities",
	"otherLiab":                  "Other Liabilities",
	"otherCurrentLiab":           "Other Current Liabilities",
	"deferredLongTermLiab":       "Deferred Long Term Liabilities",
	"netIncomeFromContinuingOps": "Net Income From Continuing Operations",
	"changeToNetincome":          "Change To Net Income",
}

// LineItemLabel maps a provider line-item key to its display label.
func LineItemLabel(key string) string {
	if l, ok := lineItemLabels[key]; ok {
		return l
	}
	var b strings.Builder
	for i, r := range key {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func statementOrder(t StatementType) []string {
	switch t {
	case StatementIncome:
		return incomeOrder
	case StatementBalance:
		return balanceOrder
	case StatementCashflow:
		return cashflowOrder
	}
	return nil
}

// Arrange sorts rows into standard accounting order, fills display
// labels and formats values in millions/billions for the table view.
func (s *Statement) Arrange() {
	byKey := make(map[string]StatementRow, len(s.Rows))
	for _, r := range s.Rows {
		byKey[r.Key] = r
	}
	ordered := make([]StatementRow, 0, len(s.Rows))
	seen := make(map[string]bool, len(s.Rows))
	for _, k := range statementOrder(s.Type) {
		if r, ok := byKey[k]; ok {
			ordered = append(ordered, r)
			seen[k] = true
		}
	}
	for _, r := range s.Rows {
		if !seen[r.Key] {
			ordered = append(ordered, r)
		}
	}
	for i := range ordered {
		row := &ordered[i]
		if row.Label == "" {
			row.Label = LineItemLabel(row.Key)
		}
		row.Display = make([]string, len(row.Values))
		for j, v := range row.Values {
			if v == nil {
				row.Display[j] = "N/A"
			} else {
				row.Display[j] = FormatFinancial(*v)
			}
		}
	}
	s.Rows = ordered
}
