package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"

	"stockdash-service/internal/domain"
)

// Statement endpoints share the summary API; each statement type maps
// to one module and the JSON key its period list lives under.
var statementModules = map[domain.StatementType]struct {
	module  string
	listKey string
}{
	domain.StatementIncome:   {"incomeStatementHistory", "incomeStatementHistory"},
	domain.StatementBalance:  {"balanceSheetHistory", "balanceSheetStatements"},
	domain.StatementCashflow: {"cashflowStatementHistory", "cashflowStatements"},
}

type yfFinancialsResponse struct {
	QuoteSummary struct {
		Result []map[string]json.RawMessage `json:"result"`
		Error  *yfError                     `json:"error"`
	} `json:"quoteSummary"`
}

// Financials fetches one statement table. Line items are decoded
// generically so new keys the provider adds still come through; value
// objects that arrive as {} mean not reported and become nil.
func (y *Yahoo) Financials(ctx context.Context, symbol string, st domain.StatementType) (domain.Statement, error) {
	mod, ok := statementModules[st]
	if !ok {
		return domain.Statement{}, fmt.Errorf("yahoo: financials: %w: %q", domain.ErrUnknownStatement, st)
	}

	var out yfFinancialsResponse
	resp, err := y.http.R().
		SetContext(ctx).
		SetQueryParam("modules", mod.module).
		SetResult(&out).
		Get("/v10/finance/quoteSummary/" + url.PathEscape(symbol))
	if err != nil {
		return domain.Statement{}, fmt.Errorf("yahoo: financials request: %w", err)
	}
	if resp.IsError() {
		return domain.Statement{}, fmt.Errorf("yahoo: financials status %d", resp.StatusCode())
	}
	if e := out.QuoteSummary.Error; e != nil {
		return domain.Statement{}, fmt.Errorf("yahoo: financials: %s %s", e.Code, e.Description)
	}
	if len(out.QuoteSummary.Result) == 0 {
		return domain.Statement{}, fmt.Errorf("yahoo: financials for %s: %w", symbol, domain.ErrNoData)
	}

	moduleRaw, ok := out.QuoteSummary.Result[0][mod.module]
	if !ok {
		return domain.Statement{}, fmt.Errorf("yahoo: financials for %s: %w", symbol, domain.ErrNoData)
	}
	var lists map[string]json.RawMessage
	if err := json.Unmarshal(moduleRaw, &lists); err != nil {
		return domain.Statement{}, fmt.Errorf("yahoo: financials decode: %w", err)
	}
	var periods []map[string]json.RawMessage
	if raw, ok := lists[mod.listKey]; ok {
		if err := json.Unmarshal(raw, &periods); err != nil {
			return domain.Statement{}, fmt.Errorf("yahoo: financials decode: %w", err)
		}
	}

	stmt := domain.Statement{Symbol: symbol, Type: st}
	for _, period := range periods {
		var end struct {
			Fmt string `json:"fmt"`
		}
		if raw, ok := period["endDate"]; ok {
			_ = json.Unmarshal(raw, &end)
		}
		stmt.Periods = append(stmt.Periods, end.Fmt)
	}

	// Union of line-item keys across periods, sorted for a stable row
	// order before the accounting sort runs.
	keySet := map[string]bool{}
	for _, period := range periods {
		for k := range period {
			if k != "endDate" && k != "maxAge" {
				keySet[k] = true
			}
		}
	}
	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		row := domain.StatementRow{Key: k, Values: make([]*float64, len(periods))}
		reported := false
		for pi, period := range periods {
			raw, ok := period[k]
			if !ok {
				continue
			}
			var v yfRaw
			if err := json.Unmarshal(raw, &v); err != nil {
				continue
			}
			if v.Fmt == "" && v.Raw == 0 {
				continue
			}
			val := v.Raw
			row.Values[pi] = &val
			reported = true
		}
		if reported {
			stmt.Rows = append(stmt.Rows, row)
		}
	}
	return stmt, nil
}
