package domain

import "strings"

// NormalizeSymbol trims and uppercases a ticker symbol. Tickers such as
// BRK-B or BF.B carry separators, so the only hard rule is non-empty;
// anything else is left for the data provider to reject.
func NormalizeSymbol(s string) (string, error) {
	sym := strings.ToUpper(strings.TrimSpace(s))
	if sym == "" {
		return "", ErrEmptySymbol
	}
	return sym, nil
}
