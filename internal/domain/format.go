package domain

import (
	"fmt"
	"math"
	"strconv"
)

// FormatMoney renders a dollar amount with K, M, B, T suffixes.
func FormatMoney(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e12:
		return fmt.Sprintf("$%.2fT", v/1e12)
	case abs >= 1e9:
		return fmt.Sprintf("$%.2fB", v/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("$%.2fM", v/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("$%.2fK", v/1e3)
	default:
		return fmt.Sprintf("$%.2f", v)
	}
}

// FormatFinancial renders statement values in millions or billions,
// without a currency sign.
func FormatFinancial(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%.2fK", v/1e3)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// FormatCount renders a whole number with thousands separators.
func FormatCount(v float64) string {
	s := strconv.FormatFloat(math.Abs(v), 'f', 0, 64)
	n := len(s)
	if n > 3 {
		var b []byte
		for i, c := range []byte(s) {
			if i > 0 && (n-i)%3 == 0 {
				b = append(b, ',')
			}
			b = append(b, c)
		}
		s = string(b)
	}
	if v < 0 {
		return "-" + s
	}
	return s
}
