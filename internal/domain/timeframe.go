package domain

import "fmt"

// Timeframe is the historical window requested from the market data
// provider. Values match the provider's range parameter verbatim.
type Timeframe string

const (
	Timeframe1W  Timeframe = "1wk"
	Timeframe1M  Timeframe = "1mo"
	Timeframe3M  Timeframe = "3mo"
	Timeframe6M  Timeframe = "6mo"
	Timeframe1Y  Timeframe = "1y"
	Timeframe2Y  Timeframe = "2y"
	Timeframe5Y  Timeframe = "5y"
	TimeframeMax Timeframe = "max"
)

const DefaultTimeframe = Timeframe1Y

// Timeframes lists the selectable windows in display order.
var Timeframes = []Timeframe{
	Timeframe1W,
	Timeframe1M,
	Timeframe3M,
	Timeframe6M,
	Timeframe1Y,
	Timeframe2Y,
	Timeframe5Y,
	TimeframeMax,
}

var timeframeLabels = map[Timeframe]string{
	Timeframe1W:  "1 Week",
	Timeframe1M:  "1 Month",
	Timeframe3M:  "3 Months",
	Timeframe6M:  "6 Months",
	Timeframe1Y:  "1 Year",
	Timeframe2Y:  "2 Years",
	Timeframe5Y:  "5 Years",
	TimeframeMax: "Max",
}

func ParseTimeframe(s string) (Timeframe, error) {
	tf := Timeframe(s)
	if _, ok := timeframeLabels[tf]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTimeframe, s)
	}
	return tf, nil
}

func (t Timeframe) String() string { return string(t) }

func (t Timeframe) Label() string { return timeframeLabels[t] }
