package domain

import "time"

// Candle is one daily OHLCV bar.
type Candle struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// History is the daily series for one symbol over a timeframe,
// ascending by date. A history with zero candles is valid and renders
// as an empty state, not an error.
type History struct {
	Symbol  string
	Range   Timeframe
	Candles []Candle
}

func (h History) Empty() bool { return len(h.Candles) == 0 }

// Closes returns the close column in date order.
func (h History) Closes() []float64 {
	out := make([]float64, len(h.Candles))
	for i, c := range h.Candles {
		out[i] = c.Close
	}
	return out
}
