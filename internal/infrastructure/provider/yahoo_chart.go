package provider

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"time"

	"stockdash-service/internal/domain"
)

type yfChartResponse struct {
	Chart struct {
		Result []yfChartResult `json:"result"`
		Error  *yfError        `json:"error"`
	} `json:"chart"`
}

type yfChartResult struct {
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []yfChartQuote `json:"quote"`
	} `json:"indicators"`
}

type yfChartQuote struct {
	Open   []float64 `json:"open"`
	High   []float64 `json:"high"`
	Low    []float64 `json:"low"`
	Close  []float64 `json:"close"`
	Volume []int64   `json:"volume"`
}

// History loads the daily candle series for the window. The provider
// emits null bars for market holidays; those decode as zeros and are
// skipped. An empty series is returned as-is, not as an error.
func (y *Yahoo) History(ctx context.Context, symbol string, tf domain.Timeframe) (domain.History, error) {
	var out yfChartResponse
	resp, err := y.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"interval": "1d",
			"range":    tf.String(),
		}).
		SetResult(&out).
		Get("/v8/finance/chart/" + url.PathEscape(symbol))
	if err != nil {
		return domain.History{}, fmt.Errorf("yahoo: chart request: %w", err)
	}
	if resp.IsError() {
		return domain.History{}, fmt.Errorf("yahoo: chart status %d", resp.StatusCode())
	}
	if e := out.Chart.Error; e != nil {
		return domain.History{}, fmt.Errorf("yahoo: chart: %s %s", e.Code, e.Description)
	}
	if len(out.Chart.Result) == 0 {
		return domain.History{}, fmt.Errorf("yahoo: chart for %s: %w", symbol, domain.ErrNoData)
	}

	res := out.Chart.Result[0]
	h := domain.History{Symbol: symbol, Range: tf}
	if len(res.Indicators.Quote) == 0 {
		return h, nil
	}
	q := res.Indicators.Quote[0]
	for i, ts := range res.Timestamp {
		if i >= len(q.Open) || i >= len(q.High) || i >= len(q.Low) || i >= len(q.Close) || i >= len(q.Volume) {
			break
		}
		if q.Close[i] == 0 {
			continue
		}
		h.Candles = append(h.Candles, domain.Candle{
			Date:   time.Unix(ts, 0).UTC(),
			Open:   q.Open[i],
			High:   q.High[i],
			Low:    q.Low[i],
			Close:  q.Close[i],
			Volume: q.Volume[i],
		})
	}
	sort.Slice(h.Candles, func(i, j int) bool { return h.Candles[i].Date.Before(h.Candles[j].Date) })
	return h, nil
}
