package application

import (
	"context"
	"errors"
	"time"

	"stockdash-service/internal/domain"
)

var ErrProvider = errors.New("provider error")

type fakeMarket struct {
	quote   domain.Quote
	summary domain.Summary
	history domain.History
	news    []domain.NewsItem
	stmt    domain.Statement
	err     error

	gotSymbol    string
	gotTimeframe domain.Timeframe
	gotLimit     int
}

func (f *fakeMarket) Quote(_ context.Context, symbol string) (domain.Quote, error) {
	f.gotSymbol = symbol
	if f.err != nil {
		return domain.Quote{}, f.err
	}
	return f.quote, nil
}

func (f *fakeMarket) Summary(_ context.Context, symbol string) (domain.Summary, error) {
	f.gotSymbol = symbol
	if f.err != nil {
		return domain.Summary{}, f.err
	}
	return f.summary, nil
}

func (f *fakeMarket) History(_ context.Context, symbol string, tf domain.Timeframe) (domain.History, error) {
	f.gotSymbol = symbol
	f.gotTimeframe = tf
	if f.err != nil {
		return domain.History{}, f.err
	}
	return f.history, nil
}

func (f *fakeMarket) News(_ context.Context, symbol string, limit int) ([]domain.NewsItem, error) {
	f.gotSymbol = symbol
	f.gotLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.news, nil
}

func (f *fakeMarket) Financials(_ context.Context, symbol string, _ domain.StatementType) (domain.Statement, error) {
	f.gotSymbol = symbol
	if f.err != nil {
		return domain.Statement{}, f.err
	}
	return f.stmt, nil
}

// candleRun builds n daily candles ending at end, with closes stepping
// up by one from start.
func candleRun(n int, start float64, end time.Time) []domain.Candle {
	out := make([]domain.Candle, n)
	for i := range out {
		c := start + float64(i)
		out[i] = domain.Candle{
			Date:   end.AddDate(0, 0, i-n+1),
			Open:   c - 0.5,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1_000_000,
		}
	}
	return out
}
