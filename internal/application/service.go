package application

import (
	"context"
	"fmt"
	"time"

	"stockdash-service/internal/domain"
)

// Overview is everything the dashboard header and tiles need for one
// symbol: the quote, the company summary and returns derived from the
// selected window's history.
type Overview struct {
	Quote         domain.Quote
	Summary       domain.Summary
	Change        float64
	ChangePercent float64
	MonthlyReturn *float64
	YearlyReturn  *float64
	FetchedAt     time.Time
}

type DashboardService struct {
	market    MarketData
	clock     Clock
	newsLimit int
}

type Option func(*DashboardService)

func WithClock(c Clock) Option { return func(s *DashboardService) { s.clock = c } }

func WithNewsLimit(n int) Option {
	return func(s *DashboardService) {
		if n > 0 {
			s.newsLimit = n
		}
	}
}

func NewDashboardService(market MarketData, opts ...Option) *DashboardService {
	s := &DashboardService{
		market:    market,
		newsLimit: 10,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = realClock{}
	}
	return s
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Approximate trading-day windows: 21 rows per month, 252 per year.
const (
	monthlyWindow  = 21
	monthlyMinRows = 10
	yearlyWindow   = 252
	yearlyMinRows  = 100
)

// Overview fetches the quote, the company summary and the selected
// window's history, then derives the 24h change and trailing returns.
func (s *DashboardService) Overview(ctx context.Context, symbol string, tf domain.Timeframe) (Overview, error) {
	sym, err := domain.NormalizeSymbol(symbol)
	if err != nil {
		return Overview{}, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	q, err := s.market.Quote(ctx, sym)
	if err != nil {
		return Overview{}, fmt.Errorf("fetch quote: %w", err)
	}
	sum, err := s.market.Summary(ctx, sym)
	if err != nil {
		return Overview{}, fmt.Errorf("fetch summary: %w", err)
	}
	hist, err := s.market.History(ctx, sym, tf)
	if err != nil {
		return Overview{}, fmt.Errorf("fetch history: %w", err)
	}

	o := Overview{Quote: q, Summary: sum, FetchedAt: s.clock.Now()}
	if q.PreviousClose != 0 {
		o.Change = q.Price - q.PreviousClose
		o.ChangePercent = o.Change / q.PreviousClose * 100
	}
	closes := hist.Closes()
	if v, ok := trailingReturn(closes, monthlyWindow, monthlyMinRows); ok {
		o.MonthlyReturn = &v
	}
	if v, ok := trailingReturn(closes, yearlyWindow, yearlyMinRows); ok {
		o.YearlyReturn = &v
	}
	return o, nil
}

// trailingReturn is the percent change from the close `window` rows
// back to the latest close. Series shorter than the window fall back
// to their first close once they have at least minRows rows.
func trailingReturn(closes []float64, window, minRows int) (float64, bool) {
	n := len(closes)
	var base float64
	switch {
	case n >= window:
		base = closes[n-window]
	case n >= minRows:
		base = closes[0]
	default:
		return 0, false
	}
	if base == 0 {
		return 0, false
	}
	return (closes[n-1] - base) / base * 100, true
}

func (s *DashboardService) History(ctx context.Context, symbol string, tf domain.Timeframe) (domain.History, error) {
	sym, err := domain.NormalizeSymbol(symbol)
	if err != nil {
		return domain.History{}, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	h, err := s.market.History(ctx, sym, tf)
	if err != nil {
		return domain.History{}, fmt.Errorf("fetch history: %w", err)
	}
	return h, nil
}

func (s *DashboardService) News(ctx context.Context, symbol string) ([]domain.NewsItem, error) {
	sym, err := domain.NormalizeSymbol(symbol)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	items, err := s.market.News(ctx, sym, s.newsLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch news: %w", err)
	}
	if len(items) > s.newsLimit {
		items = items[:s.newsLimit]
	}
	return items, nil
}

func (s *DashboardService) Financials(ctx context.Context, symbol string, st domain.StatementType) (domain.Statement, error) {
	sym, err := domain.NormalizeSymbol(symbol)
	if err != nil {
		return domain.Statement{}, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	stmt, err := s.market.Financials(ctx, sym, st)
	if err != nil {
		return domain.Statement{}, fmt.Errorf("fetch financials: %w", err)
	}
	stmt.Arrange()
	return stmt, nil
}
