package httpserver

import (
	"context"
	"time"

	"stockdash-service/internal/application"
	"stockdash-service/internal/domain"
)

var _ application.MarketData = (*fakeMarket)(nil)

// fakeMarket backs router tests with a deterministic dataset; set err
// to make every call fail like an unreachable upstream, empty to
// return a history with no rows.
type fakeMarket struct {
	err   error
	empty bool
}

func (f *fakeMarket) Quote(_ context.Context, symbol string) (domain.Quote, error) {
	if f.err != nil {
		return domain.Quote{}, f.err
	}
	return domain.Quote{
		Symbol:   symbol,
		Name:     symbol + " Inc.",
		Currency: "USD",
		Exchange: "NMS",

		Price:            175.5,
		PreviousClose:    173.35,
		Open:             174.2,
		DayLow:           173.1,
		DayHigh:          176.2,
		FiftyTwoWeekLow:  124.17,
		FiftyTwoWeekHigh: 198.23,

		Volume:         58_910_000,
		AvgVolume:      61_200_000,
		AvgVolume10Day: 54_800_000,
		Bid:            175.48,
		Ask:            175.52,
		BidSize:        400,
		AskSize:        300,

		MarketCap:         2.75e12,
		TrailingPE:        28.4,
		ForwardPE:         25.1,
		EPS:               6.18,
		DividendRate:      0.96,
		DividendYield:     0.0055,
		PriceToBook:       46.5,
		SharesOutstanding: 15_204_100_000,
	}, nil
}

func (f *fakeMarket) Summary(_ context.Context, _ string) (domain.Summary, error) {
	if f.err != nil {
		return domain.Summary{}, f.err
	}
	return domain.Summary{
		Profile: domain.CompanyProfile{
			Sector:    "Technology",
			Industry:  "Consumer Electronics",
			Country:   "United States",
			Website:   "https://example.com",
			Employees: 161_000,
			Summary:   "Designs and sells consumer electronics.",
		},
		Stats: domain.KeyStats{
			PEGRatio:        2.2,
			Beta:            1.24,
			EnterpriseValue: 2.81e12,
			FloatShares:     15_180_000_000,
			ProfitMargin:    0.2397,
			OperatingMargin: 0.3017,
			RevenueGrowth:   0.061,
			EarningsGrowth:  0.101,
		},
	}, nil
}

func (f *fakeMarket) History(_ context.Context, symbol string, tf domain.Timeframe) (domain.History, error) {
	if f.err != nil {
		return domain.History{}, f.err
	}
	h := domain.History{Symbol: symbol, Range: tf}
	if f.empty {
		return h, nil
	}
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	price := 150.0
	for i := 0; i < 30; i++ {
		h.Candles = append(h.Candles, domain.Candle{
			Date:   day,
			Open:   price - 0.5,
			High:   price + 1.2,
			Low:    price - 1.4,
			Close:  price,
			Volume: 50_000_000 + int64(i)*100_000,
		})
		price++
		day = day.AddDate(0, 0, 1)
	}
	return h, nil
}

func (f *fakeMarket) News(_ context.Context, symbol string, limit int) ([]domain.NewsItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	items := []domain.NewsItem{
		{
			Title:       symbol + " beats quarterly estimates",
			Publisher:   "Reuters",
			Link:        "https://example.com/news/1",
			PublishedAt: time.Date(2024, 6, 11, 12, 0, 0, 0, time.UTC),
		},
		{
			Title:       "Analysts raise " + symbol + " price target",
			Publisher:   "Bloomberg",
			Link:        "https://example.com/news/2",
			PublishedAt: time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC),
		},
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (f *fakeMarket) Financials(_ context.Context, symbol string, st domain.StatementType) (domain.Statement, error) {
	if f.err != nil {
		return domain.Statement{}, f.err
	}
	rev24, rev23 := 391.2e9, 383.3e9
	ni24 := 93.74e9
	return domain.Statement{
		Symbol:  symbol,
		Type:    st,
		Periods: []string{"2024-09-30", "2023-09-30"},
		Rows: []domain.StatementRow{
			{Key: "netIncome", Values: []*float64{&ni24, nil}},
			{Key: "totalRevenue", Values: []*float64{&rev24, &rev23}},
		},
	}, nil
}

func NewInMemoryService() (*application.DashboardService, *fakeMarket) {
	m := &fakeMarket{}
	return application.NewDashboardService(m), m
}
