package provider

import (
	"context"
	"fmt"
	"math"
	"time"

	"stockdash-service/internal/application"
	"stockdash-service/internal/domain"
)

// Ensure Fake implements application.MarketData.
var _ application.MarketData = (*Fake)(nil)

// Fake serves deterministic market data for local development and
// tests, without touching the network.
type Fake struct {
	base float64
}

func NewFake(base float64) *Fake { return &Fake{base: base} }

func (f *Fake) Quote(_ context.Context, symbol string) (domain.Quote, error) {
	return domain.Quote{
		Symbol:   symbol,
		Name:     fmt.Sprintf("%s Holdings Inc.", symbol),
		Currency: "USD",
		Exchange: "NMS",

		Price:            f.base,
		PreviousClose:    f.base - 2.15,
		Open:             f.base - 1.30,
		DayLow:           f.base - 2.60,
		DayHigh:          f.base + 1.10,
		FiftyTwoWeekLow:  f.base * 0.71,
		FiftyTwoWeekHigh: f.base * 1.18,

		Volume:         58_910_000,
		AvgVolume:      61_200_000,
		AvgVolume10Day: 54_800_000,
		Bid:            f.base - 0.02,
		Ask:            f.base + 0.02,
		BidSize:        400,
		AskSize:        300,

		MarketCap:         f.base * 15.2e9,
		TrailingPE:        28.4,
		ForwardPE:         25.1,
		EPS:               f.base / 28.4,
		DividendRate:      1.00,
		DividendYield:     0.0055,
		PriceToBook:       46.5,
		SharesOutstanding: 15_204_100_000,
	}, nil
}

func (f *Fake) Summary(_ context.Context, symbol string) (domain.Summary, error) {
	return domain.Summary{
		Profile: domain.CompanyProfile{
			Sector:    "Technology",
			Industry:  "Consumer Electronics",
			Country:   "United States",
			Website:   "https://example.com",
			Employees: 161_000,
			Summary:   fmt.Sprintf("%s designs, manufactures and markets consumer devices worldwide.", symbol),
		},
		Stats: domain.KeyStats{
			PEGRatio:        2.2,
			Beta:            1.24,
			EnterpriseValue: f.base * 15.5e9,
			FloatShares:     15_180_000_000,
			ProfitMargin:    0.2397,
			OperatingMargin: 0.3017,
			RevenueGrowth:   0.061,
			EarningsGrowth:  0.101,
		},
	}, nil
}

// tradingDays approximates how many daily bars each window spans.
var tradingDays = map[domain.Timeframe]int{
	domain.Timeframe1W:  5,
	domain.Timeframe1M:  21,
	domain.Timeframe3M:  63,
	domain.Timeframe6M:  126,
	domain.Timeframe1Y:  252,
	domain.Timeframe2Y:  504,
	domain.Timeframe5Y:  1260,
	domain.TimeframeMax: 2520,
}

func (f *Fake) History(_ context.Context, symbol string, tf domain.Timeframe) (domain.History, error) {
	n := tradingDays[tf]
	h := domain.History{Symbol: symbol, Range: tf}
	day := time.Now().UTC().Truncate(24 * time.Hour)
	dates := make([]time.Time, 0, n)
	for len(dates) < n {
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			dates = append(dates, day)
		}
		day = day.AddDate(0, 0, -1)
	}
	// dates were collected newest first
	for i := n - 1; i >= 0; i-- {
		step := n - 1 - i
		cl := f.base * (1 + 0.08*math.Sin(float64(step)/9))
		op := cl * 0.995
		h.Candles = append(h.Candles, domain.Candle{
			Date:   dates[i],
			Open:   op,
			High:   cl * 1.012,
			Low:    op * 0.988,
			Close:  cl,
			Volume: int64(40_000_000 + step%7*1_500_000),
		})
	}
	return h, nil
}

func (f *Fake) News(_ context.Context, symbol string, limit int) ([]domain.NewsItem, error) {
	now := time.Now().UTC()
	items := []domain.NewsItem{
		{Title: fmt.Sprintf("%s beats quarterly estimates", symbol), Publisher: "Newswire", Link: "https://example.com/a", PublishedAt: now.Add(-2 * time.Hour)},
		{Title: fmt.Sprintf("Analysts raise %s price target", symbol), Publisher: "Market Desk", Link: "https://example.com/b", PublishedAt: now.Add(-7 * time.Hour)},
		{Title: fmt.Sprintf("%s announces product event", symbol), Publisher: "Daily Ticker", Link: "https://example.com/c", PublishedAt: now.Add(-26 * time.Hour)},
	}
	if limit < len(items) {
		items = items[:limit]
	}
	return items, nil
}

func (f *Fake) Financials(_ context.Context, symbol string, st domain.StatementType) (domain.Statement, error) {
	year := time.Now().UTC().Year()
	stmt := domain.Statement{Symbol: symbol, Type: st}
	for i := 0; i < 4; i++ {
		stmt.Periods = append(stmt.Periods, fmt.Sprintf("%d-09-30", year-1-i))
	}

	rows := map[domain.StatementType][]struct {
		key  string
		base float64
	}{
		domain.StatementIncome: {
			{"totalRevenue", 391.0e9},
			{"costOfRevenue", 210.4e9},
			{"grossProfit", 180.6e9},
			{"operatingIncome", 123.2e9},
			{"incomeBeforeTax", 123.5e9},
			{"netIncome", 93.7e9},
		},
		domain.StatementBalance: {
			{"totalAssets", 365.0e9},
			{"totalCurrentAssets", 152.6e9},
			{"cash", 29.9e9},
			{"totalLiab", 308.0e9},
			{"totalCurrentLiabilities", 176.4e9},
			{"totalStockholderEquity", 57.0e9},
		},
		domain.StatementCashflow: {
			{"netIncome", 93.7e9},
			{"totalCashFromOperatingActivities", 118.3e9},
			{"capitalExpenditures", -9.4e9},
			{"totalCashflowsFromInvestingActivities", 2.9e9},
			{"totalCashFromFinancingActivities", -121.9e9},
			{"changeInCash", -0.7e9},
		},
	}
	for _, r := range rows[st] {
		row := domain.StatementRow{Key: r.key, Values: make([]*float64, len(stmt.Periods))}
		for pi := range stmt.Periods {
			v := r.base * (1 - 0.04*float64(pi))
			row.Values[pi] = &v
		}
		stmt.Rows = append(stmt.Rows, row)
	}
	return stmt, nil
}
