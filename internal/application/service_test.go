package application

import (
	"context"
	"testing"
	"time"

	"stockdash-service/internal/domain"

	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (f fakeClock) Now() time.Time { return f.t }

func Test_Overview(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 6, 2, 15, 4, 5, 0, time.UTC)
	m := &fakeMarket{
		quote: domain.Quote{
			Symbol:        "AAPL",
			Name:          "Apple Inc.",
			Price:         175.50,
			PreviousClose: 173.35,
			Volume:        58_910_000,
		},
		summary: domain.Summary{
			Profile: domain.CompanyProfile{Sector: "Technology"},
		},
		history: domain.History{
			Symbol:  "AAPL",
			Range:   domain.Timeframe1M,
			Candles: candleRun(30, 100, now),
		},
	}
	svc := NewDashboardService(m, WithClock(fakeClock{t: now}))

	o, err := svc.Overview(context.Background(), "aapl", domain.Timeframe1M)
	require.NoError(t, err)
	require.Equal(t, "AAPL", m.gotSymbol)
	require.Greater(t, o.Quote.Price, 0.0)
	require.GreaterOrEqual(t, o.Quote.Volume, int64(0))
	require.InDelta(t, 2.15, o.Change, 1e-9)
	require.InDelta(t, 1.2403, o.ChangePercent, 1e-4)
	require.Equal(t, now, o.FetchedAt)
	require.Equal(t, "Technology", o.Summary.Profile.Sector)

	// 30 rows: month-ago close is closes[9]=109, latest 129.
	require.NotNil(t, o.MonthlyReturn)
	require.InDelta(t, 18.3486, *o.MonthlyReturn, 1e-4)
	require.Nil(t, o.YearlyReturn)
}

func Test_Overview_EmptyHistory(t *testing.T) {
	t.Parallel()
	m := &fakeMarket{
		quote:   domain.Quote{Symbol: "XYZ", Price: 10, PreviousClose: 9},
		history: domain.History{Symbol: "XYZ", Range: domain.Timeframe1Y},
	}
	svc := NewDashboardService(m)

	o, err := svc.Overview(context.Background(), "XYZ", domain.Timeframe1Y)
	require.NoError(t, err)
	require.Nil(t, o.MonthlyReturn)
	require.Nil(t, o.YearlyReturn)
}

func Test_Overview_ProviderError(t *testing.T) {
	t.Parallel()
	m := &fakeMarket{err: ErrProvider}
	svc := NewDashboardService(m)

	_, err := svc.Overview(context.Background(), "NOPE", domain.Timeframe1Y)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrProvider)
}

func Test_Overview_EmptySymbol(t *testing.T) {
	t.Parallel()
	svc := NewDashboardService(&fakeMarket{})

	_, err := svc.Overview(context.Background(), "   ", domain.Timeframe1Y)
	require.ErrorIs(t, err, ErrBadRequest)
}

func Test_TrailingReturn(t *testing.T) {
	t.Parallel()
	run := func(n int, start float64) []float64 {
		out := make([]float64, n)
		for i := range out {
			out[i] = start + float64(i)
		}
		return out
	}

	// Window available.
	v, ok := trailingReturn(run(30, 100), monthlyWindow, monthlyMinRows)
	require.True(t, ok)
	require.InDelta(t, 18.3486, v, 1e-4)

	// Shorter than window, at least minRows: measured from the first row.
	v, ok = trailingReturn(run(15, 100), monthlyWindow, monthlyMinRows)
	require.True(t, ok)
	require.InDelta(t, 14.0, v, 1e-9)

	// Below minRows.
	_, ok = trailingReturn(run(5, 100), monthlyWindow, monthlyMinRows)
	require.False(t, ok)

	// Yearly window with a long series.
	v, ok = trailingReturn(run(300, 1), yearlyWindow, yearlyMinRows)
	require.True(t, ok)
	require.InDelta(t, 512.2449, v, 1e-4)

	// Zero base guards against division by zero.
	_, ok = trailingReturn([]float64{0, 1, 2}, 3, 1)
	require.False(t, ok)

	_, ok = trailingReturn(nil, monthlyWindow, monthlyMinRows)
	require.False(t, ok)
}

func Test_History_NormalizesSymbol(t *testing.T) {
	t.Parallel()
	m := &fakeMarket{history: domain.History{Symbol: "MSFT", Range: domain.Timeframe1W}}
	svc := NewDashboardService(m)

	h, err := svc.History(context.Background(), " msft ", domain.Timeframe1W)
	require.NoError(t, err)
	require.Equal(t, "MSFT", m.gotSymbol)
	require.Equal(t, domain.Timeframe1W, m.gotTimeframe)
	require.Equal(t, domain.Timeframe1W, h.Range)
}

func Test_News_AppliesLimit(t *testing.T) {
	t.Parallel()
	items := make([]domain.NewsItem, 15)
	for i := range items {
		items[i] = domain.NewsItem{Title: "headline"}
	}
	m := &fakeMarket{news: items}
	svc := NewDashboardService(m)

	got, err := svc.News(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Len(t, got, 10)
	require.Equal(t, 10, m.gotLimit)
}

func Test_News_CustomLimit(t *testing.T) {
	t.Parallel()
	m := &fakeMarket{news: []domain.NewsItem{{Title: "one"}}}
	svc := NewDashboardService(m, WithNewsLimit(5))

	_, err := svc.News(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Equal(t, 5, m.gotLimit)
}

func Test_Financials_ArrangesRows(t *testing.T) {
	t.Parallel()
	rev := 391.2e9
	ni := 93.74e9
	m := &fakeMarket{stmt: domain.Statement{
		Symbol:  "AAPL",
		Type:    domain.StatementIncome,
		Periods: []string{"2024-09-30"},
		Rows: []domain.StatementRow{
			{Key: "netIncome", Values: []*float64{&ni}},
			{Key: "totalRevenue", Values: []*float64{&rev}},
		},
	}}
	svc := NewDashboardService(m)

	st, err := svc.Financials(context.Background(), "AAPL", domain.StatementIncome)
	require.NoError(t, err)
	require.Equal(t, "totalRevenue", st.Rows[0].Key)
	require.Equal(t, "Total Revenue", st.Rows[0].Label)
	require.Equal(t, "391.20B", st.Rows[0].Display[0])
	require.Equal(t, "netIncome", st.Rows[1].Key)
}
