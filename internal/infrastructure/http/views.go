package httpserver

import (
	"fmt"
	"time"

	"stockdash-service/internal/application"
	"stockdash-service/internal/domain"
)

type metricItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type profileView struct {
	Name      string `json:"name"`
	Sector    string `json:"sector"`
	Industry  string `json:"industry"`
	Country   string `json:"country"`
	Website   string `json:"website"`
	Employees string `json:"employees"`
	Exchange  string `json:"exchange"`
	Currency  string `json:"currency"`
	Summary   string `json:"summary"`
}

// overviewResponse carries raw figures for the header tiles (the page
// colors them by sign) and pre-formatted strings for everything else.
type overviewResponse struct {
	Symbol        string       `json:"symbol"`
	Name          string       `json:"name"`
	Price         float64      `json:"price"`
	Change        float64      `json:"change"`
	ChangePercent float64      `json:"change_percent"`
	MonthlyReturn *float64     `json:"monthly_return"`
	YearlyReturn  *float64     `json:"yearly_return"`
	Metrics       []metricItem `json:"metrics"`
	Highlights    []metricItem `json:"highlights"`
	Statistics    []metricItem `json:"statistics"`
	Profile       profileView  `json:"profile"`
	FetchedAt     time.Time    `json:"fetched_at"`
}

func newOverviewResponse(o application.Overview) overviewResponse {
	q := o.Quote
	st := o.Summary.Stats
	p := o.Summary.Profile

	metrics := []metricItem{
		{"Market Cap", naMoney(q.MarketCap)},
		{"Day Range", naRange(q.DayLow, q.DayHigh)},
		{"52 Week Range", naRange(q.FiftyTwoWeekLow, q.FiftyTwoWeekHigh)},
		{"Avg Volume", naMoney(float64(q.AvgVolume))},
		{"P/E Ratio", naRatio(q.TrailingPE)},
		{"Dividend Yield", naPercent(q.DividendYield)},
		{"Beta", naRatio(st.Beta)},
		{"Forward P/E", naRatio(q.ForwardPE)},
		{"PEG Ratio", naRatio(st.PEGRatio)},
	}
	highlights := []metricItem{
		{"Profit Margin", naPercent(st.ProfitMargin)},
		{"Operating Margin", naPercent(st.OperatingMargin)},
		{"Enterprise Value", naMoney(st.EnterpriseValue)},
		{"Price to Book", naRatio(q.PriceToBook)},
		{"Revenue Growth", naPercent(st.RevenueGrowth)},
		{"Earnings Growth", naPercent(st.EarningsGrowth)},
	}
	statistics := []metricItem{
		{"Bid", naQuoteSize(q.Bid, q.BidSize)},
		{"Ask", naQuoteSize(q.Ask, q.AskSize)},
		{"Volume", naMoney(float64(q.Volume))},
		{"Average Volume (10d)", naMoney(float64(q.AvgVolume10Day))},
		{"Shares Outstanding", naCount(int64(q.SharesOutstanding))},
		{"Float Shares", naCount(int64(st.FloatShares))},
	}

	return overviewResponse{
		Symbol:        q.Symbol,
		Name:          q.Name,
		Price:         q.Price,
		Change:        o.Change,
		ChangePercent: o.ChangePercent,
		MonthlyReturn: o.MonthlyReturn,
		YearlyReturn:  o.YearlyReturn,
		Metrics:       metrics,
		Highlights:    highlights,
		Statistics:    statistics,
		Profile: profileView{
			Name:      orNA(q.Name),
			Sector:    orNA(p.Sector),
			Industry:  orNA(p.Industry),
			Country:   orNA(p.Country),
			Website:   orNA(p.Website),
			Employees: naCount(p.Employees),
			Exchange:  orNA(q.Exchange),
			Currency:  orNA(q.Currency),
			Summary:   p.Summary,
		},
		FetchedAt: o.FetchedAt,
	}
}

// historyResponse is column-oriented so the page can hand the arrays
// straight to the chart library.
type historyResponse struct {
	Symbol string    `json:"symbol"`
	Range  string    `json:"range"`
	Label  string    `json:"label"`
	Dates  []string  `json:"dates"`
	Open   []float64 `json:"open"`
	High   []float64 `json:"high"`
	Low    []float64 `json:"low"`
	Close  []float64 `json:"close"`
	Volume []int64   `json:"volume"`
}

func newHistoryResponse(h domain.History) historyResponse {
	n := len(h.Candles)
	out := historyResponse{
		Symbol: h.Symbol,
		Range:  h.Range.String(),
		Label:  h.Range.Label(),
		Dates:  make([]string, 0, n),
		Open:   make([]float64, 0, n),
		High:   make([]float64, 0, n),
		Low:    make([]float64, 0, n),
		Close:  make([]float64, 0, n),
		Volume: make([]int64, 0, n),
	}
	for _, c := range h.Candles {
		out.Dates = append(out.Dates, c.Date.Format("2006-01-02"))
		out.Open = append(out.Open, c.Open)
		out.High = append(out.High, c.High)
		out.Low = append(out.Low, c.Low)
		out.Close = append(out.Close, c.Close)
		out.Volume = append(out.Volume, c.Volume)
	}
	return out
}

type newsItemView struct {
	Title       string `json:"title"`
	Publisher   string `json:"publisher"`
	Link        string `json:"link"`
	PublishedAt string `json:"published_at"`
}

type newsResponse struct {
	Symbol string         `json:"symbol"`
	Items  []newsItemView `json:"items"`
}

func newNewsResponse(symbol string, items []domain.NewsItem) newsResponse {
	if sym, err := domain.NormalizeSymbol(symbol); err == nil {
		symbol = sym
	}
	out := newsResponse{Symbol: symbol, Items: make([]newsItemView, 0, len(items))}
	for _, it := range items {
		out.Items = append(out.Items, newsItemView{
			Title:       it.Title,
			Publisher:   it.Publisher,
			Link:        it.Link,
			PublishedAt: it.PublishedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return out
}

type statementRowView struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

type statementResponse struct {
	Symbol  string             `json:"symbol"`
	Type    string             `json:"statement"`
	Periods []string           `json:"periods"`
	Rows    []statementRowView `json:"rows"`
}

func newStatementResponse(st domain.Statement) statementResponse {
	out := statementResponse{
		Symbol:  st.Symbol,
		Type:    string(st.Type),
		Periods: st.Periods,
		Rows:    make([]statementRowView, 0, len(st.Rows)),
	}
	for _, r := range st.Rows {
		out.Rows = append(out.Rows, statementRowView{Label: r.Label, Values: r.Display})
	}
	return out
}

// Zero means the upstream did not report the figure.

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func naMoney(v float64) string {
	if v == 0 {
		return "N/A"
	}
	return domain.FormatMoney(v)
}

func naRatio(v float64) string {
	if v == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", v)
}

// naPercent formats a fractional figure (0.2397) as "23.97%".
func naPercent(v float64) string {
	if v == 0 {
		return "N/A"
	}
	return domain.FormatPercent(v * 100)
}

func naCount(v int64) string {
	if v == 0 {
		return "N/A"
	}
	return domain.FormatCount(float64(v))
}

func naRange(lo, hi float64) string {
	if lo == 0 && hi == 0 {
		return "N/A"
	}
	return fmt.Sprintf("$%.2f - $%.2f", lo, hi)
}

func naQuoteSize(price float64, size int64) string {
	if price == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f x %d", price, size)
}
