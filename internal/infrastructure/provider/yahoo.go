package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"stockdash-service/internal/application"
	"stockdash-service/internal/domain"

	"github.com/go-resty/resty/v2"
)

// Yahoo finance serves most endpoints only to browser-looking clients.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

const summaryModules = "assetProfile,financialData,defaultKeyStatistics"

type Yahoo struct {
	http *resty.Client
}

var _ application.MarketData = (*Yahoo)(nil)

type YahooOption func(*Yahoo)

// WithTransport swaps the underlying round tripper, used by tests.
func WithTransport(rt http.RoundTripper) YahooOption {
	return func(y *Yahoo) { y.http.SetTransport(rt) }
}

func NewYahoo(baseURL string, timeout time.Duration, opts ...YahooOption) *Yahoo {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeaders(map[string]string{
			"Accept":     "application/json",
			"User-Agent": defaultUserAgent,
		})
	y := &Yahoo{http: client}
	for _, opt := range opts {
		opt(y)
	}
	return y
}

type yfError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// yfRaw is the provider's {"raw": 1.23, "fmt": "1.23"} value wrapper.
type yfRaw struct {
	Raw float64 `json:"raw"`
	Fmt string  `json:"fmt"`
}

func rawOf(r *yfRaw) float64 {
	if r == nil {
		return 0
	}
	return r.Raw
}

type yfQuoteResponse struct {
	QuoteResponse struct {
		Result []yfQuote `json:"result"`
		Error  *yfError  `json:"error"`
	} `json:"quoteResponse"`
}

type yfQuote struct {
	Symbol                 string  `json:"symbol"`
	LongName               string  `json:"longName"`
	ShortName              string  `json:"shortName"`
	Currency               string  `json:"currency"`
	Exchange               string  `json:"exchange"`
	RegularMarketPrice     float64 `json:"regularMarketPrice"`
	RegularMarketPrevClose float64 `json:"regularMarketPreviousClose"`
	RegularMarketOpen      float64 `json:"regularMarketOpen"`
	RegularMarketDayLow    float64 `json:"regularMarketDayLow"`
	RegularMarketDayHigh   float64 `json:"regularMarketDayHigh"`
	FiftyTwoWeekLow        float64 `json:"fiftyTwoWeekLow"`
	FiftyTwoWeekHigh       float64 `json:"fiftyTwoWeekHigh"`
	RegularMarketVolume    int64   `json:"regularMarketVolume"`
	AvgVolume3M            int64   `json:"averageDailyVolume3Month"`
	AvgVolume10D           int64   `json:"averageDailyVolume10Day"`
	Bid                    float64 `json:"bid"`
	Ask                    float64 `json:"ask"`
	BidSize                int64   `json:"bidSize"`
	AskSize                int64   `json:"askSize"`
	MarketCap              float64 `json:"marketCap"`
	TrailingPE             float64 `json:"trailingPE"`
	ForwardPE              float64 `json:"forwardPE"`
	EPSTrailing            float64 `json:"epsTrailingTwelveMonths"`
	DividendRate           float64 `json:"trailingAnnualDividendRate"`
	DividendYield          float64 `json:"trailingAnnualDividendYield"`
	PriceToBook            float64 `json:"priceToBook"`
	SharesOutstanding      float64 `json:"sharesOutstanding"`
}

func (y *Yahoo) Quote(ctx context.Context, symbol string) (domain.Quote, error) {
	var out yfQuoteResponse
	resp, err := y.http.R().
		SetContext(ctx).
		SetQueryParam("symbols", symbol).
		SetResult(&out).
		Get("/v7/finance/quote")
	if err != nil {
		return domain.Quote{}, fmt.Errorf("yahoo: quote request: %w", err)
	}
	if resp.IsError() {
		return domain.Quote{}, fmt.Errorf("yahoo: quote status %d", resp.StatusCode())
	}
	if e := out.QuoteResponse.Error; e != nil {
		return domain.Quote{}, fmt.Errorf("yahoo: quote: %s %s", e.Code, e.Description)
	}
	if len(out.QuoteResponse.Result) == 0 {
		return domain.Quote{}, fmt.Errorf("yahoo: quote for %s: %w", symbol, domain.ErrNoData)
	}

	q := out.QuoteResponse.Result[0]
	name := q.LongName
	if name == "" {
		name = q.ShortName
	}
	return domain.Quote{
		Symbol:   q.Symbol,
		Name:     name,
		Currency: q.Currency,
		Exchange: q.Exchange,

		Price:            q.RegularMarketPrice,
		PreviousClose:    q.RegularMarketPrevClose,
		Open:             q.RegularMarketOpen,
		DayLow:           q.RegularMarketDayLow,
		DayHigh:          q.RegularMarketDayHigh,
		FiftyTwoWeekLow:  q.FiftyTwoWeekLow,
		FiftyTwoWeekHigh: q.FiftyTwoWeekHigh,

		Volume:         q.RegularMarketVolume,
		AvgVolume:      q.AvgVolume3M,
		AvgVolume10Day: q.AvgVolume10D,
		Bid:            q.Bid,
		Ask:            q.Ask,
		BidSize:        q.BidSize,
		AskSize:        q.AskSize,

		MarketCap:         q.MarketCap,
		TrailingPE:        q.TrailingPE,
		ForwardPE:         q.ForwardPE,
		EPS:               q.EPSTrailing,
		DividendRate:      q.DividendRate,
		DividendYield:     q.DividendYield,
		PriceToBook:       q.PriceToBook,
		SharesOutstanding: q.SharesOutstanding,
	}, nil
}

type yfSummaryResponse struct {
	QuoteSummary struct {
		Result []yfSummaryResult `json:"result"`
		Error  *yfError          `json:"error"`
	} `json:"quoteSummary"`
}

type yfSummaryResult struct {
	AssetProfile *struct {
		Sector              string `json:"sector"`
		Industry            string `json:"industry"`
		Country             string `json:"country"`
		Website             string `json:"website"`
		FullTimeEmployees   int64  `json:"fullTimeEmployees"`
		LongBusinessSummary string `json:"longBusinessSummary"`
	} `json:"assetProfile"`
	FinancialData *struct {
		ProfitMargins    *yfRaw `json:"profitMargins"`
		OperatingMargins *yfRaw `json:"operatingMargins"`
		RevenueGrowth    *yfRaw `json:"revenueGrowth"`
		EarningsGrowth   *yfRaw `json:"earningsGrowth"`
	} `json:"financialData"`
	DefaultKeyStatistics *struct {
		PegRatio        *yfRaw `json:"pegRatio"`
		Beta            *yfRaw `json:"beta"`
		EnterpriseValue *yfRaw `json:"enterpriseValue"`
		FloatShares     *yfRaw `json:"floatShares"`
	} `json:"defaultKeyStatistics"`
}

func (y *Yahoo) Summary(ctx context.Context, symbol string) (domain.Summary, error) {
	var out yfSummaryResponse
	resp, err := y.http.R().
		SetContext(ctx).
		SetQueryParam("modules", summaryModules).
		SetResult(&out).
		Get("/v10/finance/quoteSummary/" + url.PathEscape(symbol))
	if err != nil {
		return domain.Summary{}, fmt.Errorf("yahoo: summary request: %w", err)
	}
	if resp.IsError() {
		return domain.Summary{}, fmt.Errorf("yahoo: summary status %d", resp.StatusCode())
	}
	if e := out.QuoteSummary.Error; e != nil {
		return domain.Summary{}, fmt.Errorf("yahoo: summary: %s %s", e.Code, e.Description)
	}
	if len(out.QuoteSummary.Result) == 0 {
		return domain.Summary{}, fmt.Errorf("yahoo: summary for %s: %w", symbol, domain.ErrNoData)
	}

	r := out.QuoteSummary.Result[0]
	var s domain.Summary
	if p := r.AssetProfile; p != nil {
		s.Profile = domain.CompanyProfile{
			Sector:    p.Sector,
			Industry:  p.Industry,
			Country:   p.Country,
			Website:   p.Website,
			Employees: p.FullTimeEmployees,
			Summary:   p.LongBusinessSummary,
		}
	}
	if f := r.FinancialData; f != nil {
		s.Stats.ProfitMargin = rawOf(f.ProfitMargins)
		s.Stats.OperatingMargin = rawOf(f.OperatingMargins)
		s.Stats.RevenueGrowth = rawOf(f.RevenueGrowth)
		s.Stats.EarningsGrowth = rawOf(f.EarningsGrowth)
	}
	if k := r.DefaultKeyStatistics; k != nil {
		s.Stats.PEGRatio = rawOf(k.PegRatio)
		s.Stats.Beta = rawOf(k.Beta)
		s.Stats.EnterpriseValue = rawOf(k.EnterpriseValue)
		s.Stats.FloatShares = rawOf(k.FloatShares)
	}
	return s, nil
}
