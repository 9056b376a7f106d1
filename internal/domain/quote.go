package domain

// Quote is a fresh market snapshot for one symbol. Fields the provider
// did not report are left at zero and render as N/A.
type Quote struct {
	Symbol   string
	Name     string
	Currency string
	Exchange string

	Price            float64
	PreviousClose    float64
	Open             float64
	DayLow           float64
	DayHigh          float64
	FiftyTwoWeekLow  float64
	FiftyTwoWeekHigh float64

	Volume         int64
	AvgVolume      int64
	AvgVolume10Day int64
	Bid            float64
	Ask            float64
	BidSize        int64
	AskSize        int64

	MarketCap         float64
	TrailingPE        float64
	ForwardPE         float64
	EPS               float64
	DividendRate      float64
	DividendYield     float64
	PriceToBook       float64
	SharesOutstanding float64
}
