package domain

// CompanyProfile describes the business behind a symbol.
type CompanyProfile struct {
	Sector    string
	Industry  string
	Country   string
	Website   string
	Employees int64
	Summary   string
}

// KeyStats carries fundamentals that are not part of the trading quote.
// Zero means not reported.
type KeyStats struct {
	PEGRatio        float64
	Beta            float64
	EnterpriseValue float64
	FloatShares     float64
	ProfitMargin    float64
	OperatingMargin float64
	RevenueGrowth   float64
	EarningsGrowth  float64
}

// Summary bundles the profile and fundamentals fetched together from
// the provider's summary endpoint.
type Summary struct {
	Profile CompanyProfile
	Stats   KeyStats
}
