package bootstrap

import (
	"fmt"

	"stockdash-service/internal/application"
	"stockdash-service/internal/config"
	"stockdash-service/internal/infrastructure/provider"
)

// ProvideMarketData picks the upstream by PROVIDER; "fake" serves
// deterministic data for local runs without network access.
func ProvideMarketData(cfg config.Config) (application.MarketData, error) {
	switch cfg.Provider {
	case "yahoo":
		return provider.NewYahoo(cfg.YahooAPIBase, cfg.RequestTimeout), nil
	case "fake":
		return provider.NewFake(175.5), nil
	default:
		return nil, fmt.Errorf("unknown PROVIDER %q", cfg.Provider)
	}
}

func ProvideDashboardService(market application.MarketData, cfg config.Config) *application.DashboardService {
	return application.NewDashboardService(market, application.WithNewsLimit(cfg.NewsLimit))
}
