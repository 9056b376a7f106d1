package application

import (
	"context"
	"time"

	"stockdash-service/internal/domain"
)

// MarketData is the provider port covering everything the dashboard
// shows for one symbol. Implementations fetch fresh on every call.
type MarketData interface {
	Quote(ctx context.Context, symbol string) (domain.Quote, error)
	Summary(ctx context.Context, symbol string) (domain.Summary, error)
	History(ctx context.Context, symbol string, tf domain.Timeframe) (domain.History, error)
	News(ctx context.Context, symbol string, limit int) ([]domain.NewsItem, error)
	Financials(ctx context.Context, symbol string, st domain.StatementType) (domain.Statement, error)
}

type Clock interface {
	Now() time.Time
}
