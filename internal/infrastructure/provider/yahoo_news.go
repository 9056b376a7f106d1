package provider

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"stockdash-service/internal/domain"
)

type yfSearchResponse struct {
	News []struct {
		UUID                string `json:"uuid"`
		Title               string `json:"title"`
		Publisher           string `json:"publisher"`
		Link                string `json:"link"`
		ProviderPublishTime int64  `json:"providerPublishTime"`
	} `json:"news"`
}

func (y *Yahoo) News(ctx context.Context, symbol string, limit int) ([]domain.NewsItem, error) {
	var out yfSearchResponse
	resp, err := y.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":           symbol,
			"newsCount":   strconv.Itoa(limit),
			"quotesCount": "0",
		}).
		SetResult(&out).
		Get("/v1/finance/search")
	if err != nil {
		return nil, fmt.Errorf("yahoo: news request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("yahoo: news status %d", resp.StatusCode())
	}

	items := make([]domain.NewsItem, 0, len(out.News))
	for _, n := range out.News {
		if len(items) == limit {
			break
		}
		items = append(items, domain.NewsItem{
			Title:       n.Title,
			Publisher:   n.Publisher,
			Link:        n.Link,
			PublishedAt: time.Unix(n.ProviderPublishTime, 0).UTC(),
		})
	}
	return items, nil
}
