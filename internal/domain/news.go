package domain

import "time"

type NewsItem struct {
	Title       string
	Publisher   string
	Link        string
	PublishedAt time.Time
}
