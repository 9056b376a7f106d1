package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	// API
	Port string
	// Provider
	Provider       string
	YahooAPIBase   string
	RequestTimeout time.Duration
	// Dashboard
	PopularTickers []string
	NewsLimit      int
}

const defaultPopular = "AAPL,MSFT,GOOGL,AMZN,TSLA,META,NVDA,JPM,V,WMT"

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.ToUpper(strings.TrimSpace(part)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		Env:            getEnv("ENV", "local"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Port:           getEnv("PORT", "8080"),
		Provider:       getEnv("PROVIDER", "yahoo"),
		YahooAPIBase:   getEnv("YAHOO_API_BASE", "https://query1.finance.yahoo.com"),
		RequestTimeout: time.Duration(atoiDef(getEnv("REQUEST_TIMEOUT_MS", "10000"), 10000)) * time.Millisecond,
		PopularTickers: splitCSV(getEnv("POPULAR_TICKERS", defaultPopular)),
		NewsLimit:      atoiDef(getEnv("NEWS_LIMIT", "10"), 10),
	}
}
