package domain

import "errors"

var (
	ErrEmptySymbol      = errors.New("empty symbol")
	ErrNoData           = errors.New("no data")
	ErrUnknownTimeframe = errors.New("unknown timeframe")
	ErrUnknownStatement = errors.New("unknown statement type")
)
