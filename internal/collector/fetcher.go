package collector

import (
	"errors"

	"StockCompare/internal/model"
)

// ErrNoData is returned by fetchers when the provider answers with no bars.
var ErrNoData = errors.New("no data returned")

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchSample returns the shortest history the provider offers for symbol.
	FetchSample(symbol string) ([]model.OHLCV, error)
	// FetchHistory returns daily bars covering window, oldest first.
	FetchHistory(symbol string, window model.Window) ([]model.OHLCV, error)
	Name() string
}
