package collector

import (
	"errors"
	"fmt"
	"log"
	"time"

	"StockCompare/internal/model"
)

// ErrInvalidSymbol matches every *InvalidSymbolError.
var ErrInvalidSymbol = errors.New("invalid symbol")

// InvalidSymbolError rejects a candidate symbol with a human-readable reason.
type InvalidSymbolError struct {
	Symbol string
	Reason string
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("could not find a valid ticker for %q: %s", e.Symbol, e.Reason)
}

func (e *InvalidSymbolError) Is(target error) bool { return target == ErrInvalidSymbol }

// SymbolFailure records one symbol that could not be fetched for a window.
type SymbolFailure struct {
	Symbol string
	Window model.Window
	Err    error
}

func (f SymbolFailure) Error() string {
	return fmt.Sprintf("%s (%s): %v", f.Symbol, f.Window, f.Err)
}

func (f SymbolFailure) Unwrap() error { return f.Err }

// FetchResult is the outcome of a history request: whatever rows were
// retrieved, plus one failure per symbol/window that yielded nothing.
type FetchResult struct {
	Table    model.PriceTable
	Failures []SymbolFailure
}

// Empty reports whether no rows were retrieved at all.
func (r *FetchResult) Empty() bool { return r.Table.Empty() }

// MockFetcher returns controllable fixed data for development and testing.
// With History nil every symbol is valid and bars are generated around Price;
// otherwise only symbols present in History have data.
type MockFetcher struct {
	Price   float64
	History map[string]map[model.Window][]model.OHLCV
	Errs    map[string]error
	Calls   int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchSample(symbol string) ([]model.OHLCV, error) {
	m.Calls++
	if err := m.Errs[symbol]; err != nil {
		return nil, err
	}
	if m.History == nil {
		return generateMockBars(m.Price, 1), nil
	}
	for _, w := range model.Windows {
		if bars := m.History[symbol][w]; len(bars) > 0 {
			return bars[len(bars)-1:], nil
		}
	}
	return nil, ErrNoData
}

func (m *MockFetcher) FetchHistory(symbol string, window model.Window) ([]model.OHLCV, error) {
	m.Calls++
	if err := m.Errs[symbol]; err != nil {
		return nil, err
	}
	if m.History == nil {
		return generateMockBars(m.Price, tradingDays(window)), nil
	}
	bars := m.History[symbol][window]
	if len(bars) == 0 {
		return nil, ErrNoData
	}
	return bars, nil
}

func tradingDays(w model.Window) int {
	switch w {
	case model.Window3M:
		return 63
	case model.Window6M:
		return 126
	case model.Window1Y:
		return 252
	case model.Window5Y:
		return 1260
	default:
		return 2520
	}
}

func generateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	today := time.Now().UTC().Truncate(24 * time.Hour)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   today.AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector validates symbols and assembles price tables from a Fetcher.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Validate accepts candidate if the provider has at least one bar for it.
// The symbol is returned unchanged. Provider errors and empty samples are
// both reported as *InvalidSymbolError; there is no retry.
func (c *Collector) Validate(candidate string) (string, error) {
	if candidate == "" {
		return "", &InvalidSymbolError{Symbol: candidate, Reason: "empty symbol"}
	}
	bars, err := c.Fetcher.FetchSample(candidate)
	if err != nil {
		log.Printf("[WARN] validate %s via %s: %v", candidate, c.Fetcher.Name(), err)
		return "", &InvalidSymbolError{Symbol: candidate, Reason: err.Error()}
	}
	if len(bars) == 0 {
		return "", &InvalidSymbolError{Symbol: candidate, Reason: ErrNoData.Error()}
	}
	return candidate, nil
}

// Fetch retrieves window history for each symbol in turn and concatenates
// the rows, tagged by symbol. Failing symbols are recorded and skipped.
func (c *Collector) Fetch(symbols []string, window model.Window) *FetchResult {
	return c.fetch(symbols, window, "")
}

// FetchAll runs Fetch once per window in model.Windows order and unions the
// results, tagging every row with its window.
func (c *Collector) FetchAll(symbols []string) *FetchResult {
	res := &FetchResult{}
	for _, w := range model.Windows {
		part := c.fetch(symbols, w, w)
		res.Table = append(res.Table, part.Table...)
		res.Failures = append(res.Failures, part.Failures...)
	}
	return res
}

func (c *Collector) fetch(symbols []string, window, tag model.Window) *FetchResult {
	res := &FetchResult{}
	for _, sym := range symbols {
		bars, err := c.Fetcher.FetchHistory(sym, window)
		if err == nil && len(bars) == 0 {
			err = ErrNoData
		}
		if err != nil {
			log.Printf("[WARN] fetch %s %s via %s: %v", sym, window, c.Fetcher.Name(), err)
			res.Failures = append(res.Failures, SymbolFailure{Symbol: sym, Window: window, Err: err})
			continue
		}
		for _, b := range bars {
			res.Table = append(res.Table, model.PriceRecord{OHLCV: b, Symbol: sym, Window: tag})
		}
	}
	return res
}
