package model

import (
	"sort"
	"time"
)

// OHLCV represents a single daily bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceRecord is one row of a PriceTable: a bar tagged with its symbol and,
// for multi-period requests, the window it was fetched for.
type PriceRecord struct {
	OHLCV
	Symbol string
	Window Window // empty for single-window requests
}

// PriceTable holds the rows fetched for a single chart request.
type PriceTable []PriceRecord

// Empty reports whether the table has no rows.
func (t PriceTable) Empty() bool { return len(t) == 0 }

// Symbols returns the distinct symbols in first-seen order.
func (t PriceTable) Symbols() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range t {
		if !seen[r.Symbol] {
			seen[r.Symbol] = true
			out = append(out, r.Symbol)
		}
	}
	return out
}

// Windows returns the distinct window tags present in the table, in
// the fixed Windows order. Untagged rows are ignored.
func (t PriceTable) Windows() []Window {
	present := make(map[Window]bool)
	for _, r := range t {
		if r.Window != "" {
			present[r.Window] = true
		}
	}
	var out []Window
	for _, w := range Windows {
		if present[w] {
			out = append(out, w)
		}
	}
	return out
}

// Select returns the rows matching key, sorted by date ascending.
func (t PriceTable) Select(key SeriesKey) []PriceRecord {
	var out []PriceRecord
	for _, r := range t {
		if r.Symbol != key.Symbol {
			continue
		}
		if key.Window != "" && r.Window != key.Window {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time.Before(out[j].Time) })
	return out
}

// SeriesKey identifies one line on a chart.
type SeriesKey struct {
	Symbol string
	Window Window
}

// Label is the legend name of the series.
func (k SeriesKey) Label() string {
	if k.Window == "" {
		return k.Symbol
	}
	return k.Symbol + " - " + string(k.Window)
}

// SymbolKeys builds one key per symbol.
func SymbolKeys(symbols []string) []SeriesKey {
	keys := make([]SeriesKey, 0, len(symbols))
	for _, s := range symbols {
		keys = append(keys, SeriesKey{Symbol: s})
	}
	return keys
}

// PeriodKeys builds one key per symbol and window, symbol-major.
func PeriodKeys(symbols []string) []SeriesKey {
	keys := make([]SeriesKey, 0, len(symbols)*len(Windows))
	for _, s := range symbols {
		for _, w := range Windows {
			keys = append(keys, SeriesKey{Symbol: s, Window: w})
		}
	}
	return keys
}
