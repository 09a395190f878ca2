package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		in   string
		want Window
	}{
		{"3mo", Window3M},
		{"3M", Window3M},
		{" 6months ", Window6M},
		{"1y", Window1Y},
		{"5yr", Window5Y},
		{"10Y", Window10Y},
		{"max", WindowMax},
		{"maximum", WindowMax},
	}
	for _, tt := range tests {
		got, err := ParseWindow(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseWindow("2y")
	assert.Error(t, err)
	_, err = ParseWindow("all")
	assert.Error(t, err, "all is the compare command, not a period")
	_, err = ParseWindow("")
	assert.Error(t, err)
}

func TestWindowsOrderAndValidity(t *testing.T) {
	assert.Equal(t, []Window{"3mo", "6mo", "1y", "5y", "10y", "max"}, Windows)
	for _, w := range Windows {
		assert.True(t, w.Valid())
	}
	assert.False(t, Window("1d").Valid())
	assert.Equal(t, "1 Year", Window1Y.Title())
	assert.Equal(t, "3mo, 6mo, 1y, 5y, 10y, max", WindowList())
}

func TestSeriesKeyLabel(t *testing.T) {
	assert.Equal(t, "AAA", SeriesKey{Symbol: "AAA"}.Label())
	assert.Equal(t, "AAA - 5y", SeriesKey{Symbol: "AAA", Window: Window5Y}.Label())
}

func TestPriceTableSelectSortsAndFilters(t *testing.T) {
	table := PriceTable{
		{OHLCV: OHLCV{Time: day(3), High: 3}, Symbol: "AAA", Window: Window1Y},
		{OHLCV: OHLCV{Time: day(1), High: 1}, Symbol: "AAA", Window: Window1Y},
		{OHLCV: OHLCV{Time: day(2), High: 20}, Symbol: "BBB", Window: Window1Y},
		{OHLCV: OHLCV{Time: day(2), High: 2}, Symbol: "AAA", Window: Window1Y},
		{OHLCV: OHLCV{Time: day(1), High: 9}, Symbol: "AAA", Window: Window3M},
	}

	rows := table.Select(SeriesKey{Symbol: "AAA", Window: Window1Y})
	require.Len(t, rows, 3)
	for i, r := range rows {
		assert.Equal(t, float64(i+1), r.High)
	}

	all := table.Select(SeriesKey{Symbol: "AAA"})
	assert.Len(t, all, 4)

	assert.Empty(t, table.Select(SeriesKey{Symbol: "CCC"}))
	assert.Equal(t, []string{"AAA", "BBB"}, table.Symbols())
	assert.Equal(t, []Window{Window3M, Window1Y}, table.Windows())
}

func TestKeyBuilders(t *testing.T) {
	assert.Equal(t, []SeriesKey{{Symbol: "A"}, {Symbol: "B"}}, SymbolKeys([]string{"A", "B"}))

	keys := PeriodKeys([]string{"A", "B"})
	require.Len(t, keys, 12)
	assert.Equal(t, SeriesKey{Symbol: "A", Window: Window3M}, keys[0])
	assert.Equal(t, SeriesKey{Symbol: "B", Window: WindowMax}, keys[11])
}
