package collector

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockCompare/internal/model"
)

func bars(highs ...float64) []model.OHLCV {
	out := make([]model.OHLCV, len(highs))
	for i, h := range highs {
		out[i] = model.OHLCV{
			Time:  time.Date(2024, 3, i+1, 0, 0, 0, 0, time.UTC),
			Open:  h - 1,
			High:  h,
			Low:   h - 2,
			Close: h - 0.5,
		}
	}
	return out
}

func TestValidate(t *testing.T) {
	m := &MockFetcher{
		History: map[string]map[model.Window][]model.OHLCV{
			"AAA": {model.Window1Y: bars(10, 11)},
		},
		Errs: map[string]error{"ERR": errors.New("connection refused")},
	}
	c := NewCollector(m)

	sym, err := c.Validate("AAA")
	require.NoError(t, err)
	assert.Equal(t, "AAA", sym)

	_, err = c.Validate("ZZZ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSymbol))

	_, err = c.Validate("ERR")
	var inv *InvalidSymbolError
	require.True(t, errors.As(err, &inv))
	assert.Equal(t, "ERR", inv.Symbol)
	assert.Contains(t, inv.Reason, "connection refused")

	assert.Equal(t, 3, m.Calls, "one provider call per validation, no retry")
}

func TestValidateKeepsCase(t *testing.T) {
	c := NewCollector(&MockFetcher{Price: 100})
	sym, err := c.Validate("brk-b")
	require.NoError(t, err)
	assert.Equal(t, "brk-b", sym)
}

func TestValidateEmptyCandidate(t *testing.T) {
	m := &MockFetcher{Price: 100}
	_, err := NewCollector(m).Validate("")
	assert.ErrorIs(t, err, ErrInvalidSymbol)
	assert.Zero(t, m.Calls)
}

func TestFetchEmptySymbols(t *testing.T) {
	m := &MockFetcher{Price: 100}
	res := NewCollector(m).Fetch(nil, model.Window1Y)
	assert.True(t, res.Empty())
	assert.Empty(t, res.Failures)
	assert.Zero(t, m.Calls)
}

func TestFetchPartialFailure(t *testing.T) {
	m := &MockFetcher{
		History: map[string]map[model.Window][]model.OHLCV{
			"AAA": {model.Window1Y: bars(10, 11, 12)},
			"CCC": {model.Window1Y: bars(30)},
		},
		Errs: map[string]error{"BBB": errors.New("timeout")},
	}
	res := NewCollector(m).Fetch([]string{"AAA", "BBB", "CCC", "DDD"}, model.Window1Y)

	require.Len(t, res.Table, 4)
	assert.Equal(t, []string{"AAA", "CCC"}, res.Table.Symbols())
	for _, r := range res.Table {
		assert.Empty(t, r.Window, "single-window rows carry no window tag")
	}

	require.Len(t, res.Failures, 2)
	assert.Equal(t, "BBB", res.Failures[0].Symbol)
	assert.Equal(t, "DDD", res.Failures[1].Symbol)
	assert.ErrorIs(t, res.Failures[1], ErrNoData)
}

func TestFetchNoDataForWindow(t *testing.T) {
	m := &MockFetcher{
		History: map[string]map[model.Window][]model.OHLCV{
			"AAA": {model.Window3M: bars(1)},
		},
	}
	res := NewCollector(m).Fetch([]string{"AAA"}, model.Window10Y)
	assert.True(t, res.Empty())
	require.Len(t, res.Failures, 1)
	assert.Equal(t, model.Window10Y, res.Failures[0].Window)
}

func TestFetchAllTagsWindows(t *testing.T) {
	m := &MockFetcher{
		History: map[string]map[model.Window][]model.OHLCV{
			"AAA": {
				model.Window3M: bars(1, 2),
				model.Window1Y: bars(1, 2, 3),
				model.WindowMax: bars(1, 2, 3, 4),
			},
		},
	}
	res := NewCollector(m).FetchAll([]string{"AAA"})

	assert.Equal(t, []model.Window{model.Window3M, model.Window1Y, model.WindowMax}, res.Table.Windows())
	assert.Len(t, res.Table, 9)
	for _, r := range res.Table {
		assert.NotEmpty(t, r.Window)
		assert.Equal(t, "AAA", r.Symbol)
	}

	require.Len(t, res.Failures, 3)
	var missing []model.Window
	for _, f := range res.Failures {
		missing = append(missing, f.Window)
	}
	assert.Equal(t, []model.Window{model.Window6M, model.Window5Y, model.Window10Y}, missing)
	assert.Equal(t, len(model.Windows), m.Calls)
}

func TestGeneratedMockHistory(t *testing.T) {
	res := NewCollector(&MockFetcher{Price: 50}).Fetch([]string{"X"}, model.Window3M)
	require.Len(t, res.Table, 63)
	rows := res.Table.Select(model.SeriesKey{Symbol: "X"})
	assert.True(t, rows[0].Time.Before(rows[len(rows)-1].Time))
}
