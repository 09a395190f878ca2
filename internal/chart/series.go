package chart

import (
	"fmt"
	"strings"
	"time"

	"StockCompare/internal/calculator"
	"StockCompare/internal/model"
)

// Point is one plotted value: the day's high on a given date.
type Point struct {
	Date time.Time
	High float64
}

// Series is one line of a chart, oldest point first.
type Series struct {
	Key      model.SeriesKey
	Points   []Point
	Range    calculator.Range
	Position float64 // last close within Range, 0.0~1.0
}

// Select picks the rows of table for each key and turns them into series.
// Keys without rows are dropped.
func Select(table model.PriceTable, keys []model.SeriesKey) []Series {
	var out []Series
	for _, k := range keys {
		rows := table.Select(k)
		if len(rows) == 0 {
			continue
		}
		s := Series{Key: k, Points: make([]Point, len(rows))}
		bars := make([]model.OHLCV, len(rows))
		for i, r := range rows {
			s.Points[i] = Point{Date: r.Time, High: r.High}
			bars[i] = r.OHLCV
		}
		if rng, err := calculator.HighLowRange(bars); err == nil {
			s.Range = rng
			if pos, err := calculator.Position(rng.Last, rng.High, rng.Low); err == nil {
				s.Position = pos
			}
		}
		out = append(out, s)
	}
	return out
}

// PointCount sums the points of every series.
func PointCount(series []Series) int {
	n := 0
	for _, s := range series {
		n += len(s.Points)
	}
	return n
}

// Summary describes each series on one line: span, high, low, change and
// where the last close sits in the range.
func Summary(series []Series) string {
	var lines []string
	for _, s := range series {
		if len(s.Points) == 0 {
			continue
		}
		first := s.Points[0].Date.Format(dateFormat)
		last := s.Points[len(s.Points)-1].Date.Format(dateFormat)
		lines = append(lines, fmt.Sprintf("%s  %s → %s  high %.2f  low %.2f  %+.1f%%  (%.0f%% of range)",
			s.Key.Label(), first, last, s.Range.High, s.Range.Low, s.Range.ChangePct, s.Position*100))
	}
	return strings.Join(lines, "\n")
}
