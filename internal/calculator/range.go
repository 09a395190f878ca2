package calculator

import (
	"errors"
	"math"

	"StockCompare/internal/model"
)

// Range summarises the span of a series.
type Range struct {
	High      float64
	Low       float64
	First     float64 // close of the oldest bar
	Last      float64 // close of the newest bar
	ChangePct float64
}

// HighLowRange scans bars and returns the highest high and lowest low, plus
// the close-to-close change. Bars are expected oldest first.
func HighLowRange(bars []model.OHLCV) (Range, error) {
	if len(bars) == 0 {
		return Range{}, errors.New("no bars provided")
	}
	r := Range{High: math.Inf(-1), Low: math.Inf(1)}
	for _, b := range bars {
		if b.High > r.High {
			r.High = b.High
		}
		if b.Low < r.Low {
			r.Low = b.Low
		}
	}
	r.First = bars[0].Close
	r.Last = bars[len(bars)-1].Close
	if r.First != 0 {
		r.ChangePct = (r.Last - r.First) / r.First * 100
	}
	return r, nil
}

// Position returns where current sits within [low, high] (0.0~1.0).
func Position(current, high, low float64) (float64, error) {
	if high == low {
		return 0.5, nil
	}
	if high < low {
		return 0, errors.New("high must be >= low")
	}
	pos := (current - low) / (high - low)
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	return pos, nil
}
