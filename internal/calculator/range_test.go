package calculator

import (
	"testing"

	"StockCompare/internal/model"
)

func TestHighLowRange(t *testing.T) {
	bars := []model.OHLCV{
		{High: 105, Low: 95, Close: 100},
		{High: 120, Low: 99, Close: 110},
		{High: 115, Low: 90, Close: 125},
	}
	r, err := HighLowRange(bars)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.High != 120 || r.Low != 90 {
		t.Errorf("expected high 120 low 90, got %.1f %.1f", r.High, r.Low)
	}
	if r.ChangePct != 25 {
		t.Errorf("expected +25%% change, got %.2f", r.ChangePct)
	}

	if _, err := HighLowRange(nil); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestPosition(t *testing.T) {
	tests := []struct {
		current, high, low float64
		want               float64
	}{
		{110, 120, 100, 0.5},
		{130, 120, 100, 1},
		{90, 120, 100, 0},
		{100, 100, 100, 0.5},
	}
	for _, tt := range tests {
		got, err := Position(tt.current, tt.high, tt.low)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != tt.want {
			t.Errorf("Position(%.0f, %.0f, %.0f) = %.2f, want %.2f", tt.current, tt.high, tt.low, got, tt.want)
		}
	}
	if _, err := Position(1, 1, 2); err == nil {
		t.Error("expected error when high < low")
	}
}
