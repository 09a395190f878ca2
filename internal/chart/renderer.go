package chart

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/browser"

	"StockCompare/internal/model"
)

// Opener displays a rendered chart file.
type Opener func(path string) error

// Renderer writes chart pages to disk and hands them to a viewer.
type Renderer struct {
	OutputDir string
	Size      Size
	Open      Opener // nil writes the page without opening it
}

// NewRenderer returns a Renderer that opens pages in the system browser
// unless headless is set.
func NewRenderer(outputDir string, size Size, headless bool) *Renderer {
	r := &Renderer{OutputDir: outputDir, Size: size}
	if !headless {
		r.Open = browser.OpenFile
	}
	return r
}

// Result describes a displayed chart.
type Result struct {
	Path   string
	Series []Series
}

// Render selects keys from table, builds the chart and displays it.
// Nothing is written when no key has data.
func (r *Renderer) Render(table model.PriceTable, keys []model.SeriesKey, mode Mode) (*Result, error) {
	if len(keys) == 0 || table.Empty() {
		return nil, ErrEmptyChart
	}
	series := Select(table, keys)
	line, err := Build(series, mode, r.Size)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(r.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create chart dir: %w", err)
	}
	f, err := os.CreateTemp(r.OutputDir, "chart-*.html")
	if err != nil {
		return nil, fmt.Errorf("create chart file: %w", err)
	}
	if err := line.Render(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("render chart: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("write chart: %w", err)
	}
	log.Printf("[INFO] chart written: %s (%d series, %d points)", f.Name(), len(series), PointCount(series))

	if r.Open != nil {
		if err := r.Open(f.Name()); err != nil {
			return nil, fmt.Errorf("open chart %s: %w", f.Name(), err)
		}
	}
	return &Result{Path: f.Name(), Series: series}, nil
}
