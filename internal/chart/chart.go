// Package chart turns price tables into interactive ECharts line charts.
package chart

import (
	"encoding/json"
	"errors"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"StockCompare/internal/model"
)

// ErrEmptyChart is returned when there is nothing to plot.
var ErrEmptyChart = errors.New("no data to chart")

// Mode selects the titles and hover behaviour of a chart.
type Mode int

const (
	// SingleWindow compares symbols over one window.
	SingleWindow Mode = iota
	// MultiWindow compares every symbol over every window.
	MultiWindow
)

const (
	backgroundColor = "#000000"
	textColor       = "#ffffff"
	legendBorder    = "#ffffff"
	dateFormat      = "2006-01-02"
)

// Title returns the static chart title for the mode.
func (m Mode) Title() string {
	if m == MultiWindow {
		return "Stock Price Comparison Across Periods"
	}
	return "Stock Price Comparison"
}

// LegendTitle names what the legend entries are.
func (m Mode) LegendTitle() string {
	if m == MultiWindow {
		return "Company/Period"
	}
	return "Company"
}

// Size is the chart canvas size in CSS units.
type Size struct {
	Width  string
	Height string
}

// legendBorderVisitor adds the legend box border, which opts.Legend does not expose.
type legendBorderVisitor struct {
	charts.BaseConfigurationVisitor
}

func (legendBorderVisitor) VisitLegendOpt(legend opts.Legend) interface{} {
	raw, err := json.Marshal(legend)
	if err != nil {
		return legend
	}
	m := map[string]interface{}{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return legend
	}
	m["borderColor"] = legendBorder
	m["borderWidth"] = 1
	m["padding"] = 8
	return m
}

// Build lays out one line per series, date on x and daily high on y.
func Build(series []Series, mode Mode, size Size) (*charts.Line, error) {
	if PointCount(series) == 0 {
		return nil, ErrEmptyChart
	}

	white := &opts.TextStyle{Color: textColor}
	tooltip := opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}
	if mode == SingleWindow {
		tooltip.Trigger = "axis"
		tooltip.AxisPointer = &opts.AxisPointer{Type: "line"}
	}

	line := charts.NewLine()
	line.Accept(legendBorderVisitor{})
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:       mode.Title(),
			Width:           size.Width,
			Height:          size.Height,
			Theme:           "dark",
			BackgroundColor: backgroundColor,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:         mode.Title(),
			Subtitle:      mode.LegendTitle() + "\n" + Summary(series),
			TitleStyle:    white,
			SubtitleStyle: white,
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:      opts.Bool(true),
			Type:      "scroll",
			Orient:    "vertical",
			Right:     "1%",
			Top:       "1%",
			TextStyle: white,
		}),
		charts.WithTooltipOpts(tooltip),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside", Start: 0, End: 100},
			opts.DataZoom{Type: "slider", Start: 0, End: 100},
		),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Date",
			Type:      "time",
			AxisLabel: &opts.AxisLabel{Color: textColor},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "High Value",
			Type:      "value",
			Scale:     opts.Bool(true),
			AxisLabel: &opts.AxisLabel{Color: textColor},
		}),
	)

	for _, s := range series {
		if len(s.Points) == 0 {
			continue
		}
		line.AddSeries(s.Key.Label(), lineData(s.Points),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		)
	}
	return line, nil
}

func lineData(points []Point) []opts.LineData {
	data := make([]opts.LineData, len(points))
	for i, p := range points {
		data[i] = opts.LineData{Value: []interface{}{p.Date.Format(dateFormat), p.High}}
	}
	return data
}

// Keys returns the series keys for a request in the given mode.
func Keys(symbols []string, mode Mode) []model.SeriesKey {
	if mode == MultiWindow {
		return model.PeriodKeys(symbols)
	}
	return model.SymbolKeys(symbols)
}
