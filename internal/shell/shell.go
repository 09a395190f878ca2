package shell

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"StockCompare/internal/chart"
	"StockCompare/internal/collector"
	"StockCompare/internal/model"
	"StockCompare/internal/notifier"
	"StockCompare/internal/recorder"
	"StockCompare/internal/watchlist"
)

var (
	ErrEmptyInput     = errors.New("empty input")
	ErrEmptySelection = errors.New("no symbols selected")
	ErrNoValidData    = errors.New("no valid data for the selected symbols")
)

// ChartRenderer displays a price table as a chart.
type ChartRenderer interface {
	Render(table model.PriceTable, keys []model.SeriesKey, mode chart.Mode) (*chart.Result, error)
}

// Shell owns the working set of symbols and runs user commands against it.
// Commands run one at a time; each reports its outcome through Notifier
// before the next one is read.
type Shell struct {
	Collector *collector.Collector
	Watchlist *watchlist.Watchlist
	Renderer  ChartRenderer
	Notifier  notifier.Notifier
	Recorder  recorder.Recorder
	Out       io.Writer // prompt and help text
}

// New creates a Shell with an empty watchlist.
func New(c *collector.Collector, r ChartRenderer, n notifier.Notifier, rec recorder.Recorder, out io.Writer) *Shell {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &Shell{
		Collector: c,
		Watchlist: watchlist.New(),
		Renderer:  r,
		Notifier:  n,
		Recorder:  rec,
		Out:       out,
	}
}

// Add validates input against the provider and appends it to the watchlist.
func (s *Shell) Add(input string) error {
	symbol := strings.TrimSpace(input)
	if symbol == "" {
		s.Notifier.Error("Error", "Please enter a company name or ticker.")
		return ErrEmptyInput
	}
	if s.Watchlist.Contains(symbol) {
		s.Notifier.Error("Error", fmt.Sprintf("%s is already in the list.", symbol))
		s.record(recorder.ActionAdd, []string{symbol}, "", recorder.OutcomeRefused, 0, "duplicate")
		return fmt.Errorf("%s is %w", symbol, watchlist.ErrDuplicate)
	}

	if _, err := s.Collector.Validate(symbol); err != nil {
		s.Notifier.Error("Error", fmt.Sprintf("Could not find a valid ticker for '%s'", symbol))
		s.record(recorder.ActionAdd, []string{symbol}, "", recorder.OutcomeFailed, 0, err.Error())
		return err
	}
	if err := s.Watchlist.Add(symbol); err != nil {
		s.Notifier.Error("Error", fmt.Sprintf("%s is already in the list.", symbol))
		return err
	}

	log.Printf("[INFO] added %s (%d selected)", symbol, s.Watchlist.Len())
	s.Notifier.Info("Success", fmt.Sprintf("%s added to the list.", symbol))
	s.record(recorder.ActionAdd, []string{symbol}, "", recorder.OutcomeOK, 0, "")
	return nil
}

// View reports the current watchlist.
func (s *Shell) View() {
	s.Notifier.Info("Selected Tickers", notifier.FormatTickerList(s.Watchlist.List()))
}

// Clear empties the watchlist.
func (s *Shell) Clear() {
	symbols := s.Watchlist.List()
	s.Watchlist.Clear()
	s.Notifier.Info("Success", "Ticker list cleared.")
	s.record(recorder.ActionClear, symbols, "", recorder.OutcomeOK, 0, "")
}

// Show fetches window history for every selected symbol and charts it.
func (s *Shell) Show(window model.Window) (*chart.Result, error) {
	symbols, err := s.selection(recorder.ActionShow, string(window))
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] show %s for %s", window, strings.Join(symbols, ","))
	res := s.Collector.Fetch(symbols, window)
	return s.display(recorder.ActionShow, string(window), symbols, res, chart.SingleWindow)
}

// CompareAll fetches every window for every selected symbol and charts all
// of them together, one series per symbol and window.
func (s *Shell) CompareAll() (*chart.Result, error) {
	symbols, err := s.selection(recorder.ActionCompare, "")
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] compare all windows for %s", strings.Join(symbols, ","))
	res := s.Collector.FetchAll(symbols)
	log.Printf("[INFO] windows with data: %v", res.Table.Windows())
	return s.display(recorder.ActionCompare, "", symbols, res, chart.MultiWindow)
}

// selection returns the watchlist, refusing an empty one before any fetch.
func (s *Shell) selection(action, window string) ([]string, error) {
	symbols := s.Watchlist.List()
	if len(symbols) == 0 {
		s.Notifier.Error("Error", "Please add at least one stock/company.")
		s.record(action, nil, window, recorder.OutcomeRefused, 0, "empty selection")
		return nil, ErrEmptySelection
	}
	return symbols, nil
}

func (s *Shell) display(action, window string, symbols []string, res *collector.FetchResult, mode chart.Mode) (*chart.Result, error) {
	notes := make([]string, 0, len(res.Failures))
	for _, f := range res.Failures {
		name := f.Symbol
		if mode == chart.MultiWindow {
			name = fmt.Sprintf("%s (%s)", f.Symbol, f.Window)
		}
		s.Notifier.Error("Error", fmt.Sprintf("An error occurred while fetching data for %s: %v", name, f.Err))
		notes = append(notes, f.Error())
	}

	log.Printf("[INFO] fetched %d rows for %v", len(res.Table), res.Table.Symbols())
	if res.Empty() {
		s.Notifier.Error("Error", "No valid data found for the selected stocks.")
		s.record(action, symbols, window, recorder.OutcomeFailed, 0, strings.Join(notes, "; "))
		return nil, ErrNoValidData
	}

	out, err := s.Renderer.Render(res.Table, chart.Keys(symbols, mode), mode)
	if errors.Is(err, chart.ErrEmptyChart) {
		s.Notifier.Error("Error", "No valid data found for the selected stocks.")
		s.record(action, symbols, window, recorder.OutcomeFailed, len(res.Table), err.Error())
		return nil, ErrNoValidData
	}
	if err != nil {
		log.Printf("[ERROR] render chart: %v", err)
		s.Notifier.Error("Error", fmt.Sprintf("Could not display the chart: %v", err))
		s.record(action, symbols, window, recorder.OutcomeFailed, len(res.Table), err.Error())
		return nil, err
	}

	outcome := recorder.OutcomeOK
	if len(res.Failures) > 0 {
		outcome = recorder.OutcomePartial
	}
	log.Printf("[INFO] %s displayed: %s\n%s", mode.Title(), out.Path, chart.Summary(out.Series))
	s.record(action, symbols, window, outcome, len(res.Table), strings.Join(notes, "; "))
	return out, nil
}

func (s *Shell) record(action string, symbols []string, window, outcome string, rows int, note string) {
	if err := s.Recorder.RecordAction(&recorder.ActionEvent{
		Action:  action,
		Symbols: symbols,
		Window:  window,
		Outcome: outcome,
		Rows:    rows,
		Note:    note,
	}); err != nil {
		log.Printf("[ERROR] record action: %v", err)
	}
}
