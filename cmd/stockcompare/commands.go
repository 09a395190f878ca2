package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"StockCompare/internal/model"
	"StockCompare/internal/recorder"
)

func openApp() (*app, subcommands.ExitStatus) {
	a, err := newApp(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	return a, subcommands.ExitSuccess
}

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "interactive ticker selection and charting (default)" }
func (*shellCmd) Usage() string {
	return `stockcompare shell

  Reads commands from standard input: add, view, clear, show <period>,
  3mo|6mo|1y|5y|10y|max, compare, help, quit.
`
}

func (*shellCmd) SetFlags(*flag.FlagSet) {}

func (*shellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, status := openApp()
	if a == nil {
		return status
	}
	defer a.Close()

	if err := a.shell().Run(ctx, os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type chartCmd struct {
	window   string
	headless bool
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "chart the daily highs of symbols over one period" }
func (*chartCmd) Usage() string {
	return `stockcompare chart [-window <period>] [-headless] <symbol>...

  Validates each symbol, fetches its history and opens one comparison chart.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.window, "window", string(model.Window1Y), "period: "+model.WindowList())
	f.BoolVar(&c.headless, "headless", false, "write the chart page without opening it")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	w, err := model.ParseWindow(c.window)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, status := openApp()
	if a == nil {
		return status
	}
	defer a.Close()
	if c.headless {
		a.renderer.Open = nil
	}

	sh := a.shell()
	for _, sym := range f.Args() {
		sh.Add(sym)
	}
	if _, err := sh.Show(w); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type compareCmd struct {
	headless bool
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "chart symbols across every period at once" }
func (*compareCmd) Usage() string {
	return `stockcompare compare [-headless] <symbol>...

  Fetches every period for each symbol and draws one series per symbol and
  period.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.headless, "headless", false, "write the chart page without opening it")
}

func (c *compareCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	a, status := openApp()
	if a == nil {
		return status
	}
	defer a.Close()
	if c.headless {
		a.renderer.Open = nil
	}

	sh := a.shell()
	for _, sym := range f.Args() {
		sh.Add(sym)
	}
	if _, err := sh.CompareAll(); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type validateCmd struct{}

func (*validateCmd) Name() string     { return "validate" }
func (*validateCmd) Synopsis() string { return "check symbols against the data provider" }
func (*validateCmd) Usage() string {
	return `stockcompare validate <symbol>...

  Asks the provider for one day of data per symbol and reports which ones
  are usable.
`
}

func (*validateCmd) SetFlags(*flag.FlagSet) {}

func (*validateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	a, status := openApp()
	if a == nil {
		return status
	}
	defer a.Close()

	var valid, invalid []string
	for _, sym := range f.Args() {
		if _, err := a.collector.Validate(strings.TrimSpace(sym)); err != nil {
			invalid = append(invalid, fmt.Sprintf("%s: %v", sym, err))
			continue
		}
		valid = append(valid, sym)
	}

	outcome := recorder.OutcomeOK
	if len(invalid) > 0 {
		outcome = recorder.OutcomePartial
		if len(valid) == 0 {
			outcome = recorder.OutcomeFailed
		}
	}
	if err := a.recorder.RecordAction(&recorder.ActionEvent{
		Action:  recorder.ActionValidate,
		Symbols: f.Args(),
		Outcome: outcome,
		Note:    strings.Join(invalid, "; "),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: record action: %v\n", err)
	}

	if len(valid) > 0 {
		a.notifier.Info("Valid", strings.Join(valid, "\n"))
	}
	if len(invalid) > 0 {
		a.notifier.Error("Invalid", strings.Join(invalid, "\n"))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
