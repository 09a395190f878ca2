package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"StockCompare/internal/chart"
	"StockCompare/internal/collector"
	"StockCompare/internal/config"
	"StockCompare/internal/notifier"
	"StockCompare/internal/recorder"
	"StockCompare/internal/shell"
)

// app carries the components shared by every subcommand.
type app struct {
	cfg       *config.Config
	collector *collector.Collector
	renderer  *chart.Renderer
	notifier  notifier.Notifier
	recorder  recorder.Recorder
	logFile   io.Closer
}

func newApp(cfgPath string) (*app, error) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	a := &app{cfg: cfg}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log.SetOutput(f)
		a.logFile = f
	}
	log.Println("[INFO] StockCompare starting...")

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy, cfg.DataSource.Timeout)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy, cfg.DataSource.Timeout)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())
	a.collector = collector.NewCollector(fetcher)

	a.renderer = chart.NewRenderer(cfg.Chart.OutputDir,
		chart.Size{Width: cfg.Chart.Width, Height: cfg.Chart.Height}, cfg.Chart.Headless)
	a.notifier = notifier.NewConsoleNotifier(os.Stdout)

	// Init recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			a.recorder = recorder.NewNoopRecorder()
		} else {
			a.recorder = sr
			log.Printf("[INFO] journal session: %s", sr.Session())
		}
	} else {
		a.recorder = recorder.NewNoopRecorder()
	}
	return a, nil
}

func (a *app) shell() *shell.Shell {
	return shell.New(a.collector, a.renderer, a.notifier, a.recorder, os.Stdout)
}

func (a *app) Close() {
	if err := a.recorder.Close(); err != nil {
		log.Printf("[ERROR] close recorder: %v", err)
	}
	log.Println("[INFO] StockCompare stopped")
	if a.logFile != nil {
		a.logFile.Close()
	}
}
