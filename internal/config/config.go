package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		BaseURL string        `yaml:"base_url"`
		APIKey  string        `yaml:"api_key"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"data_source"`
	Chart struct {
		OutputDir string `yaml:"output_dir"`
		Headless  bool   `yaml:"headless"`
		Width     string `yaml:"width"`
		Height    string `yaml:"height"`
	} `yaml:"chart"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	LogFile string `yaml:"log_file"`
	Proxy   string `yaml:"proxy"`
}

// DefaultPath returns $CONFIG_PATH or configs/config.yaml.
func DefaultPath() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "configs/config.yaml"
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A .env file in the working directory is loaded first if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("STOCKCOMPARE_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("STOCKCOMPARE_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("PROVIDER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("PROVIDER_TIMEOUT: %w", err)
		}
		cfg.DataSource.Timeout = d
	}
	if v := os.Getenv("CHART_OUTPUT_DIR"); v != "" {
		cfg.Chart.OutputDir = v
	}
	if v := os.Getenv("CHART_HEADLESS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("CHART_HEADLESS: %w", err)
		}
		cfg.Chart.Headless = b
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.LogFile = v
	}

	// Defaults
	if cfg.DataSource.Timeout == 0 {
		cfg.DataSource.Timeout = 30 * time.Second
	}
	if cfg.Chart.OutputDir == "" {
		cfg.Chart.OutputDir = filepath.Join(os.TempDir(), "stockcompare")
	}
	if cfg.Chart.Width == "" {
		cfg.Chart.Width = "1200px"
	}
	if cfg.Chart.Height == "" {
		cfg.Chart.Height = "650px"
	}

	return cfg, nil
}

// Validate checks that the loaded values are usable.
func (c *Config) Validate() error {
	if c.DataSource.Timeout < 0 {
		return fmt.Errorf("data_source.timeout must not be negative")
	}
	if c.DataSource.APIKey != "" && c.DataSource.BaseURL == "" {
		return fmt.Errorf("data_source.api_key is set but data_source.base_url is empty")
	}
	if c.Chart.OutputDir == "" {
		return fmt.Errorf("chart.output_dir is required")
	}
	return nil
}
