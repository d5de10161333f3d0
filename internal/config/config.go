package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		BaseURL     string `yaml:"base_url"`
		APIKey      string `yaml:"api_key"`
		PayloadFile string `yaml:"payload_file"`
		ProductID   string `yaml:"product_id"`
	} `yaml:"data_source"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Offers struct {
		StateFile string `yaml:"state_file"`
	} `yaml:"offers"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A .env file in the working directory is honored first.
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
	if v := os.Getenv("PRICESCOUT_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("PRICESCOUT_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("PRICESCOUT_PAYLOAD_FILE"); v != "" {
		cfg.DataSource.PayloadFile = v
	}
	if v := os.Getenv("PRICESCOUT_PRODUCT_ID"); v != "" {
		cfg.DataSource.ProductID = v
	}
	if v := os.Getenv("CRON_REFRESH"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("OFFERS_STATE_FILE"); v != "" {
		cfg.Offers.StateFile = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 0 6 * * *"
	}
	if cfg.Offers.StateFile == "" {
		cfg.Offers.StateFile = "data/offers.json"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/pricescout.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.DataSource.ProductID == "" {
		return fmt.Errorf("data_source.product_id is required")
	}
	if c.DataSource.BaseURL == "" && c.DataSource.PayloadFile == "" {
		return fmt.Errorf("data_source.base_url or data_source.payload_file is required")
	}
	return nil
}
