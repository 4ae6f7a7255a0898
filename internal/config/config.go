package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"RetailSim/internal/model"
)

const (
	ModeInteractive = "interactive"
	ModeDemo        = "demo"
)

// Config holds all application configuration.
type Config struct {
	Economy model.Economy `yaml:"economy"`
	Run     struct {
		Mode     string `yaml:"mode"`
		DemoDays int    `yaml:"demo_days"`
		Pace     string `yaml:"pace"` // cron spec, one day per tick; empty runs back to back
	} `yaml:"run"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Log struct {
		Level    string `yaml:"level"`
		Encoding string `yaml:"encoding"` // "console" or "json"
	} `yaml:"log"`
}

// PaceParser accepts an optional seconds field and descriptors such as "@every 1s".
var PaceParser = cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Load reads an optional .env file, then the YAML config, then applies
// environment variable overrides and defaults. A missing file is not an error.
func Load(path, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := &Config{Economy: model.DefaultEconomy()}

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
	if v := os.Getenv("RETAILSIM_MODE"); v != "" {
		cfg.Run.Mode = v
	}
	if v := os.Getenv("RETAILSIM_PACE"); v != "" {
		cfg.Run.Pace = v
	}
	if v := os.Getenv("RETAILSIM_SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("RETAILSIM_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if err := overrideInt("RETAILSIM_DAYS", &cfg.Economy.Days); err != nil {
		return nil, err
	}
	if err := overrideInt("RETAILSIM_DEMO_DAYS", &cfg.Run.DemoDays); err != nil {
		return nil, err
	}
	if err := overrideFloat("RETAILSIM_INITIAL_BALANCE", &cfg.Economy.InitialBalance); err != nil {
		return nil, err
	}
	if err := overrideFloat("RETAILSIM_CREDIT_LIMIT", &cfg.Economy.CreditLimit); err != nil {
		return nil, err
	}

	// Defaults
	if cfg.Run.Mode == "" {
		cfg.Run.Mode = ModeInteractive
	}
	if cfg.Run.DemoDays == 0 {
		cfg.Run.DemoDays = 10
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Encoding == "" {
		cfg.Log.Encoding = "console"
	}

	return cfg, nil
}

// Validate checks that the economy and run settings are usable.
func (c *Config) Validate() error {
	e := c.Economy
	p := e.Policy
	switch {
	case e.BasePrice <= 0:
		return fmt.Errorf("economy.base_price must be positive")
	case e.OfferPrice < 0:
		return fmt.Errorf("economy.offer_price must not be negative")
	case e.InitialWarehouse < 0 || e.InitialStore < 0:
		return fmt.Errorf("economy initial stock must not be negative")
	case e.CreditLimit < 0:
		return fmt.Errorf("economy.credit_limit must not be negative")
	case e.CreditRateMonthly < 0:
		return fmt.Errorf("economy.credit_rate_monthly must not be negative")
	case e.TaxRate < 0 || e.TaxRate > 1:
		return fmt.Errorf("economy.tax_rate must be within 0..1")
	case e.Days <= 0:
		return fmt.Errorf("economy.days must be positive")
	case p.OfferVolume < 0:
		return fmt.Errorf("economy.policy.offer_volume must not be negative")
	case p.BaseDailyDemand < 0:
		return fmt.Errorf("economy.policy.base_daily_demand must not be negative")
	case p.DeliveryRate < 0 || p.DeliveryRate > 1:
		return fmt.Errorf("economy.policy.delivery_rate must be within 0..1")
	case p.PeriodDays <= 0:
		return fmt.Errorf("economy.policy.period_days must be positive")
	case p.SalesSkill < 0 || p.SalesSkill > 1 || p.SalesMotivation < 0 || p.SalesMotivation > 1:
		return fmt.Errorf("economy.policy sales skill and motivation must be within 0..1")
	}
	for i, s := range p.OfferStages {
		if s < 0 {
			return fmt.Errorf("economy.policy.offer_stages[%d] must not be negative", i)
		}
	}

	if c.Run.Mode != ModeInteractive && c.Run.Mode != ModeDemo {
		return fmt.Errorf("run.mode must be %q or %q, got %q", ModeInteractive, ModeDemo, c.Run.Mode)
	}
	if c.Run.DemoDays <= 0 {
		return fmt.Errorf("run.demo_days must be positive")
	}
	if c.Run.Pace != "" {
		if _, err := PaceParser.Parse(c.Run.Pace); err != nil {
			return fmt.Errorf("run.pace: %w", err)
		}
	}
	return nil
}

// Days returns how many days the configured mode runs for.
func (c *Config) Days() int {
	if c.Run.Mode == ModeDemo {
		return c.Run.DemoDays
	}
	return c.Economy.Days
}

func overrideInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func overrideFloat(key string, dst *float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}
