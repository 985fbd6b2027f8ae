// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Store drivers.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// DefaultExchangeRate is the fixed USD→CZK rate used when the config file
// does not set one. There is no market-rate fetching.
const DefaultExchangeRate = 21

type StoreConfig struct {
	Driver  string `yaml:"driver"`
	DataDir string `yaml:"data_dir"`
	// Filename of the SQLite database inside the data dir.
	Filename string `yaml:"filename,omitempty"`
}

type GymConfig struct {
	Name         string  `yaml:"name"`
	Capacity     int     `yaml:"capacity"`
	FeeCZK       float64 `yaml:"fee_czk"`
	FeeUSD       float64 `yaml:"fee_usd"`
	ExchangeRate float64 `yaml:"exchange_rate"`
}

type Config struct {
	App struct {
		Name        string `yaml:"name"`
		Environment string `yaml:"environment"`
	} `yaml:"app"`

	Gym GymConfig `yaml:"gym"`

	Store StoreConfig `yaml:"store"`
}

// Load loads both .env and yaml configuration
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Environment override
	if env := os.Getenv("GYMDESK_ENVIRONMENT"); env != "" {
		cfg.App.Environment = env
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.App.Environment == "" {
		c.App.Environment = "development"
	}
	if c.Gym.ExchangeRate == 0 {
		c.Gym.ExchangeRate = DefaultExchangeRate
	}
	if c.Store.Driver == "" {
		c.Store.Driver = DriverFile
	}
	if c.Store.Filename == "" {
		c.Store.Filename = "gymdesk.db"
	}
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.Gym.Name == "" {
		return fmt.Errorf("gym name is required")
	}
	if c.Gym.Capacity <= 0 {
		return fmt.Errorf("gym capacity must be positive")
	}
	if c.Gym.FeeCZK < 0 || c.Gym.FeeUSD < 0 {
		return fmt.Errorf("fees must be non-negative")
	}
	if c.Gym.ExchangeRate <= 0 {
		return fmt.Errorf("exchange rate must be positive")
	}

	switch c.Store.Driver {
	case DriverFile:
		if c.Store.DataDir == "" {
			return fmt.Errorf("store data_dir is required for the file driver")
		}
	case DriverSQLite:
		if c.Store.DataDir == "" {
			return fmt.Errorf("store data_dir is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unsupported store driver: %s", c.Store.Driver)
	}

	return nil
}

// SQLitePath is the full path of the SQLite database file.
func (c *Config) SQLitePath() string {
	return filepath.Join(c.Store.DataDir, c.Store.Filename)
}
