package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Pesa"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	// Backend selects the persistence implementation at startup.
	Backend struct {
		Kind       string `envconfig:"BACKEND" default:"file"` // file, sqlite or postgres
		StatePath  string `envconfig:"STATE_PATH" default:"data/pesa.json"`
		SQLitePath string `envconfig:"SQLITE_PATH" default:"data/pesa.db"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"pesa"`
	}

	Ledger struct {
		Workspace      string `envconfig:"WORKSPACE" default:"default"`
		Currency       string `envconfig:"CURRENCY" default:"USD"`
		DeriveBalances bool   `envconfig:"DERIVE_BALANCES" default:"false"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
