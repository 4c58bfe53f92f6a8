package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Sync policy constants select how mutations are mirrored to the sheet
const (
	PolicyAppend    = "append"
	PolicyUpsert    = "upsert"
	PolicyActionLog = "action-log"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// Config holds all process configuration, loaded from the environment
type Config struct {
	// Port is the HTTP listen port
	Port int `env:"PORT" envDefault:"5000"`

	// RosterPath is the registration workbook read at startup
	RosterPath string `env:"ROSTER_PATH" envDefault:"All_registrations.xlsx"`

	// SpreadsheetID identifies the attendance log spreadsheet
	SpreadsheetID string `env:"SPREADSHEET_ID"`

	// CredentialsJSON is an inline service account key. Takes precedence
	// over CredentialsFile when both are set.
	CredentialsJSON string `env:"GOOGLE_APPLICATION_CREDENTIALS_JSON"`

	// CredentialsFile is a path to a service account key file
	CredentialsFile string `env:"GOOGLE_APPLICATION_CREDENTIALS"`

	// SyncPolicy selects the reconciliation policy: append, upsert or action-log
	SyncPolicy string `env:"SYNC_POLICY" envDefault:"action-log"`

	// SeedFromLog rehydrates present flags from the sheet at startup.
	// Only meaningful under the action-log policy.
	SeedFromLog bool `env:"SEED_FROM_LOG" envDefault:"false"`

	// StorageType selects the attendance store backend ("memory" or "redis")
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`

	// RedisURL is required when StorageType is "redis"
	RedisURL string `env:"REDIS_URL"`
}

// Load reads configuration from the environment and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field requirements that struct tags cannot express
func (c *Config) Validate() error {
	switch c.SyncPolicy {
	case PolicyAppend, PolicyUpsert, PolicyActionLog:
	default:
		return fmt.Errorf("invalid SYNC_POLICY %q", c.SyncPolicy)
	}

	switch c.StorageType {
	case StorageTypeMemory:
	case StorageTypeRedis:
		if c.RedisURL == "" {
			return errors.New("REDIS_URL required when STORAGE_TYPE=redis")
		}
	default:
		return fmt.Errorf("invalid STORAGE_TYPE %q", c.StorageType)
	}

	if c.SeedFromLog && c.SyncPolicy != PolicyActionLog {
		return fmt.Errorf("SEED_FROM_LOG requires SYNC_POLICY=action-log, got %q", c.SyncPolicy)
	}

	return nil
}
