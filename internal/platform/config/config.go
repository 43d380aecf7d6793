// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Once loaded, configuration is read-only and passed to components through
their constructors.
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/catalog/internal/platform/constants"
	"github.com/taibuivan/catalog/pkg/commalist"
)

// # Configuration Schema

// Config holds all runtime configuration for the catalog API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// LogFormat is "json" or "text". Empty picks text in development, json elsewhere.
	LogFormat string `env:"LOG_FORMAT"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// MigrateOnStart applies pending migrations before serving traffic.
	MigrateOnStart bool `env:"MIGRATE_ON_START" envDefault:"true"`

	// Key-Value Cache (Redis). Empty disables the concept field cache.
	RedisURL      string        `env:"REDIS_URL"`
	FieldCacheTTL time.Duration `env:"FIELD_CACHE_TTL" envDefault:"5m"`

	// Token verification keys. The private key is only needed to mint tokens.
	JWTPubKeyPath  string `env:"JWT_PUBLIC_KEY_PATH,required,notEmpty"`
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH"`

	// SearchBackend selects the free-text backend ("none" or "postgres").
	SearchBackend string `env:"SEARCH_BACKEND" envDefault:"none"`

	// PublicBaseURL overrides the scheme and host used in self links.
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.SearchBackend {
	case constants.SearchBackendNone, constants.SearchBackendPostgres:
	default:
		return fmt.Errorf("config: unsupported SEARCH_BACKEND %q", c.SearchBackend)
	}

	switch c.LogFormat {
	case "", "json", "text":
	default:
		return fmt.Errorf("config: unsupported LOG_FORMAT %q", c.LogFormat)
	}

	c.PublicBaseURL = strings.TrimRight(c.PublicBaseURL, "/")
	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// SearchEnabled reports whether a search backend is configured.
func (c *Config) SearchEnabled() bool {
	return c.SearchBackend != constants.SearchBackendNone
}

// CacheEnabled reports whether Redis is configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}

// TextLogs reports whether logs should be rendered for humans.
func (c *Config) TextLogs() bool {
	if c.LogFormat == "" {
		return c.IsDevelopment()
	}
	return c.LogFormat == "text"
}

// AllowedOrigins returns the extra CORS origins as a trimmed list.
func (c *Config) AllowedOrigins() []string {
	return commalist.Split(c.ExtraOrigins)
}

// # Command Subsets

// MigrationConfig is the subset of settings needed to apply migrations.
type MigrationConfig struct {
	DatabaseURL   string `env:"DATABASE_URL,required,notEmpty"`
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`
}

// SigningConfig is the subset of settings needed to mint tokens.
type SigningConfig struct {
	JWTPubKeyPath  string `env:"JWT_PUBLIC_KEY_PATH,required,notEmpty"`
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH,required,notEmpty"`
}

// LoadMigration parses only the migration settings, so schema changes do not
// require token keys to be present.
func LoadMigration() (*MigrationConfig, error) {
	return parse[MigrationConfig]()
}

// LoadSigning parses only the token key paths.
func LoadSigning() (*SigningConfig, error) {
	return parse[SigningConfig]()
}

func parse[T any]() (*T, error) {
	cfg, err := env.ParseAs[T]()
	if err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	return &cfg, nil
}
