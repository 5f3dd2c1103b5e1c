// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
)

// Defaults applied when no other source sets a value.
const (
	DefaultHTTPAddress    = "http://localhost:18000"
	DefaultRequestTimeout = 30 * time.Second
	DefaultRefreshPath    = "/auth/refresh"
	DefaultLogoutPath     = "/auth/logout"
	DefaultLogLevel       = "info"

	defaultDSNFile = "credentials.db"
)

// DefaultDSN returns the credential store path under the user's
// configuration directory, e.g. ~/.config/ordersctl/credentials.db on Linux.
// Without a home directory the file is placed in the working directory.
func DefaultDSN() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return defaultDSNFile
	}
	return filepath.Join(dir, "ordersctl", defaultDSNFile)
}

// StructuredConfig is the top-level configuration container for the
// go-orders-admin client. It aggregates all sub-configurations and is
// populated by merging values from command-line flags, environment variables,
// an optional JSON file and the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as logging.
	App App `envPrefix:"APP_"`

	// Adapter holds the Orders API address, timeout and auth endpoint paths.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local credential store.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogFile is the path of the JSON log file. Empty means a "logs" file
	// next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is the minimum zerolog level that is written
	// ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Adapter holds settings for the outbound HTTP client.
type Adapter struct {
	// HTTPAddress is the base address of the Orders API
	// (e.g. "http://localhost:18000"). A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single HTTP exchange (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RefreshPath is the unauthenticated token refresh endpoint.
	// Env: ADAPTER_REFRESH_PATH
	RefreshPath string `env:"REFRESH_PATH"`

	// LogoutPath is the unauthenticated logout notification endpoint.
	// Env: ADAPTER_LOGOUT_PATH
	LogoutPath string `env:"LOGOUT_PATH"`
}

// Storage groups the configuration for the local storage backends.
type Storage struct {
	// DB holds the SQLite credential store settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (or go-sqlite3 DSN) of the credential store.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogLevel: DefaultLogLevel},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			RefreshPath:    DefaultRefreshPath,
			LogoutPath:     DefaultLogoutPath,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN()}},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. flags is the flag set previously populated by [RegisterFlags] and
// parsed by the caller; it may be nil.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig(flags *FlagValues) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		withDefaults().
		build()
}

// RegisterFlags binds the configuration flags to fs and returns the holder
// that receives their values once fs is parsed.
func RegisterFlags(fs *pflag.FlagSet) *FlagValues {
	return bindFlags(fs)
}
