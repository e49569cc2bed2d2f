// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the backup
// tool. It aggregates all sub-configurations and is populated by merging
// values from command-line flags, environment variables, an optional JSON
// file and built-in defaults.
//
// All policy values are kept as raw strings here; [ClientConfig] holds the
// parsed, validated view used at runtime.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds credentials and the application version.
	App App `envPrefix:"APP_"`

	// Adapter holds the Exercism API endpoint and transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Backup holds everything that shapes a backup run: destination,
	// filters, policies and concurrency.
	Backup Backup `envPrefix:"BACKUP_"`

	// Storage holds the optional backup catalog settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Logger holds log level, format and destination.
	Logger Logger `envPrefix:"LOG_"`

	// Workers holds configuration for the periodic backup job.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Token is the Exercism API token. When empty, the token of the
	// Exercism CLI configuration is used.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// Version is the version string reported by `exbackup version`.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds settings of the outbound Exercism API client.
type Adapter struct {
	// Address is the API base URL (e.g. "https://exercism.org/api").
	// Env: ADAPTER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds every single API request (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Backup holds the raw backup run settings.
type Backup struct {
	// Path is the output directory solutions are mirrored into.
	// Env: BACKUP_PATH
	Path string `env:"PATH"`

	// Tracks restricts the backup to these track slugs. Empty means all.
	// Env: BACKUP_TRACKS (comma separated)
	Tracks []string `env:"TRACKS" envSeparator:","`

	// Exercises restricts the backup to these exercise slugs. Empty means all.
	// Env: BACKUP_EXERCISES (comma separated)
	Exercises []string `env:"EXERCISES" envSeparator:","`

	// Status is the minimum solution status to back up.
	// Env: BACKUP_STATUS
	Status string `env:"STATUS"`

	// Overwrite is the overwrite policy for solutions already on disk.
	// Env: BACKUP_OVERWRITE
	Overwrite string `env:"OVERWRITE"`

	// Iterations is the iterations sync policy.
	// Env: BACKUP_ITERATIONS
	Iterations string `env:"ITERATIONS"`

	// DryRun lists what would be done without touching the disk.
	// Env: BACKUP_DRY_RUN
	DryRun bool `env:"DRY_RUN"`

	// MaxDownloads is the number of concurrently outstanding remote calls
	// and filesystem mutations.
	// Env: BACKUP_MAX_DOWNLOADS
	MaxDownloads int `env:"MAX_DOWNLOADS"`

	// IterationsDir is the name of the per-solution iterations directory.
	// Env: BACKUP_ITERATIONS_DIR
	IterationsDir string `env:"ITERATIONS_DIR"`
}

// Storage groups the configuration of local persistence backends.
type Storage struct {
	// CatalogDSN is the SQLite database file of the backup catalog.
	// Empty disables the catalog.
	// Env: STORAGE_CATALOG_DSN
	CatalogDSN string `env:"CATALOG_DSN"`
}

// Logger holds logging settings.
type Logger struct {
	// Level is a zerolog level name. Env: LOG_LEVEL
	Level string `env:"LEVEL"`
	// Format is "console" or "json". Env: LOG_FORMAT
	Format string `env:"FORMAT"`
	// File redirects log output from stderr to a file. Env: LOG_FILE
	File string `env:"FILE"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// BackupInterval repeats the backup periodically when positive.
	// Env: WORKERS_BACKUP_INTERVAL
	BackupInterval time.Duration `env:"BACKUP_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all sources
// in the following priority order (first non-zero value wins):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
