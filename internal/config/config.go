// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the session credentials of the signed-in user.
	App App `envPrefix:"APP_"`

	// Adapter holds the address and timeout of the pass API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local replica database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds the event loop and reachability monitor settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds the rotated log file settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds credentials used to talk to the API and unwrap share keys.
type App struct {
	// AccessToken is the bearer token; its "sub" claim is the user id.
	// Env: APP_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN,unset"`

	// KeySalt is the salt the user key is derived with (Argon2id).
	// Env: APP_KEY_SALT
	KeySalt string `env:"KEY_SALT"`

	// MasterPassword skips the unlock prompt when set. Meant for headless runs.
	// Env: APP_MASTER_PASSWORD
	MasterPassword string `env:"MASTER_PASSWORD,unset"`
}

// Adapter holds configuration for the outbound HTTP transport.
type Adapter struct {
	// HTTPAddress is the API base address, with or without scheme
	// (e.g. "localhost:8080", "https://pass.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single API request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration of the local replica.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the sqlite database.
type DB struct {
	// DSN is the sqlite database file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the sync event loop.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// ReachabilityInterval is the period of network checks.
	// Env: WORKERS_REACHABILITY_INTERVAL
	ReachabilityInterval time.Duration `env:"REACHABILITY_INTERVAL"`

	// ShareConcurrency is the number of shares drained at the same time.
	// Env: WORKERS_SHARE_CONCURRENCY
	ShareConcurrency int `env:"SHARE_CONCURRENCY"`

	// CursorCommit is "after_apply" or "before_apply".
	// Env: WORKERS_CURSOR_COMMIT
	CursorCommit string `env:"CURSOR_COMMIT"`
}

// Log holds the client log file settings.
type Log struct {
	// File is the log file path.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// MaxSizeMB is the rotation threshold.
	// Env: LOG_MAX_SIZE_MB
	MaxSizeMB int `env:"MAX_SIZE_MB"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
