// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Auth holds optional credentials for non-interactive login.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds configuration of the local conversation cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the chat backend address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HS256 key the backend signs bearer tokens with.
	// When set, token claims are verified with zero leeway; when empty they
	// are decoded without verification.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`
}

// Auth holds credentials used to log in at startup without showing the
// login form.
type Auth struct {
	// Env: AUTH_NAME
	Name string `env:"NAME"`
	// Env: AUTH_PASSWORD
	Password string `env:"PASSWORD"`
}

// Storage groups the configuration for the local storage backends.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite cache.
type DB struct {
	// DSN is the SQLite file path (e.g. "chat-cache.db"). Empty disables the
	// cache.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds configuration of the chat backend connection.
type Adapter struct {
	// HTTPAddress is the base URL of the chat backend
	// (e.g. "http://localhost:3000"). A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds regular REST calls (e.g. "10s"). Zero keeps the
	// HTTP client default. The event stream is never bounded by it.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RenewInterval is the token renewal period.
	// Env: WORKERS_RENEW_INTERVAL
	RenewInterval time.Duration `env:"RENEW_INTERVAL"`

	// PollInterval is the conversation list polling period.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// RecentPageSize bounds the number of conversations fetched per poll.
	// Env: WORKERS_RECENT_PAGE_SIZE
	RecentPageSize int `env:"RECENT_PAGE_SIZE"`
}

// Defaults applied when no other source sets a value.
const (
	DefaultHTTPAddress    = "http://localhost:3000"
	DefaultRenewInterval  = 60 * time.Second
	DefaultPollInterval   = 5 * time.Second
	DefaultRecentPageSize = 100
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{HTTPAddress: DefaultHTTPAddress},
		Workers: Workers{
			RenewInterval:  DefaultRenewInterval,
			PollInterval:   DefaultPollInterval,
			RecentPageSize: DefaultRecentPageSize,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. args are the command-line arguments without the program
// name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
