// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the feed
// client. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds feed presentation settings: application name, home view
	// path, page size and the live-head proximity threshold.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local database that keeps the
	// notification permission decision.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the feed server address and outbound request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds timings of the background producers (poll fallback and
	// push channel reconnection).
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds feed presentation settings.
type App struct {
	// Name is the base window title, decorated as "(n) Name" while there
	// are unread items.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// HomePath is the navigation path of the feed's home view. Only this
	// view counts as watching the live head of the feed.
	// Env: APP_HOME_PATH
	HomePath string `env:"HOME_PATH"`

	// PageLimit is the number of items requested for the first timeline
	// page on a silent refresh.
	// Env: APP_PAGE_LIMIT
	PageLimit int `env:"PAGE_LIMIT"`

	// ProximityThreshold is the maximum scroll offset (in rows) at which
	// the viewer is still considered to be at the live head.
	// Env: APP_PROXIMITY_THRESHOLD
	ProximityThreshold int `env:"PROXIMITY_THRESHOLD"`

	// DisableNotifications turns the desktop notification capability off;
	// the permission gate then reports it as denied.
	// Env: APP_DISABLE_NOTIFICATIONS
	DisableNotifications bool `env:"DISABLE_NOTIFICATIONS"`
}

// Storage groups the configuration for client storage backends.
type Storage struct {
	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local database.
type DB struct {
	// DSN is the SQLite database file path (e.g. "feed-sync.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds settings for the feed server transport.
type Adapter struct {
	// HTTPAddress is the feed server base address, either a full URL
	// ("http://localhost:8000") or "host:port".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds poll and refresh requests (e.g. "15s"). The
	// event stream is long-lived and not bound by it.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds timings of background producers.
type Workers struct {
	// PollInterval is the period of the poll fallback.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// ReconnectDelay is the fixed delay before the push channel reconnects
	// after a transport error.
	// Env: WORKERS_RECONNECT_DELAY
	ReconnectDelay time.Duration `env:"RECONNECT_DELAY"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags (os.Args)
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
