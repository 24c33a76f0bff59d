// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] to fields left empty by every source.
const (
	DefaultHTTPAddress        = "http://localhost:8000"
	DefaultRequestTimeout     = 15 * time.Second
	DefaultPollInterval       = 20 * time.Second
	DefaultReconnectDelay     = 5 * time.Second
	DefaultAppName            = "AGENTS"
	DefaultHomePath           = "/AGENTS"
	DefaultPageLimit          = 50
	DefaultProximityThreshold = 120
	DefaultDSN                = "feed-sync.db"
)

// ClientApp holds feed presentation settings.
type ClientApp struct {
	// Name is the base window title.
	Name string
	// HomePath is the path of the feed's home view.
	HomePath string
	// PageLimit is the first-page size used by silent refreshes.
	PageLimit int
	// ProximityThreshold is the inclusive scroll offset bound of the live
	// head.
	ProximityThreshold int
	// DesktopNotifications reports whether the local alert capability is
	// available at all.
	DesktopNotifications bool
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the feed server address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background producer settings.
type ClientWorkers struct {
	// PollInterval defines how often the poll fallback runs.
	PollInterval time.Duration
	// ReconnectDelay is the fixed push channel reconnection delay.
	ReconnectDelay time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client config view from the merged
// structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps it with
// [NewClientConfig] and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps cfg onto a [ClientConfig], filling every empty field
// with its default. It does not validate.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Name:                 orDefault(cfg.App.Name, DefaultAppName),
			HomePath:             orDefault(cfg.App.HomePath, DefaultHomePath),
			PageLimit:            orDefault(cfg.App.PageLimit, DefaultPageLimit),
			ProximityThreshold:   orDefault(cfg.App.ProximityThreshold, DefaultProximityThreshold),
			DesktopNotifications: !cfg.App.DisableNotifications,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    orDefault(cfg.Adapter.HTTPAddress, DefaultHTTPAddress),
			RequestTimeout: orDefault(cfg.Adapter.RequestTimeout, DefaultRequestTimeout),
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: orDefault(cfg.Storage.DB.DSN, DefaultDSN)},
		},
		Workers: ClientWorkers{
			PollInterval:   orDefault(cfg.Workers.PollInterval, DefaultPollInterval),
			ReconnectDelay: orDefault(cfg.Workers.ReconnectDelay, DefaultReconnectDelay),
		},
	}
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
