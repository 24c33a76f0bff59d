// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is projected.
//
// Currently a no-op placeholder: empty fields are legal here because
// [NewClientConfig] fills them with defaults.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.PollInterval <= 0 || cfg.Workers.ReconnectDelay <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.Name == "" || !strings.HasPrefix(cfg.App.HomePath, "/") ||
		cfg.App.PageLimit <= 0 || cfg.App.ProximityThreshold < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
