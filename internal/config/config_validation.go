// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks the merged [StructuredConfig]. Source-level problems are
// reported by the individual parsers, so only cross-field rules live here.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.Password != "" && cfg.Auth.Name == "" {
		return ErrInvalidAuthConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if !validBackendAddress(cfg.Adapter.HTTPAddress) || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RenewInterval <= 0 || cfg.Workers.PollInterval <= 0 || cfg.Workers.RecentPageSize <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Auth.Name != "" && cfg.Auth.Password == "" {
		return ErrInvalidAuthConfigs
	}

	return nil
}

func validBackendAddress(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
