// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// legacySignKeyEnv is the variable the chat backend itself reads its token
// key from. It is honoured when APP_TOKEN_SIGN_KEY is not set, so client and
// backend can share one environment.
const legacySignKeyEnv = "JWT_SECRET"

// parseEnv populates cfg from environment variables. Struct fields are mapped
// via their `env` and `envPrefix` tags. Fields that failed to parse are
// listed by name in the returned error.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs%s: %w", failedFields(err), err)
	}

	if cfg.App.TokenSignKey == "" {
		if key, ok := os.LookupEnv(legacySignKeyEnv); ok {
			cfg.App.TokenSignKey = strings.TrimSpace(key)
		}
	}

	return nil
}

func failedFields(err error) string {
	var agg env.AggregateError
	if !errors.As(err, &agg) {
		return ""
	}

	var names []string
	for _, e := range agg.Errors {
		var parseErr env.ParseError
		if errors.As(e, &parseErr) {
			names = append(names, parseErr.Name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	return " (" + strings.Join(names, ", ") + ")"
}
