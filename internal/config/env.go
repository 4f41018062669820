// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// driverAliases maps the names operators commonly put in STORAGE_DB_DRIVER
// to the database/sql driver names the store registers.
var driverAliases = map[string]string{
	"postgres":   DriverPostgres,
	"postgresql": DriverPostgres,
	"sqlite":     DriverSQLite,
}

// parseEnv reads a [StructuredConfig] from environment variables via the
// `env` and `envPrefix` tags and resolves driver aliases.
//
// Returns a wrapped error if a value cannot be converted to its field type.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.Storage.DB.Driver = resolveDriver(cfg.Storage.DB.Driver)

	return &cfg, nil
}

func resolveDriver(name string) string {
	driver := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := driverAliases[driver]; ok {
		return alias
	}
	return driver
}
