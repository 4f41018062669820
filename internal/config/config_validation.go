// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "slices"

var supportedDrivers = []string{DriverPostgres, DriverSQLite}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants required at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" || !slices.Contains(supportedDrivers, cfg.Storage.DB.Driver) {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.TokenIssuer == "" {
		return ErrInvalidAuthConfigs
	}
	if cfg.Auth.TokenSignKey == "" && cfg.Auth.JWKSURL == "" {
		return ErrNoTokenKeySource
	}

	return nil
}

// validateTokenIssuing checks the subset of settings needed to sign tokens.
func (cfg *StructuredConfig) validateTokenIssuing() error {
	if cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenDuration <= 0 {
		return ErrInvalidAuthConfigs
	}
	if cfg.Auth.TokenSignKey == "" {
		return ErrNoTokenKeySource
	}
	return nil
}
