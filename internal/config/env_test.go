// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION":      "1.4.0",
		"APP_STAFF_REVIEW": "Solid choice",

		"AUTH_TOKEN_SIGN_KEY": "jwt_secret",
		"AUTH_TOKEN_ISSUER":   "https://id.example.com/",
		"AUTH_TOKEN_AUDIENCE": "retail-api",
		"AUTH_JWKS_URL":       "https://id.example.com/.well-known/jwks.json",
		"AUTH_TOKEN_DURATION": "2h",

		"SERVER_ADDRESS":         "localhost:9000",
		"SERVER_REQUEST_TIMEOUT": "10s",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DRIVER":       "sqlite3",
		"STORAGE_DB_DATABASE_URI": "file:shop.db",
	}
	setEnvVars(t, envVars)

	// Act
	cfg, err := parseEnv()

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "1.4.0", cfg.App.Version)
	assert.Equal(t, "Solid choice", cfg.App.StaffReview)

	assert.Equal(t, "jwt_secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "https://id.example.com/", cfg.Auth.TokenIssuer)
	assert.Equal(t, "retail-api", cfg.Auth.TokenAudience)
	assert.Equal(t, "https://id.example.com/.well-known/jwks.json", cfg.Auth.JWKSURL)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenDuration)

	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "file:shop.db", cfg.Storage.DB.DSN)
}

func TestParseEnv_Defaults(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg, err := parseEnv()

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "", cfg.JSONFilePath)
	assert.Equal(t, App{Version: "dev", StaffReview: "This is a great product!", LogLevel: "debug"}, cfg.App)
	assert.Equal(t, Auth{TokenDuration: time.Hour}, cfg.Auth)
	assert.Equal(t, Server{HTTPAddress: "localhost:8080", RequestTimeout: 30 * time.Second}, cfg.Server)
	assert.Equal(t, Storage{DB: DB{Driver: DriverPostgres}}, cfg.Storage)
}

func TestParseEnv_OnlyStorageDB(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"STORAGE_DB_DATABASE_URI": "postgres://localhost/testdb",
	}
	setEnvVars(t, envVars)

	// Act
	cfg, err := parseEnv()

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/testdb", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Empty(t, cfg.Auth.TokenSignKey)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"AUTH_TOKEN_DURATION": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg, err := parseEnv()

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DriverAliases(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"postgres", DriverPostgres},
		{"PostgreSQL", DriverPostgres},
		{" sqlite ", DriverSQLite},
		{"sqlite3", DriverSQLite},
		{"mysql", "mysql"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			setEnvVars(t, map[string]string{"STORAGE_DB_DRIVER": tt.value})

			cfg, err := parseEnv()

			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Storage.DB.Driver)
		})
	}
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"SERVER_REQUEST_TIMEOUT": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg, err := parseEnv()

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_VERSION",
		"APP_STAFF_REVIEW",

		"AUTH_TOKEN_SIGN_KEY",
		"AUTH_TOKEN_ISSUER",
		"AUTH_TOKEN_AUDIENCE",
		"AUTH_JWKS_URL",
		"AUTH_TOKEN_DURATION",

		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",

		"STORAGE_DB_DRIVER",
		"STORAGE_DB_DATABASE_URI",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
