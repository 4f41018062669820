package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates a missing HTTP listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN or an unsupported
	// database driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAuthConfigs indicates a missing token issuer.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrNoTokenKeySource indicates that neither a sign key nor a JWKS URL
	// is configured, so no token could ever be verified.
	ErrNoTokenKeySource = errors.New("no token verification key configured")
)
