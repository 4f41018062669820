package adapter

import "errors"

// Failures reported by the identity provider while serving the key set.
var (
	ErrKeySetNotFound      = errors.New("key set not found at the configured url")
	ErrKeySetDenied        = errors.New("identity provider refused the key set request")
	ErrProviderUnavailable = errors.New("identity provider unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected response status")
)

var (
	ErrEmptyAddress  = errors.New("empty address")
	ErrInvalidKeySet = errors.New("invalid JSON web key set")
	ErrInvalidKey    = errors.New("invalid JSON web key")
	ErrNoSigningKeys = errors.New("key set holds no RSA signing keys")
	ErrRequestFailed = errors.New("key set request failed")
)
