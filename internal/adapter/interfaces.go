// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to services outside the API process.
//
// The only outbound dependency is the identity provider that signs access
// tokens with RS256. [KeySource] fetches its published JSON Web Key Set so
// that the auth service can verify those tokens locally. Transport failures
// are mapped by mapHTTPError to the sentinels in errors.go so callers can
// match them with [errors.Is].
package adapter

import (
	"context"
	"crypto/rsa"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// KeySource supplies the RSA verification keys of the identity provider,
// indexed by key id.
type KeySource interface {
	// FetchKeys downloads the key set and returns every RSA signing key in
	// it. Keys of other types or uses are skipped. An empty result is
	// reported as [ErrNoSigningKeys].
	FetchKeys(ctx context.Context) (map[string]*rsa.PublicKey, error)
}
