package adapter

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-retail-api/internal/logger"
	"github.com/MKhiriev/go-retail-api/internal/utils"
)

// jsonWebKey is the subset of RFC 7517 fields needed for RSA verification keys.
type jsonWebKey struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	Alg string `json:"alg"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jsonWebKeySet struct {
	Keys []jsonWebKey `json:"keys"`
}

type jwksAdapter struct {
	client *utils.HTTPClient
	url    string

	logger *logger.Logger
}

// NewJWKSAdapter constructs a [KeySource] reading the key set at jwksURL.
// A URL without a scheme is assumed to be https.
//
// Returns an error if jwksURL is empty or cannot be parsed as a valid URL.
func NewJWKSAdapter(jwksURL string, timeout time.Duration, logger *logger.Logger) (KeySource, error) {
	normalized, err := normalizeURL(jwksURL)
	if err != nil {
		return nil, fmt.Errorf("invalid jwks url: %w", err)
	}

	return &jwksAdapter{
		client: utils.NewHTTPClient(timeout),
		url:    normalized,
		logger: logger,
	}, nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.String(), nil
}

// FetchKeys implements [KeySource].
func (a *jwksAdapter) FetchKeys(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Get(a.url)
	if err != nil {
		a.logger.Err(err).Str("func", "*jwksAdapter.FetchKeys").Str("url", a.url).Msg("error requesting key set")
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if err = keySetStatusError(resp); err != nil {
		a.logger.Err(err).Str("func", "*jwksAdapter.FetchKeys").Str("url", a.url).Msg("key set request was rejected")
		return nil, err
	}

	var set jsonWebKeySet
	if err = json.Unmarshal(resp.Body(), &set); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeySet, err)
	}

	keys := make(map[string]*rsa.PublicKey, len(set.Keys))
	for _, jwk := range set.Keys {
		if jwk.Kty != "RSA" || (jwk.Use != "" && jwk.Use != "sig") {
			continue
		}
		key, err := jwk.rsaPublicKey()
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", jwk.Kid, err)
		}
		keys[jwk.Kid] = key
	}
	if len(keys) == 0 {
		return nil, ErrNoSigningKeys
	}

	a.logger.Info().Str("func", "*jwksAdapter.FetchKeys").Int("keys", len(keys)).Msg("loaded verification keys")
	return keys, nil
}

// rsaPublicKey decodes the base64url modulus and exponent of k.
func (k jsonWebKey) rsaPublicKey() (*rsa.PublicKey, error) {
	n, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil || len(n) == 0 {
		return nil, fmt.Errorf("%w: bad modulus", ErrInvalidKey)
	}
	e, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil || len(e) == 0 || len(e) > 4 {
		return nil, fmt.Errorf("%w: bad exponent", ErrInvalidKey)
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(n),
		E: int(new(big.Int).SetBytes(e).Int64()),
	}, nil
}
