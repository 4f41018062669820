package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-retail-api/internal/adapter"
	"github.com/MKhiriev/go-retail-api/internal/config"
	"github.com/MKhiriev/go-retail-api/internal/logger"
	"github.com/MKhiriev/go-retail-api/internal/utils"
	"github.com/MKhiriev/go-retail-api/models"
)

// authService is the concrete implementation of AuthService.
// It verifies access tokens issued either locally (HS256) or by the identity
// provider (RS256), and mints HS256 tokens for local testing.
type authService struct {
	// keys holds every key a token may be verified with.
	keys utils.KeySet

	// tokenSignKey is the HMAC secret used to sign new tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenAudience is the expected "aud" claim; empty disables the check.
	tokenAudience string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService verifying tokens with keys and
// populated with issuer, audience and lifetime from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction. An empty key set is rejected with ErrNoVerificationKeys.
func NewAuthService(cfg config.Auth, keys utils.KeySet, logger *logger.Logger) (AuthService, error) {
	if keys.Empty() {
		return nil, ErrNoVerificationKeys
	}

	return &authService{
		keys:          keys,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenAudience: cfg.TokenAudience,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}, nil
}

// LoadKeySet gathers the verification keys described by cfg: the HMAC sign
// key when set, and the RSA keys published by source when source is not nil.
func LoadKeySet(ctx context.Context, cfg config.Auth, source adapter.KeySource) (utils.KeySet, error) {
	var keys utils.KeySet
	if cfg.TokenSignKey != "" {
		keys.HMAC = []byte(cfg.TokenSignKey)
	}

	if source != nil {
		rsaKeys, err := source.FetchKeys(ctx)
		if err != nil {
			return utils.KeySet{}, fmt.Errorf("error loading identity provider keys: %w", err)
		}
		keys.RSA = rsaKeys
	}

	if keys.Empty() {
		return utils.KeySet{}, ErrNoVerificationKeys
	}

	return keys, nil
}

// CreateToken issues a signed HS256 JWT for subject carrying permissions.
//
// Returns the token model on success or a wrapped ErrTokenCreationFailed if
// JWT generation fails, including when the deny scope is requested.
func (a *authService) CreateToken(ctx context.Context, subject string, permissions []string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(utils.TokenParams{
		Issuer:      a.tokenIssuer,
		Audience:    a.tokenAudience,
		Subject:     subject,
		Permissions: permissions,
		Duration:    a.tokenDuration,
		SignKey:     a.tokenSignKey,
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// issuer, audience and expiry. An expired token yields ErrTokenIsExpired; any
// other failure is normalised to ErrTokenIsExpiredOrInvalid so that callers
// do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.keys, a.tokenIssuer, a.tokenAudience)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
