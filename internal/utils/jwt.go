package utils

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-retail-api/models"
)

var (
	ErrInvalidTokenParams         = errors.New("invalid params for generating JWT Token")
	ErrDeniedPermission           = errors.New("permission can never be granted")
	ErrNoVerificationKey          = errors.New("no verification key for signing method")
	ErrUnknownKeyID               = errors.New("unknown key id")
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)

// KeySet holds every key an access token may be verified with. HS256 tokens
// are checked against HMAC, RS256 tokens against the RSA key named by the
// token's "kid" header.
type KeySet struct {
	HMAC []byte
	RSA  map[string]*rsa.PublicKey
}

// Empty reports whether the set holds no key at all.
func (k KeySet) Empty() bool {
	return len(k.HMAC) == 0 && len(k.RSA) == 0
}

func (k KeySet) keyFunc(token *jwt.Token) (any, error) {
	switch token.Method.(type) {
	case *jwt.SigningMethodHMAC:
		if len(k.HMAC) == 0 {
			return nil, ErrNoVerificationKey
		}
		return k.HMAC, nil
	case *jwt.SigningMethodRSA:
		if len(k.RSA) == 0 {
			return nil, ErrNoVerificationKey
		}
		kid, _ := token.Header["kid"].(string)
		if key, ok := k.RSA[kid]; ok {
			return key, nil
		}
		// a single published key may be used without a kid
		if kid == "" && len(k.RSA) == 1 {
			for _, key := range k.RSA {
				return key, nil
			}
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownKeyID, kid)
	default:
		return nil, fmt.Errorf("%w: %v", ErrNoVerificationKey, token.Header["alg"])
	}
}

// TokenParams describes an access token to mint with [GenerateJWTToken].
type TokenParams struct {
	Issuer      string
	Audience    string
	Subject     string
	Permissions []string
	Duration    time.Duration
	SignKey     string
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following claims:
//   - Issuer      (iss): identifies the service that issued the token
//   - Audience    (aud): set only when params.Audience is not empty
//   - Subject     (sub): the caller the token is issued for
//   - IssuedAt    (iat): the current time
//   - ExpiresAt   (exp): the current time plus params.Duration
//   - Permissions (permissions): the granted scopes
//
// Issuer, Subject, Duration and SignKey are required. The deny scope
// [models.SecurityDeny] is refused with [ErrDeniedPermission].
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(utils.TokenParams{
//	    Issuer:      "retail-api",
//	    Subject:     "tester",
//	    Permissions: []string{"read:orders"},
//	    Duration:    time.Hour,
//	    SignKey:     "secret",
//	})
func GenerateJWTToken(params TokenParams) (models.Token, error) {
	if params.Issuer == "" || params.Subject == "" || params.Duration <= 0 || params.SignKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}
	if slices.Contains(params.Permissions, models.SecurityDeny.Scope()) {
		return models.Token{}, fmt.Errorf("%w: %s", ErrDeniedPermission, models.SecurityDeny.Scope())
	}

	now := time.Now()
	claims := &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    params.Issuer,
			Subject:   params.Subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(params.Duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Permissions: params.Permissions,
	}
	if params.Audience != "" {
		claims.Audience = jwt.ClaimStrings{params.Audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: *claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification with a key from keys (HS256 or RS256 only)
//   - Issuer (iss) claim check against tokenIssuer
//   - Audience (aud) claim check against tokenAudience, when it is not empty
//   - Expiration (exp) claim presence and check
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, keys, "retail-api", "")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString string, keys KeySet, tokenIssuer, tokenAudience string) (models.Token, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	}
	if tokenAudience != "" {
		options = append(options, jwt.WithAudience(tokenAudience))
	}

	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, keys.keyFunc, options...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return models.Token{Token: token, Claims: *claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" || strings.Contains(token, " ") {
		return "", ErrInvalidAuthorizationHeader
	}
	return token, nil
}
