// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP client
// initialization, JWT token generation and validation, and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-retail-api/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key under which the verified token claims of the
// caller are stored in the request context.
var ClaimsCtxKey = contextKey("claims")

// WithClaims returns a copy of ctx carrying claims.
func WithClaims(ctx context.Context, claims *models.Claims) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey, claims)
}

// GetClaimsFromContext retrieves the verified claims stored by [WithClaims].
//
// Returns ok == false when no claims are stored or the stored value is nil.
//
// Example usage:
//
//	claims, ok := utils.GetClaimsFromContext(ctx)
//	if !ok {
//	    // request was not authenticated
//	}
func GetClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(*models.Claims)
	return claims, ok && claims != nil
}
