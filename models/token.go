package models

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of an access token accepted by the API.
//
// Besides the registered claims it carries the list of granted permission
// scopes under the "permissions" key.
type Claims struct {
	jwt.RegisteredClaims

	// Permissions is the ordered list of scopes granted to the caller.
	Permissions []string `json:"permissions,omitempty"`
}

// HasPermission reports whether scope is one of the granted permissions.
func (c *Claims) HasPermission(scope string) bool {
	if c == nil {
		return false
	}
	return slices.Contains(c.Permissions, scope)
}

// Token wraps a verified or freshly signed JWT.
//
// It embeds [jwt.Token] for low-level token operations and keeps the decoded
// [Claims] next to it, so that middleware can inspect permissions without
// type assertions.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims is the decoded payload.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
