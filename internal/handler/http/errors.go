// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authorization middlewares. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the incoming request does
	// not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoClaimsInContext is returned by the scope check when no verified
	// token was stored in the request context.
	ErrNoClaimsInContext = errors.New("no token claims in request context")

	// ErrInsufficientScope is returned when the token does not carry the
	// permission a route requires.
	ErrInsufficientScope = errors.New("insufficient scope")
)

// Messages sent to clients. Internal error text never leaves the process.
const (
	msgNotFound            = "Not Found"
	msgUnauthorized        = "Unauthorized"
	msgInsufficientScope   = "Insufficient scope"
	msgValidationFailed    = "Validation failed"
	msgInternalServerError = "Internal Server Error"

	msgItemNotFound        = "Item Not Found"
	msgOrderNotFound       = "Order Not Found"
	msgOrderOrItemNotFound = "Order or item not found"
	msgCustomerNotFound    = "Customer not found"
	msgCreationFailed      = "Creation failed"
)
