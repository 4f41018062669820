package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrNoVerificationKeys      = errors.New("no token verification keys configured")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrValidationNoCustomerID    = errors.New("no customer ID for order was given")
	ErrValidationInvalidStatus   = errors.New("unknown order status")
	ErrValidationNoOrderItems    = errors.New("no order items provided")
	ErrValidationInvalidQuantity = errors.New("order item quantity must be positive")
	ErrValidationInvalidItemID   = errors.New("order item must reference a catalog item")
)
