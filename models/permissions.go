// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Permission is a scope string that may be carried in the "permissions"
// claim of an access token. Each domain area declares its own closed set of
// values as a distinct type so that a route cannot be gated by a free-form
// string.
type Permission interface {
	Scope() string
}

// OrdersPermission enumerates scopes for the orders area.
type OrdersPermission string

const (
	OrdersRead       OrdersPermission = "read:orders"
	OrdersWrite      OrdersPermission = "write:orders"
	OrdersReadSingle OrdersPermission = "read:orders-single"
	OrdersCreate     OrdersPermission = "create:orders"
)

// Scope implements [Permission].
func (p OrdersPermission) Scope() string { return string(p) }

// ItemsPermission enumerates scopes for the items area.
type ItemsPermission string

const (
	ItemsWrite  ItemsPermission = "write:items"
	ItemsCreate ItemsPermission = "create:items"
)

// Scope implements [Permission].
func (p ItemsPermission) Scope() string { return string(p) }

// CustomersPermission enumerates scopes for the customers area.
type CustomersPermission string

const (
	CustomersRead       CustomersPermission = "read:customers"
	CustomersReadSingle CustomersPermission = "read:customers-single"
	CustomersWrite      CustomersPermission = "write:customers"
	CustomersCreate     CustomersPermission = "create:customers"
)

// Scope implements [Permission].
func (p CustomersPermission) Scope() string { return string(p) }

// SecurityPermission holds scopes that are part of the security model itself.
type SecurityPermission string

// SecurityDeny is never assigned to any caller. Gating a route with it
// disables the route without removing its code.
const SecurityDeny SecurityPermission = "deny:not-assigned"

// Scope implements [Permission].
func (p SecurityPermission) Scope() string { return string(p) }
