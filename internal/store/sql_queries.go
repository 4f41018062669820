// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-retail-api/models"
)

var (
	itemColumns      = []string{"id", "name", "description"}
	orderColumns     = []string{"id", "customer_id", "status", "created_at"}
	orderItemColumns = []string{"id", "order_id", "item_id", "quantity"}
	customerColumns  = []string{"id", "name", "email", "address", "created_at"}
)

// ── items ──

func buildListItemsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(itemColumns...).
		From("items").
		OrderBy("id").
		ToSql()
}

func buildGetItemQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(itemColumns...).
		From("items").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertItemQuery(b sq.StatementBuilderType, item models.ItemUpsert) (string, []any, error) {
	return b.Insert("items").
		Columns("name", "description").
		Values(item.Name, item.Description).
		Suffix("RETURNING " + strings.Join(itemColumns, ", ")).
		ToSql()
}

func buildUpdateItemQuery(b sq.StatementBuilderType, id int64, item models.ItemUpsert) (string, []any, error) {
	return b.Update("items").
		Set("name", item.Name).
		Set("description", item.Description).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(itemColumns, ", ")).
		ToSql()
}

func buildDeleteItemQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete("items").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(itemColumns, ", ")).
		ToSql()
}

// ── orders ──

func buildListOrdersQuery(b sq.StatementBuilderType, paging models.Paging) (string, []any, error) {
	return b.Select(orderColumns...).
		From("orders").
		OrderBy("created_at", "id").
		Limit(uint64(paging.Take)).
		Offset(uint64(paging.Skip)).
		ToSql()
}

func buildListCustomerOrdersQuery(b sq.StatementBuilderType, customerID string) (string, []any, error) {
	return b.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"customer_id": customerID}).
		OrderBy("created_at", "id").
		ToSql()
}

func buildGetOrderQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertOrderQuery(b sq.StatementBuilderType, order models.Order) (string, []any, error) {
	return b.Insert("orders").
		Columns(orderColumns...).
		Values(order.ID, order.CustomerID, string(order.Status), order.CreatedAt).
		ToSql()
}

// buildUpdateOrderQuery keeps the stored customer when order.CustomerID is empty.
func buildUpdateOrderQuery(b sq.StatementBuilderType, id string, order models.OrderUpsert) (string, []any, error) {
	update := b.Update("orders").Set("status", string(order.Status))
	if order.CustomerID != "" {
		update = update.Set("customer_id", order.CustomerID)
	}

	return update.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(orderColumns, ", ")).
		ToSql()
}

func buildDeleteOrderQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete("orders").
		Where(sq.Eq{"id": id}).
		ToSql()
}

// ── order items ──

func buildListOrderItemsQuery(b sq.StatementBuilderType, orderIDs []string) (string, []any, error) {
	return b.Select(orderItemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "id").
		ToSql()
}

func buildInsertOrderItemsQuery(b sq.StatementBuilderType, items []models.OrderItem) (string, []any, error) {
	insert := b.Insert("order_items").Columns(orderItemColumns...)
	for _, item := range items {
		insert = insert.Values(item.ID, item.OrderID, item.ItemID, item.Quantity)
	}

	return insert.ToSql()
}

func buildDeleteOrderItemsQuery(b sq.StatementBuilderType, orderID string) (string, []any, error) {
	return b.Delete("order_items").
		Where(sq.Eq{"order_id": orderID}).
		ToSql()
}

func buildDeleteOrderItemQuery(b sq.StatementBuilderType, orderID, lineID string) (string, []any, error) {
	return b.Delete("order_items").
		Where(sq.Eq{"order_id": orderID, "id": lineID}).
		ToSql()
}

// ── customers ──

func buildListCustomersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(customerColumns...).
		From("customers").
		OrderBy("name", "id").
		ToSql()
}

func buildGetCustomerQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(customerColumns...).
		From("customers").
		Where(sq.Eq{"id": id}).
		ToSql()
}

// likeEscaper makes LIKE wildcards in user input match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// buildSearchCustomersQuery matches query case-insensitively against name and email.
func buildSearchCustomersQuery(b sq.StatementBuilderType, query string, paging models.Paging) (string, []any, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"

	return b.Select(customerColumns...).
		From("customers").
		Where(sq.Or{
			sq.Expr(`LOWER(name) LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`LOWER(email) LIKE ? ESCAPE '\'`, pattern),
		}).
		OrderBy("name", "id").
		Limit(uint64(paging.Take)).
		Offset(uint64(paging.Skip)).
		ToSql()
}
