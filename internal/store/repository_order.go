package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-retail-api/internal/logger"
	"github.com/MKhiriev/go-retail-api/models"
)

// orderRepository is the SQL implementation of [OrderRepository] over the
// "orders" and "order_items" tables.
//
// Multi-statement operations run in one transaction and read the order back
// through the same transaction, so the returned order always reflects the
// committed state.
type orderRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

// ListOrders returns one page of orders, oldest first.
func (r *orderRepository) ListOrders(ctx context.Context, paging models.Paging) ([]models.Order, error) {
	query, args, err := buildListOrdersQuery(r.db.builder, paging)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*orderRepository.ListOrders").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOrders(ctx, r.db, "*orderRepository.ListOrders", query, args)
}

// ListCustomerOrders returns every order of customerID. An unknown customer
// has no orders.
func (r *orderRepository) ListCustomerOrders(ctx context.Context, customerID string) ([]models.Order, error) {
	query, args, err := buildListCustomerOrdersQuery(r.db.builder, customerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*orderRepository.ListCustomerOrders").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOrders(ctx, r.db, "*orderRepository.ListCustomerOrders", query, args)
}

func (r *orderRepository) GetOrder(ctx context.Context, id string) (models.Order, error) {
	return r.getOrder(ctx, r.db, "*orderRepository.GetOrder", id)
}

// CreateOrder inserts an order without lines. The id and creation time are
// expected to be set by the caller.
func (r *orderRepository) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertOrderQuery(r.db.builder, order)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error building query")
		return models.Order{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error inserting order")
		return models.Order{}, classifyWriteError(err, ErrExecutingStatement)
	}

	order.Items = make([]models.OrderItem, 0)
	return order, nil
}

// UpdateOrder sets the status of order id and, when order.CustomerID is not
// empty, its customer.
func (r *orderRepository) UpdateOrder(ctx context.Context, id string, order models.OrderUpsert) (models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateOrderQuery(r.db.builder, id, order)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.UpdateOrder").Msg("error building query")
		return models.Order{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanOrder(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "*orderRepository.UpdateOrder").Str("order_id", id).Msg("order was not found")
		return models.Order{}, ErrOrderNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.UpdateOrder").Msg("error updating order")
		return models.Order{}, classifyWriteError(err, ErrExecutingStatement)
	}

	orders := []models.Order{updated}
	if err = r.attachItems(ctx, r.db, "*orderRepository.UpdateOrder", orders); err != nil {
		return models.Order{}, err
	}

	return orders[0], nil
}

// DeleteOrder removes order id with all of its lines and returns the order as
// it was before deletion.
func (r *orderRepository) DeleteOrder(ctx context.Context, id string) (models.Order, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.DeleteOrder").Msg("error beginning transaction")
		return models.Order{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	order, err := r.getOrder(ctx, tx, "*orderRepository.DeleteOrder", id)
	if err != nil {
		return models.Order{}, err
	}

	deleteItems, itemArgs, err := buildDeleteOrderItemsQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.DeleteOrder").Msg("error building query")
		return models.Order{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, deleteItems, itemArgs...); err != nil {
		log.Err(err).Str("func", "*orderRepository.DeleteOrder").Msg("error deleting order items")
		return models.Order{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleteOrder, orderArgs, err := buildDeleteOrderQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.DeleteOrder").Msg("error building query")
		return models.Order{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, deleteOrder, orderArgs...); err != nil {
		log.Err(err).Str("func", "*orderRepository.DeleteOrder").Msg("error deleting order")
		return models.Order{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*orderRepository.DeleteOrder").Msg("error committing transaction")
		return models.Order{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return order, nil
}

// AddOrderItems appends items to order orderID and returns the updated order.
// Unknown catalog items fail the whole batch with [ErrReferenceNotFound].
func (r *orderRepository) AddOrderItems(ctx context.Context, orderID string, items []models.OrderItem) (models.Order, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.AddOrderItems").Msg("error beginning transaction")
		return models.Order{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = r.getOrder(ctx, tx, "*orderRepository.AddOrderItems", orderID); err != nil {
		return models.Order{}, err
	}

	query, args, err := buildInsertOrderItemsQuery(r.db.builder, items)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.AddOrderItems").Msg("error building query")
		return models.Order{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*orderRepository.AddOrderItems").Msg("error inserting order items")
		return models.Order{}, classifyWriteError(err, ErrExecutingStatement)
	}

	order, err := r.getOrder(ctx, tx, "*orderRepository.AddOrderItems", orderID)
	if err != nil {
		return models.Order{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*orderRepository.AddOrderItems").Msg("error committing transaction")
		return models.Order{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return order, nil
}

// DeleteOrderItem removes line lineID from order orderID and returns the order
// after removal. A missing order and a missing line both yield
// [ErrOrderItemNotFound].
func (r *orderRepository) DeleteOrderItem(ctx context.Context, orderID, lineID string) (models.Order, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.DeleteOrderItem").Msg("error beginning transaction")
		return models.Order{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildDeleteOrderItemQuery(r.db.builder, orderID, lineID)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.DeleteOrderItem").Msg("error building query")
		return models.Order{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.DeleteOrderItem").Msg("error deleting order item")
		return models.Order{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.DeleteOrderItem").Msg("error reading affected rows")
		return models.Order{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Order{}, ErrOrderItemNotFound
	}

	order, err := r.getOrder(ctx, tx, "*orderRepository.DeleteOrderItem", orderID)
	if err != nil {
		return models.Order{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*orderRepository.DeleteOrderItem").Msg("error committing transaction")
		return models.Order{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return order, nil
}

func (r *orderRepository) getOrder(ctx context.Context, q querier, funcName, id string) (models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetOrderQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return models.Order{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	order, err := scanOrder(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", funcName).Str("order_id", id).Msg("order was not found")
		return models.Order{}, ErrOrderNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error scanning order")
		return models.Order{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	orders := []models.Order{order}
	if err = r.attachItems(ctx, q, funcName, orders); err != nil {
		return models.Order{}, err
	}

	return orders[0], nil
}

func (r *orderRepository) queryOrders(ctx context.Context, q querier, funcName, query string, args []any) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	orders, err := collectRows(rows, scanOrder)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error scanning orders")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if err = r.attachItems(ctx, q, funcName, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachItems loads the lines of all orders with a single query.
func (r *orderRepository) attachItems(ctx context.Context, q querier, funcName string, orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	ids := make([]string, 0, len(orders))
	for _, order := range orders {
		ids = append(ids, order.ID)
	}

	query, args, err := buildListOrderItemsQuery(r.db.builder, ids)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building order items query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error querying order items")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	items, err := collectRows(rows, scanOrderItem)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error scanning order items")
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	byOrder := make(map[string][]models.OrderItem, len(orders))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}
	for i := range orders {
		orders[i].Items = byOrder[orders[i].ID]
		if orders[i].Items == nil {
			orders[i].Items = make([]models.OrderItem, 0)
		}
	}

	return nil
}

// collectRows scans and closes rows. The result set is released before the
// caller issues another query, which a single-connection pool requires.
func collectRows[T any](rows *sql.Rows, scan func(scanner) (T, error)) ([]T, error) {
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}

	return result, rows.Err()
}

func scanOrder(s scanner) (models.Order, error) {
	var (
		order  models.Order
		status string
	)
	if err := s.Scan(&order.ID, &order.CustomerID, &status, &order.CreatedAt); err != nil {
		return models.Order{}, err
	}
	order.Status = models.OrderStatus(status)

	return order, nil
}

func scanOrderItem(s scanner) (models.OrderItem, error) {
	var item models.OrderItem
	err := s.Scan(&item.ID, &item.OrderID, &item.ItemID, &item.Quantity)

	return item, err
}
