package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-retail-api/internal/logger"
	"github.com/MKhiriev/go-retail-api/internal/store"
	"github.com/MKhiriev/go-retail-api/models"
)

// idGenerator issues identifiers for new orders and order lines.
type idGenerator interface {
	Generate() string
}

// orderService assigns identifiers and creation times and delegates
// persistence to an OrderRepository.
type orderService struct {
	orderRepository store.OrderRepository
	ids             idGenerator
	now             func() time.Time

	logger *logger.Logger
}

func NewOrderService(orderRepository store.OrderRepository, ids idGenerator, logger *logger.Logger) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		ids:             ids,
		now:             time.Now,
		logger:          logger,
	}
}

func (s *orderService) ListOrders(ctx context.Context, paging models.Paging) ([]models.Order, error) {
	orders, err := s.orderRepository.ListOrders(ctx, paging)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("skip", paging.Skip).Int64("take", paging.Take).Msg("order listing ended with error")
		return nil, fmt.Errorf("order listing ended with error: %w", err)
	}

	return orders, nil
}

func (s *orderService) GetOrder(ctx context.Context, id string) (models.Order, error) {
	order, err := s.orderRepository.GetOrder(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("order_id", id).Msg("order lookup ended with error")
		return models.Order{}, fmt.Errorf("order lookup ended with error: %w", err)
	}

	return order, nil
}

// CreateOrder stores a new order without lines. The id is a fresh UUID and
// the creation time is the current UTC time.
func (s *orderService) CreateOrder(ctx context.Context, order models.OrderUpsert) (models.Order, error) {
	created, err := s.orderRepository.CreateOrder(ctx, models.Order{
		ID:         s.ids.Generate(),
		CustomerID: order.CustomerID,
		Status:     order.Status,
		CreatedAt:  s.now().UTC(),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("customer_id", order.CustomerID).Msg("order creation ended with error")
		return models.Order{}, fmt.Errorf("order creation ended with error: %w", err)
	}

	return created, nil
}

// UpdateOrder changes the status of an order. An empty order.CustomerID keeps
// the stored customer.
func (s *orderService) UpdateOrder(ctx context.Context, id string, order models.OrderUpsert) (models.Order, error) {
	updated, err := s.orderRepository.UpdateOrder(ctx, id, order)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("order_id", id).Msg("order update ended with error")
		return models.Order{}, fmt.Errorf("order update ended with error: %w", err)
	}

	return updated, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id string) (models.Order, error) {
	deleted, err := s.orderRepository.DeleteOrder(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("order_id", id).Msg("order deletion ended with error")
		return models.Order{}, fmt.Errorf("order deletion ended with error: %w", err)
	}

	return deleted, nil
}

// AddOrderItems appends one line per element of items, each with its own id.
func (s *orderService) AddOrderItems(ctx context.Context, orderID string, items []models.NewOrderItem) (models.Order, error) {
	lines := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, models.OrderItem{
			ID:       s.ids.Generate(),
			OrderID:  orderID,
			ItemID:   item.ItemID,
			Quantity: item.Quantity,
		})
	}

	order, err := s.orderRepository.AddOrderItems(ctx, orderID, lines)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("order_id", orderID).Int("lines", len(lines)).Msg("adding order items ended with error")
		return models.Order{}, fmt.Errorf("adding order items ended with error: %w", err)
	}

	return order, nil
}

func (s *orderService) RemoveOrderItem(ctx context.Context, orderID, lineID string) (models.Order, error) {
	order, err := s.orderRepository.DeleteOrderItem(ctx, orderID, lineID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("order_id", orderID).Str("line_id", lineID).Msg("removing order item ended with error")
		return models.Order{}, fmt.Errorf("removing order item ended with error: %w", err)
	}

	return order, nil
}
