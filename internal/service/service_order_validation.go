package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-retail-api/models"
)

// OrderServiceWrapper defines middleware composition for OrderService.
// Implementations wrap an existing OrderService to add behavior such as
// logging or validating.
type OrderServiceWrapper interface {
	Wrap(OrderService) OrderService // returns a decorated OrderService applying additional behavior
}

// OrderValidationService checks the invariants of order writes before they
// reach the wrapped OrderService. Reads pass through unchanged.
type OrderValidationService struct {
	inner OrderService
}

func NewOrderValidationService() OrderServiceWrapper {
	return &OrderValidationService{}
}

func (v *OrderValidationService) Wrap(wrapped OrderService) OrderService {
	v.inner = wrapped
	return v
}

func (v *OrderValidationService) ListOrders(ctx context.Context, paging models.Paging) ([]models.Order, error) {
	if paging.Skip < 0 || paging.Take <= 0 {
		return nil, fmt.Errorf("%w: skip=%d take=%d", ErrInvalidDataProvided, paging.Skip, paging.Take)
	}

	return v.inner.ListOrders(ctx, paging)
}

func (v *OrderValidationService) GetOrder(ctx context.Context, id string) (models.Order, error) {
	return v.inner.GetOrder(ctx, id)
}

func (v *OrderValidationService) CreateOrder(ctx context.Context, order models.OrderUpsert) (models.Order, error) {
	if order.CustomerID == "" {
		return models.Order{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoCustomerID)
	}
	if err := validateStatus(order.Status); err != nil {
		return models.Order{}, err
	}

	return v.inner.CreateOrder(ctx, order)
}

func (v *OrderValidationService) UpdateOrder(ctx context.Context, id string, order models.OrderUpsert) (models.Order, error) {
	if err := validateStatus(order.Status); err != nil {
		return models.Order{}, err
	}

	return v.inner.UpdateOrder(ctx, id, order)
}

func (v *OrderValidationService) DeleteOrder(ctx context.Context, id string) (models.Order, error) {
	return v.inner.DeleteOrder(ctx, id)
}

func (v *OrderValidationService) AddOrderItems(ctx context.Context, orderID string, items []models.NewOrderItem) (models.Order, error) {
	if len(items) == 0 {
		return models.Order{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoOrderItems)
	}
	for i, item := range items {
		if item.ItemID <= 0 {
			return models.Order{}, fmt.Errorf("%w: line %d: %w", ErrInvalidDataProvided, i, ErrValidationInvalidItemID)
		}
		if item.Quantity <= 0 {
			return models.Order{}, fmt.Errorf("%w: line %d: %w", ErrInvalidDataProvided, i, ErrValidationInvalidQuantity)
		}
	}

	return v.inner.AddOrderItems(ctx, orderID, items)
}

func (v *OrderValidationService) RemoveOrderItem(ctx context.Context, orderID, lineID string) (models.Order, error) {
	return v.inner.RemoveOrderItem(ctx, orderID, lineID)
}

func validateStatus(status models.OrderStatus) error {
	if !slices.Contains(models.OrderStatuses, status) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidDataProvided, ErrValidationInvalidStatus, status)
	}
	return nil
}
