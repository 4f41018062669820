package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-retail-api/internal/logger"
	"github.com/MKhiriev/go-retail-api/internal/store"
	"github.com/MKhiriev/go-retail-api/models"
)

type customerService struct {
	customerRepository store.CustomerRepository
	orderRepository    store.OrderRepository

	logger *logger.Logger
}

func NewCustomerService(customerRepository store.CustomerRepository, orderRepository store.OrderRepository, logger *logger.Logger) CustomerService {
	return &customerService{
		customerRepository: customerRepository,
		orderRepository:    orderRepository,
		logger:             logger,
	}
}

func (s *customerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.customerRepository.ListCustomers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("customer listing ended with error")
		return nil, fmt.Errorf("customer listing ended with error: %w", err)
	}

	return customers, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id string) (models.Customer, error) {
	customer, err := s.customerRepository.GetCustomer(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("customer_id", id).Msg("customer lookup ended with error")
		return models.Customer{}, fmt.Errorf("customer lookup ended with error: %w", err)
	}

	return customer, nil
}

// ListCustomerOrders returns the orders placed by customerID, which is empty
// for an unknown customer.
func (s *customerService) ListCustomerOrders(ctx context.Context, customerID string) ([]models.Order, error) {
	orders, err := s.orderRepository.ListCustomerOrders(ctx, customerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("customer_id", customerID).Msg("customer order listing ended with error")
		return nil, fmt.Errorf("customer order listing ended with error: %w", err)
	}

	return orders, nil
}

func (s *customerService) SearchCustomers(ctx context.Context, query string, paging models.Paging) ([]models.Customer, error) {
	if query == "" {
		return nil, ErrInvalidDataProvided
	}

	customers, err := s.customerRepository.SearchCustomers(ctx, query, paging)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("query", query).Msg("customer search ended with error")
		return nil, fmt.Errorf("customer search ended with error: %w", err)
	}

	return customers, nil
}
