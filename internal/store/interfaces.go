package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-retail-api/models"
)

// ItemRepository persists the item catalog.
type ItemRepository interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, id int64) (models.Item, error)
	CreateItem(ctx context.Context, item models.ItemUpsert) (models.Item, error)
	UpdateItem(ctx context.Context, id int64, item models.ItemUpsert) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) (models.Item, error)
}

// OrderRepository persists orders together with their lines. Every returned
// order carries its full list of lines.
type OrderRepository interface {
	ListOrders(ctx context.Context, paging models.Paging) ([]models.Order, error)
	ListCustomerOrders(ctx context.Context, customerID string) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (models.Order, error)
	CreateOrder(ctx context.Context, order models.Order) (models.Order, error)
	UpdateOrder(ctx context.Context, id string, order models.OrderUpsert) (models.Order, error)
	DeleteOrder(ctx context.Context, id string) (models.Order, error)
	AddOrderItems(ctx context.Context, orderID string, items []models.OrderItem) (models.Order, error)
	DeleteOrderItem(ctx context.Context, orderID, lineID string) (models.Order, error)
}

// CustomerRepository reads customers. Customers are created out of band.
type CustomerRepository interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id string) (models.Customer, error)
	SearchCustomers(ctx context.Context, query string, paging models.Paging) ([]models.Customer, error)
}
