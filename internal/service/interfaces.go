package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-retail-api/models"
)

type ItemService interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, id int64) (models.Item, error)
	CreateItem(ctx context.Context, item models.ItemUpsert) (models.Item, error)
	UpdateItem(ctx context.Context, id int64, item models.ItemUpsert) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) (models.Item, error)
}

type OrderService interface {
	ListOrders(ctx context.Context, paging models.Paging) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (models.Order, error)
	CreateOrder(ctx context.Context, order models.OrderUpsert) (models.Order, error)
	UpdateOrder(ctx context.Context, id string, order models.OrderUpsert) (models.Order, error)
	DeleteOrder(ctx context.Context, id string) (models.Order, error)
	AddOrderItems(ctx context.Context, orderID string, items []models.NewOrderItem) (models.Order, error)
	RemoveOrderItem(ctx context.Context, orderID, lineID string) (models.Order, error)
}

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id string) (models.Customer, error)
	ListCustomerOrders(ctx context.Context, customerID string) ([]models.Order, error)
	SearchCustomers(ctx context.Context, query string, paging models.Paging) ([]models.Customer, error)
}

type AuthService interface {
	CreateToken(ctx context.Context, subject string, permissions []string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetStaffReview(ctx context.Context) string
}
