package service

import (
	"fmt"

	"github.com/MKhiriev/go-retail-api/internal/config"
	"github.com/MKhiriev/go-retail-api/internal/logger"
	"github.com/MKhiriev/go-retail-api/internal/store"
	"github.com/MKhiriev/go-retail-api/internal/utils"
)

type Services struct {
	ItemService     ItemService
	OrderService    OrderService
	CustomerService CustomerService
	AuthService     AuthService
	AppInfoService  AppInfoService
}

func NewServices(repositories *store.Repositories, keys utils.KeySet, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(cfg.Auth, keys, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	orderService := NewOrderValidationService().
		Wrap(NewOrderService(repositories.OrderRepository, utils.NewUUIDGenerator(), logger))

	return &Services{
		ItemService:     NewItemService(repositories.ItemRepository, logger),
		OrderService:    orderService,
		CustomerService: NewCustomerService(repositories.CustomerRepository, repositories.OrderRepository, logger),
		AuthService:     authService,
		AppInfoService:  appInfoService,
	}, nil
}
