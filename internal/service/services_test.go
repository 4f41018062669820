package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-retail-api/internal/config"
	"github.com/MKhiriev/go-retail-api/internal/logger"
	"github.com/MKhiriev/go-retail-api/internal/mock"
	"github.com/MKhiriev/go-retail-api/internal/store"
	"github.com/MKhiriev/go-retail-api/internal/utils"
)

func testRepositories(t *testing.T) *store.Repositories {
	ctrl := gomock.NewController(t)
	return &store.Repositories{
		ItemRepository:     mock.NewMockItemRepository(ctrl),
		OrderRepository:    mock.NewMockOrderRepository(ctrl),
		CustomerRepository: mock.NewMockCustomerRepository(ctrl),
	}
}

func TestNewServices_Success(t *testing.T) {
	cfg := config.StructuredConfig{
		App:  config.App{Version: "1.0.0"},
		Auth: testAuthConfig(),
	}

	services, err := NewServices(testRepositories(t), utils.KeySet{HMAC: []byte("k")}, cfg, logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, services.ItemService)
	assert.NotNil(t, services.CustomerService)
	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.AppInfoService)
	assert.IsType(t, &OrderValidationService{}, services.OrderService)
}

func TestNewServices_Errors(t *testing.T) {
	t.Run("no keys", func(t *testing.T) {
		cfg := config.StructuredConfig{App: config.App{Version: "1.0.0"}, Auth: testAuthConfig()}

		_, err := NewServices(testRepositories(t), utils.KeySet{}, cfg, logger.Nop())
		assert.ErrorIs(t, err, ErrNoVerificationKeys)
	})

	t.Run("no version", func(t *testing.T) {
		cfg := config.StructuredConfig{Auth: testAuthConfig()}

		_, err := NewServices(testRepositories(t), utils.KeySet{HMAC: []byte("k")}, cfg, logger.Nop())
		assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
	})
}
