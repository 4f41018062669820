// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-retail-api/internal/logger"
	"github.com/MKhiriev/go-retail-api/internal/mock"
	"github.com/MKhiriev/go-retail-api/internal/store"
	"github.com/MKhiriev/go-retail-api/models"
)

func newTestCustomerService(t *testing.T) (CustomerService, *mock.MockCustomerRepository, *mock.MockOrderRepository) {
	ctrl := gomock.NewController(t)
	customers := mock.NewMockCustomerRepository(ctrl)
	orders := mock.NewMockOrderRepository(ctrl)
	return NewCustomerService(customers, orders, logger.Nop()), customers, orders
}

func TestCustomerService_ListAndGet(t *testing.T) {
	svc, customers, _ := newTestCustomerService(t)

	customers.EXPECT().ListCustomers(gomock.Any()).Return([]models.Customer{{ID: "c1"}, {ID: "c2"}}, nil)
	customers.EXPECT().GetCustomer(gomock.Any(), "c3").Return(models.Customer{}, store.ErrCustomerNotFound)

	list, err := svc.ListCustomers(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = svc.GetCustomer(context.Background(), "c3")
	assert.ErrorIs(t, err, store.ErrCustomerNotFound)
}

func TestCustomerService_ListCustomerOrders(t *testing.T) {
	svc, _, orders := newTestCustomerService(t)

	orders.EXPECT().ListCustomerOrders(gomock.Any(), "c1").Return([]models.Order{{ID: "o1", CustomerID: "c1"}}, nil)

	got, err := svc.ListCustomerOrders(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "o1", got[0].ID)
}

func TestCustomerService_SearchCustomers(t *testing.T) {
	t.Run("forwards query and paging", func(t *testing.T) {
		svc, customers, _ := newTestCustomerService(t)
		paging := models.Paging{Skip: 2, Take: 3}

		customers.EXPECT().SearchCustomers(gomock.Any(), "ada", paging).Return([]models.Customer{{ID: "c1"}}, nil)

		got, err := svc.SearchCustomers(context.Background(), "ada", paging)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("empty query", func(t *testing.T) {
		svc, _, _ := newTestCustomerService(t)

		_, err := svc.SearchCustomers(context.Background(), "", models.Paging{Take: 1})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}
