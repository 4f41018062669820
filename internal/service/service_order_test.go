// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-retail-api/internal/logger"
	"github.com/MKhiriev/go-retail-api/internal/mock"
	"github.com/MKhiriev/go-retail-api/internal/store"
	"github.com/MKhiriev/go-retail-api/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// sequenceIDs returns "id-1", "id-2", ... in call order.
type sequenceIDs struct {
	n int
}

func (s *sequenceIDs) Generate() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

var fixedNow = time.Date(2026, 5, 4, 10, 30, 0, 0, time.FixedZone("UTC+3", 3*60*60))

func newTestOrderService(t *testing.T) (*orderService, *mock.MockOrderRepository) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockOrderRepository(ctrl)

	svc := NewOrderService(repo, &sequenceIDs{}, logger.Nop()).(*orderService)
	svc.now = func() time.Time { return fixedNow }

	return svc, repo
}

// ─────────────────────────────────────────────
// orderService
// ─────────────────────────────────────────────

func TestOrderService_CreateOrder_AssignsIDAndTime(t *testing.T) {
	svc, repo := newTestOrderService(t)

	want := models.Order{
		ID:         "id-1",
		CustomerID: "c1",
		Status:     models.OrderStatusCreated,
		CreatedAt:  fixedNow.UTC(),
	}
	repo.EXPECT().CreateOrder(gomock.Any(), want).Return(want, nil)

	got, err := svc.CreateOrder(context.Background(), models.OrderUpsert{CustomerID: "c1", Status: models.OrderStatusCreated})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, time.UTC, got.CreatedAt.Location())
}

func TestOrderService_CreateOrder_RepositoryError(t *testing.T) {
	svc, repo := newTestOrderService(t)

	repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(models.Order{}, store.ErrReferenceNotFound)

	_, err := svc.CreateOrder(context.Background(), models.OrderUpsert{CustomerID: "ghost", Status: models.OrderStatusCreated})
	assert.ErrorIs(t, err, store.ErrReferenceNotFound)
}

func TestOrderService_AddOrderItems_OneIDPerLine(t *testing.T) {
	svc, repo := newTestOrderService(t)

	wantLines := []models.OrderItem{
		{ID: "id-1", OrderID: "o1", ItemID: 4, Quantity: 2},
		{ID: "id-2", OrderID: "o1", ItemID: 7, Quantity: 1},
	}
	repo.EXPECT().AddOrderItems(gomock.Any(), "o1", wantLines).Return(models.Order{ID: "o1", Items: wantLines}, nil)

	order, err := svc.AddOrderItems(context.Background(), "o1", []models.NewOrderItem{
		{ItemID: 4, Quantity: 2},
		{ItemID: 7, Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, wantLines, order.Items)
}

func TestOrderService_UpdateOrder_PassesEmptyCustomer(t *testing.T) {
	svc, repo := newTestOrderService(t)
	upsert := models.OrderUpsert{Status: models.OrderStatusShipped}

	repo.EXPECT().UpdateOrder(gomock.Any(), "o1", upsert).Return(models.Order{ID: "o1", CustomerID: "c1", Status: models.OrderStatusShipped}, nil)

	order, err := svc.UpdateOrder(context.Background(), "o1", upsert)
	require.NoError(t, err)
	assert.Equal(t, "c1", order.CustomerID)
}

func TestOrderService_Reads(t *testing.T) {
	svc, repo := newTestOrderService(t)
	paging := models.Paging{Skip: 0, Take: 10}

	repo.EXPECT().ListOrders(gomock.Any(), paging).Return([]models.Order{{ID: "o1"}}, nil)
	repo.EXPECT().GetOrder(gomock.Any(), "o2").Return(models.Order{}, store.ErrOrderNotFound)

	orders, err := svc.ListOrders(context.Background(), paging)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	_, err = svc.GetOrder(context.Background(), "o2")
	assert.ErrorIs(t, err, store.ErrOrderNotFound)
}

func TestOrderService_Deletes(t *testing.T) {
	svc, repo := newTestOrderService(t)

	repo.EXPECT().DeleteOrder(gomock.Any(), "o1").Return(models.Order{ID: "o1"}, nil)
	repo.EXPECT().DeleteOrderItem(gomock.Any(), "o1", "l1").Return(models.Order{}, store.ErrOrderItemNotFound)

	order, err := svc.DeleteOrder(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)

	_, err = svc.RemoveOrderItem(context.Background(), "o1", "l1")
	assert.ErrorIs(t, err, store.ErrOrderItemNotFound)
}

// ─────────────────────────────────────────────
// OrderValidationService
// ─────────────────────────────────────────────

func TestOrderValidationService_RejectsBeforeInner(t *testing.T) {
	ctrl := gomock.NewController(t)
	// no expectations: any call on inner fails the test
	inner := mock.NewMockOrderService(ctrl)
	svc := NewOrderValidationService().Wrap(inner)
	ctx := context.Background()

	tests := []struct {
		name    string
		call    func() error
		wantErr error
	}{
		{
			name: "create without customer",
			call: func() error {
				_, err := svc.CreateOrder(ctx, models.OrderUpsert{Status: models.OrderStatusCreated})
				return err
			},
			wantErr: ErrValidationNoCustomerID,
		},
		{
			name: "create with unknown status",
			call: func() error {
				_, err := svc.CreateOrder(ctx, models.OrderUpsert{CustomerID: "c1", Status: "Lost"})
				return err
			},
			wantErr: ErrValidationInvalidStatus,
		},
		{
			name: "update with unknown status",
			call: func() error {
				_, err := svc.UpdateOrder(ctx, "o1", models.OrderUpsert{Status: ""})
				return err
			},
			wantErr: ErrValidationInvalidStatus,
		},
		{
			name: "add no items",
			call: func() error {
				_, err := svc.AddOrderItems(ctx, "o1", nil)
				return err
			},
			wantErr: ErrValidationNoOrderItems,
		},
		{
			name: "add zero quantity",
			call: func() error {
				_, err := svc.AddOrderItems(ctx, "o1", []models.NewOrderItem{{ItemID: 1, Quantity: 0}})
				return err
			},
			wantErr: ErrValidationInvalidQuantity,
		},
		{
			name: "add unknown item id",
			call: func() error {
				_, err := svc.AddOrderItems(ctx, "o1", []models.NewOrderItem{{ItemID: 0, Quantity: 1}})
				return err
			},
			wantErr: ErrValidationInvalidItemID,
		},
		{
			name: "list with zero take",
			call: func() error {
				_, err := svc.ListOrders(ctx, models.Paging{Skip: 0, Take: 0})
				return err
			},
			wantErr: ErrInvalidDataProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestOrderValidationService_PassesValidCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockOrderService(ctrl)
	svc := NewOrderValidationService().Wrap(inner)
	ctx := context.Background()

	create := models.OrderUpsert{CustomerID: "c1", Status: models.OrderStatusCreated}
	items := []models.NewOrderItem{{ItemID: 1, Quantity: 3}}

	inner.EXPECT().CreateOrder(ctx, create).Return(models.Order{ID: "o1"}, nil)
	inner.EXPECT().AddOrderItems(ctx, "o1", items).Return(models.Order{ID: "o1"}, nil)
	inner.EXPECT().GetOrder(ctx, "o1").Return(models.Order{ID: "o1"}, nil)
	inner.EXPECT().DeleteOrder(ctx, "o1").Return(models.Order{ID: "o1"}, nil)
	inner.EXPECT().RemoveOrderItem(ctx, "o1", "l1").Return(models.Order{ID: "o1"}, nil)

	_, err := svc.CreateOrder(ctx, create)
	require.NoError(t, err)
	_, err = svc.AddOrderItems(ctx, "o1", items)
	require.NoError(t, err)
	_, err = svc.GetOrder(ctx, "o1")
	require.NoError(t, err)
	_, err = svc.DeleteOrder(ctx, "o1")
	require.NoError(t, err)
	_, err = svc.RemoveOrderItem(ctx, "o1", "l1")
	require.NoError(t, err)
}
