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

func newTestItemService(t *testing.T) (ItemService, *mock.MockItemRepository) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)
	return NewItemService(repo, logger.Nop()), repo
}

func TestItemService_ListItems(t *testing.T) {
	svc, repo := newTestItemService(t)
	want := []models.Item{{ID: 1, Name: "Shirt"}}

	repo.EXPECT().ListItems(gomock.Any()).Return(want, nil)

	got, err := svc.ListItems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestItemService_GetItem_NotFoundIsWrapped(t *testing.T) {
	svc, repo := newTestItemService(t)

	repo.EXPECT().GetItem(gomock.Any(), int64(9)).Return(models.Item{}, store.ErrItemNotFound)

	_, err := svc.GetItem(context.Background(), 9)
	assert.ErrorIs(t, err, store.ErrItemNotFound)
}

func TestItemService_CreateItem(t *testing.T) {
	t.Run("delegates to repository", func(t *testing.T) {
		svc, repo := newTestItemService(t)
		upsert := models.ItemUpsert{Name: "Hat"}

		repo.EXPECT().CreateItem(gomock.Any(), upsert).Return(models.Item{ID: 3, Name: "Hat"}, nil)

		item, err := svc.CreateItem(context.Background(), upsert)
		require.NoError(t, err)
		assert.Equal(t, int64(3), item.ID)
	})

	t.Run("empty name never reaches repository", func(t *testing.T) {
		svc, _ := newTestItemService(t)

		_, err := svc.CreateItem(context.Background(), models.ItemUpsert{})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestItemService_UpdateItem(t *testing.T) {
	svc, repo := newTestItemService(t)
	upsert := models.ItemUpsert{Name: "Cap"}

	repo.EXPECT().UpdateItem(gomock.Any(), int64(3), upsert).Return(models.Item{}, store.ErrItemNotFound)

	_, err := svc.UpdateItem(context.Background(), 3, upsert)
	assert.ErrorIs(t, err, store.ErrItemNotFound)
}

func TestItemService_DeleteItem(t *testing.T) {
	svc, repo := newTestItemService(t)

	repo.EXPECT().DeleteItem(gomock.Any(), int64(3)).Return(models.Item{ID: 3, Name: "Cap"}, nil)

	item, err := svc.DeleteItem(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Cap", item.Name)
}
