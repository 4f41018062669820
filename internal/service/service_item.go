package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-retail-api/internal/logger"
	"github.com/MKhiriev/go-retail-api/internal/store"
	"github.com/MKhiriev/go-retail-api/models"
)

type itemService struct {
	itemRepository store.ItemRepository

	logger *logger.Logger
}

func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

func (s *itemService) ListItems(ctx context.Context) ([]models.Item, error) {
	items, err := s.itemRepository.ListItems(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("item listing ended with error")
		return nil, fmt.Errorf("item listing ended with error: %w", err)
	}

	return items, nil
}

func (s *itemService) GetItem(ctx context.Context, id int64) (models.Item, error) {
	item, err := s.itemRepository.GetItem(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("item_id", id).Msg("item lookup ended with error")
		return models.Item{}, fmt.Errorf("item lookup ended with error: %w", err)
	}

	return item, nil
}

func (s *itemService) CreateItem(ctx context.Context, item models.ItemUpsert) (models.Item, error) {
	if item.Name == "" {
		return models.Item{}, ErrInvalidDataProvided
	}

	created, err := s.itemRepository.CreateItem(ctx, item)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("name", item.Name).Msg("item creation ended with error")
		return models.Item{}, fmt.Errorf("item creation ended with error: %w", err)
	}

	return created, nil
}

func (s *itemService) UpdateItem(ctx context.Context, id int64, item models.ItemUpsert) (models.Item, error) {
	if item.Name == "" {
		return models.Item{}, ErrInvalidDataProvided
	}

	updated, err := s.itemRepository.UpdateItem(ctx, id, item)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("item_id", id).Msg("item update ended with error")
		return models.Item{}, fmt.Errorf("item update ended with error: %w", err)
	}

	return updated, nil
}

func (s *itemService) DeleteItem(ctx context.Context, id int64) (models.Item, error) {
	deleted, err := s.itemRepository.DeleteItem(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("item_id", id).Msg("item deletion ended with error")
		return models.Item{}, fmt.Errorf("item deletion ended with error: %w", err)
	}

	return deleted, nil
}
