package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-retail-api/internal/logger"
	"github.com/MKhiriev/go-retail-api/models"
)

// itemRepository is the SQL implementation of [ItemRepository] over the
// "items" table.
type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// ListItems returns the whole catalog ordered by id.
func (r *itemRepository) ListItems(ctx context.Context) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListItemsQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	items, err := collectRows(rows, scanItem)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error scanning rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (r *itemRepository) GetItem(ctx context.Context, id int64) (models.Item, error) {
	query, args, err := buildGetItemQuery(r.db.builder, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*itemRepository.GetItem").Msg("error building query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryItem(ctx, "*itemRepository.GetItem", query, args, ErrExecutingQuery)
}

// CreateItem inserts item and returns it with the database-assigned id.
func (r *itemRepository) CreateItem(ctx context.Context, item models.ItemUpsert) (models.Item, error) {
	query, args, err := buildInsertItemQuery(r.db.builder, item)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*itemRepository.CreateItem").Msg("error building query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryItem(ctx, "*itemRepository.CreateItem", query, args, ErrExecutingStatement)
}

// UpdateItem replaces name and description of item id. It returns
// [ErrItemNotFound] when no such item exists.
func (r *itemRepository) UpdateItem(ctx context.Context, id int64, item models.ItemUpsert) (models.Item, error) {
	query, args, err := buildUpdateItemQuery(r.db.builder, id, item)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*itemRepository.UpdateItem").Msg("error building query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryItem(ctx, "*itemRepository.UpdateItem", query, args, ErrExecutingStatement)
}

// DeleteItem removes item id and returns the deleted record. Items still
// referenced by an order line are kept and [ErrItemInUse] is returned.
func (r *itemRepository) DeleteItem(ctx context.Context, id int64) (models.Item, error) {
	query, args, err := buildDeleteItemQuery(r.db.builder, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*itemRepository.DeleteItem").Msg("error building query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := r.queryItem(ctx, "*itemRepository.DeleteItem", query, args, ErrExecutingStatement)
	if errors.Is(err, ErrReferenceNotFound) {
		return models.Item{}, fmt.Errorf("%w: %w", ErrItemInUse, err)
	}

	return item, err
}

// queryItem runs a statement returning exactly one item row.
func (r *itemRepository) queryItem(ctx context.Context, funcName, query string, args []any, fallback error) (models.Item, error) {
	log := logger.FromContext(ctx)

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", funcName).Msg("item was not found")
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error querying item")
		return models.Item{}, classifyWriteError(err, fallback)
	}

	return item, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (models.Item, error) {
	var (
		item        models.Item
		description sql.NullString
	)
	if err := s.Scan(&item.ID, &item.Name, &description); err != nil {
		return models.Item{}, err
	}
	if description.Valid {
		item.Description = &description.String
	}

	return item, nil
}
