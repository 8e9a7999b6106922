// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-restaurant-api/internal/logger"
	"github.com/MKhiriev/go-restaurant-api/models"
	sq "github.com/Masterminds/squirrel"
)

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

func (r *itemRepository) GetAllFrom(ctx context.Context, restaurantID int64) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(itemColumns...).
		From(itemsTable).
		Where(sq.Eq{"restaurant_id": restaurantID}).
		OrderBy("item_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*itemRepository.GetAllFrom").
			Int64("restaurant_id", restaurantID).
			Msg("failed to execute query for getting restaurant items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, 16)
	for rows.Next() {
		item, scanErr := scanItem(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*itemRepository.GetAllFrom").
				Int64("restaurant_id", restaurantID).
				Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*itemRepository.GetAllFrom").
			Int64("restaurant_id", restaurantID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (r *itemRepository) Get(ctx context.Context, itemID string) (models.Item, error) {
	query, args, err := r.db.builder.
		Select(itemColumns...).
		From(itemsTable).
		Where(sq.Eq{"public_id": itemID}).
		ToSql()
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*itemRepository.Get").
			Str("item_id", itemID).
			Msg("failed to scan item row")
		return models.Item{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

func (r *itemRepository) Create(ctx context.Context, item models.NewItem) (string, error) {
	query, args, err := r.db.builder.
		Insert(itemsTable).
		Columns("public_id", "restaurant_id", "name", "price", "description", "created_at").
		Values(item.PublicID, item.RestaurantID, item.Name, item.Price, item.Description, time.Now().UTC()).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*itemRepository.Create").
			Str("item_id", item.PublicID).
			Int64("restaurant_id", item.RestaurantID).
			Msg("failed to insert item")

		switch r.db.errorClassificator.Classify(err) {
		case UniqueViolation:
			return "", ErrItemAlreadyExists
		case ForeignKeyViolation:
			return "", ErrRestaurantNotFound
		default:
			return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return item.PublicID, nil
}

func (r *itemRepository) Delete(ctx context.Context, itemID string) error {
	query, args, err := r.db.builder.
		Delete(itemsTable).
		Where(sq.Eq{"public_id": itemID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*itemRepository.Delete").
			Str("item_id", itemID).
			Msg("failed to delete item")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (models.Item, error) {
	var item models.Item
	var description sql.NullString

	if err := row.Scan(&item.ID, &item.Name, &item.Price, &description, &item.RestaurantID); err != nil {
		return models.Item{}, err
	}

	if description.Valid {
		item.Description = &description.String
	}

	return item, nil
}
