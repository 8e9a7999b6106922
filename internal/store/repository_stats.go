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

type statsRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewStatsRepository(db *DB, logger *logger.Logger) StatsRepository {
	logger.Debug().Msg("creating stats repository")
	return &statsRepository{
		db:     db,
		logger: logger,
	}
}

func (r *statsRepository) MostSold(ctx context.Context, restaurantID int64) (models.ItemSales, error) {
	return r.itemSales(ctx, r.db.itemSalesQuery(restaurantID, true, "DESC"), restaurantID)
}

func (r *statsRepository) LeastSold(ctx context.Context, restaurantID int64) (models.ItemSales, error) {
	return r.itemSales(ctx, r.db.itemSalesQuery(restaurantID, false, "ASC"), restaurantID)
}

func (r *statsRepository) itemSales(ctx context.Context, builder sq.SelectBuilder, restaurantID int64) (models.ItemSales, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return models.ItemSales{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result models.ItemSales
	var description sql.NullString
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&result.ID,
		&result.Name,
		&result.Price,
		&description,
		&result.RestaurantID,
		&result.Sold,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ItemSales{}, ErrNoSalesRecorded
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*statsRepository.itemSales").
			Int64("restaurant_id", restaurantID).
			Msg("failed to scan item sales row")
		return models.ItemSales{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if description.Valid {
		result.Description = &description.String
	}

	return result, nil
}

func (r *statsRepository) RecordSale(ctx context.Context, itemID string, quantity int64) (models.Sale, error) {
	sale := models.Sale{ItemID: itemID, Quantity: quantity, SoldAt: time.Now().UTC()}

	query, args, err := r.db.builder.
		Insert(salesTable).
		Columns("item_id", "quantity", "sold_at").
		Values(sq.Expr("(SELECT item_id FROM "+itemsTable+" WHERE public_id = ?)", itemID), quantity, sale.SoldAt).
		ToSql()
	if err != nil {
		return models.Sale{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*statsRepository.RecordSale").
			Str("item_id", itemID).
			Msg("failed to insert sale")

		switch r.db.errorClassificator.Classify(err) {
		case CheckViolation, ForeignKeyViolation:
			return models.Sale{}, ErrItemNotFound
		default:
			return models.Sale{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return sale, nil
}
