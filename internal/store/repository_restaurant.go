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

type restaurantRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewRestaurantRepository(db *DB, logger *logger.Logger) RestaurantRepository {
	logger.Debug().Msg("creating restaurant repository")
	return &restaurantRepository{
		db:     db,
		logger: logger,
	}
}

func (r *restaurantRepository) CreateRestaurant(ctx context.Context, ownerID int64, name string) (models.Restaurant, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*restaurantRepository.CreateRestaurant").
		Int64("owner_id", ownerID).
		Logger()

	restaurant := models.Restaurant{Name: name, CreatedAt: time.Now().UTC()}

	insertQuery, insertArgs, err := r.db.builder.
		Insert(restaurantsTable).
		Columns("name", "created_at").
		Values(restaurant.Name, restaurant.CreatedAt).
		Suffix("RETURNING restaurant_id").
		ToSql()
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, insertQuery, insertArgs...).Scan(&restaurant.RestaurantID); err != nil {
		log.Err(err).Msg("failed to insert restaurant")
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	bindQuery, bindArgs, err := r.db.builder.
		Update(usersTable).
		Set("restaurant_id", restaurant.RestaurantID).
		Where(sq.Eq{"user_id": ownerID, "restaurant_id": nil}).
		ToSql()
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := tx.ExecContext(ctx, bindQuery, bindArgs...)
	if err != nil {
		log.Err(err).Msg("failed to bind restaurant to owner")
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Warn().Msg("owner already operates a restaurant")
		return models.Restaurant{}, ErrUserAlreadyHasRestaurant
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return restaurant, nil
}

func (r *restaurantRepository) GetRestaurant(ctx context.Context, restaurantID int64) (models.Restaurant, error) {
	query, args, err := r.db.builder.
		Select(restaurantColumns...).
		From(restaurantsTable).
		Where(sq.Eq{"restaurant_id": restaurantID}).
		ToSql()
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var restaurant models.Restaurant
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&restaurant.RestaurantID, &restaurant.Name, &restaurant.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Restaurant{}, ErrRestaurantNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*restaurantRepository.GetRestaurant").
			Int64("restaurant_id", restaurantID).
			Msg("error scanning restaurant")
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return restaurant, nil
}
