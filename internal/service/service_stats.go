// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-restaurant-api/internal/logger"
	"github.com/MKhiriev/go-restaurant-api/internal/store"
	"github.com/MKhiriev/go-restaurant-api/models"
)

type statsService struct {
	statsRepository store.StatsRepository
	items           ItemService

	logger *logger.Logger
}

func NewStatsService(statsRepository store.StatsRepository, itemRepository store.ItemRepository, logger *logger.Logger) StatsService {
	return &statsService{
		statsRepository: statsRepository,
		items:           &itemService{itemRepository: itemRepository, logger: logger},
		logger:          logger,
	}
}

// BestSeller returns the item with the highest sold quantity. Ties go to the
// item created first.
func (s *statsService) BestSeller(ctx context.Context, restaurantID int64) (models.ItemSales, error) {
	best, err := s.statsRepository.MostSold(ctx, restaurantID)
	if err != nil {
		return models.ItemSales{}, fmt.Errorf("getting best seller failed: %w", err)
	}

	return best, nil
}

// WorstSeller returns the item with the lowest sold quantity. Items that
// were never sold count as zero.
func (s *statsService) WorstSeller(ctx context.Context, restaurantID int64) (models.ItemSales, error) {
	worst, err := s.statsRepository.LeastSold(ctx, restaurantID)
	if err != nil {
		return models.ItemSales{}, fmt.Errorf("getting worst seller failed: %w", err)
	}

	return worst, nil
}

// RecordSale registers a sale of an item owned by restaurantID.
func (s *statsService) RecordSale(ctx context.Context, restaurantID int64, itemID string, request models.RecordSaleRequest) (models.Sale, error) {
	if request.Quantity < 1 {
		return models.Sale{}, ErrInvalidDataProvided
	}

	if _, err := s.items.Get(ctx, restaurantID, itemID); err != nil {
		return models.Sale{}, err
	}

	sale, err := s.statsRepository.RecordSale(ctx, itemID, request.Quantity)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("item_id", itemID).Msg("recording sale failed")
		return models.Sale{}, fmt.Errorf("recording sale failed: %w", err)
	}

	return sale, nil
}
