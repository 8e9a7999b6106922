// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-restaurant-api/internal/logger"
	"github.com/MKhiriev/go-restaurant-api/internal/store"
	"github.com/MKhiriev/go-restaurant-api/internal/utils"
	"github.com/MKhiriev/go-restaurant-api/models"
)

// maxPublicIDAttempts bounds the retries after a public id collision.
const maxPublicIDAttempts = 3

// itemService implements ItemService on top of an ItemRepository.
//
// Ownership is checked here rather than in SQL: an item of another
// restaurant must be reported as forbidden, not as missing.
type itemService struct {
	itemRepository store.ItemRepository
	idGenerator    IDGenerator

	logger *logger.Logger
}

func NewItemService(itemRepository store.ItemRepository, idGenerator IDGenerator, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		idGenerator:    idGenerator,
		logger:         logger,
	}
}

func (s *itemService) List(ctx context.Context, restaurantID int64) ([]models.Item, error) {
	items, err := s.itemRepository.GetAllFrom(ctx, restaurantID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("restaurant_id", restaurantID).Msg("listing items failed")
		return nil, fmt.Errorf("listing items failed: %w", err)
	}

	return items, nil
}

// Get returns the item when it belongs to restaurantID.
//
// Returns store.ErrItemNotFound for unknown or malformed ids and
// ErrForbiddenItem for items of another restaurant.
func (s *itemService) Get(ctx context.Context, restaurantID int64, itemID string) (models.Item, error) {
	if !utils.IsPublicID(itemID) {
		return models.Item{}, store.ErrItemNotFound
	}

	item, err := s.itemRepository.Get(ctx, itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("getting item failed: %w", err)
	}

	if item.RestaurantID != restaurantID {
		logger.FromContext(ctx).Warn().
			Str("item_id", itemID).
			Int64("restaurant_id", restaurantID).
			Int64("owner_restaurant_id", item.RestaurantID).
			Msg("access to item of another restaurant")
		return models.Item{}, ErrForbiddenItem
	}

	return item, nil
}

// Create stores a new item under a freshly generated public id and returns
// the stored row.
func (s *itemService) Create(ctx context.Context, restaurantID int64, request models.CreateItemRequest) (models.Item, error) {
	log := logger.FromContext(ctx)

	if request.Name == "" || request.Price < 0 {
		return models.Item{}, ErrInvalidDataProvided
	}

	newItem := models.NewItem{
		Name:         request.Name,
		Price:        request.Price,
		Description:  request.Description,
		RestaurantID: restaurantID,
	}

	var (
		itemID string
		err    error
	)
	for range maxPublicIDAttempts {
		newItem.PublicID = s.idGenerator.Generate()
		itemID, err = s.itemRepository.Create(ctx, newItem)
		if !errors.Is(err, store.ErrItemAlreadyExists) {
			break
		}
		log.Warn().Str("item_id", newItem.PublicID).Msg("public id collision, regenerating")
	}
	if errors.Is(err, store.ErrItemAlreadyExists) {
		return models.Item{}, ErrPublicIDExhausted
	}
	if err != nil {
		log.Err(err).Int64("restaurant_id", restaurantID).Msg("item creation ended with error")
		return models.Item{}, fmt.Errorf("item creation ended with error: %w", err)
	}

	item, err := s.itemRepository.Get(ctx, itemID)
	if err != nil {
		log.Err(err).Str("item_id", itemID).Msg("reading created item failed")
		return models.Item{}, fmt.Errorf("reading created item failed: %w", err)
	}

	return item, nil
}

// Delete removes the item after the same ownership check as Get.
func (s *itemService) Delete(ctx context.Context, restaurantID int64, itemID string) error {
	if _, err := s.Get(ctx, restaurantID, itemID); err != nil {
		return err
	}

	if err := s.itemRepository.Delete(ctx, itemID); err != nil {
		logger.FromContext(ctx).Err(err).Str("item_id", itemID).Msg("deleting item failed")
		return fmt.Errorf("deleting item failed: %w", err)
	}

	return nil
}
