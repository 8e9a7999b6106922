// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-restaurant-api/internal/config"
	"github.com/MKhiriev/go-restaurant-api/internal/logger"
	"github.com/MKhiriev/go-restaurant-api/models"
)

type healthService struct {
	pinger     Pinger
	appVersion string

	logger *logger.Logger
}

func NewHealthService(pinger Pinger, cfg config.App, logger *logger.Logger) (HealthService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &healthService{
		pinger:     pinger,
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *healthService) Check(ctx context.Context) (models.HealthResponse, error) {
	if err := s.pinger.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("storage ping failed")
		return models.HealthResponse{Status: "unavailable", Version: s.appVersion}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return models.HealthResponse{Status: "ok", Version: s.appVersion}, nil
}
