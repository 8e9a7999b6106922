// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// Supported values of DB.Driver.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

func (cfg *StructuredConfig) validate() error {
	switch cfg.App.Phase {
	case PhaseProduction, PhaseDevelopment:
	default:
		return fmt.Errorf("%w: unknown phase %q", ErrInvalidAppConfigs, cfg.App.Phase)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.App.Phase.Precomputed() && cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: address is required in %s phase", ErrInvalidServerConfigs, cfg.App.Phase)
	}

	if cfg.App.Phase.Precomputed() && cfg.Docs.Dir == "" {
		return fmt.Errorf("%w: docs directory is required in %s phase", ErrInvalidDocsConfigs, cfg.App.Phase)
	}

	return nil
}
