// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-restaurant-api/internal/config"
	"github.com/MKhiriev/go-restaurant-api/internal/logger"
	_ "github.com/mattn/go-sqlite3"
)

// foreignKeysParam makes go-sqlite3 enable foreign keys on every connection
// it opens, including ones database/sql opens to replace a closed one.
const foreignKeysParam = "_foreign_keys=on"

// NewConnectSQLite opens an SQLite database with foreign keys enabled.
//
// The pool is limited to a single connection: every connection to
// "file::memory:" would otherwise see its own empty database.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(config.DriverSQLite, sqliteDSN(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error pinging database")
		conn.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}
	log.Info().Str("func", "NewConnectSQLite").Str("dsn", cfg.DSN).Msg("opened sqlite database")

	return newDB(conn, config.DriverSQLite, log), nil
}

// sqliteDSN adds foreignKeysParam to dsn unless foreign keys are already
// configured there.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&" + foreignKeysParam
	}
	return dsn + "?" + foreignKeysParam
}
