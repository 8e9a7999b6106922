// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence of users, restaurants, menu items and
// sales on top of database/sql.
//
// Two backends are supported: PostgreSQL through the pgx stdlib driver and
// SQLite through mattn/go-sqlite3. Queries are built with squirrel using the
// placeholder format of the active backend, and driver errors are translated
// into the sentinel errors of this package by an [ErrorClassificator].
package store
