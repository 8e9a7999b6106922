// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the restaurant API.
//
// Configuration is assembled from multiple sources; later sources override
// non-zero fields of earlier ones:
//  1. JSON config file (path taken from CONFIG or -c / -config)
//  2. Environment variables
//  3. Command-line flags
//
// Fields left empty by every source receive the values of [Default] before
// the result is validated. The main entry point is [GetStructuredConfig].
package config
