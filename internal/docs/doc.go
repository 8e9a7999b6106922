// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package docs builds and publishes the OpenAPI 3 description of the API.
//
// The document is assembled from the routes registered on the router
// ([Build]) and rendered as JSON or YAML ([Render]). A [Publisher] hands out
// the rendered bytes:
//
//   - [PrecomputedPublisher] renders both formats once at startup, writes
//     them to disk as openapi.json and openapi.yaml and serves the persisted
//     copies for the lifetime of the process.
//   - [LivePublisher] renders on first use and keeps the result in memory.
//
// Both publishers build the document at most once.
package docs
