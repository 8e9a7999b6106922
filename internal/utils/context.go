// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the request-context key of the authenticated session.
var SessionCtxKey = contextKey("session")
