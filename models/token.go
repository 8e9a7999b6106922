// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// Token wraps a parsed or freshly signed JWT.
//
// RegisteredClaims is embedded so the type can be handed directly to
// jwt.ParseWithClaims.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact serialized form placed in the cookie.
	SignedString string `json:"-"`

	// UserID is the numeric subject of the token.
	UserID int64 `json:"-"`
}

func (t *Token) String() string {
	return t.SignedString
}
