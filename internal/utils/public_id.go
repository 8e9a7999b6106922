// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"

	"github.com/MKhiriev/go-restaurant-api/models"
	"github.com/google/uuid"
)

// PublicIDGenerator produces fixed-length opaque identifiers for items.
type PublicIDGenerator struct {
}

func NewPublicIDGenerator() *PublicIDGenerator {
	return &PublicIDGenerator{}
}

// Generate returns models.PublicIDLength lowercase hex characters taken
// from the random tail of a version 4 UUID.
func (g *PublicIDGenerator) Generate() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return hex[len(hex)-models.PublicIDLength:]
}

// IsPublicID reports whether s has the shape of a generated public id.
func IsPublicID(s string) bool {
	if len(s) != models.PublicIDLength {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
