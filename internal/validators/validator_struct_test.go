// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-restaurant-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestStructValidator_CreateItemRequest(t *testing.T) {
	v := NewStructValidator()
	ctx := context.Background()

	tests := []struct {
		name       string
		request    models.CreateItemRequest
		wantFields map[string]string
	}{
		{
			name:    "valid",
			request: models.CreateItemRequest{Name: "Soup", Price: 500, Description: strPtr("hot")},
		},
		{
			name:    "zero price is allowed",
			request: models.CreateItemRequest{Name: "Water"},
		},
		{
			name:       "missing name",
			request:    models.CreateItemRequest{Price: 1},
			wantFields: map[string]string{"name": "is required"},
		},
		{
			name:       "short name",
			request:    models.CreateItemRequest{Name: "ab"},
			wantFields: map[string]string{"name": "must be at least 3 characters long"},
		},
		{
			name:       "negative price",
			request:    models.CreateItemRequest{Name: "Soup", Price: -1},
			wantFields: map[string]string{"price": "must be at least 0"},
		},
		{
			name:       "long description",
			request:    models.CreateItemRequest{Name: "Soup", Description: strPtr(strings.Repeat("x", 256))},
			wantFields: map[string]string{"description": "must be at most 255 characters long"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.request)

			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidationFailed)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantFields, validationErr.Fields)
		})
	}
}

func TestStructValidator_PartialFields(t *testing.T) {
	v := NewStructValidator()
	request := &models.CreateItemRequest{Name: "ab", Price: -5}

	err := v.Validate(context.Background(), request, "price")

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, map[string]string{"price": "must be at least 0"}, validationErr.Fields)
}

func TestStructValidator_UnknownField(t *testing.T) {
	v := NewStructValidator()

	err := v.Validate(context.Background(), models.CreateItemRequest{}, "colour")

	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestStructValidator_UnsupportedType(t *testing.T) {
	v := NewStructValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "soup"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), nil), ErrUnsupportedType)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"price": "must be at least 0", "name": "is required"}}

	assert.Equal(t, "validation failed: name is required; price must be at least 0", err.Error())
}
