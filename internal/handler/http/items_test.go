// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-restaurant-api/internal/service"
	"github.com/MKhiriev/go-restaurant-api/internal/store"
	"github.com/MKhiriev/go-restaurant-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const soupID = "0123456789abcdef"

func soup() models.Item {
	description := "tomato"
	return models.Item{
		ID:           soupID,
		Name:         "Soup",
		Price:        450,
		Description:  &description,
		RestaurantID: restaurantID,
	}
}

func itemRequest(method, target, contentType, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	return withToken(r, validToken)
}

func TestItems_RequireToken(t *testing.T) {
	_, router := newTestRouter(t)

	for _, target := range []string{"/items", "/items/" + soupID, "/items/best-seller", "/items/worst-seller"} {
		rr := serve(router, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code, target)
	}
}

func TestItems_RequireRestaurant(t *testing.T) {
	mocks, router := newTestRouter(t)
	mocks.expectSession(models.User{UserID: ownerID, Login: "drifter"})

	rr := serve(router, itemRequest(http.MethodGet, "/items", "", ""))

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "no_restaurant", decodeError(t, rr.Body).Code)
}

func TestListItems(t *testing.T) {
	mocks, router := newTestRouter(t)
	mocks.expectOwnerSession()
	mocks.item.EXPECT().List(gomock.Any(), restaurantID).Return([]models.Item{soup()}, nil)

	rr := serve(router, itemRequest(http.MethodGet, "/items", "", ""))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":"0123456789abcdef","name":"Soup","price":450,"description":"tomato"}]`, rr.Body.String())
}

func TestListItems_Empty(t *testing.T) {
	mocks, router := newTestRouter(t)
	mocks.expectOwnerSession()
	mocks.item.EXPECT().List(gomock.Any(), restaurantID).Return([]models.Item{}, nil)

	rr := serve(router, itemRequest(http.MethodGet, "/items/", "", ""))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestGetItem(t *testing.T) {
	tests := []struct {
		name       string
		item       models.Item
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "own item",
			item:       soup(),
			wantStatus: http.StatusOK,
		},
		{
			name:       "item of another restaurant",
			err:        service.ErrForbiddenItem,
			wantStatus: http.StatusForbidden,
			wantCode:   "forbidden",
		},
		{
			name:       "missing item",
			err:        fmt.Errorf("lookup failed: %w", store.ErrItemNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
		},
		{
			name:       "storage failure",
			err:        fmt.Errorf("%w: connection reset", store.ErrExecutingQuery),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks, router := newTestRouter(t)
			mocks.expectOwnerSession()
			mocks.item.EXPECT().Get(gomock.Any(), restaurantID, soupID).Return(tt.item, tt.err)

			rr := serve(router, itemRequest(http.MethodGet, "/items/"+soupID, "", ""))

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rr.Body).Code)
				return
			}

			var got models.Item
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
			assert.Equal(t, soupID, got.ID)
			assert.Equal(t, "Soup", got.Name)
		})
	}
}

func TestCreateItem_RoundTrip(t *testing.T) {
	mocks, router := newTestRouter(t)
	mocks.expectOwnerSession()

	description := "tomato"
	mocks.item.EXPECT().
		Create(gomock.Any(), restaurantID, models.CreateItemRequest{Name: "Soup", Price: 450, Description: &description}).
		Return(soup(), nil)

	rr := serve(router, itemRequest(http.MethodPost, "/items", "application/json",
		`{"name":"Soup","price":450,"description":"tomato"}`))

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":"0123456789abcdef","name":"Soup","price":450,"description":"tomato"}`, rr.Body.String())
}

func TestCreateItem_YAMLBody(t *testing.T) {
	mocks, router := newTestRouter(t)
	mocks.expectOwnerSession()
	mocks.item.EXPECT().
		Create(gomock.Any(), restaurantID, models.CreateItemRequest{Name: "Soup", Price: 450}).
		Return(models.Item{ID: soupID, Name: "Soup", Price: 450}, nil)

	rr := serve(router, itemRequest(http.MethodPost, "/items", "application/yaml", "name: Soup\nprice: 450\n"))

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestCreateItem_RejectedBodies(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantStatus  int
		wantCode    string
	}{
		{
			name:        "extra field",
			contentType: "application/json",
			body:        `{"name":"Soup","price":450,"chef":"Remy"}`,
			wantStatus:  http.StatusBadRequest,
			wantCode:    "validation_failed",
		},
		{
			name:        "name too short",
			contentType: "application/json",
			body:        `{"name":"So","price":450}`,
			wantStatus:  http.StatusBadRequest,
			wantCode:    "validation_failed",
		},
		{
			name:        "negative price",
			contentType: "application/json",
			body:        `{"name":"Soup","price":-5}`,
			wantStatus:  http.StatusBadRequest,
			wantCode:    "validation_failed",
		},
		{
			name:        "invalid yaml",
			contentType: "application/yaml",
			body:        "name: [Soup\n",
			wantStatus:  http.StatusBadRequest,
			wantCode:    "malformed_body",
		},
		{
			name:        "second json value",
			contentType: "application/json",
			body:        `{"name":"Soup","price":500}{"chef":"Remy"}`,
			wantStatus:  http.StatusBadRequest,
			wantCode:    "malformed_body",
		},
		{
			name:        "second yaml document",
			contentType: "text/yaml",
			body:        "name: Soup\nprice: 500\n---\nchef: Remy\n",
			wantStatus:  http.StatusBadRequest,
			wantCode:    "malformed_body",
		},
		{
			name:        "unsupported media type",
			contentType: "application/xml",
			body:        "<item/>",
			wantStatus:  http.StatusUnsupportedMediaType,
			wantCode:    "unsupported_media_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks, router := newTestRouter(t)
			mocks.expectOwnerSession()

			rr := serve(router, itemRequest(http.MethodPost, "/items", tt.contentType, tt.body))

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rr.Body).Code)
		})
	}
}

func TestCreateItem_ExtraFieldDetails(t *testing.T) {
	mocks, router := newTestRouter(t)
	mocks.expectOwnerSession()

	rr := serve(router, itemRequest(http.MethodPost, "/items", "application/json", `{"name":"Soup","chef":"Remy"}`))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, map[string]string{"chef": "is not allowed"}, decodeError(t, rr.Body).Fields)
}

func TestDeleteItem_Twice(t *testing.T) {
	mocks, router := newTestRouter(t)
	mocks.expectOwnerSession()
	mocks.expectOwnerSession()
	gomock.InOrder(
		mocks.item.EXPECT().Delete(gomock.Any(), restaurantID, soupID).Return(nil),
		mocks.item.EXPECT().Delete(gomock.Any(), restaurantID, soupID).Return(store.ErrItemNotFound),
	)

	first := serve(router, itemRequest(http.MethodDelete, "/items/"+soupID, "", ""))
	require.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, `{"message":"item deleted"}`, first.Body.String())

	second := serve(router, itemRequest(http.MethodDelete, "/items/"+soupID, "", ""))
	require.Equal(t, http.StatusNotFound, second.Code)
	assert.Equal(t, "not_found", decodeError(t, second.Body).Code)
}

func TestDeleteItem_Foreign(t *testing.T) {
	mocks, router := newTestRouter(t)
	mocks.expectOwnerSession()
	mocks.item.EXPECT().Delete(gomock.Any(), restaurantID, soupID).Return(service.ErrForbiddenItem)

	rr := serve(router, itemRequest(http.MethodDelete, "/items/"+soupID, "", ""))

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestItems_MethodNotAllowed(t *testing.T) {
	mocks, router := newTestRouter(t)
	mocks.expectOwnerSession()

	rr := serve(router, itemRequest(http.MethodPut, "/items/"+soupID, "application/json", `{}`))

	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "method_not_allowed", decodeError(t, rr.Body).Code)
}
