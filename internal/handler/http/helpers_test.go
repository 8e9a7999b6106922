// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-restaurant-api/internal/config"
	"github.com/MKhiriev/go-restaurant-api/internal/logger"
	"github.com/MKhiriev/go-restaurant-api/internal/mock"
	"github.com/MKhiriev/go-restaurant-api/internal/service"
	"github.com/MKhiriev/go-restaurant-api/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	validToken   = "valid-token"
	expiredToken = "expired-token"

	ownerID      int64 = 7
	restaurantID int64 = 42
)

type serviceMocks struct {
	auth       *mock.MockAuthService
	restaurant *mock.MockRestaurantService
	item       *mock.MockItemService
	stats      *mock.MockStatsService
	health     *mock.MockHealthService
}

func newServiceMocks(t *testing.T) (*serviceMocks, *service.Services) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := &serviceMocks{
		auth:       mock.NewMockAuthService(ctrl),
		restaurant: mock.NewMockRestaurantService(ctrl),
		item:       mock.NewMockItemService(ctrl),
		stats:      mock.NewMockStatsService(ctrl),
		health:     mock.NewMockHealthService(ctrl),
	}

	return mocks, &service.Services{
		AuthService:       mocks.auth,
		RestaurantService: mocks.restaurant,
		ItemService:       mocks.item,
		StatsService:      mocks.stats,
		HealthService:     mocks.health,
	}
}

func testOptions(phase config.Phase) Options {
	return Options{
		Phase:          phase,
		Version:        "1.0.0",
		TokenDuration:  30 * time.Second,
		RequestTimeout: 5 * time.Second,
		DocsTitle:      "Restaurant API",
	}
}

// newTestRouter builds the full router in development phase on top of
// service mocks.
func newTestRouter(t *testing.T) (*serviceMocks, http.Handler) {
	t.Helper()

	mocks, services := newServiceMocks(t)
	h := NewHandler(services, testOptions(config.PhaseDevelopment), logger.Nop())

	router, err := h.Init()
	require.NoError(t, err)

	return mocks, router
}

func owner() models.User {
	id := restaurantID
	return models.User{UserID: ownerID, Login: "chef", RestaurantID: &id}
}

// expectOwnerSession makes validToken resolve to owner().
func (m *serviceMocks) expectOwnerSession() {
	m.expectSession(owner())
}

func (m *serviceMocks) expectSession(user models.User) {
	m.auth.EXPECT().ParseToken(gomock.Any(), validToken).
		Return(models.Token{UserID: user.UserID}, nil)
	m.auth.EXPECT().LoadUser(gomock.Any(), user.UserID).
		Return(user, nil)
}

func withToken(r *http.Request, token string) *http.Request {
	r.AddCookie(&http.Cookie{Name: tokenCookieName, Value: token})
	return r
}

func serve(handler http.Handler, r *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, r)
	return rr
}

func decodeError(t *testing.T, body io.Reader) models.ErrorResponse {
	t.Helper()

	var response models.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&response))
	return response
}
