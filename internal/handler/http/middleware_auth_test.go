// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-restaurant-api/internal/config"
	"github.com/MKhiriev/go-restaurant-api/internal/logger"
	"github.com/MKhiriev/go-restaurant-api/internal/service"
	"github.com/MKhiriev/go-restaurant-api/internal/store"
	"github.com/MKhiriev/go-restaurant-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthHandler(t *testing.T) (*serviceMocks, *Handler) {
	t.Helper()

	mocks, services := newServiceMocks(t)
	return mocks, NewHandler(services, testOptions(config.PhaseDevelopment), logger.Nop())
}

func TestTokenFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		cookie    string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "cookie",
			cookie:    "from-cookie",
			wantToken: "from-cookie",
		},
		{
			name:      "bearer header",
			header:    "Bearer from-header",
			wantToken: "from-header",
		},
		{
			name:      "cookie wins over header",
			cookie:    "from-cookie",
			header:    "Bearer from-header",
			wantToken: "from-cookie",
		},
		{
			name:    "nothing",
			wantErr: ErrNoToken,
		},
		{
			name:    "basic scheme",
			header:  "Basic dXNlcjpwYXNz",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "bearer without token",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: tokenCookieName, Value: tt.cookie})
			}
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			token, err := tokenFromRequest(r)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthenticate_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		parseErr   error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing token",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "unauthorized",
		},
		{
			name:       "expired token",
			token:      expiredToken,
			parseErr:   service.ErrTokenIsExpired,
			wantStatus: http.StatusForbidden,
			wantCode:   "token_expired",
		},
		{
			name:       "bad signature",
			token:      "forged",
			parseErr:   fmt.Errorf("%w: %w", service.ErrInvalidToken, errors.New("signature is invalid")),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks, h := newAuthHandler(t)
			if tt.token != "" {
				mocks.auth.EXPECT().ParseToken(gomock.Any(), tt.token).Return(models.Token{}, tt.parseErr)
			}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler must not be called")
			})

			r := httptest.NewRequest(http.MethodGet, "/items", nil)
			if tt.token != "" {
				r = withToken(r, tt.token)
			}
			rr := serve(h.authenticate(next), r)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rr.Body).Code)
		})
	}
}

func TestAuthenticate_ExpiredTokenBody(t *testing.T) {
	mocks, h := newAuthHandler(t)
	mocks.auth.EXPECT().ParseToken(gomock.Any(), expiredToken).Return(models.Token{}, service.ErrTokenIsExpired)

	r := withToken(httptest.NewRequest(http.MethodGet, "/items", nil), expiredToken)
	rr := serve(h.authenticate(http.NotFoundHandler()), r)

	require.Equal(t, http.StatusForbidden, rr.Code)
	response := decodeError(t, rr.Body)
	assert.Equal(t, "token is expired", response.Error)
	assert.Equal(t, "token_expired", response.Code)
}

func TestAuthenticate_StoresLazySession(t *testing.T) {
	mocks, h := newAuthHandler(t)
	mocks.auth.EXPECT().ParseToken(gomock.Any(), validToken).Return(models.Token{UserID: ownerID}, nil)

	var session *Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		session, ok = SessionFromContext(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusNoContent)
	})

	r := withToken(httptest.NewRequest(http.MethodGet, "/", nil), validToken)
	rr := serve(h.authenticate(next), r)

	// LoadUser has no expectation: a handler that never asks for the user
	// never touches storage.
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, ownerID, session.Token.UserID)
}

func TestAuthenticate_BearerHeader(t *testing.T) {
	mocks, h := newAuthHandler(t)
	mocks.auth.EXPECT().ParseToken(gomock.Any(), validToken).Return(models.Token{UserID: ownerID}, nil)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+validToken)
	rr := serve(h.authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})), r)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestSession_UserLoadedOnce(t *testing.T) {
	calls := 0
	session := newSession(models.Token{UserID: ownerID}, func(ctx context.Context, userID int64) (models.User, error) {
		calls++
		assert.Equal(t, ownerID, userID)
		return owner(), nil
	})

	for range 3 {
		user, err := session.User(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "chef", user.Login)
	}
	assert.Equal(t, 1, calls)
}

func TestSession_UserErrorIsSticky(t *testing.T) {
	calls := 0
	session := newSession(models.Token{UserID: ownerID}, func(ctx context.Context, userID int64) (models.User, error) {
		calls++
		return models.User{}, service.ErrInvalidToken
	})

	_, err := session.User(context.Background())
	assert.ErrorIs(t, err, service.ErrInvalidToken)
	_, err = session.User(context.Background())
	assert.ErrorIs(t, err, service.ErrInvalidToken)
	assert.Equal(t, 1, calls)
}

func TestSessionFromContext_Missing(t *testing.T) {
	_, ok := SessionFromContext(context.Background())
	assert.False(t, ok)
}

func TestAuthenticateWithRestaurant(t *testing.T) {
	noRestaurant := models.User{UserID: ownerID, Login: "drifter"}

	tests := []struct {
		name       string
		user       models.User
		loadErr    error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "user with restaurant",
			user:       owner(),
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "user without restaurant",
			user:       noRestaurant,
			wantStatus: http.StatusForbidden,
			wantCode:   "no_restaurant",
		},
		{
			name:       "subject no longer exists",
			user:       models.User{UserID: ownerID},
			loadErr:    fmt.Errorf("%w: %w", service.ErrInvalidToken, store.ErrUserNotFound),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks, h := newAuthHandler(t)
			mocks.auth.EXPECT().ParseToken(gomock.Any(), validToken).Return(models.Token{UserID: ownerID}, nil)
			mocks.auth.EXPECT().LoadUser(gomock.Any(), ownerID).Return(tt.user, tt.loadErr)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, err := currentRestaurantID(r)
				require.NoError(t, err)
				assert.Equal(t, restaurantID, id)
				w.WriteHeader(http.StatusNoContent)
			})

			r := withToken(httptest.NewRequest(http.MethodGet, "/items", nil), validToken)
			rr := serve(h.authenticateWithRestaurant(next), r)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				response := decodeError(t, rr.Body)
				assert.Equal(t, tt.wantCode, response.Code)
			}
		})
	}
}

func TestAuthenticateWithRestaurant_NoRestaurantMessage(t *testing.T) {
	mocks, h := newAuthHandler(t)
	mocks.expectSession(models.User{UserID: ownerID, Login: "drifter"})

	r := withToken(httptest.NewRequest(http.MethodGet, "/items", nil), validToken)
	rr := serve(h.authenticateWithRestaurant(http.NotFoundHandler()), r)

	require.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "user has no associated restaurant", decodeError(t, rr.Body).Error)
}

func TestCurrentUser_NoSession(t *testing.T) {
	_, err := currentUser(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, ErrNoSession)
}
