// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"sync"

	"github.com/MKhiriev/go-restaurant-api/internal/logger"
	"github.com/MKhiriev/go-restaurant-api/internal/service"
	"github.com/MKhiriev/go-restaurant-api/internal/utils"
	"github.com/MKhiriev/go-restaurant-api/models"
)

const tokenCookieName = "token"

// UserLoader resolves a token subject to the current user record.
type UserLoader func(ctx context.Context, userID int64) (models.User, error)

// Session is the per-request authentication state placed in the request
// context by authenticate. The user behind the token is loaded on the first
// call to User and at most once per request.
type Session struct {
	Token models.Token

	load UserLoader
	once sync.Once
	user models.User
	err  error
}

func newSession(token models.Token, load UserLoader) *Session {
	return &Session{Token: token, load: load}
}

// User returns the user the token was issued to. Later calls return the
// result of the first one.
func (s *Session) User(ctx context.Context) (models.User, error) {
	s.once.Do(func() {
		s.user, s.err = s.load(ctx, s.Token.UserID)
	})
	return s.user, s.err
}

// SessionFromContext returns the session stored by authenticate.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(utils.SessionCtxKey).(*Session)
	return session, ok && session != nil
}

// authenticate verifies the signed token carried by the "token" cookie or,
// failing that, by an "Authorization: Bearer" header.
//
// An expired token is rejected with 403 and code "token_expired". Every other
// failure, including a missing token, is a 401.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := tokenFromRequest(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		session := newSession(token, h.services.AuthService.LoadUser)
		ctx = context.WithValue(ctx, utils.SessionCtxKey, session)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRestaurant admits only sessions whose user operates a restaurant.
// It must run behind authenticate.
func (h *Handler) requireRestaurant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUser(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if !user.HasRestaurant() {
			writeError(w, r, service.ErrUserHasNoRestaurant)
			return
		}

		logger.FromRequest(r).Debug().
			Int64("user_id", user.UserID).
			Int64("restaurant_id", *user.RestaurantID).
			Msg("restaurant session")

		next.ServeHTTP(w, r)
	})
}

// authenticateWithRestaurant is authenticate followed by requireRestaurant.
func (h *Handler) authenticateWithRestaurant(next http.Handler) http.Handler {
	return h.authenticate(h.requireRestaurant(next))
}

// currentUser resolves the session user of r.
func currentUser(r *http.Request) (models.User, error) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		return models.User{}, ErrNoSession
	}
	return session.User(r.Context())
}

// currentRestaurantID is the restaurant of the session user. Handlers
// mounted behind authenticateWithRestaurant always have one.
func currentRestaurantID(r *http.Request) (int64, error) {
	user, err := currentUser(r)
	if err != nil {
		return 0, err
	}
	if !user.HasRestaurant() {
		return 0, service.ErrUserHasNoRestaurant
	}
	return *user.RestaurantID, nil
}

// tokenFromRequest prefers the cookie and falls back to the bearer header.
func tokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(tokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoToken
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}
	return tokenString, nil
}
