// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-restaurant-api/internal/logger"
	"github.com/MKhiriev/go-restaurant-api/internal/utils"
	"github.com/MKhiriev/go-restaurant-api/models"
)

const loggedOutMessage = "logged out"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := h.bind(w, r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", registeredUser.UserID).Msg("user registered")

	h.setToken(w, token)
	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := h.bind(w, r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	h.setToken(w, token)
	utils.WriteJSON(w, foundUser, http.StatusOK)
}

// refresh re-issues the token of an authenticated user.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.setToken(w, token)
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.tokenCookie("", -1))
	utils.WriteJSON(w, models.MessageResponse{Message: loggedOutMessage}, http.StatusOK)
}

// setToken hands the token to the client both as the "token" cookie and as
// an Authorization header for non-browser clients.
func (h *Handler) setToken(w http.ResponseWriter, token models.Token) {
	signed := token.String()
	http.SetCookie(w, h.tokenCookie(signed, int(h.options.TokenDuration.Seconds())))
	w.Header().Set("Authorization", "Bearer "+signed)
}

func (h *Handler) tokenCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     tokenCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.options.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}
