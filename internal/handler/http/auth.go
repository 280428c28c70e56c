// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/utils"
	"github.com/MKhiriev/go-store-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", registeredUser.UserID).Msg("user registered")

	h.writeToken(w, r, registeredUser, "Successfully registered", http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", foundUser.UserID).Msg("user successfully logged in")

	h.writeToken(w, r, foundUser, "Successfully logged In", http.StatusOK)
}

// logout revokes the exact token the request was authenticated with.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tokenString, _ := utils.GetTokenFromContext(ctx)
	if err := h.services.AuthService.Logout(ctx, tokenString); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, r, models.StatusSuccess, "Successfully logged out", http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, errNoUserInContext)
		return
	}

	var request models.ResetPasswordRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.ResetPassword(ctx, userID, request); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, r, models.StatusSuccess, "Password reset successfully", http.StatusOK)
}

func (h *Handler) writeToken(w http.ResponseWriter, r *http.Request, user models.User, message string, code int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	writeJSON(w, r, models.AuthResponse{
		Status:    models.StatusSuccess,
		Message:   message,
		AuthToken: token.SignedString,
	}, code)
}
