// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/internal/utils"
	"github.com/MKhiriev/go-pass-auth/models"
)

const userIDQueryParam = "userId"

// createUser registers the user in the body. Unless the caller holds the
// Administrator role the requested role is replaced with RoleUser.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user := models.NewUser()
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeFailure(w, r, ErrInvalidJSON)
		return
	}

	claims, authenticated := utils.GetClaimsFromContext(ctx)
	if !authenticated || claims.UserRole() != models.RoleAdministrator {
		user.Role = models.RoleUser
	}

	// identity and credential state are never taken from the client
	user.UserID = ""
	user.PasswordHash = ""
	user.PasswordSalt = ""
	user.IsPasswordEncrypted = false

	created, err := h.services.UserService.Register(ctx, user)
	if err != nil {
		log.Err(err).Str("user_name", user.UserName).Msg("user registration failed")
		writeFailure(w, r, err)
		return
	}

	log.Info().Str("user_id", created.UserID).Str("created_by", claims.Subject).Msg("user created")
	writeSuccess(w, r)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeFailure(w, r, ErrInvalidJSON)
		return
	}

	if err := h.services.UserService.Update(r.Context(), user); err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.URL.Query().Get(userIDQueryParam)

	if err := h.services.UserService.Remove(ctx, userID); err != nil {
		logger.FromRequest(r).Err(err).Str("user_id", userID).Msg("user removal failed")
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r)
}
