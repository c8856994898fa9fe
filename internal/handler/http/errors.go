// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "github.com/MKhiriev/go-pass-auth/models"

// Errors rendered by the middleware and handlers of this package. All of
// them wrap a models taxonomy error so errorStatusMap can classify them.
var (
	// ErrEmptyAuthorizationHeader is returned when a protected route is
	// called without an "Authorization" header.
	ErrEmptyAuthorizationHeader = models.NewError(models.ErrUnauthorized, "Authorization header is required!")

	// ErrInvalidAuthorizationHeader is returned when the header is not of
	// the "Bearer <token>" form.
	ErrInvalidAuthorizationHeader = models.NewError(models.ErrUnauthorized, "Authorization header is not valid!")

	// ErrInvalidToken is returned for expired, revoked, foreign or
	// malformed tokens.
	ErrInvalidToken = models.NewError(models.ErrUnauthorized, "Token is not valid!")

	// ErrAdministratorRequired is returned when a caller without the
	// Administrator role reaches an administrative route.
	ErrAdministratorRequired = models.NewError(models.ErrForbidden, "Administrator role is required!")

	ErrInvalidJSON = models.NewError(models.ErrValidation, "Invalid JSON was passed!")
)
