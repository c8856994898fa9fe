// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the REST client of the auth server.
//
// [ServerAdapter] hides the HTTP details from the command-line client.
// Non-2xx responses are mapped to the sentinel errors of errors.go, so
// callers can branch with [errors.Is] while still showing the server's
// errorMessage to the user.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the auth server on behalf of a single caller. The
// bearer token obtained by Login is kept by the adapter and attached to every
// later request.
type ServerAdapter interface {
	// Login exchanges credentials for an access token and stores it.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Logout revokes the stored token on the server and forgets it locally.
	Logout(ctx context.Context) (models.Result, error)

	// Register creates a user. Without an Administrator token the server
	// forces the role to User.
	Register(ctx context.Context, user models.User) (models.Result, error)

	// RemoveUser deletes the user with the given id. Requires an
	// Administrator token.
	RemoveUser(ctx context.Context, userID string) (models.Result, error)

	// Me returns the identity the server sees in the stored token.
	Me(ctx context.Context) (models.MeResponse, error)

	// Version returns the server's build version.
	Version(ctx context.Context) (string, error)

	// SetToken replaces the stored bearer token.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when logged out.
	Token() string
}
