package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-pass-auth/models"
)

// TokenService issues, verifies and revokes access tokens.
type TokenService interface {
	// Issue builds and signs a token carrying the user's id, name and role.
	Issue(ctx context.Context, user models.User) (models.Token, error)

	// Verify checks signature, issuer, audience, expiry and revocation and
	// returns the trusted claims. Failures wrap models.ErrUnauthorized.
	Verify(ctx context.Context, tokenString string) (models.Claims, error)

	// Revoke rejects the token identified by claims in every later Verify
	// until it would have expired anyway.
	Revoke(ctx context.Context, claims models.Claims) error

	// ParseClaims decodes the payload without any verification. For
	// read-only inspection only.
	ParseClaims(tokenString string) (models.Claims, error)
}

// AuthService authenticates users and ends their sessions.
type AuthService interface {
	// Login returns a signed token for valid credentials. Unknown users and
	// wrong passwords fail with the same ErrInvalidCredentials.
	Login(ctx context.Context, userName, password string) (models.Token, error)

	// Logout revokes the caller's token.
	Logout(ctx context.Context, claims models.Claims) error

	// VerifyToken returns the trusted claims of tokenString.
	VerifyToken(ctx context.Context, tokenString string) (models.Claims, error)
}

// UserService manages user accounts.
type UserService interface {
	// Register hashes the password if needed and stores the user. The
	// returned user carries its new id and no secrets.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Remove deletes the user with the given id.
	Remove(ctx context.Context, id string) error

	// Update always fails with models.ErrNotSupported.
	Update(ctx context.Context, user models.User) error
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validating or recording metrics.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}
