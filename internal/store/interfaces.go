package store

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-pass-auth/models"
)

// UserRepository is the persistence contract for user records. Every
// backend (memory, postgres, sqlite) honours the same error taxonomy:
//   - lookups and removals of a missing user fail with models.ErrNotFound;
//   - inserting an existing user name fails with models.ErrDuplicateUser;
//   - backend failures wrap models.ErrStoreFault.
type UserRepository interface {
	GetUserByID(ctx context.Context, id string) (models.User, error)
	GetUserByName(ctx context.Context, userName string) (models.User, error)

	// InsertUser stores user under a freshly generated ID and returns the
	// stored record. Any ID set by the caller is discarded. The user must
	// already carry a hashed password.
	InsertUser(ctx context.Context, user models.User) (models.User, error)

	RemoveUser(ctx context.Context, id string) error
}
