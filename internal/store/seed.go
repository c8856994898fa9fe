package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-auth/internal/crypto"
	"github.com/MKhiriev/go-pass-auth/models"
)

// Demo administrator credentials seeded into fresh stores.
const (
	DemoUserName = "demo"
	DemoPassword = "demo"
)

// DemoUser returns the bootstrap administrator with a plain-text password.
func DemoUser() models.User {
	return models.User{
		UserName: DemoUserName,
		Password: DemoPassword,
		Role:     models.RoleAdministrator,
		Email:    "demo@codedesigntips.com",
		Name:     "demo",
		Surname:  "demo",
	}
}

// SeedDemoUser inserts [DemoUser] into repo unless a user with that name
// already exists. The password is hashed with hasher before insert.
func SeedDemoUser(ctx context.Context, repo UserRepository, hasher crypto.PasswordHasher) error {
	_, err := repo.GetUserByName(ctx, DemoUserName)
	if err == nil {
		return nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("seed demo user: %w", err)
	}

	user := DemoUser()
	if err := crypto.EncryptUser(hasher, &user); err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}

	// another instance may have seeded between the lookup and the insert
	if _, err := repo.InsertUser(ctx, user); err != nil && !errors.Is(err, models.ErrDuplicateUser) {
		return fmt.Errorf("seed demo user: %w", err)
	}

	return nil
}
