package store

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-auth/models"
)

// ErrUserNotFound is returned by lookups and removals that match no user.
var ErrUserNotFound = models.NewError(models.ErrNotFound, "User not found!")

// ErrPasswordNotEncrypted is returned when a user without a hashed
// password reaches InsertUser.
var ErrPasswordNotEncrypted = fmt.Errorf("%w: password is not encrypted", models.ErrInvalidArgument)

// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
// query fails.
var ErrBuildingSQLQuery = errors.New("error building sql query")

func errUserAlreadyExists(userName string) error {
	return models.NewError(models.ErrDuplicateUser, "User %s already exists!", userName)
}

func storeFault(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", models.ErrStoreFault, op, err)
}
