package validators

import (
	"errors"

	"github.com/MKhiriev/go-pass-auth/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// User field errors. Each one wraps models.ErrValidation and carries the
// message shown to API callers.
var (
	ErrEmptyUserName    = models.NewError(models.ErrValidation, "User name is required!")
	ErrEmptyPassword    = models.NewError(models.ErrValidation, "Password is required!")
	ErrPasswordMismatch = models.NewError(models.ErrValidation, "Password and confirmation password do not match!")
	ErrEmptyEmail       = models.NewError(models.ErrValidation, "Email is required!")
	ErrInvalidEmail     = models.NewError(models.ErrValidation, "Email is not a valid e-mail address!")
	ErrEmptyName        = models.NewError(models.ErrValidation, "Name is required!")
	ErrEmptySurname     = models.NewError(models.ErrValidation, "Surname is required!")
	ErrInvalidRole      = models.NewError(models.ErrValidation, "User role is not valid!")
	ErrEmptyUserID      = models.NewError(models.ErrValidation, "User id is required!")
)
