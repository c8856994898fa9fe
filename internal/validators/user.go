package validators

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-pass-auth/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUserID          = "user_id"
	FieldUserName        = "user_name"
	FieldPassword        = "password"
	FieldPasswordConfirm = "password_confirm"
	FieldEmail           = "email"
	FieldName            = "name"
	FieldSurname         = "surname"
	FieldRole            = "role"
)

// registrationFields is the default field set for models.User.
var registrationFields = []string{
	FieldUserName,
	FieldPassword,
	FieldPasswordConfirm,
	FieldEmail,
	FieldName,
	FieldSurname,
	FieldRole,
}

// UserValidator implements [Validator] for models.User. Unlike a first-error validator it reports every
// failing field, joined with errors.Join, so callers can show them all.
type UserValidator struct{}

// NewUserValidator constructs a UserValidator.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate accepts a models.User by value or pointer. When fields is empty
// the full registration rule set is applied.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = registrationFields
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldUserID:
			if strings.TrimSpace(user.UserID) == "" {
				errs = append(errs, ErrEmptyUserID)
			}
		case FieldUserName:
			if strings.TrimSpace(user.UserName) == "" {
				errs = append(errs, ErrEmptyUserName)
			}
		case FieldPassword:
			if !user.IsPasswordEncrypted && user.Password == "" {
				errs = append(errs, ErrEmptyPassword)
			}
		case FieldPasswordConfirm:
			// Confirmation is optional; API clients may send the password once.
			if user.PasswordConfirm != "" && user.PasswordConfirm != user.Password {
				errs = append(errs, ErrPasswordMismatch)
			}
		case FieldEmail:
			if err := validateEmail(user.Email); err != nil {
				errs = append(errs, err)
			}
		case FieldName:
			if strings.TrimSpace(user.Name) == "" {
				errs = append(errs, ErrEmptyName)
			}
		case FieldSurname:
			if strings.TrimSpace(user.Surname) == "" {
				errs = append(errs, ErrEmptySurname)
			}
		case FieldRole:
			if !user.Role.IsValid() {
				errs = append(errs, ErrInvalidRole)
			}
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(errs...)
}

// validateEmail accepts a bare addr-spec only: "Name <a@b>" forms are
// rejected so the stored value is always just the address.
func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}
