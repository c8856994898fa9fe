// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-auth/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validUser() models.User {
	return models.User{
		UserName: "alice",
		Password: "s3cret",
		Role:     models.RoleUser,
		Email:    "alice@example.com",
		Name:     "Alice",
		Surname:  "Liddell",
	}
}

// ---------------------------------------------------------------------------
// models.User
// ---------------------------------------------------------------------------

func TestValidateUser_Valid(t *testing.T) {
	v := NewUserValidator()

	u := validUser()
	require.NoError(t, v.Validate(context.Background(), u))
	require.NoError(t, v.Validate(context.Background(), &u))

	u.PasswordConfirm = u.Password
	assert.NoError(t, v.Validate(context.Background(), u))
}

func TestValidateUser_SingleField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(u *models.User)
		want   error
	}{
		{"empty user name", func(u *models.User) { u.UserName = "  " }, ErrEmptyUserName},
		{"empty password", func(u *models.User) { u.Password = "" }, ErrEmptyPassword},
		{"confirmation mismatch", func(u *models.User) { u.PasswordConfirm = "other" }, ErrPasswordMismatch},
		{"empty email", func(u *models.User) { u.Email = "" }, ErrEmptyEmail},
		{"malformed email", func(u *models.User) { u.Email = "not-an-email" }, ErrInvalidEmail},
		{"email with display name", func(u *models.User) { u.Email = "Alice <alice@example.com>" }, ErrInvalidEmail},
		{"empty name", func(u *models.User) { u.Name = "" }, ErrEmptyName},
		{"empty surname", func(u *models.User) { u.Surname = "" }, ErrEmptySurname},
		{"unknown role", func(u *models.User) { u.Role = models.Role(9) }, ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(&u)

			err := NewUserValidator().Validate(context.Background(), u)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestValidateUser_ReportsEveryField(t *testing.T) {
	err := NewUserValidator().Validate(context.Background(), models.User{Role: models.RoleUser})

	require.Error(t, err)
	assert.Equal(t,
		"User name is required!\nPassword is required!\nEmail is required!\nName is required!\nSurname is required!",
		err.Error())
}

func TestValidateUser_EncryptedSkipsPasswordPresence(t *testing.T) {
	u := validUser()
	u.Password = ""
	u.IsPasswordEncrypted = true
	u.PasswordHash = "hash"
	u.PasswordSalt = "salt"

	assert.NoError(t, NewUserValidator().Validate(context.Background(), u))
}

func TestValidateUser_ScopedFields(t *testing.T) {
	v := NewUserValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), models.User{}, FieldUserID), ErrEmptyUserID)
	assert.NoError(t, v.Validate(context.Background(), models.User{UserID: "id"}, FieldUserID))
	assert.ErrorIs(t, v.Validate(context.Background(), validUser(), "nope"), ErrUnknownField)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewUserValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.LoginRequest{UserName: "demo"}), ErrUnsupportedType)
}
