package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_String(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleNone, "None"},
		{RoleUser, "User"},
		{RoleAdministrator, "Administrator"},
		{Role(42), "Role(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.String())
		})
	}
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("Administrator")
	require.NoError(t, err)
	assert.Equal(t, RoleAdministrator, role)

	_, err = ParseRole("administrator")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRole_JSON(t *testing.T) {
	b, err := json.Marshal(RoleAdministrator)
	require.NoError(t, err)
	assert.JSONEq(t, `"Administrator"`, string(b))

	var fromLabel Role
	require.NoError(t, json.Unmarshal([]byte(`"User"`), &fromLabel))
	assert.Equal(t, RoleUser, fromLabel)

	var fromNumber Role
	require.NoError(t, json.Unmarshal([]byte(`2`), &fromNumber))
	assert.Equal(t, RoleAdministrator, fromNumber)

	var bad Role
	assert.ErrorIs(t, json.Unmarshal([]byte(`7`), &bad), ErrValidation)
	assert.ErrorIs(t, json.Unmarshal([]byte(`"Root"`), &bad), ErrValidation)
	assert.ErrorIs(t, json.Unmarshal([]byte(`true`), &bad), ErrValidation)
}

func TestUser_JSONHidesSecrets(t *testing.T) {
	u := User{
		UserID:              "id-1",
		UserName:            "alice",
		PasswordHash:        "hash",
		PasswordSalt:        "salt",
		IsPasswordEncrypted: true,
		Role:                RoleUser,
	}

	b, err := json.Marshal(u)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.NotContains(t, decoded, "PasswordHash")
	assert.NotContains(t, decoded, "PasswordSalt")
	assert.NotContains(t, decoded, "password")
	assert.Equal(t, "User", decoded["userRole"])
}

func TestNewUser_DefaultsToUserRole(t *testing.T) {
	assert.Equal(t, RoleUser, NewUser().Role)
}

func TestClaims_UserRole(t *testing.T) {
	assert.Equal(t, RoleAdministrator, Claims{Role: "Administrator"}.UserRole())
	assert.Equal(t, RoleNone, Claims{Role: "nonsense"}.UserRole())
}
