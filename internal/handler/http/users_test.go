package http

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-auth/internal/service"
	"github.com/MKhiriev/go-pass-auth/models"
)

const newUserBody = `{
	"userId": "forged-id",
	"userName": "alice",
	"password": "s3cret",
	"userRole": "Administrator",
	"email": "alice@example.com",
	"name": "Alice",
	"surname": "Liddell"
}`

// ---- POST /users ----

func TestCreateUser_RoleForcing(t *testing.T) {
	tests := []struct {
		name     string
		caller   *models.Claims
		wantRole models.Role
	}{
		{name: "anonymous", caller: nil, wantRole: models.RoleUser},
		{name: "plain user", caller: ptr(claimsFor("u-1", "bob", models.RoleUser)), wantRole: models.RoleUser},
		{name: "administrator", caller: ptr(claimsFor("u-0", "demo", models.RoleAdministrator)), wantRole: models.RoleAdministrator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)

			token := ""
			if tt.caller != nil {
				token = "tok"
				m.auth.EXPECT().VerifyToken(gomock.Any(), "tok").Return(*tt.caller, nil)
			}

			m.users.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, tt.wantRole, u.Role)
				assert.Empty(t, u.UserID)
				assert.Equal(t, "s3cret", u.Password)
				assert.False(t, u.IsPasswordEncrypted)
				u.UserID = "new-id"
				return u, nil
			})

			rec := serve(h, http.MethodPost, "/users", newUserBody, token)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, decodeResult(t, rec).Result)
		})
	}
}

func TestCreateUser_DefaultRole(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().VerifyToken(gomock.Any(), "tok").Return(claimsFor("u-0", "demo", models.RoleAdministrator), nil)
	m.users.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
		assert.Equal(t, models.RoleUser, u.Role)
		return u, nil
	})

	rec := serve(h, http.MethodPost, "/users", `{"userName":"carol","password":"x","email":"c@example.com","name":"C","surname":"D"}`, "tok")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateUser_Failures(t *testing.T) {
	joined := errors.Join(
		models.NewError(models.ErrValidation, "User name is required!"),
		models.NewError(models.ErrValidation, "Email is required!"),
	)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"duplicate", models.NewError(models.ErrDuplicateUser, "User alice already exists!"), http.StatusBadRequest, "User alice already exists!"},
		{"validation joined", joined, http.StatusBadRequest, "User name is required!\nEmail is required!"},
		{"store fault", errors.Join(models.ErrStoreFault), http.StatusInternalServerError, "store fault"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, tt.err)

			rec := serve(h, http.MethodPost, "/users", newUserBody, "")

			require.Equal(t, tt.wantStatus, rec.Code)
			res := decodeResult(t, rec)
			assert.False(t, res.Result)
			assert.Equal(t, tt.wantMsg, res.ErrorMessage)
		})
	}
}

func TestCreateUser_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodPost, "/users", `{"userName":`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ErrInvalidJSON.Error(), decodeResult(t, rec).ErrorMessage)
}

func TestCreateUser_UnknownRoleLabel(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodPost, "/users", `{"userName":"a","userRole":"Root"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateUser_InvalidTokenRejected(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().VerifyToken(gomock.Any(), "expired").Return(models.Claims{}, models.ErrUnauthorized)

	rec := serve(h, http.MethodPost, "/users", newUserBody, "expired")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ---- PUT /users ----

func TestUpdateUser_NotSupported(t *testing.T) {
	h, m := newTestHandler(t)
	m.users.EXPECT().Update(gomock.Any(), gomock.Any()).Return(service.ErrUpdateNotSupported)

	rec := serve(h, http.MethodPut, "/users", newUserBody, "")

	require.Equal(t, http.StatusNotImplemented, rec.Code)
	res := decodeResult(t, rec)
	assert.False(t, res.Result)
	assert.Equal(t, "Updating users is not supported!", res.ErrorMessage)
}

// ---- DELETE /users ----

func TestDeleteUser_Administrator(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().VerifyToken(gomock.Any(), "tok").Return(claimsFor("u-0", "demo", models.RoleAdministrator), nil)
	m.users.EXPECT().Remove(gomock.Any(), "u-9").Return(nil)

	rec := serve(h, http.MethodDelete, "/users?userId=u-9", "", "tok")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeResult(t, rec).Result)
}

func TestDeleteUser_NotFound(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().VerifyToken(gomock.Any(), "tok").Return(claimsFor("u-0", "demo", models.RoleAdministrator), nil)
	m.users.EXPECT().Remove(gomock.Any(), "missing").Return(models.NewError(models.ErrNotFound, "User not found!"))

	rec := serve(h, http.MethodDelete, "/users?userId=missing", "", "tok")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User not found!", decodeResult(t, rec).ErrorMessage)
}

func TestDeleteUser_NonAdministratorForbidden(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().VerifyToken(gomock.Any(), "tok").Return(claimsFor("u-1", "bob", models.RoleUser), nil)
	// no Remove expectation: the service must not be reached

	rec := serve(h, http.MethodDelete, "/users?userId=u-9", "", "tok")

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, ErrAdministratorRequired.Error(), decodeResult(t, rec).ErrorMessage)
}

func TestDeleteUser_Anonymous(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodDelete, "/users?userId=u-9", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func ptr[T any](v T) *T { return &v }
