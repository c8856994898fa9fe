// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-auth/internal/config"
	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── NewHTTPServerAdapter ────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://auth.example.com/ ", want: "https://auth.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.Adapter{}, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/authentication/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.LoginRequest{UserName: "demo", Password: "demo"}, req)

		writeJSON(t, w, http.StatusOK, models.LoginResponse{Result: true, AccessToken: "a.b.c"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	resp, err := a.Login(context.Background(), models.LoginRequest{UserName: "demo", Password: "demo"})

	require.NoError(t, err)
	assert.True(t, resp.Result)
	assert.Equal(t, "a.b.c", a.Token())
}

func TestLogin_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.LoginResponse{ErrorMessage: "User name or password not valid!"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	resp, err := a.Login(context.Background(), models.LoginRequest{UserName: "demo", Password: "x"})

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "User name or password not valid!")
	assert.Equal(t, "User name or password not valid!", resp.ErrorMessage)
	assert.Empty(t, a.Token())
}

// ── authenticated calls ─────────────────────────────────────────────────────

func TestLogout_SendsTokenAndForgetsIt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/authentication/logout", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.Success())
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(" tok ")

	res, err := a.Logout(context.Background())

	require.NoError(t, err)
	assert.True(t, res.Result)
	assert.Empty(t, a.Token())
}

func TestLogout_WithoutToken(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1")

	_, err := a.Logout(context.Background())

	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestRegister(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var u models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&u))
		assert.Equal(t, "alice", u.UserName)
		assert.Equal(t, "s3cret", u.Password)

		writeJSON(t, w, http.StatusOK, models.Success())
	}))
	defer srv.Close()

	res, err := newTestAdapter(t, srv.URL).Register(context.Background(), models.User{UserName: "alice", Password: "s3cret", Role: models.RoleUser})

	require.NoError(t, err)
	assert.True(t, res.Result)
}

func TestRemoveUser_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "u-9", r.URL.Query().Get("userId"))
		writeJSON(t, w, http.StatusForbidden, models.Result{ErrorMessage: "Administrator role is required!"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	res, err := a.RemoveUser(context.Background(), "u-9")

	require.ErrorIs(t, err, ErrForbidden)
	assert.False(t, res.Result)
	assert.Equal(t, "Administrator role is required!", res.ErrorMessage)
}

func TestMe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/authentication/me", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.MeResponse{Result: true, UserID: "u-0", UserName: "demo", Role: models.RoleAdministrator})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	me, err := a.Me(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "demo", me.UserName)
	assert.Equal(t, models.RoleAdministrator, me.Role)
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("1.2.3"))
	}))
	defer srv.Close()

	v, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", v)
}

// ── mapHTTPError ────────────────────────────────────────────────────────────

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status int
		body   string
		want   error
		msg    string
	}{
		{http.StatusBadRequest, `{"result":false,"errorMessage":"User demo already exists!"}`, ErrBadRequest, "User demo already exists!"},
		{http.StatusUnauthorized, `{"result":false,"errorMessage":"Token is not valid!"}`, ErrUnauthorized, "Token is not valid!"},
		{http.StatusNotFound, ``, ErrNotFound, "Not Found"},
		{http.StatusNotImplemented, `{"result":false,"errorMessage":"Updating users is not supported!"}`, ErrNotImplemented, "Updating users is not supported!"},
		{http.StatusInternalServerError, `plain failure`, ErrInternalServerError, "plain failure"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			resp, err := newTestAdapter(t, srv.URL).client.R().Get("/")
			require.NoError(t, err)

			mapped := mapHTTPError(resp)
			require.ErrorIs(t, mapped, tt.want)
			assert.Contains(t, mapped.Error(), tt.msg)
		})
	}
}
