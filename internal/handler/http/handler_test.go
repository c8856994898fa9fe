package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/internal/mock"
	"github.com/MKhiriev/go-pass-auth/internal/service"
	"github.com/MKhiriev/go-pass-auth/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testMocks struct {
	auth    *mock.MockAuthService
	users   *mock.MockUserService
	appInfo *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (*Handler, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		auth:    mock.NewMockAuthService(ctrl),
		users:   mock.NewMockUserService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	svcs := &service.Services{
		AuthService:    m.auth,
		UserService:    m.users,
		AppInfoService: m.appInfo,
	}
	return NewHandler(svcs, logger.Nop()), m
}

func serve(h *Handler, method, target, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func decodeResult(t *testing.T, rec *httptest.ResponseRecorder) models.Result {
	t.Helper()
	var res models.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res
}

func claimsFor(id, name string, role models.Role) models.Claims {
	c := models.Claims{Name: name, Role: role.String()}
	c.Subject = id
	c.ID = "jti-" + id
	return c
}

// ─────────────────────────────────────────────
// NewHandler / Init
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svcs, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, log, h.logger)
}

func TestInit_RegistersRoutes(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	want := map[string][]string{
		"/authentication/login":  {http.MethodPost},
		"/authentication/logout": {http.MethodPost},
		"/authentication/me":     {http.MethodGet},
		"/users":                 {http.MethodPost, http.MethodPut, http.MethodDelete},
		"/version":               {http.MethodGet},
	}

	got := map[string]map[string]bool{}
	for _, route := range router.Routes() {
		if got[route.Pattern] == nil {
			got[route.Pattern] = map[string]bool{}
		}
		for method := range route.Handlers {
			got[route.Pattern][method] = true
		}
	}

	for pattern, methods := range want {
		for _, method := range methods {
			assert.True(t, got[pattern][method], "%s %s is not registered", method, pattern)
		}
	}
}

func TestInit_UnknownMethodIs404(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodPatch, "/users", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_TraceIDEchoed(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
}

func TestInit_RecoversFromPanic(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).DoAndReturn(func(_ any) string {
		panic("boom")
	})

	rec := serve(h, http.MethodGet, "/version", "", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// version / metrics
// ─────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v2.0.0-beta+build.42")

	rec := serve(h, http.MethodGet, "/version", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v2.0.0-beta+build.42", rec.Body.String())
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))
}

func TestMetricsEndpoint(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	serve(h, http.MethodGet, "/version", "", "")
	rec := serve(h, http.MethodGet, "/metrics", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "auth_http_requests_total")
	assert.Contains(t, rec.Body.String(), `route="/version"`)
}

// ─────────────────────────────────────────────
// errorStatusMap
// ─────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", models.NewError(models.ErrValidation, "User name is required!"), http.StatusBadRequest},
		{"duplicate", models.NewError(models.ErrDuplicateUser, "User demo already exists!"), http.StatusBadRequest},
		{"not found", models.NewError(models.ErrNotFound, "User not found!"), http.StatusBadRequest},
		{"unauthorized", ErrInvalidToken, http.StatusUnauthorized},
		{"forbidden", ErrAdministratorRequired, http.StatusForbidden},
		{"not supported", service.ErrUpdateNotSupported, http.StatusNotImplemented},
		{"store fault", models.ErrStoreFault, http.StatusInternalServerError},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func newRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

func record(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}
