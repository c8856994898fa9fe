package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-auth/internal/config"
	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/internal/utils"
	"github.com/MKhiriev/go-pass-auth/models"
)

const (
	loginPath   = "/authentication/login"
	logoutPath  = "/authentication/logout"
	mePath      = "/authentication/me"
	usersPath   = "/users"
	versionPath = "/version"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter returns the REST implementation of [ServerAdapter].
// cfg.HTTPAddress may omit the scheme, in which case http is assumed.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login keeps the returned token on success. On a rejected login the decoded
// response is returned together with the mapped error.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var out models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		SetError(&out).
		Post(loginPath)
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return out, err
	}

	h.SetToken(out.AccessToken)
	h.logger.Debug().Str("user_name", req.UserName).Msg("logged in")
	return out, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) (models.Result, error) {
	if h.Token() == "" {
		return models.Result{}, ErrNotLoggedIn
	}

	res, err := h.do(h.authedRequest(ctx), resty.MethodPost, logoutPath)
	if err != nil {
		return res, err
	}

	h.SetToken("")
	return res, nil
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Result, error) {
	return h.do(h.authedRequest(ctx).SetBody(user), resty.MethodPost, usersPath)
}

func (h *httpServerAdapter) RemoveUser(ctx context.Context, userID string) (models.Result, error) {
	req := h.authedRequest(ctx).SetQueryParam("userId", userID)
	return h.do(req, resty.MethodDelete, usersPath)
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.MeResponse, error) {
	var out models.MeResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&out).
		Get(mePath)
	if err != nil {
		return models.MeResponse{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MeResponse{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// do executes a request answered with the plain {result, errorMessage}
// payload.
func (h *httpServerAdapter) do(req *resty.Request, method, path string) (models.Result, error) {
	var out models.Result

	resp, err := req.SetResult(&out).SetError(&out).Execute(method, path)
	if err != nil {
		return models.Result{}, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return out, err
	}

	return out, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
