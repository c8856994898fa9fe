package http

import (
	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/internal/service"
)

// Handler serves the authentication and user management routes. It only
// talks to the auth, user and app-info services; tokens are verified
// through AuthService before any protected route runs.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("auth http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
