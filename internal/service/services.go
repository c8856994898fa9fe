package service

import (
	"github.com/MKhiriev/go-pass-auth/internal/config"
	"github.com/MKhiriev/go-pass-auth/internal/crypto"
	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/internal/store"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	TokenService   TokenService
	AppInfoService AppInfoService
}

// NewServices wires every service on top of storages. The user service is
// decorated as metrics(validation(core)).
func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	tokens, err := NewTokenService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	users := NewUserService(storages.UserRepository, hasher, logger)
	users = NewUserValidationService().Wrap(users)
	users = NewUserMetricsService().Wrap(users)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, tokens, logger),
		UserService:    users,
		TokenService:   tokens,
		AppInfoService: appInfo,
	}, nil
}
