package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-auth/internal/crypto"
	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/internal/metrics"
	"github.com/MKhiriev/go-pass-auth/internal/store"
	"github.com/MKhiriev/go-pass-auth/models"
)

// authService is the concrete implementation of AuthService.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	tokens         TokenService

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. The returned service is safe
// for concurrent use; all state is read-only after construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, tokens TokenService, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		logger:         logger,
	}
}

// Login authenticates userName/password and issues a token.
//
// Returns:
//   - ErrInvalidCredentials if the user does not exist, the password does
//     not match, or either input is empty. The message is identical in all
//     three cases.
//   - the underlying error for store, hashing or signing faults.
func (a *authService) Login(ctx context.Context, userName, password string) (token models.Token, err error) {
	log := logger.FromContext(ctx)
	defer func() { metrics.RecordLogin(err) }()

	if userName == "" || password == "" {
		return models.Token{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.GetUserByName(ctx, userName)
	if errors.Is(err, models.ErrNotFound) {
		log.Info().Str("user_name", userName).Msg("login rejected: unknown user")
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("user_name", userName).Msg("user search by name failed")
		return models.Token{}, err
	}

	ok, err := a.hasher.Verify(password, user.PasswordSalt, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("password verification failed")
		return models.Token{}, err
	}
	if !ok {
		log.Info().Str("user_id", user.UserID).Msg("login rejected: wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	token, err = a.tokens.Issue(ctx, user)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("token issuance failed")
		return models.Token{}, err
	}

	return token, nil
}

// Logout revokes the caller's token. It succeeds unless revocation itself
// fails.
func (a *authService) Logout(ctx context.Context, claims models.Claims) error {
	if err := a.tokens.Revoke(ctx, claims); err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", claims.Subject).Msg("logout failed")
		return err
	}
	return nil
}

func (a *authService) VerifyToken(ctx context.Context, tokenString string) (models.Claims, error) {
	return a.tokens.Verify(ctx, tokenString)
}
