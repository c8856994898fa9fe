package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-auth/internal/crypto"
	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/internal/store"
	"github.com/MKhiriev/go-pass-auth/models"
)

type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher

	logger *logger.Logger
}

// NewUserService constructs the core UserService. Input validation is
// layered on top with [NewUserValidationService].
func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// Register hashes the plain-text password (unless already hashed) and
// inserts the user. Cancellation is checked after hashing so that a
// cancelled request never reaches the store. Errors are joined, giving a
// newline-separated message.
func (s *userService) Register(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := crypto.EncryptUser(s.hasher, &user); err != nil {
		log.Err(err).Str("user_name", user.UserName).Msg("password hashing failed")
		return models.User{}, errors.Join(err)
	}

	if err := ctx.Err(); err != nil {
		return models.User{}, errors.Join(err)
	}

	created, err := s.userRepository.InsertUser(ctx, user)
	if err != nil {
		log.Err(err).Str("user_name", user.UserName).Msg("user creation ended with error")
		return models.User{}, errors.Join(err)
	}

	log.Info().Str("user_id", created.UserID).Str("role", created.Role.String()).Msg("user registered")
	return sanitize(created), nil
}

// Remove looks the user up first so that a miss is reported as
// models.ErrNotFound without touching the store.
func (s *userService) Remove(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := s.userRepository.GetUserByID(ctx, id); err != nil {
		log.Err(err).Str("user_id", id).Msg("user lookup before removal failed")
		return errors.Join(err)
	}

	if err := s.userRepository.RemoveUser(ctx, id); err != nil {
		log.Err(err).Str("user_id", id).Msg("user removal failed")
		return errors.Join(err)
	}

	log.Info().Str("user_id", id).Msg("user removed")
	return nil
}

func (s *userService) Update(ctx context.Context, user models.User) error {
	return ErrUpdateNotSupported
}

// sanitize drops credential material before a user leaves the service.
func sanitize(u models.User) models.User {
	u.Password = ""
	u.PasswordConfirm = ""
	u.PasswordHash = ""
	u.PasswordSalt = ""
	return u
}
