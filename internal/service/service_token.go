// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/patrickmn/go-cache"

	"github.com/MKhiriev/go-pass-auth/internal/config"
	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/internal/metrics"
	"github.com/MKhiriev/go-pass-auth/internal/utils"
	"github.com/MKhiriev/go-pass-auth/models"
)

// tokenService is the HS256 implementation of [TokenService].
//
// Revoked token ids are kept in an in-process denylist keyed by jti with the
// token's expiry as value. Entries are judged and purged against the
// service clock, never against the cache's wall-clock TTL, so a revocation
// lasts exactly as long as the token it blocks. The denylist is per process:
// revocations are not shared between replicas.
type tokenService struct {
	signKey  string
	issuer   string
	audience string
	lifetime time.Duration

	now     func() time.Time
	ids     utils.IDGenerator
	revoked *cache.Cache

	logger *logger.Logger
}

// TokenOption customises a token service.
type TokenOption func(*tokenService)

// WithClock replaces time.Now for issuance, expiry checks and denylist
// expiry.
func WithClock(now func() time.Time) TokenOption {
	return func(s *tokenService) { s.now = now }
}

// WithIDGenerator replaces the generator of token ids ("jti").
func WithIDGenerator(ids utils.IDGenerator) TokenOption {
	return func(s *tokenService) { s.ids = ids }
}

// NewTokenService returns a [TokenService] configured from cfg. An empty
// signing key is a programming error and fails with
// models.ErrInvalidArgument.
func NewTokenService(cfg config.App, logger *logger.Logger, opts ...TokenOption) (TokenService, error) {
	if cfg.TokenSignKey == "" {
		return nil, fmt.Errorf("%w: empty token sign key", models.ErrInvalidArgument)
	}
	if cfg.TokenLifetime() <= 0 {
		return nil, fmt.Errorf("%w: token lifetime must be positive", models.ErrInvalidArgument)
	}

	s := &tokenService{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		audience: cfg.TokenAudience,
		lifetime: cfg.TokenLifetime(),
		now:      time.Now,
		ids:      utils.NewUUIDGenerator(),
		revoked:  cache.New(cache.NoExpiration, 0),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *tokenService) Issue(ctx context.Context, user models.User) (models.Token, error) {
	if user.UserID == "" {
		return models.Token{}, fmt.Errorf("%w: user has no id", models.ErrInvalidArgument)
	}

	now := s.now()
	expiresAt := now.Add(s.lifetime)

	claims := models.Claims{
		Name: user.UserName,
		Role: user.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        s.ids.Generate(),
		},
	}

	signed, err := utils.GenerateJWTToken(claims, s.signKey)
	if err != nil {
		return models.Token{}, err
	}

	metrics.RecordTokenIssued()
	logger.FromContext(ctx).Debug().
		Str("user_id", user.UserID).
		Str("jti", claims.ID).
		Time("expires_at", expiresAt).
		Msg("token issued")

	return models.Token{
		SignedString: signed,
		ExpiresAt:    claims.ExpiresAtTime(),
		Claims:       claims,
	}, nil
}

func (s *tokenService) Verify(ctx context.Context, tokenString string) (models.Claims, error) {
	claims, err := utils.ValidateAndParseJWTToken(tokenString, utils.JWTValidation{
		SignKey:  s.signKey,
		Issuer:   s.issuer,
		Audience: s.audience,
		Now:      s.now,
	})
	if err != nil {
		return models.Claims{}, err
	}

	if claims.ID != "" && s.isRevoked(claims.ID) {
		return models.Claims{}, ErrTokenRevoked
	}

	return claims, nil
}

func (s *tokenService) Revoke(ctx context.Context, claims models.Claims) error {
	if claims.ID == "" {
		return fmt.Errorf("%w: token has no id", models.ErrInvalidArgument)
	}

	now := s.now()
	expiresAt := claims.ExpiresAtTime()
	s.purgeRevoked(now)

	if !expiresAt.After(now) {
		// already expired, Verify rejects it on its own
		return nil
	}

	s.revoked.Set(claims.ID, expiresAt, cache.NoExpiration)
	metrics.RecordTokenRevoked()
	logger.FromContext(ctx).Debug().Str("jti", claims.ID).Time("expires_at", expiresAt).Msg("token revoked")

	return nil
}

func (s *tokenService) isRevoked(id string) bool {
	v, ok := s.revoked.Get(id)
	if !ok {
		return false
	}
	expiresAt, ok := v.(time.Time)
	return ok && s.now().Before(expiresAt)
}

// purgeRevoked drops denylist entries whose token has expired at now.
func (s *tokenService) purgeRevoked(now time.Time) {
	for id, item := range s.revoked.Items() {
		if expiresAt, ok := item.Object.(time.Time); ok && !now.Before(expiresAt) {
			s.revoked.Delete(id)
		}
	}
}

func (s *tokenService) ParseClaims(tokenString string) (models.Claims, error) {
	return utils.ParseClaimsUnverified(tokenString)
}
