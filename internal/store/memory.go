// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-pass-auth/internal/crypto"
	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/internal/utils"
	"github.com/MKhiriev/go-pass-auth/models"
)

// MemoryStore is an in-process user table. It is an explicit handle: every
// repository built on the same MemoryStore sees the same users, and
// separate stores never share state.
type MemoryStore struct {
	mu     sync.RWMutex
	byID   map[string]models.User
	byName map[string]string // user name -> id
	ids    utils.IDGenerator

	seedOnce sync.Once
	seedErr  error
}

// NewMemoryStore returns an empty store.
func NewMemoryStore(ids utils.IDGenerator) *MemoryStore {
	return &MemoryStore{
		byID:   make(map[string]models.User),
		byName: make(map[string]string),
		ids:    ids,
	}
}

// Len returns the number of stored users.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// seed inserts the demo administrator the first time it is called on s.
// Later calls return the outcome of the first one.
func (s *MemoryStore) seed(ctx context.Context, repo UserRepository, hasher crypto.PasswordHasher) error {
	s.seedOnce.Do(func() {
		s.seedErr = SeedDemoUser(ctx, repo, hasher)
	})
	return s.seedErr
}

type memoryUserRepository struct {
	store  *MemoryStore
	logger *logger.Logger
}

// NewMemoryUserRepository returns a [UserRepository] over s. When hasher is
// non-nil the demo administrator is seeded, once per store no matter how
// many repositories are created on it.
func NewMemoryUserRepository(ctx context.Context, s *MemoryStore, hasher crypto.PasswordHasher, log *logger.Logger) (UserRepository, error) {
	repo := &memoryUserRepository{store: s, logger: log}

	if hasher != nil {
		if err := s.seed(ctx, repo, hasher); err != nil {
			return nil, err
		}
	}

	log.Debug().Int("users", s.Len()).Msg("memory user repository created")
	return repo, nil
}

func (r *memoryUserRepository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.byID[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (r *memoryUserRepository) GetUserByName(ctx context.Context, userName string) (models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.byName[userName]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return r.store.byID[id], nil
}

func (r *memoryUserRepository) InsertUser(ctx context.Context, user models.User) (models.User, error) {
	if !user.IsPasswordEncrypted {
		return models.User{}, ErrPasswordNotEncrypted
	}
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.byName[user.UserName]; exists {
		return models.User{}, errUserAlreadyExists(user.UserName)
	}

	user.UserID = r.store.ids.Generate()
	user.Password, user.PasswordConfirm = "", ""

	r.store.byID[user.UserID] = user
	r.store.byName[user.UserName] = user.UserID

	logger.FromContext(ctx).Debug().Str("user_id", user.UserID).Msg("user inserted")
	return user, nil
}

func (r *memoryUserRepository) RemoveUser(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.byID[id]
	if !ok {
		return ErrUserNotFound
	}

	delete(r.store.byID, id)
	delete(r.store.byName, user.UserName)
	return nil
}
