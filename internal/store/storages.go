package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-auth/internal/config"
	"github.com/MKhiriev/go-pass-auth/internal/crypto"
	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/internal/utils"
)

// Storages bundles the repositories of the selected backend.
type Storages struct {
	UserRepository UserRepository

	db *DB // nil for the memory backend
}

// NewStorages opens the backend selected by cfg.Storage.Provider, applies
// migrations for relational backends and seeds the demo administrator
// unless cfg.App.SkipDemoUser is set.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, hasher crypto.PasswordHasher, log *logger.Logger) (*Storages, error) {
	ids := utils.NewUUIDGenerator()

	seedHasher := hasher
	if cfg.App.SkipDemoUser {
		seedHasher = nil
	}

	var db *DB
	var err error

	switch cfg.Storage.Provider {
	case config.ProviderMemory, "":
		repo, err := NewMemoryUserRepository(ctx, NewMemoryStore(ids), seedHasher, log)
		if err != nil {
			return nil, err
		}
		log.Info().Str("provider", config.ProviderMemory).Msg("storage initialized")
		return &Storages{UserRepository: repo}, nil
	case config.ProviderPostgres:
		db, err = NewConnectPostgres(ctx, cfg.Storage.DB, log)
	case config.ProviderSQLite:
		db, err = NewConnectSQLite(ctx, cfg.Storage.DB, log)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Storage.Provider)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	repo := NewUserRepository(db, ids, log)
	if seedHasher != nil {
		if err := SeedDemoUser(ctx, repo, seedHasher); err != nil {
			db.Close()
			return nil, err
		}
	}

	log.Info().Str("provider", cfg.Storage.Provider).Msg("storage initialized")
	return &Storages{UserRepository: repo, db: db}, nil
}

// Ping checks the backing database. The memory backend is always reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.Ping(ctx)
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
