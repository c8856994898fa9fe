// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. All violations are reported
// together.
func (cfg *StructuredConfig) validate() error {
	return errors.Join(
		cfg.App.validate(),
		cfg.Storage.validate(),
		cfg.Server.validate(),
	)
}

func (a App) validate() error {
	var errs []error

	if len(a.TokenSignKey) < MinTokenSignKeyLength {
		errs = append(errs, fmt.Errorf("%w: token sign key must be at least %d bytes", ErrInvalidAppConfigs, MinTokenSignKeyLength))
	}
	if a.TokenIssuer == "" {
		errs = append(errs, fmt.Errorf("%w: token issuer is required", ErrInvalidAppConfigs))
	}
	if a.TokenAudience == "" {
		errs = append(errs, fmt.Errorf("%w: token audience is required", ErrInvalidAppConfigs))
	}
	if a.TokenExpiryInDays < 1 {
		errs = append(errs, fmt.Errorf("%w: token expiry must be at least one day", ErrInvalidAppConfigs))
	}

	switch a.PasswordHasher {
	case HasherSHA512, HasherArgon2id:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown password hasher %q", ErrInvalidAppConfigs, a.PasswordHasher))
	}

	return errors.Join(errs...)
}

func (s Storage) validate() error {
	switch s.Provider {
	case ProviderMemory:
		return nil
	case ProviderPostgres, ProviderSQLite:
		if s.DB.DSN == "" {
			return fmt.Errorf("%w: provider %q requires a DSN", ErrInvalidStorageConfigs, s.Provider)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidStorageConfigs, s.Provider)
	}
}

func (s Server) validate() error {
	if s.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}
	if s.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
