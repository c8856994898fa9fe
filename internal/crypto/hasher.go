// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-auth/models"
)

// SaltSize is the number of random bytes behind every password salt.
const SaltSize = 48

// Names accepted by [NewPasswordHasher].
const (
	SHA512   = "sha512"
	Argon2id = "argon2id"
)

// NewPasswordHasher returns the hasher registered under name.
func NewPasswordHasher(name string) (PasswordHasher, error) {
	switch name {
	case SHA512, "":
		return NewSHA512Hasher(), nil
	case Argon2id:
		return NewArgon2idHasher(), nil
	default:
		return nil, fmt.Errorf("%w: unknown password hasher %q", models.ErrInvalidArgument, name)
	}
}

// EncryptUser replaces the plain-text password of u with a freshly salted
// hash. Users already carrying a hash are left untouched, so the call is
// safe to repeat.
func EncryptUser(h PasswordHasher, u *models.User) error {
	if u == nil {
		return fmt.Errorf("%w: nil user", models.ErrInvalidArgument)
	}
	if u.IsPasswordEncrypted {
		return nil
	}

	salt, err := h.GenerateSalt()
	if err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}
	hash, err := h.Hash(u.Password, salt)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	u.PasswordSalt = salt
	u.PasswordHash = hash
	u.Password = ""
	u.PasswordConfirm = ""
	u.IsPasswordEncrypted = true
	return nil
}

func generateSalt() (string, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(salt), nil
}

func checkInput(password, salt string) error {
	if password == "" {
		return fmt.Errorf("%w: empty password", models.ErrInvalidArgument)
	}
	if salt == "" {
		return fmt.Errorf("%w: missing salt", models.ErrInvalidArgument)
	}
	return nil
}

// verifyWith is shared by both hashers: hash and compare in constant time.
func verifyWith(h PasswordHasher, password, salt, expectedHash string) (bool, error) {
	actual, err := h.Hash(password, salt)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(actual), []byte(expectedHash)) == 1, nil
}
