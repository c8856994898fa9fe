// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"

	"golang.org/x/crypto/argon2"
)

// argon2idHasher derives the hash with Argon2id. The tuning parameters live
// in the struct so they can be adjusted per deployment target.
type argon2idHasher struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
}

// NewArgon2idHasher constructs a hasher with the Argon2id parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewArgon2idHasher() PasswordHasher {
	return &argon2idHasher{
		time:    1,
		memory:  64 * 1024, // 64 MiB
		threads: 4,
		keyLen:  32, // 256 bits
	}
}

func (h *argon2idHasher) GenerateSalt() (string, error) {
	return generateSalt()
}

// Hash uses the encoded salt string as the Argon2 salt so that salts stay
// interchangeable with the SHA-512 hasher.
func (h *argon2idHasher) Hash(password, salt string) (string, error) {
	if err := checkInput(password, salt); err != nil {
		return "", err
	}
	key := argon2.IDKey([]byte(password), []byte(salt), h.time, h.memory, h.threads, h.keyLen)
	return base64.StdEncoding.EncodeToString(key), nil
}

func (h *argon2idHasher) Verify(password, salt, expectedHash string) (bool, error) {
	return verifyWith(h, password, salt, expectedHash)
}
