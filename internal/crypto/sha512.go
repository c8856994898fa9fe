package crypto

import (
	"crypto/sha512"
	"encoding/base64"
)

type sha512Hasher struct{}

// NewSHA512Hasher returns the default hasher: base64(SHA-512(salt + password)).
// No key stretching is applied; see [NewArgon2idHasher] for a work-factor
// alternative.
func NewSHA512Hasher() PasswordHasher {
	return sha512Hasher{}
}

func (sha512Hasher) GenerateSalt() (string, error) {
	return generateSalt()
}

func (sha512Hasher) Hash(password, salt string) (string, error) {
	if err := checkInput(password, salt); err != nil {
		return "", err
	}
	sum := sha512.Sum512([]byte(salt + password))
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

func (h sha512Hasher) Verify(password, salt, expectedHash string) (bool, error) {
	return verifyWith(h, password, salt, expectedHash)
}
