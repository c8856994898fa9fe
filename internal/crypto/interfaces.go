package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher produces and checks salted password hashes.
//
// Implementations are stateless and safe for concurrent use: every call
// works only on its explicit inputs.
//
//	salt := GenerateSalt()           (once per user, at creation)
//	hash := Hash(password, salt)      (stored next to the salt)
//	ok   := Verify(password, salt, hash)
type PasswordHasher interface {
	// GenerateSalt returns SaltSize bytes from the OS CSPRNG encoded with
	// standard base64. Each call returns an independent value.
	GenerateSalt() (string, error)

	// Hash is a deterministic function of (password, salt). It fails with
	// models.ErrInvalidArgument when either input is empty.
	Hash(password, salt string) (string, error)

	// Verify recomputes Hash(password, salt) and compares it with
	// expectedHash in constant time.
	Verify(password, salt, expectedHash string) (bool, error)
}
