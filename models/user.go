package models

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the opaque unique identifier of the user. It is assigned by
	// the repository at insert time and never changes afterwards.
	UserID string `json:"userId"`

	// UserName is the unique, case-sensitive login name.
	UserName string `json:"userName"`

	// Password carries the plain-text password supplied by the client. It is
	// cleared as soon as the password is hashed and is never persisted.
	Password string `json:"password,omitempty"`

	// PasswordConfirm is an optional confirmation of Password. When present
	// it must match Password.
	PasswordConfirm string `json:"passwordConfirm,omitempty"`

	// PasswordHash is base64(digest(PasswordSalt + Password)).
	PasswordHash string `json:"-"`

	// PasswordSalt is the per-user random salt, generated once at creation.
	PasswordSalt string `json:"-"`

	// IsPasswordEncrypted is true once PasswordHash and PasswordSalt hold
	// hashed values. Repositories refuse to persist a user without it.
	IsPasswordEncrypted bool `json:"-"`

	// Role defaults to RoleUser at creation.
	Role Role `json:"userRole"`

	Email   string `json:"email"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// NewUser returns a User with the default role applied.
func NewUser() User {
	return User{Role: RoleUser}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
