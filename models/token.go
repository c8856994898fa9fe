package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the typed claim set carried by every access token.
//
// Subject holds the user ID, Name the user name and Role the role label.
// Issuer, audience, expiry, issued-at and token ID come from the embedded
// [jwt.RegisteredClaims].
type Claims struct {
	Name string `json:"name,omitempty"`
	Role string `json:"role,omitempty"`

	jwt.RegisteredClaims
}

// UserRole converts the role claim back into a [Role]. Unknown labels map to
// RoleNone.
func (c Claims) UserRole() Role {
	role, err := ParseRole(c.Role)
	if err != nil {
		return RoleNone
	}
	return role
}

// ExpiresAtTime returns the expiry as a time.Time, or the zero time when the
// claim is absent.
func (c Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// Token is an issued access token together with its expiry.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string

	ExpiresAt time.Time
	Claims    Claims
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
