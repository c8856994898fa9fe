// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes type-safe context keys, JSON response writing, HTTP client
// initialization, JWT signing/verification/decoding and ID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-pass-auth/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key under which the auth middleware stores the
// verified token claims of the caller.
var ClaimsCtxKey = contextKey("claims")

// WithClaims returns a copy of ctx carrying the verified claims.
func WithClaims(ctx context.Context, claims models.Claims) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey, claims)
}

// GetClaimsFromContext retrieves the verified claims from the context.
//
// Returns ok == false when the value is missing or has an unexpected type,
// i.e. when the request did not pass through the auth middleware.
//
//	claims, ok := utils.GetClaimsFromContext(r.Context())
//	if !ok {
//	    // anonymous caller
//	}
func GetClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	return claims, ok
}
