package utils

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-auth/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken signs claims with HMAC-SHA256 and returns the compact
// token string.
//
// Returns models.ErrInvalidArgument if signKey is empty.
//
//	signed, err := utils.GenerateJWTToken(claims, "secret")
func GenerateJWTToken(claims models.Claims, signKey string) (string, error) {
	if signKey == "" {
		return "", fmt.Errorf("%w: empty token sign key", models.ErrInvalidArgument)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return signed, nil
}

// JWTValidation lists what ValidateAndParseJWTToken checks besides the
// signature.
type JWTValidation struct {
	SignKey  string
	Issuer   string
	Audience string

	// Now overrides the clock used for the expiry check. Nil means time.Now.
	Now func() time.Time
}

// ValidateAndParseJWTToken verifies the signature (HS256 only), issuer,
// audience and expiry of tokenString and returns its claims.
//
// Every failure wraps models.ErrUnauthorized.
func ValidateAndParseJWTToken(tokenString string, v JWTValidation) (models.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(v.Issuer),
		jwt.WithAudience(v.Audience),
		jwt.WithExpirationRequired(),
	}
	if v.Now != nil {
		opts = append(opts, jwt.WithTimeFunc(v.Now))
	}

	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(v.SignKey), nil
	}, opts...)
	if err != nil {
		return models.Claims{}, fmt.Errorf("%w: error occurred validating and parsing token: %w", models.ErrUnauthorized, err)
	}

	if claims.Subject == "" {
		return models.Claims{}, fmt.Errorf("%w: empty subject", models.ErrUnauthorized)
	}

	return *claims, nil
}

// ParseClaimsUnverified decodes the payload segment of tokenString without
// checking its signature, issuer or expiry. Use it for read-only inspection
// only; trust decisions go through ValidateAndParseJWTToken.
//
// Payload segments with stripped base64 padding are accepted.
func ParseClaimsUnverified(tokenString string) (models.Claims, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return models.Claims{}, fmt.Errorf("%w: token must have 3 segments, got %d", models.ErrInvalidArgument, len(parts))
	}

	payload := parts[1]
	if m := len(payload) % 4; m != 0 {
		payload += strings.Repeat("=", 4-m)
	}

	raw, err := base64.URLEncoding.DecodeString(payload)
	if err != nil {
		return models.Claims{}, fmt.Errorf("%w: decode payload: %w", models.ErrInvalidArgument, err)
	}

	var claims models.Claims
	if err := json.Unmarshal(raw, &claims); err != nil {
		return models.Claims{}, fmt.Errorf("%w: unmarshal payload: %w", models.ErrInvalidArgument, err)
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
