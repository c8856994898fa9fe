package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/internal/utils"
	"github.com/MKhiriev/go-pass-auth/models"
)

// auth rejects the request with 401 unless it carries a valid bearer token.
// The verified claims are stored in the request context; downstream handlers
// read the caller's identity from there and nowhere else.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logger.FromRequest(r).Err(ErrEmptyAuthorizationHeader).Send()
			writeFailureWithStatus(w, r, ErrEmptyAuthorizationHeader, http.StatusUnauthorized)
			return
		}

		claims, err := h.verifyAuthHeader(r, authHeader)
		if err != nil {
			writeFailureWithStatus(w, r, err, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithClaims(r.Context(), claims)))
	})
}

// optionalAuth is auth for routes that also serve anonymous callers. A
// missing header passes through without claims; a present but invalid one
// is still rejected.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := h.verifyAuthHeader(r, authHeader)
		if err != nil {
			writeFailureWithStatus(w, r, err, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithClaims(r.Context(), claims)))
	})
}

// requireRole must run after auth. It answers 403 when the caller's role
// claim is not role.
func (h *Handler) requireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := utils.GetClaimsFromContext(r.Context())
			if !ok {
				writeFailureWithStatus(w, r, ErrEmptyAuthorizationHeader, http.StatusUnauthorized)
				return
			}

			if claims.UserRole() != role {
				logger.FromRequest(r).Warn().
					Str("user_id", claims.Subject).
					Str("role", claims.Role).
					Str("required_role", role.String()).
					Msg("access denied")
				writeFailure(w, r, ErrAdministratorRequired)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (h *Handler) verifyAuthHeader(r *http.Request, authHeader string) (models.Claims, error) {
	log := logger.FromRequest(r)

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		log.Err(err).Msg("malformed authorization header")
		return models.Claims{}, ErrInvalidAuthorizationHeader
	}

	claims, err := h.services.AuthService.VerifyToken(r.Context(), tokenString)
	if err != nil {
		log.Err(err).Msg("token rejected")
		return models.Claims{}, ErrInvalidToken
	}

	return claims, nil
}
