package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/internal/utils"
	"github.com/MKhiriev/go-pass-auth/models"
)

// login answers 200 with the access token, or 400 with the failure message
// for every kind of failure.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeLoginFailure(w, r, ErrInvalidJSON)
		return
	}

	token, err := h.services.AuthService.Login(ctx, req.UserName, req.Password)
	if err != nil {
		writeLoginFailure(w, r, err)
		return
	}

	log.Debug().Str("user_id", token.Claims.Subject).Msg("user successfully logged in")

	if _, err := utils.WriteJSON(w, models.LoginResponse{Result: true, AccessToken: token.SignedString}, http.StatusOK); err != nil {
		log.Err(err).Msg("writing login response")
	}
}

func writeLoginFailure(w http.ResponseWriter, r *http.Request, err error) {
	resp := models.LoginResponse{Result: false, ErrorMessage: err.Error()}
	if _, werr := utils.WriteJSON(w, resp, http.StatusBadRequest); werr != nil {
		logger.FromRequest(r).Err(werr).Msg("writing login response")
	}
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	claims, _ := utils.GetClaimsFromContext(r.Context())

	if err := h.services.AuthService.Logout(r.Context(), claims); err != nil {
		writeFailure(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", claims.Subject).Msg("user logged out")
	writeSuccess(w, r)
}

// me echoes the verified identity of the caller.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	claims, _ := utils.GetClaimsFromContext(r.Context())

	resp := models.MeResponse{
		Result:   true,
		UserID:   claims.Subject,
		UserName: claims.Name,
		Role:     claims.UserRole(),
	}
	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing me response")
	}
}
