package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/internal/utils"
	"github.com/MKhiriev/go-pass-auth/models"
)

// errorStatusMap is checked in order; the first kind matched by errors.Is
// wins. A joined error carrying both a validation and a store failure is
// therefore reported as a store fault.
var errorStatusMap = []struct {
	kind   error
	status int
}{
	{models.ErrStoreFault, http.StatusInternalServerError},
	{models.ErrNotSupported, http.StatusNotImplemented},
	{models.ErrForbidden, http.StatusForbidden},
	{models.ErrUnauthorized, http.StatusUnauthorized},
	{models.ErrValidation, http.StatusBadRequest},
	{models.ErrDuplicateUser, http.StatusBadRequest},
	{models.ErrNotFound, http.StatusBadRequest},
	{models.ErrInvalidArgument, http.StatusBadRequest},
}

func statusFromError(err error) int {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.kind) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// writeFailure renders err as {result:false, errorMessage} with the status
// derived from its kind.
func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	writeFailureWithStatus(w, r, err, statusFromError(err))
}

func writeFailureWithStatus(w http.ResponseWriter, r *http.Request, err error, status int) {
	if _, werr := utils.WriteJSON(w, models.Failure(err), status); werr != nil {
		logger.FromRequest(r).Err(werr).Msg("writing failure response")
	}
}

func writeSuccess(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, models.Success(), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response")
	}
}
