package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-auth/models"
)

// mapHTTPError returns nil for 2xx responses. Otherwise the errorMessage of
// the {result, errorMessage} body, or the raw body when it is not JSON, is
// wrapped into the sentinel matching the status code.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := errorMessage(resp.Body())
	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusNotImplemented:
		return fmt.Errorf("%w: %s", ErrNotImplemented, msg)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, msg)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
	}
}

func errorMessage(body []byte) string {
	var res models.Result
	if err := json.Unmarshal(body, &res); err == nil && res.ErrorMessage != "" {
		return res.ErrorMessage
	}
	return strings.TrimSpace(string(body))
}
