package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrNotImplemented      = errors.New("not implemented")
	ErrInternalServerError = errors.New("internal server error")

	ErrEmptyAddress = errors.New("empty server address")
	ErrNotLoggedIn  = errors.New("not logged in")
)
