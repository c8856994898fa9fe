package service

import (
	"errors"

	"github.com/MKhiriev/go-pass-auth/models"
)

var (
	// ErrInvalidCredentials is the single login failure for unknown users
	// and wrong passwords alike.
	ErrInvalidCredentials = models.NewError(models.ErrUnauthorized, "User name or password not valid!")

	ErrTokenRevoked = models.NewError(models.ErrUnauthorized, "Token has been revoked!")

	ErrUpdateNotSupported = models.NewError(models.ErrNotSupported, "Updating users is not supported!")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
