// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every layer. Concrete errors wrap one of these so
// that callers can classify them with [errors.Is].
var (
	// ErrValidation marks missing or malformed input detected before any
	// store or hashing work is done.
	ErrValidation = errors.New("validation error")

	// ErrDuplicateUser is returned when a user with the same user name
	// already exists.
	ErrDuplicateUser = errors.New("duplicate user")

	// ErrNotFound is returned when a lookup or removal targets a user that
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized marks failed credential checks and expired, revoked or
	// otherwise invalid tokens.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when an authenticated caller lacks the role
	// required by an operation.
	ErrForbidden = errors.New("forbidden")

	// ErrStoreFault wraps failures of the backing persistence layer.
	ErrStoreFault = errors.New("store fault")

	// ErrNotSupported is returned by operations that are intentionally not
	// implemented, such as updating a user in place.
	ErrNotSupported = errors.New("operation not supported")

	// ErrInvalidArgument marks contract violations by the caller of the
	// hasher or token components (empty password, missing salt, empty key).
	ErrInvalidArgument = errors.New("invalid argument")
)

// Error is a taxonomy error carrying the exact message shown to API callers.
// errors.Is matches it against its Kind.
type Error struct {
	Kind    error
	Message string
}

// NewError returns an *Error of the given kind with a formatted message.
func NewError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}
