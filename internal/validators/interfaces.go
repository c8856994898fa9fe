// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the user store.
//
// [UserValidator] reports every failing field at once; the errors wrap
// models.ErrValidation and their messages are shown to API callers
// newline-joined.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
