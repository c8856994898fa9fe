// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Role is the authorization group a user belongs to. It is carried inside
// issued tokens as the "role" claim and is never managed as a separate
// entity.
type Role int

const (
	RoleNone Role = iota
	RoleUser
	RoleAdministrator
)

var roleLabels = map[Role]string{
	RoleNone:          "None",
	RoleUser:          "User",
	RoleAdministrator: "Administrator",
}

var rolesByLabel = map[string]Role{
	"None":          RoleNone,
	"User":          RoleUser,
	"Administrator": RoleAdministrator,
}

// String returns the label used for the role in token claims and JSON.
func (r Role) String() string {
	if label, ok := roleLabels[r]; ok {
		return label
	}
	return "Role(" + strconv.Itoa(int(r)) + ")"
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	_, ok := roleLabels[r]
	return ok
}

// ParseRole maps a role label to its value. Labels are case-sensitive.
func ParseRole(label string) (Role, error) {
	role, ok := rolesByLabel[label]
	if !ok {
		return RoleNone, fmt.Errorf("%w: unknown role %q", ErrValidation, label)
	}
	return role, nil
}

// MarshalJSON encodes the role as its label.
func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON accepts either the label ("Administrator") or the numeric
// value (2).
func (r *Role) UnmarshalJSON(b []byte) error {
	var label string
	if err := json.Unmarshal(b, &label); err == nil {
		role, err := ParseRole(label)
		if err != nil {
			return err
		}
		*r = role
		return nil
	}

	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("%w: role must be a label or a number", ErrValidation)
	}

	role := Role(n)
	if !role.IsValid() {
		return fmt.Errorf("%w: unknown role %d", ErrValidation, n)
	}
	*r = role
	return nil
}
