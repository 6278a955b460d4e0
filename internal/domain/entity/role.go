package entity

import (
	"fmt"
	"strings"
)

// Role is the closed set of user roles in the system.
// All role comparisons go through this type; raw strings from tokens or
// request payloads are normalized with ParseRole first.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// ParseRole normalizes a role string to its canonical lowercase form.
// "Admin", "ADMIN" and "admin" all map to RoleAdmin.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleDoctor:
		return RoleDoctor, nil
	case RolePatient:
		return RolePatient, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RolePatient:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// Actor is the authenticated identity performing a request.
type Actor struct {
	ID   int64
	Role Role
}
