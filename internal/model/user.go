package model

import (
	"errors"
	"fmt"
)

var ErrInvalidRole = errors.New("model: invalid user role")

type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}

// User is a directory entry. The directory is owned outside the engine and
// treated as read-only reference data; the core never creates or mutates
// users.
type User struct {
	ID         string
	Name       string
	Email      string
	Role       Role
	Department Department
	// Password is the out-of-band credential checked on Admin login.
	// User-role entries sign in without one.
	Password string
}

func (u User) Validate() error {
	if u.ID == "" {
		return errors.New("model: user id is required")
	}
	if u.Name == "" {
		return errors.New("model: user name is required")
	}
	if !u.Role.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, u.Role)
	}
	if !u.Department.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidDepartment, u.Department)
	}
	return nil
}
