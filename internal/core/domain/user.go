package domain

import "errors"

const (
	// RoleAdmin is the only privileged role; the guard performs an exact match.
	RoleAdmin = "admin"

	// AdminUsername is reserved for the bootstrap seeder. The registration
	// path must never create it.
	AdminUsername = "admin"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUserExists       = errors.New("user already exists")
	ErrPasswordMismatch = errors.New("password mismatch")
	ErrAdminReserved    = errors.New("admin username is reserved")
	ErrNotAllowed       = errors.New("admin access only")
)

// User models an account in the credential store.
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}
