package users

import (
	"time"
)

// Role values stored on a user
const (
	RoleNormal = "NORMAL"
	RoleAdmin  = "ADMIN"
)

// User is a registered account. Users are immutable after creation.
type User struct {
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password"`
	Role         string    `json:"role" db:"role"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// CreateUserRequest is the sign-up input
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// UserSummary is the public part of a user returned after sign-up
type UserSummary struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
}

// CreateUserResponse is returned after a successful sign-up
type CreateUserResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}

// LoginRequest is the sign-in input
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned after a successful sign-in
type LoginResponse struct {
	Message  string `json:"message"`
	UserName string `json:"userName"`
	Token    string `json:"token"`
}
