package users

import (
	"context"

	"Labeddit/internal/auth"
)

// UserRepository defines the interface for user data persistence
type UserRepository interface {
	// Create inserts a user. Returns ErrUserAlreadyExists on id or email collision.
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// UserService defines the interface for user business logic
type UserService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*CreateUserResponse, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
}

// TokenIssuer signs bearer tokens for authenticated users
type TokenIssuer interface {
	CreateToken(payload auth.TokenPayload) (string, error)
}

// PasswordHasher hashes and compares passwords. Hashes are opaque to callers.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}
