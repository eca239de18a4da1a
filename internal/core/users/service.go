package users

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"Labeddit/internal/auth"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	passwordRegex = regexp.MustCompile(`^[a-zA-Z0-9]{8,12}$`)
	letterRegex   = regexp.MustCompile(`[a-zA-Z]`)
	digitRegex    = regexp.MustCompile(`[0-9]`)
)

type userService struct {
	userRepo UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   *slog.Logger
	newID    func() string
	now      func() time.Time
}

// NewUserService creates a new user service
func NewUserService(userRepo UserRepository, hasher PasswordHasher, tokens TokenIssuer, logger *slog.Logger) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

// CreateUser registers a new account and returns a token for it
func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) (*CreateUserResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Role == "" {
		req.Role = RoleNormal
	}

	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	id := s.newID()

	// Identifier reuse check, mirrors the post path
	if _, err := s.userRepo.GetByID(ctx, id); err == nil {
		return nil, ErrUserAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check user id: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:           id,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.CreateToken(auth.TokenPayload{ID: user.ID, Name: user.Name, Role: user.Role})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID, "role", user.Role)

	return &CreateUserResponse{
		Message: "user registered successfully",
		Token:   token,
		User: UserSummary{
			ID:        user.ID,
			Name:      user.Name,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

// Login checks credentials and returns a fresh token
func (s *userService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" {
		return nil, NewValidationError("email", "required")
	}
	if req.Password == "" {
		return nil, NewValidationError("password", "required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !s.hasher.Compare(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.CreateToken(auth.TokenPayload{ID: user.ID, Name: user.Name, Role: user.Role})
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Message:  "login successful",
		UserName: user.Name,
		Token:    token,
	}, nil
}

// GetUserByID retrieves a user by id
func (s *userService) GetUserByID(ctx context.Context, id string) (*User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewValidationError("id", "required")
	}
	return s.userRepo.GetByID(ctx, id)
}

func validateCreateRequest(req CreateUserRequest) error {
	if req.Name == "" {
		return NewValidationError("name", "required")
	}
	if !emailRegex.MatchString(req.Email) {
		return NewValidationError("email", "must be a valid email address")
	}
	if err := ValidatePassword(req.Password); err != nil {
		return err
	}
	if req.Role != RoleNormal && req.Role != RoleAdmin {
		return NewValidationError("role", "must be NORMAL or ADMIN")
	}
	return nil
}

// ValidatePassword enforces 8-12 alphanumeric characters with at least one letter and one digit
func ValidatePassword(password string) error {
	if !passwordRegex.MatchString(password) {
		return NewValidationError("password", "must be 8 to 12 letters or digits")
	}
	if !letterRegex.MatchString(password) || !digitRegex.MatchString(password) {
		return NewValidationError("password", "must contain at least one letter and one digit")
	}
	return nil
}
