package posts

import (
	"errors"
	"fmt"
)

// Sentinel errors for common post operations
var (
	// ErrPostNotFound is returned when no post has the requested id
	ErrPostNotFound = errors.New("post not found")

	// ErrPostAlreadyExists is returned when a freshly assigned id is already taken
	ErrPostAlreadyExists = errors.New("post already exists")

	// ErrForbidden is returned when the requester does not own the post
	ErrForbidden = errors.New("not allowed to modify this post")

	// ErrSelfReaction is returned when a creator reacts to their own post.
	// It is a Forbidden kind: errors.Is(ErrSelfReaction, ErrForbidden) holds.
	ErrSelfReaction = fmt.Errorf("%w: cannot react to own post", ErrForbidden)
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
