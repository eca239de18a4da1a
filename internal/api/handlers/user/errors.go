package user

import (
	"errors"
	"log/slog"
	"net/http"

	"Labeddit/internal/api/handlers"
	"Labeddit/internal/core/users"
)

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, users.ErrUserAlreadyExists):
		handlers.WriteError(w, http.StatusConflict, "UserAlreadyExists", "User already exists")

	case errors.Is(err, users.ErrInvalidCredentials):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidCredentials", "Invalid email or password")

	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusNotFound, "UserNotFound", "User not found")

	case users.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	default:
		slog.Error("unexpected error in user handler",
			"method", r.Method, "path", r.URL.Path, "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
