package post

import (
	"errors"
	"log/slog"
	"net/http"

	"Labeddit/internal/api/handlers"
	"Labeddit/internal/core/posts"
	"Labeddit/internal/core/users"
)

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, posts.ErrPostNotFound):
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")

	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusNotFound, "UserNotFound", "User not found")

	case errors.Is(err, posts.ErrSelfReaction):
		handlers.WriteError(w, http.StatusForbidden, "Forbidden", "You cannot react to your own post")

	case errors.Is(err, posts.ErrForbidden):
		handlers.WriteError(w, http.StatusForbidden, "Forbidden",
			"You are not allowed to modify this post")

	case errors.Is(err, posts.ErrPostAlreadyExists):
		handlers.WriteError(w, http.StatusConflict, "PostAlreadyExists", "Post already exists")

	case posts.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	default:
		// Don't leak internal error details to clients
		slog.Error("unexpected error in post handler",
			"method", r.Method, "path", r.URL.Path, "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
