package routes

import (
	"github.com/go-chi/chi/v5"

	"Labeddit/internal/api/handlers/user"
	"Labeddit/internal/core/users"
)

// RegisterUserRoutes registers the public sign-up and login endpoints
func RegisterUserRoutes(r chi.Router, service users.UserService) {
	accountHandler := user.NewAccountHandler(service)

	r.Post("/users", accountHandler.HandleSignUp)
	r.Post("/users/login", accountHandler.HandleLogin)
}
