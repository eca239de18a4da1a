package user

import (
	"net/http"

	"Labeddit/internal/api/handlers"
	"Labeddit/internal/api/validation"
	"Labeddit/internal/core/users"
)

// AccountHandler serves sign-up and login
type AccountHandler struct {
	service users.UserService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(service users.UserService) *AccountHandler {
	return &AccountHandler{service: service}
}

// HandleSignUp handles POST /users
// Request body: { "name", "email", "password", "role"? }
func (h *AccountHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var req users.CreateUserRequest
	if !handlers.DecodeBody(w, r, validation.SignUp, &req) {
		return
	}

	resp, err := h.service.CreateUser(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, resp)
}

// HandleLogin handles POST /users/login
// Request body: { "email", "password" }
func (h *AccountHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req users.LoginRequest
	if !handlers.DecodeBody(w, r, validation.Login, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, resp)
}
