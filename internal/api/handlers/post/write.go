package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Labeddit/internal/api/handlers"
	"Labeddit/internal/api/middleware"
	"Labeddit/internal/api/validation"
	"Labeddit/internal/core/posts"
)

type messageResponse struct {
	Message string `json:"message"`
}

// WriteHandler serves post creation, edits and deletion
type WriteHandler struct {
	service posts.Service
}

// NewWriteHandler creates a new write handler
func NewWriteHandler(service posts.Service) *WriteHandler {
	return &WriteHandler{service: service}
}

// HandleCreate handles POST /posts
// Request body: { "content": "..." }
func (h *WriteHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidToken", "Authentication required")
		return
	}

	var req posts.CreatePostRequest
	if !handlers.DecodeBody(w, r, validation.PostContent, &req) {
		return
	}
	req.CreatorID = userID

	resp, err := h.service.CreatePost(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, resp)
}

// HandleUpdate handles PUT /posts/{id}
// Only the creator may edit. Request body: { "content": "..." }
func (h *WriteHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidToken", "Authentication required")
		return
	}

	var req posts.EditPostRequest
	if !handlers.DecodeBody(w, r, validation.PostContent, &req) {
		return
	}
	req.PostID = chi.URLParam(r, "id")
	req.UserID = userID

	if err := h.service.EditPost(r.Context(), req); err != nil {
		handleServiceError(w, r, err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, messageResponse{Message: "post updated successfully"})
}

// HandleDelete handles DELETE /posts/{id}
// The creator or an admin may delete
func (h *WriteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidToken", "Authentication required")
		return
	}

	req := posts.DeletePostRequest{PostID: chi.URLParam(r, "id"), UserID: userID}
	if err := h.service.DeletePost(r.Context(), req); err != nil {
		handleServiceError(w, r, err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, messageResponse{Message: "post deleted successfully"})
}
