package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Labeddit/internal/api/handlers"
	"Labeddit/internal/api/middleware"
	"Labeddit/internal/api/validation"
	"Labeddit/internal/core/posts"
)

// ReactionHandler serves like/dislike requests
type ReactionHandler struct {
	service posts.Service
}

// NewReactionHandler creates a new reaction handler
func NewReactionHandler(service posts.Service) *ReactionHandler {
	return &ReactionHandler{service: service}
}

// HandlePutReaction handles PUT /posts/{id}/like
// Request body: { "like": true | false }
//
// Repeating the current reaction removes it; sending the opposite value flips it.
func (h *ReactionHandler) HandlePutReaction(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidToken", "Authentication required")
		return
	}

	var req posts.PutReactionRequest
	if !handlers.DecodeBody(w, r, validation.Reaction, &req) {
		return
	}
	req.PostID = chi.URLParam(r, "id")
	req.UserID = userID

	resp, err := h.service.PutReaction(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, resp)
}
