package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Labeddit/internal/api/handlers"
	"Labeddit/internal/core/posts"
)

// ReadHandler serves post listing and lookup
type ReadHandler struct {
	service posts.Service
}

// NewReadHandler creates a new read handler
func NewReadHandler(service posts.Service) *ReadHandler {
	return &ReadHandler{service: service}
}

// HandleList handles GET /posts?q=
// Returns every post, or the posts whose content contains q
func (h *ReadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.ListPosts(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, views)
}

// HandleGet handles GET /posts/{id}
func (h *ReadHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, view)
}
