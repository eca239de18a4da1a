package routes

import (
	"github.com/go-chi/chi/v5"

	"Labeddit/internal/api/handlers/post"
	"Labeddit/internal/api/middleware"
	"Labeddit/internal/core/posts"
)

// RegisterPostRoutes registers the /posts endpoints on the router.
// Every post endpoint requires a bearer token.
func RegisterPostRoutes(r chi.Router, service posts.Service, authMiddleware *middleware.AuthMiddleware) {
	readHandler := post.NewReadHandler(service)
	writeHandler := post.NewWriteHandler(service)
	reactionHandler := post.NewReactionHandler(service)

	r.Route("/posts", func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)

		r.Get("/", readHandler.HandleList)
		r.Post("/", writeHandler.HandleCreate)
		r.Get("/{id}", readHandler.HandleGet)
		r.Put("/{id}", writeHandler.HandleUpdate)
		r.Delete("/{id}", writeHandler.HandleDelete)
		r.Put("/{id}/like", reactionHandler.HandlePutReaction)
	})
}
