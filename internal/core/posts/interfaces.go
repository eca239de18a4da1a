package posts

import (
	"context"
	"time"

	"Labeddit/internal/core/reactions"
	"Labeddit/internal/core/users"
)

// Service defines the business logic interface for posts
type Service interface {
	// ListPosts returns every post, or only those whose content contains query
	ListPosts(ctx context.Context, query string) ([]*PostView, error)

	// GetPost returns a single post view
	GetPost(ctx context.Context, postID string) (*PostView, error)

	// CreatePost assigns an id and persists a post with zeroed counters
	CreatePost(ctx context.Context, req CreatePostRequest) (*CreatePostResponse, error)

	// EditPost replaces content and stamps updatedAt. Creator only.
	EditPost(ctx context.Context, req EditPostRequest) error

	// DeletePost removes the post. Creator or admin only.
	DeletePost(ctx context.Context, req DeletePostRequest) error

	// PutReaction toggles the requester's like/dislike on a post they do not own
	PutReaction(ctx context.Context, req PutReactionRequest) (*PutReactionResponse, error)
}

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts a post. Returns ErrPostAlreadyExists on id collision.
	Create(ctx context.Context, post *Post) error

	// GetByID returns the raw post row or ErrPostNotFound
	GetByID(ctx context.Context, id string) (*Post, error)

	// GetViewByID returns the post joined with its creator or ErrPostNotFound
	GetViewByID(ctx context.Context, id string) (*PostView, error)

	// List returns posts newest first; a non-empty query filters by
	// case-sensitive substring match on content
	List(ctx context.Context, query string) ([]*PostView, error)

	// UpdateContent sets content and updated_at. Returns ErrPostNotFound if the row is gone.
	UpdateContent(ctx context.Context, id, content string, updatedAt time.Time) error

	// Delete removes the post and, by cascade, its reactions
	Delete(ctx context.Context, id string) error
}

// UserLookup resolves users for existence and role checks
type UserLookup interface {
	GetUserByID(ctx context.Context, id string) (*users.User, error)
}

// ReactionReconciler applies a reaction request to the reaction table and counters
type ReactionReconciler interface {
	Reconcile(ctx context.Context, userID, postID string, like bool) (reactions.Outcome, error)
}
