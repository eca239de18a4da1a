package posts

import (
	"time"

	"Labeddit/internal/core/reactions"
)

// Post is a row of the posts table.
// Likes and Dislikes are denormalized counters owned by the reaction reconciler.
type Post struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	ID        string    `json:"id" db:"id"`
	Content   string    `json:"content" db:"content"`
	CreatorID string    `json:"creatorId" db:"creator_id"`
	Likes     int       `json:"likes" db:"likes"`
	Dislikes  int       `json:"dislikes" db:"dislikes"`
}

// CreatorView is the author information embedded in post views
type CreatorView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PostView is a post joined with its creator's display name
type PostView struct {
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Creator   CreatorView `json:"creator"`
	ID        string      `json:"id"`
	Content   string      `json:"content"`
	Likes     int         `json:"likes"`
	Dislikes  int         `json:"dislikes"`
}

// CreatePostRequest represents input for creating a new post
type CreatePostRequest struct {
	Content   string `json:"content"`
	CreatorID string `json:"-"`
}

// CreatePostResponse is returned after a post is persisted
type CreatePostResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// EditPostRequest represents input for editing a post's content
type EditPostRequest struct {
	PostID  string `json:"-"`
	UserID  string `json:"-"`
	Content string `json:"content"`
}

// DeletePostRequest represents input for deleting a post
type DeletePostRequest struct {
	PostID string
	UserID string
}

// PutReactionRequest represents a like (true) or dislike (false) on a post
type PutReactionRequest struct {
	PostID string `json:"-"`
	UserID string `json:"-"`
	Like   bool   `json:"like"`
}

// PutReactionResponse reports which transition the reaction applied
type PutReactionResponse struct {
	Message string            `json:"message"`
	Outcome reactions.Outcome `json:"outcome"`
}
