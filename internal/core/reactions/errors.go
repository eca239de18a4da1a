package reactions

import "errors"

var (
	// ErrReactionNotFound indicates the user has no reaction on the post
	ErrReactionNotFound = errors.New("reaction not found")

	// ErrPostNotFound indicates the counter row for the post is missing
	ErrPostNotFound = errors.New("post not found")
)
