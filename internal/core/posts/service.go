package posts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"Labeddit/internal/core/reactions"
	"Labeddit/internal/core/users"
)

type postService struct {
	repo       Repository
	users      UserLookup
	reconciler ReactionReconciler
	logger     *slog.Logger
	newID      func() string
	now        func() time.Time
}

// NewPostService creates a new post service
func NewPostService(repo Repository, userLookup UserLookup, reconciler ReactionReconciler, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{
		repo:       repo,
		users:      userLookup,
		reconciler: reconciler,
		logger:     logger,
		newID:      uuid.NewString,
		now:        time.Now,
	}
}

// ListPosts returns all posts, filtered by content substring when query is set
func (s *postService) ListPosts(ctx context.Context, query string) ([]*PostView, error) {
	views, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	if views == nil {
		views = []*PostView{}
	}
	return views, nil
}

// GetPost returns a single post joined with its creator
func (s *postService) GetPost(ctx context.Context, postID string) (*PostView, error) {
	if strings.TrimSpace(postID) == "" {
		return nil, NewValidationError("id", "required")
	}
	return s.repo.GetViewByID(ctx, postID)
}

// CreatePost persists a new post owned by req.CreatorID
func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*CreatePostResponse, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, NewValidationError("content", "required")
	}
	if req.CreatorID == "" {
		return nil, NewValidationError("creatorId", "required")
	}

	if _, err := s.users.GetUserByID(ctx, req.CreatorID); err != nil {
		return nil, err
	}

	id := s.newID()

	// Identifier reuse check; the primary key still guards the insert
	if _, err := s.repo.GetByID(ctx, id); err == nil {
		return nil, ErrPostAlreadyExists
	} else if !errors.Is(err, ErrPostNotFound) {
		return nil, fmt.Errorf("failed to check post id: %w", err)
	}

	now := s.now().UTC()
	post := &Post{
		ID:        id,
		Content:   req.Content,
		CreatorID: req.CreatorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		if errors.Is(err, ErrPostAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("post created", "post_id", id, "creator_id", req.CreatorID)

	return &CreatePostResponse{Message: "post created successfully", ID: id}, nil
}

// EditPost replaces the content of a post owned by the requester
func (s *postService) EditPost(ctx context.Context, req EditPostRequest) error {
	if strings.TrimSpace(req.Content) == "" {
		return NewValidationError("content", "required")
	}

	post, err := s.repo.GetByID(ctx, req.PostID)
	if err != nil {
		return err
	}

	if post.CreatorID != req.UserID {
		return ErrForbidden
	}

	if err := s.repo.UpdateContent(ctx, post.ID, req.Content, s.now().UTC()); err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return err
		}
		return fmt.Errorf("failed to edit post: %w", err)
	}
	return nil
}

// DeletePost removes a post owned by the requester. Admins may delete any post.
func (s *postService) DeletePost(ctx context.Context, req DeletePostRequest) error {
	post, err := s.repo.GetByID(ctx, req.PostID)
	if err != nil {
		return err
	}

	if post.CreatorID != req.UserID {
		requester, err := s.users.GetUserByID(ctx, req.UserID)
		if err != nil {
			return err
		}
		if !requester.IsAdmin() {
			return ErrForbidden
		}
	}

	if err := s.repo.Delete(ctx, post.ID); err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete post: %w", err)
	}

	s.logger.Info("post deleted", "post_id", post.ID, "deleted_by", req.UserID)
	return nil
}

// PutReaction checks the preconditions for reacting and delegates to the reconciler
func (s *postService) PutReaction(ctx context.Context, req PutReactionRequest) (*PutReactionResponse, error) {
	post, err := s.repo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.GetUserByID(ctx, req.UserID); err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if post.CreatorID == req.UserID {
		return nil, ErrSelfReaction
	}

	outcome, err := s.reconciler.Reconcile(ctx, req.UserID, post.ID, req.Like)
	if err != nil {
		// post deleted between the existence check and the counter update
		if errors.Is(err, reactions.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to reconcile reaction: %w", err)
	}

	return &PutReactionResponse{Message: outcome.Message(), Outcome: outcome}, nil
}
