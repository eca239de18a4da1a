package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"Labeddit/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

const postViewColumns = `
	p.id, p.content, p.likes, p.dislikes, p.created_at, p.updated_at,
	p.creator_id, COALESCE(u.name, '')`

// Create inserts a new post with zeroed counters
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	query := `
		INSERT INTO posts (id, creator_id, content, likes, dislikes, created_at, updated_at)
		VALUES ($1, $2, $3, 0, 0, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.CreatorID, post.Content, post.CreatedAt, post.UpdatedAt)
	if err != nil {
		if _, ok := isUniqueViolation(err); ok {
			return posts.ErrPostAlreadyExists
		}
		return fmt.Errorf("failed to insert post: %w", err)
	}

	post.Likes = 0
	post.Dislikes = 0
	return nil
}

// GetByID retrieves the raw post row
func (r *postgresPostRepo) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	query := `
		SELECT id, creator_id, content, likes, dislikes, created_at, updated_at
		FROM posts
		WHERE id = $1`

	var post posts.Post
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.CreatorID, &post.Content,
		&post.Likes, &post.Dislikes, &post.CreatedAt, &post.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &post, nil
}

// GetViewByID retrieves a post joined with its creator's name
func (r *postgresPostRepo) GetViewByID(ctx context.Context, id string) (*posts.PostView, error) {
	query := `SELECT` + postViewColumns + `
		FROM posts p
		LEFT JOIN users u ON u.id = p.creator_id
		WHERE p.id = $1`

	view, err := scanPostView(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post view: %w", err)
	}
	return view, nil
}

// List returns posts newest first, optionally filtered by a content substring
func (r *postgresPostRepo) List(ctx context.Context, query string) ([]*posts.PostView, error) {
	sqlQuery := `SELECT` + postViewColumns + `
		FROM posts p
		LEFT JOIN users u ON u.id = p.creator_id`

	var args []interface{}
	if query != "" {
		sqlQuery += ` WHERE p.content LIKE $1 ESCAPE '\'`
		args = append(args, "%"+escapeLike(query)+"%")
	}
	sqlQuery += ` ORDER BY p.created_at DESC, p.id ASC`

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := []*posts.PostView{}
	for rows.Next() {
		view, err := scanPostView(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}
	return result, nil
}

// UpdateContent sets content and updated_at. Counters are left untouched.
func (r *postgresPostRepo) UpdateContent(ctx context.Context, id, content string, updatedAt time.Time) error {
	query := `UPDATE posts SET content = $2, updated_at = $3 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, content, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	return requireRow(result, posts.ErrPostNotFound)
}

// Delete removes the post; post_reactions rows go with it via ON DELETE CASCADE
func (r *postgresPostRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return requireRow(result, posts.ErrPostNotFound)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPostView(row rowScanner) (*posts.PostView, error) {
	var view posts.PostView
	err := row.Scan(
		&view.ID, &view.Content, &view.Likes, &view.Dislikes,
		&view.CreatedAt, &view.UpdatedAt,
		&view.Creator.ID, &view.Creator.Name,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// escapeLike escapes LIKE metacharacters so q matches literally
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func requireRow(result sql.Result, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check result: %w", err)
	}
	if rowsAffected == 0 {
		return notFound
	}
	return nil
}
