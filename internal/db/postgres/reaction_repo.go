package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"Labeddit/internal/core/reactions"
)

// ReactionTransactor runs reaction reconciliation inside a database
// transaction serialized per (user, post) with a transaction-scoped
// advisory lock.
type ReactionTransactor struct {
	db  *sql.DB
	now func() time.Time
}

// NewReactionTransactor creates a new PostgreSQL reaction transactor
func NewReactionTransactor(db *sql.DB) *ReactionTransactor {
	return &ReactionTransactor{db: db, now: time.Now}
}

// WithinReactionTx implements reactions.Transactor
func (t *ReactionTransactor) WithinReactionTx(ctx context.Context, userID, postID string, fn reactions.TxFunc) error {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			log.Printf("Failed to rollback transaction: %v", rollbackErr)
		}
	}()

	// Released automatically at commit or rollback
	if _, err := tx.ExecContext(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`,
		reactionLockKey(userID, postID),
	); err != nil {
		return fmt.Errorf("failed to lock reaction key: %w", err)
	}

	store := &txReactionStore{tx: tx, now: t.now}
	if err := fn(ctx, store, store); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func reactionLockKey(userID, postID string) string {
	return "reaction/" + userID + "/" + postID
}

// txReactionStore implements reactions.ReactionStore and reactions.CounterStore
// against an open transaction
type txReactionStore struct {
	tx  *sql.Tx
	now func() time.Time
}

func (s *txReactionStore) Get(ctx context.Context, userID, postID string) (*reactions.Reaction, error) {
	query := `
		SELECT user_id, post_id, "like", created_at, updated_at
		FROM post_reactions
		WHERE user_id = $1 AND post_id = $2`

	var r reactions.Reaction
	err := s.tx.QueryRowContext(ctx, query, userID, postID).
		Scan(&r.UserID, &r.PostID, &r.Like, &r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, reactions.ErrReactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reaction: %w", err)
	}
	return &r, nil
}

func (s *txReactionStore) Create(ctx context.Context, r *reactions.Reaction) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now().UTC()
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = r.CreatedAt
	}

	query := `
		INSERT INTO post_reactions (user_id, post_id, "like", created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.tx.ExecContext(ctx, query, r.UserID, r.PostID, r.Like, r.CreatedAt, r.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert reaction: %w", err)
	}
	return nil
}

func (s *txReactionStore) Delete(ctx context.Context, userID, postID string) error {
	result, err := s.tx.ExecContext(ctx,
		`DELETE FROM post_reactions WHERE user_id = $1 AND post_id = $2`, userID, postID)
	if err != nil {
		return fmt.Errorf("failed to delete reaction: %w", err)
	}
	return requireRow(result, reactions.ErrReactionNotFound)
}

func (s *txReactionStore) SetLike(ctx context.Context, userID, postID string, like bool) error {
	result, err := s.tx.ExecContext(ctx,
		`UPDATE post_reactions SET "like" = $3, updated_at = $4 WHERE user_id = $1 AND post_id = $2`,
		userID, postID, like, s.now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update reaction: %w", err)
	}
	return requireRow(result, reactions.ErrReactionNotFound)
}

// AdjustCounters applies both deltas in one statement, clamping each counter at zero
func (s *txReactionStore) AdjustCounters(ctx context.Context, postID string, likesDelta, dislikesDelta int) error {
	query := `
		UPDATE posts
		SET likes = GREATEST(0, likes + $2),
		    dislikes = GREATEST(0, dislikes + $3)
		WHERE id = $1`

	result, err := s.tx.ExecContext(ctx, query, postID, likesDelta, dislikesDelta)
	if err != nil {
		return fmt.Errorf("failed to update post counters: %w", err)
	}
	return requireRow(result, reactions.ErrPostNotFound)
}

// RecountReactions recomputes every post's counters from post_reactions and
// returns the number of posts whose stored counters were corrected
func RecountReactions(ctx context.Context, db *sql.DB) (int64, error) {
	query := `
		UPDATE posts p
		SET likes = c.likes, dislikes = c.dislikes
		FROM (
			SELECT p2.id,
			       COUNT(r.post_id) FILTER (WHERE r."like") AS likes,
			       COUNT(r.post_id) FILTER (WHERE NOT r."like") AS dislikes
			FROM posts p2
			LEFT JOIN post_reactions r ON r.post_id = p2.id
			GROUP BY p2.id
		) c
		WHERE p.id = c.id AND (p.likes <> c.likes OR p.dislikes <> c.dislikes)`

	result, err := db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to recount reactions: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check recount result: %w", err)
	}
	return n, nil
}
