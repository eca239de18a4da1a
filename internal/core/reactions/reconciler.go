package reactions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Reconciler applies a reaction request to the reaction table and the post
// counters as one unit, keeping likes/dislikes equal to the aggregate of
// reaction rows.
//
// Transitions, given the stored reaction for (user, post):
//   - none          -> create row, +1 on the requested counter
//   - same value    -> delete row, -1 on the requested counter (toggle off)
//   - opposite value -> flip row, +1 on the requested counter, -1 on the other
//
// Callers must have checked that the post and user exist and that the user
// is not the post's creator.
type Reconciler struct {
	tx        Transactor
	publisher Publisher
	metrics   *Metrics
	logger    *slog.Logger
	now       func() time.Time
}

// NewReconciler creates a reconciler. publisher, metrics and logger may be nil.
func NewReconciler(tx Transactor, publisher Publisher, metrics *Metrics, logger *slog.Logger) *Reconciler {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{
		tx:        tx,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// Reconcile applies the requested reaction and reports which transition happened.
// Store failures are returned unretried; nothing is committed in that case.
func (r *Reconciler) Reconcile(ctx context.Context, userID, postID string, like bool) (Outcome, error) {
	var outcome Outcome

	err := r.tx.WithinReactionTx(ctx, userID, postID, func(ctx context.Context, store ReactionStore, counters CounterStore) error {
		existing, err := store.Get(ctx, userID, postID)
		if err != nil && !errors.Is(err, ErrReactionNotFound) {
			return fmt.Errorf("failed to get existing reaction: %w", err)
		}

		var likesDelta, dislikesDelta int

		switch {
		case existing == nil:
			now := r.now().UTC()
			if err := store.Create(ctx, &Reaction{
				UserID:    userID,
				PostID:    postID,
				Like:      like,
				CreatedAt: now,
				UpdatedAt: now,
			}); err != nil {
				return fmt.Errorf("failed to create reaction: %w", err)
			}
			likesDelta, dislikesDelta = counterDelta(like, 1)
			outcome = OutcomeRecorded

		case existing.Like == like:
			if err := store.Delete(ctx, userID, postID); err != nil {
				return fmt.Errorf("failed to delete reaction: %w", err)
			}
			likesDelta, dislikesDelta = counterDelta(like, -1)
			outcome = OutcomeRemoved

		default:
			if err := store.SetLike(ctx, userID, postID, like); err != nil {
				return fmt.Errorf("failed to flip reaction: %w", err)
			}
			likesDelta, dislikesDelta = counterDelta(like, 1)
			oldLikes, oldDislikes := counterDelta(existing.Like, -1)
			likesDelta += oldLikes
			dislikesDelta += oldDislikes
			outcome = OutcomeChanged
		}

		if err := counters.AdjustCounters(ctx, postID, likesDelta, dislikesDelta); err != nil {
			return fmt.Errorf("failed to adjust post counters: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	r.metrics.observe(outcome)

	event := Event{
		UserID:     userID,
		PostID:     postID,
		Like:       like,
		Outcome:    outcome,
		OccurredAt: r.now().UTC(),
	}
	if err := r.publisher.PublishReaction(ctx, event); err != nil {
		r.logger.Warn("failed to publish reaction event",
			"post_id", postID,
			"user_id", userID,
			"outcome", outcome,
			"error", err)
	}

	r.logger.Debug("reaction reconciled",
		"post_id", postID,
		"user_id", userID,
		"like", like,
		"outcome", outcome)

	return outcome, nil
}

// counterDelta returns n applied to the likes or dislikes counter
func counterDelta(like bool, n int) (likes, dislikes int) {
	if like {
		return n, 0
	}
	return 0, n
}
