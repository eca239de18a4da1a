package reactions

import "context"

// ReactionStore persists the (user, post) -> like table.
// Implementations handed to a TxFunc are bound to the enclosing transaction.
type ReactionStore interface {
	// Get returns the user's reaction on the post, or ErrReactionNotFound
	Get(ctx context.Context, userID, postID string) (*Reaction, error)

	// Create inserts a new reaction row
	Create(ctx context.Context, reaction *Reaction) error

	// Delete removes the reaction row for the pair
	Delete(ctx context.Context, userID, postID string) error

	// SetLike overwrites the value of an existing reaction row
	SetLike(ctx context.Context, userID, postID string, like bool) error
}

// CounterStore maintains the denormalized likes/dislikes columns on a post.
type CounterStore interface {
	// AdjustCounters adds both deltas to the post row in a single statement.
	// Each counter is clamped at zero. Returns ErrPostNotFound if the row is gone.
	AdjustCounters(ctx context.Context, postID string, likesDelta, dislikesDelta int) error
}

// TxFunc is the unit of work run by a Transactor
type TxFunc func(ctx context.Context, reactions ReactionStore, counters CounterStore) error

// Transactor runs a TxFunc inside one transaction that holds an exclusive
// lock on the (userID, postID) key. The reaction write and the counter write
// commit together or not at all.
type Transactor interface {
	WithinReactionTx(ctx context.Context, userID, postID string, fn TxFunc) error
}

// Publisher delivers committed reaction events to downstream consumers
type Publisher interface {
	PublishReaction(ctx context.Context, event Event) error
}

// NopPublisher discards every event
type NopPublisher struct{}

// PublishReaction implements Publisher
func (NopPublisher) PublishReaction(context.Context, Event) error { return nil }
