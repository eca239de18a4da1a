package reactions

import (
	"context"
	"errors"
	"sync"
)

type reactionKey struct {
	userID string
	postID string
}

type postCounts struct {
	likes    int
	dislikes int
}

// memTransactor is an in-memory Transactor. Each unit of work runs against a
// copy of the state under a single mutex and is swapped in only on success.
type memTransactor struct {
	mu        sync.Mutex
	reactions map[reactionKey]Reaction
	counters  map[string]postCounts
	failOn    string
	getCalls  int
}

func newMemTransactor(postIDs ...string) *memTransactor {
	m := &memTransactor{
		reactions: make(map[reactionKey]Reaction),
		counters:  make(map[string]postCounts),
	}
	for _, id := range postIDs {
		m.counters[id] = postCounts{}
	}
	return m
}

var errInjected = errors.New("injected store failure")

func (m *memTransactor) WithinReactionTx(ctx context.Context, userID, postID string, fn TxFunc) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memTx{
		parent:    m,
		reactions: make(map[reactionKey]Reaction, len(m.reactions)),
		counters:  make(map[string]postCounts, len(m.counters)),
	}
	for k, v := range m.reactions {
		tx.reactions[k] = v
	}
	for k, v := range m.counters {
		tx.counters[k] = v
	}

	if err := fn(ctx, tx, tx); err != nil {
		return err
	}

	m.reactions = tx.reactions
	m.counters = tx.counters
	return nil
}

func (m *memTransactor) counts(postID string) postCounts {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[postID]
}

func (m *memTransactor) reaction(userID, postID string) (Reaction, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reactions[reactionKey{userID, postID}]
	return r, ok
}

// aggregate counts reaction rows per post
func (m *memTransactor) aggregate() map[string]postCounts {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]postCounts)
	for k, r := range m.reactions {
		c := out[k.postID]
		if r.Like {
			c.likes++
		} else {
			c.dislikes++
		}
		out[k.postID] = c
	}
	return out
}

type memTx struct {
	parent    *memTransactor
	reactions map[reactionKey]Reaction
	counters  map[string]postCounts
}

func (tx *memTx) fail(op string) error {
	if tx.parent.failOn == op {
		return errInjected
	}
	return nil
}

func (tx *memTx) Get(_ context.Context, userID, postID string) (*Reaction, error) {
	tx.parent.getCalls++
	if err := tx.fail("Get"); err != nil {
		return nil, err
	}
	r, ok := tx.reactions[reactionKey{userID, postID}]
	if !ok {
		return nil, ErrReactionNotFound
	}
	return &r, nil
}

func (tx *memTx) Create(_ context.Context, reaction *Reaction) error {
	if err := tx.fail("Create"); err != nil {
		return err
	}
	key := reactionKey{reaction.UserID, reaction.PostID}
	if _, exists := tx.reactions[key]; exists {
		return errors.New("duplicate reaction")
	}
	tx.reactions[key] = *reaction
	return nil
}

func (tx *memTx) Delete(_ context.Context, userID, postID string) error {
	if err := tx.fail("Delete"); err != nil {
		return err
	}
	delete(tx.reactions, reactionKey{userID, postID})
	return nil
}

func (tx *memTx) SetLike(_ context.Context, userID, postID string, like bool) error {
	if err := tx.fail("SetLike"); err != nil {
		return err
	}
	key := reactionKey{userID, postID}
	r, ok := tx.reactions[key]
	if !ok {
		return ErrReactionNotFound
	}
	r.Like = like
	tx.reactions[key] = r
	return nil
}

func (tx *memTx) AdjustCounters(_ context.Context, postID string, likesDelta, dislikesDelta int) error {
	if err := tx.fail("AdjustCounters"); err != nil {
		return err
	}
	c, ok := tx.counters[postID]
	if !ok {
		return ErrPostNotFound
	}
	c.likes = max(0, c.likes+likesDelta)
	c.dislikes = max(0, c.dislikes+dislikesDelta)
	tx.counters[postID] = c
	return nil
}
