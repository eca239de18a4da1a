package postgres

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Labeddit/internal/core/reactions"
)

func postCounters(t *testing.T, db *sql.DB, postID string) (likes, dislikes int) {
	t.Helper()
	require.NoError(t, db.QueryRow(`SELECT likes, dislikes FROM posts WHERE id = $1`, postID).Scan(&likes, &dislikes))
	return likes, dislikes
}

func TestReactionTransactor_Scenario(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	reconciler := reactions.NewReconciler(NewReactionTransactor(db), nil, nil, nil)

	creator := seedUser(t, db, "Ana")
	a := seedUser(t, db, "Bea")
	b := seedUser(t, db, "Caio")
	post := seedPost(t, db, creator.ID, "scenario", time.Now().UTC())

	steps := []struct {
		user     string
		like     bool
		outcome  reactions.Outcome
		likes    int
		dislikes int
	}{
		{a.ID, true, reactions.OutcomeRecorded, 1, 0},
		{b.ID, false, reactions.OutcomeRecorded, 1, 1},
		{a.ID, false, reactions.OutcomeChanged, 0, 2},
		{a.ID, false, reactions.OutcomeRemoved, 0, 1},
		{b.ID, false, reactions.OutcomeRemoved, 0, 0},
	}

	for _, step := range steps {
		outcome, err := reconciler.Reconcile(ctx, step.user, post.ID, step.like)
		require.NoError(t, err)
		assert.Equal(t, step.outcome, outcome)

		likes, dislikes := postCounters(t, db, post.ID)
		assert.Equal(t, step.likes, likes)
		assert.Equal(t, step.dislikes, dislikes)
	}
}

func TestReactionTransactor_ConcurrentSameUser(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	reconciler := reactions.NewReconciler(NewReactionTransactor(db), nil, nil, nil)

	creator := seedUser(t, db, "Ana")
	reactor := seedUser(t, db, "Bea")
	post := seedPost(t, db, creator.ID, "race", time.Now().UTC())

	const workers = 16
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(like bool) {
			defer wg.Done()
			_, err := reconciler.Reconcile(ctx, reactor.ID, post.ID, like)
			assert.NoError(t, err)
		}(i%3 == 0)
	}
	wg.Wait()

	var rowLikes, rowDislikes int
	require.NoError(t, db.QueryRow(`
		SELECT COUNT(*) FILTER (WHERE "like"), COUNT(*) FILTER (WHERE NOT "like")
		FROM post_reactions WHERE post_id = $1`, post.ID).Scan(&rowLikes, &rowDislikes))

	likes, dislikes := postCounters(t, db, post.ID)
	assert.Equal(t, rowLikes, likes)
	assert.Equal(t, rowDislikes, dislikes)
	assert.LessOrEqual(t, likes+dislikes, 1)
}

func TestReactionTransactor_RollsBackOnError(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	tx := NewReactionTransactor(db)

	creator := seedUser(t, db, "Ana")
	reactor := seedUser(t, db, "Bea")
	post := seedPost(t, db, creator.ID, "rollback", time.Now().UTC())

	err := tx.WithinReactionTx(ctx, reactor.ID, post.ID, func(ctx context.Context, store reactions.ReactionStore, counters reactions.CounterStore) error {
		require.NoError(t, store.Create(ctx, &reactions.Reaction{UserID: reactor.ID, PostID: post.ID, Like: true}))
		return counters.AdjustCounters(ctx, "missing-post", 1, 0)
	})
	assert.ErrorIs(t, err, reactions.ErrPostNotFound)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM post_reactions WHERE post_id = $1`, post.ID).Scan(&count))
	assert.Zero(t, count)
}

func TestReactionTransactor_CountersClampAtZero(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	tx := NewReactionTransactor(db)

	creator := seedUser(t, db, "Ana")
	post := seedPost(t, db, creator.ID, "clamp", time.Now().UTC())

	err := tx.WithinReactionTx(ctx, creator.ID, post.ID, func(ctx context.Context, _ reactions.ReactionStore, counters reactions.CounterStore) error {
		return counters.AdjustCounters(ctx, post.ID, -1, -3)
	})
	require.NoError(t, err)

	likes, dislikes := postCounters(t, db, post.ID)
	assert.Zero(t, likes)
	assert.Zero(t, dislikes)
}

func TestRecountReactions(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	creator := seedUser(t, db, "Ana")
	a := seedUser(t, db, "Bea")
	b := seedUser(t, db, "Caio")
	post := seedPost(t, db, creator.ID, "drift", time.Now().UTC())

	_, err := db.Exec(`INSERT INTO post_reactions (user_id, post_id, "like") VALUES ($1, $3, TRUE), ($2, $3, FALSE)`,
		a.ID, b.ID, post.ID)
	require.NoError(t, err)
	_, err = db.Exec(`UPDATE posts SET likes = 7, dislikes = 0 WHERE id = $1`, post.ID)
	require.NoError(t, err)

	fixed, err := RecountReactions(ctx, db)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, fixed, int64(1))

	likes, dislikes := postCounters(t, db, post.ID)
	assert.Equal(t, 1, likes)
	assert.Equal(t, 1, dislikes)
}
