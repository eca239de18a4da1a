package reactions

import "time"

// Reaction is a user's like-or-dislike vote on a post.
// The (UserID, PostID) pair is the primary key: a user holds at most one
// reaction per post.
type Reaction struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	UserID    string    `json:"userId" db:"user_id"`
	PostID    string    `json:"postId" db:"post_id"`
	Like      bool      `json:"like" db:"like"`
}

// Outcome describes which transition a reconcile call applied
type Outcome string

const (
	// OutcomeRecorded means no reaction existed and one was created
	OutcomeRecorded Outcome = "recorded"
	// OutcomeRemoved means the same reaction was resubmitted and was cleared (toggle-off)
	OutcomeRemoved Outcome = "removed"
	// OutcomeChanged means the existing reaction was flipped to the opposite value
	OutcomeChanged Outcome = "changed"
)

// Message returns the human-readable acknowledgment for the outcome
func (o Outcome) Message() string {
	switch o {
	case OutcomeRecorded:
		return "reaction recorded"
	case OutcomeRemoved:
		return "reaction removed"
	case OutcomeChanged:
		return "reaction changed"
	default:
		return string(o)
	}
}

// Event is published after a reconcile call commits
type Event struct {
	OccurredAt time.Time `json:"occurredAt"`
	UserID     string    `json:"userId"`
	PostID     string    `json:"postId"`
	Outcome    Outcome   `json:"outcome"`
	Like       bool      `json:"like"`
}
