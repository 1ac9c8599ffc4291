package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Speaker attributes a transcript entry to one of the two simulated
// conversation parties.
type Speaker string

// The two conversation parties.
const (
	SpeakerWaiter   Speaker = "waiter"
	SpeakerCustomer Speaker = "customer"
)

// Other returns the opposing speaker.
func (s Speaker) Other() Speaker {
	if s == SpeakerWaiter {
		return SpeakerCustomer
	}
	return SpeakerWaiter
}

// DialogMessage is one transcript entry. Entries are append-only; an entry is
// never edited or removed once a transition has committed it.
type DialogMessage struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// Session is the unit of work: one simulated ordering conversation together
// with its derived fields. The transcript and the extracted fields grow
// monotonically through the pipeline; exactly one step handler writes each
// field, and a session is never deleted by the engine.
//
// Contract:
//   - Messages is append-only; length grows by at most one per transition
//   - FavoriteText / OrderText / Analysis are written once by their
//     dedicated steps and never touched by any other step
//   - Clone performs deep copies of slices so snapshots can diverge safely
type Session struct {
	ID           string          `json:"id"`
	State        PipelineState   `json:"state"`
	Messages     []DialogMessage `json:"messages"`
	FavoriteText string          `json:"favorite_text"`
	OrderText    string          `json:"order_text"`
	Analysis     *AnalysisResult `json:"analysis_result,omitempty"`
	Created      time.Time       `json:"created"`
	Updated      time.Time       `json:"updated"`
}

// NewSession creates a session in the initial pipeline state with a fresh id.
func NewSession() *Session {
	now := time.Now().UTC()
	return &Session{
		ID:       NewID(),
		State:    StateInit,
		Messages: []DialogMessage{},
		Created:  now,
		Updated:  now,
	}
}

// Clone returns a deep copy of the session safe for independent mutation.
func (s *Session) Clone() *Session {
	clone := *s
	clone.Messages = make([]DialogMessage, len(s.Messages))
	copy(clone.Messages, s.Messages)
	if s.Analysis != nil {
		clone.Analysis = s.Analysis.Clone()
	}
	return &clone
}

// Apply merges a committed update into the session and advances its state.
// It mirrors what a SessionStore applies during ConditionalUpdate so the
// in-memory representation can be refreshed without a second read.
func (s *Session) Apply(update SessionUpdate, next PipelineState) {
	if update.AppendMessage != nil {
		s.Messages = append(s.Messages, *update.AppendMessage)
	}
	if update.FavoriteText != nil {
		s.FavoriteText = *update.FavoriteText
	}
	if update.OrderText != nil {
		s.OrderText = *update.OrderText
	}
	if update.Analysis != nil {
		s.Analysis = update.Analysis.Clone()
	}
	s.State = next
	s.Updated = time.Now().UTC()
}

// SessionUpdate captures the persistence side-effect of exactly one
// transition. All fields are optional pointers so absence can be
// distinguished from a zero value.
type SessionUpdate struct {
	AppendMessage *DialogMessage
	FavoriteText  *string
	OrderText     *string
	Analysis      *AnalysisResult
}

// SessionStore persists sessions. Implementations must be safe for
// concurrent use and must support a per-record conditional update; no
// cross-session transactions are required.
type SessionStore interface {
	// Create persists a new session record.
	Create(ctx context.Context, sess *Session) error

	// Get returns the current snapshot of a session.
	Get(ctx context.Context, id string) (*Session, error)

	// ConditionalUpdate applies the update and advances the session to next,
	// but only if the stored state still equals expected. It returns the
	// number of matched records (0 or 1). A zero count means another writer
	// already advanced the session; the caller must treat the transition as
	// lost. This compare-and-swap is the engine's only serialization point.
	ConditionalUpdate(
		ctx context.Context,
		id string,
		expected PipelineState,
		update SessionUpdate,
		next PipelineState,
	) (int64, error)
}

// NewID generates a new unique identifier for sessions and runs.
func NewID() string { return uuid.NewString() }
