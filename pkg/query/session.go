package query

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// ActionType classifies one operator action within a session.
type ActionType string

const (
	ActionListed     ActionType = "listed"
	ActionSearched   ActionType = "searched"
	ActionBrowsed    ActionType = "browsed"
	ActionAuthorized ActionType = "authorized"
	ActionOrdered    ActionType = "ordered"
)

// Action is one appended session log entry.
type Action struct {
	Seq    int
	Type   ActionType
	Detail string
	At     time.Time
}

// Session is the explicit per-session state object: the operator's name plus
// an append-only action log. Callers pass it into the interaction layer
// rather than relying on any process-wide log.
type Session struct {
	ID        string
	Operator  string
	StartedAt time.Time

	mu      sync.RWMutex
	actions []Action
	now     func() time.Time
}

// NewSession starts a session for the named operator.
func NewSession(operator string) *Session {
	return NewSessionAt(operator, time.Now)
}

// NewSessionAt starts a session with an explicit clock, for tests.
func NewSessionAt(operator string, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{
		ID:        uuid.NewString(),
		Operator:  operator,
		StartedAt: now(),
		now:       now,
	}
}

// Record appends one action to the session log.
func (s *Session) Record(actionType ActionType, detail string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.actions = append(s.actions, Action{
		Seq:    len(s.actions) + 1,
		Type:   actionType,
		Detail: detail,
		At:     s.now(),
	})
}

// Actions returns a copy of the recorded actions in append order.
func (s *Session) Actions() []Action {
	s.mu.RLock()
	defer s.mu.RUnlock()

	actions := make([]Action, len(s.actions))
	copy(actions, s.actions)
	return actions
}

// Len returns the number of recorded actions.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.actions)
}
