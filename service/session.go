package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"loan-wizard/domain"
)

// ErrSessionNotFound is returned for unknown session ids.
var ErrSessionNotFound = errors.New("session not found")

// RegionState is the lifecycle of one independently-failable view region.
type RegionState string

const (
	RegionHidden  RegionState = "hidden"
	RegionPending RegionState = "pending"
	RegionReady   RegionState = "ready"
	RegionEmpty   RegionState = "empty"
	RegionError   RegionState = "error"
)

// MultiDebtRegion is the multi-debt enrichment view region. It stays hidden
// when there is no extra debt or when the enrichment fails.
type MultiDebtRegion struct {
	State RegionState          `json:"state"`
	Plan  domain.MultiDebtPlan `json:"plan,omitempty"`
}

// CommunityRegion is the community comparison view region. Empty and error
// are distinct states: the first invites contribution, the second reports a
// failure.
type CommunityRegion struct {
	State      RegionState                `json:"state"`
	Comparison domain.CommunityComparison `json:"comparison,omitempty"`
	Message    string                     `json:"message,omitempty"`
}

// Session is the explicitly owned per-session context: form model, dialogue
// cursor, the current results snapshot and its view regions, and the
// sequence counters for the what-if explorer and narration. All fields are
// guarded by mu; nothing here may be assumed stable across a collaborator
// call, so every writer re-acquires the lock and re-checks generations
// after a request returns.
type Session struct {
	mu sync.Mutex

	ID          string
	DisplayName string
	Form        domain.FormModel
	Cursor      int

	Snapshot  *domain.ResultsSnapshot
	MultiDebt MultiDebtRegion
	Community CommunityRegion

	// Currently shown chart and commentary, and the base versions captured
	// when the snapshot was installed (what the reset-to-zero restores).
	Chart      domain.Chart
	Wisdom     string
	baseChart  domain.Chart
	baseWisdom string

	// Retryable error label for the compute control; empty when clear.
	CalcError string

	// Notice from the saved-plan bridge (restored answers, load failures).
	Notice string

	// resultsGen is bumped whenever the snapshot is installed or cleared;
	// in-flight enrichments and what-if responses apply only when their
	// stamped generation is still current.
	resultsGen   uint64
	whatIfSeq    uint64
	narrationSeq uint64

	CreatedAt time.Time
}

// SessionView is the full region view rendered to the page.
type SessionView struct {
	ID          string                  `json:"id"`
	DisplayName string                  `json:"display_name"`
	Cursor      int                     `json:"cursor"`
	Form        domain.FormModel        `json:"form"`
	Results     *domain.ResultsSnapshot `json:"results,omitempty"`
	MultiDebt   MultiDebtRegion         `json:"multi_debt"`
	Community   CommunityRegion         `json:"community"`
	Chart       domain.Chart            `json:"chart"`
	Wisdom      string                  `json:"wisdom"`
	CalcError   string                  `json:"calc_error,omitempty"`
	Notice      string                  `json:"notice,omitempty"`
}

// view renders the session under its lock.
func (s *Session) view() SessionView {
	return SessionView{
		ID:          s.ID,
		DisplayName: s.DisplayName,
		Cursor:      s.Cursor,
		Form:        s.Form,
		Results:     s.Snapshot,
		MultiDebt:   s.MultiDebt,
		Community:   s.Community,
		Chart:       s.Chart,
		Wisdom:      s.Wisdom,
		CalcError:   s.CalcError,
		Notice:      s.Notice,
	}
}

// View returns the current region view.
func (s *Session) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

// SessionStore holds live sessions in memory.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
	}
}

func newSessionID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

// Create starts a session with a fresh default form model.
func (st *SessionStore) Create(now time.Time) *Session {
	s := &Session{
		ID:        newSessionID(),
		Form:      domain.NewFormModel(now),
		MultiDebt: MultiDebtRegion{State: RegionHidden},
		Community: CommunityRegion{State: RegionHidden},
		CreatedAt: now,
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get returns the session for id, or ErrSessionNotFound.
func (st *SessionStore) Get(id string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Remove drops the session for id.
func (st *SessionStore) Remove(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}
