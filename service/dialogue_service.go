package service

import (
	"context"
	"log/slog"
	"time"

	"loan-wizard/domain"
)

// DialogueService walks a session through the step catalog. The cursor only
// ever moves forward; the terminal step's action is compute, not advance.
type DialogueService struct {
	catalog      *Catalog
	store        *SessionStore
	orchestrator *OrchestratorService
}

// NewDialogueService creates the dialogue engine over the given catalog.
func NewDialogueService(
	catalog *Catalog,
	store *SessionStore,
	orchestrator *OrchestratorService,
) *DialogueService {
	return &DialogueService{
		catalog:      catalog,
		store:        store,
		orchestrator: orchestrator,
	}
}

// Start opens a new session at step 0 and returns the session id with the
// first step view.
func (s *DialogueService) Start(now time.Time) (string, domain.StepView) {
	sess := s.store.Create(now)
	return sess.ID, s.catalog.Render(0, "", now)
}

// Current renders the session's current step.
func (s *DialogueService) Current(sessionID string, now time.Time) (domain.StepView, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return domain.StepView{}, err
	}
	sess.mu.Lock()
	cursor, name := sess.Cursor, sess.DisplayName
	sess.mu.Unlock()
	return s.catalog.Render(cursor, name, now), nil
}

// AdvanceResult is the outcome of one advance: either the next step to
// present, or the results view when the terminal step triggered the
// calculation.
type AdvanceResult struct {
	Completed bool             `json:"completed"`
	Step      *domain.StepView `json:"step,omitempty"`
	Results   *SessionView     `json:"results,omitempty"`
}

// Advance commits the current step's answers into the form model and moves
// to the next step. On the terminal step it invokes the results
// orchestrator instead of advancing; the cursor never moves past it.
func (s *DialogueService) Advance(ctx context.Context, sessionID string, answers map[string]string, now time.Time) (AdvanceResult, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return AdvanceResult{}, err
	}

	sess.mu.Lock()
	cursor := sess.Cursor
	step := s.catalog.Step(cursor)

	if name := s.catalog.Commit(cursor, answers, &sess.Form); name != "" {
		sess.DisplayName = name
	}

	if !step.Terminal {
		sess.Cursor++
		cursor = sess.Cursor
		name := sess.DisplayName
		sess.mu.Unlock()
		slog.Debug("step advanced", "session", sessionID, "cursor", cursor)
		view := s.catalog.Render(cursor, name, now)
		return AdvanceResult{Step: &view}, nil
	}
	sess.mu.Unlock()

	// Terminal: hand off to the orchestrator. The session lock is not held
	// across the calculation.
	view, err := s.orchestrator.Run(ctx, sess)
	if err != nil {
		return AdvanceResult{}, err
	}
	return AdvanceResult{Completed: true, Results: &view}, nil
}

// Restart replaces the form model with fresh defaults and rewinds the
// cursor. Any installed results and regions are dropped; in-flight
// enrichments and what-if responses become stale via the generation bump.
func (s *DialogueService) Restart(sessionID string, now time.Time) (domain.StepView, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return domain.StepView{}, err
	}

	sess.mu.Lock()
	sess.Form = domain.NewFormModel(now)
	sess.Cursor = 0
	sess.Snapshot = nil
	sess.MultiDebt = MultiDebtRegion{State: RegionHidden}
	sess.Community = CommunityRegion{State: RegionHidden}
	sess.Chart = domain.Chart{}
	sess.Wisdom = ""
	sess.baseChart = domain.Chart{}
	sess.baseWisdom = ""
	sess.CalcError = ""
	sess.Notice = ""
	sess.resultsGen++
	name := sess.DisplayName
	sess.mu.Unlock()

	return s.catalog.Render(0, name, now), nil
}
