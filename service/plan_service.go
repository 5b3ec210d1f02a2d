package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"loan-wizard/domain"
	"loan-wizard/repository"
)

// ErrNothingToSave is returned when a session has no answers worth
// persisting yet.
var ErrNothingToSave = errors.New("nothing to save")

const restoredNotice = "Your answers are restored. Walk through the wizard whenever you're ready and I'll crunch the numbers."

// PlanService persists named plans and bridges loaded plans back into the
// session, bypassing the dialogue walk-through.
type PlanService struct {
	repo         repository.PlanRepository
	store        *SessionStore
	orchestrator *OrchestratorService
}

// NewPlanService creates the saved-plan bridge.
func NewPlanService(repo repository.PlanRepository, store *SessionStore, orchestrator *OrchestratorService) *PlanService {
	return &PlanService{
		repo:         repo,
		store:        store,
		orchestrator: orchestrator,
	}
}

// Plan codes are short and human-shareable; the alphabet avoids 0/O and
// 1/I confusion.
const planCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func newPlanCode() string {
	buf := make([]byte, PlanCodeLength)
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = planCodeAlphabet[int(b)%len(planCodeAlphabet)]
	}
	return string(buf)
}

// Save persists the session's answers, and its results snapshot when the
// wizard has been completed, under the given display name. Returns the
// shareable plan code.
func (s *PlanService) Save(ctx context.Context, sessionID, planName string) (string, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return "", err
	}

	sess.mu.Lock()
	form := sess.Form
	var results *domain.ResultsSnapshot
	if sess.Snapshot != nil {
		snap := *sess.Snapshot
		results = &snap
	}
	if planName == "" {
		planName = sess.DisplayName
	}
	sess.mu.Unlock()

	if form.LoanAmount <= 0 && results == nil {
		return "", ErrNothingToSave
	}

	plan := domain.SavedPlan{
		PlanID:    newPlanCode(),
		PlanName:  planName,
		FormData:  form,
		Results:   results,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Save(ctx, plan); err != nil {
		return "", fmt.Errorf("save plan: %w", err)
	}
	return plan.PlanID, nil
}

// LoadResult reports how a loaded plan re-entered the session: straight to
// the results view when a snapshot was persisted, or back at the pre-wizard
// screen with a restoration notice when only answers were stored.
type LoadResult struct {
	Computed bool        `json:"computed"`
	View     SessionView `json:"view"`
}

// Load fetches the plan for code and hydrates the session: stored answers
// are merged over fresh defaults (stored values win) and the stored display
// name is adopted. With a persisted snapshot the orchestrator's rendering
// path takes over; without one, no calculation is issued and the dialogue
// engine is left untouched. On not-found or repository failure the session
// is not mutated at all.
func (s *PlanService) Load(ctx context.Context, sessionID, code string, now time.Time) (LoadResult, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return LoadResult{}, err
	}

	plan, err := s.repo.Load(ctx, code)
	if err != nil {
		return LoadResult{}, err
	}

	sess.mu.Lock()
	sess.Form = domain.NewFormModel(now).Merge(plan.FormData)
	sess.DisplayName = plan.PlanName

	if plan.Results == nil {
		sess.Notice = restoredNotice
		view := sess.view()
		sess.mu.Unlock()
		return LoadResult{Computed: false, View: view}, nil
	}
	sess.mu.Unlock()

	view := s.orchestrator.RenderSnapshot(ctx, sess, *plan.Results)
	return LoadResult{Computed: true, View: view}, nil
}
