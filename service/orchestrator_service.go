package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"github.com/bytedance/sonic"

	"loan-wizard/client"
	"loan-wizard/domain"
	"loan-wizard/repository"
)

// Messages shown in the community region. The empty-dataset message is an
// invitation, the failure message an error state; they must not be
// conflated.
const (
	communityEmptyMessage = "No one has shared their numbers yet — be the first to contribute and help the next grad compare."
	communityErrorMessage = "Couldn't reach the community comparison service. Your plan is unaffected; try again later."

	calcRetryLabel = "Something went wrong — tap to try again"
)

// OrchestratorService issues the primary calculation and reconciles the
// secondary enrichments into the session's view regions.
type OrchestratorService struct {
	calc      CalculationClient
	community CommunityClient
	cache     repository.CacheRepository
}

// NewOrchestratorService creates the orchestrator over the calculation and
// community collaborators. cache may be a mock; it only short-circuits the
// primary request.
func NewOrchestratorService(
	calc CalculationClient,
	community CommunityClient,
	cache repository.CacheRepository,
) *OrchestratorService {
	return &OrchestratorService{
		calc:      calc,
		community: community,
		cache:     cache,
	}
}

func formCacheKey(form domain.FormModel) string {
	raw, err := sonic.Marshal(form)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return "calc:" + hex.EncodeToString(sum[:])
}

// Run executes the primary calculation for the session's completed form.
// On success the snapshot and all primary regions are installed atomically
// and the enrichments are fanned out without blocking the returned view.
// On failure the previously displayed state is left untouched and the view
// carries a retryable error label.
func (o *OrchestratorService) Run(ctx context.Context, sess *Session) (SessionView, error) {
	sess.mu.Lock()
	form := sess.Form
	sess.mu.Unlock()

	snap, err := o.calculate(ctx, form)
	if err != nil {
		slog.Warn("primary calculation failed", "session", sess.ID, "err", err)
		sess.mu.Lock()
		sess.CalcError = calcRetryLabel
		view := sess.view()
		sess.mu.Unlock()
		return view, nil
	}

	return o.install(ctx, sess, snap, form), nil
}

// RenderSnapshot routes an already-computed snapshot (a loaded plan) into
// the same rendering path the primary calculation uses, enrichment fan-out
// included.
func (o *OrchestratorService) RenderSnapshot(ctx context.Context, sess *Session, snap domain.ResultsSnapshot) SessionView {
	sess.mu.Lock()
	form := sess.Form
	sess.mu.Unlock()
	return o.install(ctx, sess, snap, form)
}

func (o *OrchestratorService) calculate(ctx context.Context, form domain.FormModel) (domain.ResultsSnapshot, error) {
	key := formCacheKey(form)
	if key != "" {
		if cached, ok := o.cache.Get(ctx, key); ok {
			var snap domain.ResultsSnapshot
			if err := sonic.Unmarshal([]byte(cached), &snap); err == nil {
				return snap, nil
			}
		}
	}

	snap, err := o.calc.Calculate(ctx, form)
	if err != nil {
		return domain.ResultsSnapshot{}, err
	}

	if key != "" {
		if raw, merr := sonic.Marshal(snap); merr == nil {
			if cerr := o.cache.Set(ctx, key, string(raw), CalcCacheTTL); cerr != nil {
				slog.Warn("calculation cache write failed", "err", cerr)
			}
		}
	}
	return snap, nil
}

// install publishes the snapshot and every primary region in one critical
// section, then starts the two enrichments. The generation stamp taken here
// lets late enrichment responses detect that the results they belong to are
// gone.
func (o *OrchestratorService) install(ctx context.Context, sess *Session, snap domain.ResultsSnapshot, form domain.FormModel) SessionView {
	chart := BuildScenarioChart(snap.Scenarios)
	wisdom := SelectWisdom(snap, form)

	sess.mu.Lock()
	sess.Snapshot = &snap
	sess.Chart = chart
	sess.Wisdom = wisdom
	sess.baseChart = chart
	sess.baseWisdom = wisdom
	sess.CalcError = ""
	sess.Notice = ""
	sess.resultsGen++
	sess.whatIfSeq++
	gen := sess.resultsGen

	if form.HasSecondaryDebt() {
		sess.MultiDebt = MultiDebtRegion{State: RegionPending}
	} else {
		sess.MultiDebt = MultiDebtRegion{State: RegionHidden}
	}
	sess.Community = CommunityRegion{State: RegionPending}
	view := sess.view()
	sess.mu.Unlock()

	// Enrichments outlive the triggering request.
	bg := context.WithoutCancel(ctx)
	if form.HasSecondaryDebt() {
		go o.runMultiDebt(bg, sess, form, gen)
	}
	go o.runCommunity(bg, sess, form, gen)

	return view
}

func (o *OrchestratorService) runMultiDebt(ctx context.Context, sess *Session, form domain.FormModel, gen uint64) {
	plan, err := o.calc.MultiDebt(ctx, client.MultiDebtRequest{
		LoanAmount:            form.LoanAmount,
		FederalPortionPercent: form.FederalPortionPercent,
		CreditCardBalance:     form.CreditCardBalance,
		LineOfCreditBalance:   form.LineOfCreditBalance,
		CarLoanBalance:        form.CarLoanBalance,
		MonthlyBudget:         form.MonthlyBudget(),
	})

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.resultsGen != gen {
		return
	}
	if err != nil {
		slog.Warn("multi-debt enrichment failed", "session", sess.ID, "err", err)
		sess.MultiDebt = MultiDebtRegion{State: RegionHidden}
		return
	}
	sess.MultiDebt = MultiDebtRegion{State: RegionReady, Plan: plan}
}

func (o *OrchestratorService) runCommunity(ctx context.Context, sess *Session, form domain.FormModel, gen uint64) {
	cmp, err := o.community.Compare(ctx, client.CompareRequest{
		LoanAmount:   form.LoanAmount,
		FieldOfStudy: form.FieldOfStudy,
	})

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.resultsGen != gen {
		return
	}
	if err != nil {
		slog.Warn("community enrichment failed", "session", sess.ID, "err", err)
		sess.Community = CommunityRegion{State: RegionError, Message: communityErrorMessage}
		return
	}
	if cmp.Empty() {
		sess.Community = CommunityRegion{State: RegionEmpty, Comparison: cmp, Message: communityEmptyMessage}
		return
	}
	sess.Community = CommunityRegion{State: RegionReady, Comparison: cmp}
}

// Rates proxies the calculation service's current rates, falling back to
// the published constants when the service is unreachable.
func (o *OrchestratorService) Rates(ctx context.Context) domain.Rates {
	rates, err := o.calc.Rates(ctx)
	if err != nil {
		slog.Warn("rates fetch failed", "err", err)
		return domain.Rates{
			PrimeRate:      FallbackPrimeRate,
			FederalRate:    FallbackPrimeRate,
			ProvincialRate: FallbackProvincialRate,
		}
	}
	return rates
}
