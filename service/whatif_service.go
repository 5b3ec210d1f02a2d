package service

import (
	"context"
	"errors"
	"log/slog"

	"loan-wizard/client"
	"loan-wizard/domain"
)

// ErrNoResults is returned when the explorer runs before a primary
// calculation has completed.
var ErrNoResults = errors.New("no results to explore")

// WhatIfService drives the extra-payment slider. Every interaction is
// stamped with a per-session sequence number; only the response matching
// the latest stamp is applied, so a late response can never overwrite a
// newer view, in particular not the restored base view after a reset to
// zero.
type WhatIfService struct {
	calc  CalculationClient
	store *SessionStore
}

// NewWhatIfService creates the what-if explorer.
func NewWhatIfService(calc CalculationClient, store *SessionStore) *WhatIfService {
	return &WhatIfService{calc: calc, store: store}
}

// WhatIfOutcome is what one slider interaction renders: the (possibly
// unchanged) chart and commentary, plus the recompute figures when one was
// applied.
type WhatIfOutcome struct {
	Applied bool                 `json:"applied"`
	Result  *domain.WhatIfResult `json:"result,omitempty"`
	Chart   domain.Chart         `json:"chart"`
	Wisdom  string               `json:"wisdom"`
}

// Explore handles one slider event. Zero is the designated reset: it
// restores the base three-series chart and the results commentary without
// any request. Positive values recompute against the recommended
// scenario's base payment and overlay the custom series. A failed request
// is ignored, leaving the last good state visible.
func (s *WhatIfService) Explore(ctx context.Context, sessionID string, extra float64) (WhatIfOutcome, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return WhatIfOutcome{}, err
	}

	if extra < 0 {
		extra = 0
	}
	if extra > MaxExtraPayment {
		extra = MaxExtraPayment
	}

	sess.mu.Lock()
	if sess.Snapshot == nil {
		sess.mu.Unlock()
		return WhatIfOutcome{}, ErrNoResults
	}
	sess.whatIfSeq++
	seq := sess.whatIfSeq
	gen := sess.resultsGen
	form := sess.Form
	basePayment := sess.Snapshot.Scenarios.Recommended.MonthlyPayment

	if extra == 0 {
		sess.Chart = sess.baseChart
		sess.Wisdom = sess.baseWisdom
		out := WhatIfOutcome{Applied: true, Chart: sess.Chart, Wisdom: sess.Wisdom}
		sess.mu.Unlock()
		return out, nil
	}
	sess.mu.Unlock()

	result, err := s.calc.WhatIf(ctx, client.WhatIfRequest{
		LoanAmount:            form.LoanAmount,
		FederalPortionPercent: form.FederalPortionPercent,
		ExtraPayment:          extra,
		BasePayment:           basePayment,
	})

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err != nil {
		slog.Debug("what-if recompute failed", "session", sessionID, "err", err)
		return WhatIfOutcome{Chart: sess.Chart, Wisdom: sess.Wisdom}, nil
	}
	if sess.whatIfSeq != seq || sess.resultsGen != gen || sess.Snapshot == nil {
		// A newer interaction or a recompute superseded this response.
		return WhatIfOutcome{Chart: sess.Chart, Wisdom: sess.Wisdom}, nil
	}

	if len(result.Breakdown) > 0 {
		sess.Chart = BuildOverlayChart(sess.Snapshot.Scenarios, result.Breakdown)
	}
	sess.Wisdom = ExtraPaymentWisdom(extra)

	return WhatIfOutcome{
		Applied: true,
		Result:  &result,
		Chart:   sess.Chart,
		Wisdom:  sess.Wisdom,
	}, nil
}
