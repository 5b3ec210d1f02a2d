package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"loan-wizard/client"
	"loan-wizard/domain"
)

type mockCalc struct {
	mu             sync.Mutex
	CalculateFunc  func(form domain.FormModel) (domain.ResultsSnapshot, error)
	WhatIfFunc     func(req client.WhatIfRequest) (domain.WhatIfResult, error)
	MultiDebtFunc  func(req client.MultiDebtRequest) (domain.MultiDebtPlan, error)
	RatesFunc      func() (domain.Rates, error)
	CalculateCalls int
	MultiDebtCalls int
	WhatIfCalls    int
}

func (m *mockCalc) Calculate(ctx context.Context, form domain.FormModel) (domain.ResultsSnapshot, error) {
	m.mu.Lock()
	m.CalculateCalls++
	fn := m.CalculateFunc
	m.mu.Unlock()
	if fn == nil {
		return testSnapshot(), nil
	}
	return fn(form)
}

func (m *mockCalc) WhatIf(ctx context.Context, req client.WhatIfRequest) (domain.WhatIfResult, error) {
	m.mu.Lock()
	m.WhatIfCalls++
	fn := m.WhatIfFunc
	m.mu.Unlock()
	if fn == nil {
		return domain.WhatIfResult{}, errors.New("no what-if stub")
	}
	return fn(req)
}

func (m *mockCalc) MultiDebt(ctx context.Context, req client.MultiDebtRequest) (domain.MultiDebtPlan, error) {
	m.mu.Lock()
	m.MultiDebtCalls++
	fn := m.MultiDebtFunc
	m.mu.Unlock()
	if fn == nil {
		return domain.MultiDebtPlan{}, errors.New("no multi-debt stub")
	}
	return fn(req)
}

func (m *mockCalc) Rates(ctx context.Context) (domain.Rates, error) {
	m.mu.Lock()
	fn := m.RatesFunc
	m.mu.Unlock()
	if fn == nil {
		return domain.Rates{}, errors.New("no rates stub")
	}
	return fn()
}

type mockCommunity struct {
	mu          sync.Mutex
	CompareFunc func(req client.CompareRequest) (domain.CommunityComparison, error)
	Calls       int
}

func (m *mockCommunity) Compare(ctx context.Context, req client.CompareRequest) (domain.CommunityComparison, error) {
	m.mu.Lock()
	m.Calls++
	fn := m.CompareFunc
	m.mu.Unlock()
	if fn == nil {
		avg := 27000.0
		count := 42
		return domain.CommunityComparison{
			YourLoan:       req.LoanAmount,
			OverallAverage: &avg,
			TotalStudents:  &count,
			VsOverall:      "above average",
		}, nil
	}
	return fn(req)
}

type mockChat struct {
	ChatFunc func(message string, form domain.FormModel) (string, error)
}

func (m *mockChat) Chat(ctx context.Context, message string, form domain.FormModel) (string, error) {
	if m.ChatFunc == nil {
		return "ok", nil
	}
	return m.ChatFunc(message, form)
}

type mockSpeech struct {
	SpeakFunc func(text string) ([]byte, error)
}

func (m *mockSpeech) Speak(ctx context.Context, text string) ([]byte, error) {
	if m.SpeakFunc == nil {
		return []byte("audio"), nil
	}
	return m.SpeakFunc(text)
}

// testSnapshot is a small but fully populated analysis used across tests.
func testSnapshot() domain.ResultsSnapshot {
	breakdown := func(months int, payment float64) []domain.BreakdownEntry {
		out := make([]domain.BreakdownEntry, months)
		balance := 30000.0
		for i := range out {
			principal := payment * 0.8
			balance -= principal
			if balance < 0 {
				balance = 0
			}
			out[i] = domain.BreakdownEntry{
				Month:         i + 1,
				Balance:       balance,
				PrincipalPaid: principal,
				InterestPaid:  payment * 0.2,
			}
		}
		return out
	}

	return domain.ResultsSnapshot{
		LoanDetails: domain.LoanDetails{
			TotalAmount:      30000,
			FederalAmount:    18000,
			ProvincialAmount: 12000,
			FederalRate:      7.25,
		},
		GracePeriod: domain.GracePeriod{Months: 6, InterestAccrued: 650.12, BalanceAfterGrace: 30650.12},
		RAPStatus:   domain.RAPStatus{Eligible: false, Stage: domain.RAPStageNone, Message: "Income above threshold"},
		Scenarios: domain.Scenarios{
			Minimum:     domain.Scenario{MonthlyPayment: 250, Months: 160, TotalInterest: 9000, Breakdown: breakdown(160, 250)},
			Recommended: domain.Scenario{MonthlyPayment: 350, Months: 105, TotalInterest: 6000, Breakdown: breakdown(105, 350)},
			Aggressive:  domain.Scenario{MonthlyPayment: 500, Months: 68, TotalInterest: 3800, Breakdown: breakdown(68, 500)},
		},
		Savings: domain.Savings{
			RecommendedVsMinimum: domain.SavingsDelta{InterestSaved: 3000, MonthsSaved: 55},
			AggressiveVsMinimum:  domain.SavingsDelta{InterestSaved: 5200, MonthsSaved: 92},
		},
	}
}

// waitForRegion polls until check passes or the deadline hits. Enrichments
// land from goroutines, so tests wait instead of assuming ordering.
func waitForRegion(timeout time.Duration, check func() bool) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if check() {
			return true
		}
		time.Sleep(2 * time.Millisecond)
	}
	return false
}
