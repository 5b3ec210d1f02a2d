package service

import (
	"context"

	"loan-wizard/client"
	"loan-wizard/domain"
)

// CalculationClient is the calculation collaborator: primary analysis,
// what-if recompute, multi-debt ordering and current rates.
type CalculationClient interface {
	Calculate(ctx context.Context, form domain.FormModel) (domain.ResultsSnapshot, error)
	WhatIf(ctx context.Context, req client.WhatIfRequest) (domain.WhatIfResult, error)
	MultiDebt(ctx context.Context, req client.MultiDebtRequest) (domain.MultiDebtPlan, error)
	Rates(ctx context.Context) (domain.Rates, error)
}

// CommunityClient compares the session's loan against aggregate data.
type CommunityClient interface {
	Compare(ctx context.Context, req client.CompareRequest) (domain.CommunityComparison, error)
}

// ChatClient is the conversational responder.
type ChatClient interface {
	Chat(ctx context.Context, message string, form domain.FormModel) (string, error)
}

// SpeechClient renders narration text to audio.
type SpeechClient interface {
	Speak(ctx context.Context, text string) ([]byte, error)
}
