package service

import "time"

const (
	// Interest savings above this amount promote the aggressive-plan
	// message in the commentary ladder.
	WisdomSavingsThreshold = 5000.0

	// Extra-payment tiers for the what-if commentary.
	ExtraTierPocketChange = 50.0
	ExtraTierSteady       = 100.0
	ExtraTierSerious      = 200.0
	ExtraTierAggressive   = 350.0

	// Slider bounds for the what-if explorer. Zero is the designated
	// reset value, not merely the minimum.
	MaxExtraPayment = 1000.0

	// The shared chart axis carries at most this many sampled points.
	ChartMaxPoints = 25

	CalcCacheTTL   = 10 * time.Minute
	PlanCodeLength = 6
)

// Published 2024-25 rates, served when the calculation service's rates
// endpoint is unreachable.
const (
	FallbackPrimeRate      = 7.25
	FallbackProvincialRate = 0.0
)
