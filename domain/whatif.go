package domain

// WhatIfResult is the recompute for one slider position. It lives only
// until the next slider event and is never folded into the results
// snapshot.
type WhatIfResult struct {
	NewPayment    float64          `json:"new_payment"`
	Months        int              `json:"months"`
	TotalInterest float64          `json:"total_interest"`
	InterestSaved float64          `json:"interest_saved"`
	MonthsSaved   int              `json:"months_saved"`
	Breakdown     []BreakdownEntry `json:"breakdown,omitempty"`
}

// ChartSeries is one plotted line: a scenario or the custom what-if plan.
type ChartSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Chart is the sampled view over up to four amortization series sharing one
// label axis.
type Chart struct {
	Labels []int         `json:"labels"`
	Series []ChartSeries `json:"series"`
}
