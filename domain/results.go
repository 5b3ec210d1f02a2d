package domain

// LoanDetails is the breakdown of the loan into its federal and provincial
// portions as computed by the calculation service.
type LoanDetails struct {
	TotalAmount      float64 `json:"total_amount"`
	FederalAmount    float64 `json:"federal_amount"`
	ProvincialAmount float64 `json:"provincial_amount"`
	FederalRate      float64 `json:"federal_rate"`
	ProvincialRate   float64 `json:"provincial_rate"`
}

// GracePeriod describes interest accrued between graduation and the start
// of repayment.
type GracePeriod struct {
	Months           int     `json:"months"`
	InterestAccrued  float64 `json:"interest_accrued"`
	BalanceAfterGrace float64 `json:"balance_after_grace"`
}

// RAP eligibility stages reported by the calculation service.
const (
	RAPStageFull    = "full"
	RAPStagePartial = "partial"
	RAPStageNone    = "none"
)

// RAPStatus is the Repayment Assistance Plan verdict for the session's
// income and household size.
type RAPStatus struct {
	Eligible        bool    `json:"eligible"`
	Stage           string  `json:"stage"`
	Message         string  `json:"message"`
	RequiredPayment float64 `json:"required_payment"`
}

// FullAssistance reports whether the borrower qualifies for full repayment
// assistance (no required payment).
func (s RAPStatus) FullAssistance() bool {
	return s.Eligible && s.Stage == RAPStageFull
}

// BreakdownEntry is one month of a scenario's amortization schedule.
type BreakdownEntry struct {
	Month         int     `json:"month"`
	Balance       float64 `json:"balance"`
	PrincipalPaid float64 `json:"principal_paid"`
	InterestPaid  float64 `json:"interest_paid"`
}

// Scenario is one named repayment strategy.
type Scenario struct {
	MonthlyPayment  float64          `json:"monthly_payment"`
	Years           int              `json:"years"`
	RemainingMonths int              `json:"remaining_months"`
	Months          int              `json:"months"`
	TotalInterest   float64          `json:"total_interest"`
	Breakdown       []BreakdownEntry `json:"breakdown"`
}

// Scenarios groups the three fixed repayment strategies.
type Scenarios struct {
	Minimum     Scenario `json:"minimum"`
	Recommended Scenario `json:"recommended"`
	Aggressive  Scenario `json:"aggressive"`
}

// SavingsDelta compares two scenarios.
type SavingsDelta struct {
	InterestSaved float64 `json:"interest_saved"`
	MonthsSaved   int     `json:"months_saved"`
}

// Savings carries the derived deltas between the named scenarios.
type Savings struct {
	RecommendedVsMinimum SavingsDelta `json:"recommended_vs_minimum"`
	AggressiveVsMinimum  SavingsDelta `json:"aggressive_vs_minimum"`
}

// ResultsSnapshot is the complete analysis returned by the calculation
// service. It is installed wholesale and never partially patched.
type ResultsSnapshot struct {
	LoanDetails LoanDetails `json:"loan_details"`
	GracePeriod GracePeriod `json:"grace_period"`
	RAPStatus   RAPStatus   `json:"rap_status"`
	Scenarios   Scenarios   `json:"scenarios"`
	Savings     Savings     `json:"savings"`
}

// Rates mirrors the calculation service's current-rates endpoint.
type Rates struct {
	PrimeRate      float64 `json:"prime_rate"`
	FederalRate    float64 `json:"federal_rate"`
	ProvincialRate float64 `json:"provincial_rate"`
}
