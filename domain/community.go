package domain

// CommunityComparison compares the session's loan against aggregate
// community data. Aggregate fields are pointers because an empty dataset is
// a normal success with no numbers, distinct from a failed request.
type CommunityComparison struct {
	YourLoan       float64  `json:"your_loan"`
	OverallAverage *float64 `json:"overall_average,omitempty"`
	OverallPercent *float64 `json:"overall_percent,omitempty"`
	TotalStudents  *int     `json:"total_students,omitempty"`
	FieldAverage   *float64 `json:"field_average,omitempty"`
	FieldPercent   *float64 `json:"field_percent,omitempty"`
	FieldCount     *int     `json:"field_count,omitempty"`
	VsOverall      string   `json:"vs_overall"`
	VsField        string   `json:"vs_field"`
}

// Empty reports the cold-start case: the service answered but has no prior
// submissions to compare against.
func (c CommunityComparison) Empty() bool {
	return c.OverallAverage == nil && c.FieldAverage == nil
}

// MultiDebtPlan is the recommended payoff ordering across the student loan
// and the extra consumer debts.
type MultiDebtPlan struct {
	TotalDebt        float64  `json:"total_debt"`
	RecommendedOrder []string `json:"recommended_order"`
	Strategy         string   `json:"strategy"`
}
