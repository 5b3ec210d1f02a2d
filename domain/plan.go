package domain

import "time"

// SavedPlan is a named snapshot of a session: the collected answers plus,
// when the wizard was completed, the computed results.
type SavedPlan struct {
	PlanID    string           `json:"plan_id"`
	PlanName  string           `json:"plan_name"`
	FormData  FormModel        `json:"form_data"`
	Results   *ResultsSnapshot `json:"results,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
