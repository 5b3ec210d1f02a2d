package domain

import "time"

// FieldOfStudy values accepted by the field-of-study step and the
// community comparison service.
const (
	FieldComputerScience = "computer_science"
	FieldEngineering     = "engineering"
	FieldBusiness        = "business"
	FieldNursing         = "nursing"
	FieldScience         = "science"
	FieldArts            = "arts"
	FieldEducation       = "education"
	FieldTrades          = "trades"
	FieldOther           = "other"
)

// FormModel holds every answer collected by the wizard. It is always
// well-typed and submittable: unanswered fields keep their defaults.
type FormModel struct {
	LoanAmount            float64 `json:"loan_amount"`
	FederalPortionPercent float64 `json:"federal_portion"`
	GraduationDate        string  `json:"graduation_date"`
	MonthlyIncome         float64 `json:"monthly_income"`
	MonthlyExpenses       float64 `json:"monthly_expenses"`
	FieldOfStudy          string  `json:"field_of_study"`
	HouseholdSize         int     `json:"family_size"`
	HasEmergencyFund      bool    `json:"has_emergency_fund"`
	CreditCardBalance     float64 `json:"credit_card_balance"`
	LineOfCreditBalance   float64 `json:"line_of_credit_balance"`
	CarLoanBalance        float64 `json:"car_loan_balance"`
}

// Default values for fields whose zero value is not the documented default.
const (
	DefaultFederalPortionPercent = 60
	DefaultHouseholdSize         = 1

	// Graduation defaults to this many months from session start.
	DefaultGraduationOffsetMonths = 4
)

// NewFormModel returns a form with every field at its documented default.
func NewFormModel(now time.Time) FormModel {
	return FormModel{
		FederalPortionPercent: DefaultFederalPortionPercent,
		GraduationDate:        now.AddDate(0, DefaultGraduationOffsetMonths, 0).Format("2006-01-02"),
		FieldOfStudy:          FieldOther,
		HouseholdSize:         DefaultHouseholdSize,
	}
}

// HasSecondaryDebt reports whether any of the three extra balances is
// positive, which is what gates the multi-debt enrichment.
func (f FormModel) HasSecondaryDebt() bool {
	return f.CreditCardBalance > 0 || f.LineOfCreditBalance > 0 || f.CarLoanBalance > 0
}

// MonthlyBudget derives the budget sent to the multi-debt service from
// income minus expenses, floored so the service always gets something to
// allocate.
func (f FormModel) MonthlyBudget() float64 {
	budget := f.MonthlyIncome - f.MonthlyExpenses
	if budget < 100 {
		return 100
	}
	return budget
}

// Merge overlays persisted answers onto f. Persisted fields win; fields the
// stored plan never set keep their current (default) values. Zero-valued
// money fields are treated as set only when the stored model carries a
// positive loan amount, which every persisted plan does.
func (f FormModel) Merge(saved FormModel) FormModel {
	out := f
	if saved.LoanAmount > 0 {
		out.LoanAmount = saved.LoanAmount
	}
	if saved.FederalPortionPercent > 0 {
		out.FederalPortionPercent = saved.FederalPortionPercent
	}
	if saved.GraduationDate != "" {
		out.GraduationDate = saved.GraduationDate
	}
	if saved.MonthlyIncome > 0 {
		out.MonthlyIncome = saved.MonthlyIncome
	}
	if saved.MonthlyExpenses > 0 {
		out.MonthlyExpenses = saved.MonthlyExpenses
	}
	if saved.FieldOfStudy != "" {
		out.FieldOfStudy = saved.FieldOfStudy
	}
	if saved.HouseholdSize > 0 {
		out.HouseholdSize = saved.HouseholdSize
	}
	out.HasEmergencyFund = saved.HasEmergencyFund
	if saved.CreditCardBalance > 0 {
		out.CreditCardBalance = saved.CreditCardBalance
	}
	if saved.LineOfCreditBalance > 0 {
		out.LineOfCreditBalance = saved.LineOfCreditBalance
	}
	if saved.CarLoanBalance > 0 {
		out.CarLoanBalance = saved.CarLoanBalance
	}
	return out
}
