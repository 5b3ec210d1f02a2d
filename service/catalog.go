package service

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"loan-wizard/domain"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog is the immutable ordered list of wizard steps.
type Catalog struct {
	steps []domain.Step
}

// LoadCatalog parses the embedded step catalog. The catalog is data, not
// control flow: the engine consumes it strictly by index.
func LoadCatalog() (*Catalog, error) {
	var doc struct {
		Steps []domain.Step `yaml:"steps"`
	}
	if err := yaml.Unmarshal(catalogYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse step catalog: %w", err)
	}
	if len(doc.Steps) == 0 {
		return nil, fmt.Errorf("step catalog is empty")
	}
	last := doc.Steps[len(doc.Steps)-1]
	if !last.Terminal {
		return nil, fmt.Errorf("last catalog step must be terminal")
	}
	return &Catalog{steps: doc.Steps}, nil
}

// Len returns the number of steps.
func (c *Catalog) Len() int {
	return len(c.steps)
}

// Step returns the raw step at index i.
func (c *Catalog) Step(i int) domain.Step {
	return c.steps[i]
}

// Render produces the view for step i: narrative with the display name
// substituted, and date controls pre-populated with today + 4 months.
func (c *Catalog) Render(i int, displayName string, now time.Time) domain.StepView {
	step := c.steps[i]
	name := displayName
	if name == "" {
		name = "friend"
	}

	fields := make([]domain.Field, len(step.Fields))
	copy(fields, step.Fields)
	for j, f := range fields {
		if f.Kind == domain.InputDate && f.Default == "" {
			fields[j].Default = now.AddDate(0, domain.DefaultGraduationOffsetMonths, 0).Format("2006-01-02")
		}
	}

	return domain.StepView{
		Index:    i,
		Total:    len(c.steps),
		Text:     strings.ReplaceAll(step.Text, "{name}", name),
		Fields:   fields,
		Terminal: step.Terminal,
	}
}

// parseNumber is the permissive numeric coercion: malformed input silently
// becomes the field's declared default, or zero when no default exists.
// This is the never-block-the-narrative policy; bad input is masked, not
// rejected, and out-of-range values are accepted unchanged.
func parseNumber(raw, fieldDefault string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err == nil {
		return v
	}
	if fieldDefault != "" {
		if d, derr := strconv.ParseFloat(fieldDefault, 64); derr == nil {
			return d
		}
	}
	return 0
}

// parseBool coerces a checkbox control's checked-state.
func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "on", "1", "yes", "checked":
		return true
	}
	return false
}

// Commit applies the answers for step i onto the form, coercing each field
// by its declared kind. The user_name control is the only one not backed by
// a form field; its value is returned as displayName. Commit never fails.
func (c *Catalog) Commit(i int, answers map[string]string, form *domain.FormModel) (displayName string) {
	for _, f := range c.steps[i].Fields {
		raw, ok := answers[f.FieldID]
		if !ok {
			raw = ""
		}
		switch f.FieldID {
		case "user_name":
			displayName = strings.TrimSpace(raw)
		case "loan_amount":
			form.LoanAmount = parseNumber(raw, f.Default)
		case "federal_portion":
			form.FederalPortionPercent = parseNumber(raw, f.Default)
		case "graduation_date":
			if s := strings.TrimSpace(raw); s != "" {
				form.GraduationDate = s
			}
		case "monthly_income":
			form.MonthlyIncome = parseNumber(raw, f.Default)
		case "monthly_expenses":
			form.MonthlyExpenses = parseNumber(raw, f.Default)
		case "field_of_study":
			if s := strings.TrimSpace(raw); s != "" {
				form.FieldOfStudy = s
			} else {
				form.FieldOfStudy = domain.FieldOther
			}
		case "family_size":
			form.HouseholdSize = int(parseNumber(raw, f.Default))
		case "has_emergency_fund":
			form.HasEmergencyFund = parseBool(raw)
		case "credit_card_balance":
			form.CreditCardBalance = parseNumber(raw, f.Default)
		case "line_of_credit_balance":
			form.LineOfCreditBalance = parseNumber(raw, f.Default)
		case "car_loan_balance":
			form.CarLoanBalance = parseNumber(raw, f.Default)
		}
	}
	return displayName
}
