package service

import (
	"strings"
	"testing"
	"time"

	"loan-wizard/domain"
)

func mustCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat, err := LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return cat
}

func TestLoadCatalog_ShapeAndOrder(t *testing.T) {
	cat := mustCatalog(t)

	if cat.Len() != 11 {
		t.Fatalf("expected 11 steps, got %d", cat.Len())
	}
	for i := 0; i < cat.Len()-1; i++ {
		if cat.Step(i).Terminal {
			t.Errorf("step %d must not be terminal", i)
		}
	}
	if !cat.Step(cat.Len() - 1).Terminal {
		t.Error("last step must be terminal")
	}
	if got := cat.Step(cat.Len() - 1).Fields; len(got) != 0 {
		t.Errorf("terminal step must carry no fields, got %d", len(got))
	}

	// The extra-debts step is the only multi-field group.
	multi := 0
	for i := 0; i < cat.Len(); i++ {
		if len(cat.Step(i).Fields) > 1 {
			multi++
			if n := len(cat.Step(i).Fields); n < 2 || n > 3 {
				t.Errorf("multi step %d has %d fields, want 2-3", i, n)
			}
		}
	}
	if multi != 1 {
		t.Errorf("expected exactly one multi-field step, got %d", multi)
	}
}

func TestRender_NameSubstitutionAndDateDefault(t *testing.T) {
	cat := mustCatalog(t)
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	view := cat.Render(1, "Alex", now)
	if !strings.Contains(view.Text, "Alex") {
		t.Errorf("expected name substitution, got %q", view.Text)
	}

	anon := cat.Render(1, "", now)
	if strings.Contains(anon.Text, "{name}") {
		t.Errorf("placeholder leaked into %q", anon.Text)
	}

	// Find the date step and check the +4 months default.
	for i := 0; i < cat.Len(); i++ {
		v := cat.Render(i, "", now)
		for _, f := range v.Fields {
			if f.Kind == domain.InputDate {
				if f.Default != "2026-12-27" {
					t.Errorf("expected date default 2026-12-27, got %q", f.Default)
				}
				return
			}
		}
	}
	t.Fatal("no date step found")
}

func TestCommit_FullWalkLeavesNoFieldUnset(t *testing.T) {
	cat := mustCatalog(t)
	now := time.Now()
	form := domain.NewFormModel(now)

	answers := map[string]string{
		"user_name":              "Alex",
		"loan_amount":            "30000",
		"federal_portion":        "60",
		"graduation_date":        "2026-06-15",
		"monthly_income":         "4000",
		"monthly_expenses":       "2500",
		"field_of_study":         "engineering",
		"family_size":            "2",
		"has_emergency_fund":     "true",
		"credit_card_balance":    "1200",
		"line_of_credit_balance": "0",
		"car_loan_balance":       "0",
	}

	var name string
	for i := 0; i < cat.Len(); i++ {
		if n := cat.Commit(i, answers, &form); n != "" {
			name = n
		}
	}

	if name != "Alex" {
		t.Errorf("expected display name Alex, got %q", name)
	}
	if form.LoanAmount != 30000 || form.FederalPortionPercent != 60 {
		t.Errorf("loan fields not committed: %+v", form)
	}
	if form.GraduationDate == "" || form.FieldOfStudy == "" || form.HouseholdSize == 0 {
		t.Errorf("field left unset: %+v", form)
	}
	if !form.HasEmergencyFund {
		t.Error("checkbox not committed")
	}
}

func TestCommit_MalformedInputFallsBackToDefault(t *testing.T) {
	cat := mustCatalog(t)
	form := domain.NewFormModel(time.Now())

	// Step 2 is the federal-portion step with declared default 60.
	cat.Commit(2, map[string]string{"federal_portion": "sixty-ish"}, &form)
	if form.FederalPortionPercent != 60 {
		t.Errorf("expected fallback to declared default 60, got %v", form.FederalPortionPercent)
	}

	// Loan amount has no default: malformed input becomes 0.
	cat.Commit(1, map[string]string{"loan_amount": "lots"}, &form)
	if form.LoanAmount != 0 {
		t.Errorf("expected 0 for malformed amount, got %v", form.LoanAmount)
	}
}

func TestCommit_OutOfRangeValuesAccepted(t *testing.T) {
	// The permissive policy accepts out-of-range values unchanged; if this
	// ever starts clamping or rejecting, that is a behavior change.
	cat := mustCatalog(t)
	form := domain.NewFormModel(time.Now())

	cat.Commit(1, map[string]string{"loan_amount": "-500"}, &form)
	if form.LoanAmount != -500 {
		t.Errorf("expected -500 accepted, got %v", form.LoanAmount)
	}

	cat.Commit(2, map[string]string{"federal_portion": "150"}, &form)
	if form.FederalPortionPercent != 150 {
		t.Errorf("expected 150 accepted, got %v", form.FederalPortionPercent)
	}
}

func TestParseBool_CheckedStates(t *testing.T) {
	cases := map[string]bool{
		"true": true, "on": true, "1": true, "checked": true, "Yes": true,
		"": false, "false": false, "off": false, "0": false,
	}
	for raw, want := range cases {
		if got := parseBool(raw); got != want {
			t.Errorf("parseBool(%q) = %v, want %v", raw, got, want)
		}
	}
}
