package client

import (
	"context"
	"errors"

	"loan-wizard/domain"
)

// Calculate submits the complete form and returns the repayment analysis.
func (c *Client) Calculate(ctx context.Context, form domain.FormModel) (domain.ResultsSnapshot, error) {
	var out struct {
		domain.ResultsSnapshot
		Error string `json:"error,omitempty"`
	}
	if err := c.postJSON(ctx, c.calcURL+"/api/calculate", form, &out); err != nil {
		return domain.ResultsSnapshot{}, err
	}
	if out.Error != "" {
		return domain.ResultsSnapshot{}, errors.New(out.Error)
	}
	return out.ResultsSnapshot, nil
}

// WhatIfRequest carries one slider recompute.
type WhatIfRequest struct {
	LoanAmount            float64 `json:"loan_amount"`
	FederalPortionPercent float64 `json:"federal_portion"`
	ExtraPayment          float64 `json:"extra_payment"`
	BasePayment           float64 `json:"base_payment"`
}

// WhatIf recomputes the recommended scenario with an extra monthly payment.
func (c *Client) WhatIf(ctx context.Context, req WhatIfRequest) (domain.WhatIfResult, error) {
	var out struct {
		domain.WhatIfResult
		Error string `json:"error,omitempty"`
	}
	if err := c.postJSON(ctx, c.calcURL+"/api/whatif", req, &out); err != nil {
		return domain.WhatIfResult{}, err
	}
	if out.Error != "" {
		return domain.WhatIfResult{}, errors.New(out.Error)
	}
	return out.WhatIfResult, nil
}

// MultiDebtRequest asks for a payoff ordering across the student loan and
// the extra consumer debts.
type MultiDebtRequest struct {
	LoanAmount            float64 `json:"loan_amount"`
	FederalPortionPercent float64 `json:"federal_portion"`
	CreditCardBalance     float64 `json:"credit_card_balance"`
	LineOfCreditBalance   float64 `json:"line_of_credit_balance"`
	CarLoanBalance        float64 `json:"car_loan_balance"`
	MonthlyBudget         float64 `json:"monthly_budget"`
}

// MultiDebt returns the recommended payoff ordering.
func (c *Client) MultiDebt(ctx context.Context, req MultiDebtRequest) (domain.MultiDebtPlan, error) {
	var out struct {
		domain.MultiDebtPlan
		Error string `json:"error,omitempty"`
	}
	if err := c.postJSON(ctx, c.calcURL+"/api/multi-debt", req, &out); err != nil {
		return domain.MultiDebtPlan{}, err
	}
	if out.Error != "" {
		return domain.MultiDebtPlan{}, errors.New(out.Error)
	}
	return out.MultiDebtPlan, nil
}

// Rates fetches the current prime/federal/provincial rates.
func (c *Client) Rates(ctx context.Context) (domain.Rates, error) {
	var out domain.Rates
	if err := c.getJSON(ctx, c.calcURL+"/api/rates", &out); err != nil {
		return domain.Rates{}, err
	}
	return out, nil
}
