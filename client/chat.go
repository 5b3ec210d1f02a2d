package client

import (
	"context"
	"fmt"

	"loan-wizard/domain"
)

// ChatRequest is one user message with enough form context for the
// responder to answer in character.
type ChatRequest struct {
	Message         string  `json:"message"`
	LoanAmount      float64 `json:"loan_amount"`
	MonthlyIncome   float64 `json:"monthly_income"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
	FieldOfStudy    string  `json:"field_of_study"`
}

// Chat sends a message to the conversational responder.
func (c *Client) Chat(ctx context.Context, message string, form domain.FormModel) (string, error) {
	req := ChatRequest{
		Message:         message,
		LoanAmount:      form.LoanAmount,
		MonthlyIncome:   form.MonthlyIncome,
		MonthlyExpenses: form.MonthlyExpenses,
		FieldOfStudy:    form.FieldOfStudy,
	}
	var out struct {
		Response string `json:"response"`
	}
	if err := c.postJSON(ctx, c.chatURL+"/api/chat", req, &out); err != nil {
		return "", err
	}
	if out.Response == "" {
		return "", fmt.Errorf("no response from chat service")
	}
	return out.Response, nil
}
