package client

import (
	"context"
	"errors"

	"loan-wizard/domain"
)

// CompareRequest carries the session's loan against the community dataset.
type CompareRequest struct {
	LoanAmount   float64 `json:"loan_amount"`
	FieldOfStudy string  `json:"field_of_study"`
}

// Compare fetches community comparison figures. A dataset with no prior
// submissions is a normal success whose aggregate fields are absent.
func (c *Client) Compare(ctx context.Context, req CompareRequest) (domain.CommunityComparison, error) {
	var out struct {
		domain.CommunityComparison
		Error string `json:"error,omitempty"`
	}
	if err := c.postJSON(ctx, c.communityURL+"/api/community/compare", req, &out); err != nil {
		return domain.CommunityComparison{}, err
	}
	if out.Error != "" {
		return domain.CommunityComparison{}, errors.New(out.Error)
	}
	return out.CommunityComparison, nil
}
