package repository

import (
	"context"
	"errors"

	"loan-wizard/domain"
)

// ErrPlanNotFound is returned when no plan exists for the given code.
var ErrPlanNotFound = errors.New("plan not found")

// PlanRepository persists named wizard plans.
type PlanRepository interface {
	Save(ctx context.Context, plan domain.SavedPlan) error
	Load(ctx context.Context, planID string) (domain.SavedPlan, error)
}
