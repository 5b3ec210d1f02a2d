package repository

import (
	"context"
	"sync"

	"loan-wizard/domain"
)

// PlanRepositoryMemory is an in-memory implementation of PlanRepository.
type PlanRepositoryMemory struct {
	mu    sync.RWMutex
	plans map[string]domain.SavedPlan
}

// NewPlanRepositoryMemory creates a new in-memory plan repository.
func NewPlanRepositoryMemory() *PlanRepositoryMemory {
	return &PlanRepositoryMemory{
		plans: make(map[string]domain.SavedPlan),
	}
}

// Save stores the plan in memory.
func (r *PlanRepositoryMemory) Save(ctx context.Context, plan domain.SavedPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans[plan.PlanID] = plan
	return nil
}

// Load returns the plan for the given id, or ErrPlanNotFound.
func (r *PlanRepositoryMemory) Load(ctx context.Context, planID string) (domain.SavedPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	plan, ok := r.plans[planID]
	if !ok {
		return domain.SavedPlan{}, ErrPlanNotFound
	}
	return plan, nil
}
