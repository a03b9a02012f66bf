// Package memory implements the repositories in process memory. State is lost on restart.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"itinera/internal/model"
	"itinera/internal/repository"
)

const planStatusCreated = "created"

type planRepository struct {
	mu    sync.RWMutex
	plans []model.TravelPlanRecord
	now   func() time.Time
}

// NewPlanRepository returns an empty plan store. A nil now uses time.Now.
func NewPlanRepository(now func() time.Time) repository.PlanRepository {
	if now == nil {
		now = time.Now
	}
	return &planRepository{now: now}
}

func (r *planRepository) Create(_ context.Context, plan model.TravelPlan) (*model.TravelPlanRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := model.TravelPlanRecord{
		ID:          fmt.Sprintf("plan_%d", len(r.plans)+1),
		Destination: plan.Destination,
		Duration:    plan.Duration,
		Budget:      plan.Budget,
		Interests:   append([]string{}, plan.Interests...),
		Status:      planStatusCreated,
		CreatedAt:   r.now().UTC(),
	}
	r.plans = append(r.plans, rec)
	return &rec, nil
}

func (r *planRepository) FindByID(_ context.Context, id string) (*model.TravelPlanRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.plans {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *planRepository) List(_ context.Context) ([]model.TravelPlanRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.TravelPlanRecord{}, r.plans...), nil
}
