// Package repository contains data access abstractions for planner state.
// Implementations live in subpackages; memory keeps everything in process.
package repository

import (
	"context"
	"errors"

	"itinera/internal/model"
)

// ErrNotFound is returned when no record matches the requested id.
var ErrNotFound = errors.New("record not found")

// PlanRepository stores user-created travel plans.
type PlanRepository interface {
	// Create stores a plan and returns it with its assigned id ("plan_N") and creation time.
	Create(ctx context.Context, plan model.TravelPlan) (*model.TravelPlanRecord, error)
	FindByID(ctx context.Context, id string) (*model.TravelPlanRecord, error)
	// List returns plans in creation order.
	List(ctx context.Context) ([]model.TravelPlanRecord, error)
}

// UserRepository stores accounts.
type UserRepository interface {
	// Create stores a user and returns it with its assigned id ("user_N").
	Create(ctx context.Context, user model.User) (*model.UserRecord, error)
	List(ctx context.Context) ([]model.UserRecord, error)
}

// TaskRepository stores background destination tasks. Entries may expire.
type TaskRepository interface {
	Save(ctx context.Context, task *model.Task) error
	// FindByID returns a snapshot that is safe to read while workers update the task.
	FindByID(ctx context.Context, id string) (*model.Task, error)
	// Update applies fn to the stored task atomically with respect to other updates.
	Update(ctx context.Context, id string, fn func(*model.Task)) error
}
