package memory

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"itinera/internal/model"
	"itinera/internal/repository"
)

type userRepository struct {
	mu    sync.RWMutex
	users []model.UserRecord
	now   func() time.Time
}

// NewUserRepository returns an empty user store. A nil now uses time.Now.
func NewUserRepository(now func() time.Time) repository.UserRepository {
	if now == nil {
		now = time.Now
	}
	return &userRepository{now: now}
}

func (r *userRepository) Create(_ context.Context, user model.User) (*model.UserRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefs := map[string]any{}
	maps.Copy(prefs, user.Preferences)
	rec := model.UserRecord{
		ID:          fmt.Sprintf("user_%d", len(r.users)+1),
		Name:        user.Name,
		Email:       user.Email,
		Preferences: prefs,
		CreatedAt:   r.now().UTC(),
	}
	r.users = append(r.users, rec)
	return &rec, nil
}

func (r *userRepository) List(_ context.Context) ([]model.UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.UserRecord{}, r.users...), nil
}
