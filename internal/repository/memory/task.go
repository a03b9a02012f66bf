package memory

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"itinera/internal/model"
	"itinera/internal/repository"
)

type taskRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

// NewTaskRepository keeps tasks for ttl after their last update, purging expired ones every cleanup.
func NewTaskRepository(ttl, cleanup time.Duration) repository.TaskRepository {
	return &taskRepository{cache: cache.New(ttl, cleanup)}
}

func (r *taskRepository) Save(_ context.Context, task *model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache.Set(task.TaskID, task.Clone(), cache.DefaultExpiration)
	return nil
}

func (r *taskRepository) FindByID(_ context.Context, id string) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.cache.Get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return v.(*model.Task).Clone(), nil
}

func (r *taskRepository) Update(_ context.Context, id string, fn func(*model.Task)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.cache.Get(id)
	if !ok {
		return repository.ErrNotFound
	}
	task := v.(*model.Task)
	fn(task)
	r.cache.Set(id, task, cache.DefaultExpiration)
	return nil
}
