package memory

import (
	"context"

	"mrtrack/internal/domain"
	"mrtrack/internal/port"
)

type taskRepo struct {
	s *Store
}

// NewTaskRepo creates an in-memory TaskRepository.
func NewTaskRepo(s *Store) port.TaskRepository {
	return &taskRepo{s: s}
}

func (r *taskRepo) Create(_ context.Context, task *domain.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.tasks {
		if r.s.tasks[i].ID == task.ID {
			return domain.ErrDuplicateID
		}
	}
	r.s.tasks = append(r.s.tasks, *task)
	return nil
}

func (r *taskRepo) GetByID(_ context.Context, id string) (*domain.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if i := r.indexLocked(id); i >= 0 {
		t := r.s.tasks[i]
		return &t, nil
	}
	return nil, domain.ErrNotFound
}

func (r *taskRepo) List(_ context.Context) ([]domain.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append(make([]domain.Task, 0, len(r.s.tasks)), r.s.tasks...), nil
}

func (r *taskRepo) Complete(_ context.Context, task *domain.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.indexLocked(task.ID)
	if i < 0 {
		return domain.ErrNotFound
	}
	if r.s.tasks[i].Status != domain.TaskStatusPending {
		return domain.ErrTaskNotPending
	}
	r.s.tasks[i].Status = domain.TaskStatusCompleted
	r.s.tasks[i].CompletedAt = task.CompletedAt
	return nil
}

func (r *taskRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.indexLocked(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.s.tasks = append(r.s.tasks[:i], r.s.tasks[i+1:]...)
	return nil
}

func (r *taskRepo) indexLocked(id string) int {
	for i := range r.s.tasks {
		if r.s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
