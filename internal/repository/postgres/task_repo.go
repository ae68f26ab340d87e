package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"mrtrack/internal/domain"
	"mrtrack/internal/port"
)

const taskColumns = `id, field_rep_id, field_rep_name, doctor_id, doctor_name, doctor_specialty,
	date, time, notes, status, assigned_by, created_at, completed_at`

type taskRepo struct {
	db *sqlx.DB
}

// NewTaskRepo creates a new PostgreSQL-backed TaskRepository.
func NewTaskRepo(db *sqlx.DB) port.TaskRepository {
	return &taskRepo{db: db}
}

func (r *taskRepo) Create(ctx context.Context, task *domain.Task) error {
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO tasks (`+taskColumns+`)
		 VALUES (:id, :field_rep_id, :field_rep_name, :doctor_id, :doctor_name, :doctor_specialty,
		         :date, :time, :notes, :status, :assigned_by, :created_at, :completed_at)`, task)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicateID
		}
		return fmt.Errorf("taskRepo.Create: %w", err)
	}
	return nil
}

func (r *taskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.GetContext(ctx, &task, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("taskRepo.GetByID: %w", err)
	}
	return &task, nil
}

func (r *taskRepo) List(ctx context.Context) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0)
	if err := r.db.SelectContext(ctx, &tasks, `SELECT `+taskColumns+` FROM tasks ORDER BY seq`); err != nil {
		return nil, fmt.Errorf("taskRepo.List: %w", err)
	}
	return tasks, nil
}

func (r *taskRepo) Complete(ctx context.Context, task *domain.Task) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status = 'completed', completed_at = $2
		 WHERE id = $1 AND status = 'pending'`, task.ID, task.CompletedAt)
	if err != nil {
		return fmt.Errorf("taskRepo.Complete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("taskRepo.Complete: %w", err)
	}
	if n > 0 {
		return nil
	}
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM tasks WHERE id = $1)`, task.ID); err != nil {
		return fmt.Errorf("taskRepo.Complete: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrTaskNotPending
}

func (r *taskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("taskRepo.Delete: %w", err)
	}
	return requireRow(res, "taskRepo.Delete")
}
