package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"mrtrack/internal/domain"
	"mrtrack/internal/logging"
)

// AssignTaskInput is the DTO for assigning a doctor visit to a rep.
type AssignTaskInput struct {
	FieldRepID string `json:"field_rep_id" binding:"required"`
	DoctorID   string `json:"doctor_id" binding:"required"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Notes      string `json:"notes"`
}

// TaskService assigns doctor visits to reps and tracks their completion.
type TaskService interface {
	Assign(ctx context.Context, actor Actor, input *AssignTaskInput) (*domain.Task, error)
	List(ctx context.Context, actor Actor, filter domain.TaskFilter) (*domain.TaskList, error)
	Agenda(ctx context.Context, actor Actor, fieldRepID string) (*domain.TaskAgenda, error)
	Complete(ctx context.Context, actor Actor, id string) (*domain.Task, error)
	Delete(ctx context.Context, actor Actor, id string) error
}

type taskService struct {
	repos Repositories
	cal   Calendar
}

// NewTaskService creates a new TaskService implementation.
func NewTaskService(repos Repositories, cal Calendar) TaskService {
	return &taskService{
		repos: repos,
		cal:   cal,
	}
}

// Assign creates a pending task for an active rep. The date defaults to today.
func (s *taskService) Assign(ctx context.Context, actor Actor, input *AssignTaskInput) (*domain.Task, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	rep, err := activeFieldRep(ctx, s.repos.FieldReps, actor, input.FieldRepID)
	if err != nil {
		return nil, err
	}
	date := input.Date
	if date == "" {
		date = s.cal.Today()
	} else if !domain.ValidDate(date) {
		return nil, domain.ErrInvalidDate
	}
	if input.Time != "" && !domain.ValidTime(input.Time) {
		return nil, domain.ErrInvalidTime
	}
	doctor, err := s.repos.Doctors.GetByID(ctx, input.DoctorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrDoctorNotFound
		}
		return nil, fmt.Errorf("task.Assign: %w", err)
	}

	task := &domain.Task{
		ID:              uuid.New().String(),
		FieldRepID:      rep.ID,
		FieldRepName:    rep.Name,
		DoctorID:        doctor.ID,
		DoctorName:      doctor.Name,
		DoctorSpecialty: doctor.Specialization,
		Date:            date,
		Time:            input.Time,
		Notes:           strings.TrimSpace(input.Notes),
		Status:          domain.TaskStatusPending,
		AssignedBy:      actor.DisplayName(),
		CreatedAt:       s.cal.Today(),
	}
	if err := s.repos.Tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("task.Assign: %w", err)
	}

	logging.Get().WithFields(logrus.Fields{
		"task_id":      task.ID,
		"field_rep_id": task.FieldRepID,
		"doctor_id":    task.DoctorID,
		"date":         task.Date,
	}).Info("task assigned")
	return task, nil
}

// List returns tasks newest first. MR users only ever see their own.
func (s *taskService) List(ctx context.Context, actor Actor, filter domain.TaskFilter) (*domain.TaskList, error) {
	if !actor.IsAdmin() {
		id, err := actor.ScopeFieldRep(filter.FieldRepID)
		if err != nil {
			return nil, err
		}
		filter.FieldRepID = id
	}
	if filter.Status != "" && filter.Status != domain.TaskStatusPending && filter.Status != domain.TaskStatusCompleted {
		return nil, fmt.Errorf("%w: unknown task status %q", domain.ErrInvalidStatus, filter.Status)
	}
	data, err := s.repos.LoadDataset(ctx)
	if err != nil {
		return nil, fmt.Errorf("task.List: %w", err)
	}
	list := s.cal.Engine(data).Tasks(filter)
	return &list, nil
}

// Agenda shows a rep today's tasks and what is coming up.
func (s *taskService) Agenda(ctx context.Context, actor Actor, fieldRepID string) (*domain.TaskAgenda, error) {
	id, err := scopeFieldRep(actor, fieldRepID)
	if err != nil {
		return nil, err
	}
	data, err := s.repos.LoadDataset(ctx)
	if err != nil {
		return nil, fmt.Errorf("task.Agenda: %w", err)
	}
	agenda := s.cal.Engine(data).TaskAgenda(id)
	return &agenda, nil
}

// Complete marks a task done. Only the assigned rep or an admin may do so.
func (s *taskService) Complete(ctx context.Context, actor Actor, id string) (*domain.Task, error) {
	task, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := actor.ScopeFieldRep(task.FieldRepID); err != nil {
		return nil, err
	}
	if err := task.Complete(s.cal.Today()); err != nil {
		return nil, err
	}
	if err := s.repos.Tasks.Complete(ctx, task); err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotPending):
			return nil, err
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("task.Complete: %w", err)
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, actor Actor, id string) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	if err := s.repos.Tasks.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrTaskNotFound
		}
		return fmt.Errorf("task.Delete: %w", err)
	}
	return nil
}

func (s *taskService) get(ctx context.Context, id string) (*domain.Task, error) {
	task, err := s.repos.Tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("task.get: %w", err)
	}
	return task, nil
}
