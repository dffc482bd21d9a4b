package tasks

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/clock"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/errors"
)

type service struct {
	repo   Repository
	logger *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(repo Repository, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		repo:   repo,
		logger: logger,
	}, nil
}

func (s *service) Create(ctx context.Context, task Task) (*Task, error) {
	if err := validateNewTask(task); err != nil {
		return nil, err
	}

	task.Id = clock.NewID()
	task.CreatedAt = clock.Timestamp()
	task.CompletedAt = nil
	if task.Status == "" {
		task.Status = StatusPending
	}
	if task.AssignedTo == "" {
		task.AssignedTo = DefaultAssignee
	}

	s.logger.Infow("creating task", "id", task.Id, "patientId", task.PatientId, "type", task.TaskType)
	return s.repo.Create(ctx, task)
}

func (s *service) List(ctx context.Context, filter *Filter) ([]*Task, error) {
	return s.repo.List(ctx, filter)
}

// Complete marks the task completed. Completing an already completed task
// is a no-op that preserves the original completion timestamp.
func (s *service) Complete(ctx context.Context, id string) error {
	result, err := s.repo.Complete(ctx, id)
	if err != nil {
		return err
	}
	if result.Matched == 0 {
		return fmt.Errorf("task %s: %w", id, errors.NotFound)
	}
	if result.Modified == 0 {
		s.logger.Infow("task already completed", "id", id)
		return nil
	}

	s.logger.Infow("completed task", "id", id)
	return nil
}

func validateNewTask(task Task) error {
	if task.PatientId == "" {
		return fmt.Errorf("patient_id is required: %w", errors.BadRequest)
	}
	if task.Title == "" {
		return fmt.Errorf("title is required: %w", errors.BadRequest)
	}
	if !task.TaskType.Valid() {
		return fmt.Errorf("invalid task_type %q: %w", task.TaskType, errors.BadRequest)
	}
	if task.Status != "" && !task.Status.Valid() {
		return fmt.Errorf("invalid status %q: %w", task.Status, errors.BadRequest)
	}
	if task.DueDate != nil {
		if _, err := clock.ParseDate(*task.DueDate); err != nil {
			return fmt.Errorf("invalid due_date: %w", errors.BadRequest)
		}
	}
	return nil
}
