package service

import (
	"context"
	"time"

	"github.com/avakimov/fleetdeck/internal/models"
	"github.com/avakimov/fleetdeck/internal/repository"
)

// TaskRepository defines the persistence operations required by the
// task service.
type TaskRepository interface {
	ListTasks(ctx context.Context) ([]models.Task, error)
	GetTask(ctx context.Context, id int) (*models.Task, error)
	CreateTask(ctx context.Context, t models.Task) (*models.Task, error)
	UpdateTask(ctx context.Context, id int, patch models.TaskPatch) (*models.Task, error)
	DeleteTask(ctx context.Context, id int) error
}

// TaskService implements the task lifecycle on top of a TaskRepository.
type TaskService struct {
	repo TaskRepository
}

// NewTaskService constructs a TaskService using the provided repository.
func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// List returns all tasks, newest created first.
func (s *TaskService) List(ctx context.Context) ([]models.Task, error) {
	return s.repo.ListTasks(ctx)
}

// Get returns the task with the given id, or nil if absent.
func (s *TaskService) Get(ctx context.Context, id int) (*models.Task, error) {
	return s.repo.GetTask(ctx, id)
}

// Create validates required fields, applies defaults, and stores the
// task. Title is required; priority defaults to normal and assignment
// to "Unassigned". New tasks always start pending.
func (s *TaskService) Create(ctx context.Context, req models.TaskPatch) (*models.Task, error) {
	if req.Title == nil || *req.Title == "" {
		return nil, ValidationError("task title is required")
	}

	t := models.Task{
		Title:    *req.Title,
		Priority: models.PriorityNormal,
		Assigned: "Unassigned",
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.VehicleID != nil {
		t.VehicleID = *req.VehicleID
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	if req.Assigned != nil {
		t.Assigned = *req.Assigned
	}
	if req.DueDate != nil {
		d := *req.DueDate
		t.DueDate = &d
	}

	return s.repo.CreateTask(ctx, t)
}

// Update merges the patch into the stored task. When the patch flips
// Completed from false to true, CompletedAt is stamped with the current
// time. The stamp fires on every false-to-true edge: a task that is
// reopened and completed again gets a fresh timestamp. Setting
// Completed back to false leaves the previous stamp in place.
func (s *TaskService) Update(ctx context.Context, id int, patch models.TaskPatch) (*models.Task, error) {
	existing, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, repository.ErrNotFound
	}

	if patch.Completed != nil && *patch.Completed && !existing.Completed {
		now := time.Now()
		patch.CompletedAt = &now
	}

	return s.repo.UpdateTask(ctx, id, patch)
}

// Delete removes the task in any state. Idempotent.
func (s *TaskService) Delete(ctx context.Context, id int) error {
	return s.repo.DeleteTask(ctx, id)
}
