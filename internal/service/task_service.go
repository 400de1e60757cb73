package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trimkart/task-tracker/internal/domain"
	"github.com/trimkart/task-tracker/internal/events"
	"github.com/trimkart/task-tracker/internal/repository"
	"github.com/trimkart/task-tracker/pkg/util"
)

// TaskService coordinates task workflows.
type TaskService struct {
	tasks      repository.TaskRepository
	dispatcher events.Dispatcher
}

// TaskDependencies bundles requirements for the task service.
type TaskDependencies struct {
	TaskRepo   repository.TaskRepository
	Dispatcher events.Dispatcher
}

// NewTaskService constructs the service.
func NewTaskService(deps TaskDependencies) *TaskService {
	return &TaskService{
		tasks:      deps.TaskRepo,
		dispatcher: deps.Dispatcher,
	}
}

// TaskCreateInput describes the task creation payload. AssignedTo, AssignedBy
// and DepartmentID are stored as given without existence checks.
type TaskCreateInput struct {
	Title        string
	Description  string
	AssignedTo   string
	AssignedBy   string
	DepartmentID string
	Status       string
	DueDate      *time.Time
	Progress     int
	Updates      []domain.TaskUpdateEntry
}

// Create inserts a task with server-set timestamps.
func (s *TaskService) Create(ctx context.Context, input TaskCreateInput) (string, error) {
	status := domain.TaskStatus(input.Status)
	if status == "" {
		status = domain.TaskStatusPending
	}

	updates := input.Updates
	if updates == nil {
		updates = make([]domain.TaskUpdateEntry, 0)
	}

	now := time.Now().UTC()
	task := &domain.Task{
		Title:        input.Title,
		Description:  input.Description,
		AssignedTo:   input.AssignedTo,
		AssignedBy:   input.AssignedBy,
		DepartmentID: input.DepartmentID,
		Status:       status,
		DueDate:      input.DueDate,
		Progress:     input.Progress,
		Updates:      updates,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.tasks.Insert(ctx, task); err != nil {
		return "", err
	}

	s.publish(ctx, events.EventTaskCreated, task.ID.Hex(), events.TaskCreatedPayload{
		Title:        task.Title,
		AssignedTo:   task.AssignedTo,
		AssignedBy:   task.AssignedBy,
		DepartmentID: task.DepartmentID,
		Status:       task.Status,
	})
	return task.ID.Hex(), nil
}

// List returns tasks matching the filter, most recently created first.
func (s *TaskService) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	return s.tasks.Find(ctx, filter)
}

// AddUpdate appends a progress entry to the task. The entry's CreatedAt is
// defaulted to the current UTC time when the caller omitted it; the task's
// own progress field is never touched.
func (s *TaskService) AddUpdate(ctx context.Context, taskID string, entry domain.TaskUpdateEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	if err := s.tasks.AppendUpdate(ctx, taskID, entry, time.Now().UTC()); err != nil {
		return mapTaskError(err)
	}

	s.publish(ctx, events.EventTaskUpdateAdded, taskID, events.TaskUpdateAddedPayload{
		UserID:   entry.UserID,
		Progress: entry.Progress,
	})
	return nil
}

// SetStatus changes the task status. Unrecognized values are rejected before
// any store access, so a failed call never mutates the task.
func (s *TaskService) SetStatus(ctx context.Context, taskID, status string) error {
	newStatus := domain.TaskStatus(status)
	if !newStatus.Valid() {
		return util.NewValidationError("invalid status", map[string]any{
			"status": "must be one of PENDING IN_PROGRESS COMPLETED",
		})
	}

	if err := s.tasks.SetStatus(ctx, taskID, newStatus, time.Now().UTC()); err != nil {
		return mapTaskError(err)
	}

	s.publish(ctx, events.EventTaskStatusChanged, taskID, events.TaskStatusChangedPayload{
		NewStatus: newStatus,
	})
	return nil
}

func (s *TaskService) publish(ctx context.Context, eventType events.EventType, entityID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
}

func mapTaskError(err error) error {
	switch {
	case errors.Is(err, repository.ErrMalformedID):
		return util.NewMalformedID()
	case errors.Is(err, mongo.ErrNoDocuments):
		return util.NewNotFound("task", nil)
	}
	return err
}
