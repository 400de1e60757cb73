package service

import (
	"context"

	"github.com/trimkart/task-tracker/internal/domain"
	"github.com/trimkart/task-tracker/internal/repository"
)

// AnalyticsService computes aggregates over current store state. Nothing is
// cached; every call reads the live collections.
type AnalyticsService struct {
	users repository.UserRepository
	tasks repository.TaskRepository
}

// AnalyticsDependencies bundles repositories for the analytics service.
type AnalyticsDependencies struct {
	UserRepo repository.UserRepository
	TaskRepo repository.TaskRepository
}

// NewAnalyticsService constructs the service.
func NewAnalyticsService(deps AnalyticsDependencies) *AnalyticsService {
	return &AnalyticsService{
		users: deps.UserRepo,
		tasks: deps.TaskRepo,
	}
}

// Overview aggregates user and task counts plus a derived completion rate.
type Overview struct {
	Users          int64   `json:"users"`
	Tasks          int64   `json:"tasks"`
	Completed      int64   `json:"completed"`
	InProgress     int64   `json:"in_progress"`
	Pending        int64   `json:"pending"`
	CompletionRate float64 `json:"completion_rate"`
}

// Overview computes the aggregate snapshot. The completion rate is defined as
// exactly 0.0 when no tasks exist.
func (s *AnalyticsService) Overview(ctx context.Context) (*Overview, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.tasks.Count(ctx, repository.TaskFilter{})
	if err != nil {
		return nil, err
	}
	completed, err := s.tasks.Count(ctx, repository.TaskFilter{Status: string(domain.TaskStatusCompleted)})
	if err != nil {
		return nil, err
	}
	inProgress, err := s.tasks.Count(ctx, repository.TaskFilter{Status: string(domain.TaskStatusInProgress)})
	if err != nil {
		return nil, err
	}
	pending, err := s.tasks.Count(ctx, repository.TaskFilter{Status: string(domain.TaskStatusPending)})
	if err != nil {
		return nil, err
	}

	rate := 0.0
	if total > 0 {
		rate = float64(completed) / float64(total) * 100
	}

	return &Overview{
		Users:          users,
		Tasks:          total,
		Completed:      completed,
		InProgress:     inProgress,
		Pending:        pending,
		CompletionRate: rate,
	}, nil
}
