package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/trimkart/task-tracker/internal/domain"
	"github.com/trimkart/task-tracker/internal/events"
	"github.com/trimkart/task-tracker/internal/repository"
)

// DirectoryService serves the organization directory: departments and users.
type DirectoryService struct {
	departments repository.DepartmentRepository
	users       repository.UserRepository
	dispatcher  events.Dispatcher
}

// DirectoryDependencies bundles repositories for the directory service.
type DirectoryDependencies struct {
	DepartmentRepo repository.DepartmentRepository
	UserRepo       repository.UserRepository
	Dispatcher     events.Dispatcher
}

// NewDirectoryService constructs the service.
func NewDirectoryService(deps DirectoryDependencies) *DirectoryService {
	return &DirectoryService{
		departments: deps.DepartmentRepo,
		users:       deps.UserRepo,
		dispatcher:  deps.Dispatcher,
	}
}

// DepartmentCreateInput describes the department creation payload.
type DepartmentCreateInput struct {
	Name          string
	Description   string
	ManagerUserID string
}

// CreateDepartment inserts a department. Names are not required to be unique;
// ManagerUserID is stored as given without an existence check.
func (s *DirectoryService) CreateDepartment(ctx context.Context, input DepartmentCreateInput) (string, error) {
	now := time.Now().UTC()
	department := &domain.Department{
		Name:          input.Name,
		Description:   input.Description,
		ManagerUserID: input.ManagerUserID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.departments.Insert(ctx, department); err != nil {
		return "", err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventDepartmentCreated,
			EntityID:  department.ID.Hex(),
			Timestamp: time.Now().UTC(),
			Payload:   events.DepartmentCreatedPayload{Name: department.Name},
		})
	}
	return department.ID.Hex(), nil
}

// ListDepartments returns every department sorted by name ascending.
func (s *DirectoryService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	return s.departments.List(ctx)
}

// ListUsers returns users matching the filter. Filters combine with logical
// AND; absent filters impose no constraint.
func (s *DirectoryService) ListUsers(ctx context.Context, filter repository.UserFilter) ([]domain.User, error) {
	return s.users.Find(ctx, filter)
}
