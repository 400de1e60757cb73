package service

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trimkart/task-tracker/internal/domain"
	"github.com/trimkart/task-tracker/internal/repository"
)

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users []domain.User
}

func (f *fakeUserRepo) Insert(_ context.Context, user *domain.User) error {
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) Find(_ context.Context, filter repository.UserFilter) ([]domain.User, error) {
	matched := make([]domain.User, 0)
	for _, u := range f.users {
		if filter.Role != "" && string(u.Role) != filter.Role {
			continue
		}
		if filter.DepartmentID != "" && u.DepartmentID != filter.DepartmentID {
			continue
		}
		matched = append(matched, u)
	}
	return matched, nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

// fakeTaskRepo is an in-memory TaskRepository mirroring the store's id and
// atomic-update semantics.
type fakeTaskRepo struct {
	tasks       map[string]*domain.Task
	setStatuses int
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]*domain.Task)}
}

func (f *fakeTaskRepo) Insert(_ context.Context, task *domain.Task) error {
	task.ID = primitive.NewObjectID()
	stored := *task
	f.tasks[task.ID.Hex()] = &stored
	return nil
}

func (f *fakeTaskRepo) Find(_ context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	matched := make([]domain.Task, 0)
	for _, t := range f.tasks {
		if f.matches(t, filter) {
			matched = append(matched, *t)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

func (f *fakeTaskRepo) AppendUpdate(_ context.Context, id string, entry domain.TaskUpdateEntry, now time.Time) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrMalformedID
	}
	task, ok := f.tasks[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	task.Updates = append(task.Updates, entry)
	task.UpdatedAt = now
	return nil
}

func (f *fakeTaskRepo) SetStatus(_ context.Context, id string, status domain.TaskStatus, now time.Time) error {
	f.setStatuses++
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrMalformedID
	}
	task, ok := f.tasks[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	task.Status = status
	task.UpdatedAt = now
	return nil
}

func (f *fakeTaskRepo) Count(_ context.Context, filter repository.TaskFilter) (int64, error) {
	var count int64
	for _, t := range f.tasks {
		if f.matches(t, filter) {
			count++
		}
	}
	return count, nil
}

func (f *fakeTaskRepo) matches(t *domain.Task, filter repository.TaskFilter) bool {
	if filter.Status != "" && string(t.Status) != filter.Status {
		return false
	}
	if filter.AssignedTo != "" && t.AssignedTo != filter.AssignedTo {
		return false
	}
	if filter.DepartmentID != "" && t.DepartmentID != filter.DepartmentID {
		return false
	}
	return true
}
