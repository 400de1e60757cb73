package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trimkart/task-tracker/internal/auth"
	"github.com/trimkart/task-tracker/internal/config"
	"github.com/trimkart/task-tracker/internal/domain"
	"github.com/trimkart/task-tracker/internal/events"
	"github.com/trimkart/task-tracker/internal/repository"
	"github.com/trimkart/task-tracker/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// RegisterInput describes the registration payload.
type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	Role         string
	DepartmentID string
}

// Register creates a user account. The email must not already exist; the check
// is a case-sensitive exact match against stored emails.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (string, error) {
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return "", util.NewConflict("email already registered", map[string]any{"email": input.Email})
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return "", err
	}

	role := domain.Role(input.Role)
	if role == "" {
		role = domain.RoleEmployee
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		DepartmentID: input.DepartmentID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return "", err
	}

	s.publish(ctx, events.EventUserRegistered, user.ID.Hex(), events.UserRegisteredPayload{
		Role:         user.Role,
		DepartmentID: user.DepartmentID,
	})
	return user.ID.Hex(), nil
}

// Login authenticates a user by email and password. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, util.NewAuthError()
		}
		return nil, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, util.NewAuthError()
	}
	return user, nil
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, entityID string, payload interface{}) {
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
