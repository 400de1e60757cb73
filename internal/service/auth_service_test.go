package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/trimkart/task-tracker/internal/config"
	"github.com/trimkart/task-tracker/internal/domain"
	"github.com/trimkart/task-tracker/pkg/util"
)

func newAuthService(users *fakeUserRepo) *AuthService {
	cfg := config.Config{Auth: config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	return NewAuthService(cfg, AuthDependencies{UserRepo: users})
}

func TestRegisterStoresHashedPasswordAndDefaults(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	id, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.Len(t, users.users, 1)
	stored := users.users[0]
	assert.Equal(t, domain.RoleEmployee, stored.Role)
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")))
	assert.False(t, stored.CreatedAt.IsZero())
	assert.Equal(t, stored.CreatedAt, stored.UpdatedAt)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "Asha Rao", Email: "asha@example.com", Password: "s3cret",
	})
	require.NoError(t, err)

	// other fields differ, but the email alone decides the conflict
	_, err = svc.Register(context.Background(), RegisterInput{
		Name: "Someone Else", Email: "asha@example.com", Password: "other", Role: "MANAGER",
	})
	require.Error(t, err)
	domainErr := util.ToDomainError(err)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Equal(t, 400, domainErr.HTTPStatus)
	assert.Len(t, users.users, 1)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "Asha Rao", Email: "asha@example.com", Password: "s3cret",
	})
	require.NoError(t, err)

	_, unknownErr := svc.Login(context.Background(), "nobody@example.com", "s3cret")
	_, wrongPassErr := svc.Login(context.Background(), "asha@example.com", "wrong")
	require.Error(t, unknownErr)
	require.Error(t, wrongPassErr)

	unknown := util.ToDomainError(unknownErr)
	wrongPass := util.ToDomainError(wrongPassErr)
	assert.Equal(t, unknown.Code, wrongPass.Code)
	assert.Equal(t, unknown.Message, wrongPass.Message)
	assert.Equal(t, unknown.HTTPStatus, wrongPass.HTTPStatus)
	assert.Equal(t, 401, unknown.HTTPStatus)
}

func TestLoginSuccessReturnsUser(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "Asha Rao", Email: "asha@example.com", Password: "s3cret", Role: "CEO",
	})
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), "asha@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, domain.RoleCEO, user.Role)
}
