package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trimkart/task-tracker/internal/api/dto"
	"github.com/trimkart/task-tracker/pkg/util"
)

func details(t *testing.T, err error) map[string]any {
	t.Helper()
	require.Error(t, err)
	domainErr := util.ToDomainError(err)
	require.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	return domainErr.Details
}

func TestRegisterRequestFieldErrors(t *testing.T) {
	err := Struct(dto.RegisterRequest{Role: "INTERN"})
	d := details(t, err)
	assert.Contains(t, d, "name")
	assert.Contains(t, d, "email")
	assert.Contains(t, d, "password")
	assert.Contains(t, d, "role")

	err = Struct(dto.RegisterRequest{Name: "A", Email: "not-an-email", Password: "pw"})
	d = details(t, err)
	assert.Contains(t, d, "email")
	assert.NotContains(t, d, "name")
}

func TestRegisterRequestAcceptsAllRoles(t *testing.T) {
	for _, role := range []string{"MD", "CEO", "COO", "MANAGER", "EMPLOYEE", ""} {
		err := Struct(dto.RegisterRequest{Name: "A", Email: "a@b.co", Password: "pw", Role: role})
		assert.NoError(t, err, "role %q", role)
	}
}

func TestTaskProgressBounds(t *testing.T) {
	base := dto.CreateTaskRequest{Title: "t", AssignedTo: "u1", AssignedBy: "u2"}

	for _, progress := range []int{0, 50, 100} {
		req := base
		req.Progress = progress
		assert.NoError(t, Struct(req), "progress %d", progress)
	}
	for _, progress := range []int{-1, 101, 150} {
		req := base
		req.Progress = progress
		d := details(t, Struct(req))
		assert.Contains(t, d, "progress")
	}
}

func TestTaskStatusEnum(t *testing.T) {
	base := dto.CreateTaskRequest{Title: "t", AssignedTo: "u1", AssignedBy: "u2"}

	for _, status := range []string{"PENDING", "IN_PROGRESS", "COMPLETED", ""} {
		req := base
		req.Status = status
		assert.NoError(t, Struct(req), "status %q", status)
	}
	req := base
	req.Status = "DONE"
	d := details(t, Struct(req))
	assert.Contains(t, d, "status")
}

func TestEmbeddedUpdateEntryValidation(t *testing.T) {
	bad := 101
	req := dto.CreateTaskRequest{
		Title: "t", AssignedTo: "u1", AssignedBy: "u2",
		Updates: []dto.TaskUpdateRequest{{UserID: "u1", Progress: &bad}},
	}
	d := details(t, Struct(req))
	assert.Contains(t, d, "progress")

	ok := 100
	req.Updates = []dto.TaskUpdateRequest{{UserID: "u1", Progress: &ok}}
	assert.NoError(t, Struct(req))
}

func TestTaskUpdateRequestBounds(t *testing.T) {
	neg := -1
	d := details(t, Struct(dto.TaskUpdateRequest{UserID: "u1", Progress: &neg}))
	assert.Contains(t, d, "progress")

	zero := 0
	assert.NoError(t, Struct(dto.TaskUpdateRequest{UserID: "u1", Progress: &zero}))
	assert.NoError(t, Struct(dto.TaskUpdateRequest{UserID: "u1"}))

	d = details(t, Struct(dto.TaskUpdateRequest{Note: "missing user"}))
	assert.Contains(t, d, "user_id")
}

func TestLoginRequestValidation(t *testing.T) {
	d := details(t, Struct(dto.LoginRequest{Email: "a@b.co"}))
	assert.Contains(t, d, "password")
	assert.NoError(t, Struct(dto.LoginRequest{Email: "a@b.co", Password: "pw"}))
}
