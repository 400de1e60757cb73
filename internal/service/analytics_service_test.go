package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverviewWithNoTasksReportsZeroRate(t *testing.T) {
	users := &fakeUserRepo{}
	tasks := newFakeTaskRepo()
	svc := NewAnalyticsService(AnalyticsDependencies{UserRepo: users, TaskRepo: tasks})

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Zero(t, overview.Users)
	assert.Zero(t, overview.Tasks)
	assert.Equal(t, 0.0, overview.CompletionRate)
}

func TestOverviewCountsPerStatus(t *testing.T) {
	users := &fakeUserRepo{}
	tasks := newFakeTaskRepo()
	taskSvc := newTaskService(tasks)
	authSvc := newAuthService(users)

	_, err := authSvc.Register(context.Background(), RegisterInput{
		Name: "Asha Rao", Email: "asha@example.com", Password: "pw",
	})
	require.NoError(t, err)

	mk := func(status string) {
		id, err := taskSvc.Create(context.Background(), TaskCreateInput{
			Title: "t", AssignedTo: "u1", AssignedBy: "u2",
		})
		require.NoError(t, err)
		if status != "" {
			require.NoError(t, taskSvc.SetStatus(context.Background(), id, status))
		}
	}
	mk("COMPLETED")
	mk("COMPLETED")
	mk("IN_PROGRESS")
	mk("") // stays PENDING

	overview, err := NewAnalyticsService(AnalyticsDependencies{UserRepo: users, TaskRepo: tasks}).
		Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), overview.Users)
	assert.Equal(t, int64(4), overview.Tasks)
	assert.Equal(t, int64(2), overview.Completed)
	assert.Equal(t, int64(1), overview.InProgress)
	assert.Equal(t, int64(1), overview.Pending)
	assert.Equal(t, 50.0, overview.CompletionRate)
}
