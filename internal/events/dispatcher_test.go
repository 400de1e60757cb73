package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherInvokesSubscribersInOrder(t *testing.T) {
	d := NewInMemoryDispatcher()

	var calls []string
	d.Subscribe(EventTaskCreated, func(_ context.Context, e Event) error {
		calls = append(calls, "first:"+e.EntityID)
		return nil
	})
	d.Subscribe(EventTaskCreated, func(_ context.Context, e Event) error {
		calls = append(calls, "second:"+e.EntityID)
		return nil
	})
	d.Subscribe(EventTaskStatusChanged, func(_ context.Context, _ Event) error {
		calls = append(calls, "wrong-type")
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventTaskCreated, EntityID: "t1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first:t1", "second:t1"}, calls)
}

func TestDispatcherContinuesPastFailingHandler(t *testing.T) {
	d := NewInMemoryDispatcher()

	var reached bool
	d.Subscribe(EventUserRegistered, func(_ context.Context, _ Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventUserRegistered, func(_ context.Context, _ Event) error {
		reached = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventUserRegistered}))
	assert.True(t, reached)
}
