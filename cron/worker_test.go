package cron

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"calmfix/models"
	"calmfix/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleEnRouteTask(t *testing.T) {
	var got string
	handler := handleEnRouteTask(func(_ context.Context, bookingID string) error {
		got = bookingID
		return nil
	})

	task, opts, err := tasks.NewEnRouteTask("CF-42", 5*time.Second)
	require.NoError(t, err)
	assert.Len(t, opts, 4)
	assert.Equal(t, tasks.TypeBookingEnRoute, task.Type())

	var p models.StatusTaskPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, models.StatusEnRoute, p.Status)

	require.NoError(t, handler(context.Background(), task))
	assert.Equal(t, "CF-42", got)
}

func TestHandleEnRouteTaskPropagatesErrors(t *testing.T) {
	boom := errors.New("mongo unavailable")
	handler := handleEnRouteTask(func(context.Context, string) error { return boom })

	task, _, err := tasks.NewEnRouteTask("CF-1", time.Second)
	require.NoError(t, err)
	assert.ErrorIs(t, handler(context.Background(), task), boom)
}

func TestHandleEnRouteTaskSkipsBadPayload(t *testing.T) {
	called := false
	handler := handleEnRouteTask(func(context.Context, string) error {
		called = true
		return nil
	})

	err := handler(context.Background(), asynq.NewTask(tasks.TypeBookingEnRoute, []byte("{not json")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.False(t, called)
}
