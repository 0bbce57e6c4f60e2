package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"calmfix/models"
	"calmfix/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	TypeBookingEnRoute = "booking:en_route"
	StatusQueue        = "default"
)

// EnRouteTaskID is the asynq task id for a booking, so a booking has at most one pending task.
func EnRouteTaskID(bookingID string) string {
	return "en_route:" + bookingID
}

func NewEnRouteTask(bookingID string, delay time.Duration) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(models.StatusTaskPayload{BookingID: bookingID, Status: models.StatusEnRoute})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingEnRoute, b)
	opts := []asynq.Option{
		asynq.ProcessIn(delay),
		asynq.TaskID(EnRouteTaskID(bookingID)),
		asynq.Queue(StatusQueue),
		asynq.MaxRetry(3),
	}
	return task, opts, nil
}

// AsynqScheduler enqueues transitions in Redis so they survive process restarts.
// cron.InitStatusWorker consumes them.
type AsynqScheduler struct {
	client    *asynq.Client
	inspector *asynq.Inspector
}

func NewAsynqScheduler(opt asynq.RedisClientOpt) *AsynqScheduler {
	return &AsynqScheduler{
		client:    asynq.NewClient(opt),
		inspector: asynq.NewInspector(opt),
	}
}

func (s *AsynqScheduler) ScheduleEnRoute(ctx context.Context, bookingID string, delay time.Duration) error {
	task, opts, err := NewEnRouteTask(bookingID, delay)
	if err != nil {
		return err
	}
	info, err := s.client.EnqueueContext(ctx, task, opts...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		utils.GetLogger().Debug("en_route task already queued", zap.String("bookingID", bookingID))
		return nil
	}
	if err != nil {
		return err
	}
	utils.GetLogger().Debug("en_route task queued",
		zap.String("bookingID", bookingID),
		zap.String("taskID", info.ID),
		zap.Time("processAt", info.NextProcessAt),
	)
	return nil
}

func (s *AsynqScheduler) Cancel(bookingID string) {
	err := s.inspector.DeleteTask(StatusQueue, EnRouteTaskID(bookingID))
	if err != nil && !errors.Is(err, asynq.ErrTaskNotFound) && !errors.Is(err, asynq.ErrQueueNotFound) {
		utils.GetLogger().Warn("failed to delete en_route task", zap.String("bookingID", bookingID), zap.Error(err))
	}
}

func (s *AsynqScheduler) Stop() {
	if err := s.client.Close(); err != nil {
		utils.GetLogger().Warn("failed to close asynq client", zap.Error(err))
	}
	if err := s.inspector.Close(); err != nil {
		utils.GetLogger().Warn("failed to close asynq inspector", zap.Error(err))
	}
}
