package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"calmfix/models"
	"calmfix/services/tasks"
	"calmfix/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitStatusWorker starts the asynq server that applies queued booking status transitions.
// The caller owns the returned server and must Shutdown it.
func InitStatusWorker(redisOpts asynq.RedisClientOpt, handler tasks.StatusHandler) (*asynq.Server, error) {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				tasks.StatusQueue: 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingEnRoute, handleEnRouteTask(handler))

	const maxAttempts = 5
	var err error
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		if err = srv.Start(mux); err == nil {
			logger.Info("status worker started")
			return srv, nil
		}
		logger.Warn("status worker failed to start",
			zap.Int("attempt", attempts),
			zap.Int("maxAttempts", maxAttempts),
			zap.Error(err),
		)
		time.Sleep(time.Duration(attempts*2) * time.Second)
	}
	return nil, fmt.Errorf("status worker: max retry attempts reached: %w", err)
}

func handleEnRouteTask(handler tasks.StatusHandler) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.StatusTaskPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("invalid en_route payload", zap.Error(err))
			return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
		}

		utils.GetLogger().Debug("applying queued status transition",
			zap.String("bookingID", p.BookingID),
			zap.String("status", p.Status),
		)
		return handler(ctx, p.BookingID)
	}
}
