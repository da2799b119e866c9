package cron

import (
	"context"
	"encoding/json"
	"time"

	"swiftdrop/config"
	"swiftdrop/services/notification"
	"swiftdrop/services/tasks"
	"swiftdrop/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitFollowUpWorker runs the async follow-up worker in the background.
func InitFollowUpWorker(notifSvc notification.NotificationService) {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingFollowUp, handleFollowUpTask(notifSvc, logger))

	go func() {
		logger.Info("starting follow-up worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("follow-up worker failed to start",
					zap.Int("attempt", attempts),
					zap.Int("maxAttempts", maxAttempts),
					zap.Error(err),
				)
				if attempts == maxAttempts {
					logger.Fatal("follow-up worker exhausted start attempts")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleFollowUpTask(notifSvc notification.NotificationService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.FollowUpPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid follow-up payload", zap.Error(err))
			return err
		}

		notifSvc.Notify(ctx, notification.Event{
			AccountID:  p.AccountID,
			Outcome:    notification.OutcomeBookingFollowUp,
			TrackingID: p.TrackingID,
		})
		return nil
	}
}
