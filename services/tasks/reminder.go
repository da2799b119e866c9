package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const TypeBookingFollowUp = "booking:follow_up"

// FollowUpPayload identifies the booking a delayed follow-up is about.
type FollowUpPayload struct {
	TrackingID string `json:"trackingId"`
	AccountID  string `json:"accountId"`
}

// NewFollowUpTask builds a follow-up task scheduled to fire at the given
// time.
func NewFollowUpTask(payload FollowUpPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingFollowUp, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues delayed booking follow-ups on the task queue.
type ReminderScheduler struct {
	Client *asynq.Client
	Delay  time.Duration
}

// DefaultFollowUpDelay is how long after a confirmed booking the follow-up
// reminder fires.
const DefaultFollowUpDelay = 24 * time.Hour

func NewReminderScheduler(client *asynq.Client, delay time.Duration) *ReminderScheduler {
	if delay <= 0 {
		delay = DefaultFollowUpDelay
	}
	return &ReminderScheduler{Client: client, Delay: delay}
}

// ScheduleFollowUp queues a reminder for the booking to fire after the
// configured delay.
func (s *ReminderScheduler) ScheduleFollowUp(ctx context.Context, trackingID, accountID string) error {
	task, opts, err := NewFollowUpTask(FollowUpPayload{
		TrackingID: trackingID,
		AccountID:  accountID,
	}, time.Now().Add(s.Delay))
	if err != nil {
		return fmt.Errorf("failed to build follow-up task: %w", err)
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue follow-up task: %w", err)
	}
	return nil
}
