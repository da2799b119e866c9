package notification

import (
	"context"

	"go.uber.org/zap"
)

// Outcome is a semantic wizard result. The presentation layer maps outcomes
// to user-visible messages; nothing here formats human-readable text.
type Outcome string

const (
	OutcomeValidationFailed    Outcome = "ValidationFailed"
	OutcomeSubmissionSucceeded Outcome = "SubmissionSucceeded"
	OutcomeSubmissionFailed    Outcome = "SubmissionFailed"
	OutcomeSubmissionTimedOut  Outcome = "SubmissionTimedOut"
	OutcomeBookingFollowUp     Outcome = "BookingFollowUp"
)

// Event is one outcome raised for one wizard session.
type Event struct {
	SessionID  string
	AccountID  string
	Outcome    Outcome
	TrackingID string
	Detail     string
}

// NotificationService receives semantic outcomes from the booking engine.
type NotificationService interface {
	Notify(ctx context.Context, event Event)
}

// ReminderScheduler queues a delayed follow-up for a confirmed booking.
type ReminderScheduler interface {
	ScheduleFollowUp(ctx context.Context, trackingID, accountID string) error
}

// DefaultNotificationService logs events; a real deployment swaps in a
// client that forwards them to the customer-facing channel. When Reminders
// is set, a confirmed booking also queues a delayed follow-up task.
type DefaultNotificationService struct {
	Logger    *zap.Logger
	Reminders ReminderScheduler
}

func (s *DefaultNotificationService) Notify(ctx context.Context, event Event) {
	s.Logger.Info("booking outcome",
		zap.String("sessionId", event.SessionID),
		zap.String("accountId", event.AccountID),
		zap.String("outcome", string(event.Outcome)),
		zap.String("trackingId", event.TrackingID),
		zap.String("detail", event.Detail),
	)

	if event.Outcome == OutcomeSubmissionSucceeded && s.Reminders != nil {
		if err := s.Reminders.ScheduleFollowUp(ctx, event.TrackingID, event.AccountID); err != nil {
			s.Logger.Error("failed to schedule booking follow-up",
				zap.String("trackingId", event.TrackingID),
				zap.Error(err),
			)
		}
	}
}
