package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	"swiftdrop/database/repository"
	"swiftdrop/models"
	"swiftdrop/services/distance"
	"swiftdrop/services/notification"

	"github.com/google/uuid"
)

// SubmissionCoordinator validates a completed draft, builds the final
// booking request and hands it to the persistence backend exactly once per
// attempt. It never retries on its own; booking creation is only safe to
// retry with the idempotency key the coordinator mints per attempt.
type SubmissionCoordinator struct {
	Repo     repository.BookingRepository
	Distance distance.Estimator
	Notifier notification.NotificationService
	Timeout  time.Duration

	mu         sync.Mutex
	inFlight   bool
	pendingKey string
}

// DefaultSubmitTimeout bounds the call to the booking backend.
const DefaultSubmitTimeout = 30 * time.Second

func NewSubmissionCoordinator(repo repository.BookingRepository, dist distance.Estimator, notifier notification.NotificationService, timeout time.Duration) *SubmissionCoordinator {
	if timeout <= 0 {
		timeout = DefaultSubmitTimeout
	}
	return &SubmissionCoordinator{Repo: repo, Distance: dist, Notifier: notifier, Timeout: timeout}
}

// begin claims the single submission slot for this draft.
func (c *SubmissionCoordinator) begin() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFlight {
		return ErrSubmissionInProgress
	}
	c.inFlight = true
	return nil
}

func (c *SubmissionCoordinator) end() {
	c.mu.Lock()
	c.inFlight = false
	c.mu.Unlock()
}

// attemptKey returns the idempotency key for the current attempt, minting a
// fresh one only when the previous attempt succeeded.
func (c *SubmissionCoordinator) attemptKey() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pendingKey == "" {
		c.pendingKey = uuid.New().String()
	}
	return c.pendingKey
}

func (c *SubmissionCoordinator) clearAttemptKey() {
	c.mu.Lock()
	c.pendingKey = ""
	c.mu.Unlock()
}

// Submit runs final validation and delegates to the booking backend. On
// validation failure the field errors come back and the backend is never
// called. On backend failure or timeout the draft is preserved so the
// customer can retry; only success resets it.
func (c *SubmissionCoordinator) Submit(ctx context.Context, sessionID, accountID string, store *DraftStore) (*models.BookingConfirmation, error) {
	if err := c.begin(); err != nil {
		return nil, err
	}
	defer c.end()

	draft := store.Snapshot()

	if errs := ValidateDraft(draft); errs != nil {
		c.Notifier.Notify(ctx, notification.Event{
			SessionID: sessionID,
			AccountID: accountID,
			Outcome:   notification.OutcomeValidationFailed,
			Detail:    errs.Error(),
		})
		return nil, errs
	}

	km, err := c.Distance.EstimateDistance(ctx, draft.Pickup, draft.Dropoff)
	if err != nil {
		return nil, ErrSubmissionFailed
	}
	quote, err := EstimatePrice(draft, km)
	if err != nil {
		return nil, err
	}

	req := models.BookingRequest{
		IdempotencyKey: c.attemptKey(),
		AccountID:      accountID,
		Draft:          draft,
		Quote:          quote,
		CreatedAt:      time.Now(),
	}

	callCtx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	booking, err := c.Repo.CreateBooking(callCtx, req)
	if err != nil {
		outcome := notification.OutcomeSubmissionFailed
		result := ErrSubmissionFailed
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			outcome = notification.OutcomeSubmissionTimedOut
			result = ErrSubmissionTimedOut
		}
		c.Notifier.Notify(ctx, notification.Event{
			SessionID: sessionID,
			AccountID: accountID,
			Outcome:   outcome,
			Detail:    err.Error(),
		})
		return nil, result
	}

	store.Reset()
	c.clearAttemptKey()

	c.Notifier.Notify(ctx, notification.Event{
		SessionID:  sessionID,
		AccountID:  accountID,
		Outcome:    notification.OutcomeSubmissionSucceeded,
		TrackingID: booking.TrackingID,
	})
	return &models.BookingConfirmation{
		TrackingID: booking.TrackingID,
		TotalCost:  booking.TotalCost,
	}, nil
}
