// File: booking/session.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"swiftdrop/models"
	"swiftdrop/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

func sessionKey(sessionID string) string {
	return utils.WizardSessionPrefix + sessionID
}

func submitLockKey(sessionID string) string {
	return utils.WizardSessionPrefix + "submit:" + sessionID
}

// InitiateSession creates a new wizard session with an empty draft, assigns
// it a unique SessionID and stores it in Redis.
func (s *DefaultWizardSessionService) InitiateSession(ctx context.Context, accountID string) (*models.WizardSession, error) {
	session := models.WizardSession{
		SessionID: uuid.New().String(),
		AccountID: accountID,
		Draft:     models.NewBookingDraft(),
	}
	if err := s.save(ctx, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// GetSession retrieves a live wizard session.
func (s *DefaultWizardSessionService) GetSession(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return s.load(ctx, sessionID)
}

func (s *DefaultWizardSessionService) load(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	data, err := s.Cache.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load wizard session: %w", err)
	}
	var session models.WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse wizard session: %w", err)
	}
	return &session, nil
}

func (s *DefaultWizardSessionService) save(ctx context.Context, session *models.WizardSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKey(session.SessionID), data, utils.WizardSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store wizard session: %w", err)
	}
	return nil
}

// withSession loads the session, rebuilds the draft store and sequencer,
// applies op and saves the result. The session is only written back when op
// succeeds, so failed transitions leave the cached state untouched.
func (s *DefaultWizardSessionService) withSession(ctx context.Context, sessionID string, op func(store *DraftStore, seq *Sequencer) error) (*models.WizardSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	store := NewDraftStoreFrom(session.Draft)
	gates := s.Gates
	if gates == nil {
		gates = DefaultGates()
	}
	seq := NewSequencerWithGates(store, gates)

	if err := op(store, seq); err != nil {
		return nil, err
	}

	session.Draft = store.Snapshot()
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectService picks the service type for a fresh session.
func (s *DefaultWizardSessionService) SelectService(ctx context.Context, sessionID string, id models.ServiceTypeID) (*models.WizardSession, error) {
	return s.withSession(ctx, sessionID, func(store *DraftStore, seq *Sequencer) error {
		return seq.SelectService(id)
	})
}

// UpdateFields merges a batch of dotted-path updates into the draft. The
// batch is applied atomically: one bad path rejects the whole request.
func (s *DefaultWizardSessionService) UpdateFields(ctx context.Context, sessionID string, updates []FieldUpdate) (*models.WizardSession, error) {
	return s.withSession(ctx, sessionID, func(store *DraftStore, seq *Sequencer) error {
		for _, u := range updates {
			if err := store.UpdateField(u.Path, u.Value); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *DefaultWizardSessionService) AddStop(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return s.withSession(ctx, sessionID, func(store *DraftStore, seq *Sequencer) error {
		return store.AddStop()
	})
}

func (s *DefaultWizardSessionService) UpdateStop(ctx context.Context, sessionID string, index int, loc models.LocationDetails) (*models.WizardSession, error) {
	return s.withSession(ctx, sessionID, func(store *DraftStore, seq *Sequencer) error {
		return store.UpdateStop(index, loc)
	})
}

func (s *DefaultWizardSessionService) RemoveStop(ctx context.Context, sessionID string, index int) (*models.WizardSession, error) {
	return s.withSession(ctx, sessionID, func(store *DraftStore, seq *Sequencer) error {
		return store.RemoveStop(index)
	})
}

func (s *DefaultWizardSessionService) SetContainerQuantity(ctx context.Context, sessionID, containerID string, qty int) (*models.WizardSession, error) {
	return s.withSession(ctx, sessionID, func(store *DraftStore, seq *Sequencer) error {
		return store.SetContainerQuantity(containerID, qty)
	})
}

func (s *DefaultWizardSessionService) AddEwasteItem(ctx context.Context, sessionID, itemType string, qty int) (*models.WizardSession, error) {
	return s.withSession(ctx, sessionID, func(store *DraftStore, seq *Sequencer) error {
		return store.AddEwasteItem(itemType, qty)
	})
}

func (s *DefaultWizardSessionService) RemoveEwasteItem(ctx context.Context, sessionID string, index int) (*models.WizardSession, error) {
	return s.withSession(ctx, sessionID, func(store *DraftStore, seq *Sequencer) error {
		return store.RemoveEwasteItem(index)
	})
}

func (s *DefaultWizardSessionService) AddRubbishPhoto(ctx context.Context, sessionID, url string) (*models.WizardSession, error) {
	return s.withSession(ctx, sessionID, func(store *DraftStore, seq *Sequencer) error {
		return store.AddRubbishPhoto(url)
	})
}

func (s *DefaultWizardSessionService) Advance(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return s.withSession(ctx, sessionID, func(store *DraftStore, seq *Sequencer) error {
		return seq.Advance()
	})
}

func (s *DefaultWizardSessionService) Retreat(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return s.withSession(ctx, sessionID, func(store *DraftStore, seq *Sequencer) error {
		return seq.Retreat()
	})
}

func (s *DefaultWizardSessionService) JumpTo(ctx context.Context, sessionID string, index int) (*models.WizardSession, error) {
	return s.withSession(ctx, sessionID, func(store *DraftStore, seq *Sequencer) error {
		return seq.JumpTo(index)
	})
}

// Estimate quotes the session's current draft.
func (s *DefaultWizardSessionService) Estimate(ctx context.Context, sessionID string) (*models.PriceEstimate, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	km, err := s.Distance.EstimateDistance(ctx, session.Draft.Pickup, session.Draft.Dropoff)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDistanceUnavailable, err)
	}
	estimate, err := EstimatePrice(session.Draft, km)
	if err != nil {
		return nil, err
	}
	return &estimate, nil
}

// Submit finalizes the session's draft. A Redis lock keyed by session id
// keeps submissions single-flight across stateless requests; a second call
// while one is pending gets ErrSubmissionInProgress.
func (s *DefaultWizardSessionService) Submit(ctx context.Context, sessionID string) (*models.BookingConfirmation, error) {
	timeout := s.SubmitTimeout
	if timeout <= 0 {
		timeout = DefaultSubmitTimeout
	}

	acquired, err := s.Cache.SetNX(ctx, submitLockKey(sessionID), "1", timeout+5*time.Second).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire submission lock: %w", err)
	}
	if !acquired {
		return nil, ErrSubmissionInProgress
	}
	defer s.Cache.Del(ctx, submitLockKey(sessionID))

	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	store := NewDraftStoreFrom(session.Draft)
	coord := NewSubmissionCoordinator(s.Repo, s.Distance, s.Notifier, timeout)
	coord.pendingKey = session.PendingIdempotencyKey

	confirmation, err := coord.Submit(ctx, session.SessionID, session.AccountID, store)
	if err != nil {
		// Keep the attempt key so a retry reuses it.
		session.PendingIdempotencyKey = coord.pendingKey
		session.Draft = store.Snapshot()
		if saveErr := s.save(ctx, session); saveErr != nil {
			return nil, saveErr
		}
		return nil, err
	}

	session.PendingIdempotencyKey = ""
	session.Draft = store.Snapshot()
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return confirmation, nil
}

// CancelSession discards the wizard session entirely.
func (s *DefaultWizardSessionService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Cache.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to cancel wizard session: %w", err)
	}
	return nil
}
