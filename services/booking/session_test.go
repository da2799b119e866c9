package booking_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"swiftdrop/models"
	"swiftdrop/services/booking"
	"swiftdrop/services/distance"
	"swiftdrop/utils"

	"github.com/go-redis/redismock/v8"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSessionService(t *testing.T) (*booking.DefaultWizardSessionService, redismock.ClientMock, *mockBookingRepo, *recordingNotifier) {
	t.Helper()
	db, redisMock := redismock.NewClientMock()
	repo := new(mockBookingRepo)
	notifier := &recordingNotifier{}
	svc := &booking.DefaultWizardSessionService{
		Cache:         db,
		Repo:          repo,
		Distance:      &distance.FixedEstimator{KM: 12.5},
		Notifier:      notifier,
		SubmitTimeout: time.Second,
	}
	return svc, redisMock, repo, notifier
}

func seedSession(t *testing.T, redisMock redismock.ClientMock, session models.WizardSession) {
	t.Helper()
	data, err := json.Marshal(session)
	require.NoError(t, err)
	redisMock.ExpectGet("wizard:" + session.SessionID).SetVal(string(data))
}

func expectSave(redisMock redismock.ClientMock, sessionID string) {
	redisMock.Regexp().ExpectSet("wizard:"+sessionID, `.+`, utils.WizardSessionTTL).SetVal("OK")
}

func TestInitiateSession(t *testing.T) {
	svc, redisMock, _, _ := newSessionService(t)
	redisMock.Regexp().ExpectSet(`wizard:.+`, `.+`, utils.WizardSessionTTL).SetVal("OK")

	session, err := svc.InitiateSession(context.Background(), "acct-1")
	require.NoError(t, err)
	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, "acct-1", session.AccountID)
	assert.Empty(t, session.Draft.ServiceType)
	assert.True(t, session.Draft.RequiresPhoto)

	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestGetSession_Missing(t *testing.T) {
	svc, redisMock, _, _ := newSessionService(t)
	redisMock.ExpectGet("wizard:missing").RedisNil()

	_, err := svc.GetSession(context.Background(), "missing")
	assert.ErrorIs(t, err, booking.ErrSessionNotFound)
}

func TestSelectService_PersistsUpdatedDraft(t *testing.T) {
	svc, redisMock, _, _ := newSessionService(t)
	seedSession(t, redisMock, models.WizardSession{
		SessionID: "sess-1",
		AccountID: "acct-1",
		Draft:     models.NewBookingDraft(),
	})
	expectSave(redisMock, "sess-1")

	session, err := svc.SelectService(context.Background(), "sess-1", models.ServiceRubbishRemoval)
	require.NoError(t, err)
	assert.Equal(t, models.ServiceRubbishRemoval, session.Draft.ServiceType)
	require.NotNil(t, session.Draft.Rubbish)

	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestSelectService_FailedTransitionIsNotSaved(t *testing.T) {
	svc, redisMock, _, _ := newSessionService(t)
	draft := models.NewBookingDraft()
	draft.ServiceType = models.ServiceStandard
	seedSession(t, redisMock, models.WizardSession{SessionID: "sess-1", Draft: draft})

	_, err := svc.SelectService(context.Background(), "sess-1", models.ServiceRecurring)
	assert.ErrorIs(t, err, booking.ErrServiceAlreadySelected)

	// No Set expectation was registered: a failed op must not write back.
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestUpdateFields_BatchIsAtomic(t *testing.T) {
	svc, redisMock, _, _ := newSessionService(t)
	draft := models.NewBookingDraft()
	draft.ServiceType = models.ServiceStandard
	seedSession(t, redisMock, models.WizardSession{SessionID: "sess-1", Draft: draft})

	_, err := svc.UpdateFields(context.Background(), "sess-1", []booking.FieldUpdate{
		{Path: "pickupDetails.streetAddress", Value: "1 George St"},
		{Path: "freight.vehicleType", Value: "Van"},
	})
	assert.ErrorIs(t, err, booking.ErrFieldNotApplicable)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestSessionSubmit_LockAlreadyHeld(t *testing.T) {
	svc, redisMock, repo, _ := newSessionService(t)
	redisMock.ExpectSetNX("wizard:submit:sess-1", "1", 6*time.Second).SetVal(false)

	_, err := svc.Submit(context.Background(), "sess-1")
	assert.ErrorIs(t, err, booking.ErrSubmissionInProgress)
	repo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestSessionSubmit_SuccessClearsDraftAndKey(t *testing.T) {
	svc, redisMock, repo, _ := newSessionService(t)

	draft := models.NewBookingDraft()
	draft.ServiceType = models.ServiceStandard
	draft.Pickup.StreetAddress = "1 George St"
	draft.Dropoff.StreetAddress = "10 Pitt St"
	draft.PackageDescription = "Box of samples"

	redisMock.ExpectSetNX("wizard:submit:sess-1", "1", 6*time.Second).SetVal(true)
	seedSession(t, redisMock, models.WizardSession{
		SessionID:             "sess-1",
		AccountID:             "acct-1",
		Draft:                 draft,
		PendingIdempotencyKey: "key-from-earlier-attempt",
	})
	expectSave(redisMock, "sess-1")
	redisMock.ExpectDel("wizard:submit:sess-1").SetVal(1)

	repo.On("CreateBooking", mock.Anything, mock.AnythingOfType("models.BookingRequest")).
		Return(&models.Booking{TrackingID: "Z2U-ABCD2345", TotalCost: decimal.RequireFromString("32.40")}, nil)

	confirmation, err := svc.Submit(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "Z2U-ABCD2345", confirmation.TrackingID)

	// The pending key from the earlier failed attempt is what gets sent.
	req := repo.Calls[0].Arguments.Get(1).(models.BookingRequest)
	assert.Equal(t, "key-from-earlier-attempt", req.IdempotencyKey)

	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestSessionSubmit_FailurePersistsPendingKey(t *testing.T) {
	svc, redisMock, repo, _ := newSessionService(t)

	draft := models.NewBookingDraft()
	draft.ServiceType = models.ServiceStandard
	draft.Pickup.StreetAddress = "1 George St"
	draft.Dropoff.StreetAddress = "10 Pitt St"
	draft.PackageDescription = "Box of samples"

	redisMock.ExpectSetNX("wizard:submit:sess-1", "1", 6*time.Second).SetVal(true)
	seedSession(t, redisMock, models.WizardSession{
		SessionID: "sess-1",
		AccountID: "acct-1",
		Draft:     draft,
	})
	expectSave(redisMock, "sess-1")
	redisMock.ExpectDel("wizard:submit:sess-1").SetVal(1)

	repo.On("CreateBooking", mock.Anything, mock.AnythingOfType("models.BookingRequest")).
		Return(nil, context.DeadlineExceeded)

	_, err := svc.Submit(context.Background(), "sess-1")
	assert.ErrorIs(t, err, booking.ErrSubmissionTimedOut)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestCancelSession(t *testing.T) {
	svc, redisMock, _, _ := newSessionService(t)
	redisMock.ExpectDel("wizard:sess-1").SetVal(1)

	require.NoError(t, svc.CancelSession(context.Background(), "sess-1"))
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

type failingEstimator struct{}

func (failingEstimator) EstimateDistance(ctx context.Context, pickup, dropoff models.LocationDetails) (float64, error) {
	return 0, errors.New("distance matrix request failed")
}

func TestEstimate_DistanceFailureIsTyped(t *testing.T) {
	svc, redisMock, _, _ := newSessionService(t)
	svc.Distance = failingEstimator{}

	draft := models.NewBookingDraft()
	draft.ServiceType = models.ServiceStandard
	seedSession(t, redisMock, models.WizardSession{SessionID: "sess-1", Draft: draft})

	_, err := svc.Estimate(context.Background(), "sess-1")
	assert.ErrorIs(t, err, booking.ErrDistanceUnavailable)
}

func TestEstimate_UsesInjectedDistance(t *testing.T) {
	svc, redisMock, _, _ := newSessionService(t)
	draft := models.NewBookingDraft()
	draft.ServiceType = models.ServiceStandard
	seedSession(t, redisMock, models.WizardSession{SessionID: "sess-1", Draft: draft})

	est, err := svc.Estimate(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("32.40").Equal(est.Total))
	assert.Equal(t, 12.5, est.DistanceKM)
}
