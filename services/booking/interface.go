package booking

import (
	"context"
	"time"

	"swiftdrop/database/repository"
	"swiftdrop/models"
	"swiftdrop/services/distance"
	"swiftdrop/services/notification"

	"github.com/go-redis/redis/v8"
)

// FieldUpdate is one dotted-path draft mutation, e.g.
// {"path": "pickupDetails.suburb", "value": "Sydney"}.
type FieldUpdate struct {
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// WizardSessionService drives a booking wizard whose state lives in the
// session cache between stateless HTTP requests.
type WizardSessionService interface {
	InitiateSession(ctx context.Context, accountID string) (*models.WizardSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.WizardSession, error)
	SelectService(ctx context.Context, sessionID string, id models.ServiceTypeID) (*models.WizardSession, error)
	UpdateFields(ctx context.Context, sessionID string, updates []FieldUpdate) (*models.WizardSession, error)

	AddStop(ctx context.Context, sessionID string) (*models.WizardSession, error)
	UpdateStop(ctx context.Context, sessionID string, index int, loc models.LocationDetails) (*models.WizardSession, error)
	RemoveStop(ctx context.Context, sessionID string, index int) (*models.WizardSession, error)
	SetContainerQuantity(ctx context.Context, sessionID, containerID string, qty int) (*models.WizardSession, error)
	AddEwasteItem(ctx context.Context, sessionID, itemType string, qty int) (*models.WizardSession, error)
	RemoveEwasteItem(ctx context.Context, sessionID string, index int) (*models.WizardSession, error)
	AddRubbishPhoto(ctx context.Context, sessionID, url string) (*models.WizardSession, error)

	Advance(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Retreat(ctx context.Context, sessionID string) (*models.WizardSession, error)
	JumpTo(ctx context.Context, sessionID string, index int) (*models.WizardSession, error)

	Estimate(ctx context.Context, sessionID string) (*models.PriceEstimate, error)
	Submit(ctx context.Context, sessionID string) (*models.BookingConfirmation, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultWizardSessionService implements WizardSessionService over Redis.
type DefaultWizardSessionService struct {
	Cache         *redis.Client
	Repo          repository.BookingRepository
	Distance      distance.Estimator
	Notifier      notification.NotificationService
	SubmitTimeout time.Duration
	Gates         GateTable
}
