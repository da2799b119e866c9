// database/repository/booking.go
package repository

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"swiftdrop/database"
	"swiftdrop/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrBookingNotFound is returned when no booking matches the tracking id.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository is the persistence backend for finalized bookings. It
// owns tracking id generation; callers never supply one.
type BookingRepository interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	GetByTrackingID(ctx context.Context, trackingID string) (*models.Booking, error)
	ListByAccount(ctx context.Context, accountID string) ([]models.Booking, error)
}

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

func NewMongoBookingRepo() *MongoBookingRepo {
	return &MongoBookingRepo{
		coll: database.MongoClient.Database("swiftdrop").Collection("bookings"),
	}
}

// Tracking ids avoid ambiguous characters (0/O, 1/I).
const trackingAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func newTrackingID() (string, error) {
	id := make([]byte, 8)
	for i := range id {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(trackingAlphabet))))
		if err != nil {
			return "", err
		}
		id[i] = trackingAlphabet[n.Int64()]
	}
	return "Z2U-" + string(id), nil
}

// CreateBooking inserts a booking built from the request. If a booking with
// the same idempotency key already exists it is returned unchanged, so a
// retried submission never creates a duplicate.
func (r *MongoBookingRepo) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	var existing models.Booking
	err := r.coll.FindOne(ctx, bson.M{"idempotencyKey": req.IdempotencyKey}).Decode(&existing)
	if err == nil {
		return &existing, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to check for existing booking: %w", err)
	}

	trackingID, err := newTrackingID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tracking id: %w", err)
	}

	booking := models.Booking{
		TrackingID:     trackingID,
		IdempotencyKey: req.IdempotencyKey,
		AccountID:      req.AccountID,
		ServiceType:    req.Draft.ServiceType,
		ServiceLevel:   req.Draft.ServiceLevel,
		Pickup:         req.Draft.Pickup,
		Dropoff:        req.Draft.Dropoff,
		TotalCost:      req.Quote.Total,
		Status:         "pending",
		CreatedAt:      time.Now(),
	}
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}
	return &booking, nil
}

// GetByTrackingID returns a booking by its tracking id.
func (r *MongoBookingRepo) GetByTrackingID(ctx context.Context, trackingID string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"trackingId": trackingID}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return &booking, nil
}

// ListByAccount fetches all bookings created by one account, newest first.
func (r *MongoBookingRepo) ListByAccount(ctx context.Context, accountID string) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.coll.Find(ctx, bson.M{"accountId": accountID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
