package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingRequest is the immutable payload handed to the persistence backend
// once a draft passes final validation. It is assembled exactly once per
// submission attempt; IdempotencyKey is reused on a caller-initiated retry of
// the same attempt.
type BookingRequest struct {
	IdempotencyKey string        `json:"idempotencyKey" bson:"idempotencyKey"`
	AccountID      string        `json:"accountId" bson:"accountId"`
	Draft          BookingDraft  `json:"draft" bson:"draft"`
	Quote          PriceEstimate `json:"quote" bson:"quote"`
	CreatedAt      time.Time     `json:"createdAt" bson:"createdAt"`
}

// Booking is the persisted record the backend creates from a request.
type Booking struct {
	TrackingID     string          `json:"trackingId" bson:"trackingId"`
	IdempotencyKey string          `json:"idempotencyKey" bson:"idempotencyKey"`
	AccountID      string          `json:"accountId" bson:"accountId"`
	ServiceType    ServiceTypeID   `json:"serviceType" bson:"serviceType"`
	ServiceLevel   ServiceLevel    `json:"serviceLevel" bson:"serviceLevel"`
	Pickup         LocationDetails `json:"pickup" bson:"pickup"`
	Dropoff        LocationDetails `json:"dropoff" bson:"dropoff"`
	TotalCost      decimal.Decimal `json:"totalCost" bson:"totalCost"`
	Status         string          `json:"status" bson:"status"`
	CreatedAt      time.Time       `json:"createdAt" bson:"createdAt"`
}

// BookingConfirmation is what the coordinator returns to the caller on
// success. Tracking id generation is owned by the persistence backend.
type BookingConfirmation struct {
	TrackingID string          `json:"trackingId"`
	TotalCost  decimal.Decimal `json:"totalCost"`
}
