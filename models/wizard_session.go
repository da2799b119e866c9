package models

// WizardSession carries one customer's wizard state between stateless HTTP
// requests. The draft inside it is only ever mutated by that customer's
// session.
type WizardSession struct {
	SessionID string       `json:"sessionId"`
	AccountID string       `json:"accountId"`
	Draft     BookingDraft `json:"draft"`

	// PendingIdempotencyKey survives a failed submission so a retry reuses
	// the same key instead of risking a duplicate booking.
	PendingIdempotencyKey string `json:"pendingIdempotencyKey,omitempty"`
}
