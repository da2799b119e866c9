package booking

import (
	"fmt"
	"strings"
)

// WizardError is a typed, recoverable failure surfaced to the presentation
// layer. The Code is stable; the Message is for operators, not end users.
type WizardError struct {
	Code    string
	Message string
}

func (e *WizardError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Configuration errors: the caller passed a service type the catalog does not
// resolve, or one that is currently disabled.
var (
	ErrUnknownServiceType = &WizardError{Code: "unknownServiceType", Message: "service type is not registered in the catalog"}
	ErrServiceUnavailable = &WizardError{Code: "serviceUnavailable", Message: "service type is not currently available"}
)

// Navigation errors: step sequencer precondition violations. Never fatal; the
// failed transition leaves state untouched.
var (
	ErrNoServiceSelected      = &WizardError{Code: "noServiceSelected", Message: "no service type has been selected"}
	ErrServiceAlreadySelected = &WizardError{Code: "serviceAlreadySelected", Message: "a service type is already selected; retreat to the start to change it"}
	ErrAtTerminalStep         = &WizardError{Code: "atTerminalStep", Message: "already at the final review step"}
	ErrCannotSkipAhead        = &WizardError{Code: "cannotSkipAhead", Message: "cannot jump past the current step"}
)

// Draft mutation errors.
var (
	ErrUnknownField       = &WizardError{Code: "unknownField", Message: "field path is not recognised"}
	ErrInvalidFieldValue  = &WizardError{Code: "invalidFieldValue", Message: "value has the wrong type for this field"}
	ErrFieldNotApplicable = &WizardError{Code: "fieldNotApplicable", Message: "field does not apply to the selected service type"}
)

// ErrInvalidQuantity indicates a negative quantity, weight or volume reached
// the estimator.
var ErrInvalidQuantity = &WizardError{Code: "invalidQuantity", Message: "quantities, weights and volumes must be non-negative"}

// ErrDistanceUnavailable indicates the distance collaborator could not
// produce a route distance for the draft's addresses.
var ErrDistanceUnavailable = &WizardError{Code: "distanceUnavailable", Message: "could not determine the route distance for this booking"}

// Submission errors: transient or backend-related. The draft is preserved so
// the customer may retry without re-entering data.
var (
	ErrSubmissionInProgress = &WizardError{Code: "submissionInProgress", Message: "a submission for this draft is already in flight"}
	ErrSubmissionFailed     = &WizardError{Code: "submissionFailed", Message: "the booking backend rejected or failed the request"}
	ErrSubmissionTimedOut   = &WizardError{Code: "submissionTimedOut", Message: "the booking backend did not respond in time"}
	ErrSessionNotFound      = &WizardError{Code: "sessionNotFound", Message: "wizard session not found or expired"}
)

// FieldError points at one invalid draft field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is the full set of validation failures for a draft, returned
// together so the caller can highlight every invalid field at once.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	parts := make([]string, len(fe))
	for i, f := range fe {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
