// models/service_type.go
package models

// ServiceTypeID identifies one of the delivery product offerings.
type ServiceTypeID string

const (
	ServiceStandard            ServiceTypeID = "standard"
	ServiceLargeFreight        ServiceTypeID = "large_freight"
	ServiceRecurring           ServiceTypeID = "recurring"
	ServiceMultiStop           ServiceTypeID = "multi_stop"
	ServiceWhiteGlove          ServiceTypeID = "white_glove"
	ServiceSignature           ServiceTypeID = "signature_service"
	ServiceDocumentDestruction ServiceTypeID = "document_destruction"
	ServiceRubbishRemoval      ServiceTypeID = "rubbish_removal"
	ServiceElectronicRecycling ServiceTypeID = "electronic_recycling"
)

// StepID identifies one screen of the booking wizard.
type StepID string

const (
	StepService    StepID = "service"
	StepFreight    StepID = "freight"
	StepSchedule   StepID = "schedule"
	StepPickup     StepID = "pickup"
	StepDropoff    StepID = "dropoff"
	StepPackage    StepID = "package"
	StepStops      StepID = "stops"
	StepOptions    StepID = "options"
	StepDocument   StepID = "document"
	StepSignature  StepID = "signature"
	StepReturn     StepID = "return"
	StepContainers StepID = "containers"
	StepLocation   StepID = "location"
	StepRubbish    StepID = "rubbish"
	StepItems      StepID = "items"
	StepReview     StepID = "review"
)

// ServiceLevel selects the delivery speed tier for distance-rated services.
type ServiceLevel string

const (
	LevelStandard ServiceLevel = "standard"
	LevelSameDay  ServiceLevel = "same_day"
	LevelVIP      ServiceLevel = "vip"
)

// Multiplier returns the rate multiplier applied to the distance component.
// Unknown levels fall back to standard pricing.
func (l ServiceLevel) Multiplier() float64 {
	switch l {
	case LevelVIP:
		return 1.8
	case LevelSameDay:
		return 1.2
	default:
		return 1.0
	}
}

// ServiceTypeDefinition is a static catalog entry describing one service type:
// its wizard step sequence and display metadata. Definitions are immutable
// after startup and safe for concurrent reads.
type ServiceTypeDefinition struct {
	ID          ServiceTypeID `json:"id"`
	Priority    int           `json:"priority"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Available   bool          `json:"available"`
	Steps       []StepID      `json:"steps"`
}
