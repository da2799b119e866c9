// models/draft.go
package models

// BookingDraft is the in-progress booking for one wizard session. Exactly one
// session owns and mutates a draft at a time. Common fields survive a service
// type switch; the per-type groups below are populated only while their
// service type is selected and are cleared on switch.
type BookingDraft struct {
	ServiceType  ServiceTypeID `json:"serviceType,omitempty"`
	ServiceLevel ServiceLevel  `json:"serviceLevel"`
	CurrentStep  int           `json:"currentStep"`

	// Common fields shared by every service type.
	Pickup              LocationDetails `json:"pickupDetails"`
	Dropoff             LocationDetails `json:"dropoffDetails"`
	PackageDescription  string          `json:"packageDescription"`
	PackageWeightKG     float64         `json:"packageWeightKg"`
	SpecialInstructions string          `json:"specialInstructions"`
	RequiresSignature   bool            `json:"requiresSignature"`
	RequiresPhoto       bool            `json:"requiresPhoto"`
	FreightProtection   bool            `json:"freightProtection"`
	DeclaredValue       float64         `json:"declaredValue"`

	// Per-service-type groups. At most one is non-nil, matching ServiceType.
	Freight    *FreightDetails     `json:"freight,omitempty"`
	Recurring  *RecurringSchedule  `json:"recurring,omitempty"`
	MultiStop  *MultiStopDetails   `json:"multiStop,omitempty"`
	WhiteGlove *WhiteGloveOptions  `json:"whiteGlove,omitempty"`
	Signature  *SignatureDetails   `json:"signature,omitempty"`
	Shredding  *ShreddingDetails   `json:"shredding,omitempty"`
	Rubbish    *RubbishDetails     `json:"rubbish,omitempty"`
	Ewaste     *EwasteDetails      `json:"ewaste,omitempty"`
}

// FreightDetails describes an oversized item for the large freight service.
type FreightDetails struct {
	LengthCM         float64 `json:"lengthCm"`
	WidthCM          float64 `json:"widthCm"`
	HeightCM         float64 `json:"heightCm"`
	VehicleType      string  `json:"vehicleType"` // Ute, Van, Small Truck, Large Truck
	RequiresTailgate bool    `json:"requiresTailgate"`
	RequiresForklift bool    `json:"requiresForklift"`
}

// RecurringSchedule configures a repeating booking.
type RecurringSchedule struct {
	Frequency string   `json:"frequency"` // daily, weekly, monthly
	Days      []string `json:"days,omitempty"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate,omitempty"`
	Time      string   `json:"time"`
}

// MultiStopDetails holds the extra stops of a multi-pickup or multi-dropoff
// booking, beyond the primary pickup and dropoff.
type MultiStopDetails struct {
	Mode            string            `json:"mode"` // multi_pickup or multi_dropoff
	AdditionalStops []LocationDetails `json:"additionalStops"`
}

// WhiteGloveOptions are the premium handling add-ons, each a flat surcharge.
type WhiteGloveOptions struct {
	Assembly      bool `json:"assembly"`
	Disassembly   bool `json:"disassembly"`
	Packaging     bool `json:"packaging"`
	Unpacking     bool `json:"unpacking"`
	RoomPlacement bool `json:"roomPlacement"`
	DebrisRemoval bool `json:"debrisRemoval"`
	TwoPersonLift bool `json:"twoPersonLift"`
	WaitAndReturn bool `json:"waitAndReturn"`
}

// SelectedCount returns the number of enabled add-ons.
func (o WhiteGloveOptions) SelectedCount() int {
	n := 0
	for _, v := range []bool{
		o.Assembly, o.Disassembly, o.Packaging, o.Unpacking,
		o.RoomPlacement, o.DebrisRemoval, o.TwoPersonLift, o.WaitAndReturn,
	} {
		if v {
			n++
		}
	}
	return n
}

// SignatureDetails configures a pickup / sign / return-to-sender run.
type SignatureDetails struct {
	DocumentType      string          `json:"documentType"`
	RequiresWitness   bool            `json:"requiresWitness"`
	ReturnDestination LocationDetails `json:"returnDestination"`
}

// ShreddingDetails holds secure-destruction container selections keyed by
// container type id, e.g. "shred_bag" or "archive_box".
type ShreddingDetails struct {
	ContainerQuantities map[string]int `json:"containerQuantities"`
	RequiresDelivery    bool           `json:"requiresDelivery"`
	PickupOnly          bool           `json:"pickupOnly"`
	Certificate         bool           `json:"certificate"`
}

// RubbishDetails describes a rubbish removal job.
type RubbishDetails struct {
	RubbishType      string   `json:"rubbishType"` // general, green, construction, mixed
	EstimatedVolume  float64  `json:"estimatedVolumeM3"`
	PhotoURLs        []string `json:"photoUrls,omitempty"`
}

// EwasteItem is one line of an electronic recycling collection.
type EwasteItem struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

// EwasteDetails describes an electronic recycling collection.
type EwasteDetails struct {
	Items                   []EwasteItem `json:"items"`
	RequiresDataDestruction bool         `json:"requiresDataDestruction"`
	RequiresCertificate     bool         `json:"requiresCertificate"`
}

// NewBookingDraft returns the empty default draft a wizard session starts
// with. Photo proof of delivery is on by default.
func NewBookingDraft() BookingDraft {
	return BookingDraft{
		ServiceLevel:  LevelStandard,
		RequiresPhoto: true,
	}
}

// ClearServiceFields drops every per-service-type group, leaving common
// fields intact. Used when the selected service type changes.
func (d *BookingDraft) ClearServiceFields() {
	d.Freight = nil
	d.Recurring = nil
	d.MultiStop = nil
	d.WhiteGlove = nil
	d.Signature = nil
	d.Shredding = nil
	d.Rubbish = nil
	d.Ewaste = nil
}
