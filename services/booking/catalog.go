package booking

import (
	"sort"

	"swiftdrop/models"
)

// serviceCatalog is the fixed registry of service type definitions. It is
// never mutated after init, so concurrent reads from any number of wizard
// sessions are safe. Every step sequence ends with the review step.
var serviceCatalog = map[models.ServiceTypeID]models.ServiceTypeDefinition{
	models.ServiceStandard: {
		ID:          models.ServiceStandard,
		Priority:    1,
		Name:        "Standard Delivery",
		Description: "Immediate point-to-point delivery on the courier network",
		Available:   true,
		Steps: []models.StepID{
			models.StepService, models.StepPickup, models.StepDropoff,
			models.StepPackage, models.StepReview,
		},
	},
	models.ServiceLargeFreight: {
		ID:          models.ServiceLargeFreight,
		Priority:    2,
		Name:        "Large Freight",
		Description: "For large or oversized items requiring specialized handling",
		Available:   true,
		Steps: []models.StepID{
			models.StepService, models.StepFreight, models.StepPickup,
			models.StepDropoff, models.StepReview,
		},
	},
	models.ServiceRecurring: {
		ID:          models.ServiceRecurring,
		Priority:    3,
		Name:        "Recurring Booking",
		Description: "Schedule repeated, periodic delivery services",
		Available:   true,
		Steps: []models.StepID{
			models.StepService, models.StepSchedule, models.StepPickup,
			models.StepDropoff, models.StepReview,
		},
	},
	models.ServiceMultiStop: {
		ID:          models.ServiceMultiStop,
		Priority:    4,
		Name:        "Multi-Pickup / Multi-Delivery",
		Description: "Single booking with multiple pickup or dropoff stops",
		Available:   true,
		Steps: []models.StepID{
			models.StepService, models.StepStops, models.StepReview,
		},
	},
	models.ServiceWhiteGlove: {
		ID:          models.ServiceWhiteGlove,
		Priority:    5,
		Name:        "White Glove Service",
		Description: "Premium service with assembly, specific placement and more",
		Available:   true,
		Steps: []models.StepID{
			models.StepService, models.StepOptions, models.StepPickup,
			models.StepDropoff, models.StepReview,
		},
	},
	models.ServiceSignature: {
		ID:          models.ServiceSignature,
		Priority:    6,
		Name:        "Signature Service",
		Description: "Pick up, get a signature, and return to destination",
		Available:   true,
		Steps: []models.StepID{
			models.StepService, models.StepDocument, models.StepPickup,
			models.StepSignature, models.StepReturn, models.StepReview,
		},
	},
	models.ServiceDocumentDestruction: {
		ID:          models.ServiceDocumentDestruction,
		Priority:    7,
		Name:        "Document Destruction",
		Description: "Secure shredding service with bins and bags delivery",
		Available:   true,
		Steps: []models.StepID{
			models.StepService, models.StepContainers, models.StepLocation,
			models.StepSchedule, models.StepReview,
		},
	},
	models.ServiceRubbishRemoval: {
		ID:          models.ServiceRubbishRemoval,
		Priority:    8,
		Name:        "Rubbish Removal",
		Description: "Collection and disposal of general rubbish",
		Available:   true,
		Steps: []models.StepID{
			models.StepService, models.StepRubbish, models.StepLocation,
			models.StepReview,
		},
	},
	models.ServiceElectronicRecycling: {
		ID:          models.ServiceElectronicRecycling,
		Priority:    9,
		Name:        "Electronic Recycling",
		Description: "Collection and recycling of electronic goods",
		Available:   true,
		Steps: []models.StepID{
			models.StepService, models.StepItems, models.StepLocation,
			models.StepReview,
		},
	},
}

// Definition resolves a catalog entry by id. Disabled entries still resolve
// here so already-started drafts keep working.
func Definition(id models.ServiceTypeID) (models.ServiceTypeDefinition, error) {
	def, ok := serviceCatalog[id]
	if !ok {
		return models.ServiceTypeDefinition{}, ErrUnknownServiceType
	}
	return def, nil
}

// Steps returns the ordered wizard step sequence for a service type.
func Steps(id models.ServiceTypeID) ([]models.StepID, error) {
	def, err := Definition(id)
	if err != nil {
		return nil, err
	}
	steps := make([]models.StepID, len(def.Steps))
	copy(steps, def.Steps)
	return steps, nil
}

// AvailableServiceTypes lists the definitions customers may start a booking
// with, ordered by priority. "Coming soon" entries are excluded.
func AvailableServiceTypes() []models.ServiceTypeDefinition {
	defs := make([]models.ServiceTypeDefinition, 0, len(serviceCatalog))
	for _, def := range serviceCatalog {
		if def.Available {
			defs = append(defs, def)
		}
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Priority < defs[j].Priority })
	return defs
}
