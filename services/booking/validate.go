package booking

import (
	"fmt"
	"regexp"
	"strings"

	"swiftdrop/models"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Australian landline or mobile, with or without country prefix.
	auPhonePattern = regexp.MustCompile(`^(\+61|0)[2-478]\d{8}$`)
)

// ValidEmail reports whether the address is well-formed.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPhone reports whether the number is a plausible Australian phone
// number. Whitespace is ignored.
func ValidPhone(phone string) bool {
	return auPhonePattern.MatchString(strings.ReplaceAll(phone, " ", ""))
}

// ValidateDraft checks a completed draft against the required-field table
// for its service type. It returns every failure at once so the caller can
// highlight all invalid fields in a single pass; nil means the draft is
// ready to submit.
func ValidateDraft(d models.BookingDraft) FieldErrors {
	var errs FieldErrors

	if d.ServiceType == "" {
		return FieldErrors{{Field: "serviceType", Message: "a service type must be selected"}}
	}
	if _, err := Definition(d.ServiceType); err != nil {
		return FieldErrors{{Field: "serviceType", Message: "selected service type is not in the catalog"}}
	}

	errs = append(errs, requiredFieldErrors(d)...)
	errs = append(errs, numericFieldErrors(d)...)
	errs = append(errs, contactFormatErrors(d)...)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// requiredFieldErrors applies the per-service-type required-field table.
func requiredFieldErrors(d models.BookingDraft) FieldErrors {
	var errs FieldErrors

	needStreet := func(prefix string, loc models.LocationDetails) {
		if loc.StreetAddress == "" {
			errs = append(errs, FieldError{Field: prefix + ".streetAddress", Message: "street address is required"})
		}
	}

	switch d.ServiceType {
	case models.ServiceStandard:
		needStreet("pickupDetails", d.Pickup)
		needStreet("dropoffDetails", d.Dropoff)
		if d.PackageDescription == "" {
			errs = append(errs, FieldError{Field: "packageDescription", Message: "package description is required"})
		}

	case models.ServiceLargeFreight:
		needStreet("pickupDetails", d.Pickup)
		needStreet("dropoffDetails", d.Dropoff)
		if d.Freight == nil || d.Freight.VehicleType == "" {
			errs = append(errs, FieldError{Field: "freight.vehicleType", Message: "a vehicle type is required"})
		}

	case models.ServiceRecurring:
		needStreet("pickupDetails", d.Pickup)
		needStreet("dropoffDetails", d.Dropoff)
		if d.Recurring == nil || d.Recurring.Frequency == "" {
			errs = append(errs, FieldError{Field: "recurring.frequency", Message: "a frequency is required"})
		}
		if d.Recurring == nil || d.Recurring.StartDate == "" {
			errs = append(errs, FieldError{Field: "recurring.startDate", Message: "a start date is required"})
		}

	case models.ServiceMultiStop:
		needStreet("pickupDetails", d.Pickup)
		needStreet("dropoffDetails", d.Dropoff)
		if d.MultiStop == nil || len(d.MultiStop.AdditionalStops) == 0 {
			errs = append(errs, FieldError{Field: "multiStop.additionalStops", Message: "at least one additional stop is required"})
		} else {
			for i, stop := range d.MultiStop.AdditionalStops {
				if stop.StreetAddress == "" {
					errs = append(errs, FieldError{
						Field:   fmt.Sprintf("multiStop.additionalStops[%d].streetAddress", i),
						Message: "street address is required",
					})
				}
			}
		}

	case models.ServiceWhiteGlove:
		needStreet("pickupDetails", d.Pickup)
		needStreet("dropoffDetails", d.Dropoff)

	case models.ServiceSignature:
		needStreet("pickupDetails", d.Pickup)
		if d.Signature == nil || d.Signature.DocumentType == "" {
			errs = append(errs, FieldError{Field: "signature.documentType", Message: "a document type is required"})
		}
		if d.Signature == nil || d.Signature.ReturnDestination.StreetAddress == "" {
			errs = append(errs, FieldError{Field: "signature.returnDestination.streetAddress", Message: "a return street address is required"})
		}

	case models.ServiceDocumentDestruction:
		needStreet("pickupDetails", d.Pickup)
		if d.Shredding == nil || !anyContainerOrdered(d.Shredding) {
			errs = append(errs, FieldError{Field: "shredding.containerQuantities", Message: "at least one container is required"})
		}

	case models.ServiceRubbishRemoval:
		needStreet("pickupDetails", d.Pickup)
		if d.Rubbish == nil || d.Rubbish.RubbishType == "" {
			errs = append(errs, FieldError{Field: "rubbish.rubbishType", Message: "a rubbish type is required"})
		}

	case models.ServiceElectronicRecycling:
		needStreet("pickupDetails", d.Pickup)
		if d.Ewaste == nil || len(d.Ewaste.Items) == 0 {
			errs = append(errs, FieldError{Field: "ewaste.items", Message: "at least one item is required"})
		} else {
			for i, item := range d.Ewaste.Items {
				if item.Type == "" {
					errs = append(errs, FieldError{
						Field:   fmt.Sprintf("ewaste.items[%d].type", i),
						Message: "item type is required",
					})
				}
			}
		}
	}
	return errs
}

func anyContainerOrdered(sh *models.ShreddingDetails) bool {
	for _, qty := range sh.ContainerQuantities {
		if qty > 0 {
			return true
		}
	}
	return false
}

// numericFieldErrors rejects negative weights, quantities and values.
func numericFieldErrors(d models.BookingDraft) FieldErrors {
	var errs FieldErrors
	if d.PackageWeightKG < 0 {
		errs = append(errs, FieldError{Field: "packageWeightKg", Message: "weight cannot be negative"})
	}
	if d.DeclaredValue < 0 {
		errs = append(errs, FieldError{Field: "declaredValue", Message: "declared value cannot be negative"})
	}
	if d.Shredding != nil {
		for id, qty := range d.Shredding.ContainerQuantities {
			if qty < 0 {
				errs = append(errs, FieldError{
					Field:   "shredding.containerQuantities." + id,
					Message: "quantity cannot be negative",
				})
			}
		}
	}
	if d.Rubbish != nil && d.Rubbish.EstimatedVolume < 0 {
		errs = append(errs, FieldError{Field: "rubbish.estimatedVolumeM3", Message: "volume cannot be negative"})
	}
	if d.Ewaste != nil {
		for i, item := range d.Ewaste.Items {
			if item.Quantity < 0 {
				errs = append(errs, FieldError{
					Field:   fmt.Sprintf("ewaste.items[%d].quantity", i),
					Message: "quantity cannot be negative",
				})
			}
		}
	}
	return errs
}

// contactFormatErrors checks email and phone formats on every populated
// location. Empty optional fields pass.
func contactFormatErrors(d models.BookingDraft) FieldErrors {
	var errs FieldErrors

	check := func(prefix string, loc models.LocationDetails) {
		if loc.Email != "" && !ValidEmail(loc.Email) {
			errs = append(errs, FieldError{Field: prefix + ".email", Message: "email address is not well-formed"})
		}
		if loc.Phone != "" && !ValidPhone(loc.Phone) {
			errs = append(errs, FieldError{Field: prefix + ".phone", Message: "phone number is not a valid Australian number"})
		}
	}

	check("pickupDetails", d.Pickup)
	check("dropoffDetails", d.Dropoff)
	if d.Signature != nil {
		check("signature.returnDestination", d.Signature.ReturnDestination)
	}
	if d.MultiStop != nil {
		for i, stop := range d.MultiStop.AdditionalStops {
			check(fmt.Sprintf("multiStop.additionalStops[%d]", i), stop)
		}
	}
	return errs
}
