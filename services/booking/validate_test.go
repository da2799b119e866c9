package booking_test

import (
	"testing"

	"swiftdrop/models"
	"swiftdrop/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(errs booking.FieldErrors) []string {
	names := make([]string, len(errs))
	for i, e := range errs {
		names[i] = e.Field
	}
	return names
}

func TestValidateDraft_NoServiceSelected(t *testing.T) {
	errs := booking.ValidateDraft(models.NewBookingDraft())
	require.Len(t, errs, 1)
	assert.Equal(t, "serviceType", errs[0].Field)
}

func TestValidateDraft_StandardReportsEveryMissingField(t *testing.T) {
	d := draftFor(t, models.ServiceStandard).Snapshot()

	errs := booking.ValidateDraft(d)
	names := fieldNames(errs)
	assert.Contains(t, names, "pickupDetails.streetAddress")
	assert.Contains(t, names, "dropoffDetails.streetAddress")
	assert.Contains(t, names, "packageDescription")
}

func TestValidateDraft_StandardComplete(t *testing.T) {
	store := draftFor(t, models.ServiceStandard)
	require.NoError(t, store.UpdateField("pickupDetails.streetAddress", "1 George St"))
	require.NoError(t, store.UpdateField("dropoffDetails.streetAddress", "10 Pitt St"))
	require.NoError(t, store.UpdateField("packageDescription", "Box of samples"))

	assert.Nil(t, booking.ValidateDraft(store.Snapshot()))
}

func TestValidateDraft_FreightRequiresVehicleType(t *testing.T) {
	store := draftFor(t, models.ServiceLargeFreight)
	require.NoError(t, store.UpdateField("pickupDetails.streetAddress", "1 George St"))
	require.NoError(t, store.UpdateField("dropoffDetails.streetAddress", "10 Pitt St"))

	errs := booking.ValidateDraft(store.Snapshot())
	assert.Equal(t, []string{"freight.vehicleType"}, fieldNames(errs))

	require.NoError(t, store.UpdateField("freight.vehicleType", "Van"))
	assert.Nil(t, booking.ValidateDraft(store.Snapshot()))
}

func TestValidateDraft_MultiStopChecksEveryStop(t *testing.T) {
	store := draftFor(t, models.ServiceMultiStop)
	require.NoError(t, store.UpdateField("pickupDetails.streetAddress", "1 George St"))
	require.NoError(t, store.UpdateField("dropoffDetails.streetAddress", "10 Pitt St"))

	errs := booking.ValidateDraft(store.Snapshot())
	assert.Contains(t, fieldNames(errs), "multiStop.additionalStops")

	require.NoError(t, store.AddStop())
	require.NoError(t, store.AddStop())
	require.NoError(t, store.UpdateStop(0, models.LocationDetails{StreetAddress: "3 Kent St"}))

	errs = booking.ValidateDraft(store.Snapshot())
	assert.Equal(t, []string{"multiStop.additionalStops[1].streetAddress"}, fieldNames(errs))
}

func TestValidateDraft_SignatureNeedsDocumentAndReturn(t *testing.T) {
	store := draftFor(t, models.ServiceSignature)
	require.NoError(t, store.UpdateField("pickupDetails.streetAddress", "1 George St"))

	errs := booking.ValidateDraft(store.Snapshot())
	names := fieldNames(errs)
	assert.Contains(t, names, "signature.documentType")
	assert.Contains(t, names, "signature.returnDestination.streetAddress")

	require.NoError(t, store.UpdateField("signature.documentType", "contract"))
	require.NoError(t, store.UpdateField("signature.returnDestination.streetAddress", "1 George St"))
	assert.Nil(t, booking.ValidateDraft(store.Snapshot()))
}

func TestValidateDraft_DocumentDestructionNeedsAContainer(t *testing.T) {
	store := draftFor(t, models.ServiceDocumentDestruction)
	require.NoError(t, store.UpdateField("pickupDetails.streetAddress", "1 George St"))

	errs := booking.ValidateDraft(store.Snapshot())
	assert.Equal(t, []string{"shredding.containerQuantities"}, fieldNames(errs))

	require.NoError(t, store.SetContainerQuantity("shred_bag", 1))
	assert.Nil(t, booking.ValidateDraft(store.Snapshot()))
}

func TestValidateDraft_EwasteItemsNeedTypes(t *testing.T) {
	store := draftFor(t, models.ServiceElectronicRecycling)
	require.NoError(t, store.UpdateField("pickupDetails.streetAddress", "1 George St"))

	errs := booking.ValidateDraft(store.Snapshot())
	assert.Equal(t, []string{"ewaste.items"}, fieldNames(errs))

	require.NoError(t, store.AddEwasteItem("", 1))
	errs = booking.ValidateDraft(store.Snapshot())
	assert.Equal(t, []string{"ewaste.items[0].type"}, fieldNames(errs))
}

func TestValidateDraft_NegativeNumbersRejected(t *testing.T) {
	store := draftFor(t, models.ServiceStandard)
	require.NoError(t, store.UpdateField("pickupDetails.streetAddress", "1 George St"))
	require.NoError(t, store.UpdateField("dropoffDetails.streetAddress", "10 Pitt St"))
	require.NoError(t, store.UpdateField("packageDescription", "Box"))
	require.NoError(t, store.UpdateField("packageWeightKg", -1.0))
	require.NoError(t, store.UpdateField("declaredValue", -50.0))

	names := fieldNames(booking.ValidateDraft(store.Snapshot()))
	assert.Contains(t, names, "packageWeightKg")
	assert.Contains(t, names, "declaredValue")
}

func TestValidateDraft_ContactFormats(t *testing.T) {
	store := draftFor(t, models.ServiceStandard)
	require.NoError(t, store.UpdateField("pickupDetails.streetAddress", "1 George St"))
	require.NoError(t, store.UpdateField("dropoffDetails.streetAddress", "10 Pitt St"))
	require.NoError(t, store.UpdateField("packageDescription", "Box"))
	require.NoError(t, store.UpdateField("pickupDetails.email", "not-an-email"))
	require.NoError(t, store.UpdateField("dropoffDetails.phone", "12345"))

	names := fieldNames(booking.ValidateDraft(store.Snapshot()))
	assert.Contains(t, names, "pickupDetails.email")
	assert.Contains(t, names, "dropoffDetails.phone")

	require.NoError(t, store.UpdateField("pickupDetails.email", "ops@swiftdrop.com.au"))
	require.NoError(t, store.UpdateField("dropoffDetails.phone", "0412 345 678"))
	assert.Nil(t, booking.ValidateDraft(store.Snapshot()))
}

func TestValidPhone_AustralianFormats(t *testing.T) {
	valid := []string{"0412345678", "+61412345678", "0298765432", "02 9876 5432"}
	for _, p := range valid {
		assert.True(t, booking.ValidPhone(p), p)
	}
	invalid := []string{"12345", "0112345678", "+1 555 0100", "04123456789"}
	for _, p := range invalid {
		assert.False(t, booking.ValidPhone(p), p)
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, booking.ValidEmail("driver@swiftdrop.com.au"))
	assert.False(t, booking.ValidEmail("driver@swiftdrop"))
	assert.False(t, booking.ValidEmail("driver swiftdrop.com"))
}
