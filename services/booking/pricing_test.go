package booking_test

import (
	"testing"

	"swiftdrop/models"
	"swiftdrop/services/booking"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func draftFor(t *testing.T, id models.ServiceTypeID) *booking.DraftStore {
	t.Helper()
	store := booking.NewDraftStore()
	require.NoError(t, store.SelectServiceType(id))
	return store
}

func TestEstimatePrice_StandardAtTwelvePointFiveKM(t *testing.T) {
	d := draftFor(t, models.ServiceStandard).Snapshot()

	est, err := booking.EstimatePrice(d, 12.5)
	require.NoError(t, err)

	assertMoney(t, "9.90", est.BaseFee)
	assertMoney(t, "22.50", est.DistanceComponent)
	assertMoney(t, "0", est.Surcharges)
	assertMoney(t, "32.40", est.Total)
	assert.Equal(t, "AUD", est.Currency)
	assert.Equal(t, 12.5, est.DistanceKM)
}

func TestEstimatePrice_ServiceLevelScalesOnlyDistance(t *testing.T) {
	store := draftFor(t, models.ServiceStandard)
	require.NoError(t, store.UpdateField("serviceLevel", "vip"))

	est, err := booking.EstimatePrice(store.Snapshot(), 12.5)
	require.NoError(t, err)

	assertMoney(t, "9.90", est.BaseFee)
	assertMoney(t, "40.50", est.DistanceComponent)
	assertMoney(t, "50.40", est.Total)
}

func TestEstimatePrice_LargeFreightTailgateSurcharge(t *testing.T) {
	store := draftFor(t, models.ServiceLargeFreight)
	require.NoError(t, store.UpdateField("freight.requiresTailgate", true))

	est, err := booking.EstimatePrice(store.Snapshot(), 10)
	require.NoError(t, err)

	assertMoney(t, "89.00", est.BaseFee)
	assertMoney(t, "35.00", est.DistanceComponent)
	assertMoney(t, "35.00", est.Surcharges)
	assertMoney(t, "159.00", est.Total)
}

func TestEstimatePrice_MultiStopPerStopFee(t *testing.T) {
	store := draftFor(t, models.ServiceMultiStop)
	for i := 0; i < 3; i++ {
		require.NoError(t, store.AddStop())
	}

	est, err := booking.EstimatePrice(store.Snapshot(), 0)
	require.NoError(t, err)

	assertMoney(t, "14.90", est.BaseFee)
	assertMoney(t, "15.00", est.Surcharges)
	assertMoney(t, "29.90", est.Total)
}

func TestEstimatePrice_WhiteGlovePerOptionFee(t *testing.T) {
	store := draftFor(t, models.ServiceWhiteGlove)
	require.NoError(t, store.UpdateField("whiteGlove.assembly", true))
	require.NoError(t, store.UpdateField("whiteGlove.roomPlacement", true))

	est, err := booking.EstimatePrice(store.Snapshot(), 0)
	require.NoError(t, err)

	assertMoney(t, "49.00", est.BaseFee)
	assertMoney(t, "50.00", est.Surcharges)
	assertMoney(t, "99.00", est.Total)
}

func TestEstimatePrice_DocumentDestructionIgnoresDistance(t *testing.T) {
	store := draftFor(t, models.ServiceDocumentDestruction)
	require.NoError(t, store.SetContainerQuantity("shred_bag", 2))
	require.NoError(t, store.SetContainerQuantity("archive_box", 1))

	est, err := booking.EstimatePrice(store.Snapshot(), 250)
	require.NoError(t, err)

	// 2 x 33.00 + 1 x 8.80 plus the 15.00 container delivery fee.
	assertMoney(t, "74.80", est.BaseFee)
	assertMoney(t, "0", est.DistanceComponent)
	assertMoney(t, "15.00", est.Surcharges)
	assertMoney(t, "89.80", est.Total)
}

func TestEstimatePrice_DocumentDestructionZeroQuantities(t *testing.T) {
	// With delivery requested the quote is exactly the flat delivery fee.
	d := draftFor(t, models.ServiceDocumentDestruction).Snapshot()
	est, err := booking.EstimatePrice(d, 5)
	require.NoError(t, err)
	assertMoney(t, "15.00", est.Total)

	// Without it the quote is zero.
	store := draftFor(t, models.ServiceDocumentDestruction)
	require.NoError(t, store.UpdateField("shredding.requiresDelivery", false))
	est, err = booking.EstimatePrice(store.Snapshot(), 5)
	require.NoError(t, err)
	assertMoney(t, "0", est.Total)
}

func TestEstimatePrice_DocumentDestructionPickupOnlySkipsDeliveryFee(t *testing.T) {
	store := draftFor(t, models.ServiceDocumentDestruction)
	require.NoError(t, store.SetContainerQuantity("secure_bin_240", 1))
	require.NoError(t, store.UpdateField("shredding.requiresDelivery", false))

	est, err := booking.EstimatePrice(store.Snapshot(), 5)
	require.NoError(t, err)
	assertMoney(t, "55.00", est.Total)
}

func TestEstimatePrice_RubbishVolumeDefaultsToOneCubicMetre(t *testing.T) {
	d := draftFor(t, models.ServiceRubbishRemoval).Snapshot()

	est, err := booking.EstimatePrice(d, 0)
	require.NoError(t, err)

	assertMoney(t, "75.00", est.BaseFee)
	assertMoney(t, "50.00", est.Surcharges)
	assertMoney(t, "125.00", est.Total)
}

func TestEstimatePrice_RubbishScalesWithVolume(t *testing.T) {
	store := draftFor(t, models.ServiceRubbishRemoval)
	require.NoError(t, store.UpdateField("rubbish.estimatedVolumeM3", 3.0))

	est, err := booking.EstimatePrice(store.Snapshot(), 0)
	require.NoError(t, err)
	assertMoney(t, "225.00", est.Total)
}

func TestEstimatePrice_EwastePerItemFee(t *testing.T) {
	store := draftFor(t, models.ServiceElectronicRecycling)
	require.NoError(t, store.AddEwasteItem("laptop", 2))
	require.NoError(t, store.AddEwasteItem("monitor", 1))

	est, err := booking.EstimatePrice(store.Snapshot(), 0)
	require.NoError(t, err)

	assertMoney(t, "45.00", est.BaseFee)
	assertMoney(t, "30.00", est.Surcharges)
	assertMoney(t, "75.00", est.Total)
}

func TestEstimatePrice_InvalidInputs(t *testing.T) {
	_, err := booking.EstimatePrice(models.NewBookingDraft(), 5)
	assert.ErrorIs(t, err, booking.ErrNoServiceSelected)

	d := draftFor(t, models.ServiceStandard).Snapshot()
	_, err = booking.EstimatePrice(d, -1)
	assert.ErrorIs(t, err, booking.ErrInvalidQuantity)

	d.PackageWeightKG = -2
	_, err = booking.EstimatePrice(d, 5)
	assert.ErrorIs(t, err, booking.ErrInvalidQuantity)

	shred := draftFor(t, models.ServiceDocumentDestruction).Snapshot()
	shred.Shredding.ContainerQuantities["shred_bag"] = -1
	_, err = booking.EstimatePrice(shred, 5)
	assert.ErrorIs(t, err, booking.ErrInvalidQuantity)
}

func TestEstimatePrice_Deterministic(t *testing.T) {
	store := draftFor(t, models.ServiceLargeFreight)
	require.NoError(t, store.UpdateField("freight.requiresTailgate", true))
	d := store.Snapshot()

	first, err := booking.EstimatePrice(d, 37.3)
	require.NoError(t, err)
	second, err := booking.EstimatePrice(d, 37.3)
	require.NoError(t, err)

	assert.True(t, first.Total.Equal(second.Total))
	assert.False(t, first.Total.IsNegative())
}
