package booking_test

import (
	"testing"

	"swiftdrop/models"
	"swiftdrop/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allServiceTypes = []models.ServiceTypeID{
	models.ServiceStandard,
	models.ServiceLargeFreight,
	models.ServiceRecurring,
	models.ServiceMultiStop,
	models.ServiceWhiteGlove,
	models.ServiceSignature,
	models.ServiceDocumentDestruction,
	models.ServiceRubbishRemoval,
	models.ServiceElectronicRecycling,
}

func TestCatalog_EverySequenceStartsWithServiceAndEndsWithReview(t *testing.T) {
	for _, id := range allServiceTypes {
		steps, err := booking.Steps(id)
		require.NoError(t, err, "service type %s", id)
		require.NotEmpty(t, steps, "service type %s", id)
		assert.Equal(t, models.StepService, steps[0], "service type %s", id)
		assert.Equal(t, models.StepReview, steps[len(steps)-1], "service type %s", id)
	}
}

func TestCatalog_UnknownServiceType(t *testing.T) {
	_, err := booking.Definition("teleportation")
	assert.ErrorIs(t, err, booking.ErrUnknownServiceType)

	_, err = booking.Steps("teleportation")
	assert.ErrorIs(t, err, booking.ErrUnknownServiceType)
}

func TestCatalog_StepsReturnsACopy(t *testing.T) {
	steps, err := booking.Steps(models.ServiceStandard)
	require.NoError(t, err)

	steps[0] = "mutated"

	again, err := booking.Steps(models.ServiceStandard)
	require.NoError(t, err)
	assert.Equal(t, models.StepService, again[0])
}

func TestCatalog_AvailableServiceTypesOrderedByPriority(t *testing.T) {
	defs := booking.AvailableServiceTypes()
	require.NotEmpty(t, defs)

	for i, def := range defs {
		assert.True(t, def.Available)
		assert.NotEmpty(t, def.Name)
		if i > 0 {
			assert.Less(t, defs[i-1].Priority, def.Priority)
		}
	}
	assert.Equal(t, models.ServiceStandard, defs[0].ID)
}

func TestCatalog_ListContainerTypesSortedByPrice(t *testing.T) {
	containers := booking.ListContainerTypes()
	require.Len(t, containers, 5)

	for i := 1; i < len(containers); i++ {
		assert.True(t, containers[i-1].Price.LessThanOrEqual(containers[i].Price))
	}
	assert.Equal(t, "archive_box", containers[0].ID)
}
