package tasks_test

import (
	"encoding/json"
	"testing"
	"time"

	"swiftdrop/services/tasks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFollowUpTask(t *testing.T) {
	fireAt := time.Now().Add(2 * time.Hour)

	task, opts, err := tasks.NewFollowUpTask(tasks.FollowUpPayload{
		TrackingID: "Z2U-ABCD2345",
		AccountID:  "acct-1",
	}, fireAt)
	require.NoError(t, err)

	assert.Equal(t, tasks.TypeBookingFollowUp, task.Type())
	require.Len(t, opts, 1)

	var p tasks.FollowUpPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, "Z2U-ABCD2345", p.TrackingID)
	assert.Equal(t, "acct-1", p.AccountID)
}

func TestNewReminderScheduler_DefaultsDelay(t *testing.T) {
	s := tasks.NewReminderScheduler(nil, 0)
	assert.Equal(t, tasks.DefaultFollowUpDelay, s.Delay)

	s = tasks.NewReminderScheduler(nil, 45*time.Minute)
	assert.Equal(t, 45*time.Minute, s.Delay)
}
