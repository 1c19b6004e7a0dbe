package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmreyes/staffboard-api/pkg/models"
)

func TestAvailabilityLastWriteWins(t *testing.T) {
	avail := NewAvailabilityStore(newTestDB(t))

	require.NoError(t, avail.Submit(&models.Availability{
		EmployeeName: "bob",
		Monday:       "9-5",
		Tuesday:      "off",
	}))

	// A resubmission replaces the whole row, including days left blank.
	require.NoError(t, avail.Submit(&models.Availability{
		EmployeeName: "bob",
		Monday:       "12-8",
	}))

	got, err := avail.Get("bob")
	require.NoError(t, err)
	assert.Equal(t, "12-8", got.Monday)
	assert.Equal(t, "", got.Tuesday)
}

func TestAvailabilityListSortedByName(t *testing.T) {
	avail := NewAvailabilityStore(newTestDB(t))

	require.NoError(t, avail.Submit(&models.Availability{EmployeeName: "carol"}))
	require.NoError(t, avail.Submit(&models.Availability{EmployeeName: "alice"}))
	require.NoError(t, avail.Submit(&models.Availability{EmployeeName: "bob"}))

	all, err := avail.List()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "alice", all[0].EmployeeName)
	assert.Equal(t, "bob", all[1].EmployeeName)
	assert.Equal(t, "carol", all[2].EmployeeName)
}

func TestAvailabilityRejectsEmptyName(t *testing.T) {
	avail := NewAvailabilityStore(newTestDB(t))

	err := avail.Submit(&models.Availability{EmployeeName: "  "})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = avail.Get("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}
