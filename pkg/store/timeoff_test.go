package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmreyes/staffboard-api/pkg/models"
)

func TestTimeOffLifecycle(t *testing.T) {
	timeoff := NewTimeOffStore(newTestDB(t))

	req, err := timeoff.Request("bob", date(2024, time.June, 1), date(2024, time.June, 3))
	require.NoError(t, err)
	assert.Equal(t, models.TimeOffPending, req.Status)

	decided, err := timeoff.Decide(req.ID, models.TimeOffApproved)
	require.NoError(t, err)
	assert.Equal(t, models.TimeOffApproved, decided.Status)

	// Approved is terminal: a second decision fails and changes nothing.
	_, err = timeoff.Decide(req.ID, models.TimeOffDenied)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	reqs, err := timeoff.For("bob")
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, models.TimeOffApproved, reqs[0].Status)
}

func TestTimeOffRejectsBackwardsRange(t *testing.T) {
	db := newTestDB(t)
	timeoff := NewTimeOffStore(db)

	_, err := timeoff.Request("bob", date(2024, time.June, 3), date(2024, time.June, 1))
	require.ErrorIs(t, err, ErrValidation)

	var count int64
	require.NoError(t, db.Model(&models.TimeOffRequest{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTimeOffSingleDayRangeAllowed(t *testing.T) {
	timeoff := NewTimeOffStore(newTestDB(t))

	req, err := timeoff.Request("bob", date(2024, time.June, 1), date(2024, time.June, 1))
	require.NoError(t, err)
	assert.Equal(t, models.TimeOffPending, req.Status)
}

func TestTimeOffDecideErrors(t *testing.T) {
	timeoff := NewTimeOffStore(newTestDB(t))

	_, err := timeoff.Decide("no-such-id", models.TimeOffApproved)
	assert.ErrorIs(t, err, ErrNotFound)

	req, err := timeoff.Request("bob", date(2024, time.June, 1), date(2024, time.June, 3))
	require.NoError(t, err)

	// Pending is not a valid decision.
	_, err = timeoff.Decide(req.ID, models.TimeOffPending)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTimeOffListInCreationOrder(t *testing.T) {
	timeoff := NewTimeOffStore(newTestDB(t))

	first, err := timeoff.Request("bob", date(2024, time.June, 1), date(2024, time.June, 3))
	require.NoError(t, err)
	second, err := timeoff.Request("carol", date(2024, time.July, 1), date(2024, time.July, 2))
	require.NoError(t, err)

	all, err := timeoff.List()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
}
