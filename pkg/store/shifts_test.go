package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestShiftCreateAndFilterByDay(t *testing.T) {
	shifts := NewShiftStore(newTestDB(t))

	created, err := shifts.Create("bob", date(2024, time.May, 6), "9-5", "cashier", "front")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	// A timestamp later the same day still matches that calendar day.
	got, err := shifts.On(time.Date(2024, time.May, 6, 15, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, created.ID, got[0].ID)
	assert.Equal(t, "cashier", got[0].Position)

	got, err = shifts.On(date(2024, time.May, 7))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestShiftsForEmployeeIsCaseSensitive(t *testing.T) {
	shifts := NewShiftStore(newTestDB(t))

	_, err := shifts.Create("bob", date(2024, time.May, 6), "9-5", "cashier", "front")
	require.NoError(t, err)

	got, err := shifts.For("bob")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = shifts.For("Bob")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestShiftsKeepCreationOrder(t *testing.T) {
	shifts := NewShiftStore(newTestDB(t))

	first, err := shifts.Create("bob", date(2024, time.May, 6), "9-12", "cashier", "front")
	require.NoError(t, err)
	second, err := shifts.Create("carol", date(2024, time.May, 6), "12-5", "cook", "back")
	require.NoError(t, err)

	got, err := shifts.On(date(2024, time.May, 6))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
}

func TestWeekBucketsEachShiftOnce(t *testing.T) {
	shifts := NewShiftStore(newTestDB(t))

	// 2024-05-05 is a Sunday.
	sun, err := shifts.Create("bob", date(2024, time.May, 5), "9-5", "cashier", "front")
	require.NoError(t, err)
	wed, err := shifts.Create("carol", date(2024, time.May, 8), "9-5", "cook", "back")
	require.NoError(t, err)
	_, err = shifts.Create("dave", date(2024, time.May, 12), "9-5", "host", "front")
	require.NoError(t, err)

	week, err := shifts.Week(date(2024, time.May, 8))
	require.NoError(t, err)
	require.Len(t, week, 7)

	assert.Equal(t, date(2024, time.May, 5), week[0].Day)
	require.Len(t, week[0].Shifts, 1)
	assert.Equal(t, sun.ID, week[0].Shifts[0].ID)

	require.Len(t, week[3].Shifts, 1)
	assert.Equal(t, wed.ID, week[3].Shifts[0].ID)

	// The Sunday after belongs to the next week.
	total := 0
	for _, d := range week {
		total += len(d.Shifts)
	}
	assert.Equal(t, 2, total)
}
