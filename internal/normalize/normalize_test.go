package normalize_test

import (
	"testing"
	"time"

	"github.com/hzerrad/remindee/internal/normalize"
	"github.com/hzerrad/remindee/internal/reminder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func berlin(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	return loc
}

func TestNormalizeOneTime_YearRollsForward(t *testing.T) {
	loc := berlin(t)
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, loc)
	body := reminder.OneTimeBody{Date: reminder.PartialDate{Day: intPtr(1), Month: intPtr(1)}, Time: reminder.PartialTime{Hour: 0}}

	resolved, err := normalize.NormalizeOneTime(body, now, loc)
	require.NoError(t, err)
	assert.Equal(t, 2025, *resolved.Date.Year)
	assert.Equal(t, 1, *resolved.Date.Month)
	assert.Equal(t, 1, *resolved.Date.Day)
}

func TestNormalizeOneTime_BareHourRollsToTomorrow(t *testing.T) {
	loc := berlin(t)
	now := time.Date(2024, 6, 15, 9, 30, 0, 0, loc)
	body := reminder.OneTimeBody{Time: reminder.PartialTime{Hour: 8}}

	resolved, err := normalize.NormalizeOneTime(body, now, loc)
	require.NoError(t, err)
	assert.Equal(t, 2024, *resolved.Date.Year)
	assert.Equal(t, 6, *resolved.Date.Month)
	assert.Equal(t, 16, *resolved.Date.Day)
}

func TestNormalizeOneTime_BareHourSameDay(t *testing.T) {
	loc := berlin(t)
	now := time.Date(2024, 6, 15, 7, 30, 0, 0, loc)
	body := reminder.OneTimeBody{Time: reminder.PartialTime{Hour: 8}}

	resolved, err := normalize.NormalizeOneTime(body, now, loc)
	require.NoError(t, err)
	assert.Equal(t, 15, *resolved.Date.Day)
}

func TestNormalizeOneTime_FullyExplicitPastFails(t *testing.T) {
	loc := berlin(t)
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, loc)
	body := reminder.OneTimeBody{
		Date: reminder.PartialDate{Year: intPtr(2024), Month: intPtr(1), Day: intPtr(1)},
		Time: reminder.PartialTime{Hour: 0},
	}

	_, err := normalize.NormalizeOneTime(body, now, loc)
	require.Error(t, err)
	var pastErr *normalize.PastInstantError
	require.ErrorAs(t, err, &pastErr)
}

func TestNormalizeOneTime_RejectsInvalidCalendarDate(t *testing.T) {
	loc := berlin(t)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, loc)
	body := reminder.OneTimeBody{
		Date: reminder.PartialDate{Year: intPtr(2024), Month: intPtr(2), Day: intPtr(31)},
		Time: reminder.PartialTime{Hour: 0},
	}

	_, err := normalize.NormalizeOneTime(body, now, loc)
	require.Error(t, err)
}

func TestNormalizeOneTime_Idempotent(t *testing.T) {
	loc := berlin(t)
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, loc)
	body := reminder.OneTimeBody{Date: reminder.PartialDate{Day: intPtr(1), Month: intPtr(1)}, Time: reminder.PartialTime{Hour: 0}}

	once, err := normalize.NormalizeOneTime(body, now, loc)
	require.NoError(t, err)
	twice, err := normalize.NormalizeOneTime(once, now, loc)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func intPtr(n int) *int { return &n }
