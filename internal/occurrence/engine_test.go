package occurrence_test

import (
	"testing"
	"time"

	"github.com/hzerrad/remindee/internal/occurrence"
	"github.com/hzerrad/remindee/internal/reminder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func berlin(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	return loc
}

func intPtr(n int) *int { return &n }

func TestEngine_OneTime_FiresOnceAfterInstant(t *testing.T) {
	loc := berlin(t)
	eng := occurrence.NewEngine()
	pattern := reminder.PatternTree{
		Kind: reminder.KindOneTime,
		OneTime: &reminder.OneTimeBody{
			Date: reminder.PartialDate{Year: intPtr(2024), Month: intPtr(1), Day: intPtr(1)},
			Time: reminder.PartialTime{Hour: 9, Minute: intPtr(0), Second: intPtr(0)},
		},
	}
	after := time.Date(2023, 12, 31, 0, 0, 0, 0, loc)

	next, err := eng.NextAfter(pattern, after, loc)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, 2024, next.Year())

	next2, err := eng.NextAfter(pattern, *next, loc)
	require.NoError(t, err)
	assert.Nil(t, next2)
}

func TestEngine_Countdown_AddsDurationToAfter(t *testing.T) {
	loc := berlin(t)
	eng := occurrence.NewEngine()
	pattern := reminder.PatternTree{
		Kind:      reminder.KindCountdown,
		Countdown: &reminder.CountdownBody{Duration: 2 * time.Hour},
	}
	created := time.Date(2024, 6, 15, 10, 0, 0, 0, loc)

	next, err := eng.NextAfter(pattern, created, loc)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, created.Add(2*time.Hour), *next)
}

func TestEngine_Cron_MatchesRobfigSchedule(t *testing.T) {
	loc := berlin(t)
	eng := occurrence.NewEngine()
	pattern := reminder.PatternTree{
		Kind: reminder.KindCron,
		Cron: &reminder.CronBody{Expr: "0 9 * * *"},
	}
	after := time.Date(2024, 6, 15, 10, 0, 0, 0, loc)

	next, err := eng.NextAfter(pattern, after, loc)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, 9, next.Hour())
	assert.Equal(t, 16, next.Day())
}

func TestEngine_Recurring_DailyAtFixedTime(t *testing.T) {
	loc := berlin(t)
	eng := occurrence.NewEngine()
	pattern := reminder.PatternTree{
		Kind: reminder.KindRecurring,
		Recurring: &reminder.RecurringBody{
			DatePatterns: []reminder.DateSpan{{Divisor: &reminder.DateDivisor{Step: reminder.CalendarStep{Days: 1}}}},
			TimePatterns: []reminder.TimeSpan{{From: &reminder.PartialTime{Hour: 8}}},
		},
	}
	after := time.Date(2024, 6, 15, 7, 0, 0, 0, loc)

	next, err := eng.NextAfter(pattern, after, loc)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, 15, next.Day())
	assert.Equal(t, 8, next.Hour())

	// After the fire time the same day, it should roll to tomorrow.
	second, err := eng.NextAfter(pattern, *next, loc)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, 16, second.Day())
}

func TestEngine_Recurring_WeekdayDivisor(t *testing.T) {
	loc := berlin(t)
	eng := occurrence.NewEngine()
	pattern := reminder.PatternTree{
		Kind: reminder.KindRecurring,
		Recurring: &reminder.RecurringBody{
			DatePatterns: []reminder.DateSpan{{Divisor: &reminder.DateDivisor{
				HasWeekdays: true,
				Weekdays:    map[time.Weekday]bool{time.Monday: true, time.Wednesday: true, time.Friday: true},
			}}},
			TimePatterns: []reminder.TimeSpan{{From: &reminder.PartialTime{Hour: 9}}},
		},
	}
	// 2024-06-15 is a Saturday.
	after := time.Date(2024, 6, 15, 0, 0, 0, 0, loc)

	next, err := eng.NextAfter(pattern, after, loc)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, time.Monday, next.Weekday())
	assert.Equal(t, 17, next.Day())
}

func TestEngine_Recurring_BoundedSpanExhausts(t *testing.T) {
	loc := berlin(t)
	eng := occurrence.NewEngine()
	until := reminder.PartialDate{Year: intPtr(2024), Month: intPtr(6), Day: intPtr(16)}
	pattern := reminder.PatternTree{
		Kind: reminder.KindRecurring,
		Recurring: &reminder.RecurringBody{
			DatePatterns: []reminder.DateSpan{{
				Until:   &until,
				Divisor: &reminder.DateDivisor{Step: reminder.CalendarStep{Days: 1}},
			}},
			TimePatterns: []reminder.TimeSpan{{From: &reminder.PartialTime{Hour: 8}}},
		},
	}
	after := time.Date(2024, 6, 16, 9, 0, 0, 0, loc)

	next, err := eng.NextAfter(pattern, after, loc)
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestEngine_Recurring_MonthEndClamping(t *testing.T) {
	loc := berlin(t)
	eng := occurrence.NewEngine()
	from := reminder.PartialDate{Year: intPtr(2024), Month: intPtr(1), Day: intPtr(31)}
	pattern := reminder.PatternTree{
		Kind: reminder.KindRecurring,
		Recurring: &reminder.RecurringBody{
			DatePatterns: []reminder.DateSpan{{
				From:    &from,
				Divisor: &reminder.DateDivisor{Step: reminder.CalendarStep{Months: 1}},
			}},
			TimePatterns: []reminder.TimeSpan{{From: &reminder.PartialTime{Hour: 0}}},
		},
	}
	after := time.Date(2024, 1, 31, 1, 0, 0, 0, loc)

	next, err := eng.NextAfter(pattern, after, loc)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, time.February, next.Month())
	assert.Equal(t, 29, next.Day()) // 2024 is a leap year
}

func TestEngine_Recurring_DSTSpringForward(t *testing.T) {
	loc := berlin(t)
	eng := occurrence.NewEngine()
	// Europe/Berlin springs forward on 2024-03-31 at 02:00 -> 03:00.
	pattern := reminder.PatternTree{
		Kind: reminder.KindRecurring,
		Recurring: &reminder.RecurringBody{
			DatePatterns: []reminder.DateSpan{{Divisor: &reminder.DateDivisor{Step: reminder.CalendarStep{Days: 1}}}},
			TimePatterns: []reminder.TimeSpan{{From: &reminder.PartialTime{Hour: 2, Minute: intPtr(30)}}},
		},
	}
	after := time.Date(2024, 3, 30, 12, 0, 0, 0, loc)

	next, err := eng.NextAfter(pattern, after, loc)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, 31, next.Day())
	// The nonexistent 02:30 wall time resolves to a valid instant, not a panic.
	assert.True(t, next.After(after))
}

func TestEngine_NextAfter_AlwaysStrictlyAfter(t *testing.T) {
	loc := berlin(t)
	eng := occurrence.NewEngine()
	pattern := reminder.PatternTree{
		Kind: reminder.KindRecurring,
		Recurring: &reminder.RecurringBody{
			DatePatterns: []reminder.DateSpan{{Divisor: &reminder.DateDivisor{Step: reminder.CalendarStep{Days: 1}}}},
			TimePatterns: []reminder.TimeSpan{{From: &reminder.PartialTime{Hour: 8}}},
		},
	}
	cur := time.Date(2024, 6, 1, 0, 0, 0, 0, loc)
	for i := 0; i < 10; i++ {
		next, err := eng.NextAfter(pattern, cur, loc)
		require.NoError(t, err)
		require.NotNil(t, next)
		assert.True(t, next.After(cur))
		cur = *next
	}
}

func TestEngine_Recurring_TimeRangeWithDivisor(t *testing.T) {
	loc := berlin(t)
	eng := occurrence.NewEngine()
	from := reminder.PartialTime{Hour: 9}
	until := reminder.PartialTime{Hour: 17}
	pattern := reminder.PatternTree{
		Kind: reminder.KindRecurring,
		Recurring: &reminder.RecurringBody{
			DatePatterns: []reminder.DateSpan{{Divisor: &reminder.DateDivisor{Step: reminder.CalendarStep{Days: 1}}}},
			TimePatterns: []reminder.TimeSpan{{From: &from, Until: &until, Divisor: &reminder.TimeStep{Hours: 4}}},
		},
	}
	after := time.Date(2024, 6, 15, 9, 30, 0, 0, loc)

	next, err := eng.NextAfter(pattern, after, loc)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, 13, next.Hour())

	second, err := eng.NextAfter(pattern, *next, loc)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, 17, second.Hour())

	third, err := eng.NextAfter(pattern, *second, loc)
	require.NoError(t, err)
	require.NotNil(t, third)
	assert.Equal(t, 16, third.Day())
	assert.Equal(t, 9, third.Hour())
}
