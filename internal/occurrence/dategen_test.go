package occurrence

import (
	"testing"
	"time"

	"github.com/hzerrad/remindee/internal/reminder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCalendarStep_ClampsEndOfMonth(t *testing.T) {
	jan31 := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	next := addCalendarStep(jan31, reminder.CalendarStep{Months: 1})
	assert.Equal(t, time.February, next.Month())
	assert.Equal(t, 29, next.Day())
}

func TestAddCalendarStep_NonLeapYearClampsToFeb28(t *testing.T) {
	jan31 := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)
	next := addCalendarStep(jan31, reminder.CalendarStep{Months: 1})
	assert.Equal(t, 28, next.Day())
}

func TestMergedDateIterator_DedupesOverlappingSpans(t *testing.T) {
	loc := time.UTC
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, loc)
	spans := []reminder.DateSpan{
		{Divisor: &reminder.DateDivisor{Step: reminder.CalendarStep{Days: 1}}},
		{Divisor: &reminder.DateDivisor{HasWeekdays: true, Weekdays: map[time.Weekday]bool{time.Saturday: true}}},
	}
	it := newMergedDateIterator(spans, start, loc)

	d1, ok := it.next()
	require.True(t, ok)
	d2, ok := it.next()
	require.True(t, ok)
	assert.True(t, d2.After(d1))
}

func TestMergedDateIterator_UnionOfTwoStepSpans(t *testing.T) {
	loc := time.UTC
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, loc)
	from1 := reminder.PartialDate{Year: intPtr2(2024), Month: intPtr2(6), Day: intPtr2(1)}
	from2 := reminder.PartialDate{Year: intPtr2(2024), Month: intPtr2(6), Day: intPtr2(3)}
	spans := []reminder.DateSpan{
		{From: &from1, Divisor: &reminder.DateDivisor{Step: reminder.CalendarStep{Days: 4}}},
		{From: &from2, Divisor: &reminder.DateDivisor{Step: reminder.CalendarStep{Days: 4}}},
	}
	it := newMergedDateIterator(spans, start, loc)

	var days []int
	for i := 0; i < 4; i++ {
		d, ok := it.next()
		require.True(t, ok)
		days = append(days, d.Day())
	}
	assert.Equal(t, []int{1, 3, 5, 7}, days)
}

func TestNewStepDateGen_YearlessSpanWrapsIntoNextYear(t *testing.T) {
	loc := time.UTC
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, loc)
	from := reminder.PartialDate{Month: intPtr2(12), Day: intPtr2(25)}
	until := reminder.PartialDate{Month: intPtr2(1), Day: intPtr2(5)}
	span := reminder.DateSpan{From: &from, Until: &until}

	g := newStepDateGen(span, start, loc)

	var days []time.Time
	for {
		d, ok := g.peek()
		if !ok {
			break
		}
		days = append(days, d)
		g.advance()
	}

	require.NotEmpty(t, days)
	assert.Equal(t, time.Date(2024, 12, 25, 0, 0, 0, 0, loc), days[0])
	last := days[len(days)-1]
	assert.Equal(t, time.Date(2025, 1, 5, 0, 0, 0, 0, loc), last)
}

func intPtr2(n int) *int { return &n }
