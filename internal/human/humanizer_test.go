package human_test

import (
	"testing"
	"time"

	"github.com/hzerrad/remindee/internal/human"
	"github.com/hzerrad/remindee/internal/reminder"
	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int { return &n }

func TestHumanize_OneTime(t *testing.T) {
	h := human.NewHumanizer()
	pattern := reminder.PatternTree{
		Kind: reminder.KindOneTime,
		OneTime: &reminder.OneTimeBody{
			Date: reminder.PartialDate{Year: intPtr(2025), Month: intPtr(1), Day: intPtr(1)},
			Time: reminder.PartialTime{Hour: 0, Minute: intPtr(0)},
		},
	}
	got := h.Humanize(pattern)
	assert.Contains(t, got, "January")
	assert.Contains(t, got, "1st")
	assert.Contains(t, got, "2025")
}

func TestHumanize_Countdown_WithNag(t *testing.T) {
	h := human.NewHumanizer()
	nag := 15 * time.Minute
	pattern := reminder.PatternTree{
		Kind:      reminder.KindCountdown,
		Countdown: &reminder.CountdownBody{Duration: 5 * time.Minute, Nag: &nag},
	}
	got := h.Humanize(pattern)
	assert.Contains(t, got, "5 minutes")
	assert.Contains(t, got, "nagging every 15 minutes")
}

func TestHumanize_Recurring_WeekdaySet(t *testing.T) {
	h := human.NewHumanizer()
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
	got := h.Humanize(pattern)
	assert.Contains(t, got, "Monday")
	assert.Contains(t, got, "Wednesday")
	assert.Contains(t, got, "Friday")
	assert.Contains(t, got, "09:00")
}

func TestHumanize_Recurring_CalendarStep(t *testing.T) {
	h := human.NewHumanizer()
	pattern := reminder.PatternTree{
		Kind: reminder.KindRecurring,
		Recurring: &reminder.RecurringBody{
			DatePatterns: []reminder.DateSpan{{Divisor: &reminder.DateDivisor{Step: reminder.CalendarStep{Months: 1}}}},
			TimePatterns: []reminder.TimeSpan{{From: &reminder.PartialTime{Hour: 10}}},
		},
	}
	got := h.Humanize(pattern)
	assert.Contains(t, got, "1 month")
}

func TestHumanize_Cron(t *testing.T) {
	h := human.NewHumanizer()
	pattern := reminder.PatternTree{Kind: reminder.KindCron, Cron: &reminder.CronBody{Expr: "0 9 * * *"}}
	got := h.Humanize(pattern)
	assert.Contains(t, got, "0 9 * * *")
}
