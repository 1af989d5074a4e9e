// Package human converts a PatternTree into an English description,
// adapted from the teacher's cron-schedule humanizer (internal/human) to
// describe reminder patterns instead of raw cron fields.
package human

import (
	"fmt"
	"strings"
	"time"

	"github.com/hzerrad/remindee/internal/reminder"
)

// Humanizer converts a PatternTree to human-readable text.
type Humanizer interface {
	Humanize(pattern reminder.PatternTree) string
}

type humanizer struct{}

// NewHumanizer creates a humanizer with English templates (v1; no locale
// support yet, matching the teacher's own "could add locale support" note).
func NewHumanizer() Humanizer {
	return &humanizer{}
}

func (h *humanizer) Humanize(pattern reminder.PatternTree) string {
	switch pattern.Kind {
	case reminder.KindOneTime:
		return h.humanizeOneTime(*pattern.OneTime)
	case reminder.KindCountdown:
		return h.humanizeCountdown(*pattern.Countdown)
	case reminder.KindCron:
		return h.humanizeCron(*pattern.Cron)
	case reminder.KindRecurring:
		return h.humanizeRecurring(*pattern.Recurring)
	default:
		return "unknown pattern"
	}
}

func (h *humanizer) humanizeOneTime(body reminder.OneTimeBody) string {
	var date string
	if body.Date.Year != nil && body.Date.Month != nil && body.Date.Day != nil {
		date = fmt.Sprintf("%s %d%s %d", formatMonth(*body.Date.Month), *body.Date.Day, ordinalSuffix(*body.Date.Day), *body.Date.Year)
	} else {
		date = "an upcoming date"
	}
	minute := 0
	if body.Time.Minute != nil {
		minute = *body.Time.Minute
	}
	return fmt.Sprintf("Once, on %s at %s", date, formatTime(body.Time.Hour, minute))
}

func (h *humanizer) humanizeCountdown(body reminder.CountdownBody) string {
	s := fmt.Sprintf("In %s", formatDuration(body.Duration))
	if body.Nag != nil {
		s += fmt.Sprintf(", nagging every %s until acknowledged", formatDuration(*body.Nag))
	}
	return s
}

func (h *humanizer) humanizeCron(body reminder.CronBody) string {
	s := fmt.Sprintf("On the cron schedule %q", body.Expr)
	if body.Nag != nil {
		s += fmt.Sprintf(", nagging every %s until acknowledged", formatDuration(*body.Nag))
	}
	return s
}

func (h *humanizer) humanizeRecurring(body reminder.RecurringBody) string {
	datePart := h.humanizeDateSpans(body.DatePatterns)
	timePart := h.humanizeTimeSpans(body.TimePatterns)

	s := fmt.Sprintf("%s at %s", datePart, timePart)
	if body.Nag != nil {
		s += fmt.Sprintf(", nagging every %s until acknowledged", formatDuration(*body.Nag))
	}
	return s
}

func (h *humanizer) humanizeDateSpans(spans []reminder.DateSpan) string {
	parts := make([]string, 0, len(spans))
	for _, span := range spans {
		parts = append(parts, h.humanizeDateSpan(span))
	}
	return formatList(parts)
}

func (h *humanizer) humanizeDateSpan(span reminder.DateSpan) string {
	if span.Divisor != nil && span.Divisor.HasWeekdays {
		return "every " + formatList(weekdayNames(span.Divisor.Weekdays))
	}

	step := reminder.CalendarStep{Days: 1}
	if span.Divisor != nil {
		step = span.Divisor.Step
	}
	return "every " + stepText(step)
}

// weekdayNames returns the weekday set in week order (Mon..Sun), matching
// the parser's own cyclic ordering convention.
func weekdayNames(weekdays map[time.Weekday]bool) []string {
	order := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday}
	var out []string
	for _, wd := range order {
		if weekdays[wd] {
			out = append(out, dayName(wd))
		}
	}
	return out
}

func stepText(step reminder.CalendarStep) string {
	var parts []string
	if step.Years > 0 {
		parts = append(parts, pluralize(step.Years, "year"))
	}
	if step.Months > 0 {
		parts = append(parts, pluralize(step.Months, "month"))
	}
	if step.Days > 0 {
		parts = append(parts, pluralize(step.Days, "day"))
	}
	if len(parts) == 0 {
		return "day"
	}
	return strings.Join(parts, " ")
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func (h *humanizer) humanizeTimeSpans(spans []reminder.TimeSpan) string {
	parts := make([]string, 0, len(spans))
	for _, span := range spans {
		parts = append(parts, h.humanizeTimeSpan(span))
	}
	return formatList(parts)
}

func (h *humanizer) humanizeTimeSpan(span reminder.TimeSpan) string {
	fromMinute := 0
	if span.From != nil && span.From.Minute != nil {
		fromMinute = *span.From.Minute
	}
	fromHour := 0
	if span.From != nil {
		fromHour = span.From.Hour
	}
	from := formatTime(fromHour, fromMinute)

	if span.Until == nil {
		return from
	}

	untilMinute := 0
	if span.Until.Minute != nil {
		untilMinute = *span.Until.Minute
	}
	until := formatTime(span.Until.Hour, untilMinute)

	if span.Divisor == nil {
		return from
	}
	step := span.Divisor.Hours*3600 + span.Divisor.Minutes*60 + span.Divisor.Seconds
	return fmt.Sprintf("%s to %s every %ds", from, until, step)
}
