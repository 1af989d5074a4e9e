// Package normalize implements the Pattern Normaliser (spec §4.B): it
// resolves omitted PartialDate fields against a reference instant, enforces
// field ranges, and canonicalises a PatternTree before it reaches the
// occurrence engine or the store.
package normalize

import (
	"errors"
	"fmt"
	"time"

	"github.com/hzerrad/remindee/internal/reminder"
)

// PastInstantError is returned for a OneTime pattern whose every date/time
// field was explicit and whose resolved instant lies at or before now.
type PastInstantError struct {
	Resolved time.Time
}

func (e *PastInstantError) Error() string {
	return fmt.Sprintf("reminder instant %s is not in the future", e.Resolved.Format(time.RFC3339))
}

var errInvalidField = errors.New("field out of range")

// Normalize resolves and validates pattern against now/loc, per spec §4.B.
// OneTime is fully resolved (every field filled); Recurring/Countdown/Cron
// are validated in place and returned unchanged — their fields are resolved
// lazily by the occurrence engine at evaluation time (spec §4.C step 1 for
// Recurring, step 5 for Countdown materialisation).
func Normalize(pattern reminder.PatternTree, now time.Time, loc *time.Location) (reminder.PatternTree, error) {
	switch pattern.Kind {
	case reminder.KindOneTime:
		body, err := NormalizeOneTime(*pattern.OneTime, now, loc)
		if err != nil {
			return reminder.PatternTree{}, err
		}
		return reminder.PatternTree{Kind: reminder.KindOneTime, OneTime: &body}, nil
	case reminder.KindRecurring:
		if err := ValidateRecurring(pattern.Recurring); err != nil {
			return reminder.PatternTree{}, err
		}
		return pattern, nil
	case reminder.KindCountdown:
		if err := ValidateCountdown(pattern.Countdown); err != nil {
			return reminder.PatternTree{}, err
		}
		return pattern, nil
	case reminder.KindCron:
		// Syntax already validated by internal/parser; nothing to resolve.
		return pattern, nil
	default:
		return reminder.PatternTree{}, fmt.Errorf("normalize: unknown pattern kind %v", pattern.Kind)
	}
}

// NormalizeOneTime implements spec §4.B steps 1-3 for a OneTime pattern.
func NormalizeOneTime(body reminder.OneTimeBody, now time.Time, loc *time.Location) (reminder.OneTimeBody, error) {
	nowLocal := now.In(loc)

	year, yearAbsent := resolveInt(body.Date.Year, nowLocal.Year())
	month, monthAbsent := resolveInt(body.Date.Month, int(nowLocal.Month()))
	day, dayAbsent := resolveInt(body.Date.Day, nowLocal.Day())

	hour := body.Time.Hour
	minute := 0
	if body.Time.Minute != nil {
		minute = *body.Time.Minute
	}
	second := 0
	if body.Time.Second != nil {
		second = *body.Time.Second
	}

	if err := validateTimeRange(hour, minute, second); err != nil {
		return reminder.OneTimeBody{}, err
	}

	candidate := time.Date(year, time.Month(month), day, hour, minute, second, 0, loc)
	if !isValidCalendarDate(candidate, year, month, day) {
		return reminder.OneTimeBody{}, fmt.Errorf("%w: %04d-%02d-%02d is not a calendar date", errInvalidField, year, month, day)
	}

	if !candidate.After(nowLocal) {
		switch {
		case dayAbsent:
			day++
			candidate = time.Date(year, time.Month(month), day, hour, minute, second, 0, loc)
			year, month, day = candidate.Year(), int(candidate.Month()), candidate.Day()
		case monthAbsent:
			month++
			candidate = time.Date(year, time.Month(month), day, hour, minute, second, 0, loc)
			year, month = candidate.Year(), int(candidate.Month())
		case yearAbsent:
			year++
			candidate = time.Date(year, time.Month(month), day, hour, minute, second, 0, loc)
		default:
			return reminder.OneTimeBody{}, &PastInstantError{Resolved: candidate}
		}
	}

	if !candidate.After(nowLocal) {
		return reminder.OneTimeBody{}, &PastInstantError{Resolved: candidate}
	}

	return reminder.OneTimeBody{
		Date: reminder.PartialDate{Year: intPtr(year), Month: intPtr(month), Day: intPtr(day)},
		Time: reminder.PartialTime{Hour: hour, Minute: intPtr(minute), Second: intPtr(second)},
	}, nil
}

// ValidateRecurring checks every present field of every span is in range and
// every divisor advances. Year/until resolution against "now" (spec §4.B
// point 4) happens lazily in internal/occurrence, which has the iteration
// context the static normalizer lacks.
func ValidateRecurring(body *reminder.RecurringBody) error {
	if len(body.DatePatterns) == 0 {
		return fmt.Errorf("%w: recurring pattern needs at least one date span", errInvalidField)
	}
	if len(body.TimePatterns) == 0 {
		return fmt.Errorf("%w: recurring pattern needs at least one time span", errInvalidField)
	}
	for _, span := range body.DatePatterns {
		if err := validateDateSpan(span); err != nil {
			return err
		}
	}
	for _, span := range body.TimePatterns {
		if err := validateTimeSpan(span); err != nil {
			return err
		}
	}
	if body.Nag != nil && *body.Nag <= 0 {
		return fmt.Errorf("%w: nag interval must be positive", errInvalidField)
	}
	return nil
}

// ValidateCountdown checks the duration and nag interval are sane.
func ValidateCountdown(body *reminder.CountdownBody) error {
	if body.Duration <= 0 {
		return fmt.Errorf("%w: countdown duration must be positive", errInvalidField)
	}
	if body.Nag != nil && *body.Nag <= 0 {
		return fmt.Errorf("%w: nag interval must be positive", errInvalidField)
	}
	return nil
}

// MaterializeCountdown implements spec §4.B point 5: the duration is
// materialised to an absolute instant exactly once, at creation.
func MaterializeCountdown(now time.Time, body reminder.CountdownBody) time.Time {
	return now.Add(body.Duration)
}

func validateDateSpan(span reminder.DateSpan) error {
	if span.From != nil {
		if err := validatePartialDateFields(*span.From); err != nil {
			return err
		}
	}
	if span.Until != nil {
		if err := validatePartialDateFields(*span.Until); err != nil {
			return err
		}
	}
	if span.Divisor != nil && !span.Divisor.HasWeekdays && span.Divisor.Step.IsZero() {
		return fmt.Errorf("%w: date divisor must advance", errInvalidField)
	}
	if span.Divisor != nil && span.Divisor.HasWeekdays && len(span.Divisor.Weekdays) == 0 {
		return fmt.Errorf("%w: weekday divisor must be non-empty", errInvalidField)
	}
	return nil
}

func validatePartialDateFields(d reminder.PartialDate) error {
	if d.Month != nil && (*d.Month < 1 || *d.Month > 12) {
		return fmt.Errorf("%w: month %d", errInvalidField, *d.Month)
	}
	if d.Day != nil && (*d.Day < 1 || *d.Day > 31) {
		return fmt.Errorf("%w: day %d", errInvalidField, *d.Day)
	}
	return nil
}

func validateTimeSpan(span reminder.TimeSpan) error {
	if span.From != nil {
		if err := validatePartialTimeFields(*span.From); err != nil {
			return err
		}
	}
	if span.Until != nil {
		if err := validatePartialTimeFields(*span.Until); err != nil {
			return err
		}
	}
	if span.Divisor != nil && span.Divisor.Hours == 0 && span.Divisor.Minutes == 0 && span.Divisor.Seconds == 0 {
		return fmt.Errorf("%w: time divisor must advance", errInvalidField)
	}
	return nil
}

func validatePartialTimeFields(t reminder.PartialTime) error {
	minute := 0
	if t.Minute != nil {
		minute = *t.Minute
	}
	second := 0
	if t.Second != nil {
		second = *t.Second
	}
	return validateTimeRange(t.Hour, minute, second)
}

func validateTimeRange(hour, minute, second int) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("%w: hour %d", errInvalidField, hour)
	}
	if minute < 0 || minute > 59 {
		return fmt.Errorf("%w: minute %d", errInvalidField, minute)
	}
	if second < 0 || second > 59 {
		return fmt.Errorf("%w: second %d", errInvalidField, second)
	}
	return nil
}

// isValidCalendarDate rejects dates like Feb 31 that time.Date would
// silently roll forward instead of reporting as invalid.
func isValidCalendarDate(t time.Time, year, month, day int) bool {
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

func resolveInt(field *int, fallback int) (value int, wasAbsent bool) {
	if field == nil {
		return fallback, true
	}
	return *field, false
}

func intPtr(n int) *int { return &n }
