package parser

import (
	"regexp"
	"strconv"
	"time"

	"github.com/hzerrad/remindee/internal/reminder"
)

// unitToken is the compact "<n>y<n>mo<n>w<n>d<n>h<n>m<n>s" form shared by
// calendar divisors, countdown durations, and nag intervals (spec §4.A).
// Which groups a caller may use is context-dependent: a date divisor rejects
// h/m/s, a time divisor rejects y/mo/w/d, and a nag/countdown duration
// rejects y/mo.
var unitTokenRe = regexp.MustCompile(`^(?:(\d+)y)?(?:(\d+)mo)?(?:(\d+)w)?(?:(\d+)d)?(?:(\d+)h)?(?:(\d+)m)?(?:(\d+)s)?$`)

// unitToken holds the raw parsed integer per unit, 0 when absent.
type unitToken struct {
	Years, Months, Weeks, Days, Hours, Minutes, Seconds int
}

func (u unitToken) isZero() bool {
	return u == unitToken{}
}

// parseUnitToken parses s against the shared compact-duration grammar. It
// does not reject any unit combination itself — callers enforce which units
// are legal in their context so the one regex can serve every call site
// (calendar divisor, time divisor, countdown, nag).
func parseUnitToken(s string, pos int) (unitToken, error) {
	m := unitTokenRe.FindStringSubmatch(s)
	if m == nil {
		return unitToken{}, newParseError(pos, "calendar divisor", "duration")
	}
	var u unitToken
	fields := []*int{&u.Years, &u.Months, &u.Weeks, &u.Days, &u.Hours, &u.Minutes, &u.Seconds}
	for i, raw := range m[1:] {
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return unitToken{}, newParseError(pos, "integer")
		}
		*fields[i] = n
	}
	if u.isZero() {
		return unitToken{}, newParseError(pos, "calendar divisor", "duration")
	}
	return u, nil
}

// asCalendarStep converts a unitToken to a CalendarStep for a DateDivisor,
// rejecting sub-day units and folding whole weeks into days.
func (u unitToken) asCalendarStep(pos int) (reminder.CalendarStep, error) {
	if u.Hours != 0 || u.Minutes != 0 || u.Seconds != 0 {
		return reminder.CalendarStep{}, newParseError(pos, "calendar step (y/mo/w/d only)")
	}
	return reminder.CalendarStep{Years: u.Years, Months: u.Months, Days: u.Days + u.Weeks*7}, nil
}

// asTimeStep converts a unitToken to an hours/minutes/seconds TimeSpan step.
func (u unitToken) asTimeStep(pos int) (reminder.TimeStep, error) {
	if u.Years != 0 || u.Months != 0 || u.Weeks != 0 || u.Days != 0 {
		return reminder.TimeStep{}, newParseError(pos, "time step (h/m/s only)")
	}
	return reminder.TimeStep{Hours: u.Hours, Minutes: u.Minutes, Seconds: u.Seconds}, nil
}

// asDuration converts a unitToken to a time.Duration for a countdown or nag
// interval, rejecting the calendar-only year/month units (§4.A: "nag omits
// years and months").
func (u unitToken) asDuration(pos int) (time.Duration, error) {
	if u.Years != 0 || u.Months != 0 {
		return 0, newParseError(pos, "duration (w/d/h/m/s only)")
	}
	d := time.Duration(u.Weeks) * 7 * 24 * time.Hour
	d += time.Duration(u.Days) * 24 * time.Hour
	d += time.Duration(u.Hours) * time.Hour
	d += time.Duration(u.Minutes) * time.Minute
	d += time.Duration(u.Seconds) * time.Second
	return d, nil
}
