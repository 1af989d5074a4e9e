package parser

import (
	"strconv"
	"strings"

	"github.com/hzerrad/remindee/internal/reminder"
)

// parsePartialDate parses a single date literal: European "d.m.y" (dot
// separated, day-first) or ISO-style "y/m/d" (slash separated, year-first).
// An empty string yields nil (open-ended).
func parsePartialDate(s string, pos int) (*reminder.PartialDate, error) {
	if s == "" {
		return nil, nil
	}
	switch {
	case strings.Contains(s, "."):
		return parseEuroDate(s, pos)
	case strings.Contains(s, "/"):
		return parseISODate(s, pos)
	default:
		// A bare integer in a date slot is a day-of-month.
		day, err := strconv.Atoi(s)
		if err != nil {
			return nil, newParseError(pos, "date")
		}
		return &reminder.PartialDate{Day: intPtr(day)}, nil
	}
}

// parseEuroDate parses "d", "d.m", or "d.m.y".
func parseEuroDate(s string, pos int) (*reminder.PartialDate, error) {
	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return nil, newParseError(pos, "d.m.y date")
	}
	d := &reminder.PartialDate{}
	ints := make([]int, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			ints = append(ints, -1)
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, newParseError(pos, "integer date field")
		}
		ints = append(ints, n)
	}
	if len(ints) >= 1 && ints[0] >= 0 {
		d.Day = intPtr(ints[0])
	}
	if len(ints) >= 2 && ints[1] >= 0 {
		d.Month = intPtr(ints[1])
	}
	if len(ints) >= 3 && ints[2] >= 0 {
		d.Year = intPtr(ints[2])
	}
	return d, nil
}

// parseISODate parses "m/d" or "y/m/d".
func parseISODate(s string, pos int) (*reminder.PartialDate, error) {
	parts := strings.Split(s, "/")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, newParseError(pos, "y/m/d date")
	}
	ints := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, newParseError(pos, "integer date field")
		}
		ints = append(ints, n)
	}
	d := &reminder.PartialDate{}
	if len(ints) == 3 {
		d.Year = intPtr(ints[0])
		d.Month = intPtr(ints[1])
		d.Day = intPtr(ints[2])
	} else {
		d.Month = intPtr(ints[0])
		d.Day = intPtr(ints[1])
	}
	return d, nil
}

func intPtr(n int) *int { return &n }

var weekdayOrder = []reminder.Weekday{
	weekdayByName["mon"], weekdayByName["tue"], weekdayByName["wed"],
	weekdayByName["thu"], weekdayByName["fri"], weekdayByName["sat"], weekdayByName["sun"],
}

var weekdayByName = map[string]reminder.Weekday{
	"mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6, "sun": 0,
}

// parseWeekdaySet parses a comma-separated union of weekday tokens and
// weekday ranges ("mon-fri", "mon,wed,fri", "fri-mon" wrapping the week).
func parseWeekdaySet(s string, pos int) (map[reminder.Weekday]bool, error) {
	set := make(map[reminder.Weekday]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			return nil, newParseError(pos, "weekday")
		}
		if idx := strings.IndexByte(part, '-'); idx >= 0 {
			fromIdx, ok1 := weekdayIndex(part[:idx])
			toIdx, ok2 := weekdayIndex(part[idx+1:])
			if !ok1 || !ok2 {
				return nil, newParseError(pos, "weekday range")
			}
			i := fromIdx
			for {
				set[weekdayOrder[i]] = true
				if i == toIdx {
					break
				}
				i = (i + 1) % 7
			}
			continue
		}
		day, ok := weekdayByName[part]
		if !ok {
			return nil, newParseError(pos, "weekday name")
		}
		set[day] = true
	}
	if len(set) == 0 {
		return nil, newParseError(pos, "non-empty weekday set")
	}
	return set, nil
}

func weekdayIndex(name string) (int, bool) {
	wd, ok := weekdayByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, false
	}
	for i, w := range weekdayOrder {
		if w == wd {
			return i, true
		}
	}
	return 0, false
}

// isWeekdayToken reports whether s looks like a weekday-name divisor rather
// than a calendar-step divisor ("mon-fri" vs "1d").
func isWeekdayToken(s string) bool {
	first := strings.ToLower(strings.SplitN(strings.SplitN(s, ",", 2)[0], "-", 2)[0])
	_, ok := weekdayByName[first]
	return ok
}

// parseDateSpan parses the "<from>-<until>/<divisor>" recurring-date-span
// grammar. The divisor segment (after the first '/') is either a weekday
// set or a calendar-step unit token; when absent the default is "every day".
func parseDateSpan(s string, pos int) (reminder.DateSpan, error) {
	head, tail := s, ""
	if idx := strings.IndexByte(s, '/'); idx >= 0 {
		head, tail = s[:idx], s[idx+1:]
	}

	span := reminder.DateSpan{}
	fromStr, untilStr := head, ""
	if idx := strings.IndexByte(head, '-'); idx >= 0 {
		fromStr, untilStr = head[:idx], head[idx+1:]
	}

	from, err := parsePartialDate(fromStr, pos)
	if err != nil {
		return reminder.DateSpan{}, err
	}
	span.From = from

	if untilStr != "" || strings.Contains(head, "-") {
		until, err := parsePartialDate(untilStr, pos)
		if err != nil {
			return reminder.DateSpan{}, err
		}
		span.Until = until
	}

	if tail == "" {
		div := reminder.DefaultDateDivisor()
		span.Divisor = &div
		return span, nil
	}

	if isWeekdayToken(tail) {
		set, err := parseWeekdaySet(tail, pos)
		if err != nil {
			return reminder.DateSpan{}, err
		}
		span.Divisor = &reminder.DateDivisor{HasWeekdays: true, Weekdays: set}
		return span, nil
	}

	u, err := parseUnitToken(tail, pos)
	if err != nil {
		return reminder.DateSpan{}, err
	}
	step, err := u.asCalendarStep(pos)
	if err != nil {
		return reminder.DateSpan{}, err
	}
	if step.IsZero() {
		return reminder.DateSpan{}, newParseError(pos, "non-zero calendar step")
	}
	span.Divisor = &reminder.DateDivisor{Step: step}
	return span, nil
}

// splitTopLevelDateSegments splits a date-prefix token into its
// comma-unioned DateSpans, taking care not to split commas that fall inside
// a weekday-set divisor (everything after the first '/').
func splitTopLevelDateSegments(tok string) []string {
	head, tail := tok, ""
	if idx := strings.IndexByte(tok, '/'); idx >= 0 {
		head, tail = tok[:idx], tok[idx:]
	}
	heads := strings.Split(head, ",")
	segments := make([]string, len(heads))
	for i, h := range heads {
		segments[i] = h + tail
	}
	return segments
}
