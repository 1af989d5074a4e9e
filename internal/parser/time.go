package parser

import (
	"strconv"
	"strings"

	"github.com/hzerrad/remindee/internal/reminder"
)

// parsePartialTime parses "H", "H:M", or "H:M:S". A bare integer is only
// legal when the caller has already established that a time is expected at
// this position (spec §4.A).
func parsePartialTime(s string, pos int) (reminder.PartialTime, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return reminder.PartialTime{}, newParseError(pos, "H:M:S time")
	}
	ints := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return reminder.PartialTime{}, newParseError(pos, "integer time field")
		}
		ints[i] = n
	}
	t := reminder.PartialTime{Hour: ints[0]}
	if len(ints) >= 2 {
		t.Minute = intPtr(ints[1])
	}
	if len(ints) >= 3 {
		t.Second = intPtr(ints[2])
	}
	return t, nil
}

// parsePartialTimeOptional parses an empty string to nil (open span bound).
func parsePartialTimeOptional(s string, pos int) (*reminder.PartialTime, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parsePartialTime(s, pos)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseTimeSpan parses the "<from>-<until>/<divisor>" recurring-time-span
// grammar, where divisor is an hours/minutes/seconds unit token.
func parseTimeSpan(s string, pos int) (reminder.TimeSpan, error) {
	head, tail := s, ""
	if idx := strings.IndexByte(s, '/'); idx >= 0 {
		head, tail = s[:idx], s[idx+1:]
	}

	span := reminder.TimeSpan{}
	fromStr, untilStr, ranged := head, "", false
	if idx := strings.IndexByte(head, '-'); idx >= 0 {
		fromStr, untilStr, ranged = head[:idx], head[idx+1:], true
	}

	from, err := parsePartialTimeOptional(fromStr, pos)
	if err != nil {
		return reminder.TimeSpan{}, err
	}
	span.From = from

	if ranged {
		until, err := parsePartialTimeOptional(untilStr, pos)
		if err != nil {
			return reminder.TimeSpan{}, err
		}
		span.Until = until
	}

	if tail == "" {
		return span, nil
	}

	u, err := parseUnitToken(tail, pos)
	if err != nil {
		return reminder.TimeSpan{}, err
	}
	step, err := u.asTimeStep(pos)
	if err != nil {
		return reminder.TimeSpan{}, err
	}
	if step == (reminder.TimeStep{}) {
		return reminder.TimeSpan{}, newParseError(pos, "non-zero time step")
	}
	span.Divisor = &step
	return span, nil
}
