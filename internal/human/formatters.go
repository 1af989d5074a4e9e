package human

import (
	"fmt"
	"strings"
	"time"
)

// formatTime formats hour and minute as HH:MM.
func formatTime(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// formatList formats a slice of strings with an Oxford comma.
func formatList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return fmt.Sprintf("%s and %s", items[0], items[1])
	default:
		last := items[len(items)-1]
		rest := items[:len(items)-1]
		return fmt.Sprintf("%s, and %s", strings.Join(rest, ", "), last)
	}
}

// dayName returns the English name for a time.Weekday (Sunday=0).
func dayName(day time.Weekday) string {
	return day.String()
}

// formatMonth returns the name for a month (1=January, 12=December).
func formatMonth(month int) string {
	if month >= 1 && month <= 12 {
		return time.Month(month).String()
	}
	return fmt.Sprintf("month%d", month)
}

// ordinalSuffix returns the ordinal suffix for a day number (1st, 2nd, 3rd...).
func ordinalSuffix(day int) string {
	lastTwoDigits := day % 100
	if lastTwoDigits >= 11 && lastTwoDigits <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// formatDuration renders a calendar-divisor-shaped duration (nag intervals,
// countdowns) in plain English, coarsest unit first.
func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "0 seconds"
	}

	var parts []string
	days := int(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int(d / time.Minute)
	d -= time.Duration(minutes) * time.Minute
	seconds := int(d / time.Second)

	add := func(n int, unit string) {
		if n == 0 {
			return
		}
		if n == 1 {
			parts = append(parts, fmt.Sprintf("1 %s", unit))
			return
		}
		parts = append(parts, fmt.Sprintf("%d %ss", n, unit))
	}
	add(days, "day")
	add(hours, "hour")
	add(minutes, "minute")
	add(seconds, "second")

	return formatList(parts)
}
