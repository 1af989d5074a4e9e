// Package lint implements pattern sanity checks over a normalized
// PatternTree, adapted from the teacher's internal/check package (which
// validated raw cron expressions and crontab hygiene) to validate reminder
// patterns instead.
package lint

import (
	"time"

	"github.com/hzerrad/remindee/internal/occurrence"
	"github.com/hzerrad/remindee/internal/reminder"
)

// Issue is a single lint finding.
type Issue struct {
	Severity Severity
	Code     string
	Message  string
	Hint     string
}

func newIssue(sev Severity, code, message string) Issue {
	return Issue{Severity: sev, Code: code, Message: message, Hint: Hint(code)}
}

// maxExcessiveRunsPerDay is the threshold above which a pattern is flagged
// as excessively frequent (mirrors the teacher's maxRunsPerDay default).
const maxExcessiveRunsPerDay = 1000

// Check runs every applicable sanity check against pattern, evaluated
// relative to `now` in `loc`.
func Check(eng occurrence.Engine, pattern reminder.PatternTree, now time.Time, loc *time.Location) []Issue {
	var issues []Issue

	if nag := pattern.NagInterval(); nag != nil {
		issues = append(issues, checkNagVsPeriod(eng, pattern, *nag, now, loc)...)
	}

	switch pattern.Kind {
	case reminder.KindRecurring:
		issues = append(issues, checkRecurringReachable(eng, pattern, now, loc)...)
		issues = append(issues, checkRecurringFrequency(eng, pattern, now, loc)...)
	case reminder.KindCron:
		issues = append(issues, checkCronFrequency(eng, pattern, now, loc)...)
	}

	return issues
}

// checkRecurringReachable flags a bounded recurring span that can never
// produce a single occurrence (spec §12 "unreachable recurring patterns").
func checkRecurringReachable(eng occurrence.Engine, pattern reminder.PatternTree, now time.Time, loc *time.Location) []Issue {
	next, err := eng.NextAfter(pattern, now.Add(-24*time.Hour*365*50), loc)
	if err == nil && next == nil {
		return []Issue{newIssue(SeverityError, CodeUnreachable, "this recurring pattern has no possible occurrence")}
	}
	return nil
}

// checkNagVsPeriod flags a nag interval that is longer than the gap
// between this pattern's first two occurrences, since such a nag would
// never get a chance to re-fire before the next recurrence supersedes it.
func checkNagVsPeriod(eng occurrence.Engine, pattern reminder.PatternTree, nag time.Duration, now time.Time, loc *time.Location) []Issue {
	first, err := eng.NextAfter(pattern, now, loc)
	if err != nil || first == nil {
		return nil
	}
	second, err := eng.NextAfter(pattern, *first, loc)
	if err != nil || second == nil {
		return nil
	}
	period := second.Sub(*first)
	if nag > period {
		return []Issue{newIssue(SeverityWarn, CodeNagExceedsPeriod, "nag interval exceeds the recurrence period")}
	}
	return nil
}

// checkRecurringFrequency counts occurrences in the 24 hours following
// `now` and flags the pattern if it exceeds the sane daily threshold.
func checkRecurringFrequency(eng occurrence.Engine, pattern reminder.PatternTree, now time.Time, loc *time.Location) []Issue {
	return checkFrequency(eng, pattern, now, loc)
}

func checkCronFrequency(eng occurrence.Engine, pattern reminder.PatternTree, now time.Time, loc *time.Location) []Issue {
	return checkFrequency(eng, pattern, now, loc)
}

func checkFrequency(eng occurrence.Engine, pattern reminder.PatternTree, now time.Time, loc *time.Location) []Issue {
	horizon := now.Add(24 * time.Hour)
	cur := now
	count := 0
	for count <= maxExcessiveRunsPerDay {
		next, err := eng.NextAfter(pattern, cur, loc)
		if err != nil || next == nil || !next.Before(horizon) {
			break
		}
		count++
		cur = *next
	}
	if count > maxExcessiveRunsPerDay {
		return []Issue{newIssue(SeverityWarn, CodeExcessiveFrequency, "this pattern fires more than 1000 times a day")}
	}
	return nil
}
