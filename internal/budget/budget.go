// Package budget analyzes how many reminder deliveries would land within
// the same short window, adapted from the teacher's internal/budget package
// (which counted concurrent crontab jobs sharing a time window) to instead
// count concurrent reminder *deliveries* across a user's active reminders —
// a notification-overload check rather than a process-concurrency one.
package budget

import (
	"fmt"
	"sort"
	"time"

	"github.com/hzerrad/remindee/internal/occurrence"
	"github.com/hzerrad/remindee/internal/reminder"
)

// Budget is a concurrency rule: no more than MaxConcurrent deliveries may
// land within any one-minute bucket of TimeWindow.
type Budget struct {
	MaxConcurrent int
	TimeWindow    time.Duration
	Name          string
}

// Violation is a single minute where a Budget was exceeded.
type Violation struct {
	Time        time.Time
	Count       int
	ReminderIDs []uint64
	Budget      Budget
}

// Result is the analysis outcome for a single Budget.
type Result struct {
	Budget     Budget
	MaxFound   int
	Passed     bool
	Violations []Violation
}

// Report is the complete analysis across every Budget checked.
type Report struct {
	Results    []Result
	Passed     bool
	Violations []Violation
}

// Analyze checks reminders against budgets using eng to enumerate each
// reminder's occurrences from `from`.
func Analyze(eng occurrence.Engine, reminders []*reminder.Reminder, budgets []Budget, from time.Time, loc *time.Location) (*Report, error) {
	if len(budgets) == 0 {
		return nil, fmt.Errorf("budget: no budgets specified")
	}

	report := &Report{Passed: true}
	for _, b := range budgets {
		result, err := analyzeSingle(eng, reminders, b, from, loc)
		if err != nil {
			return nil, fmt.Errorf("budget: analyzing %q: %w", b.Name, err)
		}
		report.Results = append(report.Results, *result)
		if !result.Passed {
			report.Passed = false
		}
		report.Violations = append(report.Violations, result.Violations...)
	}
	return report, nil
}

// analyzeSingle walks every active reminder's occurrences within
// [from, from+budget.TimeWindow), buckets them by minute, and flags minutes
// where more distinct reminders land than MaxConcurrent allows.
func analyzeSingle(eng occurrence.Engine, reminders []*reminder.Reminder, b Budget, from time.Time, loc *time.Location) (*Result, error) {
	result := &Result{Budget: b, Passed: true}

	active := make([]*reminder.Reminder, 0, len(reminders))
	for _, r := range reminders {
		if r.Active {
			active = append(active, r)
		}
	}
	if len(active) == 0 {
		return result, nil
	}

	until := from.Add(b.TimeWindow)
	timeMap := make(map[time.Time]map[uint64]bool)
	for _, r := range active {
		it := eng.Iterate(r.Pattern, from.Add(-time.Nanosecond), loc)
		for {
			at, ok := it.Next()
			if !ok || !at.Before(until) {
				break
			}
			bucket := at.Truncate(time.Minute)
			if timeMap[bucket] == nil {
				timeMap[bucket] = make(map[uint64]bool)
			}
			timeMap[bucket][r.ID] = true
		}
	}

	for t, ids := range timeMap {
		count := len(ids)
		if count > result.MaxFound {
			result.MaxFound = count
		}
		if count > b.MaxConcurrent {
			idList := make([]uint64, 0, len(ids))
			for id := range ids {
				idList = append(idList, id)
			}
			sort.Slice(idList, func(i, j int) bool { return idList[i] < idList[j] })
			result.Violations = append(result.Violations, Violation{
				Time: t, Count: count, ReminderIDs: idList, Budget: b,
			})
		}
	}

	if len(result.Violations) > 0 {
		result.Passed = false
	}
	sort.Slice(result.Violations, func(i, j int) bool {
		return result.Violations[i].Time.Before(result.Violations[j].Time)
	})

	return result, nil
}
