// Package remdiff computes the semantic differences between two versions
// of a reminder's PatternTree, adapted from the teacher's internal/diff
// package (which compared two crontab files job-by-job) to compare a single
// reminder's pattern before and after an edit.
package remdiff

import (
	"fmt"
	"reflect"

	"github.com/hzerrad/remindee/internal/reminder"
)

// Diff is the set of field-level changes between two PatternTree values.
type Diff struct {
	KindChanged   bool
	OldKind       reminder.PatternKind
	NewKind       reminder.PatternKind
	FieldsChanged []string
}

// Unchanged reports whether the diff found no differences at all.
func (d Diff) Unchanged() bool {
	return !d.KindChanged && len(d.FieldsChanged) == 0
}

// Compare returns the semantic Diff between oldPattern and newPattern.
func Compare(oldPattern, newPattern reminder.PatternTree) Diff {
	d := Diff{OldKind: oldPattern.Kind, NewKind: newPattern.Kind}
	if oldPattern.Kind != newPattern.Kind {
		d.KindChanged = true
		return d
	}

	switch oldPattern.Kind {
	case reminder.KindOneTime:
		d.FieldsChanged = compareOneTime(*oldPattern.OneTime, *newPattern.OneTime)
	case reminder.KindRecurring:
		d.FieldsChanged = compareRecurring(*oldPattern.Recurring, *newPattern.Recurring)
	case reminder.KindCountdown:
		d.FieldsChanged = compareCountdown(*oldPattern.Countdown, *newPattern.Countdown)
	case reminder.KindCron:
		d.FieldsChanged = compareCron(*oldPattern.Cron, *newPattern.Cron)
	}
	return d
}

func compareOneTime(o, n reminder.OneTimeBody) []string {
	var changed []string
	if !reflect.DeepEqual(o.Date, n.Date) {
		changed = append(changed, "date")
	}
	if !reflect.DeepEqual(o.Time, n.Time) {
		changed = append(changed, "time")
	}
	return changed
}

func compareRecurring(o, n reminder.RecurringBody) []string {
	var changed []string
	if !reflect.DeepEqual(o.DatePatterns, n.DatePatterns) {
		changed = append(changed, "date_patterns")
	}
	if !reflect.DeepEqual(o.TimePatterns, n.TimePatterns) {
		changed = append(changed, "time_patterns")
	}
	if !reflect.DeepEqual(o.Nag, n.Nag) {
		changed = append(changed, "nag")
	}
	return changed
}

func compareCountdown(o, n reminder.CountdownBody) []string {
	var changed []string
	if o.Duration != n.Duration {
		changed = append(changed, "duration")
	}
	if !reflect.DeepEqual(o.Nag, n.Nag) {
		changed = append(changed, "nag")
	}
	return changed
}

func compareCron(o, n reminder.CronBody) []string {
	var changed []string
	if o.Expr != n.Expr {
		changed = append(changed, "expr")
	}
	if !reflect.DeepEqual(o.Nag, n.Nag) {
		changed = append(changed, "nag")
	}
	return changed
}

// Summary renders the diff as a single human-readable line.
func (d Diff) Summary() string {
	if d.Unchanged() {
		return "no changes"
	}
	if d.KindChanged {
		return fmt.Sprintf("pattern type changed from %s to %s", d.OldKind, d.NewKind)
	}
	return fmt.Sprintf("changed: %v", d.FieldsChanged)
}
