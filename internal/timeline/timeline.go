// Package timeline renders a user's upcoming reminder occurrences as an
// ASCII day view, adapted from the teacher's internal/render package (which
// drew a day/hour view of cron job runs) to draw reminder deliveries
// instead.
package timeline

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hzerrad/remindee/internal/occurrence"
	"github.com/hzerrad/remindee/internal/reminder"
)

// Occurrence is a single reminder firing at a specific instant.
type Occurrence struct {
	ReminderID  uint64
	Description string
	At          time.Time
}

// Clash is a set of reminders whose occurrences land in the same hour slot.
type Clash struct {
	Hour        time.Time
	ReminderIDs []uint64
}

// Timeline is a one-day window of upcoming occurrences across a set of
// reminders.
type Timeline struct {
	start       time.Time
	end         time.Time
	loc         *time.Location
	occurrences []Occurrence
}

// Build computes every occurrence each active reminder has within the 24
// hours starting at `from` (in loc), using eng to advance each reminder's
// pattern. A bounded recurring span that exhausts mid-window is simply
// omitted from that point on.
func Build(eng occurrence.Engine, reminders []*reminder.Reminder, from time.Time, loc *time.Location) *Timeline {
	start := from.In(loc)
	end := start.Add(24 * time.Hour)
	tl := &Timeline{start: start, end: end, loc: loc}

	for _, r := range reminders {
		if !r.Active {
			continue
		}
		it := eng.Iterate(r.Pattern, start.Add(-time.Nanosecond), loc)
		for {
			at, ok := it.Next()
			if !ok || !at.Before(end) {
				break
			}
			tl.occurrences = append(tl.occurrences, Occurrence{
				ReminderID:  r.ID,
				Description: r.Description,
				At:          at,
			})
		}
	}

	sort.Slice(tl.occurrences, func(i, j int) bool { return tl.occurrences[i].At.Before(tl.occurrences[j].At) })
	return tl
}

// Clashes groups occurrences landing in the same local hour across
// different reminders.
func (tl *Timeline) Clashes() []Clash {
	byHour := make(map[time.Time]map[uint64]bool)
	for _, occ := range tl.occurrences {
		hour := occ.At.Truncate(time.Hour)
		if byHour[hour] == nil {
			byHour[hour] = make(map[uint64]bool)
		}
		byHour[hour][occ.ReminderID] = true
	}

	var clashes []Clash
	for hour, ids := range byHour {
		if len(ids) < 2 {
			continue
		}
		var list []uint64
		for id := range ids {
			list = append(list, id)
		}
		sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
		clashes = append(clashes, Clash{Hour: hour, ReminderIDs: list})
	}
	sort.Slice(clashes, func(i, j int) bool { return clashes[i].Hour.Before(clashes[j].Hour) })
	return clashes
}

// Render draws a 24-slot ASCII bar, one slot per hour, with a column
// marking any hour carrying at least one occurrence, followed by a plain
// list of the occurrences themselves.
func (tl *Timeline) Render() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Timeline for %s\n", tl.start.Format("2006-01-02"))
	fmt.Fprintf(&sb, "%s ──────────────────────────────────────────────────────────────── %s\n",
		tl.start.Format("15:04"), tl.end.Format("15:04"))

	counts := make([]int, 24)
	for _, occ := range tl.occurrences {
		slot := int(occ.At.Sub(tl.start).Hours())
		if slot >= 0 && slot < 24 {
			counts[slot]++
		}
	}

	sb.WriteString("      │")
	for _, c := range counts {
		if c > 0 {
			sb.WriteString("  ████")
		} else {
			sb.WriteString("      ")
		}
	}
	sb.WriteString("  │\n      └──────────────────────────────────────────────────────────────────┘\n")

	for _, occ := range tl.occurrences {
		fmt.Fprintf(&sb, "      %s  reminder %d: %s\n", occ.At.Format("15:04"), occ.ReminderID, occ.Description)
	}

	for _, clash := range tl.Clashes() {
		fmt.Fprintf(&sb, "      clash at %s: reminders %v\n", clash.Hour.Format("15:04"), clash.ReminderIDs)
	}

	return sb.String()
}
