package occurrence

import (
	"sort"
	"time"

	"github.com/hzerrad/remindee/internal/reminder"
)

const secondsPerDay = 24 * 60 * 60

func secondsOfDay(t time.Time) int {
	h, m, s := t.Clock()
	return h*3600 + m*60 + s
}

func partialTimeSeconds(pt *reminder.PartialTime, fallback int) int {
	if pt == nil {
		return fallback
	}
	minute, second := 0, 0
	if pt.Minute != nil {
		minute = *pt.Minute
	}
	if pt.Second != nil {
		second = *pt.Second
	}
	return pt.Hour*3600 + minute*60 + second
}

// secondsForSpan enumerates the seconds-of-day a single TimeSpan fires at,
// per spec §3: a single-point span (no Until) fires once a day at From; a
// ranged span with no Divisor fires at From only; a ranged span with a
// Divisor steps from From to Until inclusive. A Divisor without an Until
// repeats across the remainder of the day.
func secondsForSpan(span reminder.TimeSpan) []int {
	from := partialTimeSeconds(span.From, 0)

	if span.Until == nil && span.Divisor == nil {
		return []int{from}
	}

	until := partialTimeSeconds(span.Until, secondsPerDay-1)
	if span.Divisor == nil {
		return []int{from}
	}

	step := span.Divisor.Hours*3600 + span.Divisor.Minutes*60 + span.Divisor.Seconds
	if step <= 0 {
		return []int{from}
	}

	var out []int
	for s := from; s <= until; s += step {
		out = append(out, s)
	}
	return out
}

// collectSeconds unions every TimeSpan's seconds-of-day into a sorted,
// deduplicated slice. Times-of-day are bounded to a single day (at most
// 86,400 values) so eager enumeration here doesn't violate the "avoid
// materialising the full candidate list" design note — that constraint
// targets the unbounded *date* axis, handled lazily in dategen.go.
func collectSeconds(spans []reminder.TimeSpan) []int {
	set := make(map[int]bool)
	for _, span := range spans {
		for _, s := range secondsForSpan(span) {
			if s >= 0 && s < secondsPerDay {
				set[s] = true
			}
		}
	}
	out := make([]int, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

// civilFromDateAndSeconds combines a midnight-truncated local date with a
// seconds-of-day offset into an absolute instant, treating the offset as a
// local wall-clock time. DST handling is deferred entirely to time.Date: a
// nonexistent spring-forward wall time is shifted forward by the length of
// the gap (02:30 becomes 03:30 across a one-hour gap), and an ambiguous
// fall-back wall time resolves to one of its two offsets as time.Date picks
// it — both per the platform tzdata (spec §9).
func civilFromDateAndSeconds(date time.Time, seconds int, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, seconds/3600, (seconds/60)%60, seconds%60, 0, loc)
}
