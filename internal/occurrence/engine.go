// Package occurrence implements the Occurrence Engine (spec §4.C): given a
// normalized PatternTree, a reference instant, and a timezone, it computes
// the next firing instant, handling DST, month-length irregularities, and
// open-ended recurring ranges. The engine is pure and deterministic — it
// performs no I/O, matching the teacher's cronx.Scheduler boundary
// discipline.
package occurrence

import (
	"time"

	"github.com/hzerrad/remindee/internal/reminder"
	"github.com/robfig/cron/v3"
)

// Engine computes the next firing instant for any PatternTree variant.
type Engine interface {
	// NextAfter returns the earliest instant > after at which pattern
	// fires, or nil if the pattern can never fire again (spec's
	// NoFutureOccurrence, for an exhausted bounded Recurring span).
	NextAfter(pattern reminder.PatternTree, after time.Time, loc *time.Location) (*time.Time, error)

	// Iterate returns a lazy, ordered sequence of occurrences starting
	// after `from`. Callers must not retain more of the sequence than
	// they consume; the iterator performs no internal buffering beyond
	// the single next candidate.
	Iterate(pattern reminder.PatternTree, from time.Time, loc *time.Location) *Iterator
}

type engine struct {
	// BOUNDARY: the only place in this module that calls robfig/cron's
	// Schedule.Next(). Mirrors internal/cronx/scheduler.go's own
	// boundary discipline — cron expression *validation* happens once,
	// up front in internal/parser; this is purely occurrence math.
	cronParser cron.Parser
}

// NewEngine constructs the default occurrence engine.
func NewEngine() Engine {
	return &engine{
		cronParser: cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
	}
}

func (e *engine) NextAfter(pattern reminder.PatternTree, after time.Time, loc *time.Location) (*time.Time, error) {
	switch pattern.Kind {
	case reminder.KindOneTime:
		return e.nextOneTime(*pattern.OneTime, after, loc)
	case reminder.KindCountdown:
		return e.nextCountdown(*pattern.Countdown, after)
	case reminder.KindCron:
		return e.nextCron(*pattern.Cron, after, loc)
	case reminder.KindRecurring:
		return e.nextRecurring(*pattern.Recurring, after, loc)
	default:
		return nil, nil
	}
}

func (e *engine) nextOneTime(body reminder.OneTimeBody, after time.Time, loc *time.Location) (*time.Time, error) {
	year := 0
	if body.Date.Year != nil {
		year = *body.Date.Year
	}
	month := 1
	if body.Date.Month != nil {
		month = *body.Date.Month
	}
	day := 1
	if body.Date.Day != nil {
		day = *body.Date.Day
	}
	minute := 0
	if body.Time.Minute != nil {
		minute = *body.Time.Minute
	}
	second := 0
	if body.Time.Second != nil {
		second = *body.Time.Second
	}
	instant := time.Date(year, time.Month(month), day, body.Time.Hour, minute, second, 0, loc)
	if instant.After(after) {
		return &instant, nil
	}
	return nil, nil
}

// nextCountdown treats `after` as the reference instant to add the
// countdown duration to, keeping NextAfter pure: the create command calls
// it with after == created_at to set next_fire, and the scheduler never
// recomputes a Countdown's next_fire (spec §4.C, §3 invariant
// "next_fire = created_at + duration exactly once").
func (e *engine) nextCountdown(body reminder.CountdownBody, after time.Time) (*time.Time, error) {
	instant := after.Add(body.Duration)
	if instant.After(after) {
		return &instant, nil
	}
	return nil, nil
}

func (e *engine) nextCron(body reminder.CronBody, after time.Time, loc *time.Location) (*time.Time, error) {
	schedule, err := e.cronParser.Parse(body.Expr)
	if err != nil {
		return nil, err
	}
	next := schedule.Next(after.In(loc))
	if next.IsZero() {
		return nil, nil
	}
	return &next, nil
}

// nextRecurring implements spec §4.C steps 1-5: dates are enumerated
// ascending from after's local date via the merged DateSpan generators;
// for each candidate date every TimePattern second-of-day is tried in
// order, and the first instant strictly after `after` wins. Today's date
// naturally only yields instants later in the day, since anything earlier
// fails the After(after) check; every later date qualifies regardless of
// time-of-day.
func (e *engine) nextRecurring(body reminder.RecurringBody, after time.Time, loc *time.Location) (*time.Time, error) {
	afterLocal := after.In(loc)
	seconds := collectSeconds(body.TimePatterns)
	if len(seconds) == 0 {
		return nil, nil
	}

	startDate := midnight(afterLocal, loc)
	it := newMergedDateIterator(body.DatePatterns, startDate, loc)

	for {
		date, ok := it.next()
		if !ok {
			return nil, nil
		}
		for _, s := range seconds {
			instant := civilFromDateAndSeconds(date, s, loc)
			if instant.After(afterLocal) {
				return &instant, nil
			}
		}
	}
}

// Iterator is a lazy, ordered sequence of occurrences. It holds no
// precomputed window — each Next() call re-invokes the engine with the
// previous result as the new `after`.
type Iterator struct {
	engine  *engine
	pattern reminder.PatternTree
	loc     *time.Location
	cur     time.Time
}

func (e *engine) Iterate(pattern reminder.PatternTree, from time.Time, loc *time.Location) *Iterator {
	return &Iterator{engine: e, pattern: pattern, loc: loc, cur: from}
}

// Next returns the next occurrence, or ok=false if the pattern is exhausted.
func (it *Iterator) Next() (time.Time, bool) {
	next, err := it.engine.NextAfter(it.pattern, it.cur, it.loc)
	if err != nil || next == nil {
		return time.Time{}, false
	}
	it.cur = *next
	return *next, true
}
