package occurrence

import (
	"container/heap"
	"time"

	"github.com/hzerrad/remindee/internal/reminder"
)

// dateGen produces ascending local dates (midnight-truncated time.Time
// values) for a single DateSpan, lazily — the merge in nextRecurring never
// materialises a full candidate list (design note in spec §9).
type dateGen interface {
	// peek returns the generator's next date and whether one remains.
	peek() (time.Time, bool)
	// advance discards the peeked value, computing the following one.
	advance()
}

func midnight(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func resolvePartialDate(pd *reminder.PartialDate, fallback time.Time) time.Time {
	if pd == nil {
		return fallback
	}
	y, m, d := fallback.Date()
	if pd.Year != nil {
		y = *pd.Year
	}
	if pd.Month != nil {
		m = time.Month(*pd.Month)
	}
	if pd.Day != nil {
		d = *pd.Day
	}
	return time.Date(y, m, d, 0, 0, 0, 0, fallback.Location())
}

// resolveSpanBounds resolves a DateSpan's From/Until against a shared
// fallback instant. When Until omits an explicit year and defaulting it to
// the fallback year would put Until before From, Until is pushed into the
// following year instead, so a span like "25.12-5.1" wraps New Year's
// rather than producing an empty range (spec §4.B point 4).
func resolveSpanBounds(span reminder.DateSpan, fallback time.Time) (from, until *time.Time) {
	if span.From != nil {
		f := resolvePartialDate(span.From, fallback)
		from = &f
	}
	if span.Until != nil {
		u := resolvePartialDate(span.Until, fallback)
		if span.Until.Year == nil && from != nil && u.Before(*from) {
			u = time.Date(from.Year()+1, u.Month(), u.Day(), 0, 0, 0, 0, u.Location())
		}
		until = &u
	}
	return from, until
}

// addCalendarStep advances a civil date by years/months/days, clamping an
// overflowing day-of-month to the last day of the resulting month rather
// than rolling into the following month (spec §4.C step 1, §9).
func addCalendarStep(d time.Time, step reminder.CalendarStep) time.Time {
	totalMonths := step.Years*12 + step.Months
	y, m, day := d.Date()
	monthIdx := int(m) - 1 + totalMonths
	y += monthIdx / 12
	monthIdx %= 12
	if monthIdx < 0 {
		monthIdx += 12
		y--
	}
	newMonth := time.Month(monthIdx + 1)
	if last := daysInMonth(y, newMonth); day > last {
		day = last
	}
	stepped := time.Date(y, newMonth, day, 0, 0, 0, 0, d.Location())
	return stepped.AddDate(0, 0, step.Days)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// --- weekday-divisor generator -------------------------------------------

type weekdayDateGen struct {
	cur      time.Time
	until    *time.Time
	weekdays map[time.Weekday]bool
	done     bool
}

func newWeekdayDateGen(span reminder.DateSpan, startDate time.Time, loc *time.Location) *weekdayDateGen {
	from, until := resolveSpanBounds(span, startDate)
	start := startDate
	if from != nil && from.After(start) {
		start = *from
	}
	g := &weekdayDateGen{cur: start, until: until, weekdays: span.Divisor.Weekdays}
	g.seekMatch()
	return g
}

func (g *weekdayDateGen) seekMatch() {
	for !g.done {
		if g.until != nil && g.cur.After(*g.until) {
			g.done = true
			return
		}
		if g.weekdays[g.cur.Weekday()] {
			return
		}
		g.cur = g.cur.AddDate(0, 0, 1)
	}
}

func (g *weekdayDateGen) peek() (time.Time, bool) {
	if g.done {
		return time.Time{}, false
	}
	return g.cur, true
}

func (g *weekdayDateGen) advance() {
	if g.done {
		return
	}
	g.cur = g.cur.AddDate(0, 0, 1)
	g.seekMatch()
}

// --- calendar-step generator ----------------------------------------------

type stepDateGen struct {
	cur   time.Time
	until *time.Time
	step  reminder.CalendarStep
	done  bool
}

func newStepDateGen(span reminder.DateSpan, startDate time.Time, loc *time.Location) *stepDateGen {
	step := reminder.CalendarStep{Days: 1}
	if span.Divisor != nil {
		step = span.Divisor.Step
	}
	from, until := resolveSpanBounds(span, startDate)
	anchor := startDate
	if from != nil {
		anchor = *from
	}
	g := &stepDateGen{cur: anchor, until: until, step: step}
	// Advance until cur is not before the requested start date (handles a
	// bounded `from` anchor far in the past relative to `startDate`).
	for g.cur.Before(startDate) {
		if until != nil && g.cur.After(*until) {
			g.done = true
			break
		}
		g.cur = addCalendarStep(g.cur, step)
	}
	if until != nil && g.cur.After(*until) {
		g.done = true
	}
	return g
}

func (g *stepDateGen) peek() (time.Time, bool) {
	if g.done {
		return time.Time{}, false
	}
	return g.cur, true
}

func (g *stepDateGen) advance() {
	if g.done {
		return
	}
	g.cur = addCalendarStep(g.cur, g.step)
	if g.until != nil && g.cur.After(*g.until) {
		g.done = true
	}
}

func newDateGen(span reminder.DateSpan, startDate time.Time, loc *time.Location) dateGen {
	if span.Divisor != nil && span.Divisor.HasWeekdays {
		return newWeekdayDateGen(span, startDate, loc)
	}
	return newStepDateGen(span, startDate, loc)
}

// --- k-way merge over heap -------------------------------------------------

type dateHeapItem struct {
	date time.Time
	gen  dateGen
}

type dateHeap []dateHeapItem

func (h dateHeap) Len() int            { return len(h) }
func (h dateHeap) Less(i, j int) bool  { return h[i].date.Before(h[j].date) }
func (h dateHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *dateHeap) Push(x interface{}) { *h = append(*h, x.(dateHeapItem)) }
func (h *dateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// mergedDateIterator is the lazy ordered min-merge of every DateSpan's
// generator, deduping equal dates produced by overlapping spans.
type mergedDateIterator struct {
	h    dateHeap
	last *time.Time
}

func newMergedDateIterator(spans []reminder.DateSpan, startDate time.Time, loc *time.Location) *mergedDateIterator {
	it := &mergedDateIterator{}
	for _, span := range spans {
		gen := newDateGen(span, startDate, loc)
		if d, ok := gen.peek(); ok {
			heap.Push(&it.h, dateHeapItem{date: d, gen: gen})
		}
	}
	heap.Init(&it.h)
	return it
}

// next returns the next distinct date across all spans, ascending.
func (it *mergedDateIterator) next() (time.Time, bool) {
	for it.h.Len() > 0 {
		top := heap.Pop(&it.h).(dateHeapItem)
		top.gen.advance()
		if d, ok := top.gen.peek(); ok {
			heap.Push(&it.h, dateHeapItem{date: d, gen: top.gen})
		}
		if it.last != nil && !top.date.After(*it.last) {
			continue // duplicate date surfaced by another span's generator
		}
		it.last = &top.date
		return top.date, true
	}
	return time.Time{}, false
}
