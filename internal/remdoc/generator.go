// Package remdoc generates a Markdown export of a user's reminder set,
// adapted from the teacher's internal/doc package (which documented a
// crontab file) to document reminders instead.
package remdoc

import (
	"time"

	"github.com/hzerrad/remindee/internal/human"
	"github.com/hzerrad/remindee/internal/lint"
	"github.com/hzerrad/remindee/internal/occurrence"
	"github.com/hzerrad/remindee/internal/reminder"
)

// Generator builds a Document from a set of reminders.
type Generator struct {
	humanizer human.Humanizer
	engine    occurrence.Engine
}

// NewGenerator creates a documentation generator.
func NewGenerator(engine occurrence.Engine) *Generator {
	return &Generator{humanizer: human.NewHumanizer(), engine: engine}
}

// Document is the full export for a user's reminders.
type Document struct {
	Title       string
	GeneratedAt time.Time
	Reminders   []ReminderDocument
	Metadata    Metadata
}

// ReminderDocument documents a single reminder.
type ReminderDocument struct {
	ID          uint64
	Description string
	Humanized   string
	NextFire    *time.Time
	Active      bool
	Nagging     bool
	Warnings    []string
}

// Metadata summarizes the set being documented.
type Metadata struct {
	Total    int
	Active   int
	Inactive int
}

// Generate builds a Document for reminders, evaluated at `now` in `loc`.
func (g *Generator) Generate(title string, reminders []*reminder.Reminder, now time.Time, loc *time.Location) *Document {
	doc := &Document{Title: title, GeneratedAt: now}

	for _, r := range reminders {
		rd := ReminderDocument{
			ID:          r.ID,
			Description: r.Description,
			Humanized:   g.humanizer.Humanize(r.Pattern),
			NextFire:    r.NextFire,
			Active:      r.Active,
			Nagging:     r.PendingAck != nil,
		}
		for _, issue := range lint.Check(g.engine, r.Pattern, now, loc) {
			rd.Warnings = append(rd.Warnings, issue.Message)
		}
		doc.Reminders = append(doc.Reminders, rd)

		doc.Metadata.Total++
		if r.Active {
			doc.Metadata.Active++
		} else {
			doc.Metadata.Inactive++
		}
	}

	return doc
}
