package remdoc_test

import (
	"testing"
	"time"

	"github.com/hzerrad/remindee/internal/occurrence"
	"github.com/hzerrad/remindee/internal/reminder"
	"github.com/hzerrad/remindee/internal/remdoc"
	"github.com/stretchr/testify/assert"
)

func TestGenerate_AndRenderMarkdown(t *testing.T) {
	now := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
	next := now.Add(time.Hour)
	reminders := []*reminder.Reminder{
		{
			ID:          1,
			Description: "water the plants",
			Active:      true,
			NextFire:    &next,
			Pattern: reminder.PatternTree{
				Kind: reminder.KindRecurring,
				Recurring: &reminder.RecurringBody{
					DatePatterns: []reminder.DateSpan{{Divisor: &reminder.DateDivisor{Step: reminder.CalendarStep{Days: 1}}}},
					TimePatterns: []reminder.TimeSpan{{From: &reminder.PartialTime{Hour: 10}}},
				},
			},
		},
	}

	gen := remdoc.NewGenerator(occurrence.NewEngine())
	doc := gen.Generate("My Reminders", reminders, now, time.UTC)
	assert.Equal(t, 1, doc.Metadata.Total)
	assert.Equal(t, 1, doc.Metadata.Active)

	md := remdoc.RenderMarkdown(doc)
	assert.Contains(t, md, "water the plants")
	assert.Contains(t, md, "My Reminders")
}
