package remdiff_test

import (
	"testing"
	"time"

	"github.com/hzerrad/remindee/internal/reminder"
	"github.com/hzerrad/remindee/internal/remdiff"
	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int { return &n }

func TestCompare_KindChanged(t *testing.T) {
	oldP := reminder.PatternTree{Kind: reminder.KindOneTime, OneTime: &reminder.OneTimeBody{}}
	newP := reminder.PatternTree{Kind: reminder.KindCountdown, Countdown: &reminder.CountdownBody{Duration: time.Minute}}

	d := remdiff.Compare(oldP, newP)
	assert.True(t, d.KindChanged)
	assert.False(t, d.Unchanged())
}

func TestCompare_OneTimeTimeChanged(t *testing.T) {
	oldP := reminder.PatternTree{Kind: reminder.KindOneTime, OneTime: &reminder.OneTimeBody{
		Date: reminder.PartialDate{Year: intPtr(2024), Month: intPtr(1), Day: intPtr(1)},
		Time: reminder.PartialTime{Hour: 9},
	}}
	newP := reminder.PatternTree{Kind: reminder.KindOneTime, OneTime: &reminder.OneTimeBody{
		Date: reminder.PartialDate{Year: intPtr(2024), Month: intPtr(1), Day: intPtr(1)},
		Time: reminder.PartialTime{Hour: 10},
	}}

	d := remdiff.Compare(oldP, newP)
	assert.False(t, d.KindChanged)
	assert.Contains(t, d.FieldsChanged, "time")
	assert.NotContains(t, d.FieldsChanged, "date")
}

func TestCompare_Unchanged(t *testing.T) {
	p := reminder.PatternTree{Kind: reminder.KindCron, Cron: &reminder.CronBody{Expr: "0 9 * * *"}}
	d := remdiff.Compare(p, p)
	assert.True(t, d.Unchanged())
	assert.Equal(t, "no changes", d.Summary())
}
