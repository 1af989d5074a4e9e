package remstats_test

import (
	"testing"
	"time"

	"github.com/hzerrad/remindee/internal/remstats"
	"github.com/stretchr/testify/assert"
)

func TestCalculate_CountsNagsAndHistogram(t *testing.T) {
	base := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
	ackedAt := base.Add(5 * time.Minute)
	events := []remstats.DeliveryEvent{
		{ReminderID: 1, At: base, IsNag: false, AckedAt: &ackedAt},
		{ReminderID: 1, At: base.Add(15 * time.Minute), IsNag: true},
		{ReminderID: 2, At: base.Add(time.Hour), IsNag: false},
	}

	calc := remstats.NewCalculator()
	m := calc.Calculate(events)

	assert.Equal(t, 3, m.TotalDeliveries)
	assert.Equal(t, 1, m.NagDeliveries)
	assert.Equal(t, 2, m.HourHistogram[9])
	assert.Equal(t, 1, m.HourHistogram[10])
	assert.Equal(t, 5*time.Minute, m.MedianAckLatency())
	assert.InDelta(t, 1.0/3.0, m.NagRate(), 0.001)
}

func TestCalculate_NoEvents(t *testing.T) {
	calc := remstats.NewCalculator()
	m := calc.Calculate(nil)
	assert.Equal(t, 0, m.TotalDeliveries)
	assert.Equal(t, time.Duration(0), m.MedianAckLatency())
	assert.Equal(t, float64(0), m.NagRate())
}
