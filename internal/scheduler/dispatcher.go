package scheduler

import "context"

// AckToken correlates a dispatched nag delivery back to the reminder and
// delivery it belongs to, so the external transport's acknowledgement
// affordance can carry it (spec §6).
type AckToken struct {
	ReminderID uint64
	DeliveryID uint64
}

// Dispatcher is the external messaging transport boundary (spec §6). The
// scheduler never constructs messages itself — it hands the description and
// an optional AckToken to whatever transport implements this.
type Dispatcher interface {
	Send(ctx context.Context, userID uint64, description string, ack *AckToken) error
}

// LogDispatcher is a reference Dispatcher that writes deliveries to a
// logger instead of a real transport. Nothing in this module constructs
// one; a production deployment supplies its own Dispatcher over the real
// messaging transport.
type LogDispatcher struct {
	Log func(format string, args ...any)
}

// NewLogDispatcher creates a LogDispatcher that writes through logf.
func NewLogDispatcher(logf func(format string, args ...any)) *LogDispatcher {
	return &LogDispatcher{Log: logf}
}

func (d *LogDispatcher) Send(_ context.Context, userID uint64, description string, ack *AckToken) error {
	if ack != nil {
		d.Log("deliver user=%d delivery=%d ack-required: %s", userID, ack.DeliveryID, description)
		return nil
	}
	d.Log("deliver user=%d: %s", userID, description)
	return nil
}
