// Package store defines the narrow persistence boundary the scheduler and
// CLI depend on (spec §4.D). It deliberately exposes only the operations the
// scheduler loop and nag controller actually need, not a general CRUD
// surface, so that alternative backends (SQL, Redis, the in-memory reference
// implementation here) stay simple to write and to mock.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/hzerrad/remindee/internal/reminder"
)

// ErrNotFound is returned when a reminder ID has no matching row.
var ErrNotFound = errors.New("store: reminder not found")

// Store is the Reminder Store boundary (spec §4.D). Every method takes a
// context so a SQL-backed implementation can honor cancellation/deadlines;
// the in-memory reference implementation ignores it, matching how the
// teacher's crontab.Reader accepts parameters it sometimes has no use for.
type Store interface {
	// Insert persists a new reminder and returns its assigned ID.
	Insert(ctx context.Context, r *reminder.Reminder) (uint64, error)

	// LoadDueWindow returns every active reminder whose effective due time
	// (the earlier of NextFire and, when a PendingAck is set, its nag
	// deadline; see EffectiveDueAt) is at or before `until`, ordered by
	// that effective due time ascending.
	LoadDueWindow(ctx context.Context, until time.Time) ([]*reminder.Reminder, error)

	// SetNextFire updates a reminder's NextFire after it has been
	// delivered and the occurrence engine has advanced it. A nil value
	// marks the reminder as having no further occurrences.
	SetNextFire(ctx context.Context, id uint64, next *time.Time) error

	// SetPendingAck records (or clears, when ack is nil) the pending
	// acknowledgement state used by the nag controller.
	SetPendingAck(ctx context.Context, id uint64, ack *reminder.PendingAck) error

	// MarkInactive deactivates a reminder without deleting its history.
	MarkInactive(ctx context.Context, id uint64) error

	// Delete permanently removes a reminder.
	Delete(ctx context.Context, id uint64) error

	// Get returns a single reminder by ID.
	Get(ctx context.Context, id uint64) (*reminder.Reminder, error)

	// ListByUser returns every reminder owned by userID, most recently
	// created first.
	ListByUser(ctx context.Context, userID uint64) ([]*reminder.Reminder, error)
}
