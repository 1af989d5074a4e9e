package reminder

import "time"

// PendingAck records an in-flight nag cycle awaiting user acknowledgement.
type PendingAck struct {
	DeliveryID uint64
	Since      time.Time
}

// Reminder is the persisted row the Store (internal/store) owns. The
// scheduler never mutates fields in place — all state transitions go through
// the Store interface in internal/store.
type Reminder struct {
	ID          uint64
	UserID      uint64
	Pattern     PatternTree
	Description string
	CreatedAt   time.Time
	NextFire    *time.Time
	Active      bool
	TZ          string // IANA zone name
	PendingAck  *PendingAck
}

// Location resolves the reminder's IANA zone, falling back to UTC on error —
// mirrors the teacher's defensive time.LoadLocation use in the nag-scheduler
// reference (dm-popov-sdg/nagger/internal/scheduler).
func (r *Reminder) Location() *time.Location {
	loc, err := time.LoadLocation(r.TZ)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ReminderView is the read-only projection of a Reminder for the external
// command handler's list() operation (spec §6).
type ReminderView struct {
	ID          uint64
	Description string
	Kind        PatternKind
	NextFire    *time.Time
	Active      bool
	Nagging     bool
}

// View projects a Reminder to its external, read-only shape.
func (r *Reminder) View() ReminderView {
	return ReminderView{
		ID:          r.ID,
		Description: r.Description,
		Kind:        r.Pattern.Kind,
		NextFire:    r.NextFire,
		Active:      r.Active,
		Nagging:     r.PendingAck != nil,
	}
}
