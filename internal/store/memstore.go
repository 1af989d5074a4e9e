package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hzerrad/remindee/internal/reminder"
)

// MemStore is an in-memory Store, adapted from the teacher's crontab.Reader
// shape (an exported constructor, a struct holding the actual state behind
// a mutex; NewMemStore returns the concrete *MemStore). It backs the CLI demo commands and the
// scheduler/nag controller tests; a production deployment would swap this
// for a SQL-backed Store satisfying the same interface.
type MemStore struct {
	mu     sync.RWMutex
	rows   map[uint64]*reminder.Reminder
	nextID uint64
}

// NewMemStore creates an empty in-memory Store.
func NewMemStore() *MemStore {
	return &MemStore{rows: make(map[uint64]*reminder.Reminder)}
}

func (s *MemStore) Insert(_ context.Context, r *reminder.Reminder) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	clone := *r
	clone.ID = id
	s.rows[id] = &clone
	return id, nil
}

func (s *MemStore) LoadDueWindow(_ context.Context, until time.Time) ([]*reminder.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var due []*reminder.Reminder
	for _, r := range s.rows {
		if !r.Active {
			continue
		}
		fireAt := EffectiveDueAt(r)
		if fireAt == nil || fireAt.After(until) {
			continue
		}
		clone := *r
		due = append(due, &clone)
	}
	sort.Slice(due, func(i, j int) bool {
		return EffectiveDueAt(due[i]).Before(*EffectiveDueAt(due[j]))
	})
	return due, nil
}

// EffectiveDueAt returns the earlier of a reminder's next_fire and its
// pending-ack nag deadline (spec §4.D: load_due_window sorts "by the
// earlier of the two"). It returns nil if neither is set.
func EffectiveDueAt(r *reminder.Reminder) *time.Time {
	var nagAt *time.Time
	if r.PendingAck != nil {
		if nag := r.Pattern.NagInterval(); nag != nil {
			t := r.PendingAck.Since.Add(*nag)
			nagAt = &t
		}
	}

	switch {
	case r.NextFire != nil && nagAt != nil:
		if r.NextFire.Before(*nagAt) {
			return r.NextFire
		}
		return nagAt
	case r.NextFire != nil:
		return r.NextFire
	default:
		return nagAt
	}
}

func (s *MemStore) SetNextFire(_ context.Context, id uint64, next *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rows[id]
	if !ok {
		return ErrNotFound
	}
	r.NextFire = next
	return nil
}

func (s *MemStore) SetPendingAck(_ context.Context, id uint64, ack *reminder.PendingAck) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rows[id]
	if !ok {
		return ErrNotFound
	}
	r.PendingAck = ack
	return nil
}

func (s *MemStore) MarkInactive(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rows[id]
	if !ok {
		return ErrNotFound
	}
	r.Active = false
	return nil
}

func (s *MemStore) Delete(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func (s *MemStore) Get(_ context.Context, id uint64) (*reminder.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *r
	return &clone, nil
}

func (s *MemStore) ListByUser(_ context.Context, userID uint64) ([]*reminder.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*reminder.Reminder
	for _, r := range s.rows {
		if r.UserID == userID {
			clone := *r
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Snapshot returns every row currently held, for persistence by a wrapper
// such as the JSON file store. Rows are cloned to avoid aliasing.
func (s *MemStore) Snapshot() []*reminder.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*reminder.Reminder, 0, len(s.rows))
	for _, r := range s.rows {
		clone := *r
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Restore replaces the store's contents with rows, preserving their IDs and
// advancing nextID past the highest one seen.
func (s *MemStore) Restore(rows []*reminder.Reminder) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows = make(map[uint64]*reminder.Reminder, len(rows))
	for _, r := range rows {
		clone := *r
		s.rows[r.ID] = &clone
		if r.ID > s.nextID {
			s.nextID = r.ID
		}
	}
}
