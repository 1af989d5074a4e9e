// Package scheduler implements the delivery Scheduler Loop and Nag
// Controller (spec §4.E, §4.F): a single cooperative task that maintains a
// wake-up horizon across every active reminder, dispatches deliveries
// through an external Dispatcher, and re-fires unacknowledged nags until
// the user acknowledges them.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hzerrad/remindee/internal/occurrence"
	"github.com/hzerrad/remindee/internal/reminder"
	"github.com/hzerrad/remindee/internal/store"
)

const (
	defaultMaxSleep     = 5 * time.Minute
	defaultDispatchWait = 30 * time.Second
)

// Scheduler runs the main cycle described in spec §4.E. It holds no
// authoritative state of its own; current_wake is implicit in the sleep
// timer of the running goroutine.
type Scheduler struct {
	store      store.Store
	engine     occurrence.Engine
	dispatcher Dispatcher
	wake       *WakeSignal
	logger     *log.Logger

	maxSleep     time.Duration
	dispatchWait time.Duration
	now          func() time.Time
	sleep        func(time.Duration)

	deliverySeq uint64
}

// Option configures a Scheduler at construction time.
type Option func(*Scheduler)

// WithMaxSleep overrides the default horizon window (5 minutes).
func WithMaxSleep(d time.Duration) Option {
	return func(s *Scheduler) { s.maxSleep = d }
}

// WithLogger overrides the default stdlib logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Scheduler) { s.logger = l }
}

// WithClock overrides the scheduler's notion of "now" and the sleep used
// between dispatch retries, for deterministic tests. The wait between ticks
// still uses a real timer.
func WithClock(now func() time.Time, sleep func(time.Duration)) Option {
	return func(s *Scheduler) { s.now = now; s.sleep = sleep }
}

// New constructs a Scheduler over the given Store, Engine, and Dispatcher.
func New(st store.Store, eng occurrence.Engine, dispatcher Dispatcher, opts ...Option) *Scheduler {
	s := &Scheduler{
		store:        st,
		engine:       eng,
		dispatcher:   dispatcher,
		wake:         NewWakeSignal(),
		logger:       log.Default(),
		maxSleep:     defaultMaxSleep,
		dispatchWait: defaultDispatchWait,
		now:          time.Now,
		sleep:        time.Sleep,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Wake returns the scheduler's wake-up signal. Command handlers call
// Signal() on it after insert, delete, edit, or acknowledge (spec §4.E).
func (s *Scheduler) Wake() *WakeSignal {
	return s.wake
}

// Run executes the main cycle until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.tick(ctx); err != nil {
			s.logger.Printf("scheduler: tick error: %v", err)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) error {
	now := s.now()
	horizon := now.Add(s.maxSleep)

	due, err := s.store.LoadDueWindow(ctx, horizon)
	if err != nil {
		return fmt.Errorf("load due window: %w", err)
	}

	if len(due) == 0 {
		return s.sleepUntil(ctx, horizon)
	}

	earliest := due[0]
	fireAt := store.EffectiveDueAt(earliest)
	if fireAt == nil {
		// Inconsistent row (active with neither next_fire nor pending_ack);
		// nothing to do with it this tick.
		return nil
	}
	if fireAt.After(now) {
		return s.sleepUntil(ctx, *fireAt)
	}

	return s.dispatchOne(ctx, earliest, s.now())
}

func (s *Scheduler) sleepUntil(ctx context.Context, until time.Time) error {
	d := until.Sub(s.now())
	if d < 0 {
		d = 0
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.wake.C():
		return nil
	case <-timer.C:
		return nil
	}
}

func (s *Scheduler) nextDeliveryID() uint64 {
	s.deliverySeq++
	return s.deliverySeq
}

// dispatchOne handles one due reminder (spec §4.E step 4-5, §4.F). If its
// next_fire is due it is a scheduled delivery (which may also arm a new
// nag cycle); otherwise, if only its pending_ack deadline is due, it is a
// nag re-fire.
func (s *Scheduler) dispatchOne(ctx context.Context, r *reminder.Reminder, now time.Time) error {
	nag := r.Pattern.NagInterval()

	if r.NextFire != nil && !r.NextFire.After(now) {
		return s.fireScheduled(ctx, r, now, nag)
	}
	if r.PendingAck != nil && nag != nil {
		return s.fireNag(ctx, r, now, *nag)
	}
	return nil
}

func (s *Scheduler) fireScheduled(ctx context.Context, r *reminder.Reminder, now time.Time, nag *time.Duration) error {
	deliveryID := s.nextDeliveryID()
	var ack *AckToken
	if nag != nil {
		ack = &AckToken{ReminderID: r.ID, DeliveryID: deliveryID}
	}
	s.dispatchWithRetry(ctx, r.UserID, r.Description, ack)

	switch r.Pattern.Kind {
	case reminder.KindOneTime:
		if err := s.store.MarkInactive(ctx, r.ID); err != nil {
			return err
		}

	case reminder.KindCountdown:
		if nag == nil {
			if err := s.store.MarkInactive(ctx, r.ID); err != nil {
				return err
			}
		} else if err := s.store.SetNextFire(ctx, r.ID, nil); err != nil {
			return err
		}
		// With nag set, next_fire is never recomputed for a Countdown
		// (spec §3): it is cleared, and the pending-ack deadline set below
		// alone drives the re-fires.

	case reminder.KindRecurring, reminder.KindCron:
		next, err := s.engine.NextAfter(r.Pattern, *r.NextFire, r.Location())
		if err != nil {
			return fmt.Errorf("advance recurrence for reminder %d: %w", r.ID, err)
		}
		if err := s.store.SetNextFire(ctx, r.ID, next); err != nil {
			return err
		}
		if next == nil && nag == nil {
			if err := s.store.MarkInactive(ctx, r.ID); err != nil {
				return err
			}
		}
	}

	if nag != nil {
		ackRecord := &reminder.PendingAck{DeliveryID: deliveryID, Since: now}
		if err := s.store.SetPendingAck(ctx, r.ID, ackRecord); err != nil {
			return err
		}
	}
	return nil
}

// fireNag re-dispatches an unacknowledged reminder's description at its
// nag interval, superseding the previous pending_ack.since (spec §4.F).
func (s *Scheduler) fireNag(ctx context.Context, r *reminder.Reminder, now time.Time, nag time.Duration) error {
	deliveryID := s.nextDeliveryID()
	ack := &AckToken{ReminderID: r.ID, DeliveryID: deliveryID}
	s.dispatchWithRetry(ctx, r.UserID, r.Description, ack)

	return s.store.SetPendingAck(ctx, r.ID, &reminder.PendingAck{DeliveryID: deliveryID, Since: now})
}

// dispatchWithRetry applies the backoff policy and swallows an exhausted
// failure (spec §4.E step 6: log it and advance recurrence regardless, so
// one unreachable destination cannot stall the loop).
func (s *Scheduler) dispatchWithRetry(ctx context.Context, userID uint64, description string, ack *AckToken) {
	err := retryWithBackoff(ctx, s.sleep, func() error {
		attemptCtx, cancel := context.WithTimeout(ctx, s.dispatchWait)
		defer cancel()
		return s.dispatcher.Send(attemptCtx, userID, description, ack)
	})
	if err != nil {
		s.logger.Printf("scheduler: dispatch to user %d exhausted retries, advancing anyway: %v", userID, err)
	}
}

// Acknowledge clears a reminder's pending_ack if deliveryID matches the
// current outstanding delivery, then wakes the scheduler so it can
// re-evaluate the horizon immediately (spec §6 acknowledge, §4.F).
func (s *Scheduler) Acknowledge(ctx context.Context, reminderID, deliveryID uint64) error {
	r, err := s.store.Get(ctx, reminderID)
	if err != nil {
		return err
	}
	if r.PendingAck == nil || r.PendingAck.DeliveryID != deliveryID {
		return nil // stale or already-superseded acknowledgement, ignore
	}
	if err := s.store.SetPendingAck(ctx, reminderID, nil); err != nil {
		return err
	}
	s.wake.Signal()
	return nil
}
