// Package engine schedules and cancels experience reminders: trigger-time
// resolution, dedup against the persisted ledger, pending-entry upgrades
// once permission is granted, and per-entity linearization through the
// in-flight guard.
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/paddock/pkg/experience"
	"tableflip.dev/paddock/pkg/guard"
	"tableflip.dev/paddock/pkg/ledger"
	"tableflip.dev/paddock/pkg/notify"
)

const (
	// DefaultOffset is how long before the event start a reminder fires.
	DefaultOffset = 20 * time.Minute

	// DefaultMinDelay pads the missed-window path so a reminder whose
	// offset already passed still fires promptly after the app reopens.
	// It papers over premature-fire quirks in sandboxed schedulers, so it
	// is configuration rather than a load-bearing constant.
	DefaultMinDelay = 5 * time.Second
)

// Options tune one scheduling pass.
type Options struct {
	Offset     time.Duration
	MinDelay   time.Duration
	Foreground bool
	ForceSound bool
}

func (o Options) withDefaults() Options {
	if o.Offset <= 0 {
		o.Offset = DefaultOffset
	}
	if o.MinDelay <= 0 {
		o.MinDelay = DefaultMinDelay
	}
	return o
}

// Engine drives batch scheduling and cancellation. All collaborators are
// required; New panics on nil to surface wiring mistakes early.
type Engine struct {
	ledger    *ledger.Ledger
	guard     *guard.Guard
	scheduler notify.Scheduler

	now func() time.Time
}

func New(l *ledger.Ledger, g *guard.Guard, s notify.Scheduler) *Engine {
	if l == nil || g == nil || s == nil {
		panic("engine: nil collaborator")
	}
	return &Engine{ledger: l, guard: g, scheduler: s, now: time.Now}
}

// ScheduleAll schedules a reminder for every eligible experience. Failures
// are contained per entity: one bad record never aborts the batch, so the
// method has no error to return.
func (e *Engine) ScheduleAll(ctx context.Context, xs []experience.Experience, opts Options) {
	opts = opts.withDefaults()
	for _, x := range xs {
		e.scheduleOne(ctx, x, opts)
	}
}

func (e *Engine) scheduleOne(ctx context.Context, x experience.Experience, opts Options) {
	if !x.NotificationsEnabled() {
		return
	}

	now := e.now()
	trig, ok := experience.ResolveTrigger(x, opts.Offset, now)
	if !ok {
		fmt.Fprintf(os.Stderr, "engine: experience %d: unresolvable start time, skipping\n", x.ID)
		return
	}

	perm := e.permission(ctx, x.ID)

	existing, err := e.ledger.Get(x.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "engine: %v\n", err)
	}
	if existing != nil {
		if !existing.Pending() {
			// Already scheduled; a second pass for the same set is a no-op.
			return
		}
		if !perm.Granted() {
			// Still no permission, the pending entry stands.
			return
		}
	}

	if !e.guard.TryAcquire(x.ID, guard.OpScheduling) {
		return
	}
	defer e.guard.Release(x.ID)

	delay := trig.Delay(now)
	if trig.Missed {
		delay = opts.MinDelay
	}
	if delay < 0 {
		// Event already started; nothing to remind about.
		return
	}

	fireAt := trig.FireAt
	entry := &ledger.Entry{EntityID: x.ID, FireAt: &fireAt, Title: x.Title}

	if perm.Granted() {
		handle, err := e.scheduler.ScheduleDelayed(ctx, e.content(x, opts), delay)
		if err != nil {
			fmt.Fprintf(os.Stderr, "engine: experience %d: schedule: %v\n", x.ID, err)
			return
		}
		entry.Handle = handle
	} else {
		entry.Handle = ledger.PendingHandle(x.ID)
	}

	if err := e.ledger.Put(entry); err != nil {
		fmt.Fprintf(os.Stderr, "engine: %v\n", err)
	}
}

// Cancel retracts the reminders for the given ids and clears their ledger
// entries. Ids whose guard is busy are skipped for this pass; callers
// retry or accept eventual consistency.
func (e *Engine) Cancel(ctx context.Context, ids []int64) {
	for _, id := range ids {
		if !e.guard.TryAcquire(id, guard.OpCancelling) {
			continue
		}
		e.cancelOne(ctx, id)
		e.guard.Release(id)
	}
}

func (e *Engine) cancelOne(ctx context.Context, id int64) {
	entry, err := e.ledger.Get(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "engine: %v\n", err)
		return
	}
	if entry == nil {
		return
	}
	if !entry.Pending() {
		// Already-fired or already-cancelled handles are not an error.
		if err := e.scheduler.Cancel(ctx, entry.Handle); err != nil && !errors.Is(err, notify.ErrUnknownHandle) {
			fmt.Fprintf(os.Stderr, "engine: experience %d: cancel: %v\n", id, err)
		}
	}
	if err := e.ledger.Delete(id); err != nil {
		fmt.Fprintf(os.Stderr, "engine: %v\n", err)
	}
}

// permission asks the platform, treating a request failure as denied so a
// pending entry is recorded instead of an aborted batch.
func (e *Engine) permission(ctx context.Context, id int64) notify.Permission {
	perm, err := e.scheduler.RequestPermission(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "engine: experience %d: permission request: %v\n", id, err)
		return notify.PermissionDenied
	}
	return perm
}

func (e *Engine) content(x experience.Experience, opts Options) notify.Content {
	body := experience.Summary(x.Description)
	if body == "" {
		body = fmt.Sprintf("%s is coming up", x.Title)
	}
	data := map[string]string{
		"experienceId": strconv.FormatInt(x.ID, 10),
	}
	if x.VenueName != "" {
		data["venue"] = x.VenueName
	}
	return notify.Content{
		ID:           uuid.NewString(),
		Title:        x.Title,
		Body:         body,
		Category:     notify.CategoryExperienceReminder,
		Kind:         kindForOffset(opts.Offset),
		ExperienceID: x.ID,
		Sound:        opts.ForceSound,
		Foreground:   opts.Foreground,
		Data:         data,
	}
}

func kindForOffset(offset time.Duration) notify.Kind {
	switch {
	case offset >= 45*time.Minute:
		return notify.KindOneHourBefore
	case offset > 0:
		return notify.KindTwentyMinutesBefore
	default:
		return notify.KindAtEventTime
	}
}
