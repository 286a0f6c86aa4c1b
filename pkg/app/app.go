// Package app wires the reminder engine, ledger, history, change bus, and
// action router behind one Service so CLIs and embedding applications
// share the same surface.
package app

import (
	"context"
	"errors"

	"tableflip.dev/paddock/pkg/actions"
	"tableflip.dev/paddock/pkg/bus"
	"tableflip.dev/paddock/pkg/engine"
	"tableflip.dev/paddock/pkg/experience"
	"tableflip.dev/paddock/pkg/guard"
	"tableflip.dev/paddock/pkg/history"
	"tableflip.dev/paddock/pkg/ledger"
	"tableflip.dev/paddock/pkg/notify"
	"tableflip.dev/paddock/pkg/store"
)

// Service is the application facade over the reminder engine and its
// collaborators.
type Service struct {
	KV        store.KV
	Bus       *bus.Bus
	Ledger    *ledger.Ledger
	History   *history.Store
	Engine    *engine.Engine
	Router    *actions.Router
	Scheduler notify.Scheduler
}

// New assembles a Service on the given store. When scheduler is nil an
// in-process notify.Local is used, with deliveries flowing straight into
// the history store.
func New(kv store.KV, scheduler notify.Scheduler) (*Service, error) {
	if kv == nil {
		return nil, errors.New("app: no store configured")
	}

	b := bus.New()
	svc := &Service{
		KV:      kv,
		Bus:     b,
		Ledger:  ledger.New(kv),
		History: history.New(kv, b),
	}
	svc.Router = &actions.Router{History: svc.History}

	if scheduler == nil {
		scheduler = notify.NewLocal(svc.Deliver)
	}
	svc.Scheduler = scheduler
	svc.Engine = engine.New(svc.Ledger, guard.New(), scheduler)

	return svc, nil
}

// Deliver is the platform delivery callback: the fired notification is
// appended to history and its ledger countdown is retired.
func (s *Service) Deliver(c notify.Content) {
	s.History.Append(history.FromContent(c))

	if c.ExperienceID == 0 {
		return
	}
	entry, err := s.Ledger.Get(c.ExperienceID)
	if err != nil || entry == nil || entry.FireAt == nil {
		return
	}
	entry.FireAt = nil
	_ = s.Ledger.Put(entry)
}

// ScheduleAll schedules reminders for the batch of experiences.
func (s *Service) ScheduleAll(ctx context.Context, xs []experience.Experience, opts engine.Options) {
	s.Engine.ScheduleAll(ctx, xs, opts)
}

// Cancel retracts reminders for the given experience ids.
func (s *Service) Cancel(ctx context.Context, ids []int64) {
	s.Engine.Cancel(ctx, ids)
}

// Scheduled lists the persisted reminder entries, soonest first.
func (s *Service) Scheduled(ctx context.Context) []*ledger.Entry {
	return s.Ledger.All(ctx)
}

// GetHistory returns the notification history, newest first.
func (s *Service) GetHistory() []history.Entry {
	return s.History.All()
}

func (s *Service) MarkRead(id string) { s.History.MarkRead(id) }
func (s *Service) MarkAllRead()       { s.History.MarkAllRead() }
func (s *Service) Remove(id string)   { s.History.Remove(id) }
func (s *Service) Clear()             { s.History.Clear() }
func (s *Service) UnreadCount() int   { return s.History.UnreadCount() }

// HandleAction routes a user-selected notification action and returns the
// normalized result for the host application to interpret.
func (s *Service) HandleAction(actionID string, payload notify.Content) (actions.Result, error) {
	return s.Router.Handle(actionID, payload)
}

// OnHistoryChanged subscribes fn to history mutations and returns the
// unsubscribe func.
func (s *Service) OnHistoryChanged(fn func()) (cancel func()) {
	return s.Bus.Subscribe(history.Changed, func(any) { fn() })
}
