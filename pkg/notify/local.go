package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Local is an in-process Scheduler backed by plain timers. It exists so the
// CLI works end to end on any machine and so tests never need a real
// device. Permission is a settable state rather than a system prompt.
type Local struct {
	mu         sync.Mutex
	permission Permission
	timers     map[string]*time.Timer
	deliver    func(Content)
}

// NewLocal returns a Local scheduler that invokes deliver when a scheduled
// notification fires. A nil deliver drops deliveries on the floor.
func NewLocal(deliver func(Content)) *Local {
	return &Local{
		permission: PermissionGranted,
		timers:     make(map[string]*time.Timer),
		deliver:    deliver,
	}
}

// SetPermission overrides the simulated permission state.
func (l *Local) SetPermission(p Permission) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.permission = p
}

func (l *Local) RequestPermission(_ context.Context) (Permission, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.permission, nil
}

func (l *Local) ScheduleDelayed(_ context.Context, c Content, delay time.Duration) (string, error) {
	if delay < 0 {
		return "", errors.New("notify: negative delay")
	}
	handle := uuid.NewString()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.timers[handle] = time.AfterFunc(delay, func() {
		l.mu.Lock()
		delete(l.timers, handle)
		deliver := l.deliver
		l.mu.Unlock()
		if deliver != nil {
			deliver(c)
		}
	})
	return handle, nil
}

func (l *Local) Cancel(_ context.Context, handle string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	t, ok := l.timers[handle]
	if !ok {
		return ErrUnknownHandle
	}
	t.Stop()
	delete(l.timers, handle)
	return nil
}

// Pending reports how many deliveries are still waiting on a timer.
func (l *Local) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.timers)
}

// Close stops every outstanding timer without delivering.
func (l *Local) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for handle, t := range l.timers {
		t.Stop()
		delete(l.timers, handle)
	}
}
