package notify

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestLocalDelivers(t *testing.T) {
	var mu sync.Mutex
	var got []Content
	l := NewLocal(func(c Content) {
		mu.Lock()
		got = append(got, c)
		mu.Unlock()
	})
	defer l.Close()

	handle, err := l.ScheduleDelayed(context.Background(), Content{ID: "n-1", Title: "Pit Walk"}, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if handle == "" {
		t.Fatal("expected a handle")
	}

	deadline := time.After(2 * time.Second)
	for {
		mu.Lock()
		n := len(got)
		mu.Unlock()
		if n == 1 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timed out waiting for delivery")
		case <-time.After(5 * time.Millisecond):
		}
	}

	if l.Pending() != 0 {
		t.Fatalf("expected no pending timers, got %d", l.Pending())
	}
}

func TestLocalCancelStopsDelivery(t *testing.T) {
	delivered := make(chan Content, 1)
	l := NewLocal(func(c Content) { delivered <- c })
	defer l.Close()

	handle, err := l.ScheduleDelayed(context.Background(), Content{ID: "n-1"}, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if err := l.Cancel(context.Background(), handle); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	select {
	case c := <-delivered:
		t.Fatalf("cancelled notification delivered: %+v", c)
	case <-time.After(150 * time.Millisecond):
	}

	if err := l.Cancel(context.Background(), handle); err != ErrUnknownHandle {
		t.Fatalf("expected ErrUnknownHandle, got %v", err)
	}
}

func TestLocalRejectsNegativeDelay(t *testing.T) {
	l := NewLocal(nil)
	defer l.Close()

	if _, err := l.ScheduleDelayed(context.Background(), Content{}, -time.Second); err == nil {
		t.Fatal("expected error for negative delay")
	}
}

func TestLocalPermissionState(t *testing.T) {
	l := NewLocal(nil)
	defer l.Close()

	perm, err := l.RequestPermission(context.Background())
	if err != nil || !perm.Granted() {
		t.Fatalf("expected granted by default, got %v %v", perm, err)
	}

	l.SetPermission(PermissionDenied)
	perm, err = l.RequestPermission(context.Background())
	if err != nil || perm.Granted() {
		t.Fatalf("expected denied, got %v %v", perm, err)
	}
}
