package history

import (
	"fmt"
	"testing"

	"tableflip.dev/paddock/pkg/bus"
	"tableflip.dev/paddock/pkg/notify"
	"tableflip.dev/paddock/pkg/store"
)

func TestAppendInsertsAtHead(t *testing.T) {
	s := New(store.NewMemory(), nil)

	s.Append(Entry{Title: "first"})
	s.Append(Entry{Title: "second"})

	all := s.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(all))
	}
	if all[0].Title != "second" || all[1].Title != "first" {
		t.Fatalf("expected newest first, got %q then %q", all[0].Title, all[1].Title)
	}
	if all[0].ID == "" || all[0].ReceivedAt.IsZero() {
		t.Fatal("append should fill id and timestamp")
	}
}

func TestBoundEvictsOldest(t *testing.T) {
	s := New(store.NewMemory(), nil).WithMax(10)

	for i := 0; i < 15; i++ {
		s.Append(Entry{ID: fmt.Sprintf("n-%d", i), Title: fmt.Sprintf("note %d", i)})
	}

	all := s.All()
	if len(all) != 10 {
		t.Fatalf("expected exactly 10 entries, got %d", len(all))
	}
	if all[0].ID != "n-14" {
		t.Fatalf("expected newest at head, got %s", all[0].ID)
	}
	if all[9].ID != "n-5" {
		t.Fatalf("expected the 5 oldest evicted, tail is %s", all[9].ID)
	}
}

func TestMarkReadIsIdempotent(t *testing.T) {
	s := New(store.NewMemory(), nil)

	s.Append(Entry{ID: "n-1"})
	s.Append(Entry{ID: "n-2"})
	if got := s.UnreadCount(); got != 2 {
		t.Fatalf("expected 2 unread, got %d", got)
	}

	s.MarkRead("n-1")
	first := s.UnreadCount()
	s.MarkRead("n-1")
	second := s.UnreadCount()

	if first != 1 || second != 1 {
		t.Fatalf("expected unread count stable at 1, got %d then %d", first, second)
	}
	if !s.All()[1].IsRead {
		t.Fatal("expected n-1 read")
	}
}

func TestMarkAllRead(t *testing.T) {
	s := New(store.NewMemory(), nil)

	s.Append(Entry{ID: "n-1"})
	s.Append(Entry{ID: "n-2"})
	s.MarkAllRead()

	if got := s.UnreadCount(); got != 0 {
		t.Fatalf("expected 0 unread, got %d", got)
	}
}

func TestRemoveAndClear(t *testing.T) {
	s := New(store.NewMemory(), nil)

	s.Append(Entry{ID: "n-1"})
	s.Append(Entry{ID: "n-2"})

	s.Remove("n-1")
	if all := s.All(); len(all) != 1 || all[0].ID != "n-2" {
		t.Fatalf("unexpected entries after remove: %+v", all)
	}

	s.Clear()
	if all := s.All(); len(all) != 0 {
		t.Fatalf("expected empty history, got %d entries", len(all))
	}
}

func TestMutationsPublishOnBus(t *testing.T) {
	b := bus.New()
	s := New(store.NewMemory(), b)

	count := 0
	cancel := b.Subscribe(Changed, func(any) { count++ })
	defer cancel()

	s.Append(Entry{ID: "n-1"})
	s.MarkRead("n-1")
	s.MarkRead("n-1") // no change, no event
	s.Remove("n-1")
	s.Clear()

	if count != 4 {
		t.Fatalf("expected 4 change events, got %d", count)
	}
}

func TestDegradedStoreReturnsSafeDefaults(t *testing.T) {
	m := store.NewMemory()
	s := New(m, nil)
	s.Append(Entry{ID: "n-1"})

	m.FailReads = true
	if all := s.All(); len(all) != 0 {
		t.Fatalf("expected empty read on store failure, got %d", len(all))
	}
	if got := s.UnreadCount(); got != 0 {
		t.Fatalf("expected 0 unread on store failure, got %d", got)
	}

	m.FailReads = false
	m.FailWrites = true
	s.MarkRead("n-1") // must not panic, must not emit

	m.FailWrites = false
	if s.UnreadCount() != 1 {
		t.Fatal("failed write should have left the entry unread")
	}
}

func TestCorruptLogDegrades(t *testing.T) {
	m := store.NewMemory()
	if err := m.Set("history-log", []byte("not json")); err != nil {
		t.Fatalf("set: %v", err)
	}

	s := New(m, nil)
	if all := s.All(); len(all) != 0 {
		t.Fatalf("expected empty read of corrupt log, got %d", len(all))
	}

	// A fresh append replaces the corrupt document.
	s.Append(Entry{ID: "n-1"})
	if all := s.All(); len(all) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(all))
	}
}

func TestFromContent(t *testing.T) {
	c := notify.Content{
		ID:           "n-1",
		Title:        "Pit Walk",
		Body:         "starts soon",
		Category:     notify.CategoryExperienceReminder,
		Kind:         notify.KindTwentyMinutesBefore,
		ExperienceID: 7,
		Data:         map[string]string{"venue": "Pit Lane"},
	}
	e := FromContent(c)
	if e.ID != "n-1" || e.ExperienceID != 7 || e.Category != notify.CategoryExperienceReminder {
		t.Fatalf("unexpected entry %+v", e)
	}
	if e.IsRead {
		t.Fatal("new entries start unread")
	}
	if e.Data["venue"] != "Pit Lane" {
		t.Fatal("data payload should pass through")
	}
}
