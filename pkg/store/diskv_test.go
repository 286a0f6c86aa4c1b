package store

import (
	"context"
	"errors"
	"testing"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestDiskvRoundTrip(t *testing.T) {
	kv, err := Open(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if err := kv.Set("sched-7", []byte(`{"entityId":7}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := kv.Get("sched-7")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `{"entityId":7}` {
		t.Fatalf("unexpected value %q", got)
	}

	if err := kv.Remove("sched-7"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := kv.Get("sched-7"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDiskvKeysByPrefix(t *testing.T) {
	kv, err := Open(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if err := kv.Set("sched-1", []byte(`{}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set("sched-2", []byte(`{}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set("history-log", []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	keys := kv.Keys(context.Background(), "sched-")
	if len(keys) != 2 {
		t.Fatalf("expected 2 sched keys, got %v", keys)
	}
	for _, k := range keys {
		if k != "sched-1" && k != "sched-2" {
			t.Fatalf("unexpected key %q", k)
		}
	}

	all := kv.Keys(context.Background(), "")
	if len(all) != 3 {
		t.Fatalf("expected 3 keys, got %v", all)
	}
}

func TestMemoryHonorsContract(t *testing.T) {
	kv := NewMemory()

	if _, err := kv.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := kv.Set("history-log", []byte("[]")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Remove("history-log"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := kv.Remove("history-log"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double remove, got %v", err)
	}
}
