package store

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
)

// Memory is an in-memory KV for tests and ephemeral runs. It honors the
// same contract as the disk store, including ErrNotFound.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte

	// FailWrites and FailReads force storage errors so degraded-store
	// behavior can be exercised.
	FailWrites bool
	FailReads  bool
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReads {
		return nil, errFailed
	}
	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return errFailed
	}
	v := make([]byte, len(value))
	copy(v, value)
	m.values[key] = v
	return nil
}

func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return errFailed
	}
	if _, ok := m.values[key]; !ok {
		return ErrNotFound
	}
	delete(m.values, key)
	return nil
}

func (m *Memory) Keys(_ context.Context, prefix string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		if prefix == "" || strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

var errFailed = errors.New("store: backing store unavailable")
