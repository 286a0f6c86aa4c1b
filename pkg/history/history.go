// Package history keeps the bounded, newest-first log of delivered
// notifications with per-entry read state. Every successful mutation is
// announced on the change bus so independent observers stay consistent
// without polling.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/paddock/pkg/bus"
	"tableflip.dev/paddock/pkg/notify"
	"tableflip.dev/paddock/pkg/store"
)

// Changed is the bus event emitted after every successful mutation.
const Changed = "historyChanged"

// DefaultMaxItems bounds the log; insertion is at the head and eviction
// removes from the tail.
const DefaultMaxItems = 100

const logKey = "history-log"

// Entry is one delivered or received notification.
type Entry struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Body         string            `json:"body,omitempty"`
	Category     notify.Category   `json:"category"`
	Kind         notify.Kind       `json:"type"`
	ExperienceID int64             `json:"experienceId,omitempty"`
	ReceivedAt   time.Time         `json:"receivedAt"`
	IsRead       bool              `json:"isRead"`
	Data         map[string]string `json:"data,omitempty"`
}

// FromContent builds a history entry for notification content as it is
// delivered.
func FromContent(c notify.Content) Entry {
	return Entry{
		ID:           c.ID,
		Title:        c.Title,
		Body:         c.Body,
		Category:     c.Category,
		Kind:         c.Kind,
		ExperienceID: c.ExperienceID,
		Data:         c.Data,
	}
}

// Store is the history log. The whole log lives under a single KV key;
// concurrent appends are last-writer-wins, acceptable because each append
// is independent.
type Store struct {
	kv  store.KV
	bus *bus.Bus
	max int
}

// New returns a Store bounded at DefaultMaxItems. A nil bus disables
// change events.
func New(kv store.KV, b *bus.Bus) *Store {
	return &Store{kv: kv, bus: b, max: DefaultMaxItems}
}

// WithMax overrides the bound. Values below 1 are ignored.
func (s *Store) WithMax(max int) *Store {
	if max > 0 {
		s.max = max
	}
	return s
}

// load reads the log. Storage and decode failures are logged and return an
// empty log so a corrupted backing store degrades the UI instead of
// crashing it.
func (s *Store) load() []Entry {
	val, err := s.kv.Get(logKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "history: read log: %v\n", err)
		}
		return nil
	}
	var entries []Entry
	if err := json.Unmarshal(val, &entries); err != nil {
		fmt.Fprintf(os.Stderr, "history: decode log: %v\n", err)
		return nil
	}
	return entries
}

// save writes the log back, reporting whether the write took effect.
func (s *Store) save(entries []Entry) bool {
	data, err := json.Marshal(entries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "history: encode log: %v\n", err)
		return false
	}
	if err := s.kv.Set(logKey, data); err != nil {
		fmt.Fprintf(os.Stderr, "history: write log: %v\n", err)
		return false
	}
	return true
}

func (s *Store) changed() {
	if s.bus != nil {
		s.bus.Emit(Changed, nil)
	}
}

// Append inserts the entry at the head and evicts from the tail past the
// bound. Missing id and timestamp are filled in.
func (s *Store) Append(e Entry) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.ReceivedAt.IsZero() {
		e.ReceivedAt = time.Now()
	}

	entries := append([]Entry{e}, s.load()...)
	if len(entries) > s.max {
		entries = entries[:s.max]
	}
	if s.save(entries) {
		s.changed()
	}
}

// All returns the log, newest first.
func (s *Store) All() []Entry {
	return s.load()
}

// MarkRead sets the read flag on one entry. Marking an already-read or
// unknown entry changes nothing and emits nothing.
func (s *Store) MarkRead(id string) {
	entries := s.load()
	for i := range entries {
		if entries[i].ID == id && !entries[i].IsRead {
			entries[i].IsRead = true
			if s.save(entries) {
				s.changed()
			}
			return
		}
	}
}

// MarkAllRead sets the read flag on every entry.
func (s *Store) MarkAllRead() {
	entries := s.load()
	dirty := false
	for i := range entries {
		if !entries[i].IsRead {
			entries[i].IsRead = true
			dirty = true
		}
	}
	if dirty && s.save(entries) {
		s.changed()
	}
}

// Remove deletes one entry by id.
func (s *Store) Remove(id string) {
	entries := s.load()
	for i := range entries {
		if entries[i].ID == id {
			entries = append(entries[:i], entries[i+1:]...)
			if s.save(entries) {
				s.changed()
			}
			return
		}
	}
}

// Clear drops the whole log.
func (s *Store) Clear() {
	if err := s.kv.Remove(logKey); err != nil && !errors.Is(err, store.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "history: clear log: %v\n", err)
		return
	}
	s.changed()
}

// UnreadCount reports how many entries are unread.
func (s *Store) UnreadCount() int {
	count := 0
	for _, e := range s.load() {
		if !e.IsRead {
			count++
		}
	}
	return count
}
