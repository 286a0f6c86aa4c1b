// Package ledger persists the mapping from experience id to its current
// scheduled-notification state. Entries survive process restarts so
// countdown displays and dedup checks work across launches.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"tableflip.dev/paddock/pkg/store"
)

// Entry is one scheduled reminder. Handle is the opaque platform
// identifier, or the pending sentinel when permission was not yet granted.
// FireAt goes nil once the notification has fired.
type Entry struct {
	EntityID int64      `json:"entityId"`
	Handle   string     `json:"handle"`
	FireAt   *time.Time `json:"fireAt,omitempty"`
	Title    string     `json:"title,omitempty"`
}

const pendingPrefix = "pending:"

// PendingHandle is the sentinel handle recorded when permission is
// unavailable, so downstream countdowns keep working until a retry
// upgrades the entry.
func PendingHandle(id int64) string {
	return fmt.Sprintf("%s%d", pendingPrefix, id)
}

// Pending reports whether the entry carries the sentinel handle.
func (e Entry) Pending() bool {
	return strings.HasPrefix(e.Handle, pendingPrefix)
}

// Ledger stores one KV record per entity under the sched bucket, so writes
// to different ids never conflict.
type Ledger struct {
	kv store.KV
}

func New(kv store.KV) *Ledger {
	return &Ledger{kv: kv}
}

func key(id int64) string {
	return fmt.Sprintf("sched-%d", id)
}

// Get returns the entry for id, or nil when none exists.
func (l *Ledger) Get(id int64) (*Entry, error) {
	val, err := l.kv.Get(key(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("ledger: read %d: %w", id, err)
	}
	e := &Entry{}
	if err := json.Unmarshal(val, e); err != nil {
		return nil, fmt.Errorf("ledger: decode %d: %w", id, err)
	}
	if e.EntityID == 0 {
		e.EntityID = id
	}
	return e, nil
}

// Put writes the entry, replacing any previous record for its entity.
func (l *Ledger) Put(e *Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("ledger: encode %d: %w", e.EntityID, err)
	}
	if err := l.kv.Set(key(e.EntityID), data); err != nil {
		return fmt.Errorf("ledger: write %d: %w", e.EntityID, err)
	}
	return nil
}

// Delete removes the record for id. A missing record is not an error.
func (l *Ledger) Delete(id int64) error {
	if err := l.kv.Remove(key(id)); err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("ledger: delete %d: %w", id, err)
	}
	return nil
}

// All returns every ledger entry ordered by fire time, soonest first.
// Unreadable records are logged and skipped so one corrupt entry does not
// hide the rest.
func (l *Ledger) All(ctx context.Context) []*Entry {
	keys := l.kv.Keys(ctx, "sched-")
	all := make([]*Entry, 0, len(keys))
	for _, k := range keys {
		val, err := l.kv.Get(k)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", k, err)
			continue
		}
		e := &Entry{}
		if err := json.Unmarshal(val, e); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", k, err)
			continue
		}
		all = append(all, e)
	}
	sort.SliceStable(all, func(i, j int) bool {
		left, right := all[i].FireAt, all[j].FireAt
		switch {
		case left == nil && right == nil:
			return all[i].EntityID < all[j].EntityID
		case left == nil:
			return false
		case right == nil:
			return true
		default:
			if left.Equal(*right) {
				return all[i].EntityID < all[j].EntityID
			}
			return left.Before(*right)
		}
	})
	return all
}
