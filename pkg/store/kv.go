// Package store provides the string-keyed persistent store shared by the
// schedule ledger and the notification history, plus its configuration and
// change watching. Keys follow a `bucket-name` scheme so related records
// land in one directory bucket on disk.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("store: key not found")

// KV is the persistence contract. It is deliberately small so the engine
// is testable without a real device and without shared process state.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
	Keys(ctx context.Context, prefix string) []string
}
