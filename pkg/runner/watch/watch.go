package watch

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/paddock/pkg/store"
)

// Watch streams store change events to the terminal so a second terminal
// (or process) can observe schedule and history mutations as they land.
type Watch struct {
	KV store.KV
}

func (n *Watch) Do(ctx context.Context) error {
	w, ok := n.KV.(store.Watchable)
	if !ok {
		return errors.New("store does not support watching")
	}

	events, err := w.Watch(ctx)
	if err != nil {
		return err
	}

	faint := color.New(color.Faint)
	_, _ = faint.Println("watching for changes, ctrl-c to stop")

	for ev := range events {
		switch ev.Type {
		case store.EventBucketChanged:
			fmt.Printf("changed: %s\n", ev.Bucket)
		default:
			fmt.Println("changed")
		}
	}
	return nil
}
