// Package inbox provides the CLI runners over the notification history:
// list, read, remove, and clear.
package inbox

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/paddock/pkg/app"
	"tableflip.dev/paddock/pkg/history"
	"tableflip.dev/paddock/pkg/printers"
)

// List prints the notification history, newest first.
type List struct {
	ShowID     bool
	UnreadOnly bool

	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list history, no service")
	}

	entries := n.Service.GetHistory()
	if n.UnreadOnly {
		unread := make([]history.Entry, 0, len(entries))
		for _, e := range entries {
			if !e.IsRead {
				unread = append(unread, e)
			}
		}
		entries = unread
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Title("Notifications")
	pp.History(entries...)

	faint := color.New(color.Faint)
	_, _ = faint.Printf("%d unread\n\n", n.Service.UnreadCount())
	return nil
}

// Read marks one entry, or every entry, read.
type Read struct {
	ID  string
	All bool

	Service *app.Service
}

func (n *Read) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not mark read, no service")
	}
	if n.All {
		n.Service.MarkAllRead()
	} else {
		if n.ID == "" {
			return errors.New("no entry id given")
		}
		n.Service.MarkRead(n.ID)
	}

	list := List{Service: n.Service}
	return list.Do(ctx)
}

// Remove deletes one entry from the history.
type Remove struct {
	ID string

	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	if n.ID == "" {
		return errors.New("no entry id given")
	}
	n.Service.Remove(n.ID)

	list := List{Service: n.Service}
	return list.Do(ctx)
}

// Clear drops the whole history.
type Clear struct {
	Service *app.Service
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not clear, no service")
	}
	n.Service.Clear()

	list := List{Service: n.Service}
	return list.Do(ctx)
}
