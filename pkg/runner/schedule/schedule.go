package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"tableflip.dev/paddock/pkg/app"
	"tableflip.dev/paddock/pkg/engine"
	"tableflip.dev/paddock/pkg/experience"
	"tableflip.dev/paddock/pkg/notify"
	"tableflip.dev/paddock/pkg/printers"
)

// Schedule reads an experience list and schedules reminders for it.
type Schedule struct {
	// Path to a JSON experience file; "-" or empty reads stdin.
	Path string

	Offset     time.Duration
	MinDelay   time.Duration
	Sound      bool
	Foreground bool

	// Wait blocks until in-process reminders have fired, so a terminal
	// session can see deliveries land in history.
	Wait bool

	Service *app.Service
}

func (n *Schedule) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not schedule, no service")
	}

	xs, err := n.load()
	if err != nil {
		return err
	}

	n.Service.ScheduleAll(ctx, xs, engine.Options{
		Offset:     n.Offset,
		MinDelay:   n.MinDelay,
		ForceSound: n.Sound,
		Foreground: n.Foreground,
	})

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Scheduled reminders")
	pp.Upcoming(time.Now(), n.Service.Scheduled(ctx)...)

	if n.Wait {
		return n.wait(ctx)
	}
	return nil
}

func (n *Schedule) load() ([]experience.Experience, error) {
	var r io.Reader = os.Stdin
	if n.Path != "" && n.Path != "-" {
		f, err := os.Open(n.Path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var xs []experience.Experience
	if err := json.NewDecoder(r).Decode(&xs); err != nil {
		return nil, fmt.Errorf("decode experiences: %w", err)
	}
	return xs, nil
}

// wait polls the in-process scheduler until every timer has fired. Only
// meaningful when the service runs on notify.Local; a real platform keeps
// its own delivery guarantee.
func (n *Schedule) wait(ctx context.Context) error {
	local, ok := n.Service.Scheduler.(*notify.Local)
	if !ok {
		return nil
	}
	for local.Pending() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(250 * time.Millisecond):
		}
	}
	return nil
}
