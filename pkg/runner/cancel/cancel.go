package cancel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/paddock/pkg/app"
	"tableflip.dev/paddock/pkg/printers"
)

// Cancel retracts scheduled reminders by experience id.
type Cancel struct {
	IDs []int64

	Service *app.Service
}

func (n *Cancel) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not cancel, no service")
	}
	if len(n.IDs) == 0 {
		return errors.New("no experience ids given")
	}

	n.Service.Cancel(ctx, n.IDs)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Scheduled reminders")
	pp.Upcoming(time.Now(), n.Service.Scheduled(ctx)...)
	return nil
}
