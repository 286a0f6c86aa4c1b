package upcoming

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/paddock/pkg/app"
	"tableflip.dev/paddock/pkg/printers"
)

// Upcoming lists the persisted reminder ledger with countdowns.
type Upcoming struct {
	Service *app.Service
}

func (n *Upcoming) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Upcoming reminders")
	pp.Upcoming(time.Now(), n.Service.Scheduled(ctx)...)
	return nil
}
