package printers

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/paddock/pkg/history"
	"tableflip.dev/paddock/pkg/ledger"
	"tableflip.dev/paddock/pkg/timeutil"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Upcoming renders the scheduled reminders with countdowns, soonest first.
func (pp *PrettyPrint) Upcoming(now time.Time, entries ...*ledger.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Fires in"), bold.Sprint("At"), bold.Sprint("Title"))

	for _, e := range entries {
		in := "-"
		at := faint.Sprint("fired")
		if e.FireAt != nil {
			at = e.FireAt.Format("Mon 15:04")
			if until := e.FireAt.Sub(now); until > 0 {
				in = timeutil.FormatDuration(until)
			} else {
				in = faint.Sprint("due")
			}
		}
		title := e.Title
		if e.Pending() {
			title = fmt.Sprintf("%s %s", title, faint.Sprint("(awaiting permission)"))
		}
		tbl.AddRow(fmt.Sprintf("%d", e.EntityID), in, at, title)
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
}

// History renders the notification log, newest first. Unread entries get a
// marker so the list doubles as a badge.
func (pp *PrettyPrint) History(entries ...history.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	bold := color.New(color.Bold)
	if pp.ShowID {
		tbl.AddRow("", bold.Sprint("ID"), bold.Sprint("Received"), bold.Sprint("Category"), bold.Sprint("Title"))
	} else {
		tbl.AddRow("", bold.Sprint("Received"), bold.Sprint("Category"), bold.Sprint("Title"))
	}

	unread := color.New(color.FgHiYellow)
	faint := color.New(color.Faint)
	for _, e := range entries {
		marker := " "
		if !e.IsRead {
			marker = unread.Sprint("●")
		}
		received := e.ReceivedAt.Local().Format("Jan 2 15:04")
		if pp.ShowID {
			tbl.AddRow(marker, faint.Sprint(e.ID), received, string(e.Category), e.Title)
		} else {
			tbl.AddRow(marker, received, string(e.Category), e.Title)
		}
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
}
