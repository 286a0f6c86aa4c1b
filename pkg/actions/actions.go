// Package actions maps notification categories to their named actions and
// dispatches a user-selected action back to the host application. The
// router marks the originating history entry read; it performs no
// navigation itself.
package actions

import (
	"errors"
	"fmt"

	"tableflip.dev/paddock/pkg/history"
	"tableflip.dev/paddock/pkg/notify"
)

// Action identifies one user-selectable notification action.
type Action string

const (
	ViewDetails   Action = "view_details"
	GetDirections Action = "get_directions"
	ViewUpdate    Action = "view_update"
	Dismiss       Action = "dismiss"
)

// byCategory is the static category → ordered action table.
var byCategory = map[notify.Category][]Action{
	notify.CategoryExperienceReminder:     {ViewDetails, GetDirections},
	notify.CategoryExperienceUpdate:       {ViewUpdate, Dismiss},
	notify.CategoryExperienceCancellation: {ViewDetails, Dismiss},
	notify.CategoryRaceUpdate:             {ViewUpdate, Dismiss},
	notify.CategoryGeneralAnnouncement:    {ViewDetails, Dismiss},
}

// For returns the ordered actions for a category.
func For(cat notify.Category) []Action {
	actions := byCategory[cat]
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

// Result is the normalized outcome handed back to the host application.
type Result struct {
	Action Action            `json:"action"`
	Data   map[string]string `json:"data,omitempty"`
}

var ErrUnknownAction = errors.New("actions: unknown action for category")

// Router resolves user action events against the category table.
type Router struct {
	History *history.Store
}

// Handle validates actionID against the payload's category, marks the
// originating history entry read, and returns the normalized result. An
// empty actionID is the default tap on the notification body and resolves
// to the category's first action.
func (r *Router) Handle(actionID string, payload notify.Content) (Result, error) {
	available := byCategory[payload.Category]
	if len(available) == 0 {
		return Result{}, fmt.Errorf("actions: no actions for category %q", payload.Category)
	}

	action := available[0]
	if actionID != "" {
		found := false
		for _, a := range available {
			if string(a) == actionID {
				action = a
				found = true
				break
			}
		}
		if !found {
			return Result{}, fmt.Errorf("%w: %q for %q", ErrUnknownAction, actionID, payload.Category)
		}
	}

	if r.History != nil && payload.ID != "" {
		r.History.MarkRead(payload.ID)
	}

	return Result{Action: action, Data: payload.Data}, nil
}
