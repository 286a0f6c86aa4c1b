// Package notify defines the contract to the platform notification
// primitive: permission, delayed scheduling against an opaque handle, and
// the delivery callback carrying the original content back to the app.
package notify

import (
	"context"
	"errors"
	"time"
)

// Category groups notifications so the action router can attach a fixed
// set of named actions to each kind of message.
type Category string

const (
	CategoryExperienceReminder     Category = "experienceReminder"
	CategoryExperienceUpdate       Category = "experienceUpdate"
	CategoryExperienceCancellation Category = "experienceCancellation"
	CategoryRaceUpdate             Category = "raceUpdate"
	CategoryGeneralAnnouncement    Category = "generalAnnouncement"
)

// Kind records which reminder slot produced the notification.
type Kind string

const (
	KindOneHourBefore       Kind = "oneHourBefore"
	KindTwentyMinutesBefore Kind = "twentyMinutesBefore"
	KindAtEventTime         Kind = "atEventTime"
	KindUpdate              Kind = "update"
	KindCancellation        Kind = "cancellation"
)

// Content is the payload handed to the platform when scheduling and handed
// back, unchanged, when the notification fires or is tapped.
type Content struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Body         string            `json:"body"`
	Category     Category          `json:"category"`
	Kind         Kind              `json:"type"`
	ExperienceID int64             `json:"experienceId,omitempty"`
	Sound        bool              `json:"sound,omitempty"`
	Foreground   bool              `json:"foreground,omitempty"`
	Data         map[string]string `json:"data,omitempty"`
}

// Permission is the platform's answer to a permission request.
type Permission int

const (
	PermissionUndetermined Permission = iota
	PermissionGranted
	PermissionDenied
)

func (p Permission) Granted() bool {
	return p == PermissionGranted
}

func (p Permission) String() string {
	switch p {
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	default:
		return "undetermined"
	}
}

// ErrUnknownHandle is returned by Cancel when the handle does not name a
// pending delivery. Already-fired and already-cancelled handles land here;
// callers are expected to treat it as success.
var ErrUnknownHandle = errors.New("notify: unknown handle")

// Scheduler is the platform notification primitive. Scheduling is
// delay-based rather than absolute-clock on purpose; see the engine.
type Scheduler interface {
	RequestPermission(ctx context.Context) (Permission, error)
	ScheduleDelayed(ctx context.Context, c Content, delay time.Duration) (string, error)
	Cancel(ctx context.Context, handle string) error
}
