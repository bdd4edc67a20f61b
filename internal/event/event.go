// Package event defines the time-of-day value and the schedule entry types.
package event

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Validation errors.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrRange             = errors.New("value out of range")
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")
	ErrNegativeDuration  = errors.New("end time precedes start time")
	ErrEndBeforeStart    = fmt.Errorf("%w: end time cannot come before start time", ErrInvalidArgument)
)

// Event is a single time-bounded entry of a daily schedule.
// Start never comes after End.
type Event struct {
	id          uuid.UUID
	start       TimeOfDay
	end         TimeOfDay
	description string
}

// New creates an event running from start to end.
// Returns ErrEndBeforeStart if end precedes start.
func New(start, end TimeOfDay, description string) (*Event, error) {
	if start.After(end) {
		return nil, fmt.Errorf("%w (%s-%s)", ErrEndBeforeStart, start, end)
	}
	return &Event{
		id:          uuid.New(),
		start:       start,
		end:         end,
		description: description,
	}, nil
}

// ID returns the handle assigned at creation. Unlike an index it never changes.
func (e *Event) ID() uuid.UUID { return e.id }

// Start returns the start time.
func (e *Event) Start() TimeOfDay { return e.start }

// End returns the end time.
func (e *Event) End() TimeOfDay { return e.end }

// Description returns the description, possibly empty.
func (e *Event) Description() string { return e.description }

// Duration returns the event duration in minutes.
func (e *Event) Duration() int {
	return e.end.Minutes() - e.start.Minutes()
}

// MoveStart moves the event to begin at newStart, keeping its duration.
// Returns false and leaves the event untouched if the shifted end would
// fall past 23:59.
func (e *Event) MoveStart(newStart TimeOfDay) bool {
	newEnd, err := newStart.PlusMinutes(e.Duration())
	if err != nil {
		return false
	}
	e.start, e.end = newStart, newEnd
	return true
}

// ChangeDuration sets the event to last minutes from its current start.
// Returns false and leaves the event untouched if minutes is negative or
// the new end would fall past 23:59.
func (e *Event) ChangeDuration(minutes int) bool {
	if minutes < 0 {
		return false
	}
	newEnd, err := e.start.PlusMinutes(minutes)
	if err != nil {
		return false
	}
	e.end = newEnd
	return true
}

// SetDescription replaces the description. An empty string clears it.
func (e *Event) SetDescription(text string) {
	e.description = text
}

// Compare orders events by start time only.
func Compare(a, b *Event) int {
	return a.start.Compare(b.start)
}

// String formats the event as "HH:MM-HH:MM/description".
func (e *Event) String() string {
	return fmt.Sprintf("%s-%s/%s", e.start, e.end, e.description)
}
