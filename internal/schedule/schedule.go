// Package schedule keeps the events of a single day ordered by start time.
package schedule

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/javiermolinar/daysched/internal/event"
	"github.com/javiermolinar/daysched/internal/sortedlist"
)

// Error kinds reported by schedule operations.
var (
	ErrInvalidArgument   = event.ErrInvalidArgument
	ErrRange             = event.ErrRange
	ErrIndexOutOfRange   = sortedlist.ErrIndexOutOfRange
	ErrCapacityExhausted = sortedlist.ErrCapacityExhausted
)

// Schedule owns the ordered events of one session.
type Schedule struct {
	events sortedlist.Container[*event.Event]
}

// New creates an empty schedule backed by a sorted list with the default
// growth policy.
func New(opts ...sortedlist.Option) (*Schedule, error) {
	list, err := sortedlist.New(event.Compare, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating event list: %w", err)
	}
	return &Schedule{events: list}, nil
}

// NewWithContainer creates a schedule on top of an existing, empty container.
func NewWithContainer(c sortedlist.Container[*event.Event]) (*Schedule, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil container", ErrInvalidArgument)
	}
	if c.Len() != 0 {
		return nil, fmt.Errorf("%w: container must be empty", ErrInvalidArgument)
	}
	return &Schedule{events: c}, nil
}

// Len returns the number of events.
func (s *Schedule) Len() int {
	return s.events.Len()
}

// Cap returns the capacity of the underlying list.
func (s *Schedule) Cap() int {
	return s.events.Cap()
}

// Add inserts e at its position by start time.
func (s *Schedule) Add(e *event.Event) error {
	if e == nil {
		return fmt.Errorf("%w: nil event", ErrInvalidArgument)
	}
	if err := s.events.Insert(e); err != nil {
		return fmt.Errorf("adding event: %w", err)
	}
	return nil
}

// Get returns the event at index i, or false if i is out of range.
// The returned event is owned by the schedule; indices change after any
// Add, MoveItem or Remove.
func (s *Schedule) Get(i int) (*event.Event, bool) {
	e, err := s.events.Get(i)
	if err != nil {
		return nil, false
	}
	return e, true
}

// MoveItem moves the event at index i to start at newStart, keeping its
// duration. Returns false if i is out of range or the move would push the
// event past midnight. The event is re-sorted when its relative order changed.
func (s *Schedule) MoveItem(i int, newStart event.TimeOfDay) bool {
	e, ok := s.Get(i)
	if !ok {
		return false
	}
	oldStart := e.Start()
	if !e.MoveStart(newStart) {
		return false
	}
	if s.inPlace(i, e) {
		return true
	}

	if _, err := s.events.DeleteAt(i); err != nil {
		e.MoveStart(oldStart)
		return false
	}
	if err := s.events.Insert(e); err != nil {
		// Put the event back where it was, as it was.
		e.MoveStart(oldStart)
		if err := s.events.InsertAt(i, e); err != nil {
			_ = s.events.Insert(e)
		}
		return false
	}
	return true
}

// inPlace reports whether the event at i is still ordered against its neighbours.
func (s *Schedule) inPlace(i int, e *event.Event) bool {
	if prev, ok := s.Get(i - 1); ok && event.Compare(prev, e) > 0 {
		return false
	}
	if next, ok := s.Get(i + 1); ok && event.Compare(e, next) > 0 {
		return false
	}
	return true
}

// ChangeDuration sets the event at index i to last minutes.
// Ordering is unaffected since only the end time moves.
func (s *Schedule) ChangeDuration(i, minutes int) bool {
	if minutes < 0 {
		return false
	}
	e, ok := s.Get(i)
	if !ok {
		return false
	}
	return e.ChangeDuration(minutes)
}

// ChangeDescription replaces the description of the event at index i.
func (s *Schedule) ChangeDescription(i int, text string) bool {
	e, ok := s.Get(i)
	if !ok {
		return false
	}
	e.SetDescription(text)
	return true
}

// Remove deletes and returns the event at index i.
func (s *Schedule) Remove(i int) (*event.Event, error) {
	e, err := s.events.DeleteAt(i)
	if err != nil {
		return nil, fmt.Errorf("removing event: %w", err)
	}
	return e, nil
}

// IndexOf returns the current index of the event with the given ID, or -1.
func (s *Schedule) IndexOf(id uuid.UUID) int {
	for i, e := range s.events.All() {
		if e.ID() == id {
			return i
		}
	}
	return -1
}

// Events returns the events in order. The slice is a copy; the events are not.
func (s *Schedule) Events() []*event.Event {
	out := make([]*event.Event, 0, s.Len())
	for _, e := range s.events.All() {
		out = append(out, e)
	}
	return out
}

// TotalMinutes returns the summed duration of all events.
func (s *Schedule) TotalMinutes() int {
	total := 0
	for _, e := range s.events.All() {
		total += e.Duration()
	}
	return total
}

// String lists each event prefixed by its index, one per line.
func (s *Schedule) String() string {
	var b strings.Builder
	for i, e := range s.events.All() {
		fmt.Fprintf(&b, "[%d]%s\n", i, e)
	}
	return strings.TrimSpace(b.String())
}

// ErrorKind classifies errors returned by the schedule and its commands.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindInvalidArgument
	KindRange
	KindIndexOutOfRange
	KindCapacityExhausted
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInvalidArgument:
		return "invalid argument"
	case KindRange:
		return "out of range"
	case KindIndexOutOfRange:
		return "index out of range"
	case KindCapacityExhausted:
		return "capacity exhausted"
	default:
		return "unknown"
	}
}

// KindOf returns the kind of err.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrIndexOutOfRange):
		return KindIndexOutOfRange
	case errors.Is(err, ErrCapacityExhausted):
		return KindCapacityExhausted
	case errors.Is(err, ErrRange), errors.Is(err, event.ErrNegativeDuration):
		return KindRange
	case errors.Is(err, ErrInvalidArgument), errors.Is(err, sortedlist.ErrInvalidArgument),
		errors.Is(err, event.ErrInvalidTimeFormat):
		return KindInvalidArgument
	default:
		return KindUnknown
	}
}
