package event

import (
	"fmt"
	"strconv"
	"strings"
)

// Bounds of a single day.
const (
	MinutesPerDay = 24 * 60
	LastMinute    = MinutesPerDay - 1 // 23:59
)

// TimeOfDay is an hour/minute pair confined to a single day.
// The zero value is 00:00.
type TimeOfDay struct {
	hour   int
	minute int
}

// NewTimeOfDay returns the time hour:minute.
// Returns ErrRange if hour is outside [0, 23] or minute outside [0, 59].
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: hour must be within [0, 23], got %d", ErrRange, hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: minute must be within [0, 59], got %d", ErrRange, minute)
	}
	return TimeOfDay{hour: hour, minute: minute}, nil
}

// MustTimeOfDay is like NewTimeOfDay but panics on invalid input.
// Intended for constants and tests.
func MustTimeOfDay(hour, minute int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// FromMinutes converts minutes since midnight to a TimeOfDay.
func FromMinutes(m int) (TimeOfDay, error) {
	if m < 0 || m > LastMinute {
		return TimeOfDay{}, fmt.Errorf("%w: %d minutes is outside a single day", ErrRange, m)
	}
	return TimeOfDay{hour: m / 60, minute: m % 60}, nil
}

// ParseTimeOfDay parses "HH:MM" (or "H:MM").
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(mm) != 2 || hh == "" || len(hh) > 2 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return NewTimeOfDay(hour, minute)
}

// Hour returns the hour component.
func (t TimeOfDay) Hour() int { return t.hour }

// Minute returns the minute component.
func (t TimeOfDay) Minute() int { return t.minute }

// Minutes returns minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.hour*60 + t.minute
}

// Compare returns -1 if t is before u, 1 if after, 0 if they are the same minute.
func (t TimeOfDay) Compare(u TimeOfDay) int {
	am, bm := t.Minutes(), u.Minutes()
	switch {
	case am < bm:
		return -1
	case am > bm:
		return 1
	default:
		return 0
	}
}

// Before reports whether t is strictly earlier than u.
func (t TimeOfDay) Before(u TimeOfDay) bool { return t.Compare(u) < 0 }

// After reports whether t is strictly later than u.
func (t TimeOfDay) After(u TimeOfDay) bool { return t.Compare(u) > 0 }

// MinutesUntil returns the number of minutes from t to end.
//
// If end precedes t the result is -1 together with ErrNegativeDuration.
// Callers that only look at the integer still see the -1 marker, but the
// error is what decides validity.
func (t TimeOfDay) MinutesUntil(end TimeOfDay) (int, error) {
	if end.Before(t) {
		return -1, fmt.Errorf("%w: %s precedes %s", ErrNegativeDuration, end, t)
	}
	return end.Minutes() - t.Minutes(), nil
}

// PlusMinutes returns the time minutes after t.
// Returns ErrRange if minutes is negative or the result leaves the day.
func (t TimeOfDay) PlusMinutes(minutes int) (TimeOfDay, error) {
	if minutes < 0 {
		return TimeOfDay{}, fmt.Errorf("%w: duration must be non-negative, got %d", ErrRange, minutes)
	}
	if minutes > LastMinute-t.Minutes() {
		return TimeOfDay{}, fmt.Errorf("%w: %s plus %d minutes passes midnight", ErrRange, t, minutes)
	}
	total := t.Minutes() + minutes
	return TimeOfDay{hour: total / 60, minute: total % 60}, nil
}

// String formats the time as zero padded "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}
