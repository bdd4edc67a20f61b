package schedule

import (
	"errors"
	"testing"

	"github.com/javiermolinar/daysched/internal/event"
	"github.com/javiermolinar/daysched/internal/sortedlist"
)

func at(h, m int) event.TimeOfDay {
	return event.MustTimeOfDay(h, m)
}

func newSchedule(t *testing.T) *Schedule {
	t.Helper()
	s, err := New()
	if err != nil {
		t.Fatalf("failed to create schedule: %v", err)
	}
	return s
}

// addEvent is a helper to create and insert an event.
func addEvent(t *testing.T, s *Schedule, start, end event.TimeOfDay, desc string) *event.Event {
	t.Helper()
	e, err := event.New(start, end, desc)
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	if err := s.Add(e); err != nil {
		t.Fatalf("failed to add event: %v", err)
	}
	return e
}

func descriptions(s *Schedule) []string {
	var out []string
	for _, e := range s.Events() {
		out = append(out, e.Description())
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSchedule_Add(t *testing.T) {
	t.Run("sorted by start time", func(t *testing.T) {
		s := newSchedule(t)
		addEvent(t, s, at(14, 0), at(15, 0), "review")
		addEvent(t, s, at(9, 0), at(10, 0), "standup")
		addEvent(t, s, at(11, 0), at(12, 0), "focus")

		if got := descriptions(s); !equal(got, []string{"standup", "focus", "review"}) {
			t.Errorf("got %v", got)
		}
		if s.Len() != 3 {
			t.Errorf("got size %d, want 3", s.Len())
		}
	})

	t.Run("overlapping events allowed", func(t *testing.T) {
		s := newSchedule(t)
		addEvent(t, s, at(9, 0), at(11, 0), "a")
		addEvent(t, s, at(10, 0), at(12, 0), "b")
		if s.Len() != 2 {
			t.Errorf("got size %d, want 2", s.Len())
		}
	})

	t.Run("nil event", func(t *testing.T) {
		s := newSchedule(t)
		if err := s.Add(nil); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("got error %v, want ErrInvalidArgument", err)
		}
	})

	t.Run("capacity exhausted", func(t *testing.T) {
		s, err := New(sortedlist.WithMaxCapacity(2))
		if err != nil {
			t.Fatal(err)
		}
		addEvent(t, s, at(9, 0), at(10, 0), "a")
		addEvent(t, s, at(10, 0), at(11, 0), "b")
		e, _ := event.New(at(11, 0), at(12, 0), "c")
		if err := s.Add(e); !errors.Is(err, ErrCapacityExhausted) {
			t.Errorf("got error %v, want ErrCapacityExhausted", err)
		}
	})
}

func TestSchedule_MoveItem(t *testing.T) {
	t.Run("move past next event reorders", func(t *testing.T) {
		s := newSchedule(t)
		addEvent(t, s, at(9, 0), at(10, 0), "morning")
		addEvent(t, s, at(14, 0), at(15, 0), "afternoon")

		if !s.MoveItem(0, at(15, 0)) {
			t.Fatal("expected move to succeed")
		}
		if got := descriptions(s); !equal(got, []string{"afternoon", "morning"}) {
			t.Errorf("got order %v", got)
		}
		moved, _ := s.Get(1)
		if moved.String() != "15:00-16:00/morning" {
			t.Errorf("got %s, want 15:00-16:00/morning", moved)
		}
	})

	t.Run("move earlier reorders", func(t *testing.T) {
		s := newSchedule(t)
		addEvent(t, s, at(9, 0), at(10, 0), "a")
		addEvent(t, s, at(11, 0), at(12, 0), "b")
		addEvent(t, s, at(13, 0), at(14, 0), "c")

		if !s.MoveItem(2, at(8, 0)) {
			t.Fatal("expected move to succeed")
		}
		if got := descriptions(s); !equal(got, []string{"c", "a", "b"}) {
			t.Errorf("got order %v", got)
		}
	})

	t.Run("move within gap keeps position", func(t *testing.T) {
		s := newSchedule(t)
		addEvent(t, s, at(9, 0), at(10, 0), "a")
		b := addEvent(t, s, at(11, 0), at(12, 0), "b")
		addEvent(t, s, at(13, 0), at(14, 0), "c")

		if !s.MoveItem(1, at(10, 30)) {
			t.Fatal("expected move to succeed")
		}
		if s.IndexOf(b.ID()) != 1 {
			t.Errorf("event moved to index %d, want 1", s.IndexOf(b.ID()))
		}
		if b.End().String() != "11:30" {
			t.Errorf("got end %s, want 11:30", b.End())
		}
	})

	t.Run("rejected move leaves schedule unchanged", func(t *testing.T) {
		s := newSchedule(t)
		addEvent(t, s, at(9, 0), at(10, 0), "a")
		late := addEvent(t, s, at(23, 0), at(23, 30), "late")
		before := s.String()

		if s.MoveItem(1, at(23, 45)) {
			t.Fatal("expected move to fail")
		}
		if s.String() != before {
			t.Errorf("schedule changed:\n%s\nwas\n%s", s, before)
		}
		if late.Start().String() != "23:00" {
			t.Errorf("start changed to %s", late.Start())
		}
	})

	t.Run("bad index", func(t *testing.T) {
		s := newSchedule(t)
		addEvent(t, s, at(9, 0), at(10, 0), "a")
		for _, i := range []int{-1, 1, 5} {
			if s.MoveItem(i, at(12, 0)) {
				t.Errorf("MoveItem(%d) should fail", i)
			}
		}
	})
}

func TestSchedule_ChangeDuration(t *testing.T) {
	s := newSchedule(t)
	e := addEvent(t, s, at(9, 0), at(10, 0), "standup")
	addEvent(t, s, at(9, 30), at(9, 45), "coffee")

	if !s.ChangeDuration(0, 90) {
		t.Fatal("expected change to succeed")
	}
	if e.End().String() != "10:30" {
		t.Errorf("got end %s, want 10:30", e.End())
	}
	if got := descriptions(s); !equal(got, []string{"standup", "coffee"}) {
		t.Errorf("duration change reordered events: %v", got)
	}

	tests := []struct {
		name    string
		index   int
		minutes int
	}{
		{name: "negative minutes", index: 0, minutes: -1},
		{name: "past midnight", index: 0, minutes: 24 * 60},
		{name: "bad index", index: 2, minutes: 10},
		{name: "negative index", index: -1, minutes: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if s.ChangeDuration(tt.index, tt.minutes) {
				t.Errorf("ChangeDuration(%d, %d) should fail", tt.index, tt.minutes)
			}
		})
	}
}

func TestSchedule_ChangeDescription(t *testing.T) {
	s := newSchedule(t)
	e := addEvent(t, s, at(9, 0), at(10, 0), "old")

	if !s.ChangeDescription(0, "new") {
		t.Fatal("expected change to succeed")
	}
	if e.Description() != "new" {
		t.Errorf("got %q, want %q", e.Description(), "new")
	}
	if !s.ChangeDescription(0, "") {
		t.Fatal("expected empty description to be accepted")
	}
	if e.Description() != "" {
		t.Errorf("got %q, want empty", e.Description())
	}
	if s.ChangeDescription(1, "x") {
		t.Error("expected failure for index equal to size")
	}
}

func TestSchedule_Remove(t *testing.T) {
	t.Run("returns removed event", func(t *testing.T) {
		s := newSchedule(t)
		addEvent(t, s, at(9, 0), at(10, 0), "a")
		b := addEvent(t, s, at(11, 0), at(12, 0), "b")

		got, err := s.Remove(1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != b {
			t.Errorf("removed %s, want %s", got, b)
		}
		if s.Len() != 1 {
			t.Errorf("got size %d, want 1", s.Len())
		}
		if s.IndexOf(b.ID()) != -1 {
			t.Error("removed event still found")
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		s := newSchedule(t)
		addEvent(t, s, at(9, 0), at(10, 0), "a")
		addEvent(t, s, at(11, 0), at(12, 0), "b")

		_, err := s.Remove(5)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("got error %v, want ErrIndexOutOfRange", err)
		}
		if s.Len() != 2 {
			t.Errorf("got size %d, want 2", s.Len())
		}
	})
}

func TestSchedule_Get(t *testing.T) {
	s := newSchedule(t)
	e := addEvent(t, s, at(9, 0), at(10, 0), "a")

	got, ok := s.Get(0)
	if !ok || got != e {
		t.Errorf("Get(0) = %v, %v", got, ok)
	}
	if _, ok := s.Get(1); ok {
		t.Error("Get(1) should fail on a single event schedule")
	}
	if _, ok := s.Get(-1); ok {
		t.Error("Get(-1) should fail")
	}
}

func TestSchedule_String(t *testing.T) {
	s := newSchedule(t)
	if s.String() != "" {
		t.Errorf("empty schedule = %q, want empty", s.String())
	}
	addEvent(t, s, at(14, 0), at(15, 0), "review")
	addEvent(t, s, at(9, 0), at(10, 0), "standup")

	want := "[0]09:00-10:00/standup\n[1]14:00-15:00/review"
	if got := s.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSchedule_TotalMinutes(t *testing.T) {
	s := newSchedule(t)
	addEvent(t, s, at(9, 0), at(10, 0), "a")
	addEvent(t, s, at(11, 0), at(11, 45), "b")
	if got := s.TotalMinutes(); got != 105 {
		t.Errorf("got %d, want 105", got)
	}
}

func TestNewWithContainer(t *testing.T) {
	list, err := sortedlist.New(event.Compare, sortedlist.WithCapacity(8))
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewWithContainer(list)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Cap() != 8 {
		t.Errorf("got capacity %d, want 8", s.Cap())
	}

	if _, err := NewWithContainer(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil container: got %v, want ErrInvalidArgument", err)
	}

	e, _ := event.New(at(9, 0), at(10, 0), "")
	_ = list.Insert(e)
	if _, err := NewWithContainer(list); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("non-empty container: got %v, want ErrInvalidArgument", err)
	}
}

func TestKindOf(t *testing.T) {
	_, rangeErr := event.NewTimeOfDay(25, 0)
	_, orderErr := event.New(at(10, 0), at(9, 0), "")

	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{name: "nil", err: nil, want: KindNone},
		{name: "range", err: rangeErr, want: KindRange},
		{name: "end before start", err: orderErr, want: KindInvalidArgument},
		{name: "index", err: sortedlist.ErrIndexOutOfRange, want: KindIndexOutOfRange},
		{name: "capacity", err: sortedlist.ErrCapacityExhausted, want: KindCapacityExhausted},
		{name: "list nil value", err: sortedlist.ErrInvalidArgument, want: KindInvalidArgument},
		{name: "other", err: errors.New("boom"), want: KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf(%v) = %s, want %s", tt.err, got, tt.want)
			}
		})
	}
}

// refusingList fails every Insert once refuse is set.
type refusingList struct {
	*sortedlist.List[*event.Event]
	refuse bool
}

func (l *refusingList) Insert(e *event.Event) error {
	if l.refuse {
		return sortedlist.ErrCapacityExhausted
	}
	return l.List.Insert(e)
}

func TestSchedule_MoveItemRestoresOnFailedReinsert(t *testing.T) {
	list, err := sortedlist.New(event.Compare)
	if err != nil {
		t.Fatal(err)
	}
	c := &refusingList{List: list}
	s, err := NewWithContainer(c)
	if err != nil {
		t.Fatal(err)
	}
	morning := addEvent(t, s, at(9, 0), at(10, 0), "morning")
	addEvent(t, s, at(14, 0), at(15, 0), "afternoon")
	before := s.String()

	c.refuse = true
	if s.MoveItem(0, at(15, 0)) {
		t.Fatal("expected move to fail when the event cannot be reinserted")
	}
	if got := s.String(); got != before {
		t.Errorf("schedule changed:\n%s\nwas\n%s", got, before)
	}
	if s.IndexOf(morning.ID()) != 0 {
		t.Errorf("event at index %d, want 0", s.IndexOf(morning.ID()))
	}
}
