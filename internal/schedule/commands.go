package schedule

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/javiermolinar/daysched/internal/event"
)

// Command errors.
var (
	ErrMoveRejected   = fmt.Errorf("%w: event cannot be moved there", ErrRange)
	ErrResizeRejected = fmt.Errorf("%w: event cannot last that long", ErrRange)
)

// EventView is a read-only snapshot of an event handed out to callers.
type EventView struct {
	ID          uuid.UUID
	Index       int
	Start       event.TimeOfDay
	End         event.TimeOfDay
	Description string
}

// String formats the view like the event it was taken from.
func (v EventView) String() string {
	return fmt.Sprintf("%s-%s/%s", v.Start, v.End, v.Description)
}

// Listing is one line of the schedule listing.
type Listing struct {
	Index   int
	Display string
	View    EventView
}

// Service is the command surface used by the interactive prompt.
// It translates plain integers into domain values and reports failures as
// errors classified by KindOf.
type Service struct {
	schedule *Schedule
	log      *zap.Logger
}

// NewService wraps s. A nil logger disables logging.
func NewService(s *Schedule, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{schedule: s, log: log}
}

// Schedule returns the underlying schedule.
func (svc *Service) Schedule() *Schedule {
	return svc.schedule
}

// ListEvents returns every event with its current index.
func (svc *Service) ListEvents() []Listing {
	events := svc.schedule.Events()
	out := make([]Listing, 0, len(events))
	for i, e := range events {
		out = append(out, Listing{
			Index:   i,
			Display: e.String(),
			View:    viewOf(i, e),
		})
	}
	svc.log.Debug("list events", zap.Int("count", len(out)))
	return out
}

// Lookup returns a view of the event at index i.
func (svc *Service) Lookup(i int) (EventView, error) {
	e, ok := svc.schedule.Get(i)
	if !ok {
		return EventView{}, svc.indexErr(i)
	}
	return viewOf(i, e), nil
}

// AddEvent creates an event from raw hour/minute values and adds it.
func (svc *Service) AddEvent(startHour, startMin, endHour, endMin int, description string) (EventView, error) {
	start, err := event.NewTimeOfDay(startHour, startMin)
	if err != nil {
		return svc.fail("add event", fmt.Errorf("start time: %w", err))
	}
	end, err := event.NewTimeOfDay(endHour, endMin)
	if err != nil {
		return svc.fail("add event", fmt.Errorf("end time: %w", err))
	}
	e, err := event.New(start, end, description)
	if err != nil {
		return svc.fail("add event", err)
	}
	if err := svc.schedule.Add(e); err != nil {
		return svc.fail("add event", err)
	}

	i := svc.schedule.IndexOf(e.ID())
	svc.log.Debug("add event",
		zap.String("id", e.ID().String()),
		zap.Int("index", i),
		zap.Stringer("event", e),
		zap.Int("size", svc.schedule.Len()),
		zap.Int("capacity", svc.schedule.Cap()),
	)
	return viewOf(i, e), nil
}

// MoveEventStart moves the event at index i to start at newHour:newMin.
func (svc *Service) MoveEventStart(i, newHour, newMin int) error {
	newStart, err := event.NewTimeOfDay(newHour, newMin)
	if err != nil {
		_, err = svc.fail("move event", fmt.Errorf("new start: %w", err))
		return err
	}
	e, ok := svc.schedule.Get(i)
	if !ok {
		_, err = svc.fail("move event", svc.indexErr(i))
		return err
	}
	if !svc.schedule.MoveItem(i, newStart) {
		_, err = svc.fail("move event", fmt.Errorf("%w: %s to %s", ErrMoveRejected, e, newStart))
		return err
	}
	svc.log.Debug("move event",
		zap.String("id", e.ID().String()),
		zap.Int("from", i),
		zap.Int("to", svc.schedule.IndexOf(e.ID())),
		zap.Stringer("event", e),
	)
	return nil
}

// ResizeEvent sets the duration of the event at index i to minutes.
func (svc *Service) ResizeEvent(i, minutes int) error {
	if minutes < 0 {
		_, err := svc.fail("resize event", fmt.Errorf("%w: duration must be non-negative, got %d", ErrRange, minutes))
		return err
	}
	e, ok := svc.schedule.Get(i)
	if !ok {
		_, err := svc.fail("resize event", svc.indexErr(i))
		return err
	}
	if !svc.schedule.ChangeDuration(i, minutes) {
		_, err := svc.fail("resize event", fmt.Errorf("%w: %s for %d minutes", ErrResizeRejected, e, minutes))
		return err
	}
	svc.log.Debug("resize event", zap.Int("index", i), zap.Int("minutes", minutes), zap.Stringer("event", e))
	return nil
}

// RenameEvent replaces the description of the event at index i.
func (svc *Service) RenameEvent(i int, text string) error {
	if !svc.schedule.ChangeDescription(i, text) {
		_, err := svc.fail("rename event", svc.indexErr(i))
		return err
	}
	svc.log.Debug("rename event", zap.Int("index", i), zap.String("description", text))
	return nil
}

// RemoveEvent deletes the event at index i and returns what it was.
func (svc *Service) RemoveEvent(i int) (EventView, error) {
	e, err := svc.schedule.Remove(i)
	if err != nil {
		return svc.fail("remove event", err)
	}
	svc.log.Debug("remove event",
		zap.String("id", e.ID().String()),
		zap.Int("index", i),
		zap.Int("size", svc.schedule.Len()),
		zap.Int("capacity", svc.schedule.Cap()),
	)
	return viewOf(i, e), nil
}

func (svc *Service) indexErr(i int) error {
	return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, svc.schedule.Len())
}

func (svc *Service) fail(op string, err error) (EventView, error) {
	svc.log.Debug(op+" failed", zap.Error(err), zap.Stringer("kind", KindOf(err)))
	return EventView{}, err
}

func viewOf(i int, e *event.Event) EventView {
	return EventView{
		ID:          e.ID(),
		Index:       i,
		Start:       e.Start(),
		End:         e.End(),
		Description: e.Description(),
	}
}
