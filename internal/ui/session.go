package ui

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/javiermolinar/daysched/internal/event"
	"github.com/javiermolinar/daysched/internal/schedule"
)

// Menu choices.
const (
	choiceDisplay = iota + 1
	choiceAdd
	choiceMove
	choiceDuration
	choiceDescription
	choiceRemove
	choiceQuit
)

const farewell = "Ciao!\n\n\"Plans are nothing; planning is everything.\" ~Dwight D. Eisenhower"

// Session runs the numbered menu against a schedule until the user quits or
// the input runs out. Validation failures are reported and the menu is shown
// again; they never end the session.
type Session struct {
	svc     *schedule.Service
	in      *lineReader
	out     io.Writer
	pause   *lineReader // nil disables "Press enter to continue"
	divider string
	log     *zap.Logger
}

// SessionOptions configures a Session.
type SessionOptions struct {
	// Pause, when set, is read for an Enter key before each menu.
	// Used when answers are replayed from a file.
	Pause io.Reader

	// DividerWidth is the width of the rule between sections.
	DividerWidth int

	Logger *zap.Logger
}

// NewSession creates a session reading answers from in and writing to out.
func NewSession(svc *schedule.Service, in io.Reader, out io.Writer, opts SessionOptions) *Session {
	s := &Session{
		svc:     svc,
		in:      newLineReader(in),
		out:     out,
		divider: divider(opts.DividerWidth),
		log:     opts.Logger,
	}
	if opts.Pause != nil {
		s.pause = newLineReader(opts.Pause)
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// Run shows the menu and dispatches choices until quit or end of input.
func (s *Session) Run() error {
	s.log.Info("session start")
	defer s.log.Info("session end", zap.Int("events", s.svc.Schedule().Len()))

	fmt.Fprintln(s.out, s.divider)
	fmt.Fprintln(s.out, banner("DAY SCHEDULER", len(s.divider)))
	fmt.Fprintln(s.out, s.divider)

	for {
		s.printMenu()
		if s.pause != nil {
			fmt.Fprint(s.out, "Press enter to continue ...")
			if _, err := s.pause.line(); err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("reading keyboard: %w", err)
			}
		}

		choice, err := s.in.integer()
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)
				return nil
			}
			if errors.Is(err, errNotNumber) {
				fmt.Fprintln(s.out, formatFailure("Invalid Choice!"))
				continue
			}
			return fmt.Errorf("reading choice: %w", err)
		}
		s.log.Debug("menu choice", zap.Int("choice", choice))

		if choice == choiceQuit {
			fmt.Fprintln(s.out, farewell)
			return nil
		}

		if err := s.dispatch(choice); err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)
				return nil
			}
			return err
		}
	}
}

func (s *Session) dispatch(choice int) error {
	switch choice {
	case choiceDisplay:
		s.display()
		return nil
	case choiceAdd:
		return s.add()
	case choiceMove:
		return s.move()
	case choiceDuration:
		return s.changeDuration()
	case choiceDescription:
		return s.changeDescription()
	case choiceRemove:
		return s.remove()
	default:
		fmt.Fprintln(s.out, formatFailure("Invalid Choice!"))
		return nil
	}
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.out, s.divider)
	fmt.Fprintln(s.out, formatHeader("Select your choice from the following options:"))
	fmt.Fprintln(s.out, "1 - Display schedule")
	fmt.Fprintln(s.out, "2 - Add an event")
	fmt.Fprintln(s.out, "3 - Change the start time of an event")
	fmt.Fprintln(s.out, "4 - Change the duration of an event")
	fmt.Fprintln(s.out, "5 - Change the description of an event")
	fmt.Fprintln(s.out, "6 - Remove an event")
	fmt.Fprintln(s.out, "7 - Quit")
	fmt.Fprintln(s.out, s.divider)
	fmt.Fprint(s.out, "Enter numbers 1 to 7: ")
}

func (s *Session) display() {
	listings := s.svc.ListEvents()
	fmt.Fprintln(s.out, s.divider)
	fmt.Fprintf(s.out, "Current schedule has %d event(s), %s in total.\n",
		len(listings), FormatDuration(s.svc.Schedule().TotalMinutes()))
	fmt.Fprintln(s.out, s.divider)
	PrintListing(s.out, listings)
}

// askInt repeats prompt until it gets a whole number, so a stray answer
// does not shift the rest of a replayed file.
func (s *Session) askInt(prompt string) (int, error) {
	for {
		fmt.Fprint(s.out, prompt)
		n, err := s.in.integer()
		if errors.Is(err, errNotNumber) {
			fmt.Fprintln(s.out, formatFailure(err.Error()))
			continue
		}
		return n, err
	}
}

func (s *Session) askTime(what string) (hour, minute int, err error) {
	hour, err = s.askInt(fmt.Sprintf("Please enter the %s hour (0-23): ", what))
	if err != nil {
		return 0, 0, err
	}
	minute, err = s.askInt(fmt.Sprintf("Please enter the %s minute (0-59): ", what))
	if err != nil {
		return 0, 0, err
	}
	return hour, minute, nil
}

// add checks each time as soon as it is entered. The description is only
// read once the times make a valid event, so replayed answers stay aligned.
func (s *Session) add() error {
	sh, sm, err := s.askTime("starting")
	if err != nil {
		return err
	}
	start, err := event.NewTimeOfDay(sh, sm)
	if err != nil {
		fmt.Fprintln(s.out, formatFailure(describeError(err)))
		return nil
	}

	eh, em, err := s.askTime("ending")
	if err != nil {
		return err
	}
	end, err := event.NewTimeOfDay(eh, em)
	if err != nil {
		fmt.Fprintln(s.out, formatFailure(describeError(err)))
		return nil
	}
	if start.After(end) {
		fmt.Fprintln(s.out, formatFailure(describeError(event.ErrEndBeforeStart)))
		fmt.Fprintln(s.out, formatFailure("New event cannot be added!"))
		return nil
	}

	fmt.Fprintln(s.out, "Please enter a description of the new event: ")
	description, err := s.in.line()
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	view, err := s.svc.AddEvent(sh, sm, eh, em, description)
	if err != nil {
		fmt.Fprintln(s.out, formatFailure(describeError(err)))
		fmt.Fprintln(s.out, formatFailure("New event cannot be added!"))
		return nil
	}
	fmt.Fprintln(s.out, formatSuccess("New event added!"))
	fmt.Fprintf(s.out, "New event details: %s\n", view)
	return nil
}

// selectEvent asks for an event number and shows the chosen event.
func (s *Session) selectEvent(prompt string, show bool) (schedule.EventView, bool, error) {
	i, err := s.askInt(prompt)
	if err != nil {
		return schedule.EventView{}, false, err
	}
	view, err := s.svc.Lookup(i)
	if err != nil {
		fmt.Fprintln(s.out, formatFailure("Invalid event number!"))
		return schedule.EventView{}, false, nil
	}
	if show {
		fmt.Fprintln(s.out, "You selected this event:")
		fmt.Fprintln(s.out, view)
	}
	return view, true, nil
}

func (s *Session) move() error {
	view, ok, err := s.selectEvent("Please select the event number to change: ", true)
	if err != nil || !ok {
		return err
	}
	h, m, err := s.askTime("new starting")
	if err != nil {
		return err
	}
	if _, err := event.NewTimeOfDay(h, m); err != nil {
		fmt.Fprintln(s.out, formatFailure(describeError(err)))
		return nil
	}
	s.report(s.svc.MoveEventStart(view.Index, h, m))
	return nil
}

func (s *Session) changeDuration() error {
	view, ok, err := s.selectEvent("Please select the event number to change: ", true)
	if err != nil || !ok {
		return err
	}
	minutes, err := s.askInt("Please enter the new duration in minutes: ")
	if err != nil {
		return err
	}
	s.report(s.svc.ResizeEvent(view.Index, minutes))
	return nil
}

func (s *Session) changeDescription() error {
	view, ok, err := s.selectEvent("Please select the event number to change: ", true)
	if err != nil || !ok {
		return err
	}
	fmt.Fprint(s.out, "Please enter the new description: ")
	text, err := s.in.line()
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	s.report(s.svc.RenameEvent(view.Index, text))
	return nil
}

func (s *Session) remove() error {
	view, ok, err := s.selectEvent("Please select the event number to remove: ", false)
	if err != nil || !ok {
		return err
	}
	removed, err := s.svc.RemoveEvent(view.Index)
	if err != nil {
		fmt.Fprintln(s.out, formatFailure(describeError(err)))
		fmt.Fprintln(s.out, formatFailure("Event cannot be removed!"))
		return nil
	}
	fmt.Fprintln(s.out, formatSuccess("Event removed!"))
	fmt.Fprintf(s.out, "Removed event details: %s\n", removed)
	return nil
}

func (s *Session) report(err error) {
	if err != nil {
		fmt.Fprintln(s.out, formatFailure(describeError(err)))
		fmt.Fprintln(s.out, formatFailure("Event cannot be changed!"))
		return
	}
	fmt.Fprintln(s.out, formatSuccess("Event changed!"))
}
