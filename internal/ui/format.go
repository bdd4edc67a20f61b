package ui

import (
	"fmt"
	"io"

	"github.com/javiermolinar/daysched/internal/schedule"
)

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}

// PrintListing writes the schedule one event per line, prefixed by index.
func PrintListing(w io.Writer, listings []schedule.Listing) {
	for _, l := range listings {
		minutes := l.View.End.Minutes() - l.View.Start.Minutes()
		fmt.Fprintf(w, "%s%s  %s\n",
			formatIndex(fmt.Sprintf("[%d]", l.Index)),
			l.Display,
			formatMuted(FormatDuration(minutes)),
		)
	}
}

// describeError turns a schedule error into a one-line message for the prompt.
func describeError(err error) string {
	kind := schedule.KindOf(err)
	if kind == schedule.KindUnknown {
		return err.Error()
	}
	return fmt.Sprintf("%s (%s)", err, kind)
}
