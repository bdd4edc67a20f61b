package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Success: green for confirmed changes
	colorSuccess = color.New(color.FgGreen)

	// Failure: red for rejected input
	colorFailure = color.New(color.FgRed)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)

	// Index: cyan for event numbers in the listing
	colorIndex = color.New(color.FgCyan)
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("6")).
	Align(lipgloss.Center)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// stdinIsTerminal reports whether standard input is an interactive terminal.
func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// divider returns a rule of the given width; zero means the terminal width.
func divider(width int) string {
	if width == 0 {
		width = min(termWidth(), 80)
	}
	return strings.Repeat("-", width)
}

// banner renders title centered in a line of the given width.
func banner(title string, width int) string {
	return bannerStyle.Width(width).Render(title)
}

func formatSuccess(s string) string {
	return colorSuccess.Sprint(s)
}

func formatFailure(s string) string {
	return colorFailure.Sprint(s)
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

func formatIndex(s string) string {
	return colorIndex.Sprint(s)
}
