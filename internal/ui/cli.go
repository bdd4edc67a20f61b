// Package ui implements the command line and the interactive menu.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/daysched/internal/config"
	"github.com/javiermolinar/daysched/internal/logging"
	"github.com/javiermolinar/daysched/internal/schedule"
	"github.com/javiermolinar/daysched/internal/sortedlist"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config  *config.Config
	root    *cobra.Command
	debug   bool // Enable debug logging
	noColor bool

	// interactive reports whether stdin is a keyboard; replaying a file only
	// pauses between menus when it is.
	interactive func() bool
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg, interactive: stdinIsTerminal}

	a.root = &cobra.Command{
		Use:   "daysched [input-file]",
		Short: "An interactive editor for a single day's schedule",
		Long: `Daysched keeps the events of one day ordered by start time.

Events are added, moved, resized, renamed and removed through a numbered
menu. Answers are read from the keyboard, or replayed from input-file
when one is given.`,
		Example: `  daysched
  daysched testdata/week.txt`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var file string
			if len(args) == 1 {
				file = args[0]
			}
			return a.run(cmd.InOrStdin(), cmd.OutOrStdout(), file)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to debug_path)")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "daysched %s (commit: %s)\n", Version, Commit)
		},
	}
}

// run opens the input, builds an empty schedule and runs the menu.
func (a *App) run(stdin io.Reader, stdout io.Writer, file string) error {
	if a.noColor || !a.config.Prompt.Color {
		DisableColor()
	}

	log, err := logging.New(a.debug, a.config.Log.DebugPath)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	in := stdin
	var pause io.Reader
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("opening input file: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f

		if a.config.Prompt.PauseOnReplay && a.interactive() {
			pause = stdin
		}
		log.Info("replaying input", zap.String("file", file))
	}

	sched, err := schedule.New(
		sortedlist.WithCapacity(a.config.Schedule.InitialCapacity),
		sortedlist.WithResizeHook(logging.CapacityHook(log)),
	)
	if err != nil {
		return err
	}

	svc := schedule.NewService(sched, log)
	session := NewSession(svc, in, stdout, SessionOptions{
		Pause:        pause,
		DividerWidth: a.config.Prompt.DividerWidth,
		Logger:       log,
	})
	return session.Run()
}

// SetIO redirects the command's input and output. Used by tests.
func (a *App) SetIO(in io.Reader, out io.Writer) {
	a.root.SetIn(in)
	a.root.SetOut(out)
	a.root.SetErr(out)
}

// SetArgs overrides the command line arguments. Used by tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
