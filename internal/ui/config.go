package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/daysched/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  daysched config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(config.DefaultConfigPath(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runConfigInteractive(configPath string, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	printConfig(out, cfg)

	reader := bufio.NewReader(in)

	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Schedule.InitialCapacity = promptInt(reader, out, "Initial capacity", cfg.Schedule.InitialCapacity)
	cfg.Prompt.Color = promptBool(reader, out, "Colored output", cfg.Prompt.Color)
	cfg.Prompt.PauseOnReplay = promptBool(reader, out, "Pause between menus when replaying a file", cfg.Prompt.PauseOnReplay)
	cfg.Prompt.DividerWidth = promptInt(reader, out, "Divider width (0 = terminal width)", cfg.Prompt.DividerWidth)
	cfg.Log.DebugPath = promptValue(reader, out, "Debug log path", cfg.Log.DebugPath)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[schedule]")
	fmt.Fprintf(out, "  initial_capacity = %d\n", cfg.Schedule.InitialCapacity)
	fmt.Fprintln(out, "\n[prompt]")
	fmt.Fprintf(out, "  color            = %t\n", cfg.Prompt.Color)
	fmt.Fprintf(out, "  pause_on_replay  = %t\n", cfg.Prompt.PauseOnReplay)
	fmt.Fprintf(out, "  divider_width    = %d\n", cfg.Prompt.DividerWidth)
	fmt.Fprintln(out, "\n[log]")
	fmt.Fprintf(out, "  debug_path       = %s\n", cfg.Log.DebugPath)
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Fprintf(out, "  Invalid number %q\n", value)
	}
}

func promptBool(reader *bufio.Reader, out io.Writer, label string, current bool) bool {
	for {
		value := strings.ToLower(promptValue(reader, out, label, strconv.FormatBool(current)))
		switch value {
		case "y", "yes", "true":
			return true
		case "n", "no", "false":
			return false
		}
		fmt.Fprintf(out, "  Invalid answer %q, use yes or no\n", value)
	}
}
