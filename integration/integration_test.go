package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javiermolinar/daysched/internal/config"
	"github.com/javiermolinar/daysched/internal/ui"
)

// replay runs the command line against a file in testdata and returns its output.
func replay(t *testing.T, name string, extraArgs ...string) string {
	t.Helper()
	cfg := config.Default()
	cfg.Prompt.Color = false
	cfg.Prompt.PauseOnReplay = false
	cfg.Prompt.DividerWidth = 30
	cfg.Log.DebugPath = filepath.Join(t.TempDir(), "debug.log")

	app := ui.NewApp(cfg)
	var out bytes.Buffer
	app.SetIO(strings.NewReader(""), &out)
	app.SetArgs(append(extraArgs, filepath.Join("testdata", name)))

	if err := app.Execute(); err != nil {
		t.Fatalf("replaying %s: %v", name, err)
	}
	return out.String()
}

// section returns the output between the n-th occurrence of marker and the
// next menu.
func section(t *testing.T, out, marker string, n int) string {
	t.Helper()
	parts := strings.Split(out, marker)
	if len(parts) <= n {
		t.Fatalf("marker %q appears %d times, want at least %d", marker, len(parts)-1, n)
	}
	body := parts[n]
	if i := strings.Index(body, "Select your choice"); i >= 0 {
		body = body[:i]
	}
	return body
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestReplayDay(t *testing.T) {
	out := replay(t, "day.txt")

	if n := strings.Count(out, "New event added!"); n != 3 {
		t.Errorf("got %d events added, want 3", n)
	}
	if n := strings.Count(out, "Event changed!"); n != 2 {
		t.Errorf("got %d changes, want 2", n)
	}
	if n := strings.Count(out, "Event cannot be changed!"); n != 1 {
		t.Errorf("got %d rejected changes, want 1", n)
	}
	if !strings.Contains(out, "Invalid event number!") {
		t.Error("expected removal of event 5 to be rejected")
	}

	first := section(t, out, "Current schedule has", 1)
	for _, want := range []string{
		" 2 event(s), 2h30m in total.",
		"[0]14:00-15:00/review  1h",
		"[1]15:00-16:30/standup  1h30m",
	} {
		if !strings.Contains(first, want) {
			t.Errorf("first listing missing %q\n%s", want, first)
		}
	}

	second := section(t, out, "Current schedule has", 2)
	for _, want := range []string{
		" 3 event(s), 3h in total.",
		"[2]23:00-23:30/late  30m",
	} {
		if !strings.Contains(second, want) {
			t.Errorf("second listing missing %q\n%s", want, second)
		}
	}

	if !strings.HasSuffix(strings.TrimSpace(out), "~Dwight D. Eisenhower") {
		t.Error("expected session to end with the farewell")
	}
}

func TestReplayTruncated(t *testing.T) {
	out := replay(t, "truncated.txt")

	for _, want := range []string{
		"New event cannot be added!",
		"Invalid Choice!",
		"Event removed!",
		"Removed event details: 09:00-10:00/standup",
		"Current schedule has 0 event(s), 0m in total.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if n := strings.Count(out, "Invalid Choice!"); n != 2 {
		t.Errorf("got %d invalid choices, want 2", n)
	}
	if strings.Contains(out, "Ciao!") {
		t.Error("input ended without quitting; no farewell expected")
	}
}

func TestReplayCapacityGrowthLogged(t *testing.T) {
	cfg := config.Default()
	cfg.Prompt.PauseOnReplay = false
	cfg.Prompt.DividerWidth = 30
	cfg.Log.DebugPath = filepath.Join(t.TempDir(), "debug.log")

	app := ui.NewApp(cfg)
	var out bytes.Buffer
	app.SetIO(strings.NewReader(""), &out)
	app.SetArgs([]string{"--debug", "--no-color", filepath.Join("testdata", "day.txt")})
	if err := app.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	log := readFile(t, cfg.Log.DebugPath)
	if !strings.Contains(log, "capacity grow") {
		t.Errorf("expected a capacity grow entry after three inserts\n%s", log)
	}
}
