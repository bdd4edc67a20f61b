// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/daysched/internal/sortedlist"
)

// Config holds the application configuration.
type Config struct {
	Schedule ScheduleConfig `toml:"schedule"`
	Prompt   PromptConfig   `toml:"prompt"`
	Log      LogConfig      `toml:"log"`
}

// ScheduleConfig holds event list settings.
type ScheduleConfig struct {
	InitialCapacity int `toml:"initial_capacity"` // >= 2
}

// PromptConfig holds settings for the interactive menu.
type PromptConfig struct {
	Color         bool `toml:"color"`
	PauseOnReplay bool `toml:"pause_on_replay"` // wait for Enter before each menu when replaying a file
	DividerWidth  int  `toml:"divider_width"`
}

// LogConfig holds debug logging settings.
type LogConfig struct {
	DebugPath string `toml:"debug_path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Schedule: ScheduleConfig{
			InitialCapacity: sortedlist.MinCapacity,
		},
		Prompt: PromptConfig{
			Color:         true,
			PauseOnReplay: true,
			DividerWidth:  40,
		},
		Log: LogConfig{
			DebugPath: "daysched-debug.log",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "daysched", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Log.DebugPath = expandPath(cfg.Log.DebugPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("DAYSCHED_INITIAL_CAPACITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DAYSCHED_INITIAL_CAPACITY: %w", err)
		}
		cfg.Schedule.InitialCapacity = n
	}

	if v := os.Getenv("DAYSCHED_COLOR"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("DAYSCHED_COLOR: %w", err)
		}
		cfg.Prompt.Color = b
	}
	if v := os.Getenv("DAYSCHED_PAUSE_ON_REPLAY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("DAYSCHED_PAUSE_ON_REPLAY: %w", err)
		}
		cfg.Prompt.PauseOnReplay = b
	}

	if v := os.Getenv("DAYSCHED_DEBUG_PATH"); v != "" {
		cfg.Log.DebugPath = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Schedule.InitialCapacity < sortedlist.MinCapacity {
		return fmt.Errorf("initial_capacity must be at least %d, got %d",
			sortedlist.MinCapacity, c.Schedule.InitialCapacity)
	}
	if c.Schedule.InitialCapacity > sortedlist.MaxCapacity {
		return fmt.Errorf("initial_capacity must be at most %d, got %d",
			sortedlist.MaxCapacity, c.Schedule.InitialCapacity)
	}
	if c.Prompt.DividerWidth < 0 {
		return errors.New("divider_width cannot be negative")
	}
	if c.Log.DebugPath == "" {
		return errors.New("debug_path must be set")
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
