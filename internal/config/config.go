// Package config provides YAML-based host configuration for tui-pong.
// Game rules are compile-time constants; only display, audio, replay and
// logging settings live here.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Config is the full host configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Audio   AudioConfig   `yaml:"audio"`
	Replay  ReplayConfig  `yaml:"replay"`
	Log     LogConfig     `yaml:"log"`
}

// DisplayConfig controls the pixel buffer and frame pacing.
type DisplayConfig struct {
	Width       int  `yaml:"width"`
	Height      int  `yaml:"height"`
	FitTerminal bool `yaml:"fit_terminal"` // Resize the buffer to the terminal grid
	TickRate    int  `yaml:"tick_rate"`    // Frames per second
	KeyHoldMS   int  `yaml:"key_hold_ms"`  // How long a key counts as held after its last repeat
}

// AudioConfig controls tone playback.
type AudioConfig struct {
	Enabled  bool `yaml:"enabled"`
	BufferMS int  `yaml:"buffer_ms"`
}

// ReplayConfig controls match recording.
type ReplayConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// KeyHold returns the key hold window as a duration.
func (d DisplayConfig) KeyHold() time.Duration {
	return time.Duration(d.KeyHoldMS) * time.Millisecond
}

// Buffer returns the speaker buffer length as a duration.
func (a AudioConfig) Buffer() time.Duration {
	return time.Duration(a.BufferMS) * time.Millisecond
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		errs = append(errs, fmt.Errorf("display size %dx%d must be positive", c.Display.Width, c.Display.Height))
	}
	if c.Display.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("display.tick_rate %d must be positive", c.Display.TickRate))
	}
	if c.Display.KeyHoldMS <= 0 {
		errs = append(errs, fmt.Errorf("display.key_hold_ms %d must be positive", c.Display.KeyHoldMS))
	}
	if c.Audio.Enabled && c.Audio.BufferMS <= 0 {
		errs = append(errs, fmt.Errorf("audio.buffer_ms %d must be positive", c.Audio.BufferMS))
	}
	if c.Replay.Enabled && c.Replay.DBPath == "" {
		errs = append(errs, errors.New("replay.db_path is required when replays are enabled"))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
