package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultConfig returns the hardcoded configuration used when no file and
// no embedded default can be read.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Width:       320,
			Height:      180,
			FitTerminal: true,
			TickRate:    60,
			KeyHoldMS:   120,
		},
		Audio: AudioConfig{
			Enabled:  true,
			BufferMS: 50,
		},
		Replay: ReplayConfig{
			Enabled: true,
			DBPath:  "~/.pong/replays.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.pong/pong.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPongYAML
}
