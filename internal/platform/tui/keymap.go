package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// KeyMap defines the key bindings for a match.
type KeyMap struct {
	LeftUp     key.Binding
	LeftDown   key.Binding
	RightUp    key.Binding
	RightDown  key.Binding
	Serve      key.Binding
	Pause      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown, k.Serve, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown},
		{k.Serve, k.Pause, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		LeftUp: key.NewBinding(
			key.WithKeys("w", "W"),
			key.WithHelp("w", "left up"),
		),
		LeftDown: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "left down"),
		),
		RightUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "right up"),
		),
		RightDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "right down"),
		),
		Serve: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "serve"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// GameKey maps a key message to the simulation key it drives.
func (k KeyMap) GameKey(msg tea.KeyMsg) (core.Key, bool) {
	switch {
	case key.Matches(msg, k.LeftUp):
		return core.KeyLeftUp, true
	case key.Matches(msg, k.LeftDown):
		return core.KeyLeftDown, true
	case key.Matches(msg, k.RightUp):
		return core.KeyRightUp, true
	case key.Matches(msg, k.RightDown):
		return core.KeyRightDown, true
	case key.Matches(msg, k.Serve):
		return core.KeyServe, true
	}
	return 0, false
}

// HoldTracker emulates key releases. Terminals only report presses and
// auto-repeats, so a key stays down until no repeat arrives for the hold
// window.
type HoldTracker struct {
	hold     time.Duration
	lastSeen [core.KeyCount]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(hold time.Duration) *HoldTracker {
	return &HoldTracker{hold: hold}
}

// Press records a press or repeat of k at now.
func (h *HoldTracker) Press(k core.Key, now time.Time) {
	h.lastSeen[k] = now
}

// Reset releases every key.
func (h *HoldTracker) Reset() {
	h.lastSeen = [core.KeyCount]time.Time{}
}

// State returns the keys considered held at now.
func (h *HoldTracker) State(now time.Time) core.KeyState {
	var s core.KeyState
	for k := range core.KeyCount {
		seen := h.lastSeen[k]
		s.Set(k, !seen.IsZero() && now.Sub(seen) < h.hold)
	}
	return s
}
