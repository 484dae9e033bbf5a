package tui

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/replay"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Options configures a Model. Zero values are replaced with defaults.
type Options struct {
	Runtime       core.RuntimeConfig // Pixel buffer size, tick rate and seed
	KeyHold       time.Duration      // Key release emulation window
	FitTerminal   bool               // Resize the pixel buffer to the cell grid
	ScreenshotDir string             // Empty disables ctrl+s

	Store    *storage.Store     // Replays are saved here on quit; nil disables recording
	Router   *audio.Router      // Nil plays silently
	Logger   *log.Logger        // Nil discards logs
	Renderer *lipgloss.Renderer // Nil uses the default stdout renderer
}

func (o Options) withDefaults() Options {
	def := core.DefaultConfig()
	if o.Runtime.ScreenW <= 0 || o.Runtime.ScreenH <= 0 {
		o.Runtime.ScreenW, o.Runtime.ScreenH = def.ScreenW, def.ScreenH
	}
	if o.Runtime.TickRate <= 0 {
		o.Runtime.TickRate = def.TickRate
	}
	if o.Runtime.Seed == 0 {
		o.Runtime.Seed = time.Now().UnixNano()
	}
	if o.KeyHold <= 0 {
		o.KeyHold = 120 * time.Millisecond
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Model is the Bubble Tea model for a live match or a replay.
type Model struct {
	opts     Options
	game     *pong.Game
	playback *replay.Playback // Set in replay mode
	recorder *replay.Recorder // Set when recording a live match
	screen   *core.Screen
	painter  *Painter
	hold     *HoldTracker
	keys     KeyMap
	help     help.Model
	logger   *log.Logger

	lastTick time.Time
	cols     int
	rows     int
	paused   bool
	finished bool // Replay ran out of frames
	quitting bool
	status   string
	end      *sync.Once // Shared by copies so a match ends once
}

// NewModel creates a live two-player match.
func NewModel(opts Options) Model {
	opts = opts.withDefaults()
	m := newModel(opts, pong.NewGame(opts.Runtime.Seed))
	if opts.Store != nil {
		m.recorder = replay.NewRecorder(opts.Runtime.Seed)
	}
	return m
}

// NewPlaybackModel creates a model that replays p. Keyboard input only
// pauses or quits.
func NewPlaybackModel(p *replay.Playback, opts Options) Model {
	opts.Store = nil
	opts = opts.withDefaults()
	m := newModel(opts, p.Game())
	m.playback = p
	return m
}

func newModel(opts Options, game *pong.Game) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		opts:    opts,
		game:    game,
		screen:  core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		painter: NewPainter(opts.Renderer),
		hold:    NewHoldTracker(opts.KeyHold),
		keys:    DefaultKeyMap(),
		help:    h,
		logger:  opts.Logger,
		end:     new(sync.Once),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("match started", "seed", m.game.Seed(), "replay", m.playback != nil)
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Finish()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		m.lastTick = time.Time{}
		m.hold.Reset()
		return m, nil

	case key.Matches(msg, m.keys.Screenshot):
		m.status = m.saveScreenshot()
		return m, nil
	}

	if m.playback != nil || m.paused {
		return m, nil
	}
	if k, ok := m.keys.GameKey(msg); ok {
		m.hold.Press(k, now)
	}
	return m, nil
}

// handleResize fits the view, and optionally the pixel buffer, to the
// terminal. The last row is kept for the status line.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.cols = msg.Width
	m.rows = max(msg.Height-1, 1)
	m.help.Width = msg.Width

	if m.opts.FitTerminal && m.cols > 0 {
		m.screen.Resize(m.cols, m.rows*2)
		m.logger.Debug("screen resized", "width", m.screen.Width(), "height", m.screen.Height(),
			"aspect", m.screen.AspectRatio())
	}
	return m, nil
}

// handleTick advances the simulation by one measured frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.paused || m.finished {
		return m, tickCmd(m.opts.Runtime.TickRate)
	}

	dt := frameDT(m.lastTick, now, m.opts.Runtime.TickRate)
	m.lastTick = now

	var ev pong.ToneEvent
	if m.playback != nil {
		var ok bool
		ev, ok = m.playback.Step()
		if !ok {
			m.finished = true
			m.logger.Info("replay finished", "left", m.game.State().LeftScore, "right", m.game.State().RightScore)
		}
	} else {
		keys := m.hold.State(now)
		if m.recorder != nil {
			m.recorder.Record(dt, keys)
		}
		ev = m.game.Step(&keys, dt)
	}

	if ev == pong.TonePointScored {
		s := m.game.State()
		m.logger.Debug("point scored", "winner", s.Winner, "left", s.LeftScore, "right", s.RightScore)
	}
	if m.opts.Router != nil {
		m.opts.Router.Trigger(ev)
	}

	// Playback keeps the pace of the recorded frames.
	if m.playback != nil && !m.playback.Done() {
		return m, tickAfter(m.playback.NextDT())
	}
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// Finish logs the end of the match and saves the recording, if any. Only
// the first call across all copies of a model has an effect, so the quit
// key and a dropped SSH session cannot save a match twice.
func (m Model) Finish() {
	m.end.Do(m.finish)
}

func (m Model) finish() {
	s := m.game.State()
	m.logger.Info("match ended", "left", s.LeftScore, "right", s.RightScore, "frames", m.game.Tick())

	if m.recorder == nil || m.opts.Store == nil {
		return
	}
	id, err := m.recorder.Save(m.opts.Store)
	if err != nil {
		m.logger.Error("could not save replay", "error", err)
		return
	}
	if id != 0 {
		m.logger.Info("replay saved", "id", id, "seed", m.recorder.Seed(), "frames", m.recorder.Len())
	}
}

// saveScreenshot writes the current frame as a PNG and returns a status
// message.
func (m *Model) saveScreenshot() string {
	if m.opts.ScreenshotDir == "" {
		return "screenshots disabled"
	}

	m.game.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return "screenshot failed"
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("pong_%s_%d.png", timestamp, m.game.Tick()))

	f, err := os.Create(path)
	if err != nil {
		m.logger.Warn("could not create screenshot", "error", err)
		return "screenshot failed"
	}
	defer f.Close()

	if err := png.Encode(f, m.screen); err != nil {
		m.logger.Warn("could not encode screenshot", "error", err)
		return "screenshot failed"
	}

	m.logger.Info("screenshot saved", "path", path)
	return "saved " + filepath.Base(path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.cols == 0 {
		return ""
	}

	m.game.Render(m.screen)
	return m.painter.Paint(m.screen, m.cols, m.rows) + "\n" + m.statusLine()
}

// statusLine renders the score, mode and help on one row.
func (m Model) statusLine() string {
	r := m.painter.Renderer()
	scoreStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := r.NewStyle().Foreground(lipgloss.Color("241"))

	s := m.game.State()
	line := scoreStyle.Render(fmt.Sprintf(" %d : %d ", s.LeftScore, s.RightScore))

	switch {
	case m.finished:
		line += dimStyle.Render(" replay finished ")
	case m.paused:
		line += dimStyle.Render(" paused ")
	case m.playback != nil:
		done, total := m.playback.Progress()
		line += dimStyle.Render(fmt.Sprintf(" replay %d/%d ", done, total))
	case s.Phase() == pong.PhaseIdle:
		line += dimStyle.Render(" space to serve ")
	}
	if m.status != "" {
		line += dimStyle.Render(" " + m.status + " ")
	}

	return line + " " + m.help.View(m.keys)
}

// Game returns the match being shown.
func (m Model) Game() *pong.Game {
	return m.game
}

// SavedReplayID returns the ID of the replay saved by Finish, or 0.
func (m Model) SavedReplayID() int64 {
	if m.recorder == nil {
		return 0
	}
	return m.recorder.ID()
}

// Run starts the Bubble Tea program with the given model and returns it
// after the program exits.
func Run(model Model) (Model, error) {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return model, fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return model, nil
}
