package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Minimum terminal size that still shows a playable field.
const (
	minScreenW = 30
	minScreenH = 10
)

// announcementHint is shown under the end-of-session message.
const announcementHint = "press enter"

// Model is the Bubble Tea model for running a game.
type Model struct {
	game   registry.Game
	screen *core.Screen
	canvas *core.Canvas
	logger *log.Logger
	config core.RuntimeConfig
	hints  core.HostHints
	tickID uint64

	keys KeyMap
	help help.Model
	hold *keyHold
	now  func() time.Time

	gameState    core.GameState
	announcement string
	paused       bool
	quitting     bool
	backToMenu   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The game is reset immediately so its hints are available to Init.
func NewModel(game registry.Game, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	game.Reset(cfg)
	hints := game.Hints()

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		logger:    logger.With("game", game.ID()),
		config:    cfg,
		hints:     hints,
		tickID:    nextTickID(),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		hold:      newKeyHold(hints.KeyHold),
		now:       time.Now,
		gameState: game.State(),
	}
	m.layout()

	if ce, ok := game.(configErrorer); ok {
		if err := ce.ConfigErr(); err != nil {
			m.logger.Warn("config not loaded, using defaults", "error", err)
		}
	}

	m.logger.Info("session started",
		"driver", driverName(hints),
		"interval", hints.Interval,
		"pointer", hints.Pointer,
	)
	return m
}

// configErrorer is implemented by games that report config load failures.
type configErrorer interface {
	ConfigErr() error
}

func driverName(h core.HostHints) string {
	if h.FixedInterval {
		return "interval"
	}
	return "frame"
}

// layout fits the canvas to the screen, leaving room for the help footer.
func (m *Model) layout() {
	w, h := m.game.Size()
	m.help.Width = m.config.ScreenW
	footer := lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-footer, 0))
	region := core.NewRect(0, 0, m.screen.Width(), m.screen.Height())
	m.canvas = core.NewCanvas(m.screen, region, w, h)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickID, m.hints)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil
	}

	// Any other key dismisses the end-of-session announcement. Direction
	// keys are ignored so a key still held at the end does not dismiss it
	// on its next auto-repeat.
	if m.announcement != "" {
		if core.DirectionOf(action) != core.DirNone {
			return m, nil
		}
		m.announcement = ""
		m.game.Acknowledge()
		m.gameState = m.game.State()
		m.logger.Debug("session reset")
		return m, nil
	}

	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	switch action {
	case core.ActionBack:
		m.backToMenu = true
		return m, nil
	case core.ActionPause:
		m.paused = !m.paused
		if m.paused {
			m.deliver(m.hold.ReleaseAll())
		}
		return m, nil
	}

	if m.paused {
		return m, nil
	}
	if dir := core.DirectionOf(action); dir != core.DirNone {
		m.deliver(m.hold.Press(dir, m.now()))
	}
	return m, nil
}

// handleMouse forwards pointer motion over the canvas.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.hints.Pointer || m.paused || m.announcement != "" {
		return m, nil
	}
	if msg.Action != tea.MouseActionMotion && msg.Action != tea.MouseActionPress {
		return m, nil
	}
	if x, ok := m.canvas.LogicalX(msg.X); ok {
		m.game.HandleInput(core.PointerMove(x))
	}
	return m, nil
}

// handleResize keeps the session and only changes the cell mapping.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.layout()
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if m.paused {
		return m, tickCmd(m.tickID, m.hints)
	}

	m.deliver(m.hold.Expire(now))

	result := m.game.Step()
	m.gameState = result.State

	if result.Announcement != "" {
		m.announcement = result.Announcement
		m.deliver(m.hold.ReleaseAll())
		m.logger.Info("session over",
			"outcome", result.State.Outcome,
			"score", result.State.Score,
			"lives", result.State.Lives,
			"ticks", result.State.Ticks,
		)
	}

	return m, tickCmd(m.tickID, m.hints)
}

// deliver forwards synthesized input events to the game.
func (m Model) deliver(events []core.InputEvent) {
	for _, ev := range events {
		m.logger.Debug("input", "event", ev)
		m.game.HandleInput(ev)
	}
}

// saveScreenshot saves the current frame as plain text under
// ~/.breakout/screenshots.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".breakout", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// draw renders the game and any overlay into the screen buffer.
func (m Model) draw() {
	if m.config.ScreenW < minScreenW || m.config.ScreenH < minScreenH {
		m.screen.Clear()
		m.screen.DrawTextCentered(m.screen.Height()/2-1, "Window too small", core.ColorWhite)
		m.screen.DrawTextCentered(m.screen.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorGray)
		return
	}

	m.game.Render(m.canvas)

	switch {
	case m.announcement != "":
		drawBanner(m.screen, m.announcement, announcementHint)
	case m.paused:
		drawBanner(m.screen, "PAUSED", "p to resume")
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Paused reports whether the simulation is paused.
func (m Model) Paused() bool {
	return m.paused
}

// Announcement returns the pending end-of-session message, if any.
func (m Model) Announcement() string {
	return m.announcement
}

// ProgramOptions are the Bubble Tea options a game session needs.
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, logger, cfg)
	_, err := tea.NewProgram(model, ProgramOptions()...).Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
