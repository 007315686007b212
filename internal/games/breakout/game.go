package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Messages shown by the host when a session ends.
const (
	WinMessage  = "YOU WIN!!"
	LoseMessage = "GAME OVER"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game adapts a Session to the registry.Game interface for one variant.
type Game struct {
	variant string
	title   string

	session *Session
	runtime core.RuntimeConfig

	// difficulty overrides the package preset when set.
	difficulty config.DifficultyPreset

	// loadErr is the error from the last config load, if any. The game
	// still runs on the variant defaults when it is set.
	loadErr error
}

// New creates the bricks variant: a brick grid, lives, score and a win
// condition, driven by the frame refresh.
func New() *Game {
	return &Game{variant: config.VariantBricks, title: "Breakout"}
}

// NewClassic creates the classic variant: a single ball and paddle with no
// bricks or lives, driven by a fixed-interval timer.
func NewClassic() *Game {
	return &Game{variant: config.VariantClassic, title: "Breakout (Classic)"}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// SetDifficulty sets a preset for this game only. It applies on the next
// Reset.
func (g *Game) SetDifficulty(name string) error {
	p, err := config.ParsePreset(name)
	if err != nil {
		return err
	}
	g.difficulty = p
	return nil
}

// Reset loads the variant config and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(g.variant, configPath)
	g.loadErr = err
	if err != nil {
		cfg, _ = config.DefaultConfig(g.variant)
	}

	preset := difficultyPreset
	if g.difficulty != "" {
		preset = g.difficulty
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}

	g.session = NewSession(cfg)
}

// ConfigErr returns the error from the last config load, or nil.
func (g *Game) ConfigErr() error {
	return g.loadErr
}

// Session returns the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// HandleInput forwards a host input event to the session.
func (g *Game) HandleInput(ev core.InputEvent) {
	g.session.HandleInput(ev)
}

// Step advances the simulation by one tick.
func (g *Game) Step() core.StepResult {
	events := g.session.Step()

	result := core.StepResult{State: g.State()}
	switch {
	case Count(events, EventWon) > 0:
		result.Announcement = WinMessage
	case Count(events, EventLost) > 0:
		result.Announcement = LoseMessage
	}
	return result
}

// Acknowledge dismisses the end-of-session announcement and restarts.
func (g *Game) Acknowledge() {
	g.session.Acknowledge()
}

// Render draws the current session state onto dst.
func (g *Game) Render(dst core.Surface) {
	Render(g.session, dst)
}

// Size returns the logical surface size.
func (g *Game) Size() (float64, float64) {
	c := g.session.Config().Surface
	return c.Width, c.Height
}

// Hints returns how this variant wants to be driven.
func (g *Game) Hints() core.HostHints {
	cfg := g.session.Config()
	return core.HostHints{
		FixedInterval: cfg.Timing.Driver == config.DriverInterval,
		Interval:      cfg.Timing.Interval(g.runtime.TickRate),
		KeyHold:       cfg.Input.KeyHold(),
		Pointer:       cfg.Gameplay.Pointer,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	state := core.GameState{
		Score:    s.Score(),
		Lives:    s.Lives(),
		HasLives: s.HasLives(),
		Ticks:    s.Ticks(),
	}
	switch s.Phase() {
	case PhaseWon:
		state.Outcome = core.OutcomeWon
	case PhaseLost:
		state.Outcome = core.OutcomeLost
	}
	return state
}

// Register the games with the registry
func init() {
	registry.Register(config.VariantBricks, func() registry.Game {
		return New()
	})
	registry.Register(config.VariantClassic, func() registry.Game {
		return NewClassic()
	})
}
