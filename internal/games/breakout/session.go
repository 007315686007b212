package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon           // Waiting for acknowledgement
	PhaseLost          // Waiting for acknowledgement
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "playing"
	}
}

// Session holds a single play-through: ball, paddle, bricks, score,
// lives and held input. It is not safe for concurrent use; the host
// delivers input and ticks from one goroutine.
type Session struct {
	cfg config.SessionConfig

	ball   Ball
	paddle Paddle
	grid   *Grid

	score int
	lives int
	phase Phase
	ticks uint64

	leftHeld  bool
	rightHeld bool

	// missPending records a bottom-wall freeze that has not yet been
	// settled against the life counter.
	missPending bool
}

// NewSession builds a session from cfg. The config is expected to be valid.
func NewSession(cfg config.SessionConfig) *Session {
	s := &Session{cfg: cfg}
	s.Reset()
	return s
}

// Config returns the config the session was built from.
func (s *Session) Config() config.SessionConfig {
	return s.cfg
}

// Reset rebuilds every entity from config. Nothing from the previous
// play-through survives.
func (s *Session) Reset() {
	c := s.cfg
	s.ball = NewBall(c.Ball.X, c.Ball.Y, c.Ball.DX, c.Ball.DY, c.Ball.Radius)
	s.paddle = NewPaddle(
		(c.Surface.Width-c.Paddle.Width)/2,
		c.Surface.Height-c.Paddle.Height,
		c.Paddle.Width,
		c.Paddle.Height,
	)
	s.grid = NewGrid(c.Bricks)
	s.score = 0
	s.lives = max(c.Gameplay.Lives, 0)
	s.phase = PhasePlaying
	s.ticks = 0
	s.leftHeld = false
	s.rightHeld = false
	s.missPending = false
}

// Acknowledge is called once the player has dismissed the end-of-session
// notification. It resets the session; while still playing it does nothing.
func (s *Session) Acknowledge() {
	if s.phase == PhasePlaying {
		return
	}
	s.Reset()
}

// KeyDown marks a direction as held.
func (s *Session) KeyDown(dir core.Direction) {
	switch dir {
	case core.DirLeft:
		s.leftHeld = true
	case core.DirRight:
		s.rightHeld = true
	}
}

// KeyUp releases a direction and leaves the paddle a small velocity in
// that direction, which deceleration then eases to zero.
func (s *Session) KeyUp(dir core.Direction) {
	switch dir {
	case core.DirLeft:
		s.leftHeld = false
		s.paddle.DX = -s.cfg.Paddle.ReleaseSpeed
	case core.DirRight:
		s.rightHeld = false
		s.paddle.DX = s.cfg.Paddle.ReleaseSpeed
	}
}

// PointerMove places the paddle under a pointer at logical x. Positions
// outside the open interval (0, width) are ignored, as is all pointer
// motion when the variant does not use the pointer. No clamping happens
// here; the next tick's clamp corrects overshoot.
func (s *Session) PointerMove(x float64) {
	if !s.cfg.Gameplay.Pointer {
		return
	}
	if x > 0 && x < s.cfg.Surface.Width {
		s.paddle.X = x - s.paddle.width/2
	}
}

// HandleInput dispatches a host input event.
func (s *Session) HandleInput(ev core.InputEvent) {
	switch ev.Kind {
	case core.InputKeyDown:
		s.KeyDown(ev.Dir)
	case core.InputKeyUp:
		s.KeyUp(ev.Dir)
	case core.InputPointerMove:
		s.PointerMove(ev.X)
	}
}

// Step advances the session by one tick and returns what happened.
// In a terminal phase it does nothing and returns nil.
func (s *Session) Step() []Event {
	if s.phase != PhasePlaying {
		return nil
	}
	s.ticks++

	var events []Event

	// A freeze from the previous tick is settled before anything moves.
	if s.missPending {
		s.missPending = false
		events = s.settleMiss(events)
		if s.phase != PhasePlaying {
			return events
		}
	}

	s.movePaddle()

	events = s.collideWalls(events)
	events, won := s.collideBricks(events)
	if won {
		return events
	}

	s.ball.Move()
	return events
}

func (s *Session) movePaddle() {
	p := &s.paddle
	c := s.cfg.Paddle

	switch {
	case s.rightHeld:
		p.DX = c.Speed
	case s.leftHeld:
		p.DX = -c.Speed
	case p.DX > 0:
		p.DX = max(p.DX-c.Deceleration, 0)
	case p.DX < 0:
		p.DX = min(p.DX+c.Deceleration, 0)
	}

	p.X += p.DX
	p.ClampTo(s.cfg.Surface.Width)
}

func (s *Session) collideWalls(events []Event) []Event {
	b := &s.ball
	w, h := s.cfg.Surface.Width, s.cfg.Surface.Height

	if HitsTopWall(b) {
		b.BounceY()
		events = append(events, s.event(Event{Kind: EventWallBounce, Wall: WallTop}))
	}
	if HitsSideWall(b, w) {
		b.BounceX()
		events = append(events, s.event(Event{Kind: EventWallBounce, Wall: WallSide}))
	}
	if HitsPaddle(b, &s.paddle) {
		b.BounceY()
		events = append(events, s.event(Event{Kind: EventPaddleBounce}))
	}
	if HitsBottomWall(b, h) {
		b.Freeze()
		s.missPending = true
		events = append(events, s.event(Event{Kind: EventBallFrozen, Wall: WallBottom}))
	}
	return events
}

// collideBricks walks the grid column by column. Each overlapping brick
// inverts DY, so overlapping two bricks in one tick cancels out unless
// inversions are capped.
func (s *Session) collideBricks(events []Event) ([]Event, bool) {
	g := s.grid
	inverted := false

	for col := range g.Columns {
		for row := range g.Rows {
			brick := &g.Bricks[row][col]
			if !HitsBrick(&s.ball, brick) {
				continue
			}

			if !inverted || !s.cfg.Gameplay.CapBrickInversions {
				s.ball.BounceY()
				inverted = true
			}
			brick.Status = BrickDestroyed
			s.score++
			events = append(events, s.event(Event{Kind: EventBrickDestroyed, Row: row, Col: col}))

			if s.cfg.Gameplay.WinEnabled && s.score == g.Total() {
				s.phase = PhaseWon
				s.missPending = false
				events = append(events, s.event(Event{Kind: EventWon}))
				return events, true
			}
		}
	}
	return events, false
}

func (s *Session) settleMiss(events []Event) []Event {
	if !s.cfg.Gameplay.HasLives() {
		s.phase = PhaseLost
		return append(events, s.event(Event{Kind: EventLost}))
	}

	s.lives--
	if s.lives <= 0 {
		s.lives = 0
		s.phase = PhaseLost
		return append(events, s.event(Event{Kind: EventLost}))
	}

	s.respawn()
	return append(events, s.event(Event{Kind: EventLifeLost}))
}

// respawn puts the ball just above the bottom edge, horizontally centred,
// with its starting velocity, and centres the paddle.
func (s *Session) respawn() {
	c := s.cfg
	s.ball.X = c.Surface.Width / 2
	s.ball.Y = c.Surface.Height - c.Ball.RespawnLift
	s.ball.DX = c.Ball.DX
	s.ball.DY = c.Ball.DY
	s.paddle.X = (c.Surface.Width - s.paddle.width) / 2
	s.paddle.DX = 0
}

// event stamps e with the current score and lives.
func (s *Session) event(e Event) Event {
	e.Score = s.score
	e.Lives = s.lives
	return e
}

// Ball returns a copy of the ball.
func (s *Session) Ball() Ball { return s.ball }

// Paddle returns a copy of the paddle.
func (s *Session) Paddle() Paddle { return s.paddle }

// Grid returns the brick grid. Callers must not modify it.
func (s *Session) Grid() *Grid { return s.grid }

// Score returns the number of bricks destroyed.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives, zero for variants without a counter.
func (s *Session) Lives() int { return s.lives }

// HasLives reports whether the variant keeps a life counter.
func (s *Session) HasLives() bool { return s.cfg.Gameplay.HasLives() }

// Phase returns the lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Ticks returns the number of ticks stepped since the last reset.
func (s *Session) Ticks() uint64 { return s.ticks }

// Held reports which directions are currently held.
func (s *Session) Held() (left, right bool) { return s.leftHeld, s.rightHeld }

// MissPending reports whether a bottom-wall freeze awaits settlement.
func (s *Session) MissPending() bool { return s.missPending }
