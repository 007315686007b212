package breakout

import "math"

// Snapshot contains the complete session state for replay and
// determinism checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick  uint64
	Phase int
	Score int
	Lives int

	BallX, BallY, BallDX, BallDY float64
	PaddleX, PaddleDX            float64

	LeftHeld    bool
	RightHeld   bool
	MissPending bool

	// Brick states flattened row-major: 1 active, 0 destroyed.
	BrickData []int
}

// Snapshot returns the current session state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	g := s.grid
	bricks := make([]int, 0, g.Total())
	for row := range g.Rows {
		for col := range g.Columns {
			if g.Bricks[row][col].Active() {
				bricks = append(bricks, 1)
			} else {
				bricks = append(bricks, 0)
			}
		}
	}

	return Snapshot{
		Tick:        s.ticks,
		Phase:       int(s.phase),
		Score:       s.score,
		Lives:       s.lives,
		BallX:       s.ball.X,
		BallY:       s.ball.Y,
		BallDX:      s.ball.DX,
		BallDY:      s.ball.DY,
		PaddleX:     s.paddle.X,
		PaddleDX:    s.paddle.DX,
		LeftHeld:    s.leftHeld,
		RightHeld:   s.rightHeld,
		MissPending: s.missPending,
		BrickData:   bricks,
	}
}

// ApplySnapshot restores session state from a snapshot taken from a
// session with the same config.
func (s *Session) ApplySnapshot(snap Snapshot) {
	s.ticks = snap.Tick
	s.phase = Phase(snap.Phase)
	s.score = snap.Score
	s.lives = snap.Lives
	s.ball.X, s.ball.Y = snap.BallX, snap.BallY
	s.ball.DX, s.ball.DY = snap.BallDX, snap.BallDY
	s.paddle.X, s.paddle.DX = snap.PaddleX, snap.PaddleDX
	s.leftHeld = snap.LeftHeld
	s.rightHeld = snap.RightHeld
	s.missPending = snap.MissPending

	g := s.grid
	if len(snap.BrickData) != g.Total() {
		return
	}
	for row := range g.Rows {
		for col := range g.Columns {
			status := BrickDestroyed
			if snap.BrickData[row*g.Columns+col] == 1 {
				status = BrickActive
			}
			g.Bricks[row][col].Status = status
		}
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	b := func(v bool) uint64 {
		if v {
			return 1
		}
		return 0
	}

	h := snap.Tick
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	for _, f := range []float64{snap.BallX, snap.BallY, snap.BallDX, snap.BallDY, snap.PaddleX, snap.PaddleDX} {
		h = h*31 + math.Float64bits(f)
	}
	h = h*31 + b(snap.LeftHeld)
	h = h*31 + b(snap.RightHeld)
	h = h*31 + b(snap.MissPending)

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
