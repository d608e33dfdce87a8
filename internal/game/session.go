package game

import (
	"github.com/dmalakhov/skyhop/internal/config"
	"github.com/dmalakhov/skyhop/internal/core"
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseIdle     Phase = iota // Waiting for start; the simulation is not advancing
	PhaseRunning               // Fixed-step simulation advances each tick
	PhaseGameOver              // Simulation frozen, score finalized
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session orchestrates one actor, one obstacle field and one scoreboard
// through the Idle -> Running -> GameOver lifecycle. External callers interact
// only through Start, Flap, Reset, TogglePause and the per-tick Update; all
// other state is read through Snapshot. Redundant control calls (Flap while
// Idle, Start while Running) are no-ops.
//
// The session owns no scheduling: the platform drives Update at a steady
// cadence and simply stops caring once the phase is GameOver.
type Session struct {
	cfg  config.Config
	diff *config.DifficultyManager
	rng  Rand

	worldW float64
	worldH float64

	actor Actor
	field *Field
	board *Scoreboard

	phase     Phase
	tick      uint64
	paused    bool
	newRecord bool
}

// NewSession creates a session in the Idle phase. The random source feeds gap
// placement; the store (may be nil) backs the scoreboard.
func NewSession(cfg config.Config, rc core.RuntimeConfig, rng Rand, store ScoreStore) *Session {
	s := &Session{
		cfg:    cfg,
		diff:   config.NewDifficultyManager(cfg.Difficulty),
		rng:    rng,
		worldW: float64(rc.ScreenW),
		worldH: float64(rc.ScreenH),
		board:  NewScoreboard(store),
	}
	s.field = NewField(rng, s.worldW, s.worldH, cfg.Obstacles.Width, cfg.Obstacles.GapHeight)
	s.actor = s.freshActor()
	return s
}

// freshActor returns the actor in its start pose.
func (s *Session) freshActor() Actor {
	return NewActor(s.cfg.Actor.X, s.worldH/2, s.cfg.Actor.Radius)
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Start begins a run. Legal from Idle and directly from GameOver (replay
// without an explicit reset); a no-op while already Running.
func (s *Session) Start() {
	if s.phase == PhaseRunning {
		return
	}
	s.actor = s.freshActor()
	s.field.Reset()
	s.board.ResetSession()
	s.tick = 0
	s.paused = false
	s.newRecord = false
	s.phase = PhaseRunning
}

// Flap sets the actor's velocity to the flap impulse. Only effective while
// Running and not paused; coupling "first flap also starts" is presenter glue,
// not part of this contract.
func (s *Session) Flap() {
	if s.phase != PhaseRunning || s.paused {
		return
	}
	s.actor.Flap(s.cfg.Physics.FlapImpulse)
}

// Reset clears all transient state and returns to Idle, re-arming for a new
// Start. Calling it repeatedly is idempotent.
func (s *Session) Reset() {
	s.actor = s.freshActor()
	s.field.Reset()
	s.board.ResetSession()
	s.tick = 0
	s.paused = false
	s.newRecord = false
	s.phase = PhaseIdle
}

// TogglePause flips the pause flag while Running.
func (s *Session) TogglePause() {
	if s.phase != PhaseRunning {
		return
	}
	s.paused = !s.paused
}

// Resize updates the world dimensions. The caller decides whether to restart
// a run that is in flight; a frozen GameOver snapshot is never disturbed.
func (s *Session) Resize(w, h int) {
	s.worldW = float64(w)
	s.worldH = float64(h)
	s.field.SetWorldSize(s.worldW, s.worldH)
}

// Update advances the simulation by one fixed tick. The intra-tick order is
// load-bearing: gravity, integrate, ceiling clamp, obstacle advance, spawn,
// pass scoring, then collision. Scoring before the collision check means a
// same-tick pass-then-collide still awards the point; that is deliberate
// policy, not an accident of ordering.
func (s *Session) Update() {
	if s.phase != PhaseRunning || s.paused {
		return
	}

	s.actor.ApplyGravity(s.cfg.Physics.Gravity)
	s.actor.Integrate()

	// The ceiling blocks but does not kill: position is clamped, velocity
	// is left alone.
	if s.actor.Y < s.actor.Radius {
		s.actor.Y = s.actor.Radius
	}

	score := s.board.Score()
	speed := s.diff.Speed(s.cfg.Physics.BaseSpeed, score, int(s.tick))
	interval := s.diff.Interval(s.cfg.Obstacles.SpawnInterval, score, int(s.tick))

	s.field.Advance(speed)
	s.field.MaybeSpawn(s.tick, interval, s.cfg.Obstacles.TopMargin, s.cfg.Obstacles.BottomMargin)

	for n := s.field.DetectAndMarkPassed(s.actor.X - s.actor.Radius); n > 0; n-- {
		s.board.Increment()
	}

	if HitsGround(s.actor, s.worldH, s.cfg.Obstacles.GroundThickness) || s.field.Collides(s.actor) {
		s.phase = PhaseGameOver
		s.newRecord = s.board.Finalize()
		return
	}

	s.tick++
}
