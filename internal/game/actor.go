// Package game implements the Sky Hopper engine: a fixed-step flappy-style
// simulation with an Idle/Running/GameOver session state machine. It contains
// pure logic with no UI dependencies; the platform layer drives ticks and
// renders snapshots.
package game

import "github.com/dmalakhov/skyhop/internal/core"

// Actor is the player-controlled hopper. Its x position is fixed for the
// lifetime of a run; the world scrolls past it.
type Actor struct {
	X      float64 // Fixed horizontal position
	Y      float64 // Vertical position (center)
	Vel    float64 // Vertical velocity, positive = down
	Radius float64 // Collision envelope
}

// NewActor creates an actor at the given position with zero velocity.
func NewActor(x, y, radius float64) Actor {
	return Actor{X: x, Y: y, Radius: radius}
}

// ApplyGravity accelerates the actor downward by the given per-tick constant.
// Velocity is deliberately unclamped.
func (a *Actor) ApplyGravity(g float64) {
	a.Vel += g
}

// Integrate advances the vertical position by the current velocity.
func (a *Actor) Integrate() {
	a.Y += a.Vel
}

// Flap sets the velocity to the given power outright (negative = up).
// There is no accumulation: flapping mid-fall and flapping mid-rise both
// leave the actor at exactly the flap velocity.
func (a *Actor) Flap(power float64) {
	a.Vel = power
}

// Rotation returns a display-only pitch in degrees derived from velocity:
// nose up while rising, tipping down while falling.
func (a Actor) Rotation() float64 {
	return core.ClampF(a.Vel*18, -30, 90)
}
