package flock

import (
	"math/rand"

	"github.com/lao-tseu-is-alive/go-flocking-engine/pkg/geometry"
)

// Boid is a single flocking agent: position, velocity, and an acceleration
// accumulator that behaviors write into during a tick.
//
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds. The name "boid"
// corresponds to a shortened version of "bird-oid object".
// https://en.wikipedia.org/wiki/Boids
type Boid struct {
	Position     geometry.Vector2D
	Velocity     geometry.Vector2D
	Acceleration geometry.Vector2D

	// wanderAngle is the per-agent heading of the wander perturbation.
	// It persists across ticks so idle motion stays smooth.
	wanderAngle float64
}

// NewBoid creates a boid at the given position with the given velocity.
// Acceleration starts at zero.
func NewBoid(position, velocity geometry.Vector2D) Boid {
	return Boid{Position: position, Velocity: velocity}
}

// NewRandomBoid creates a boid with a random position inside the given
// bounds and a random velocity in [-2, 2) on each axis. The caller supplies
// the random source, so results are reproducible for a fixed seed.
func NewRandomBoid(width, height float64, rng *rand.Rand) Boid {
	return NewBoid(
		geometry.Vector2D{X: rng.Float64() * width, Y: rng.Float64() * height},
		geometry.Vector2D{X: rng.Float64()*4 - 2, Y: rng.Float64()*4 - 2},
	)
}

// ApplyForce accumulates a steering contribution into the acceleration.
// Behaviors must only ever contribute forces here, never mutate Velocity or
// Position directly, so that every behavior in a tick is evaluated against
// the same pre-tick snapshot of the neighborhood.
func (b *Boid) ApplyForce(force geometry.Vector2D) {
	b.Acceleration = b.Acceleration.Add(force)
}

// Update integrates one tick: velocity += acceleration, velocity capped at
// maxSpeed, position += velocity, acceleration reset for the next tick.
func (b *Boid) Update(maxSpeed float64) {
	b.Velocity = b.Velocity.Add(b.Acceleration)
	b.Velocity = b.Velocity.Limit(maxSpeed)
	b.Position = b.Position.Add(b.Velocity)
	b.Acceleration = geometry.Vector2D{}
}
