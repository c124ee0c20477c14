package flock

import (
	"math/rand"

	"github.com/lao-tseu-is-alive/go-flocking-engine/pkg/geometry"
)

// defaultSeed keeps host-target runs reproducible out of the box. Callers
// who want varied runs call Reseed.
const defaultSeed = 42

// FlockStd is the dynamic container used where allocation is available:
// membership is unbounded, agents can be removed, and two extra steering
// terms exist on top of the three flocking rules: seeking an externally
// supplied target point (a pointer, a detected fingertip) and wandering
// when idle. After integration it applies elastic boundary containment so
// agents bounce off the simulation edges instead of leaving the space.
//
// Like Flock, a FlockStd assumes a single driving loop; calls must be
// serialized by the caller.
type FlockStd struct {
	tuning

	boids  []Boid
	forces []geometry.Vector2D

	width  float64
	height float64

	target    geometry.Vector2D
	hasTarget bool

	rng *rand.Rand
}

// NewFlockStd creates a flock of count randomly placed agents with the
// default configuration.
func NewFlockStd(width, height float64, count int) *FlockStd {
	return NewFlockStdWithConfig(width, height, count, DefaultConfig())
}

// NewFlockStdWithConfig creates a flock of count randomly placed agents
// with the given configuration.
func NewFlockStdWithConfig(width, height float64, count int, cfg Config) *FlockStd {
	f := &FlockStd{
		tuning: tuning{cfg: cfg},
		width:  width,
		height: height,
		rng:    rand.New(rand.NewSource(defaultSeed)),
	}
	f.boids = make([]Boid, 0, count)
	for i := 0; i < count; i++ {
		f.boids = append(f.boids, NewRandomBoid(width, height, f.rng))
	}
	return f
}

// Reseed replaces the pseudo-random source used for spawning and wander.
func (f *FlockStd) Reseed(seed int64) {
	f.rng = rand.New(rand.NewSource(seed))
}

// Len returns the current number of agents.
func (f *FlockStd) Len() int { return len(f.boids) }

// Boids returns a read-only view of the agents, backed by the flock's own
// storage. Callers must not mutate it and must not hold it across Update.
func (f *FlockStd) Boids() []Boid { return f.boids }

// AddBoid appends an agent. It always succeeds.
func (f *FlockStd) AddBoid(b Boid) {
	f.boids = append(f.boids, b)
}

// AddRandomBoid spawns an agent at a random position inside the bounds.
func (f *FlockStd) AddRandomBoid() {
	f.boids = append(f.boids, NewRandomBoid(f.width, f.height, f.rng))
}

// RemoveBoid removes the agent at the given index, preserving the order of
// the remaining agents. An out-of-range index is a no-op: removal is not a
// failure mode of this container.
func (f *FlockStd) RemoveBoid(index int) {
	if index < 0 || index >= len(f.boids) {
		return
	}
	f.boids = append(f.boids[:index], f.boids[index+1:]...)
}

// SetTarget sets the attraction point used by the seek behavior on every
// subsequent tick until cleared.
func (f *FlockStd) SetTarget(target geometry.Vector2D) {
	f.target = target
	f.hasTarget = true
}

// ClearTarget removes the attraction point; agents revert to plain
// flocking, plus wandering when enabled.
func (f *FlockStd) ClearTarget() {
	f.target = geometry.Vector2D{}
	f.hasTarget = false
}

// Target returns the current seek target and whether one is set.
func (f *FlockStd) Target() (geometry.Vector2D, bool) {
	return f.target, f.hasTarget
}

// Update advances the simulation by one tick using the stored seek target,
// if any.
func (f *FlockStd) Update() {
	f.step()
}

// UpdateWithTarget stores the given target (nil clears it) and advances the
// simulation by one tick. This is the single-call form used by embedding
// loops that re-derive the target every frame.
func (f *FlockStd) UpdateWithTarget(target *geometry.Vector2D) {
	if target == nil {
		f.ClearTarget()
	} else {
		f.SetTarget(*target)
	}
	f.step()
}

func (f *FlockStd) step() {
	// Phase 1: steering against the pre-tick snapshot.
	f.forces = f.forces[:0]
	for i := range f.boids {
		b := &f.boids[i]
		force := Separation(b, f.boids, f.cfg).Mul(f.cfg.SeparationWeight)
		force = force.Add(Alignment(b, f.boids, f.cfg).Mul(f.cfg.AlignmentWeight))
		force = force.Add(Cohesion(b, f.boids, f.cfg).Mul(f.cfg.CohesionWeight))

		if f.hasTarget {
			force = force.Add(Seek(b, f.target, f.cfg).Mul(f.cfg.SeekWeight))
		} else if f.cfg.WanderEnabled {
			force = force.Add(Wander(b, f.rng, f.cfg))
		}

		f.forces = append(f.forces, force)
	}

	// Phase 2: integration and boundary containment.
	for i := range f.boids {
		f.boids[i].ApplyForce(f.forces[i])
		f.boids[i].Update(f.cfg.MaxSpeed)
		f.contain(&f.boids[i])
	}
}

// contain bounces an agent off the simulation edges: on each violated axis
// the position is clamped to the bound and the velocity sign is reflected,
// so agents visibly bounce rather than stick to the wall.
func (f *FlockStd) contain(b *Boid) {
	if b.Position.X < 0 {
		b.Position.X = 0
		b.Velocity.X = -b.Velocity.X
	} else if b.Position.X > f.width {
		b.Position.X = f.width
		b.Velocity.X = -b.Velocity.X
	}

	if b.Position.Y < 0 {
		b.Position.Y = 0
		b.Velocity.Y = -b.Velocity.Y
	} else if b.Position.Y > f.height {
		b.Position.Y = f.height
		b.Velocity.Y = -b.Velocity.Y
	}
}

// AveragePosition returns the centroid of all agents, or the zero vector
// for an empty flock.
func (f *FlockStd) AveragePosition() geometry.Vector2D {
	return averagePosition(f.boids)
}

// Resize updates the simulation bounds. Agents outside the new bounds are
// pulled back in by containment on the next tick.
func (f *FlockStd) Resize(width, height float64) {
	f.width = width
	f.height = height
}

// Bounds returns the simulation space dimensions.
func (f *FlockStd) Bounds() (width, height float64) {
	return f.width, f.height
}
