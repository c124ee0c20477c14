package flock

import (
	"errors"

	"github.com/lao-tseu-is-alive/go-flocking-engine/pkg/geometry"
)

// ErrCapacityExceeded is returned by Flock.AddBoid when the container is
// already holding its maximum number of agents.
var ErrCapacityExceeded = errors.New("flock: capacity exceeded")

// Flock is the fixed-capacity container, built for targets without dynamic
// allocation: the boid storage and the per-tick force scratch buffer are
// allocated exactly once at construction, and Update allocates nothing.
//
// The container applies no boundary policy and supports no removal; an
// embedding loop that needs wrap-around or clipping handles it outside.
// A Flock is not safe for concurrent use: the driving loop owns it for the
// duration of each tick.
type Flock struct {
	tuning

	boids  []Boid
	forces []geometry.Vector2D

	width  float64
	height float64
}

// NewFlock creates an empty fixed-capacity flock over a width x height
// simulation space. The capacity is final: AddBoid fails once reached.
func NewFlock(width, height float64, capacity int, cfg Config) *Flock {
	return &Flock{
		tuning: tuning{cfg: cfg},
		boids:  make([]Boid, 0, capacity),
		forces: make([]geometry.Vector2D, 0, capacity),
		width:  width,
		height: height,
	}
}

// Cap returns the fixed capacity of the flock.
func (f *Flock) Cap() int { return cap(f.boids) }

// Len returns the current number of agents.
func (f *Flock) Len() int { return len(f.boids) }

// Boids returns a read-only view of the agents, backed by the flock's own
// storage. Callers must not mutate it and must not hold it across Update.
func (f *Flock) Boids() []Boid { return f.boids }

// AddBoid appends an agent. It returns ErrCapacityExceeded, leaving the
// flock untouched, when the capacity is already reached.
func (f *Flock) AddBoid(b Boid) error {
	if len(f.boids) == cap(f.boids) {
		return ErrCapacityExceeded
	}
	f.boids = append(f.boids, b)
	return nil
}

// Update advances the simulation by one tick. Forces for all agents are
// computed first against the pre-tick snapshot, then applied and
// integrated, so no agent sees a neighbor that already moved this tick.
func (f *Flock) Update() {
	f.forces = f.forces[:0]
	for i := range f.boids {
		b := &f.boids[i]
		sep := Separation(b, f.boids, f.cfg).Mul(f.cfg.SeparationWeight)
		ali := Alignment(b, f.boids, f.cfg).Mul(f.cfg.AlignmentWeight)
		coh := Cohesion(b, f.boids, f.cfg).Mul(f.cfg.CohesionWeight)
		f.forces = append(f.forces, sep.Add(ali).Add(coh))
	}

	for i := range f.boids {
		f.boids[i].ApplyForce(f.forces[i])
		f.boids[i].Update(f.cfg.MaxSpeed)
	}
}

// AveragePosition returns the centroid of all agents, or the zero vector
// for an empty flock.
func (f *Flock) AveragePosition() geometry.Vector2D {
	return averagePosition(f.boids)
}

// Resize updates the simulation bounds. Agent positions are left as they
// are; the fixed container never clips.
func (f *Flock) Resize(width, height float64) {
	f.width = width
	f.height = height
}

// Bounds returns the simulation space dimensions.
func (f *Flock) Bounds() (width, height float64) {
	return f.width, f.height
}

func averagePosition(boids []Boid) geometry.Vector2D {
	if len(boids) == 0 {
		return geometry.Vector2D{}
	}
	var sum geometry.Vector2D
	for i := range boids {
		sum = sum.Add(boids[i].Position)
	}
	return sum.Mul(1 / float64(len(boids)))
}
