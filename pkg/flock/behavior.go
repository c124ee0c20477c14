package flock

import (
	"math/rand"

	"github.com/lao-tseu-is-alive/go-flocking-engine/pkg/geometry"
)

// The behavior functions below are pure steering rules: each one reads an
// agent and a read-only neighborhood slice and returns a bounded force to be
// accumulated via Boid.ApplyForce. They are free functions parameterized by
// Config values, so the same rules drive both the fixed-capacity and the
// dynamic container.
//
// Conventions shared by all rules:
//   - the neighborhood may (and usually does) contain the agent itself;
//     the strict `distance > 0` check excludes it.
//   - distance thresholds are exclusive: a neighbor exactly at the
//     threshold does not qualify.
//   - an empty qualifying neighborhood yields exactly the zero vector,
//     never a division by zero or NaN.
//   - non-finite inputs are not rejected: NaN or Inf in positions or
//     config values propagates through the math. Known limitation.

// Separation steers away from neighbors closer than SeparationDistance.
// Each qualifying neighbor contributes a repulsion vector weighted inversely
// by its distance, so closer neighbors repel more strongly.
func Separation(b *Boid, others []Boid, cfg Config) geometry.Vector2D {
	var steering geometry.Vector2D
	count := 0

	for i := range others {
		d := b.Position.DistanceTo(others[i].Position)
		if d > 0 && d < cfg.SeparationDistance {
			diff := b.Position.Sub(others[i].Position).Normalize().Mul(1 / d)
			steering = steering.Add(diff)
			count++
		}
	}

	if count > 0 {
		steering = steering.Mul(1 / float64(count))
	}

	if steering.Len() > 0 {
		steering = steering.Normalize().Mul(cfg.MaxSpeed)
		steering = steering.Sub(b.Velocity)
		steering = steering.Limit(cfg.MaxForce)
	}

	return steering
}

// Alignment steers toward the average velocity of neighbors within
// AlignmentDistance. An agent already matching the neighborhood's average
// heading receives exactly the zero vector.
func Alignment(b *Boid, others []Boid, cfg Config) geometry.Vector2D {
	var sum geometry.Vector2D
	count := 0

	for i := range others {
		d := b.Position.DistanceTo(others[i].Position)
		if d > 0 && d < cfg.AlignmentDistance {
			sum = sum.Add(others[i].Velocity)
			count++
		}
	}

	if count == 0 {
		return geometry.Vector2D{}
	}

	avg := sum.Mul(1 / float64(count))
	return avg.Sub(b.Velocity).Limit(cfg.MaxForce)
}

// Cohesion steers toward the centroid of neighbors within CohesionDistance,
// using the standard seek steering against that point.
func Cohesion(b *Boid, others []Boid, cfg Config) geometry.Vector2D {
	var sum geometry.Vector2D
	count := 0

	for i := range others {
		d := b.Position.DistanceTo(others[i].Position)
		if d > 0 && d < cfg.CohesionDistance {
			sum = sum.Add(others[i].Position)
			count++
		}
	}

	if count == 0 {
		return geometry.Vector2D{}
	}

	target := sum.Mul(1 / float64(count))
	return Seek(b, target, cfg)
}

// Seek computes the classic Reynolds seek steering toward a target point:
// desired velocity at full speed toward the target, minus the current
// velocity, capped at MaxForce.
func Seek(b *Boid, target geometry.Vector2D, cfg Config) geometry.Vector2D {
	desired := target.Sub(b.Position).Normalize().Mul(cfg.MaxSpeed)
	return desired.Sub(b.Velocity).Limit(cfg.MaxForce)
}

// Wander produces a low-amplitude pseudo-random steering perturbation used
// for organic idle motion. The agent's wander angle drifts by a uniform
// step in [-0.05, 0.05) drawn from the supplied source, and the force is
// the unit heading at that angle scaled by WanderRadius. Deterministic for
// a fixed seed.
func Wander(b *Boid, rng *rand.Rand, cfg Config) geometry.Vector2D {
	b.wanderAngle += (rng.Float64() - 0.5) * 0.1
	return geometry.NewVectorPolar(cfg.WanderRadius, b.wanderAngle)
}
