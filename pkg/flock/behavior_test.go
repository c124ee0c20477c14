package flock

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lao-tseu-is-alive/go-flocking-engine/pkg/geometry"
)

func TestBehaviors_SelfOnlyNeighborhoodYieldsZero(t *testing.T) {
	// A neighborhood containing only the agent itself must contribute
	// nothing: the distance-zero entry is excluded by every rule.
	cfg := DefaultConfig()
	b := NewBoid(geometry.Vector2D{X: 50, Y: 50}, geometry.Vector2D{X: 1, Y: 1})
	others := []Boid{b}

	assert.Equal(t, geometry.Vector2D{}, Separation(&b, others, cfg))
	assert.Equal(t, geometry.Vector2D{}, Alignment(&b, others, cfg))
	assert.Equal(t, geometry.Vector2D{}, Cohesion(&b, others, cfg))
}

func TestBehaviors_EmptyNeighborhoodYieldsZero(t *testing.T) {
	cfg := DefaultConfig()
	b := NewBoid(geometry.Vector2D{}, geometry.Vector2D{X: 2, Y: 0})

	assert.Equal(t, geometry.Vector2D{}, Separation(&b, nil, cfg))
	assert.Equal(t, geometry.Vector2D{}, Alignment(&b, nil, cfg))
	assert.Equal(t, geometry.Vector2D{}, Cohesion(&b, nil, cfg))
}

func TestSeparation_TwoAgents(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SeparationDistance = 10
	cfg.SeparationWeight = 1.0

	a := NewBoid(geometry.Vector2D{X: 0, Y: 0}, geometry.Vector2D{})
	b := NewBoid(geometry.Vector2D{X: 5, Y: 0}, geometry.Vector2D{})
	others := []Boid{a, b}

	// At distance 5 < 10 both receive nonzero, mutually repelling steering.
	fa := Separation(&a, others, cfg)
	fb := Separation(&b, others, cfg)
	assert.Negative(t, fa.X, "left agent must be pushed further left")
	assert.Positive(t, fb.X, "right agent must be pushed further right")
	assert.NotEqual(t, geometry.Vector2D{}, fa)
	assert.NotEqual(t, geometry.Vector2D{}, fb)

	// At distance 20 > 10 separation is exactly zero for both.
	b.Position.X = 20
	others = []Boid{a, b}
	assert.Equal(t, geometry.Vector2D{}, Separation(&a, others, cfg))
	assert.Equal(t, geometry.Vector2D{}, Separation(&b, others, cfg))
}

func TestSeparation_ThresholdIsExclusive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SeparationDistance = 10

	a := NewBoid(geometry.Vector2D{X: 0, Y: 0}, geometry.Vector2D{})
	b := NewBoid(geometry.Vector2D{X: 10, Y: 0}, geometry.Vector2D{})

	// A neighbor exactly at the threshold does not qualify.
	assert.Equal(t, geometry.Vector2D{}, Separation(&a, []Boid{a, b}, cfg))
}

func TestSeparation_CloserNeighborDominates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SeparationDistance = 10

	// Two neighbors on opposite sides: repulsion is weighted inversely by
	// distance, so the near one at distance 1 outweighs the far one at
	// distance 8 and the net push points away from the near neighbor.
	me := NewBoid(geometry.Vector2D{}, geometry.Vector2D{})
	near := NewBoid(geometry.Vector2D{X: 1, Y: 0}, geometry.Vector2D{})
	far := NewBoid(geometry.Vector2D{X: -8, Y: 0}, geometry.Vector2D{})

	got := Separation(&me, []Boid{me, near, far}, cfg)
	assert.Negative(t, got.X)
}

func TestAlignment_AlreadyAlignedIsZero(t *testing.T) {
	// Three agents with identical velocity and a range wide enough to see
	// each other: the steering delta must be exactly zero.
	cfg := DefaultConfig()
	cfg.AlignmentDistance = 1000

	vel := geometry.Vector2D{X: 1, Y: 0}
	flock := []Boid{
		NewBoid(geometry.Vector2D{X: 0, Y: 0}, vel),
		NewBoid(geometry.Vector2D{X: 10, Y: 0}, vel),
		NewBoid(geometry.Vector2D{X: 0, Y: 10}, vel),
	}

	for i := range flock {
		got := Alignment(&flock[i], flock, cfg)
		assert.Equal(t, geometry.Vector2D{}, got, "agent %d is already aligned", i)
	}
}

func TestAlignment_SteersTowardAverageHeading(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AlignmentDistance = 100

	me := NewBoid(geometry.Vector2D{}, geometry.Vector2D{})
	other := NewBoid(geometry.Vector2D{X: 5, Y: 0}, geometry.Vector2D{X: 1, Y: 0})

	got := Alignment(&me, []Boid{me, other}, cfg)
	assert.Positive(t, got.X, "expected acceleration toward the neighborhood heading")
	assert.Zero(t, got.Y)
}

func TestCohesion_SteersTowardCentroid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CohesionDistance = 100

	me := NewBoid(geometry.Vector2D{}, geometry.Vector2D{})
	other := NewBoid(geometry.Vector2D{X: 10, Y: 0}, geometry.Vector2D{})

	got := Cohesion(&me, []Boid{me, other}, cfg)
	assert.Positive(t, got.X, "expected pull toward the centroid")
}

func TestSeek_DirectionAndCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSpeed = 2
	cfg.MaxForce = 1

	b := NewBoid(geometry.Vector2D{}, geometry.Vector2D{})
	got := Seek(&b, geometry.Vector2D{X: 100, Y: 100}, cfg)

	// Stationary agent: steering is the desired velocity capped at
	// MaxForce, pointing along the (1,1) diagonal.
	assert.InDelta(t, 1.0, got.Len(), 1e-9)
	assert.InDelta(t, got.X, got.Y, 1e-9)
	assert.Positive(t, got.X)
}

func TestBehaviors_OutputCappedAtMaxForce(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(11))

	flock := make([]Boid, 0, 30)
	for i := 0; i < 30; i++ {
		flock = append(flock, NewRandomBoid(50, 50, rng))
	}

	for i := range flock {
		b := &flock[i]
		assert.LessOrEqual(t, Separation(b, flock, cfg).Len(), cfg.MaxForce+geometry.Epsilon)
		assert.LessOrEqual(t, Alignment(b, flock, cfg).Len(), cfg.MaxForce+geometry.Epsilon)
		assert.LessOrEqual(t, Cohesion(b, flock, cfg).Len(), cfg.MaxForce+geometry.Epsilon)
		assert.LessOrEqual(t, Seek(b, geometry.Vector2D{X: 25, Y: 25}, cfg).Len(), cfg.MaxForce+geometry.Epsilon)
	}
}

func TestWander_DeterministicForFixedSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WanderRadius = 2

	b1 := NewBoid(geometry.Vector2D{}, geometry.Vector2D{})
	b2 := NewBoid(geometry.Vector2D{}, geometry.Vector2D{})

	rngA := rand.New(rand.NewSource(99))
	rngB := rand.New(rand.NewSource(99))

	for i := 0; i < 10; i++ {
		fa := Wander(&b1, rngA, cfg)
		fb := Wander(&b2, rngB, cfg)
		assert.Equal(t, fa, fb, "tick %d", i)
		assert.InDelta(t, cfg.WanderRadius, fa.Len(), 1e-9)
	}
}
