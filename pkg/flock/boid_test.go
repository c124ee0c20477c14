package flock

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lao-tseu-is-alive/go-flocking-engine/pkg/geometry"
)

func TestNewBoid(t *testing.T) {
	b := NewBoid(geometry.Vector2D{X: 10, Y: 20}, geometry.Vector2D{X: 1, Y: -1})

	assert.Equal(t, geometry.Vector2D{X: 10, Y: 20}, b.Position)
	assert.Equal(t, geometry.Vector2D{X: 1, Y: -1}, b.Velocity)
	assert.Equal(t, geometry.Vector2D{}, b.Acceleration, "acceleration must start at zero")
}

func TestBoid_ApplyForce_Accumulates(t *testing.T) {
	b := NewBoid(geometry.Vector2D{}, geometry.Vector2D{})

	b.ApplyForce(geometry.Vector2D{X: 0.5, Y: 0})
	b.ApplyForce(geometry.Vector2D{X: 0.25, Y: 1})

	assert.True(t, b.Acceleration.Eq(geometry.Vector2D{X: 0.75, Y: 1}))
}

func TestBoid_Update_IntegrationOrder(t *testing.T) {
	// velocity += acceleration, then limit, then position += velocity,
	// then acceleration resets.
	b := NewBoid(geometry.Vector2D{}, geometry.Vector2D{X: 1, Y: 0})
	b.ApplyForce(geometry.Vector2D{X: 0.5, Y: 0})

	b.Update(10)

	assert.True(t, b.Velocity.Eq(geometry.Vector2D{X: 1.5, Y: 0}))
	assert.True(t, b.Position.Eq(geometry.Vector2D{X: 1.5, Y: 0}))
	assert.Equal(t, geometry.Vector2D{}, b.Acceleration, "acceleration must reset every tick")
}

func TestBoid_Update_CapsSpeed(t *testing.T) {
	b := NewBoid(geometry.Vector2D{}, geometry.Vector2D{X: 10, Y: 0})

	b.Update(2)

	assert.True(t, b.Velocity.Eq(geometry.Vector2D{X: 2, Y: 0}))
	assert.True(t, b.Position.Eq(geometry.Vector2D{X: 2, Y: 0}))
}

func TestNewRandomBoid(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		b := NewRandomBoid(200, 100, rng)
		require.GreaterOrEqual(t, b.Position.X, 0.0)
		require.Less(t, b.Position.X, 200.0)
		require.GreaterOrEqual(t, b.Position.Y, 0.0)
		require.Less(t, b.Position.Y, 100.0)
		require.GreaterOrEqual(t, b.Velocity.X, -2.0)
		require.Less(t, b.Velocity.X, 2.0)
		require.GreaterOrEqual(t, b.Velocity.Y, -2.0)
		require.Less(t, b.Velocity.Y, 2.0)
	}

	// Same seed, same boids.
	a := NewRandomBoid(200, 100, rand.New(rand.NewSource(3)))
	b := NewRandomBoid(200, 100, rand.New(rand.NewSource(3)))
	assert.Equal(t, a, b)
}
