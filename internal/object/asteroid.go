package object

import (
	"math"

	"github.com/tomz197/wormhole/internal/draw"
	"github.com/tomz197/wormhole/internal/physics"
)

// Asteroid generation bounds.
const (
	AsteroidMinSize     = 20.0
	AsteroidMaxSize     = 60.0
	AsteroidMinVertices = 7
	AsteroidMaxVertices = 11
)

// Asteroid is a destructible space rock.
type Asteroid struct {
	X, Y          float64      // Position (center)
	VX, VY        float64      // Velocity
	Angle         float64      // Current rotation angle
	RotationSpeed float64      // Radians per tick
	Radius        float64      // Collision radius and base outline size
	Shape         []draw.Point // Outline offsets from center, fixed at creation
	Health        int          // Hits remaining
	Destroyed     bool         // Marked when health is exhausted
}

// NewAsteroid creates an asteroid with a random size, outline and drift at (x, y).
func NewAsteroid(r *physics.Rand, x, y float64) *Asteroid {
	size := r.Range(AsteroidMinSize, AsteroidMaxSize)
	n := r.IntRange(AsteroidMinVertices, AsteroidMaxVertices)

	// Irregular outline: equal angular spacing, radius varies ±20%.
	shape := make([]draw.Point, n)
	for i := range shape {
		a := float64(i) / float64(n) * 2 * math.Pi
		dist := size * (0.8 + r.Float64()*0.4)
		shape[i] = draw.Point{X: math.Cos(a) * dist, Y: math.Sin(a) * dist}
	}

	return &Asteroid{
		X:             x,
		Y:             y,
		VX:            r.Range(-1, 1),
		VY:            r.Range(-1, 1),
		RotationSpeed: r.Jitter(0.02),
		Radius:        size,
		Shape:         shape,
		Health:        int(math.Floor(size/10)) + 1,
	}
}

// Hit removes one health point and reports whether the asteroid is now destroyed.
func (a *Asteroid) Hit() bool {
	a.Health--
	if a.Health <= 0 {
		a.Destroyed = true
	}
	return a.Destroyed
}

// Update moves the asteroid and handles rotation.
func (a *Asteroid) Update(ctx UpdateContext) bool {
	if a.Destroyed {
		return true
	}

	a.X += a.VX
	a.Y += a.VY
	a.Angle += a.RotationSpeed
	ctx.Bounds.WrapRadius(&a.X, &a.Y, a.Radius)

	return false
}

// Draw renders the asteroid as an irregular polygon.
func (a *Asteroid) Draw(ctx DrawContext) {
	// Use reusable buffer from canvas to avoid per-frame allocations.
	// Safe for concurrent rendering because each client has its own Canvas.
	points := ctx.Canvas.BorrowPoints(len(a.Shape))
	transform(points, a.Shape, a.X, a.Y, a.Angle, 1)
	ctx.Canvas.DrawPolygon(points, false)
}

// Outline returns the rotated outline in playfield coordinates.
func (a *Asteroid) Outline() []draw.Point {
	pts := make([]draw.Point, len(a.Shape))
	transform(pts, a.Shape, a.X, a.Y, a.Angle, 1)
	return pts
}

// MarkDestroyed marks the asteroid for removal (implements Destructible).
func (a *Asteroid) MarkDestroyed() {
	a.Destroyed = true
}

// IsDestroyed returns true if the asteroid is marked for destruction (implements Destructible).
func (a *Asteroid) IsDestroyed() bool {
	return a.Destroyed
}
