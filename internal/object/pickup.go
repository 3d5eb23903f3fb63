package object

import (
	"math"

	"github.com/tomz197/wormhole/internal/draw"
	"github.com/tomz197/wormhole/internal/physics"
)

// PickupRadius is the collision radius of a fuel crystal.
const PickupRadius = 10.0

// Pickup is a fuel crystal worth Value points.
type Pickup struct {
	X, Y          float64
	Radius        float64
	Angle         float64
	RotationSpeed float64
	Pulse         float64 // Phase in [0, 2π)
	PulseSpeed    float64
	Value         int // 1..3
	Collected     bool
}

var crystalShape = []draw.Point{
	{X: 0, Y: -1.2},
	{X: 1, Y: -0.3},
	{X: 0.5, Y: 1},
	{X: -0.5, Y: 1},
	{X: -1, Y: -0.3},
}

// NewPickup creates a crystal at (x, y) with random spin and value.
func NewPickup(r *physics.Rand, x, y float64) *Pickup {
	return &Pickup{
		X:             x,
		Y:             y,
		Radius:        PickupRadius,
		Angle:         r.Angle(),
		RotationSpeed: r.Jitter(0.03),
		PulseSpeed:    r.Range(0.05, 0.08),
		Value:         r.IntRange(1, 3),
	}
}

// Update spins the crystal and advances its pulse.
func (p *Pickup) Update(_ UpdateContext) bool {
	if p.Collected {
		return true
	}
	p.Angle += p.RotationSpeed
	p.Pulse = advancePhase(p.Pulse, p.PulseSpeed)
	return false
}

// Scale returns the current pulse size multiplier.
func (p *Pickup) Scale() float64 {
	return 1 + math.Sin(p.Pulse)*0.2
}

// Draw renders the crystal as a filled pentagon.
func (p *Pickup) Draw(ctx DrawContext) {
	points := ctx.Canvas.BorrowPoints(len(crystalShape))
	transform(points, crystalShape, p.X, p.Y, p.Angle, p.Radius*p.Scale())
	ctx.Canvas.DrawPolygon(points, true)
}

// Outline returns the pulsing crystal outline in playfield coordinates.
func (p *Pickup) Outline() []draw.Point {
	pts := make([]draw.Point, len(crystalShape))
	transform(pts, crystalShape, p.X, p.Y, p.Angle, p.Radius*p.Scale())
	return pts
}

// MarkDestroyed marks the pickup as collected.
func (p *Pickup) MarkDestroyed() {
	p.Collected = true
}

// IsDestroyed returns true once the pickup is collected.
func (p *Pickup) IsDestroyed() bool {
	return p.Collected
}

// advancePhase adds step to a cyclic phase, wrapping past 2π.
func advancePhase(phase, step float64) float64 {
	phase += step
	if phase > 2*math.Pi {
		phase -= 2 * math.Pi
	}
	return phase
}
