package object

import (
	"image/color"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/tomz197/wormhole/internal/physics"
)

// Decay rates per tick.
const (
	ParticleDecay  = 0.02
	ExplosionDecay = 0.05
)

// Burst colours for collision effects.
var (
	ImpactColor    = colornames.Gold
	DestroyColor   = colornames.Orange
	ShipHitColor   = colornames.Tomato
	CollectColor   = color.RGBA{R: 0x7d, G: 0xf9, B: 0xff, A: 0xff} // Electric blue
	ExplosionColor = colornames.Orange
)

// HueColor returns the fully saturated, light colour of the given hue in degrees.
func HueColor(hue float64) color.RGBA {
	r, g, b := colorful.Hsl(hue, 1, 0.7).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived cosmetic spark.
type Particle struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity
	Radius float64
	Color  color.RGBA
	Life   float64 // Fades from its start value to 0
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy, radius, life float64, c color.RGBA) *Particle {
	p := particlePool.Get().(*Particle)
	*p = Particle{
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     vy,
		Radius: radius,
		Color:  c,
		Life:   life,
	}
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// Update moves the particle and fades it.
func (p *Particle) Update(_ UpdateContext) bool {
	p.X += p.VX
	p.Y += p.VY
	p.Life -= ParticleDecay
	return p.Life <= 0
}

// Draw renders the particle shrinking with its remaining life.
func (p *Particle) Draw(ctx DrawContext) {
	// Skip faded particles (< 25% life)
	if p.Life < 0.25 {
		return
	}
	ctx.Canvas.DrawCircle(pointOf(p.X, p.Y), p.Radius*p.Life)
}

// Explosion is an expanding shockwave ring paired with a particle burst.
type Explosion struct {
	X, Y   float64
	Radius float64
	Speed  float64 // Radius growth per tick
	Life   float64
	Color  color.RGBA
}

// Update grows and fades the shockwave.
func (e *Explosion) Update(_ UpdateContext) bool {
	e.Radius += e.Speed
	e.Life -= ExplosionDecay
	return e.Life <= 0
}

// Draw renders the shockwave ring while it is still bright.
func (e *Explosion) Draw(ctx DrawContext) {
	if e.Life < 0.3 {
		return
	}
	ctx.Canvas.DrawCircle(pointOf(e.X, e.Y), e.Radius)
}

// Burst emits count particles at (x, y) and a shockwave whose growth scales
// with size.
func Burst(em Emitter, r *physics.Rand, x, y float64, count int, size float64, c color.RGBA) {
	if em == nil {
		return
	}
	for range count {
		em.EmitParticle(NewParticle(
			x, y,
			r.Jitter(5), r.Jitter(5),
			r.Range(3, 6),
			1,
			c,
		))
	}
	em.EmitExplosion(&Explosion{
		X:      x,
		Y:      y,
		Radius: 5,
		Speed:  1.5 * size,
		Life:   1,
		Color:  c,
	})
}
