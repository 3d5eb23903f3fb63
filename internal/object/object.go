// Package object defines the simulated entities and how each one advances
// and draws itself.
package object

import (
	"time"

	"github.com/tomz197/wormhole/internal/draw"
	"github.com/tomz197/wormhole/internal/input"
	"github.com/tomz197/wormhole/internal/physics"
)

// Emitter receives entities created by other entities during update.
type Emitter interface {
	EmitProjectile(p *Projectile)
	EmitParticle(p *Particle)
	EmitExplosion(e *Explosion)
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Bounds  physics.Bounds // Playfield the entity wraps around
	Rand    *physics.Rand
	Now     time.Time     // Wall clock, for cooldowns and twinkle
	Actions input.Actions // Held actions sampled this tick
	Fuel    float64       // Fuel available to the ship before this tick
	ShipVX  float64       // Ship velocity, for star parallax
	ShipVY  float64
	Emitter Emitter
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas // Logical coordinates are playfield units
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update advances the object one tick. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool)

	// Draw draws the object onto the canvas.
	Draw(ctx DrawContext)
}

// Destructible is implemented by objects that are marked during collision
// resolution and removed afterwards.
type Destructible interface {
	MarkDestroyed()
	IsDestroyed() bool
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj any) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// transform rotates the local outline by angle around (x, y) into dst.
func transform(dst, local []draw.Point, x, y, angle, scale float64) {
	for i, p := range local {
		rx, ry := physics.Rotate(p.X*scale, p.Y*scale, angle)
		dst[i] = draw.Point{X: x + rx, Y: y + ry}
	}
}

func pointOf(x, y float64) draw.Point {
	return draw.Point{X: x, Y: y}
}
