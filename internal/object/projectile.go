package object

// Projectile tuning.
const (
	ProjectileRadius   = 3.0
	ProjectileLifetime = 60 // Ticks
	ProjectileTrail    = 0.3
)

// Projectile is a laser bolt fired by the ship.
type Projectile struct {
	X, Y    float64 // Position
	VX, VY  float64 // Velocity
	Radius  float64
	Life    int  // Ticks remaining before removal
	Expired bool // Marked when the bolt hits an asteroid
}

// NewProjectile creates a projectile at (x, y) with velocity (vx, vy).
func NewProjectile(x, y, vx, vy float64) *Projectile {
	return &Projectile{
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     vy,
		Radius: ProjectileRadius,
		Life:   ProjectileLifetime,
	}
}

// MarkDestroyed marks the projectile for removal.
func (p *Projectile) MarkDestroyed() {
	p.Expired = true
}

// IsDestroyed returns true if the projectile is marked for destruction.
func (p *Projectile) IsDestroyed() bool {
	return p.Expired
}

// Update moves the projectile, ages it, and leaves a spark trail.
func (p *Projectile) Update(ctx UpdateContext) bool {
	if p.Expired {
		return true
	}

	p.X += p.VX
	p.Y += p.VY
	ctx.Bounds.WrapEdge(&p.X, &p.Y)

	p.Life--
	if p.Life <= 0 {
		return true
	}

	if ctx.Emitter != nil && ctx.Rand.Chance(ProjectileTrail) {
		r := ctx.Rand
		ctx.Emitter.EmitParticle(NewParticle(
			p.X, p.Y,
			r.Jitter(2), r.Jitter(2),
			r.Range(1, 3),
			0.5,
			HueColor(r.Range(10, 50)),
		))
	}
	return false
}

// Draw renders the projectile.
func (p *Projectile) Draw(ctx DrawContext) {
	ctx.Canvas.DrawCircle(pointOf(p.X, p.Y), p.Radius)
}
