package object

import (
	"math"
	"time"

	"github.com/tomz197/wormhole/internal/draw"
	"github.com/tomz197/wormhole/internal/input"
)

// Ship tuning, applied once per tick.
const (
	ShipRadius        = 20.0
	ShipRotationSpeed = 0.05 // Radians per tick
	ShipAcceleration  = 0.1
	ShipFriction      = 0.99
	FireCooldown      = 300 * time.Millisecond
	MuzzleSpeed       = 8.0
	MuzzleInheritance = 0.5 // Share of ship velocity carried by a shot
	TrailChance       = 0.4
	GlowStep          = 0.1
)

// Ship is the player-controlled spaceship.
type Ship struct {
	X, Y   float64 // Position (center of ship)
	VX, VY float64 // Velocity (momentum)
	Angle  float64 // Heading in radians (0 = pointing right, increases clockwise on screen)
	Radius float64

	// Intents sampled from input at the start of the tick.
	Thrusting    bool
	TurningLeft  bool
	TurningRight bool
	Firing       bool

	// Burning is set when thrust was applied this tick (intent and fuel).
	Burning bool

	LastFired  time.Time // Zero until the first shot
	EngineGlow float64   // Flame intensity in [0, 1]
}

var (
	shipHull = []draw.Point{
		{X: 1, Y: 0},
		{X: -0.7, Y: -0.7},
		{X: -0.3, Y: 0},
		{X: -0.7, Y: 0.7},
	}
	shipFlame = []draw.Point{
		{X: -0.3, Y: 0},
		{X: -1.2, Y: -0.4},
		{X: -1.7, Y: 0},
		{X: -1.2, Y: 0.4},
	}
)

// NewShip creates a ship at rest at the given position.
func NewShip(x, y float64) *Ship {
	s := &Ship{Radius: ShipRadius}
	s.Reset(x, y)
	return s
}

// Reset places the ship at (x, y) at rest, heading right, with no shot history.
func (s *Ship) Reset(x, y float64) {
	*s = Ship{X: x, Y: y, Radius: ShipRadius}
}

// Update handles rotation, thrust, friction, wrapping and shooting.
func (s *Ship) Update(ctx UpdateContext) bool {
	s.Thrusting = ctx.Actions.Has(input.Thrust)
	s.TurningLeft = ctx.Actions.Has(input.TurnLeft)
	s.TurningRight = ctx.Actions.Has(input.TurnRight)
	s.Firing = ctx.Actions.Has(input.Fire)

	if s.TurningLeft {
		s.Angle -= ShipRotationSpeed
	}
	if s.TurningRight {
		s.Angle += ShipRotationSpeed
	}

	s.Burning = s.Thrusting && ctx.Fuel > 0
	if s.Burning {
		s.VX += math.Cos(s.Angle) * ShipAcceleration
		s.VY += math.Sin(s.Angle) * ShipAcceleration

		if ctx.Emitter != nil && ctx.Rand.Chance(TrailChance) {
			s.emitTrail(ctx)
		}
		s.EngineGlow = min(1, s.EngineGlow+GlowStep)
	} else {
		s.EngineGlow = max(0, s.EngineGlow-GlowStep)
	}

	s.VX *= ShipFriction
	s.VY *= ShipFriction

	s.X += s.VX
	s.Y += s.VY
	ctx.Bounds.WrapRadius(&s.X, &s.Y, s.Radius)

	if s.Firing && s.CanFire(ctx.Now) && ctx.Emitter != nil {
		ctx.Emitter.EmitProjectile(s.fire())
		s.LastFired = ctx.Now
	}

	return false
}

// CanFire reports whether the cooldown has elapsed at now.
func (s *Ship) CanFire(now time.Time) bool {
	return s.LastFired.IsZero() || now.Sub(s.LastFired) > FireCooldown
}

// fire builds a projectile at the nose carrying part of the ship's momentum.
func (s *Ship) fire() *Projectile {
	cos, sin := math.Cos(s.Angle), math.Sin(s.Angle)
	nose := s.Radius * 1.2
	return NewProjectile(
		s.X+cos*nose, s.Y+sin*nose,
		cos*MuzzleSpeed+s.VX*MuzzleInheritance,
		sin*MuzzleSpeed+s.VY*MuzzleInheritance,
	)
}

// emitTrail spawns an exhaust particle behind the ship.
func (s *Ship) emitTrail(ctx UpdateContext) {
	back := s.Angle + math.Pi
	dist := s.Radius * 0.8
	r := ctx.Rand
	p := NewParticle(
		s.X+math.Cos(back)*dist,
		s.Y+math.Sin(back)*dist,
		s.VX*0.5+r.Jitter(2),
		s.VY*0.5+r.Jitter(2),
		r.Range(2, 5),
		1,
		HueColor(r.Range(10, 70)),
	)
	ctx.Emitter.EmitParticle(p)
}

// Draw renders the hull as a filled arrowhead and the flame while it glows.
func (s *Ship) Draw(ctx DrawContext) {
	hull := ctx.Canvas.BorrowPoints(len(shipHull))
	transform(hull, shipHull, s.X, s.Y, s.Angle, s.Radius)
	ctx.Canvas.DrawPolygon(hull, true)

	// Terminal cells have no alpha; show the flame once it is mostly lit.
	if s.EngineGlow >= 0.5 {
		flame := ctx.Canvas.BorrowPoints(len(shipFlame))
		transform(flame, shipFlame, s.X, s.Y, s.Angle, s.Radius)
		ctx.Canvas.DrawPolygon(flame, false)
	}
}

// HullPoints returns the hull outline in playfield coordinates.
func (s *Ship) HullPoints() []draw.Point {
	pts := make([]draw.Point, len(shipHull))
	transform(pts, shipHull, s.X, s.Y, s.Angle, s.Radius)
	return pts
}

// FlamePoints returns the exhaust flame outline in playfield coordinates.
func (s *Ship) FlamePoints() []draw.Point {
	pts := make([]draw.Point, len(shipFlame))
	transform(pts, shipFlame, s.X, s.Y, s.Angle, s.Radius)
	return pts
}
