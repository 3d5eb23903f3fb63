package object

import (
	"math"
	"testing"
	"time"

	"github.com/tomz197/wormhole/internal/input"
	"github.com/tomz197/wormhole/internal/physics"
)

type constSource uint64

func (s constSource) Uint64() uint64 { return uint64(s) }

// alwaysRand passes every Chance; neverRand fails every Chance below 1.
func alwaysRand() *physics.Rand { return physics.NewRandSource(constSource(0)) }
func neverRand() *physics.Rand  { return physics.NewRandSource(constSource(math.MaxUint64)) }

type recorder struct {
	projectiles []*Projectile
	particles   []*Particle
	explosions  []*Explosion
}

func (r *recorder) EmitProjectile(p *Projectile) { r.projectiles = append(r.projectiles, p) }
func (r *recorder) EmitParticle(p *Particle)     { r.particles = append(r.particles, p) }
func (r *recorder) EmitExplosion(e *Explosion)   { r.explosions = append(r.explosions, e) }

var testBounds = physics.Bounds{Width: 800, Height: 600}

func shipContext(rnd *physics.Rand, actions input.Actions, fuel float64, now time.Time, em Emitter) UpdateContext {
	return UpdateContext{
		Bounds:  testBounds,
		Rand:    rnd,
		Now:     now,
		Actions: actions,
		Fuel:    fuel,
		Emitter: em,
	}
}

func TestShipThrustGatedByFuel(t *testing.T) {
	now := time.Unix(1000, 0)

	s := NewShip(400, 300)
	s.Update(shipContext(neverRand(), input.Thrust, 0, now, &recorder{}))
	if s.Burning {
		t.Error("ship should not burn without fuel")
	}
	if s.VX != 0 || s.EngineGlow != 0 {
		t.Errorf("empty tank moved ship: vx=%v glow=%v", s.VX, s.EngineGlow)
	}

	s.Update(shipContext(neverRand(), input.Thrust, 5, now, &recorder{}))
	if !s.Burning {
		t.Fatal("ship with fuel should burn")
	}
	if want := ShipAcceleration * ShipFriction; math.Abs(s.VX-want) > 1e-12 {
		t.Errorf("vx = %v, want %v", s.VX, want)
	}
	if math.Abs(s.EngineGlow-GlowStep) > 1e-12 {
		t.Errorf("glow = %v, want %v", s.EngineGlow, GlowStep)
	}
}

func TestShipGlowClamped(t *testing.T) {
	s := NewShip(400, 300)
	now := time.Unix(1000, 0)
	for range 20 {
		s.Update(shipContext(neverRand(), input.Thrust, 50, now, nil))
	}
	if s.EngineGlow != 1 {
		t.Errorf("glow after sustained thrust = %v, want 1", s.EngineGlow)
	}
	for range 20 {
		s.Update(shipContext(neverRand(), 0, 50, now, nil))
	}
	if s.EngineGlow != 0 {
		t.Errorf("glow after coasting = %v, want 0", s.EngineGlow)
	}
}

func TestShipTrailParticle(t *testing.T) {
	rec := &recorder{}
	s := NewShip(400, 300)
	s.Update(shipContext(alwaysRand(), input.Thrust, 10, time.Unix(1000, 0), rec))
	if len(rec.particles) != 1 {
		t.Fatalf("trail particles = %d, want 1", len(rec.particles))
	}
	p := rec.particles[0]
	if p.X >= s.X {
		t.Errorf("trail particle x = %v should be behind the ship at %v", p.X, s.X)
	}
	if p.Life != 1 || p.Radius < 2 || p.Radius >= 5 {
		t.Errorf("trail particle life=%v radius=%v", p.Life, p.Radius)
	}
}

func TestShipRotation(t *testing.T) {
	s := NewShip(400, 300)
	ctx := shipContext(neverRand(), input.TurnLeft, 0, time.Unix(1000, 0), nil)
	s.Update(ctx)
	s.Update(ctx)
	if math.Abs(s.Angle+2*ShipRotationSpeed) > 1e-12 {
		t.Errorf("angle = %v, want %v", s.Angle, -2*ShipRotationSpeed)
	}
	s.Update(shipContext(neverRand(), input.TurnLeft|input.TurnRight, 0, time.Unix(1000, 0), nil))
	if math.Abs(s.Angle+2*ShipRotationSpeed) > 1e-12 {
		t.Errorf("opposing turns should cancel, angle = %v", s.Angle)
	}
}

func TestShipFireCooldown(t *testing.T) {
	rec := &recorder{}
	s := NewShip(400, 300)
	start := time.Unix(1000, 0)

	steps := []struct {
		at   time.Duration
		want int
	}{
		{0, 1},
		{100 * time.Millisecond, 1},
		{300 * time.Millisecond, 1}, // exactly the cooldown is not enough
		{301 * time.Millisecond, 2},
		{500 * time.Millisecond, 2},
		{700 * time.Millisecond, 3},
	}
	for _, step := range steps {
		s.Update(shipContext(neverRand(), input.Fire, 0, start.Add(step.at), rec))
		if got := len(rec.projectiles); got != step.want {
			t.Fatalf("at %v: shots = %d, want %d", step.at, got, step.want)
		}
	}
}

func TestShipMuzzle(t *testing.T) {
	rec := &recorder{}
	s := NewShip(400, 300)
	s.VX = 2
	s.Update(shipContext(neverRand(), input.Fire, 0, time.Unix(1000, 0), rec))
	if len(rec.projectiles) != 1 {
		t.Fatal("expected a shot")
	}
	p := rec.projectiles[0]
	vx := 2 * ShipFriction
	if want := MuzzleSpeed + vx*MuzzleInheritance; math.Abs(p.VX-want) > 1e-9 {
		t.Errorf("projectile vx = %v, want %v", p.VX, want)
	}
	if want := s.X + ShipRadius*1.2; math.Abs(p.X-want) > 1e-9 {
		t.Errorf("projectile x = %v, want %v", p.X, want)
	}
	if p.Life != ProjectileLifetime || p.Radius != ProjectileRadius {
		t.Errorf("projectile life=%d radius=%v", p.Life, p.Radius)
	}
}

func TestShipWrapsByRadius(t *testing.T) {
	s := NewShip(-ShipRadius+0.5, 300)
	s.VX = -1 / ShipFriction
	s.Update(shipContext(neverRand(), 0, 0, time.Unix(1000, 0), nil))
	if s.X != testBounds.Width+ShipRadius {
		t.Errorf("x = %v, want %v", s.X, testBounds.Width+ShipRadius)
	}
	if s.VX >= 0 {
		t.Error("wrapping must not change velocity")
	}
}

func TestProjectileLifetime(t *testing.T) {
	p := NewProjectile(10, 10, 1, 0)
	ctx := UpdateContext{Bounds: testBounds, Rand: neverRand()}
	for i := 1; i < ProjectileLifetime; i++ {
		if p.Update(ctx) {
			t.Fatalf("removed early at tick %d", i)
		}
	}
	if !p.Update(ctx) {
		t.Errorf("projectile should expire after %d ticks", ProjectileLifetime)
	}
}

func TestProjectileEdgeWrapAndTrail(t *testing.T) {
	rec := &recorder{}
	p := NewProjectile(799, 10, 5, 0)
	p.Update(UpdateContext{Bounds: testBounds, Rand: alwaysRand(), Emitter: rec})
	if p.X != 0 {
		t.Errorf("x = %v, want 0 after edge wrap", p.X)
	}
	if len(rec.particles) != 1 || rec.particles[0].Life != 0.5 {
		t.Errorf("trail particles = %d", len(rec.particles))
	}

	p.MarkDestroyed()
	if !p.Update(UpdateContext{Bounds: testBounds, Rand: neverRand()}) {
		t.Error("expired projectile should be removed")
	}
}

func TestNewAsteroidShape(t *testing.T) {
	r := physics.NewRand(7)
	for range 200 {
		a := NewAsteroid(r, 100, 100)
		if a.Radius < AsteroidMinSize || a.Radius >= AsteroidMaxSize {
			t.Fatalf("radius %v out of range", a.Radius)
		}
		if n := len(a.Shape); n < AsteroidMinVertices || n > AsteroidMaxVertices {
			t.Fatalf("vertex count %d out of range", n)
		}
		for i, v := range a.Shape {
			d := math.Hypot(v.X, v.Y)
			if d < a.Radius*0.8-1e-9 || d > a.Radius*1.2+1e-9 {
				t.Fatalf("vertex %d at %v, radius %v", i, d, a.Radius)
			}
			want := float64(i) / float64(len(a.Shape)) * 2 * math.Pi
			got := math.Atan2(v.Y, v.X)
			if got < 0 {
				got += 2 * math.Pi
			}
			if math.Abs(got-want) > 1e-9 {
				t.Fatalf("vertex %d angle %v, want %v", i, got, want)
			}
		}
		if want := int(a.Radius/10) + 1; a.Health != want {
			t.Fatalf("health %d, want %d", a.Health, want)
		}
		if math.Abs(a.VX) > 1 || math.Abs(a.VY) > 1 || math.Abs(a.RotationSpeed) > 0.01 {
			t.Fatalf("drift out of range: %+v", a)
		}
	}
}

func TestAsteroidHit(t *testing.T) {
	a := &Asteroid{Health: 2}
	if a.Hit() {
		t.Error("destroyed with health left")
	}
	if a.Health != 1 {
		t.Errorf("health = %d, want 1", a.Health)
	}
	if !a.Hit() || !a.IsDestroyed() {
		t.Error("asteroid should be destroyed at zero health")
	}
}

func TestPickupPulseWraps(t *testing.T) {
	p := &Pickup{Pulse: 2*math.Pi - 0.01, PulseSpeed: 0.05}
	p.Update(UpdateContext{})
	if p.Pulse < 0 || p.Pulse >= 2*math.Pi {
		t.Errorf("pulse = %v, want wrapped into [0, 2π)", p.Pulse)
	}
	if math.Abs(p.Pulse-0.04) > 1e-9 {
		t.Errorf("pulse = %v, want 0.04", p.Pulse)
	}
}

func TestNewPickupValue(t *testing.T) {
	r := physics.NewRand(3)
	seen := map[int]bool{}
	for range 300 {
		p := NewPickup(r, 0, 0)
		if p.Value < 1 || p.Value > 3 {
			t.Fatalf("value %d out of range", p.Value)
		}
		if p.PulseSpeed < 0.05 || p.PulseSpeed >= 0.08 {
			t.Fatalf("pulse speed %v out of range", p.PulseSpeed)
		}
		seen[p.Value] = true
	}
	if len(seen) != 3 {
		t.Errorf("values seen = %v, want all of 1..3", seen)
	}
}

func TestPortalSwirl(t *testing.T) {
	p := NewPortal(400, 300)
	p.Update(UpdateContext{Rand: alwaysRand()})
	if len(p.Swirl) != 1 {
		t.Fatalf("swirl = %d, want 1", len(p.Swirl))
	}
	s := p.Swirl[0]
	if d := math.Hypot(s.X, s.Y); d >= p.Radius {
		t.Errorf("mote should move inward from the rim, dist = %v", d)
	}

	// Motes near the center collapse.
	p.Swirl = []SwirlParticle{{X: 3, Y: 0, Life: 1, Speed: 0.02}}
	p.Update(UpdateContext{Rand: neverRand()})
	if len(p.Swirl) != 0 {
		t.Errorf("mote inside collapse radius should be removed")
	}

	// Motes fade out.
	p.Swirl = []SwirlParticle{{X: 30, Y: 0, Life: 0.005, Speed: 0.02}}
	p.Update(UpdateContext{Rand: neverRand()})
	if len(p.Swirl) != 0 {
		t.Errorf("faded mote should be removed")
	}
}

func TestParticleAndExplosionDecay(t *testing.T) {
	p := NewParticle(0, 0, 1, 1, 3, 1, ImpactColor)
	ticks := 0
	for !p.Update(UpdateContext{}) {
		ticks++
	}
	if ticks < 48 || ticks > 50 {
		t.Errorf("particle lived %d ticks, want ~50", ticks)
	}

	e := &Explosion{Radius: 5, Speed: 1.5, Life: 1}
	ticks = 0
	for !e.Update(UpdateContext{}) {
		ticks++
	}
	if ticks < 18 || ticks > 20 {
		t.Errorf("explosion lived %d ticks, want ~20", ticks)
	}
	if e.Radius <= 5 {
		t.Error("explosion should grow")
	}
}

func TestBurst(t *testing.T) {
	rec := &recorder{}
	Burst(rec, physics.NewRand(1), 10, 20, 15, 1.5, ShipHitColor)
	if len(rec.particles) != 15 || len(rec.explosions) != 1 {
		t.Fatalf("burst = %d particles, %d explosions", len(rec.particles), len(rec.explosions))
	}
	if e := rec.explosions[0]; e.Radius != 5 || e.Speed != 2.25 || e.Color != ShipHitColor {
		t.Errorf("explosion = %+v", e)
	}
	for _, p := range rec.particles {
		if p.Radius < 3 || p.Radius >= 6 || math.Abs(p.VX) > 2.5 {
			t.Fatalf("particle out of range: %+v", p)
		}
	}
	Burst(nil, physics.NewRand(1), 0, 0, 3, 1, ImpactColor)
}

func TestHueColor(t *testing.T) {
	c := HueColor(0)
	if c.R != 255 || c.A != 255 || c.G != c.B {
		t.Errorf("HueColor(0) = %+v, want a light red", c)
	}
}

func TestStarsTwinkleAndDrift(t *testing.T) {
	stars := GenerateStars(physics.NewRand(1), testBounds)
	if len(stars) != 480 {
		t.Fatalf("stars = %d, want 480", len(stars))
	}

	s := &Star{X: 0.005, Y: 10, Brightness: 0.1, Twinkle: 0.02}
	s.Update(UpdateContext{Bounds: testBounds, Now: time.Unix(1000, 0), ShipVX: 1})
	if s.Brightness < StarMinBrightness || s.Brightness > 1 {
		t.Errorf("brightness = %v, want clamped", s.Brightness)
	}
	if s.X != testBounds.Width {
		t.Errorf("x = %v, want wrapped to %v", s.X, testBounds.Width)
	}
}
