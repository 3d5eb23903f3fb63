package object

import (
	"math"
)

// Portal tuning.
const (
	PortalRadius        = 40.0
	PortalOuterRadius   = 60.0
	PortalRotation      = 0.01
	PortalPulse         = 0.03
	SwirlChance         = 0.3
	SwirlDecay          = 0.01
	SwirlCollapseRadius = 5.0
)

// SwirlParticle is a decorative mote spiralling into a portal, in portal-local
// coordinates.
type SwirlParticle struct {
	X, Y  float64
	Life  float64
	Speed float64
}

// Portal is the wormhole that advances the level on contact.
type Portal struct {
	X, Y        float64
	Radius      float64
	OuterRadius float64
	Angle       float64
	Pulse       float64
	Swirl       []SwirlParticle
	Consumed    bool
}

// NewPortal creates a portal at (x, y).
func NewPortal(x, y float64) *Portal {
	return &Portal{
		X:           x,
		Y:           y,
		Radius:      PortalRadius,
		OuterRadius: PortalOuterRadius,
	}
}

// Update rotates and pulses the portal and animates its swirl.
func (p *Portal) Update(ctx UpdateContext) bool {
	if p.Consumed {
		return true
	}

	p.Angle += PortalRotation
	p.Pulse = advancePhase(p.Pulse, PortalPulse)

	if ctx.Rand.Chance(SwirlChance) {
		a := ctx.Rand.Angle()
		dist := p.Radius + ctx.Rand.Float64()*20
		p.Swirl = append(p.Swirl, SwirlParticle{
			X:     math.Cos(a) * dist,
			Y:     math.Sin(a) * dist,
			Life:  1,
			Speed: ctx.Rand.Range(0.01, 0.03),
		})
	}

	kept := p.Swirl[:0]
	for _, s := range p.Swirl {
		dist := math.Hypot(s.X, s.Y)
		// Motes accelerate as they fall inside the rim.
		speed := s.Speed * (1 + (p.Radius-dist)/10)
		if dist > 0 {
			s.X -= s.X / dist * speed
			s.Y -= s.Y / dist * speed
		}
		s.Life -= SwirlDecay
		if s.Life <= 0 || dist < SwirlCollapseRadius {
			continue
		}
		kept = append(kept, s)
	}
	p.Swirl = kept

	return false
}

// Scale returns the current pulse size multiplier.
func (p *Portal) Scale() float64 {
	return 1 + math.Sin(p.Pulse)*0.2
}

// Draw renders the rim, the event horizon and the swirl motes.
func (p *Portal) Draw(ctx DrawContext) {
	scale := p.Scale()
	center := pointOf(p.X, p.Y)
	ctx.Canvas.DrawCircle(center, p.OuterRadius*scale)
	ctx.Canvas.DrawCircle(center, p.Radius*scale)

	for i := range 5 {
		a := p.Angle*2 + float64(i)/5*2*math.Pi
		r := p.Radius * scale * 0.8
		ctx.Canvas.SetFloat(p.X+math.Cos(a)*r, p.Y+math.Sin(a)*r)
	}

	cos, sin := math.Cos(p.Angle), math.Sin(p.Angle)
	for _, s := range p.Swirl {
		ctx.Canvas.SetFloat(p.X+s.X*cos-s.Y*sin, p.Y+s.X*sin+s.Y*cos)
	}
}

// MarkDestroyed marks the portal as consumed.
func (p *Portal) MarkDestroyed() {
	p.Consumed = true
}

// IsDestroyed returns true once the portal has been entered.
func (p *Portal) IsDestroyed() bool {
	return p.Consumed
}
