package object

import (
	"math"

	"github.com/tomz197/wormhole/internal/physics"
)

// Star twinkle and parallax tuning.
const (
	StarMinBrightness = 0.3
	StarParallax      = 0.01
	StarDensity       = 1000.0 // Area units per star
)

// Star is a background point that twinkles and drifts against the ship.
type Star struct {
	X, Y       float64
	Radius     float64
	Brightness float64
	Twinkle    float64 // Angular rate applied to wall-clock milliseconds
}

// GenerateStars fills the playfield with one star per StarDensity area units.
func GenerateStars(r *physics.Rand, b physics.Bounds) []*Star {
	n := int(math.Floor(b.Area() / StarDensity))
	stars := make([]*Star, n)
	for i := range stars {
		stars[i] = &Star{
			X:          r.Float64() * b.Width,
			Y:          r.Float64() * b.Height,
			Radius:     r.Float64() * 1.5,
			Brightness: r.Float64(),
			Twinkle:    r.Range(0.01, 0.04),
		}
	}
	return stars
}

// Update twinkles and drifts the star. Stars are never removed.
func (s *Star) Update(ctx UpdateContext) bool {
	ms := float64(ctx.Now.UnixMilli())
	s.Brightness += math.Sin(ms*s.Twinkle) * 0.01
	s.Brightness = max(StarMinBrightness, min(1, s.Brightness))

	s.X -= ctx.ShipVX * StarParallax
	s.Y -= ctx.ShipVY * StarParallax
	ctx.Bounds.WrapEdge(&s.X, &s.Y)
	return false
}

// Draw renders bright stars as single pixels.
func (s *Star) Draw(ctx DrawContext) {
	if s.Brightness < 0.5 {
		return
	}
	ctx.Canvas.SetFloat(s.X, s.Y)
}
