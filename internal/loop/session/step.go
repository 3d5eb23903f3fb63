package session

import (
	"time"

	"github.com/tomz197/wormhole/internal/input"
	"github.com/tomz197/wormhole/internal/loop/config"
	"github.com/tomz197/wormhole/internal/object"
)

// step advances every entity one tick. Entities emitted along the way join
// their stores before collision resolution.
func (s *Session) step(now time.Time, actions input.Actions) {
	w := s.world
	ctx := object.UpdateContext{
		Bounds:  s.bounds,
		Rand:    s.rand,
		Now:     now,
		Actions: actions,
		Fuel:    s.state.Fuel,
		Emitter: w,
	}

	w.Ship.Update(ctx)
	if w.Ship.Burning {
		s.state.burnFuel(config.FuelDrain)
	}

	w.Projectiles = stepAll(w.Projectiles, ctx)
	w.Asteroids = stepAll(w.Asteroids, ctx)
	w.Pickups = stepAll(w.Pickups, ctx)
	w.Portals = stepAll(w.Portals, ctx)
	w.Particles = stepAll(w.Particles, ctx)
	w.Explosions = stepAll(w.Explosions, ctx)

	ctx.ShipVX, ctx.ShipVY = w.Ship.VX, w.Ship.VY
	w.Stars = stepAll(w.Stars, ctx)

	w.FlushSpawned()
}
