package session

import (
	"math"

	"github.com/tomz197/wormhole/internal/loop/config"
	"github.com/tomz197/wormhole/internal/object"
	"github.com/tomz197/wormhole/internal/physics"
)

// resolveCollisions runs the pairwise passes in their fixed order.
// Returns false once the ship is out of health; later passes are skipped.
func (s *Session) resolveCollisions() bool {
	s.checkProjectileAsteroidCollisions()
	if !s.checkShipAsteroidCollisions() {
		return false
	}
	s.checkShipPickupCollisions()
	s.checkShipPortalCollisions()
	return true
}

// checkProjectileAsteroidCollisions lets each projectile damage at most one
// asteroid. Projectiles are processed newest first and, among overlapping
// asteroids, the one stored last is hit.
func (s *Session) checkProjectileAsteroidCollisions() {
	w := s.world
	if len(w.Projectiles) == 0 || len(w.Asteroids) == 0 {
		return
	}

	s.grid.Clear()
	for i, a := range w.Asteroids {
		s.grid.Insert(i, a.X, a.Y, a.Radius)
	}

	for i := len(w.Projectiles) - 1; i >= 0; i-- {
		p := w.Projectiles[i]
		if p.IsDestroyed() {
			continue
		}

		hit := -1
		for j := range s.grid.Overlapping(p.X, p.Y, p.Radius) {
			if j > hit && !w.Asteroids[j].IsDestroyed() {
				hit = j
			}
		}
		if hit < 0 {
			continue
		}

		a := w.Asteroids[hit]
		p.MarkDestroyed()
		object.Burst(w, s.rand, p.X, p.Y, 10, 1, object.ImpactColor)

		if a.Hit() {
			s.destroyAsteroid(a)
		}
	}

	w.Projectiles = compact(w.Projectiles)
	w.Asteroids = compact(w.Asteroids)
}

// destroyAsteroid scores a destroyed asteroid and may leave a pickup behind.
func (s *Session) destroyAsteroid(a *object.Asteroid) {
	w := s.world
	object.Burst(w, s.rand, a.X, a.Y, 20, 1.5, object.DestroyColor)

	points := int(math.Floor(a.Radius / config.ScoreDivisor))
	s.state.Score += points
	s.emit(Event{Type: EventAsteroidDestroyed, Points: points, X: a.X, Y: a.Y})

	if s.rand.Chance(config.DropChance) {
		x, y := a.X, a.Y
		s.bounds.Clamp(&x, &y)
		w.Pickups = append(w.Pickups, object.NewPickup(s.rand, x, y))
	}
}

// checkShipAsteroidCollisions damages the ship and knocks both bodies apart.
// Returns false if the ship ran out of health, stopping the pass.
func (s *Session) checkShipAsteroidCollisions() bool {
	w := s.world
	ship := w.Ship

	for i := len(w.Asteroids) - 1; i >= 0; i-- {
		a := w.Asteroids[i]
		if !physics.CirclesOverlap(ship.X, ship.Y, ship.Radius, a.X, a.Y, a.Radius*config.HitRadiusScale) {
			continue
		}

		s.state.damage(config.CollisionDamage)

		dx, dy := physics.Direction(a.X, a.Y, ship.X, ship.Y)
		ship.VX += dx * config.ShipKnockback
		ship.VY += dy * config.ShipKnockback
		a.VX -= dx * config.AsteroidKnockback
		a.VY -= dy * config.AsteroidKnockback

		object.Burst(w, s.rand, ship.X, ship.Y, 15, 1, object.ShipHitColor)
		s.emit(Event{Type: EventShipHit, X: ship.X, Y: ship.Y})

		if s.state.Health <= 0 {
			return false
		}
	}
	return true
}

// checkShipPickupCollisions collects every pickup the ship touches.
func (s *Session) checkShipPickupCollisions() {
	w := s.world
	ship := w.Ship
	collected := false

	for i := len(w.Pickups) - 1; i >= 0; i-- {
		p := w.Pickups[i]
		if !physics.CirclesOverlap(ship.X, ship.Y, ship.Radius, p.X, p.Y, p.Radius) {
			continue
		}

		points := p.Value * config.PickupScore
		s.state.Score += points
		s.state.refuel(config.PickupRefuel)
		object.Burst(w, s.rand, p.X, p.Y, 15, 1, object.CollectColor)
		s.emit(Event{Type: EventPickupCollected, Points: points, X: p.X, Y: p.Y})

		p.MarkDestroyed()
		collected = true
	}

	if collected {
		w.Pickups = compact(w.Pickups)
	}
}

// checkShipPortalCollisions advances the level when the ship enters a portal.
func (s *Session) checkShipPortalCollisions() {
	w := s.world
	ship := w.Ship

	for _, p := range w.Portals {
		if physics.CirclesOverlap(ship.X, ship.Y, ship.Radius, p.X, p.Y, p.Radius*config.HitRadiusScale) {
			p.MarkDestroyed()
			s.levelUp()
			return
		}
	}
}
