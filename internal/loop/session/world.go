package session

import (
	"github.com/tomz197/wormhole/internal/object"
)

// World holds one homogeneous store per entity category plus the ship.
// Entities emitted while other entities update are queued and added by
// FlushSpawned, so stores are never appended to while being iterated.
type World struct {
	Ship        *object.Ship
	Projectiles []*object.Projectile
	Asteroids   []*object.Asteroid
	Pickups     []*object.Pickup
	Portals     []*object.Portal
	Particles   []*object.Particle
	Explosions  []*object.Explosion
	Stars       []*object.Star

	// Objects to add after the current update cycle
	pendingProjectiles []*object.Projectile
	pendingParticles   []*object.Particle
	pendingExplosions  []*object.Explosion
}

// Compile-time check that World implements object.Emitter.
var _ object.Emitter = (*World)(nil)

// NewWorld creates an empty world with the ship at (x, y).
func NewWorld(x, y float64) *World {
	return &World{Ship: object.NewShip(x, y)}
}

// EmitProjectile queues a projectile (implements object.Emitter).
func (w *World) EmitProjectile(p *object.Projectile) {
	w.pendingProjectiles = append(w.pendingProjectiles, p)
}

// EmitParticle queues a particle (implements object.Emitter).
func (w *World) EmitParticle(p *object.Particle) {
	w.pendingParticles = append(w.pendingParticles, p)
}

// EmitExplosion queues a shockwave (implements object.Emitter).
func (w *World) EmitExplosion(e *object.Explosion) {
	w.pendingExplosions = append(w.pendingExplosions, e)
}

// FlushSpawned adds all queued objects to their stores and clears the queues.
func (w *World) FlushSpawned() {
	w.Projectiles = append(w.Projectiles, w.pendingProjectiles...)
	w.Particles = append(w.Particles, w.pendingParticles...)
	w.Explosions = append(w.Explosions, w.pendingExplosions...)

	w.pendingProjectiles = reset(w.pendingProjectiles)
	w.pendingParticles = reset(w.pendingParticles)
	w.pendingExplosions = reset(w.pendingExplosions)
}

// clearLevel drops the entities that do not survive a level transition.
func (w *World) clearLevel() {
	w.Asteroids = reset(w.Asteroids)
	w.Pickups = reset(w.Pickups)
	w.Portals = reset(w.Portals)
}

// clearAll drops every dynamic entity, including queued ones.
func (w *World) clearAll() {
	w.clearLevel()
	for _, p := range w.Particles {
		p.Release()
	}
	w.Particles = reset(w.Particles)
	w.Projectiles = reset(w.Projectiles)
	w.Explosions = reset(w.Explosions)
	w.pendingProjectiles = reset(w.pendingProjectiles)
	w.pendingParticles = reset(w.pendingParticles)
	w.pendingExplosions = reset(w.pendingExplosions)
}

// reset empties a store while keeping its backing array.
func reset[T any](items []T) []T {
	clear(items)
	return items[:0]
}

// stepAll updates every item and drops the ones that ask to be removed,
// compacting in place.
func stepAll[T object.Object](items []T, ctx object.UpdateContext) []T {
	kept := items[:0]
	for _, it := range items {
		if it.Update(ctx) {
			object.ReleaseObject(it)
			continue
		}
		kept = append(kept, it)
	}
	clear(items[len(kept):])
	return kept
}

// compact drops entities marked during collision resolution.
func compact[T object.Destructible](items []T) []T {
	kept := items[:0]
	for _, it := range items {
		if it.IsDestroyed() {
			object.ReleaseObject(it)
			continue
		}
		kept = append(kept, it)
	}
	clear(items[len(kept):])
	return kept
}
