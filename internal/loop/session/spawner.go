package session

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/tomz197/wormhole/internal/loop/config"
	"github.com/tomz197/wormhole/internal/object"
	"github.com/tomz197/wormhole/internal/physics"
)

// Spawner places asteroids, pickups and portals away from the ship.
type Spawner struct {
	world  *World
	rand   *physics.Rand
	log    *log.Logger
	bounds physics.Bounds
}

// NewSpawner creates a spawner populating w inside bounds.
// A nil logger discards output.
func NewSpawner(w *World, r *physics.Rand, logger *log.Logger, bounds physics.Bounds) *Spawner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Spawner{world: w, rand: r, log: logger, bounds: bounds}
}

// SetBounds changes the playfield new entities are placed in.
func (sp *Spawner) SetBounds(b physics.Bounds) {
	sp.bounds = b
}

// SpawnAsteroids adds n asteroids at least AsteroidExclusion from the ship.
func (sp *Spawner) SpawnAsteroids(n int) {
	for range n {
		x, y := sp.place(config.AsteroidExclusion, "asteroid")
		sp.world.Asteroids = append(sp.world.Asteroids, object.NewAsteroid(sp.rand, x, y))
	}
}

// SpawnPickups adds n pickups at least PickupExclusion from the ship.
func (sp *Spawner) SpawnPickups(n int) {
	for range n {
		x, y := sp.place(config.PickupExclusion, "pickup")
		sp.world.Pickups = append(sp.world.Pickups, object.NewPickup(sp.rand, x, y))
	}
}

// MaybeSpawnPortal rolls for a portal while none exists.
// Returns true if a portal was created.
func (sp *Spawner) MaybeSpawnPortal() bool {
	if len(sp.world.Portals) > 0 || !sp.rand.Chance(config.PortalChance) {
		return false
	}
	x, y := sp.place(config.PortalExclusion, "portal")
	sp.world.Portals = append(sp.world.Portals, object.NewPortal(x, y))
	sp.log.Debug("portal opened", "x", x, "y", y)
	return true
}

// TopUp adds at most one asteroid and one pickup when below the level floors.
func (sp *Spawner) TopUp(level int) {
	if len(sp.world.Asteroids) < asteroidFloor(level) {
		sp.SpawnAsteroids(1)
	}
	if len(sp.world.Pickups) < pickupFloor(level) {
		sp.SpawnPickups(1)
	}
}

// place samples positions until one is at least exclusion away from the ship.
// After SpawnMaxAttempts it falls back to the last candidate.
func (sp *Spawner) place(exclusion float64, kind string) (x, y float64) {
	ship := sp.world.Ship
	for range config.SpawnMaxAttempts {
		x = sp.rand.Float64() * sp.bounds.Width
		y = sp.rand.Float64() * sp.bounds.Height
		if physics.Distance(x, y, ship.X, ship.Y) >= exclusion {
			return x, y
		}
	}
	sp.log.Debug("spawn fallback", "kind", kind, "attempts", config.SpawnMaxAttempts)
	return x, y
}
