// Package session runs one single-player game: spawning, simulation,
// collision resolution and level progression, one tick at a time.
package session

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/wormhole/internal/input"
	"github.com/tomz197/wormhole/internal/loop/config"
	"github.com/tomz197/wormhole/internal/object"
	"github.com/tomz197/wormhole/internal/physics"
)

// Options configures a Session. Zero values select defaults.
type Options struct {
	Bounds physics.Bounds // Playfield; defaults to DefaultViewWidth x DefaultViewHeight
	Rand   *physics.Rand  // Defaults to a time-seeded source
	Clock  Clock          // Defaults to SystemClock
	Logger *log.Logger    // Defaults to discarding output
}

// Session owns the state and entity stores of one game. It is not safe for
// concurrent use; callers drive Tick, Resize and Snapshot from one goroutine.
type Session struct {
	state   State
	world   *World
	spawner *Spawner
	grid    *physics.SpatialGrid
	bounds  physics.Bounds
	rand    *physics.Rand
	clock   Clock
	log     *log.Logger

	banner      string
	bannerUntil time.Time

	events []Event
}

// Snapshot is a read-only view of a session for presentation.
// The entity pointers are shared with the session: do not mutate them, and
// do not keep them past the next Tick.
type Snapshot struct {
	State       State
	Bounds      physics.Bounds
	Ship        object.Ship
	Projectiles []*object.Projectile
	Asteroids   []*object.Asteroid
	Pickups     []*object.Pickup
	Portals     []*object.Portal
	Particles   []*object.Particle
	Explosions  []*object.Explosion
	Stars       []*object.Star
	Banner      string // Empty when no notification is live
}

// New creates a session waiting to be started.
func New(opts Options) *Session {
	if opts.Bounds.Width <= 0 || opts.Bounds.Height <= 0 {
		opts.Bounds = physics.Bounds{Width: config.DefaultViewWidth, Height: config.DefaultViewHeight}
	}
	if opts.Rand == nil {
		opts.Rand = physics.NewRand(uint64(time.Now().UnixNano()))
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	cx, cy := opts.Bounds.Center()
	world := NewWorld(cx, cy)
	s := &Session{
		state:   State{Phase: PhaseNotStarted, Level: 1, Health: config.MaxHealth, Fuel: config.MaxFuel},
		world:   world,
		spawner: NewSpawner(world, opts.Rand, opts.Logger, opts.Bounds),
		grid:    physics.NewSpatialGrid(opts.Bounds, config.CollisionGridMargin, config.CollisionGridCell),
		bounds:  opts.Bounds,
		rand:    opts.Rand,
		clock:   opts.Clock,
		log:     opts.Logger,
	}
	world.Stars = object.GenerateStars(s.rand, s.bounds)
	return s
}

// Start begins a fresh run: default resources, level 1, a recentered ship
// and the initial populations.
func (s *Session) Start() {
	s.state = newState()
	s.world.clearAll()

	cx, cy := s.bounds.Center()
	s.world.Ship.Reset(cx, cy)
	s.world.Stars = object.GenerateStars(s.rand, s.bounds)

	s.spawner.SpawnAsteroids(asteroidFloor(s.state.Level))
	s.spawner.SpawnPickups(pickupFloor(s.state.Level))

	s.banner = ""
	s.bannerUntil = time.Time{}
	s.log.Info("session started", "width", s.bounds.Width, "height", s.bounds.Height)
}

// Restart is an alias of Start.
func (s *Session) Restart() {
	s.Start()
}

// Tick runs one frame: top-up, simulation step, collisions and the terminal
// check. It is a no-op unless the session is running. The returned events
// are only valid until the next Tick.
func (s *Session) Tick(actions input.Actions) []Event {
	s.events = s.events[:0]
	if s.state.Phase != PhaseRunning {
		return nil
	}
	s.state.Tick++
	now := s.clock.Now()

	s.spawner.TopUp(s.state.Level)
	s.spawner.MaybeSpawnPortal()

	s.step(now, actions)

	alive := s.resolveCollisions()
	s.world.FlushSpawned()

	if !alive || s.state.Health <= 0 {
		s.endGame()
	}
	return s.events
}

// levelUp advances to the next level with a fresh field.
func (s *Session) levelUp() {
	s.state.Level++
	level := s.state.Level

	s.world.clearLevel()
	s.spawner.SpawnAsteroids(asteroidFloor(level))
	s.spawner.SpawnPickups(pickupFloor(level))

	s.state.heal(config.LevelHeal)
	s.state.Fuel = config.MaxFuel
	bonus := level * config.LevelBonus
	s.state.Score += bonus

	s.banner = fmt.Sprintf("Level %d", level)
	s.bannerUntil = s.clock.Now().Add(config.BannerDuration)

	s.emit(Event{Type: EventLevelUp, Points: bonus})
	s.log.Info("level up", "level", level, "score", s.state.Score)
}

// endGame freezes the simulation until the next Start.
func (s *Session) endGame() {
	s.state.Phase = PhaseGameOver
	s.emit(Event{Type: EventGameOver, Points: s.state.Score})
	s.log.Info("game over", "score", s.state.Score, "level", s.state.Level, "ticks", s.state.Tick)
}

// Resize replaces the playfield. Pickups and portals are pulled inside the new
// bounds; the star field is regenerated while no run is in progress.
func (s *Session) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	b := physics.Bounds{Width: width, Height: height}
	if b == s.bounds {
		return
	}
	s.bounds = b
	s.spawner.SetBounds(b)
	s.grid = physics.NewSpatialGrid(b, config.CollisionGridMargin, config.CollisionGridCell)

	for _, p := range s.world.Pickups {
		b.Clamp(&p.X, &p.Y)
	}
	for _, p := range s.world.Portals {
		b.Clamp(&p.X, &p.Y)
	}

	if s.state.Phase != PhaseRunning {
		s.world.Stars = object.GenerateStars(s.rand, b)
	}
	s.log.Debug("resize", "width", width, "height", height, "phase", s.state.Phase)
}

// Snapshot returns a read-only copy of every store and the session state.
func (s *Session) Snapshot() Snapshot {
	w := s.world
	banner, _ := s.Notification()
	return Snapshot{
		State:       s.state,
		Bounds:      s.bounds,
		Ship:        *w.Ship,
		Projectiles: slices.Clone(w.Projectiles),
		Asteroids:   slices.Clone(w.Asteroids),
		Pickups:     slices.Clone(w.Pickups),
		Portals:     slices.Clone(w.Portals),
		Particles:   slices.Clone(w.Particles),
		Explosions:  slices.Clone(w.Explosions),
		Stars:       slices.Clone(w.Stars),
		Banner:      banner,
	}
}

// Notification returns the level banner text and whether it is still live.
func (s *Session) Notification() (string, bool) {
	if s.banner == "" || !s.clock.Now().Before(s.bannerUntil) {
		return "", false
	}
	return s.banner, true
}

// State returns the current score and resource ledger.
func (s *Session) State() State {
	return s.state
}

// Bounds returns the current playfield.
func (s *Session) Bounds() physics.Bounds {
	return s.bounds
}
