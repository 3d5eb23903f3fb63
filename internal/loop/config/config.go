// Package config centralizes all tunable game parameters.
package config

import "time"

// Terminal rendering. Each column covers UnitsPerColumn logical units and each
// row UnitsPerRow, so a half-block sub-pixel is square.
const (
	UnitsPerColumn = 8
	UnitsPerRow    = 16
	MaxTermWidth   = 200 // Columns rendered before the canvas is centered
	MaxTermHeight  = 60  // Rows rendered before the canvas is centered
)

// Session resources.
const (
	MaxHealth       = 100
	MaxFuel         = 100.0
	FuelDrain       = 0.1 // Per thrusting tick
	CollisionDamage = 10
	PickupRefuel    = 20.0
	PickupScore     = 10 // Multiplied by pickup value
	LevelHeal       = 20
	LevelBonus      = 50 // Multiplied by the new level
	ScoreDivisor    = 5  // Asteroid score is floor(radius / ScoreDivisor)
)

// Knockback impulses along the asteroid-to-ship axis.
const (
	ShipKnockback     = 3.0
	AsteroidKnockback = 1.5
)

// Collision radii are scaled down to approximate irregular silhouettes.
const HitRadiusScale = 0.7

// Spawning
const (
	AsteroidBase        = 5 // Floor is AsteroidBase + level
	PickupBase          = 3 // Floor is PickupBase + level/2
	AsteroidExclusion   = 200.0
	PickupExclusion     = 150.0
	PortalExclusion     = 300.0
	SpawnMaxAttempts    = 32
	DropChance          = 0.3
	PortalChance        = 0.003
	CollisionGridCell   = 64.0
	CollisionGridMargin = 64.0
	DefaultViewWidth    = 800.0
	DefaultViewHeight   = 600.0
)

// Presentation
const (
	BannerDuration      = 3 * time.Second
	RestartDelaySeconds = 1.0 // Game over screen ignores confirm keys this long
	FallbackTermWidth   = 80  // Used until the first successful size query
	FallbackTermHeight  = 24
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)
