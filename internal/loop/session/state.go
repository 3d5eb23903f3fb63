package session

import (
	"github.com/tomz197/wormhole/internal/loop/config"
)

// Phase is the lifecycle stage of a session.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// State is the per-session score and resource ledger.
// Health and fuel are clamped to [0, 100] wherever they change.
type State struct {
	Score  int
	Health int
	Fuel   float64
	Level  int
	Phase  Phase
	Tick   uint64 // Ticks simulated since the last start
}

// newState returns the state a fresh run starts with.
func newState() State {
	return State{
		Health: config.MaxHealth,
		Fuel:   config.MaxFuel,
		Level:  1,
		Phase:  PhaseRunning,
	}
}

// HealthPercent returns the health bar fill in [0, 100].
func (s State) HealthPercent() float64 {
	return float64(s.Health) / config.MaxHealth * 100
}

// AsteroidFloor is the asteroid population kept alive at the current level.
func (s State) AsteroidFloor() int {
	return asteroidFloor(s.Level)
}

// PickupFloor is the pickup population kept alive at the current level.
func (s State) PickupFloor() int {
	return pickupFloor(s.Level)
}

func asteroidFloor(level int) int {
	return config.AsteroidBase + level
}

func pickupFloor(level int) int {
	return config.PickupBase + level/2
}

func (s *State) damage(n int) {
	s.Health = max(0, s.Health-n)
}

func (s *State) heal(n int) {
	s.Health = min(config.MaxHealth, s.Health+n)
}

func (s *State) refuel(f float64) {
	s.Fuel = min(config.MaxFuel, s.Fuel+f)
}

func (s *State) burnFuel(f float64) {
	s.Fuel = max(0, s.Fuel-f)
}
