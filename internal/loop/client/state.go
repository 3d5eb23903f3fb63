package client

import (
	"time"

	"github.com/tomz197/wormhole/internal/input"
)

// Screen is the client's UI phase. It mirrors the session phase plus the
// screens that only exist on the terminal side.
type Screen int

const (
	ScreenTitle    Screen = iota // Title art and controls
	ScreenPlaying                // Active run with HUD
	ScreenGameOver               // Final score, restart prompt
	ScreenShutdown               // Host is going away
)

func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenPlaying:
		return "playing"
	case ScreenGameOver:
		return "game over"
	case ScreenShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// ClientState holds the per-connection UI state.
type ClientState struct {
	Input         input.Input
	Screen        Screen
	prevScreen    Screen
	Running       bool          // Client loop running
	delta         time.Duration // Frame delta time
	shutdownTimer float64       // Countdown before auto-disconnect on shutdown
	isInactive    bool          // Inactivity warning showing
	wasInactive   bool
	finalScore    int
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		Screen:     ScreenTitle,
		prevScreen: ScreenTitle,
		Running:    true,
	}
}
