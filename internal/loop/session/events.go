package session

// EventType identifies a gameplay event emitted by a tick.
type EventType int

const (
	EventShipHit EventType = iota
	EventAsteroidDestroyed
	EventPickupCollected
	EventLevelUp
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventShipHit:
		return "ship hit"
	case EventAsteroidDestroyed:
		return "asteroid destroyed"
	case EventPickupCollected:
		return "pickup collected"
	case EventLevelUp:
		return "level up"
	case EventGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Event is a state change worth presenting (sound, flash, log line).
type Event struct {
	Type   EventType
	Points int // Score awarded; the final score for EventGameOver
	Level  int // Level after the event
	X, Y   float64
}

func (s *Session) emit(e Event) {
	e.Level = s.state.Level
	s.events = append(s.events, e)
}
