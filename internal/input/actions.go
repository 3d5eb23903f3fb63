package input

// Actions is the closed set of logical game actions held during a tick.
// The simulation only ever sees Actions, never keys.
type Actions uint8

const (
	Thrust Actions = 1 << iota
	TurnLeft
	TurnRight
	Fire
)

// Has reports whether every action in want is held.
func (a Actions) Has(want Actions) bool {
	return a&want == want
}

// String lists the held actions, for logs and tests.
func (a Actions) String() string {
	if a == 0 {
		return "none"
	}
	names := []struct {
		bit  Actions
		name string
	}{
		{Thrust, "thrust"},
		{TurnLeft, "left"},
		{TurnRight, "right"},
		{Fire, "fire"},
	}
	s := ""
	for _, n := range names {
		if a&n.bit == 0 {
			continue
		}
		if s != "" {
			s += "+"
		}
		s += n.name
	}
	return s
}
