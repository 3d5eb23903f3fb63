// Package input turns raw terminal bytes into held keys and logical game actions.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report presses and auto-repeats, so this must bridge the
// gap between repeats.
const keyHoldDuration = 120 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Left    bool
	Right   bool
	Up      bool
	Space   bool
	Enter   bool
	Escape  bool
	Closed  bool // The underlying reader reached EOF or failed
	Pressed []byte
}

// Actions returns the logical game actions held this frame.
func (in Input) Actions() Actions {
	var a Actions
	for _, m := range []struct {
		held bool
		act  Actions
	}{
		{in.Up, Thrust},
		{in.Left, TurnLeft},
		{in.Right, TurnRight},
		{in.Space, Fire},
	} {
		if m.held {
			a |= m.act
		}
	}
	return a
}

// Confirm reports whether the player asked to start or restart.
func (in Input) Confirm() bool {
	return in.Space || in.Enter
}

// key is a physical key the game listens for.
type key uint8

const (
	keyNone key = iota
	keyQuit
	keyLeft
	keyRight
	keyUp
	keySpace
	keyEnter
	keyEscape
	numKeys
)

// byteKeys maps single bytes to keys. Letters cover WASD and IJKL.
var byteKeys = func() (m [256]key) {
	for _, b := range []struct {
		chars string
		k     key
	}{
		{"qQ\x03", keyQuit}, // Ctrl+C arrives as a byte in raw mode
		{"aAjJ", keyLeft},
		{"dDlL", keyRight},
		{"wWiI", keyUp},
		{" ", keySpace},
		{"\r\n", keyEnter},
		{"\x1b", keyEscape},
	} {
		for i := 0; i < len(b.chars); i++ {
			m[b.chars[i]] = b.k
		}
	}
	return m
}()

// csiKeys maps the final byte of ESC [ sequences. Down is consumed but unused.
var csiKeys = map[byte]key{
	'A': keyUp,
	'B': keyNone,
	'C': keyRight,
	'D': keyLeft,
}

// Stream delivers input bytes via a channel and remembers when each key was
// last seen, so simultaneous keys can be held together.
type Stream struct {
	ch       chan byte
	lastSeen [numKeys]time.Time
	now      func() time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The channel closes when r fails, which ReadInput reports as Closed.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream(time.Now)
	go func() {
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream(now func() time.Time) *Stream {
	return &Stream{
		ch:  make(chan byte, 128),
		now: now,
	}
}

// Reset forgets all held keys, so a key used to confirm a screen does not
// leak into the next state.
func (s *Stream) Reset() {
	s.lastSeen = [numKeys]time.Time{}
}

// drain collects every byte already queued without blocking.
func (s *Stream) drain() (buf []byte, closed bool) {
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				return buf, true
			}
			buf = append(buf, b)
		default:
			return buf, false
		}
	}
}

// press records keys found in buf. Arrow keys arrive as ESC [ A..D and must
// not register as Escape.
func (s *Stream) press(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		if buf[i] == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			if k, ok := csiKeys[buf[i+2]]; ok {
				s.lastSeen[k] = now
				i += 2
				continue
			}
		}
		s.lastSeen[byteKeys[buf[i]]] = now
	}
}

// ReadInput drains the stream and reports which keys are held this frame.
func ReadInput(s *Stream) Input {
	now := s.now()
	buf, closed := s.drain()
	s.press(buf, now)

	held := func(k key) bool {
		t := s.lastSeen[k]
		return !t.IsZero() && now.Sub(t) < keyHoldDuration
	}
	return Input{
		Quit:    held(keyQuit),
		Left:    held(keyLeft),
		Right:   held(keyRight),
		Up:      held(keyUp),
		Space:   held(keySpace),
		Enter:   held(keyEnter),
		Escape:  held(keyEscape),
		Closed:  closed,
		Pressed: buf,
	}
}
