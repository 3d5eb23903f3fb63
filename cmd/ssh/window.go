package main

import (
	"sync/atomic"

	"github.com/charmbracelet/ssh"
	"github.com/tomz197/wormhole/internal/draw"
)

// window holds the latest PTY size of one session, packed as width<<32|height
// so the game loop can read it without locking.
type window struct {
	size atomic.Uint64
}

func newWindow(width, height int) *window {
	w := &window{}
	w.set(width, height)
	return w
}

func (w *window) set(width, height int) {
	w.size.Store(uint64(uint32(width))<<32 | uint64(uint32(height)))
}

// Size implements draw.TermSizeFunc.
func (w *window) Size() (int, int, error) {
	v := w.size.Load()
	return int(v >> 32), int(uint32(v)), nil
}

// follow applies window-change events until the channel closes.
func (w *window) follow(changes <-chan ssh.Window) {
	for c := range changes {
		w.set(c.Width, c.Height)
	}
}

var _ draw.TermSizeFunc = (*window)(nil).Size
