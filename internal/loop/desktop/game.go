// Package desktop runs the game in a window through ebiten.
package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tomz197/wormhole/internal/input"
	"github.com/tomz197/wormhole/internal/loop/session"
)

// keyBindings maps actions to the keys that trigger them.
var keyBindings = []struct {
	action input.Actions
	keys   []ebiten.Key
}{
	{input.Thrust, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{input.TurnLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{input.TurnRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{input.Fire, []ebiten.Key{ebiten.KeySpace}},
}

// Game adapts a session to ebiten.Game. Ebiten calls Update at 60 TPS by
// default, which matches one session tick per call.
type Game struct {
	session *session.Session
	width   int
	height  int
}

// NewGame creates a desktop game around a fresh session.
func NewGame(opts session.Options) *Game {
	s := session.New(opts)
	b := s.Bounds()
	return &Game{
		session: s,
		width:   int(b.Width),
		height:  int(b.Height),
	}
}

// Update samples the keyboard and advances the session.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	switch g.session.State().Phase {
	case session.PhaseNotStarted, session.PhaseGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.session.Start()
		}
	case session.PhaseRunning:
		g.session.Tick(pressedActions())
	}
	return nil
}

// pressedActions reads the held keys into an action set.
func pressedActions() input.Actions {
	var a input.Actions
	for _, b := range keyBindings {
		for _, k := range b.keys {
			if ebiten.IsKeyPressed(k) {
				a |= b.action
				break
			}
		}
	}
	return a
}

// Layout keeps the playfield the size of the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.session.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}
