package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tomz197/wormhole/internal/draw"
	"github.com/tomz197/wormhole/internal/loop/session"
	"github.com/tomz197/wormhole/internal/physics"
	"golang.org/x/image/colornames"
)

// debugCharWidth and debugLineHeight are the DebugPrint glyph cell size.
const (
	debugCharWidth  = 6
	debugLineHeight = 16
)

var (
	colorBackground = color.RGBA{0x05, 0x05, 0x10, 0xff}
	colorShip       = colornames.White
	colorFlame      = colornames.Orange
	colorProjectile = colornames.Red
	colorAsteroid   = colornames.Silver
	colorPickup     = color.RGBA{0x00, 0xff, 0xaa, 0xff}
	colorPortalRim  = colornames.Mediumpurple
	colorPortalCore = colornames.Indigo
	colorSwirl      = colornames.Violet
	colorHealthBack = color.RGBA{0x60, 0x00, 0x00, 0xff}
	colorHealth     = colornames.Limegreen
	colorFuel       = colornames.Deepskyblue
)

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	snap := g.session.Snapshot()

	drawStars(screen, &snap)
	drawPortals(screen, &snap)
	drawEffects(screen, &snap)
	for _, p := range snap.Pickups {
		strokePolygon(screen, p.Outline(), 2, colorPickup)
	}
	for _, a := range snap.Asteroids {
		strokePolygon(screen, a.Outline(), 2, colorAsteroid)
	}
	for _, p := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), colorProjectile, true)
	}

	switch snap.State.Phase {
	case session.PhaseNotStarted:
		drawCenteredLines(screen, g.width, g.height/2,
			"W O R M H O L E",
			"",
			"Arrows / WASD to fly, SPACE to shoot",
			"Thrust burns fuel. Crystals refuel, portals advance the level.",
			"",
			"Press ENTER to start, ESC to quit",
		)
	case session.PhaseRunning:
		drawShip(screen, &snap)
		drawHUD(screen, g.width, &snap)
	case session.PhaseGameOver:
		drawCenteredLines(screen, g.width, g.height/2,
			"GAME OVER",
			"",
			fmt.Sprintf("Final Score: %d", snap.State.Score),
			fmt.Sprintf("Level reached: %d", snap.State.Level),
			"",
			"Press ENTER to restart",
		)
	}
}

func drawStars(screen *ebiten.Image, snap *session.Snapshot) {
	for _, s := range snap.Stars {
		v := uint8(s.Brightness * 255)
		vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), float32(s.Radius), color.RGBA{v, v, v, 0xff}, false)
	}
}

func drawPortals(screen *ebiten.Image, snap *session.Snapshot) {
	for _, p := range snap.Portals {
		scale := p.Scale()
		x, y := float32(p.X), float32(p.Y)
		vector.DrawFilledCircle(screen, x, y, float32(p.Radius*scale), colorPortalCore, true)
		vector.StrokeCircle(screen, x, y, float32(p.OuterRadius*scale), 3, colorPortalRim, true)
		for _, s := range p.Swirl {
			sx, sy := physics.Rotate(s.X, s.Y, p.Angle)
			vector.DrawFilledCircle(screen, float32(p.X+sx), float32(p.Y+sy), 2, fade(colorSwirl, s.Life), true)
		}
	}
}

func drawEffects(screen *ebiten.Image, snap *session.Snapshot) {
	for _, p := range snap.Particles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius*p.Life), fade(p.Color, p.Life), true)
	}
	for _, e := range snap.Explosions {
		vector.StrokeCircle(screen, float32(e.X), float32(e.Y), float32(e.Radius), 2, fade(e.Color, e.Life), true)
	}
}

func drawShip(screen *ebiten.Image, snap *session.Snapshot) {
	ship := snap.Ship
	if ship.EngineGlow > 0 {
		strokePolygon(screen, ship.FlamePoints(), 2, fade(colorFlame, ship.EngineGlow))
	}
	strokePolygon(screen, ship.HullPoints(), 2, colorShip)
}

// drawHUD prints score, fuel and level, then draws the health and fuel bars.
func drawHUD(screen *ebiten.Image, width int, snap *session.Snapshot) {
	st := snap.State
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", st.Score), 10, 10)
	level := fmt.Sprintf("Level: %d", st.Level)
	ebitenutil.DebugPrintAt(screen, level, width-10-len(level)*debugCharWidth, 10)

	drawBar(screen, 10, 30, st.HealthPercent()/100, colorHealth)
	drawBar(screen, 10, 44, st.Fuel/100, colorFuel)

	if snap.Banner != "" {
		drawCenteredLines(screen, width, snap.Bounds.Height/4, snap.Banner)
	}
}

func drawBar(screen *ebiten.Image, x, y float32, fill float64, clr color.Color) {
	const barWidth, barHeight = 150, 8
	fill = max(0, min(fill, 1))
	vector.DrawFilledRect(screen, x, y, barWidth, barHeight, colorHealthBack, true)
	vector.DrawFilledRect(screen, x, y, float32(barWidth*fill), barHeight, clr, true)
}

// drawCenteredLines prints lines centered on the vertical position cy.
func drawCenteredLines[T int | float64](screen *ebiten.Image, width int, cy T, lines ...string) {
	top := int(cy) - len(lines)*debugLineHeight/2
	for i, line := range lines {
		x := (width - len(line)*debugCharWidth) / 2
		ebitenutil.DebugPrintAt(screen, line, x, top+i*debugLineHeight)
	}
}

func strokePolygon(screen *ebiten.Image, pts []draw.Point, width float32, clr color.Color) {
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), width, clr, true)
	}
}

// fade scales a colour's alpha by life in [0, 1]. Ebiten expects
// premultiplied alpha, so every channel is scaled.
func fade(c color.RGBA, life float64) color.RGBA {
	life = max(0, min(life, 1))
	return color.RGBA{
		R: uint8(float64(c.R) * life),
		G: uint8(float64(c.G) * life),
		B: uint8(float64(c.B) * life),
		A: uint8(float64(c.A) * life),
	}
}
