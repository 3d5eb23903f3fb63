package client

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tomz197/wormhole/internal/draw"
	"github.com/tomz197/wormhole/internal/loop/config"
	"github.com/tomz197/wormhole/internal/loop/session"
	"github.com/tomz197/wormhole/internal/object"
)

const healthBarWidth = 20

// ASCII art titles (figlet "small" font)
var (
	titleArt = []string{
		`__      __  ___   ___  __  __  _  _   ___   _     ___ `,
		`\ \    / / / _ \ | _ \|  \/  || || | / _ \ | |   | __|`,
		` \ \/\/ / | (_) ||   /| |\/| || __ || (_) || |__ | _| `,
		`  \_/\_/   \___/ |_|_\|_|  |_||_||_| \___/ |____||___|`,
		`                                                      `,
	}
	gameOverArt = []string{
		`   ___   _   __  __ ___    _____   _____ ___  `,
		`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
		` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
		`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
		`                                              `,
	}
)

type drawer interface {
	Draw(ctx object.DrawContext)
}

func drawAll[T drawer](ctx object.DrawContext, objs []T) {
	for _, obj := range objs {
		obj.Draw(ctx)
	}
}

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On screen or inactivity transitions, do a full terminal clear
	// so UI elements from the previous screen don't persist.
	screenChanged := c.state.Screen != c.state.prevScreen
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	if screenChanged || inactiveChanged {
		c.chunkWriter.ClearScreen()
		c.canvas.ForceRedraw()
		c.state.prevScreen = c.state.Screen
		c.state.wasInactive = c.state.isInactive
	}

	c.canvas.Clear()

	snapshot := c.game.Snapshot()
	drawScene(object.DrawContext{Canvas: c.canvas}, &snapshot)

	if err := c.canvas.Render(c.chunkWriter); err != nil {
		return err
	}
	// Draw border when terminal exceeds max render resolution
	if err := c.canvas.RenderBorder(c.chunkWriter); err != nil {
		return err
	}

	c.drawUI(&snapshot)

	return c.chunkWriter.Flush()
}

// drawScene paints the playfield back to front. The ship is only shown
// while a run is live.
func drawScene(ctx object.DrawContext, snap *session.Snapshot) {
	drawAll(ctx, snap.Stars)
	drawAll(ctx, snap.Portals)
	drawAll(ctx, snap.Particles)
	drawAll(ctx, snap.Explosions)
	drawAll(ctx, snap.Pickups)
	drawAll(ctx, snap.Asteroids)
	drawAll(ctx, snap.Projectiles)
	if snap.State.Phase == session.PhaseRunning {
		ship := snap.Ship
		ship.Draw(ctx)
	}
}

// drawUI draws the text overlay for the current screen.
func (c *Client) drawUI(snap *session.Snapshot) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerY := termHeight / 2

	if c.state.Screen == ScreenShutdown {
		c.drawShutdownScreen(centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerY)
		return
	}

	switch c.state.Screen {
	case ScreenTitle:
		c.drawTitleScreen(centerY)
	case ScreenPlaying:
		c.drawPlayingHUD(termWidth, termHeight, snap)
	case ScreenGameOver:
		c.drawGameOverScreen(centerY, snap)
	}
}

// writeText writes s at a 1-based canvas position and marks the covered
// cells so the canvas repaints them once the text goes away.
func (c *Client) writeText(col, row int, s string) {
	c.writeStyled(col, row, "", s)
}

// writeStyled is writeText in an ANSI color.
func (c *Client) writeStyled(col, row int, style, s string) {
	col = max(col, 1)
	if style == "" {
		c.chunkWriter.WriteAt(col, row, s)
	} else {
		c.chunkWriter.WriteStyledAt(col, row, style, s)
	}
	c.canvas.MarkTextDirty(col, row, utf8.RuneCountInString(s))
}

// writeCentered writes s horizontally centered on the given row.
func (c *Client) writeCentered(row int, s string) {
	c.writeText(centerCol(c.canvas.TerminalWidth(), utf8.RuneCountInString(s)), row, s)
}

// centerCol is the 1-based column that centers n cells in width.
func centerCol(width, n int) int {
	return max((width-n)/2+1, 1)
}

// blinkOn toggles a prompt on and off
func blinkOn() bool {
	return time.Now().UnixMilli()/600%2 == 0
}

// drawArt writes multi-line art centered, returning the row after it.
func (c *Client) drawArt(startRow int, art []string) int {
	for i, line := range art {
		c.writeCentered(startRow+i, line)
	}
	return startRow + len(art)
}

// drawTitleScreen draws the title screen.
func (c *Client) drawTitleScreen(centerY int) {
	row := c.drawArt(centerY-8, titleArt)

	c.writeCentered(row+1, "~ Fly through the wormholes, mind the rocks ~")

	controlsY := row + 3
	c.writeCentered(controlsY, "Controls")
	controlLines := []string{
		"W / Up  . . . . Thrust",
		"A D / < >  . .  Rotate",
		"SPACE  . . . . . Shoot",
		"Q  . . . . . . .  Quit",
	}
	for i, line := range controlLines {
		c.writeCentered(controlsY+1+i, line)
	}

	hintY := controlsY + len(controlLines) + 2
	c.writeCentered(hintY, "Thrust burns fuel. Crystals refuel, portals advance the level.")

	if blinkOn() {
		c.writeCentered(hintY+2, ">>  Press SPACE to Start  <<")
	}
}

// drawPlayingHUD draws the in-game HUD.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawPlayingHUD(termWidth, termHeight int, snap *session.Snapshot) {
	st := snap.State

	c.writeText(2, 1, scoreText(st.Score))
	c.writeText(2, 2, fuelText(st.Fuel))

	level := levelText(st.Level)
	c.writeText(termWidth-len(level), 1, level)

	percent := st.HealthPercent()
	const label = "Health "
	c.writeText(2, termHeight, label)
	c.writeStyled(2+len(label), termHeight, healthColor(percent), healthBar(percent, healthBarWidth))
	c.writeText(2+len(label)+healthBarWidth, termHeight, fmt.Sprintf(" %3.0f%%", percent))

	if snap.Banner != "" {
		n := utf8.RuneCountInString(snap.Banner)
		c.writeStyled(centerCol(termWidth, n), max(termHeight/4, 3), draw.ColorMagenta, snap.Banner)
	}
}

func scoreText(score int) string {
	return fmt.Sprintf("Score: %-8d", score)
}

func fuelText(fuel float64) string {
	return fmt.Sprintf("Fuel:  %-8d", int(math.Ceil(fuel)))
}

func levelText(level int) string {
	return fmt.Sprintf("Level: %-3d", level)
}

// healthBar renders percent (0 to 100) as a bar of width cells.
func healthBar(percent float64, width int) string {
	filled := int(math.Round(percent / 100 * float64(width)))
	filled = max(0, min(filled, width))
	return strings.Repeat(string(draw.BlockFull), filled) + strings.Repeat(string(draw.BlockLight), width-filled)
}

// healthColor picks the bar colour for a health percentage.
func healthColor(percent float64) string {
	switch {
	case percent > 50:
		return draw.ColorBrightGreen
	case percent > 25:
		return draw.ColorYellow
	default:
		return draw.ColorBrightRed
	}
}

// drawGameOverScreen draws the game over screen.
func (c *Client) drawGameOverScreen(centerY int, snap *session.Snapshot) {
	row := c.drawArt(centerY-6, gameOverArt)

	c.writeCentered(row+1, fmt.Sprintf("Final Score: %d", c.state.finalScore))
	c.writeCentered(row+2, fmt.Sprintf("Level reached: %d", snap.State.Level))

	if c.restartTimer > 0 {
		c.writeCentered(row+4, fmt.Sprintf("Restart in %.1f seconds...", c.restartTimer))
	} else if blinkOn() {
		c.writeCentered(row+4, ">>  Press SPACE to Restart  <<")
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerY int) {
	c.writeCentered(centerY-2, "INACTIVITY WARNING")

	remaining := int(config.InactivityDisconnectUser - time.Since(c.lastInput).Seconds())
	c.writeCentered(centerY, fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.", max(remaining, 0)))

	c.writeCentered(centerY+2, "Press any key to continue")
}

// drawShutdownScreen draws the shutdown notification screen.
func (c *Client) drawShutdownScreen(centerY int) {
	c.writeCentered(centerY-3, "SERVER SHUTTING DOWN")
	c.writeCentered(centerY-1, "The server is restarting for maintenance.")
	c.writeCentered(centerY, "Please reconnect in a moment.")

	remaining := int(c.state.shutdownTimer) + 1
	c.writeCentered(centerY+2, fmt.Sprintf("Disconnecting in %d seconds...", remaining))

	c.writeCentered(centerY+4, "Press Q to disconnect now")
}
