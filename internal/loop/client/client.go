// Package client runs one terminal connection: it samples keys, drives a
// single-player session at a fixed frame rate and renders it as half-block
// graphics with a text HUD.
package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/wormhole/internal/draw"
	"github.com/tomz197/wormhole/internal/input"
	"github.com/tomz197/wormhole/internal/loop/config"
	"github.com/tomz197/wormhole/internal/loop/session"
	"github.com/tomz197/wormhole/internal/physics"
)

// Client handles simulation, rendering and input for a single connection.
type Client struct {
	game         *session.Session
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	termSizeFunc draw.TermSizeFunc
	inactivity   bool
	restartTimer float64 // Seconds left before game over accepts a restart
	log          *log.Logger
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Logger       *log.Logger
	Rand         *physics.Rand // Defaults to a time-seeded source
	Clock        session.Clock // Defaults to the system clock
	Inactivity   bool          // Warn and then disconnect idle connections
}

// NewClient creates a client reading keys from r and drawing to w.
func NewClient(r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	termWidth, termHeight, err := termSizeFunc()
	if err != nil || termWidth <= 0 || termHeight <= 0 {
		logger.Warn("terminal size unavailable, using fallback", "err", err)
		termWidth, termHeight = config.FallbackTermWidth, config.FallbackTermHeight
	}

	// Create canvas with clamped dimensions for max render resolution
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	viewWidth, viewHeight := viewportSize(renderWidth, renderHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, viewWidth, viewHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	game := session.New(session.Options{
		Bounds: physics.Bounds{Width: viewWidth, Height: viewHeight},
		Rand:   opts.Rand,
		Clock:  opts.Clock,
		Logger: logger,
	})

	return &Client{
		game:         game,
		state:        NewClientState(),
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(r),
		lastInput:    time.Now(),
		termSizeFunc: termSizeFunc,
		inactivity:   opts.Inactivity,
		log:          logger,
	}
}

// Run starts the client loop. It blocks until the player quits, the input
// closes or the shutdown countdown that follows ctx cancellation runs out.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	lastTime := time.Now()

	for c.state.Running {
		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		if ctx.Err() != nil && c.state.Screen != ScreenShutdown {
			c.beginShutdown()
		}

		c.processInput()
		c.updateScreen()

		switch c.state.Screen {
		case ScreenTitle:
			c.updateTitleState()
		case ScreenPlaying:
			c.updatePlayingState()
		case ScreenGameOver:
			c.updateGameOverState()
		case ScreenShutdown:
			c.updateShutdownState()
		}

		if err := c.drawFrame(); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(c.writer)
	return nil
}

// processInput samples the key stream and tracks inactivity.
func (c *Client) processInput() {
	c.state.Input = input.ReadInput(c.inputStream)

	if c.state.Input.Quit || c.state.Input.Closed {
		c.state.Running = false
		return
	}

	if len(c.state.Input.Pressed) > 0 {
		c.lastInput = time.Now()
		c.state.isInactive = false
		return
	}
	if !c.inactivity {
		return
	}
	idle := time.Since(c.lastInput).Seconds()
	if idle > config.InactivityDisconnectUser {
		c.log.Info("disconnecting inactive client", "idle", idle)
		c.state.Running = false
	} else if idle > config.InactivityWarnUser {
		c.state.isInactive = true
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes it clears the terminal to remove residual pixels
// outside the new canvas area and resizes the playfield to match.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil || termWidth <= 0 || termHeight <= 0 {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth == c.canvas.TerminalWidth() && renderHeight == c.canvas.TerminalHeight() &&
		offsetCol == c.canvas.OffsetCol() && offsetRow == c.canvas.OffsetRow() {
		return
	}

	draw.ClearScreen(c.writer)
	viewWidth, viewHeight := viewportSize(renderWidth, renderHeight)
	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetLogicalSize(viewWidth, viewHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.canvas.ForceRedraw()
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
	c.game.Resize(viewWidth, viewHeight)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// viewportSize is the playfield size for a render area. Rows cover twice the
// units of columns because each glyph is about twice as tall as it is wide.
func viewportSize(renderWidth, renderHeight int) (width, height float64) {
	return float64(renderWidth * config.UnitsPerColumn), float64(renderHeight * config.UnitsPerRow)
}

// updateTitleState handles the title screen.
func (c *Client) updateTitleState() {
	if c.state.Input.Confirm() {
		c.startGame()
	}
}

// updatePlayingState advances the session by one tick.
func (c *Client) updatePlayingState() {
	for _, e := range c.game.Tick(c.state.Input.Actions()) {
		c.log.Debug("event", "type", e.Type, "level", e.Level, "points", e.Points)
	}

	if st := c.game.State(); st.Phase == session.PhaseGameOver {
		c.state.finalScore = st.Score
		c.state.Screen = ScreenGameOver
		c.restartTimer = config.RestartDelaySeconds
	}
}

// updateGameOverState handles the game over screen.
func (c *Client) updateGameOverState() {
	if c.restartTimer > 0 {
		c.restartTimer = max(c.restartTimer-c.state.delta.Seconds(), 0)
		return
	}
	if c.state.Input.Confirm() {
		c.startGame()
	}
}

// startGame starts or restarts the run.
func (c *Client) startGame() {
	c.inputStream.Reset()
	c.game.Start()
	c.state.Screen = ScreenPlaying
}

// beginShutdown switches to the shutdown countdown.
func (c *Client) beginShutdown() {
	c.state.Screen = ScreenShutdown
	c.state.shutdownTimer = config.ShutdownDisplaySeconds
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState() {
	c.state.shutdownTimer -= c.state.delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}
