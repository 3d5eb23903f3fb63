package client

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/wormhole/internal/input"
	"github.com/tomz197/wormhole/internal/loop/session"
	"github.com/tomz197/wormhole/internal/physics"
)

type fakeTerm struct {
	width, height int
	err           error
}

func (f *fakeTerm) size() (int, int, error) {
	return f.width, f.height, f.err
}

// newTestClient builds a client whose input never closes.
func newTestClient(t *testing.T, term *fakeTerm) (*Client, *bytes.Buffer) {
	t.Helper()
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	var out bytes.Buffer
	c := NewClient(bufio.NewReader(pr), &out, ClientOptions{
		TermSizeFunc: term.size,
		Rand:         physics.NewRand(7),
		Clock:        session.NewFixedClock(time.Unix(0, 0)),
	})
	return c, &out
}

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		name                   string
		w, h                   int
		rw, rh, offCol, offRow int
	}{
		{"fits", 80, 24, 80, 24, 0, 0},
		{"exact max", 200, 60, 200, 60, 0, 0},
		{"oversized", 300, 100, 200, 60, 50, 20},
		{"odd overflow", 201, 61, 200, 60, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rw, rh, oc, or := clampTermSize(tt.w, tt.h)
			if rw != tt.rw || rh != tt.rh || oc != tt.offCol || or != tt.offRow {
				t.Errorf("clampTermSize(%d, %d) = %d, %d, %d, %d; want %d, %d, %d, %d",
					tt.w, tt.h, rw, rh, oc, or, tt.rw, tt.rh, tt.offCol, tt.offRow)
			}
		})
	}
}

func TestViewportSize(t *testing.T) {
	w, h := viewportSize(80, 24)
	if w != 640 || h != 384 {
		t.Errorf("viewportSize(80, 24) = %v, %v; want 640, 384", w, h)
	}
}

func TestHealthBar(t *testing.T) {
	tests := []struct {
		percent float64
		full    int
	}{
		{100, 20},
		{0, 0},
		{50, 10},
		{47, 9},
		{150, 20},
		{-10, 0},
	}
	for _, tt := range tests {
		bar := healthBar(tt.percent, 20)
		if got := strings.Count(bar, "█"); got != tt.full {
			t.Errorf("healthBar(%v) has %d full cells, want %d", tt.percent, got, tt.full)
		}
		if got := strings.Count(bar, "░"); got != 20-tt.full {
			t.Errorf("healthBar(%v) has %d empty cells, want %d", tt.percent, got, 20-tt.full)
		}
	}
}

func TestHealthColor(t *testing.T) {
	if healthColor(90) == healthColor(10) {
		t.Error("full and critical health share a colour")
	}
	if healthColor(40) == healthColor(90) {
		t.Error("half and full health share a colour")
	}
}

func TestHUDText(t *testing.T) {
	if got, want := scoreText(42), "Score: 42      "; got != want {
		t.Errorf("scoreText = %q, want %q", got, want)
	}
	if got, want := fuelText(4.9), "Fuel:  5       "; got != want {
		t.Errorf("fuelText = %q, want %q", got, want)
	}
	if got, want := levelText(3), "Level: 3  "; got != want {
		t.Errorf("levelText = %q, want %q", got, want)
	}
}

func TestCenterCol(t *testing.T) {
	if got := centerCol(80, 10); got != 36 {
		t.Errorf("centerCol(80, 10) = %d, want 36", got)
	}
	if got := centerCol(5, 10); got != 1 {
		t.Errorf("centerCol(5, 10) = %d, want 1", got)
	}
}

func TestNewClientSizesPlayfield(t *testing.T) {
	c, _ := newTestClient(t, &fakeTerm{width: 80, height: 24})
	b := c.game.Bounds()
	if b.Width != 640 || b.Height != 384 {
		t.Errorf("bounds = %+v, want 640x384", b)
	}
}

func TestNewClientFallbackSize(t *testing.T) {
	c, _ := newTestClient(t, &fakeTerm{err: errors.New("no tty")})
	if c.canvas.TerminalWidth() != 80 || c.canvas.TerminalHeight() != 24 {
		t.Errorf("canvas = %dx%d, want fallback 80x24", c.canvas.TerminalWidth(), c.canvas.TerminalHeight())
	}
}

func TestUpdateScreenResizesSession(t *testing.T) {
	term := &fakeTerm{width: 80, height: 24}
	c, _ := newTestClient(t, term)

	term.width, term.height = 100, 30
	c.updateScreen()
	if b := c.game.Bounds(); b.Width != 800 || b.Height != 480 {
		t.Errorf("bounds after resize = %+v, want 800x480", b)
	}
	if c.canvas.TerminalWidth() != 100 || c.canvas.TerminalHeight() != 30 {
		t.Errorf("canvas = %dx%d, want 100x30", c.canvas.TerminalWidth(), c.canvas.TerminalHeight())
	}

	term.err = errors.New("gone")
	term.width, term.height = 10, 10
	c.updateScreen()
	if c.canvas.TerminalWidth() != 100 {
		t.Error("failed size query changed the canvas")
	}
}

func TestDrawFrameScreens(t *testing.T) {
	c, out := newTestClient(t, &fakeTerm{width: 80, height: 24})

	if err := c.drawFrame(); err != nil {
		t.Fatalf("drawFrame: %v", err)
	}
	if !strings.Contains(out.String(), "Controls") {
		t.Error("title screen missing controls")
	}

	out.Reset()
	c.startGame()
	c.updatePlayingState()
	if err := c.drawFrame(); err != nil {
		t.Fatalf("drawFrame: %v", err)
	}
	for _, want := range []string{"Score:", "Fuel:", "Level: 1", "Health"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("HUD missing %q", want)
		}
	}
	if c.state.prevScreen != ScreenPlaying {
		t.Errorf("prevScreen = %v, want playing", c.state.prevScreen)
	}
}

func TestStartGameRunsSession(t *testing.T) {
	c, _ := newTestClient(t, &fakeTerm{width: 80, height: 24})
	c.state.Input = input.Input{Space: true}
	c.updateTitleState()

	if c.state.Screen != ScreenPlaying {
		t.Fatalf("screen = %v, want playing", c.state.Screen)
	}
	if c.game.State().Phase != session.PhaseRunning {
		t.Errorf("phase = %v, want running", c.game.State().Phase)
	}
}

func TestGameOverRestartDelay(t *testing.T) {
	c, _ := newTestClient(t, &fakeTerm{width: 80, height: 24})
	c.state.Screen = ScreenGameOver
	c.restartTimer = 1
	c.state.delta = 600 * time.Millisecond
	c.state.Input = input.Input{Enter: true}

	c.updateGameOverState()
	if c.state.Screen != ScreenGameOver {
		t.Fatal("restart accepted during delay")
	}
	c.updateGameOverState()
	if c.restartTimer != 0 {
		t.Fatalf("restartTimer = %v, want 0", c.restartTimer)
	}
	c.updateGameOverState()
	if c.state.Screen != ScreenPlaying {
		t.Errorf("screen = %v, want playing", c.state.Screen)
	}
}

func TestShutdownCountdown(t *testing.T) {
	c, _ := newTestClient(t, &fakeTerm{width: 80, height: 24})
	c.beginShutdown()
	c.state.delta = 5 * time.Second
	c.updateShutdownState()
	if !c.state.Running {
		t.Fatal("stopped before countdown ended")
	}
	c.state.delta = 6 * time.Second
	c.updateShutdownState()
	if c.state.Running {
		t.Error("still running after countdown")
	}
}

func TestInactivity(t *testing.T) {
	c, _ := newTestClient(t, &fakeTerm{width: 80, height: 24})
	c.inactivity = true

	c.lastInput = time.Now().Add(-100 * time.Second)
	c.processInput()
	if !c.state.isInactive || !c.state.Running {
		t.Fatalf("after 100s idle: inactive=%v running=%v, want warning", c.state.isInactive, c.state.Running)
	}

	c.lastInput = time.Now().Add(-130 * time.Second)
	c.processInput()
	if c.state.Running {
		t.Error("still running after disconnect timeout")
	}
}

func TestInactivityDisabled(t *testing.T) {
	c, _ := newTestClient(t, &fakeTerm{width: 80, height: 24})
	c.lastInput = time.Now().Add(-1000 * time.Second)
	c.processInput()
	if c.state.isInactive || !c.state.Running {
		t.Error("inactivity applied to a client without it enabled")
	}
}

func TestClosedInputStops(t *testing.T) {
	c := NewClient(bufio.NewReader(strings.NewReader("")), io.Discard, ClientOptions{
		TermSizeFunc: (&fakeTerm{width: 80, height: 24}).size,
	})
	deadline := time.Now().Add(2 * time.Second)
	for c.state.Running && time.Now().Before(deadline) {
		c.processInput()
		time.Sleep(time.Millisecond)
	}
	if c.state.Running {
		t.Error("client kept running after input closed")
	}
}

func TestScreenString(t *testing.T) {
	tests := map[Screen]string{
		ScreenTitle:    "title",
		ScreenPlaying:  "playing",
		ScreenGameOver: "game over",
		ScreenShutdown: "shutdown",
		Screen(42):     "unknown",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("Screen(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}
