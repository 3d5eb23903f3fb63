package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestCanvasRenderDiffs(t *testing.T) {
	c := NewCanvas(10, 5)
	c.SetFloat(2, 2)

	var first bytes.Buffer
	c.Render(&first)
	if !strings.ContainsRune(first.String(), BlockUpperHalf) {
		t.Fatalf("first render should contain the set pixel, got %q", first.String())
	}

	var second bytes.Buffer
	c.Render(&second)
	if second.Len() != 0 {
		t.Errorf("unchanged frame should emit nothing, got %q", second.String())
	}

	c.Clear()
	var third bytes.Buffer
	c.Render(&third)
	if !strings.Contains(third.String(), "\033[2;3H ") {
		t.Errorf("cleared pixel should be erased with a space, got %q", third.String())
	}
}

func TestCanvasMarkTextDirty(t *testing.T) {
	c := NewCanvas(10, 5)
	var buf bytes.Buffer
	c.Render(&buf)

	c.MarkTextDirty(4, 2, 3)
	buf.Reset()
	c.Render(&buf)
	if got := strings.Count(buf.String(), " "); got != 3 {
		t.Errorf("dirty cells repainted = %d, want 3 (%q)", got, buf.String())
	}

	// Out-of-range marks are ignored.
	c.MarkTextDirty(-5, 99, 4)
}

func TestCanvasForceRedraw(t *testing.T) {
	c := NewCanvas(4, 2)
	var buf bytes.Buffer
	c.Render(&buf)
	c.ForceRedraw()
	buf.Reset()
	c.Render(&buf)
	if got := strings.Count(buf.String(), " "); got != 8 {
		t.Errorf("forced redraw emitted %d cells, want 8", got)
	}
}

func TestCanvasScaling(t *testing.T) {
	c := NewScaledCanvas(80, 24, 640, 384)
	col, row := c.LogicalToTerminal(320, 192)
	if col != 41 || row != 13 {
		t.Errorf("LogicalToTerminal = (%d, %d), want (41, 13)", col, row)
	}

	c.SetLogicalSize(320, 192)
	col, row = c.LogicalToTerminal(160, 96)
	if col != 41 || row != 13 {
		t.Errorf("after SetLogicalSize = (%d, %d), want (41, 13)", col, row)
	}
}

func TestCanvasDrawCircle(t *testing.T) {
	c := NewCanvas(40, 20)
	c.DrawCircle(Point{X: 20, Y: 20}, 8)

	set := 0
	for _, mask := range c.cells {
		set += int(mask&1) + int(mask>>1)
	}
	if set < 16 {
		t.Errorf("circle set %d pixels, want an outline", set)
	}
	// Sub-pixel (20, 20) is the top half of cell row 10.
	if c.cells[10*c.cols+20]&1 != 0 {
		t.Error("circle outline should leave the centre empty")
	}
}

func TestCanvasFillPolygonClipped(t *testing.T) {
	c := NewCanvas(4, 2)
	// A square far larger than the canvas fills every cell without panicking.
	c.DrawPolygon([]Point{{-10, -10}, {20, -10}, {20, 20}, {-10, 20}}, true)
	for i, mask := range c.cells {
		if mask != 3 {
			t.Fatalf("cell %d mask = %d, want full", i, mask)
		}
	}

	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(buf.String(), string(BlockFull)); got != 8 {
		t.Errorf("full blocks = %d, want 8", got)
	}
}

func TestCanvasDrawLineSinglePoint(t *testing.T) {
	c := NewCanvas(4, 2)
	c.DrawLine(Point{1, 1}, Point{1, 1})
	if c.cells[1] != 2 {
		t.Errorf("cell mask = %d, want bottom half", c.cells[1])
	}
}

func TestRenderBorder(t *testing.T) {
	c := NewCanvas(3, 1)

	var buf bytes.Buffer
	if err := c.RenderBorder(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("unshifted canvas should have no border, got %q", buf.String())
	}

	c.SetOffset(1, 1)
	if err := c.RenderBorder(&buf); err != nil {
		t.Fatal(err)
	}
	want := "\033[1;1H┌───┐\033[3;1H└───┘\033[2;1H│\033[2;5H│"
	if got := buf.String(); got != want {
		t.Errorf("border = %q, want %q", got, want)
	}
}

func TestChunkWriterOffset(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 2, 3)
	cw.WriteAt(1, 1, "hi")
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "\033[4;3Hhi" {
		t.Errorf("WriteAt output = %q", got)
	}
}

func TestChunkWriterStyled(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	cw.ClearScreen()
	cw.WriteStyledAt(2, 1, ColorYellow, "ok")
	if cw.Len() == 0 {
		t.Fatal("pending frame should not be empty")
	}
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	want := "\033[H\033[2J\033[1;2H" + ColorYellow + "ok" + ColorReset
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if cw.Len() != 0 {
		t.Error("Flush should reset the buffer")
	}
}

type recordingWriter struct {
	sizes []int
}

func (r *recordingWriter) Write(p []byte) (int, error) {
	r.sizes = append(r.sizes, len(p))
	return len(p), nil
}

func TestChunkWriterChunks(t *testing.T) {
	var rec recordingWriter
	cw := NewChunkWriter(&rec, 0, 0)
	cw.WriteString(strings.Repeat("x", 2*maxChunkSize+200))
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	want := []int{maxChunkSize, maxChunkSize, 200}
	if len(rec.sizes) != len(want) {
		t.Fatalf("writes = %v, want %v", rec.sizes, want)
	}
	for i := range want {
		if rec.sizes[i] != want[i] {
			t.Errorf("write %d = %d bytes, want %d", i, rec.sizes[i], want[i])
		}
	}
}
