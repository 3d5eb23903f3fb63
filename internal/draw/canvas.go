package draw

import (
	"math"
	"slices"
)

// Canvas is a half-block drawing buffer scaled from a logical coordinate
// space onto a terminal area. Every cell holds a two-bit mask of its stacked
// sub-pixels; Render only emits cells whose mask changed since the last frame.
type Canvas struct {
	cols, rows int
	cells      []uint8 // Current frame masks, row-major
	prev       []uint8 // Masks on screen; dirtyMask forces a repaint

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // Pixels per logical unit
	scaleY        float64 // Sub-pixel rows per logical unit

	// 0-based terminal offset of the canvas, used for centering
	offsetCol int
	offsetRow int

	out       []byte
	scaled    []Point
	crossings []float64
	borrowed  []Point
	ring      []Point
}

const dirtyMask uint8 = 0xFF

// NewCanvas creates an unscaled canvas: one logical unit per sub-pixel.
func NewCanvas(cols, rows int) *Canvas {
	return NewScaledCanvas(cols, rows, float64(cols), float64(rows*2))
}

// NewScaledCanvas creates a canvas of cols x rows terminal cells that maps
// the logical area logicalWidth x logicalHeight onto it.
func NewScaledCanvas(cols, rows int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{logicalWidth: logicalWidth, logicalHeight: logicalHeight}
	c.Resize(cols, rows)
	return c
}

// Resize changes the terminal area, keeping the logical size.
func (c *Canvas) Resize(cols, rows int) {
	if cols != c.cols || rows != c.rows || c.cells == nil {
		c.cols, c.rows = cols, rows
		c.cells = make([]uint8, cols*rows)
		c.prev = make([]uint8, cols*rows)
		c.ForceRedraw()
	}
	c.rescale()
}

// SetLogicalSize changes the logical coordinate space mapped onto the terminal.
func (c *Canvas) SetLogicalSize(logicalWidth, logicalHeight float64) {
	c.logicalWidth = logicalWidth
	c.logicalHeight = logicalHeight
	c.rescale()
}

func (c *Canvas) rescale() {
	c.scaleX = float64(c.cols) / c.logicalWidth
	c.scaleY = float64(c.rows*2) / c.logicalHeight
}

// ForceRedraw makes the next Render emit every cell, e.g. after the terminal
// was cleared.
func (c *Canvas) ForceRedraw() {
	for i := range c.prev {
		c.prev[i] = dirtyMask
	}
}

// MarkTextDirty marks n cells starting at the 1-based canvas position
// (col, row) as overwritten by text, so the next Render repaints them.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	if row < 1 || row > c.rows {
		return
	}
	from := max(col-1, 0)
	to := min(col-1+n, c.cols)
	base := (row - 1) * c.cols
	for x := from; x < to; x++ {
		c.prev[base+x] = dirtyMask
	}
}

// SetOffset places the canvas at 0-based terminal offset (col, row).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// TerminalWidth returns the canvas width in terminal columns.
func (c *Canvas) TerminalWidth() int {
	return c.cols
}

// TerminalHeight returns the canvas height in terminal rows.
func (c *Canvas) TerminalHeight() int {
	return c.rows
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.cells)
}

// plot sets the sub-pixel at pixel coordinates, ignoring anything off canvas.
func (c *Canvas) plot(px, py int) {
	if px < 0 || px >= c.cols || py < 0 || py >= c.rows*2 {
		return
	}
	c.cells[(py>>1)*c.cols+px] |= 1 << (py & 1)
}

func (c *Canvas) toPixel(x, y float64) (int, int) {
	return int(math.Round(x * c.scaleX)), int(math.Round(y * c.scaleY))
}

// SetFloat sets the sub-pixel under a logical position.
func (c *Canvas) SetFloat(x, y float64) {
	c.plot(c.toPixel(x, y))
}

// LogicalToTerminal converts a logical position to the 1-based canvas cell.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px, py := c.toPixel(x, y)
	return px + 1, py/2 + 1
}

// DrawLine draws a segment between two logical points, stepping along the
// major axis in pixel space.
func (c *Canvas) DrawLine(a, b Point) {
	x0, y0 := c.toPixel(a.X, a.Y)
	x1, y1 := c.toPixel(b.X, b.Y)
	steps := max(abs(x1-x0), abs(y1-y0))
	if steps == 0 {
		c.plot(x0, y0)
		return
	}
	dx := float64(x1-x0) / float64(steps)
	dy := float64(y1-y0) / float64(steps)
	for i := 0; i <= steps; i++ {
		t := float64(i)
		c.plot(x0+int(math.Round(dx*t)), y0+int(math.Round(dy*t)))
	}
}

// DrawPolygon outlines a closed polygon, filling it first when filled is set.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	last := points[len(points)-1]
	for _, p := range points {
		c.DrawLine(last, p)
		last = p
	}
}

// DrawCircle outlines a circle with a polygon whose segment count follows
// the on-screen radius.
func (c *Canvas) DrawCircle(center Point, radius float64) {
	if radius <= 0 {
		return
	}
	pixelRadius := radius * max(c.scaleX, c.scaleY)
	if pixelRadius < 1 {
		c.SetFloat(center.X, center.Y)
		return
	}
	n := min(max(int(math.Ceil(pixelRadius*math.Pi)), 8), 64)
	if cap(c.ring) < n {
		c.ring = make([]Point, n)
	}
	ring := c.ring[:n]
	step := 2 * math.Pi / float64(n)
	for i := range ring {
		sin, cos := math.Sincos(float64(i) * step)
		ring[i] = Point{X: center.X + cos*radius, Y: center.Y + sin*radius}
	}
	c.DrawPolygon(ring, false)
}

// fillPolygon scanline-fills a polygon in pixel space, sampling each
// sub-pixel row at its centre.
func (c *Canvas) fillPolygon(points []Point) {
	c.scaled = c.scaled[:0]
	top, bottom := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		q := Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
		c.scaled = append(c.scaled, q)
		top = min(top, q.Y)
		bottom = max(bottom, q.Y)
	}

	y0 := max(int(math.Floor(top)), 0)
	y1 := min(int(math.Ceil(bottom)), c.rows*2-1)
	for y := y0; y <= y1; y++ {
		scan := float64(y) + 0.5
		xs := c.crossings[:0]
		prev := c.scaled[len(c.scaled)-1]
		for _, p := range c.scaled {
			if (prev.Y <= scan) != (p.Y <= scan) {
				xs = append(xs, prev.X+(scan-prev.Y)/(p.Y-prev.Y)*(p.X-prev.X))
			}
			prev = p
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			from := max(int(math.Ceil(xs[i])), 0)
			to := min(int(math.Floor(xs[i+1])), c.cols-1)
			for x := from; x <= to; x++ {
				c.plot(x, y)
			}
		}
		c.crossings = xs
	}
}

// BorrowPoints returns a reusable slice of n points, valid until the next
// call. Each goroutine must use its own Canvas.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.borrowed) < n {
		c.borrowed = make([]Point, n)
	}
	return c.borrowed[:n]
}
