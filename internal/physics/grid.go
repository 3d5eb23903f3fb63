package physics

import (
	"iter"
	"math"
)

// SpatialGrid buckets circles into uniform cells for broad-phase overlap
// queries. It covers the playfield extended by a margin; circles outside
// that area land in the border cells. Queries are not toroidal.
//
// The search window grows with the largest inserted radius, so any cell
// size finds every overlap. Sizing cells near the typical contact distance
// keeps the window at 3x3.
type SpatialGrid struct {
	originX, originY float64
	invCell          float64
	cols, rows       int
	cells            [][]circle
	maxRadius        float64
	count            int
}

type circle struct {
	index   int
	x, y, r float64
}

// NewSpatialGrid creates a grid over bounds plus margin on every side.
func NewSpatialGrid(bounds Bounds, margin, cellSize float64) *SpatialGrid {
	cols := max(int(math.Ceil((bounds.Width+2*margin)/cellSize)), 1)
	rows := max(int(math.Ceil((bounds.Height+2*margin)/cellSize)), 1)
	return &SpatialGrid{
		originX: -margin,
		originY: -margin,
		invCell: 1 / cellSize,
		cols:    cols,
		rows:    rows,
		cells:   make([][]circle, cols*rows),
	}
}

// Clear empties the grid, keeping cell storage for reuse.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
	g.maxRadius = 0
	g.count = 0
}

// Len returns the number of inserted circles.
func (g *SpatialGrid) Len() int {
	return g.count
}

// Insert stores the circle identified by index.
func (g *SpatialGrid) Insert(index int, x, y, radius float64) {
	col, row := g.cell(x, y)
	i := row*g.cols + col
	g.cells[i] = append(g.cells[i], circle{index: index, x: x, y: y, r: radius})
	g.maxRadius = max(g.maxRadius, radius)
	g.count++
}

// Overlapping yields the index of every stored circle that strictly overlaps
// the query circle. Order follows cell layout, not insertion.
func (g *SpatialGrid) Overlapping(x, y, radius float64) iter.Seq[int] {
	return func(yield func(int) bool) {
		reach := radius + g.maxRadius
		c0, r0 := g.cell(x-reach, y-reach)
		c1, r1 := g.cell(x+reach, y+reach)
		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				for _, c := range g.cells[row*g.cols+col] {
					if !CirclesOverlap(x, y, radius, c.x, c.y, c.r) {
						continue
					}
					if !yield(c.index) {
						return
					}
				}
			}
		}
	}
}

// cell maps a position to its clamped cell coordinates.
func (g *SpatialGrid) cell(x, y float64) (col, row int) {
	col = int(math.Floor((x - g.originX) * g.invCell))
	row = int(math.Floor((y - g.originY) * g.invCell))
	return max(0, min(col, g.cols-1)), max(0, min(row, g.rows-1))
}
