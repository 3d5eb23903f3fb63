package draw

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Render writes every cell that changed since the previous Render. Runs of
// adjacent changed cells on one row share a single cursor move.
func (c *Canvas) Render(w io.Writer) error {
	out := c.out[:0]
	next := -1
	for i, mask := range c.cells {
		if c.prev[i] == mask {
			continue
		}
		c.prev[i] = mask
		col := i % c.cols
		if i != next || col == 0 {
			out = appendCursor(out, col+1+c.offsetCol, i/c.cols+1+c.offsetRow)
		}
		out = utf8.AppendRune(out, cellGlyphs[mask])
		next = i + 1
	}
	c.out = out
	return writeChunked(w, out)
}

// RenderBorder frames the canvas when it is offset from the terminal edge.
// Sides need a column offset, top and bottom need a row offset.
func (c *Canvas) RenderBorder(w io.Writer) error {
	sides := c.offsetCol >= 1
	caps := c.offsetRow >= 1
	if !sides && !caps {
		return nil
	}

	out := c.out[:0]
	bar := strings.Repeat("─", c.cols)
	left := c.offsetCol
	right := c.offsetCol + c.cols + 1

	if caps {
		edges := [2]struct {
			row         int
			open, close string
		}{
			{c.offsetRow, "┌", "┐"},
			{c.offsetRow + c.rows + 1, "└", "┘"},
		}
		for _, e := range edges {
			if sides {
				out = appendCursor(out, left, e.row)
				out = append(out, e.open...)
				out = append(out, bar...)
				out = append(out, e.close...)
			} else {
				out = appendCursor(out, left+1, e.row)
				out = append(out, bar...)
			}
		}
	}

	if sides {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.rows; row++ {
			out = appendCursor(out, left, row)
			out = append(out, "│"...)
			out = appendCursor(out, right, row)
			out = append(out, "│"...)
		}
	}

	c.out = out
	return writeChunked(w, out)
}
