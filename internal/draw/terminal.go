package draw

import "io"

// ChunkWriter collects one frame of terminal output (canvas cells, HUD text,
// control sequences) and hands it to the connection in MTU-sized writes on
// Flush. Positions given to it are 1-based canvas coordinates; the canvas
// offset is added automatically.
type ChunkWriter struct {
	w      io.Writer
	buf    []byte
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter that writes to w.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{w: w, offCol: offsetCol, offRow: offsetRow}
}

// SetOffset updates the cursor offset, e.g. after a terminal resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// MoveCursor appends a cursor move to canvas position (col, row).
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf = appendCursor(cw.buf, col+cw.offCol, row+cw.offRow)
}

// Write implements io.Writer so a Canvas can render into the frame.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	cw.buf = append(cw.buf, p...)
	return len(p), nil
}

// WriteString appends raw text or control sequences.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf = append(cw.buf, s...)
}

// WriteAt writes s at canvas position (col, row).
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.buf = append(cw.buf, s...)
}

// WriteStyledAt writes s at (col, row) wrapped in an SGR style and a reset.
func (cw *ChunkWriter) WriteStyledAt(col, row int, style, s string) {
	cw.MoveCursor(col, row)
	cw.buf = append(cw.buf, style...)
	cw.buf = append(cw.buf, s...)
	cw.buf = append(cw.buf, ColorReset...)
}

// ClearScreen queues a full clear of the terminal.
func (cw *ChunkWriter) ClearScreen() {
	cw.buf = append(cw.buf, seqClearScreen...)
}

// Len returns the number of pending bytes.
func (cw *ChunkWriter) Len() int {
	return len(cw.buf)
}

// Flush writes the pending frame and resets the buffer.
func (cw *ChunkWriter) Flush() error {
	err := writeChunked(cw.w, cw.buf)
	cw.buf = cw.buf[:0]
	return err
}

var _ io.Writer = (*ChunkWriter)(nil)
