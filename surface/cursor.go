package surface

// Cursor tracks a (row, col) position constrained to grid bounds. Every
// operation clamps, so no caller can observe an out-of-bounds position,
// transient or otherwise.
type Cursor struct {
	row, col   int
	rows, cols int
}

// NewCursor creates a cursor at the origin of a rows×cols grid.
func NewCursor(rows, cols int) *Cursor {
	c := &Cursor{rows: rows, cols: cols}
	c.clamp()
	return c
}

// Position returns the current (row, col).
func (c *Cursor) Position() (row, col int) {
	return c.row, c.col
}

// MoveBy adds the delta and clamps to the grid bounds. Never fails.
func (c *Cursor) MoveBy(dRow, dCol int) {
	c.row += dRow
	c.col += dCol
	c.clamp()
}

// MoveTo jumps to (row, col), clamping identically to MoveBy.
func (c *Cursor) MoveTo(row, col int) {
	c.row = row
	c.col = col
	c.clamp()
}

// SetBounds updates the grid dimensions and re-clamps the position.
// Called after a resize.
func (c *Cursor) SetBounds(rows, cols int) {
	c.rows = rows
	c.cols = cols
	c.clamp()
}

func (c *Cursor) clamp() {
	if c.row < 0 {
		c.row = 0
	}
	if c.row >= c.rows {
		c.row = c.rows - 1
	}
	if c.row < 0 { // degenerate 0-row grid
		c.row = 0
	}
	if c.col < 0 {
		c.col = 0
	}
	if c.col >= c.cols {
		c.col = c.cols - 1
	}
	if c.col < 0 {
		c.col = 0
	}
}
