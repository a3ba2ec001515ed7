package editor

import (
	"strings"
)

// manualText is painted into the grid at startup. It is ordinary surface
// content: type over it, erase it, or clear it with 'c'.
const manualText = `        .__          __
  ______|  |  _____ _/  |_  ____
 /  ___/|  |  \__  \\   __\/ __ \
 \___ \ |  |__ / __ \|  |  \  ___/
/____  >|____/(____  /|__|   \___  >
     \/            \/            \/

Welcome to slate, the terminal surface editor.

Type anywhere on the screen. Nothing is saved:
the surface lives only for this session.

============= Normal mode =============
q:               quit
h j k l:         move the cursor
b e:             jump 10 columns
c:               clear the surface
i:               enter insert mode

============= Insert mode =============
Esc or Ctrl-[:   back to normal mode
Enter:           next row, entry column
Backspace:       erase in place
anything else:   type it`

// Cursor park position inside the manual, relative to its origin: on the
// "q:" line, just past the command column.
const (
	manualCursorRow = 13
	manualCursorCol = 17
)

// PaintManual centers the manual on the grid and parks the cursor inside
// it. On viewports too small for the text the origin clamps to (0,0) and
// overflowing cells are simply skipped.
func (e *Editor) PaintManual() {
	lines := strings.Split(manualText, "\n")

	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}

	rows, cols := e.grid.Size()
	originRow := (rows - len(lines)) / 2
	originCol := (cols - width) / 2
	if originRow < 0 {
		originRow = 0
	}
	if originCol < 0 {
		originCol = 0
	}

	for i, line := range lines {
		row := originRow + i
		if row >= rows {
			break
		}
		for j, r := range line {
			if r == ' ' {
				continue
			}
			col := originCol + j
			if col >= cols {
				break
			}
			if touched, err := e.grid.Set(row, col, r); err == nil {
				e.dirty.MarkCoords(touched)
			}
		}
	}

	e.cursor.MoveTo(originRow+manualCursorRow, originCol+manualCursorCol)
}
