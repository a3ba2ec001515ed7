package surface

import "errors"

var (
	// ErrOutOfBounds reports coordinates outside the current grid size.
	// Cursor clamping is supposed to make this unreachable; seeing it
	// surface is a caller defect, not a runtime condition to recover.
	ErrOutOfBounds = errors.New("surface: coordinates out of bounds")

	// ErrInvalidGlyph reports an attempt to place a non-printable glyph.
	ErrInvalidGlyph = errors.New("surface: glyph not printable")

	// ErrNoSpaceForWideGlyph reports a width-2 glyph aimed at the last
	// column of a row. Wide glyphs are never split across the edge.
	ErrNoSpaceForWideGlyph = errors.New("surface: no space for wide glyph")
)
