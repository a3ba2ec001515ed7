package surface

// DirtySet records the cells modified since the last completed render.
// A full-repaint flag short-circuits per-cell bookkeeping after resize or
// clear, when every cell is dirty anyway.
type DirtySet struct {
	coords map[Coord]struct{}
	all    bool
}

// NewDirtySet creates an empty set.
func NewDirtySet() *DirtySet {
	return &DirtySet{coords: make(map[Coord]struct{})}
}

// Mark records a single dirty cell.
func (d *DirtySet) Mark(c Coord) {
	if d.all {
		return
	}
	d.coords[c] = struct{}{}
}

// MarkCoords records a batch of dirty cells.
func (d *DirtySet) MarkCoords(coords []Coord) {
	if d.all {
		return
	}
	for _, c := range coords {
		d.coords[c] = struct{}{}
	}
}

// MarkAll flags the whole grid dirty, dropping per-cell entries.
func (d *DirtySet) MarkAll() {
	d.all = true
	clear(d.coords)
}

// All reports whether a full repaint is pending.
func (d *DirtySet) All() bool {
	return d.all
}

// Has reports whether the cell needs repainting.
func (d *DirtySet) Has(c Coord) bool {
	if d.all {
		return true
	}
	_, ok := d.coords[c]
	return ok
}

// Empty reports whether nothing is dirty.
func (d *DirtySet) Empty() bool {
	return !d.all && len(d.coords) == 0
}

// Clear empties the set. Called only after a render completes.
func (d *DirtySet) Clear() {
	d.all = false
	clear(d.coords)
}
