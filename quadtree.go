package chipcore

import "fmt"

// MaxOccupantsPerCell bounds the dense per-cell occupant array. The Lynx
// ruleset never legitimately stacks more than three actors on one tile
// (mover + pushed block + a pickup corner case); four leaves headroom for
// one transient without ever growing the cell.
const MaxOccupantsPerCell = 4

// occupantCell is a fixed-capacity, zero-allocation slot for the handles
// occupying one tile.
type occupantCell struct {
	count   uint8
	handles [MaxOccupantsPerCell]EntityHandle
}

// QuadTree is the dense W x H occupancy index used for O(1) occupant
// queries. The name is carried over from the source's own naming even
// though the implementation is a flat grid, not a recursive quad-tree —
// spec.md §2 calls it "QuadTree" and that is the contract test code keys
// off of.
type QuadTree struct {
	width, height int
	cells         []occupantCell
}

// NewQuadTree allocates an empty index over a width x height grid.
func NewQuadTree(width, height int) *QuadTree {
	return &QuadTree{
		width:  width,
		height: height,
		cells:  make([]occupantCell, width*height),
	}
}

func (q *QuadTree) index(p Vec2i) (int, bool) {
	if !p.InBounds(q.width, q.height) {
		return 0, false
	}
	return p.Y*q.width + p.X, true
}

// Add inserts h into the cell at pos. If the cell is already full this is
// an invariant violation (spec.md §4.2): panics when StrictMode is set,
// otherwise drops the insert so the simulation keeps running
// deterministically.
func (q *QuadTree) Add(h EntityHandle, pos Vec2i) {
	idx, ok := q.index(pos)
	if !ok {
		return
	}
	cell := &q.cells[idx]
	if cell.count >= MaxOccupantsPerCell {
		if StrictMode {
			panic(fmt.Errorf("%w: cell %v has %d occupants already", ErrInvariant, pos, cell.count))
		}
		return
	}
	cell.handles[cell.count] = h
	cell.count++
}

// Remove deletes h from the cell at pos, if present. Uses swap-remove
// against the active count to keep the array dense.
func (q *QuadTree) Remove(h EntityHandle, pos Vec2i) {
	idx, ok := q.index(pos)
	if !ok {
		return
	}
	cell := &q.cells[idx]
	for i := uint8(0); i < cell.count; i++ {
		if cell.handles[i] == h {
			cell.count--
			cell.handles[i] = cell.handles[cell.count]
			cell.handles[cell.count] = InvalidHandle
			return
		}
	}
}

// Move is a convenience wrapper for Remove-then-Add during a step.
func (q *QuadTree) Move(h EntityHandle, from, to Vec2i) {
	q.Remove(h, from)
	q.Add(h, to)
}

// Get returns the occupants of pos. Slots beyond the live count (and the
// whole array for an out-of-bounds query) are InvalidHandle; callers skip
// those. The returned array is a copy, safe to range over after further
// mutation of the QuadTree.
func (q *QuadTree) Get(pos Vec2i) [MaxOccupantsPerCell]EntityHandle {
	idx, ok := q.index(pos)
	if !ok {
		return [MaxOccupantsPerCell]EntityHandle{}
	}
	return q.cells[idx].handles
}

// Count returns the number of occupants at pos (0 for out of bounds).
func (q *QuadTree) Count(pos Vec2i) int {
	idx, ok := q.index(pos)
	if !ok {
		return 0
	}
	return int(q.cells[idx].count)
}

// HasAny reports whether any occupant is present at pos.
func (q *QuadTree) HasAny(pos Vec2i) bool {
	return q.Count(pos) > 0
}
